/*
 * Copyright (C) 2024 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */
package core

import (
	"fmt"
	"strings"
)

// DiagnosticResult is a fact an engine reports about its state, e.g. the number of running flows.
type DiagnosticResult interface {
	// Name returns the key of the fact, e.g. "signup_flows".
	Name() string
	// String returns the value of the fact.
	String() string
}

// GenericDiagnosticResult is a DiagnosticResult holding any printable value.
type GenericDiagnosticResult struct {
	Title string
	Value interface{}
}

func (r GenericDiagnosticResult) Name() string {
	return r.Title
}

func (r GenericDiagnosticResult) String() string {
	return fmt.Sprintf("%v", r.Value)
}

// DiagnosticsMap returns the results keyed by their name. When names collide, the last result wins.
func DiagnosticsMap(results []DiagnosticResult) map[string]string {
	out := make(map[string]string, len(results))
	for _, result := range results {
		out[result.Name()] = result.String()
	}
	return out
}

// DiagnosticsText formats the results as "name: value" lines.
func DiagnosticsText(results []DiagnosticResult) string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		lines = append(lines, fmt.Sprintf("%s: %s", result.Name(), result.String()))
	}
	return strings.Join(lines, "\n")
}
