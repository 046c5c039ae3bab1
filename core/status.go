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
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const statusEngineName = "Status"

// NewStatusEngine creates a new Engine for viewing all engines
func NewStatusEngine(system *System) Engine {
	return &status{
		system: system,
	}
}

type status struct {
	system *System
}

func (s *status) Name() string {
	return statusEngineName
}

func (s *status) Routes(router EchoRouter) {
	router.GET("/status/diagnostics", s.diagnosticsOverview)
	router.GET("/status", statusOK)
	router.GET("/health", statusOK)
}

// diagnosticsOverview writes the diagnostics of all engines as text, or as JSON object per engine name when asked for.
func (s *status) diagnosticsOverview(ctx echo.Context) error {
	if strings.Contains(ctx.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return ctx.JSON(http.StatusOK, s.diagnosticsPerEngine())
	}
	return ctx.String(http.StatusOK, DiagnosticsText(s.system.Diagnostics()))
}

func (s *status) diagnosticsPerEngine() map[string]map[string]string {
	result := map[string]map[string]string{}
	s.system.VisitEngines(func(engine Engine) {
		d, ok := engine.(Diagnosable)
		if !ok {
			return
		}
		result[engineName(engine)] = DiagnosticsMap(d.Diagnostics())
	})
	return result
}

// Diagnostics returns the list of registered engines.
func (s *status) Diagnostics() []DiagnosticResult {
	return []DiagnosticResult{GenericDiagnosticResult{Title: "Registered engines", Value: strings.Join(s.listAllEngines(), ",")}}
}

func (s *status) listAllEngines() []string {
	var names []string
	s.system.VisitEngines(func(engine Engine) {
		if m, ok := engine.(Named); ok {
			names = append(names, m.Name())
		}
	})
	return names
}

// statusOK returns 200 OK with a "OK" body
func statusOK(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}
