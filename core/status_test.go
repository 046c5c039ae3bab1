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
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewStatusEngine_Routes(t *testing.T) {
	system := NewSystem()
	statusEngine := NewStatusEngine(system)
	system.RegisterEngine(statusEngine)
	system.RegisterEngine(NewMetricsEngine())
	e := echo.New()
	statusEngine.(Routable).Routes(e)

	get := func(path string, accept ...string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for _, value := range accept {
			req.Header.Add(echo.HeaderAccept, value)
		}
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("status", func(t *testing.T) {
		rec := get("/status")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
	t.Run("health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/health").Code)
	})
	t.Run("diagnostics", func(t *testing.T) {
		rec := get("/status/diagnostics")

		assert.Equal(t, "Registered engines: Status,Metrics", rec.Body.String())
	})
	t.Run("diagnostics as JSON", func(t *testing.T) {
		rec := get("/status/diagnostics", "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"Status":{"Registered engines":"Status,Metrics"}}`, rec.Body.String())
	})
}

func TestNewStatusEngine_Diagnostics(t *testing.T) {
	system := NewSystem()
	system.RegisterEngine(NewStatusEngine(system))
	system.RegisterEngine(NewMetricsEngine())

	ds := NewStatusEngine(system).(Diagnosable).Diagnostics()

	assert.Len(t, ds, 1)
	assert.Equal(t, "Registered engines", ds[0].Name())
	assert.Equal(t, "Status,Metrics", ds[0].String())
}

func TestDiagnosticsMap(t *testing.T) {
	results := []DiagnosticResult{
		GenericDiagnosticResult{Title: "signup_flows", Value: 2},
		GenericDiagnosticResult{Title: "name", Value: "bank"},
		GenericDiagnosticResult{Title: "signup_flows", Value: 3},
	}

	assert.Equal(t, map[string]string{"signup_flows": "3", "name": "bank"}, DiagnosticsMap(results))
	assert.Equal(t, "signup_flows: 2\nname: bank\nsignup_flows: 3", DiagnosticsText(results))
}
