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

package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Problem holds the fields of a problem+json response body.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// ParseProblem parses the problem written to the given recorder.
func ParseProblem(t *testing.T, recorder *httptest.ResponseRecorder) Problem {
	var result Problem
	assert.Equal(t, "application/problem+json", recorder.Header().Get("Content-Type"), "response is not a problem")
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	return result
}

// AssertProblem asserts the recorder holds a problem with the given status code and error code.
// An empty code asserts the problem has no error code.
func AssertProblem(t *testing.T, recorder *httptest.ResponseRecorder, statusCode int, code string) bool {
	prb := ParseProblem(t, recorder)
	return assert.Equal(t, statusCode, recorder.Code) &&
		assert.Equal(t, statusCode, prb.Status) &&
		assert.Equal(t, code, prb.Code)
}
