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
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// pollInterval is how often WaitFor evaluates its predicate.
var pollInterval = 10 * time.Millisecond

// Predicate reports whether the awaited condition holds. An error fails the test.
type Predicate func() (bool, error)

// WaitFor evaluates the predicate until it holds, fails or the timeout passes. The test fails with the given message
// on timeout.
func WaitFor(t *testing.T, p Predicate, timeout time.Duration, message string, msgArgs ...interface{}) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		ok, err := p()
		if !assert.NoError(t, err) {
			return false
		}
		if ok {
			return true
		}
		if time.Now().After(deadline) {
			return assert.Fail(t, fmt.Sprintf(message, msgArgs...))
		}
		time.Sleep(pollInterval)
	}
}

// HTTPStatusIs returns a predicate that holds once a GET on the URL answers the given status code.
// A server that doesn't accept connections yet doesn't fail the predicate, it just doesn't hold.
func HTTPStatusIs(url string, statusCode int) Predicate {
	return func() (bool, error) {
		response, err := http.Get(url)
		if err != nil {
			return false, nil
		}
		defer response.Body.Close()
		_, _ = io.Copy(io.Discard, response.Body)
		return response.StatusCode == statusCode, nil
	}
}
