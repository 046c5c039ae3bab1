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

package http

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/sirupsen/logrus"
)

// redactedFields lists the request fields that never end up in the log.
var redactedFields = []string{"password"}

const redactedValue = "(redacted)"

// requestLoggerMiddleware returns middleware that logs metadata of HTTP requests.
// Should be added as the outer middleware to catch all errors and potential status rewrites
func requestLoggerMiddleware(skipper middleware.Skipper, logger *logrus.Entry) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:     skipper,
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogRemoteIP: true,
		LogError:    true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip": values.RemoteIP,
				"method":    values.Method,
				"uri":       values.URI,
				"status":    responseStatus(values),
				"latency":   values.Latency.String(),
			}
			// set by the API handlers, so absent for status and metrics endpoints
			if operationID, ok := c.Get(core.OperationIDContextKey).(string); ok {
				fields["operation"] = operationID
			}
			logger.WithFields(fields).Info("HTTP request")
			return nil
		},
	})
}

// responseStatus returns the status the error handler will write for the request.
func responseStatus(values middleware.RequestLoggerValues) int {
	if values.Error == nil {
		return values.Status
	}
	// e.g. core.HTTPStatusCodeError
	if x, ok := values.Error.(interface{ StatusCode() int }); ok {
		return x.StatusCode()
	}
	if x, ok := values.Error.(*echo.HTTPError); ok {
		return x.Code
	}
	return http.StatusInternalServerError
}

// bodyLoggerMiddleware returns middleware that logs body of HTTP requests and their replies at debug level.
// Passwords of signup and login requests are redacted.
func bodyLoggerMiddleware(skipper middleware.Skipper, logger *logrus.Entry) echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Handler: func(e echo.Context, request []byte, response []byte) {
			logger.Debugf("HTTP request body: %s", loggableBody(e.Request().Header.Get("Content-Type"), request))
			logger.Debugf("HTTP response body: %s", loggableBody(e.Response().Header().Get("Content-Type"), response))
		},
		Skipper: skipper,
	})
}

func loggableBody(contentType string, body []byte) string {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/json", "application/problem+json":
		return redactJSON(body)
	case "application/x-www-form-urlencoded":
		return redactForm(body)
	}
	return "(not loggable: " + contentType + ")"
}

// redactJSON replaces the redacted fields of a JSON object. Other JSON values are returned as-is.
func redactJSON(body []byte) string {
	var object map[string]interface{}
	if json.Unmarshal(body, &object) != nil {
		return string(body)
	}
	redacted := false
	for _, field := range redactedFields {
		if _, ok := object[field]; ok {
			object[field] = redactedValue
			redacted = true
		}
	}
	if !redacted {
		return string(body)
	}
	data, _ := json.Marshal(object)
	return string(data)
}

func redactForm(body []byte) string {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return "(not loggable: invalid form)"
	}
	redacted := false
	for _, field := range redactedFields {
		if values.Has(field) {
			values.Set(field, redactedValue)
			redacted = true
		}
	}
	if !redacted {
		return string(body)
	}
	return values.Encode()
}
