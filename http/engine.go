/*
 * Copyright (C) 2022 Nuts community
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
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/http/log"
)

const moduleName = "HTTP"

const shutdownTimeout = 10 * time.Second

// flowStartingPaths are the endpoints that start work on the cloud agent, which are rate limited.
var flowStartingPaths = map[string][]string{
	http.MethodPost: {
		"/signup",
		"/login",
		"/login/vc",
		"/api/credentials",
		"/api/invitations",
	},
}

var _ core.Injectable = (*Engine)(nil)
var _ core.Configurable = (*Engine)(nil)
var _ core.Runnable = (*Engine)(nil)

// New returns a new HTTP engine. The callback is called when the HTTP server shuts down unexpectedly.
func New(serverShutdownCb func()) *Engine {
	return &Engine{
		serverShutdownCb: serverShutdownCb,
		config:           DefaultConfig(),
	}
}

// Engine is the HTTP engine.
type Engine struct {
	server           *echo.Echo
	serverShutdownCb func()
	config           Config
}

// Router returns the router of the HTTP engine, which can be used by other engines to register HTTP handlers.
func (h Engine) Router() core.EchoRouter {
	return h.server
}

// Name returns the name of the engine.
func (h *Engine) Name() string {
	return moduleName
}

// Config returns the configuration of the HTTP engine.
func (h *Engine) Config() interface{} {
	return &h.config
}

// Configure creates the echo server and applies the middleware.
func (h *Engine) Configure(serverConfig core.ServerConfig) error {
	switch h.config.Log {
	case LogNothingLevel, LogMetadataLevel, LogMetadataAndBodyLevel:
	default:
		return errors.New("invalid http.log value: " + string(h.config.Log))
	}
	h.server = echo.New()
	h.server.HideBanner = true
	h.server.HidePort = true
	h.server.HTTPErrorHandler = core.CreateHTTPErrorHandler()
	// Reverse proxies must set the X-Forwarded-For header to the original client IP.
	h.server.IPExtractor = echo.ExtractIPFromXFFHeader()
	return h.applyMiddleware(h.server, serverConfig)
}

// Start starts the HTTP server.
func (h *Engine) Start() error {
	log.Logger().Infof("Listening on %s", h.config.Address)
	go func(server *echo.Echo, cancel func()) {
		if err := server.Start(h.config.Address); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Logger().
					WithError(err).
					Error("HTTP server stopped due to error")
			}
		}
		if cancel != nil {
			cancel()
		}
	}(h.server, h.serverShutdownCb)
	return nil
}

// Shutdown shuts down the HTTP server, waiting for running requests to complete.
func (h *Engine) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.server.Shutdown(ctx)
}

// decodeURIPath is echo middleware that decodes path parameters
func decodeURIPath(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// FIXME: This is a hack because of https://github.com/labstack/echo/issues/1258
		newValues := make([]string, len(c.ParamValues()))
		for i, value := range c.ParamValues() {
			path, err := url.PathUnescape(value)
			if err != nil {
				path = value
			}
			newValues[i] = path
		}
		c.SetParamNames(c.ParamNames()...)
		c.SetParamValues(newValues...)
		return next(c)
	}
}

// matchesPath checks whether the request URI path hierarchically matches the given path.
// Examples:
// / matches /
// /foo matches /
// /foo/ matches /
// /foo/bla matches /
// /foo/bla does not match /bla
func matchesPath(requestURI string, path string) bool {
	if path == "/" {
		return true
	}
	if !strings.HasSuffix(requestURI, "/") {
		requestURI += "/"
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return requestURI == path || strings.HasPrefix(requestURI, path)
}

func (h Engine) applyMiddleware(echoServer core.EchoRouter, serverConfig core.ServerConfig) error {
	// Logging, skipping calls to /metrics, /status, and /health
	loggerSkipper := func(c echo.Context) bool {
		for _, excludePath := range []string{"/metrics", "/status", "/health"} {
			if matchesPath(c.Request().URL.Path, excludePath) {
				return true
			}
		}
		return false
	}
	if h.config.Log != LogNothingLevel {
		echoServer.Use(requestLoggerMiddleware(loggerSkipper, log.Logger()))
	}
	if h.config.Log == LogMetadataAndBodyLevel {
		echoServer.Use(bodyLoggerMiddleware(loggerSkipper, log.Logger()))
	}

	// Use middleware to decode URL encoded path parameters like john%20doe -> john doe
	echoServer.Use(decodeURIPath)

	// CORS
	if h.config.CORS.Enabled() {
		if serverConfig.Strictmode {
			for _, origin := range h.config.CORS.Origin {
				if strings.TrimSpace(origin) == "*" {
					return errors.New("wildcard CORS origin is not allowed in strict mode")
				}
			}
		}
		log.Logger().Infof("Enabling CORS (origins=%s)", strings.Join(h.config.CORS.Origin, ","))
		echoServer.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     h.config.CORS.Origin,
			AllowCredentials: true,
		}))
	}

	// Always enabled in strict mode
	if serverConfig.Strictmode || h.config.RateLimit {
		echoServer.Use(newRateLimiter(flowStartingPaths, time.Minute, 30, 10))
	}
	return nil
}
