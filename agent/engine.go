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

package agent

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/nuts-foundation/nuts-demo-credentials/agent/log"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
)

const moduleName = "Agent"

var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)
var _ core.Diagnosable = (*Module)(nil)

// New creates the agent engine, which connects the application to its cloud agent.
func New() *Module {
	return &Module{
		config: DefaultConfig(),
	}
}

// Module is the agent engine.
type Module struct {
	config Config
	agent  Agent
}

func (m *Module) Name() string {
	return moduleName
}

func (m *Module) Config() interface{} {
	return &m.config
}

// Configure validates the agent config and sets up the REST client.
func (m *Module) Configure(config core.ServerConfig) error {
	if len(m.config.URL) == 0 {
		return errors.New("agent.url must be configured")
	}
	if len(m.config.Name) == 0 {
		return errors.New("agent.name must be configured")
	}
	if m.config.Wait.Attempts == 0 {
		return errors.New("agent.wait.attempts must be at least 1")
	}
	if m.config.Wait.Interval < 0 {
		return errors.New("agent.wait.interval can't be negative")
	}
	parsedURL, err := url.Parse(m.config.URL)
	if err != nil {
		return fmt.Errorf("invalid agent.url: %w", err)
	}
	if config.Strictmode && parsedURL.Scheme != "https" {
		return errors.New("agent.url must use HTTPS in strictmode")
	}
	httpClient := core.NewStrictHTTPClient(config.Strictmode, m.config.Timeout, nil)
	if m.agent, err = NewHTTPClient(m.config.URL, m.config.Name, m.config.Password, httpClient); err != nil {
		return err
	}
	log.Logger().Infof("Using cloud agent (name=%s, url=%s)", m.config.Name, m.config.URL)
	return nil
}

// Agent returns the configured agent client.
func (m *Module) Agent() Agent {
	return m.agent
}

// WaitOptions returns the configured bounds for waiting on agent records.
func (m *Module) WaitOptions() WaitOptions {
	return m.config.Wait
}

func (m *Module) Diagnostics() []core.DiagnosticResult {
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "agent_name", Value: m.config.Name},
		core.GenericDiagnosticResult{Title: "agent_url", Value: m.config.URL},
	}
}
