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

package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	natsServer "github.com/nats-io/nats-server/v2/server"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/events/log"
	"github.com/nuts-foundation/nuts-demo-credentials/flow"
)

const moduleName = "Events"

var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)
var _ core.Runnable = (*Module)(nil)
var _ flow.Observer = (*Module)(nil)

// New returns the events engine, which publishes flow status transitions to NATS.
func New() *Module {
	return &Module{
		config:  DefaultConfig(),
		connect: Connect,
	}
}

// Module is the events engine.
type Module struct {
	config  Config
	connect func(address string, timeout time.Duration) (Conn, error)
	server  *natsServer.Server
	mux     sync.RWMutex
	conn    Conn
}

func (m *Module) Name() string {
	return moduleName
}

func (m *Module) Config() interface{} {
	return &m.config
}

func (m *Module) Configure(_ core.ServerConfig) error {
	if m.config.Nats.Subject == "" {
		return errors.New("events.nats.subject must be configured")
	}
	if m.config.Nats.Port < 0 {
		return errors.New("events.nats.port can't be negative")
	}
	return nil
}

// Start starts the embedded NATS server when configured, and connects to the NATS server.
func (m *Module) Start() error {
	address := m.config.Nats.Address
	if m.config.Nats.Port > 0 {
		server, err := natsServer.NewServer(&natsServer.Options{
			Host:   m.config.Nats.Hostname,
			Port:   m.config.Nats.Port,
			NoLog:  true,
			NoSigs: true, // Signals are handled by the application, the server is shut down with the engine.
		})
		if err != nil {
			return fmt.Errorf("unable to create NATS server: %w", err)
		}
		server.Start()
		if !server.ReadyForConnections(m.config.Nats.Timeout) {
			server.Shutdown()
			return fmt.Errorf("NATS server did not start within %s", m.config.Nats.Timeout)
		}
		m.server = server
		if address == "" {
			address = server.ClientURL()
		}
	}
	if address == "" {
		log.Logger().Info("No NATS server configured, flow events are not published")
		return nil
	}
	conn, err := m.connect(address, m.config.Nats.Timeout)
	if err != nil {
		return fmt.Errorf("unable to connect to NATS (address=%s): %w", address, err)
	}
	m.mux.Lock()
	m.conn = conn
	m.mux.Unlock()
	log.Logger().Infof("Publishing flow events to NATS (address=%s, subject=%s)", address, m.config.Nats.Subject)
	return nil
}

func (m *Module) Shutdown() error {
	m.mux.Lock()
	conn := m.conn
	m.conn = nil
	m.mux.Unlock()
	if conn != nil {
		if err := conn.Drain(); err != nil {
			log.Logger().WithError(err).Warn("Unable to drain NATS connection")
		}
	}
	if m.server != nil {
		m.server.Shutdown()
		m.server.WaitForShutdown()
	}
	return nil
}

// StatusChanged publishes the event on <subject>.<flow kind>. Failures are logged, never returned to the flow.
func (m *Module) StatusChanged(event flow.Event) {
	m.mux.RLock()
	conn := m.conn
	m.mux.RUnlock()
	if conn == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Logger().WithError(err).Error("Unable to marshal flow event")
		return
	}
	if err = conn.Publish(Subject(m.config.Nats.Subject, event.Kind), data); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldFlowID, event.FlowID).
			Warn("Unable to publish flow event")
	}
}

// Subject returns the subject events of the given flow kind are published on.
func Subject(prefix string, kind flow.Kind) string {
	return prefix + "." + string(kind)
}
