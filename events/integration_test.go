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
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/flow"
	"github.com/nuts-foundation/nuts-demo-credentials/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_publishToEmbeddedServer(t *testing.T) {
	m := createModule(t)
	subscriber, err := nats.Connect(m.server.ClientURL())
	require.NoError(t, err)
	defer subscriber.Close()
	subscription, err := subscriber.SubscribeSync("demo.flows.>")
	require.NoError(t, err)
	require.NoError(t, subscriber.Flush())

	m.StatusChanged(flow.Event{FlowID: "1", Kind: flow.KindIssuance, Status: flow.StatusFinished, User: "alice"})

	msg, err := subscription.NextMsg(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "demo.flows.issuance", msg.Subject)
	var event flow.Event
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, "1", event.FlowID)
	assert.Equal(t, flow.StatusFinished, event.Status)
}

func createModule(t *testing.T) *Module {
	m := New()
	m.config.Nats.Port = test.FreeTCPPort()
	require.NoError(t, m.Configure(*core.NewServerConfig()))
	require.NoError(t, m.Start())
	t.Cleanup(func() {
		_ = m.Shutdown()
	})
	return m
}
