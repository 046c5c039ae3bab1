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

package flow

import (
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Event describes a status transition of a flow.
type Event struct {
	FlowID    string    `json:"flow_id"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`
	User      string    `json:"user,omitempty"`
	Error     Code      `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Observer is notified of every status transition of a flow, including its creation.
// Implementations must not block, since they're called from the flow's routine.
type Observer interface {
	StatusChanged(event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) StatusChanged(_ Event) {}

// Observers notifies all contained observers, in order.
type Observers []Observer

func (o Observers) StatusChanged(event Event) {
	for _, observer := range o {
		observer.StatusChanged(event)
	}
}

// NewMetricsObserver creates an Observer that counts flow transitions and tracks the number of active flows.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: core.MetricsNamespace,
			Subsystem: "flow",
			Name:      "transitions_total",
			Help:      "Number of flow status transitions, by kind and status.",
		}, []string{"kind", "status"}),
		active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: core.MetricsNamespace,
			Subsystem: "flow",
			Name:      "active",
			Help:      "Number of flows that did not reach a terminal status yet, by kind.",
		}, []string{"kind"}),
	}
}

// MetricsObserver exposes flow transitions as prometheus metrics.
type MetricsObserver struct {
	transitions *prometheus.CounterVec
	active      *prometheus.GaugeVec
}

// Collectors returns the collectors to register.
func (m *MetricsObserver) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.transitions, m.active}
}

func (m *MetricsObserver) StatusChanged(event Event) {
	m.transitions.WithLabelValues(string(event.Kind), string(event.Status)).Inc()
	switch {
	case event.Status == StatusCreated:
		m.active.WithLabelValues(string(event.Kind)).Inc()
	case event.Status.IsTerminal():
		m.active.WithLabelValues(string(event.Kind)).Dec()
	}
}
