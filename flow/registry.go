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
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/flow/log"
)

// RegistryConfig configures the eviction of flows from a Registry.
type RegistryConfig struct {
	// TTL is how long terminal flows are kept, giving the browser time to pick up the result.
	TTL time.Duration `koanf:"ttl"`
	// MaxAge is how long a flow may run. Older flows are stopped and removed.
	MaxAge time.Duration `koanf:"maxage"`
	// PruneInterval is the interval at which expired flows are removed. Zero disables pruning.
	PruneInterval time.Duration `koanf:"pruneinterval"`
}

// DefaultRegistryConfig returns the default eviction config.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		TTL:           10 * time.Minute,
		MaxAge:        30 * time.Minute,
		PruneInterval: time.Minute,
	}
}

// NewRegistry creates a registry for flows of the given kind, and starts pruning expired flows.
// Close must be called to stop pruning.
func NewRegistry(kind Kind, config RegistryConfig) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Registry{
		kind:   kind,
		config: config,
		flows:  map[string]*Flow{},
		cancel: cancel,
	}
	if config.PruneInterval > 0 {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.pruneUntilCancelled(ctx)
		}()
	}
	return r
}

// Registry holds the flows of one kind by ID. It's safe for concurrent use.
type Registry struct {
	kind   Kind
	config RegistryConfig
	mux    sync.RWMutex
	flows  map[string]*Flow
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (r *Registry) add(flow *Flow) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.flows[flow.ID()] = flow
}

// Get returns the flow with the given ID, or ErrFlowNotFound.
func (r *Registry) Get(id string) (*Flow, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	flow, ok := r.flows[id]
	if !ok {
		return nil, withCode(CodeFlowNotFound, fmt.Errorf("%s flow not found (id=%s)", r.kind, id))
	}
	return flow, nil
}

// GetStatus returns the snapshot of the flow with the given ID.
func (r *Registry) GetStatus(id string) (Snapshot, error) {
	flow, err := r.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return flow.Snapshot(), nil
}

// GetUser returns the username of the flow with the given ID.
func (r *Registry) GetUser(id string) (string, error) {
	flow, err := r.Get(id)
	if err != nil {
		return "", err
	}
	return flow.User(), nil
}

// Delete removes the flow with the given ID. A flow that isn't terminal is stopped first.
func (r *Registry) Delete(id string) error {
	r.mux.Lock()
	flow, ok := r.flows[id]
	if !ok {
		r.mux.Unlock()
		return withCode(CodeFlowNotFound, fmt.Errorf("%s flow not found (id=%s)", r.kind, id))
	}
	delete(r.flows, id)
	r.mux.Unlock()

	if !flow.Status().IsTerminal() {
		flow.Stop()
	}
	return nil
}

// Len returns the number of flows in the registry.
func (r *Registry) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.flows)
}

// Close stops pruning and stops all running flows.
func (r *Registry) Close() {
	r.cancel()
	r.wg.Wait()
	r.mux.RLock()
	defer r.mux.RUnlock()
	for _, flow := range r.flows {
		flow.Stop()
	}
}

func (r *Registry) pruneUntilCancelled(ctx context.Context) {
	ticker := time.NewTicker(r.config.PruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if pruned := r.prune(now); pruned > 0 {
				log.Logger().Debugf("Pruned %d expired %s flow(s)", pruned, r.kind)
			}
		}
	}
}

// prune removes expired flows, stopping the ones that are still running.
func (r *Registry) prune(now time.Time) int {
	var expired []*Flow
	r.mux.Lock()
	for id, flow := range r.flows {
		if flow.expired(now, r.config.TTL, r.config.MaxAge) {
			expired = append(expired, flow)
			delete(r.flows, id)
		}
	}
	r.mux.Unlock()

	for _, flow := range expired {
		flow.Stop()
	}
	return len(expired)
}
