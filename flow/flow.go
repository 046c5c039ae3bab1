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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/flow/log"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Reference refers to an agent record by ID.
type Reference struct {
	ID string `json:"id"`
}

// Snapshot is the status of a flow as reported to the browser.
// The connection offer, credential and verification are only present while the flow is in the matching phase.
type Snapshot struct {
	ID              string            `json:"id"`
	Status          Status            `json:"status"`
	ConnectionOffer *agent.Connection `json:"connection_offer,omitempty"`
	Credential      *Reference        `json:"credential,omitempty"`
	Verification    *Reference        `json:"verification,omitempty"`
	Error           Code              `json:"error,omitempty"`
	Reason          string            `json:"reason,omitempty"`
}

// Flow is a signup, login or issuance of one user. Its routine runs in its own goroutine, which is the only writer
// of the flow's progress. Stop cancels the routine's context.
type Flow struct {
	id        string
	kind      Kind
	createdAt time.Time
	observer  Observer
	ctx       context.Context
	cancel    context.CancelFunc
	stopped   *atomic.Bool
	done      chan struct{}

	mux             sync.RWMutex
	status          Status
	user            string
	connectionOffer *agent.Connection
	credential      *agent.Credential
	verification    *agent.Verification
	err             error
	terminalAt      time.Time
}

func newFlow(kind Kind, username string, observer Observer) *Flow {
	ctx, cancel := context.WithCancel(context.Background())
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Flow{
		id:        uuid.NewString(),
		kind:      kind,
		createdAt: time.Now(),
		observer:  observer,
		ctx:       ctx,
		cancel:    cancel,
		stopped:   atomic.NewBool(false),
		done:      make(chan struct{}),
		status:    StatusCreated,
		user:      username,
	}
}

// start runs the routine in the background. The flow finishes when the routine returns without error.
func (f *Flow) start(routine func(ctx context.Context) error) {
	f.observer.StatusChanged(Event{FlowID: f.id, Kind: f.kind, Status: StatusCreated, User: f.User(), Timestamp: f.createdAt})
	go func() {
		defer close(f.done)
		defer f.cancel()
		err := routine(f.ctx)
		if err == nil {
			f.setStatus(StatusFinished)
			return
		}
		// no-op when the flow was stopped
		f.fail(err)
	}()
}

// ID returns the unique ID of the flow.
func (f *Flow) ID() string {
	return f.id
}

// Kind returns the kind of the flow.
func (f *Flow) Kind() Kind {
	return f.kind
}

// Status returns the current status.
func (f *Flow) Status() Status {
	f.mux.RLock()
	defer f.mux.RUnlock()
	return f.status
}

// User returns the username the flow operates on. It's empty when the user isn't known yet.
func (f *Flow) User() string {
	f.mux.RLock()
	defer f.mux.RUnlock()
	return f.user
}

// Err returns the error that made the flow fail or stop.
func (f *Flow) Err() error {
	f.mux.RLock()
	defer f.mux.RUnlock()
	return f.err
}

// Done returns a channel that's closed when the flow's routine has returned.
func (f *Flow) Done() <-chan struct{} {
	return f.done
}

// Snapshot returns the status of the flow, with references to the agent records of its current phase.
func (f *Flow) Snapshot() Snapshot {
	f.mux.RLock()
	defer f.mux.RUnlock()
	result := Snapshot{
		ID:     f.id,
		Status: f.status,
	}
	switch f.status {
	case StatusEstablishingConnection:
		if f.connectionOffer != nil {
			offer := *f.connectionOffer
			result.ConnectionOffer = &offer
		}
	case StatusCheckingCredential:
		if f.verification != nil {
			result.Verification = &Reference{ID: f.verification.ID}
		}
	case StatusIssuingCredential:
		if f.credential != nil {
			result.Credential = &Reference{ID: f.credential.ID}
		}
	}
	if f.err != nil {
		result.Error = CodeOf(f.err)
		result.Reason = f.err.Error()
	}
	return result
}

// Stop moves the flow to STOPPED and cancels its routine. It has no effect on a terminal flow.
func (f *Flow) Stop() {
	if !f.stopped.CompareAndSwap(false, true) {
		return
	}
	if f.transition(StatusStopped, ErrStopped) {
		f.cancel()
	}
}

// setStatus moves the flow to the given status, unless that would move it back or out of a terminal status.
func (f *Flow) setStatus(status Status) bool {
	return f.transition(status, nil)
}

func (f *Flow) fail(err error) {
	err = withCode(CodeUnknown, err)
	if f.transition(StatusError, err) {
		f.logger().WithError(err).Warnf("Flow failed (code=%s)", CodeOf(err))
	}
}

func (f *Flow) transition(status Status, err error) bool {
	f.mux.Lock()
	if f.status.IsTerminal() || status.Rank() < f.status.Rank() || f.status == status {
		f.mux.Unlock()
		return false
	}
	f.status = status
	if err != nil {
		f.err = err
	}
	if status.IsTerminal() {
		f.terminalAt = time.Now()
	}
	event := Event{
		FlowID:    f.id,
		Kind:      f.kind,
		Status:    status,
		User:      f.user,
		Timestamp: time.Now(),
	}
	if f.err != nil {
		event.Error = CodeOf(f.err)
	}
	f.mux.Unlock()

	f.logger().WithField(core.LogFieldFlowStatus, status).Debug("Flow status changed")
	f.observer.StatusChanged(event)
	return true
}

func (f *Flow) setUser(username string) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.user = username
}

func (f *Flow) setConnectionOffer(connection *agent.Connection) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.connectionOffer = connection
}

func (f *Flow) setCredential(credential *agent.Credential) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.credential = credential
}

func (f *Flow) setVerification(verification *agent.Verification) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.verification = verification
}

// expired returns true when the flow is terminal for longer than ttl, or exists longer than maxAge.
func (f *Flow) expired(now time.Time, ttl time.Duration, maxAge time.Duration) bool {
	f.mux.RLock()
	defer f.mux.RUnlock()
	if f.status.IsTerminal() {
		return ttl > 0 && now.Sub(f.terminalAt) > ttl
	}
	return maxAge > 0 && now.Sub(f.createdAt) > maxAge
}

func (f *Flow) logger() *logrus.Entry {
	return log.Logger().WithFields(logrus.Fields{
		core.LogFieldFlowID:   f.id,
		core.LogFieldFlowKind: f.kind,
	})
}
