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

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/app/api"
	"github.com/nuts-foundation/nuts-demo-credentials/app/log"
	"github.com/nuts-foundation/nuts-demo-credentials/card"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/flow"
	"github.com/nuts-foundation/nuts-demo-credentials/http/session"
	"github.com/nuts-foundation/nuts-demo-credentials/proof"
	"github.com/nuts-foundation/nuts-demo-credentials/storage"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

const moduleName = "App"

const sessionStoreName = "sessions"

var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)
var _ core.Runnable = (*Module)(nil)
var _ core.Diagnosable = (*Module)(nil)
var _ core.Routable = (*Module)(nil)

// New creates the demo application engine. Flow status transitions are reported to observer, next to the flow metrics.
func New(storageEngine storage.Engine, agents *agent.Module, observer flow.Observer) *Module {
	return &Module{
		config:   DefaultConfig(),
		storage:  storageEngine,
		agents:   agents,
		observer: observer,
	}
}

// Module is the demo application engine. It holds the flow registries and serves the browser API.
type Module struct {
	config     Config
	storage    storage.Engine
	agents     *agent.Module
	observer   flow.Observer
	registries map[flow.Kind]*flow.Registry
	api        *api.Wrapper
}

func (m *Module) Name() string {
	return moduleName
}

func (m *Module) Config() interface{} {
	return &m.config
}

// Configure sets up the proof helpers, the flow managers and the browser API.
func (m *Module) Configure(config core.ServerConfig) error {
	if m.config.Name == "" {
		return errors.New("app.name must be configured")
	}
	signupHelper, err := m.signupHelper(config.Strictmode)
	if err != nil {
		return err
	}
	loginHelper, err := m.loginHelper(config.Strictmode)
	if err != nil {
		return err
	}
	renderer, err := card.NewTemplateRenderer(m.config.Name, m.config.Card.Front, m.config.Card.Back)
	if err != nil {
		return fmt.Errorf("invalid card template: %w", err)
	}
	metrics := flow.NewMetricsObserver()
	if err := core.RegisterCollectors(metrics.Collectors()...); err != nil {
		return err
	}
	observers := flow.Observers{metrics}
	if m.observer != nil {
		observers = append(observers, m.observer)
	}
	users := user.NewSQLStore(m.storage.GetSQLDatabase())
	deps := flow.Dependencies{
		Agent:    m.agents.Agent(),
		Users:    users,
		Wait:     m.agents.WaitOptions(),
		Renderer: renderer,
		Icon:     card.NewIconProvider(m.config.Card.Icon),
		Observer: observers,
	}

	m.registries = map[flow.Kind]*flow.Registry{
		flow.KindSignup:   flow.NewRegistry(flow.KindSignup, m.config.Flows),
		flow.KindLogin:    flow.NewRegistry(flow.KindLogin, m.config.Flows),
		flow.KindIssuance: flow.NewRegistry(flow.KindIssuance, m.config.Flows),
	}
	m.api = &api.Wrapper{
		Signups:   flow.NewSignupManager(m.registries[flow.KindSignup], deps, signupHelper),
		Logins:    flow.NewLoginManager(m.registries[flow.KindLogin], deps, loginHelper, flow.LoginConfig{RestrictToIssuer: m.config.Login.RestrictToIssuer}),
		Issuances: flow.NewIssuanceManager(m.registries[flow.KindIssuance], deps),
		Users:     users,
		Agent:     deps.Agent,
		Sessions: session.Middleware{
			TimeOut: m.storage.SessionTTL(),
			Store:   m.storage.GetSessionDatabase().GetStore(m.storage.SessionTTL(), sessionStoreName),
			Secure:  config.Strictmode,
		},
	}
	log.Logger().Infof("Demo application configured (name=%s, signup=%s, login=%s)", m.config.Name, m.config.Signup.Helper, m.config.Login.Helper)
	return nil
}

func (m *Module) signupHelper(strictMode bool) (proof.SignupHelper, error) {
	switch m.config.Signup.Helper {
	case HelperFile:
		helper := m.templateHelper(m.config.Signup.ProofSchema, proof.SignupTemplate)
		return helper, checkTemplate(helper, "app.signup.proofschema")
	case HelperAccount:
		if !m.config.Account.DMV.isConfigured() || !m.config.Account.HR.isConfigured() {
			return nil, errors.New("app.account.dmv and app.account.hr must be configured for the account signup helper")
		}
		template := m.templateHelper(m.config.Signup.ProofSchema, proof.AccountSignupTemplate)
		if err := checkTemplate(template, "app.signup.proofschema"); err != nil {
			return nil, err
		}
		return proof.NewAccountHelper(template, m.agents.Agent(), proof.AccountConfig{
			DMV:  agent.Target{Name: m.config.Account.DMV.Name, URL: m.config.Account.DMV.URL},
			HR:   agent.Target{Name: m.config.Account.HR.Name, URL: m.config.Account.HR.URL},
			Wait: m.agents.WaitOptions(),
		}), nil
	}
	helper, err := nullHelper(m.config.Signup.Helper, strictMode)
	if err != nil {
		return nil, fmt.Errorf("invalid app.signup.helper: %w", err)
	}
	return helper, nil
}

func (m *Module) loginHelper(strictMode bool) (proof.Helper, error) {
	if m.config.Login.Helper == HelperFile {
		helper := m.templateHelper(m.config.Login.ProofSchema, proof.LoginTemplate)
		return helper, checkTemplate(helper, "app.login.proofschema")
	}
	helper, err := nullHelper(m.config.Login.Helper, strictMode)
	if err != nil {
		return nil, fmt.Errorf("invalid app.login.helper: %w", err)
	}
	return helper, nil
}

func (m *Module) templateHelper(path string, builtin string) *proof.FileHelper {
	if path == "" {
		return proof.NewTemplateHelper(proof.Templates, builtin)
	}
	return proof.NewFileHelper(path)
}

// checkTemplate loads the template, so invalid templates fail on startup instead of in the first flow.
func checkTemplate(helper *proof.FileHelper, key string) error {
	if _, err := helper.GetProofSchema(context.Background(), nil); err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	return nil
}

func nullHelper(name string, strictMode bool) (*proof.NullHelper, error) {
	switch name {
	case HelperNonePass:
		if strictMode {
			return nil, errors.New("proof checking can't be disabled in strictmode")
		}
		log.Logger().Warn("Proof checking is disabled, every proof passes")
		return proof.NewNullHelper(true), nil
	case HelperNoneFail:
		return proof.NewNullHelper(false), nil
	}
	return nil, fmt.Errorf("unknown helper: '%s'", name)
}

// Start does nothing, flows are started by the browser API.
func (m *Module) Start() error {
	return nil
}

// Shutdown stops all running flows.
func (m *Module) Shutdown() error {
	for _, registry := range m.registries {
		registry.Close()
	}
	return nil
}

// Routes registers the browser API.
func (m *Module) Routes(router core.EchoRouter) {
	m.api.Routes(router)
}

func (m *Module) Diagnostics() []core.DiagnosticResult {
	result := []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "name", Value: m.config.Name},
	}
	for _, kind := range []flow.Kind{flow.KindSignup, flow.KindLogin, flow.KindIssuance} {
		if registry, ok := m.registries[kind]; ok {
			result = append(result, core.GenericDiagnosticResult{Title: string(kind) + "_flows", Value: registry.Len()})
		}
	}
	return result
}
