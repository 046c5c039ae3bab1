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

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/app/log"
	"github.com/nuts-foundation/nuts-demo-credentials/audit"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/flow"
	httpModule "github.com/nuts-foundation/nuts-demo-credentials/http"
	"github.com/nuts-foundation/nuts-demo-credentials/http/session"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
	"github.com/sirupsen/logrus"
)

const moduleName = "App"

var _ core.ErrorStatusCodeResolver = (*Wrapper)(nil)

// Wrapper implements the HTTP surface of the demo application: starting flows, polling their status and
// managing the logged-in user.
type Wrapper struct {
	Signups   SignupFlows
	Logins    UserFlows
	Issuances UserFlows
	Users     user.Store
	Agent     agent.Agent
	Sessions  session.Middleware
}

// ResolveStatusCode maps errors returned by this API to specific HTTP status codes.
func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		flow.ErrInvalidParameters:  http.StatusBadRequest,
		flow.ErrFlowNotFound:       http.StatusNotFound,
		flow.ErrUserNotFound:       http.StatusNotFound,
		flow.ErrUserExists:         http.StatusConflict,
		user.ErrNotFound:           http.StatusNotFound,
		user.ErrExists:             http.StatusConflict,
		user.ErrInvalidCredentials: http.StatusUnauthorized,
	})
}

// Routes registers the handlers on the router. All handlers run in a browser session.
func (w *Wrapper) Routes(router core.EchoRouter) {
	sessions := w.Sessions.Handle
	add := func(method string, path string, operationID string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) {
		router.Add(method, path, handler, append([]echo.MiddlewareFunc{w.preprocess(operationID), sessions}, middleware...)...)
	}
	add(http.MethodPost, "/signup", "StartSignup", w.StartSignup)
	add(http.MethodGet, "/signup/status", "GetSignupStatus", w.GetSignupStatus)
	add(http.MethodDelete, "/signup", "DeleteSignup", w.DeleteSignup)
	add(http.MethodPost, "/login", "PasswordLogin", w.PasswordLogin)
	add(http.MethodPost, "/login/vc", "StartCredentialLogin", w.StartCredentialLogin)
	add(http.MethodGet, "/login/vc/status", "GetCredentialLoginStatus", w.GetCredentialLoginStatus)
	add(http.MethodDelete, "/login/vc", "DeleteCredentialLogin", w.DeleteCredentialLogin)
	add(http.MethodGet, "/logout", "Logout", w.Logout)
	add(http.MethodPost, "/api/invitations", "CreateInvitation", w.CreateInvitation)
	add(http.MethodPost, "/api/credentials", "StartIssuance", w.StartIssuance, requireLogin)
	add(http.MethodGet, "/api/credentials", "GetIssuanceStatus", w.GetIssuanceStatus, requireLogin)
	add(http.MethodDelete, "/api/credentials", "DeleteIssuance", w.DeleteIssuance, requireLogin)
	add(http.MethodGet, "/api/user", "GetUser", w.GetUser, requireLogin)
	add(http.MethodPut, "/api/user", "UpdateUser", w.UpdateUser, requireLogin)
	add(http.MethodGet, "/api/users", "ListUsers", w.ListUsers, requireLogin)
	add(http.MethodPost, "/api/users", "CreateUser", w.CreateUser, requireLogin)
	add(http.MethodDelete, "/api/users/:username", "DeleteUser", w.DeleteUser, requireLogin)
}

func (w *Wrapper) preprocess(operationID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			httpModule.Preprocess(ctx, w, moduleName, operationID)
			return next(ctx)
		}
	}
}

func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sess, err := session.GetSession(ctx.Request().Context())
		if err != nil {
			return err
		}
		if !sess.LoggedIn() {
			return core.UnauthorizedError("not logged in")
		}
		ctx.Set(core.UserContextKey, sess.Username)
		audit.Middleware(ctx, moduleName, fmt.Sprint(ctx.Get(core.OperationIDContextKey)))
		return next(ctx)
	}
}

// auditLog returns the audit logger for an event concerning the given user.
func auditLog(ctx echo.Context, username string, event string) *logrus.Entry {
	return audit.Log(ctx.Request().Context(), log.Logger().WithField(core.LogFieldUsername, username), event)
}

func currentSession(ctx echo.Context) (*session.Session, error) {
	return session.GetSession(ctx.Request().Context())
}

// StartSignup starts a signup and stores its ID in the session.
func (w *Wrapper) StartSignup(ctx echo.Context) error {
	var request SignupRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	id, err := w.Signups.Create(ctx.Request().Context(), request.params())
	if err != nil {
		return err
	}
	return startedFlow(ctx, flow.KindSignup, id)
}

// GetSignupStatus returns the status of the session's signup. A finished signup logs in the new user.
func (w *Wrapper) GetSignupStatus(ctx echo.Context) error {
	return flowStatus(ctx, w.Signups, flow.KindSignup, true)
}

// DeleteSignup stops and removes the session's signup.
func (w *Wrapper) DeleteSignup(ctx echo.Context) error {
	return deleteFlow(ctx, w.Signups, flow.KindSignup)
}

// StartCredentialLogin starts a login with a credential and stores its ID in the session.
func (w *Wrapper) StartCredentialLogin(ctx echo.Context) error {
	var request CredentialLoginRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	id, err := w.Logins.Create(request.Username, request.Nonce)
	if err != nil {
		return err
	}
	return startedFlow(ctx, flow.KindLogin, id)
}

// GetCredentialLoginStatus returns the status of the session's login. A finished login logs in the user.
func (w *Wrapper) GetCredentialLoginStatus(ctx echo.Context) error {
	return flowStatus(ctx, w.Logins, flow.KindLogin, true)
}

// DeleteCredentialLogin stops and removes the session's login.
func (w *Wrapper) DeleteCredentialLogin(ctx echo.Context) error {
	return deleteFlow(ctx, w.Logins, flow.KindLogin)
}

// StartIssuance starts issuing a credential to the logged-in user.
func (w *Wrapper) StartIssuance(ctx echo.Context) error {
	var request IssuanceRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	id, err := w.Issuances.Create(sess.Username, request.Nonce)
	if err != nil {
		return err
	}
	return startedFlow(ctx, flow.KindIssuance, id)
}

// GetIssuanceStatus returns the status of the session's issuance.
func (w *Wrapper) GetIssuanceStatus(ctx echo.Context) error {
	return flowStatus(ctx, w.Issuances, flow.KindIssuance, false)
}

// DeleteIssuance stops and removes the session's issuance.
func (w *Wrapper) DeleteIssuance(ctx echo.Context) error {
	return deleteFlow(ctx, w.Issuances, flow.KindIssuance)
}

func startedFlow(ctx echo.Context, kind flow.Kind, id string) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	sess.SetFlow(string(kind), id)
	if err := sess.Save(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, FlowResponse{ID: id})
}

// flowStatus returns the snapshot of the session's flow of the given kind. A flow that ended is collected:
// it's removed from its manager and the session, after logging in the user of a finished signup or login.
func flowStatus(ctx echo.Context, flows Flows, kind flow.Kind, loginWhenFinished bool) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	id, ok := sess.Flow(string(kind))
	if !ok {
		return flow.Errorf(flow.CodeFlowNotFound, "no %s flow in this session", kind)
	}
	snapshot, err := flows.GetStatus(id)
	if err != nil {
		return err
	}
	if !snapshot.Status.IsTerminal() {
		return ctx.JSON(http.StatusOK, snapshot)
	}
	var loggedIn string
	if loginWhenFinished && snapshot.Status == flow.StatusFinished {
		username, err := flows.GetUser(id)
		if err != nil {
			return err
		}
		if sess.Username != username {
			sess.Login(username)
			loggedIn = username
		}
	}
	// the pruner might have beaten us to it
	if err := flows.Delete(id); err != nil && !errors.Is(err, flow.ErrFlowNotFound) {
		return err
	}
	sess.ClearFlow(string(kind))
	if err := sess.Save(); err != nil {
		return err
	}
	if loggedIn != "" {
		auditLog(ctx, loggedIn, audit.UserLoggedInEvent).
			WithField(core.LogFieldFlowID, id).
			Infof("User logged in (%s)", kind)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

func deleteFlow(ctx echo.Context, flows Flows, kind flow.Kind) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	id, ok := sess.Flow(string(kind))
	if !ok {
		return flow.Errorf(flow.CodeFlowNotFound, "no %s flow in this session", kind)
	}
	// the flow might have been evicted already
	if err := flows.Delete(id); err != nil && !errors.Is(err, flow.ErrFlowNotFound) {
		return err
	}
	sess.ClearFlow(string(kind))
	if err := sess.Save(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PasswordLogin logs in with a username and password.
func (w *Wrapper) PasswordLogin(ctx echo.Context) error {
	var request PasswordLoginRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	record, err := w.Users.CheckPassword(ctx.Request().Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			auditLog(ctx, request.Username, audit.LoginFailedEvent).Info("Login failed (password)")
		}
		return err
	}
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	sess.Login(record.Username)
	if err := sess.Save(); err != nil {
		return err
	}
	auditLog(ctx, record.Username, audit.UserLoggedInEvent).Info("User logged in (password)")
	return ctx.JSON(http.StatusOK, record)
}

// Logout logs out the user of the session.
func (w *Wrapper) Logout(ctx echo.Context) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	username := sess.Username
	sess.Logout()
	if err := sess.Save(); err != nil {
		return err
	}
	if username != "" {
		auditLog(ctx, username, audit.UserLoggedOutEvent).Info("User logged out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateInvitation creates a single-use invitation for a wallet to scan. The invitation carries a new nonce,
// which the browser passes when it starts the flow, so the flow can find the wallet's request.
func (w *Wrapper) CreateInvitation(ctx echo.Context) error {
	var request InvitationRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	switch request.Type {
	case "", flow.KindSignup, flow.KindLogin, flow.KindIssuance:
	default:
		return core.InvalidInputError("invalid invitation type: %s", request.Type)
	}
	nonce := uuid.NewString()
	properties := agent.Properties{agent.PropertyNonce: nonce}
	if request.Type != "" {
		properties[agent.PropertyType] = string(request.Type)
	}
	invitation, err := w.Agent.CreateInvitation(ctx.Request().Context(), agent.InvitationRequest{
		DirectRoute:    true,
		ManualAccept:   true,
		MaxAcceptances: 1,
		Properties:     properties,
	})
	if err != nil {
		return fmt.Errorf("unable to create invitation: %w", err)
	}
	audit.Log(ctx.Request().Context(), log.Logger(), audit.InvitationCreatedEvent).
		Infof("Invitation created (id=%s, type=%s)", invitation.ID, request.Type)
	return ctx.JSON(http.StatusOK, InvitationResponse{
		Nonce:    nonce,
		URL:      invitation.URL,
		ShortURL: invitation.ShortURL,
	})
}

// GetUser returns the logged-in user.
func (w *Wrapper) GetUser(ctx echo.Context) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	record, err := w.Users.Read(ctx.Request().Context(), sess.Username)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

// UpdateUser replaces the personal info and opts of the logged-in user.
func (w *Wrapper) UpdateUser(ctx echo.Context) error {
	var request UpdateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	record, err := w.Users.Update(ctx.Request().Context(), sess.Username, request.PersonalInfo, request.Opts)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

// ListUsers returns a summary of all users, or of the owner of the account given by the `account` query parameter.
func (w *Wrapper) ListUsers(ctx echo.Context) error {
	if account := ctx.QueryParam("account"); account != "" {
		record, err := w.Users.ReadByAccount(ctx.Request().Context(), account)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, summarize(*record))
	}
	records, err := w.Users.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summarize(records...))
}

// CreateUser creates a user without a signup flow.
func (w *Wrapper) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	request.Username = strings.TrimSpace(request.Username)
	if request.Username == "" || request.Password == "" {
		return core.InvalidInputError("username and password are required")
	}
	record, err := w.Users.Create(ctx.Request().Context(), request.Username, request.Password, request.PersonalInfo, request.Opts)
	if err != nil {
		return err
	}
	audit.Log(ctx.Request().Context(), log.Logger(), audit.AccountCreatedEvent).Infof("Account created: %s", record.Username)
	return ctx.JSON(http.StatusCreated, record)
}

// DeleteUser deletes the account of the logged-in user, and logs out.
func (w *Wrapper) DeleteUser(ctx echo.Context) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return err
	}
	username := ctx.Param("username")
	if username != sess.Username {
		return core.Error(http.StatusForbidden, "users can only delete their own account")
	}
	if err := w.Users.Delete(ctx.Request().Context(), username); err != nil {
		return err
	}
	sess.Logout()
	if err := sess.Save(); err != nil {
		return err
	}
	auditLog(ctx, username, audit.AccountDeletedEvent).Info("Account deleted")
	return ctx.NoContent(http.StatusNoContent)
}
