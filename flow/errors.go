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
	"errors"
	"fmt"
)

// Code is the machine-readable code of a flow error.
type Code string

const (
	CodeInvalidParameters       Code = "INVALID_PARAMETERS"
	CodeFlowNotFound            Code = "FLOW_NOT_FOUND"
	CodeUserNotFound            Code = "USER_NOT_FOUND"
	CodeUserExists              Code = "USER_EXISTS"
	CodeMissingAttributes       Code = "MISSING_ATTRIBUTES"
	CodeConnectionFailed        Code = "CONNECTION_FAILED"
	CodeProofRejected           Code = "PROOF_REJECTED"
	CodeProofInvalid            Code = "PROOF_INVALID"
	CodeNoCredentialDefinitions Code = "NO_CREDENTIAL_DEFINITIONS"
	CodeCredentialRejected      Code = "CREDENTIAL_REJECTED"
	CodeStopped                 Code = "STOPPED"
	CodeUnknown                 Code = "UNKNOWN_ERROR"
)

var (
	// ErrInvalidParameters is returned when a flow is created with missing or invalid parameters.
	ErrInvalidParameters = &Error{Code: CodeInvalidParameters}
	// ErrFlowNotFound is returned when there's no flow with the given ID.
	ErrFlowNotFound = &Error{Code: CodeFlowNotFound}
	// ErrUserNotFound is returned when the user of a flow doesn't exist.
	ErrUserNotFound = &Error{Code: CodeUserNotFound}
	// ErrUserExists is returned when signing up with a username that is taken.
	ErrUserExists = &Error{Code: CodeUserExists}
	// ErrMissingAttributes is returned when the user record lacks attributes required by the credential schema.
	ErrMissingAttributes = &Error{Code: CodeMissingAttributes}
	// ErrConnectionFailed is returned when no connection could be established with the holder's agent.
	ErrConnectionFailed = &Error{Code: CodeConnectionFailed}
	// ErrProofRejected is returned when the proof request didn't pass.
	ErrProofRejected = &Error{Code: CodeProofRejected}
	// ErrProofInvalid is returned when a passed proof doesn't satisfy the application's checks.
	ErrProofInvalid = &Error{Code: CodeProofInvalid}
	// ErrNoCredentialDefinitions is returned when our agent has no credential definitions to issue.
	ErrNoCredentialDefinitions = &Error{Code: CodeNoCredentialDefinitions}
	// ErrCredentialRejected is returned when the credential offer wasn't accepted.
	ErrCredentialRejected = &Error{Code: CodeCredentialRejected}
	// ErrStopped is the error of a flow that was stopped.
	ErrStopped = &Error{Code: CodeStopped, Err: errors.New("flow was stopped")}
)

// Error is an error with a code. Errors match (errors.Is) when their codes are equal.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Code == e.Code
}

// ErrorCode returns the code, so HTTP problem responses include it.
func (e *Error) ErrorCode() string {
	return string(e.Code)
}

// withCode attaches the code to err, unless err already carries a code.
func withCode(code Code, err error) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}
	return &Error{Code: code, Err: err}
}

func errorf(code Code, format string, args ...interface{}) error {
	return withCode(code, fmt.Errorf(format, args...))
}

// Errorf returns a new error with the given code.
func Errorf(code Code, format string, args ...interface{}) error {
	return errorf(code, format, args...)
}

// CodeOf returns the code of the error, or CodeUnknown when it carries none.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}
