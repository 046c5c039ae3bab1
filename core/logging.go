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
package core

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldFlowID is the log field key for the ID of a signup, login or issuance flow.
	LogFieldFlowID = "flowID"
	// LogFieldFlowKind is the log field key for the kind of flow (signup, login, issuance).
	LogFieldFlowKind = "flowKind"
	// LogFieldFlowStatus is the log field key for the status a flow transitioned to.
	LogFieldFlowStatus = "flowStatus"
	// LogFieldUsername is the log field key for the application user a flow operates on.
	LogFieldUsername = "username"

	// LogFieldConnectionID is the log field key for the ID of an agent connection.
	LogFieldConnectionID = "connectionID"
	// LogFieldCredentialID is the log field key for the ID of a credential offered through the agent.
	LogFieldCredentialID = "credentialID"
	// LogFieldVerificationID is the log field key for the ID of a verification (proof request) on the agent.
	LogFieldVerificationID = "verificationID"
	// LogFieldNonce is the log field key for the nonce correlating a scanned code with an inbound agent request.
	LogFieldNonce = "nonce"

	// LogFieldStore is the log field key for the name of a store managed by the storage module.
	LogFieldStore = "store"
)
