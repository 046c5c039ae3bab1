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

package user

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrExists is returned when creating a user with a username that is already taken.
var ErrExists = errors.New("user already exists")

// ErrInvalidCredentials is returned when the password does not match, or the user does not exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountNumberAttribute is the personal info attribute holding the bank account number of a user.
const AccountNumberAttribute = "account_number"

// PersonalInfo holds the attributes of a user, keyed by attribute name (e.g. first_name, dob).
type PersonalInfo map[string]string

// Get returns the value of the given attribute. Attribute names are matched exactly first,
// then case-insensitively ignoring spaces, since proof attribute names are normalized that way.
func (p PersonalInfo) Get(name string) (string, bool) {
	if value, ok := p[name]; ok {
		return value, true
	}
	normalized := NormalizeAttributeName(name)
	for key, value := range p {
		if NormalizeAttributeName(key) == normalized {
			return value, true
		}
	}
	return "", false
}

// NormalizeAttributeName lowercases the given attribute name and strips all spaces.
func NormalizeAttributeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// Opts holds how the agent of the user can be reached.
type Opts struct {
	// AgentName is the name of the user's agent, used to send connection offers in-band.
	AgentName string `json:"agent_name,omitempty"`
	// InvitationURL is an invitation posted by the user's agent, to be accepted out-of-band.
	InvitationURL string `json:"invitation_url,omitempty"`
	// MobileUser is set when the user's agent is a mobile wallet that connects by scanning a code.
	MobileUser bool `json:"mobile_user"`
}

// Record is a user account of the demo application.
type Record struct {
	Username      string       `gorm:"primaryKey" json:"username"`
	PasswordHash  string       `json:"-"`
	PersonalInfo  PersonalInfo `gorm:"serializer:json" json:"personal_info"`
	Opts          Opts         `gorm:"embedded" json:"opts"`
	AccountNumber *string      `json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName returns the table name for this DTO.
func (r Record) TableName() string {
	return "app_user"
}

// Store provides CRUD operations on user accounts.
type Store interface {
	// Read returns the user with the given username, or ErrNotFound.
	Read(ctx context.Context, username string) (*Record, error)
	// ReadByAccount returns the user owning the given account number, or ErrNotFound.
	ReadByAccount(ctx context.Context, accountNumber string) (*Record, error)
	// ReadByAgentName returns the user whose agent has the given name, or ErrNotFound.
	ReadByAgentName(ctx context.Context, agentName string) (*Record, error)
	// List returns all users, ordered by username.
	List(ctx context.Context) ([]Record, error)
	// Create creates a new user. The password is hashed before it's stored.
	// It returns ErrExists if the username is already taken.
	Create(ctx context.Context, username string, password string, personalInfo PersonalInfo, opts Opts) (*Record, error)
	// Update replaces the personal info and opts of an existing user.
	Update(ctx context.Context, username string, personalInfo PersonalInfo, opts Opts) (*Record, error)
	// Delete deletes the user. It returns ErrNotFound if the user does not exist.
	Delete(ctx context.Context, username string) error
	// CheckPassword returns the user if the password matches, or ErrInvalidCredentials.
	CheckPassword(ctx context.Context, username string, password string) (*Record, error)
}
