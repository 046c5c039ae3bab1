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
	"testing"

	"github.com/nuts-foundation/nuts-demo-credentials/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *sqlStore {
	result := NewSQLStore(storage.NewTestStorageEngine(t).GetSQLDatabase()).(*sqlStore)
	result.hashCost = bcrypt.MinCost
	return result
}

var alicePersonalInfo = PersonalInfo{
	"first_name":           "Alice",
	"last_name":            "Smith",
	AccountNumberAttribute: "1234567",
}

func TestSQLStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		store := newTestStore(t)

		record, err := store.Create(ctx, " Alice@example.com ", "secret", alicePersonalInfo, Opts{AgentName: "alice-agent"})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", record.Username)
		assert.NotEqual(t, "secret", record.PasswordHash)
		assert.Equal(t, "1234567", *record.AccountNumber)
		assert.False(t, record.CreatedAt.IsZero())
	})
	t.Run("username taken", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Create(ctx, "alice", "secret", nil, Opts{})
		require.NoError(t, err)

		_, err = store.Create(ctx, "ALICE", "other", nil, Opts{})

		assert.ErrorIs(t, err, ErrExists)
	})
	t.Run("empty password", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Create(ctx, "alice", "", nil, Opts{})

		assert.EqualError(t, err, "password must not be empty")
	})
	t.Run("empty username", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Create(ctx, " ", "secret", nil, Opts{})

		assert.EqualError(t, err, "username must not be empty")
	})
}

func TestSQLStore_Read(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, err := store.Create(ctx, "alice", "secret", alicePersonalInfo, Opts{AgentName: "alice-agent", MobileUser: true})
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		record, err := store.Read(ctx, "Alice")

		require.NoError(t, err)
		assert.Equal(t, alicePersonalInfo, record.PersonalInfo)
		assert.Equal(t, Opts{AgentName: "alice-agent", MobileUser: true}, record.Opts)
	})
	t.Run("by account", func(t *testing.T) {
		record, err := store.ReadByAccount(ctx, "1234567")

		require.NoError(t, err)
		assert.Equal(t, "alice", record.Username)
	})
	t.Run("by agent name", func(t *testing.T) {
		record, err := store.ReadByAgentName(ctx, "alice-agent")

		require.NoError(t, err)
		assert.Equal(t, "alice", record.Username)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := store.Read(ctx, "bob")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.ReadByAccount(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.ReadByAgentName(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, _ = store.Create(ctx, "bob", "secret", nil, Opts{})
	_, _ = store.Create(ctx, "alice", "secret", nil, Opts{})

	records, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0].Username)
	assert.Equal(t, "bob", records[1].Username)
}

func TestSQLStore_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, err := store.Create(ctx, "alice", "secret", alicePersonalInfo, Opts{MobileUser: true})
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		record, err := store.Update(ctx, "alice", PersonalInfo{"first_name": "Alicia"}, Opts{InvitationURL: "https://agent/invite"})

		require.NoError(t, err)
		assert.Nil(t, record.AccountNumber)
		stored, _ := store.Read(ctx, "alice")
		assert.Equal(t, PersonalInfo{"first_name": "Alicia"}, stored.PersonalInfo)
		assert.Equal(t, Opts{InvitationURL: "https://agent/invite"}, stored.Opts)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := store.Update(ctx, "bob", nil, Opts{})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, _ = store.Create(ctx, "alice", "secret", nil, Opts{})

	require.NoError(t, store.Delete(ctx, "alice"))

	_, err := store.Read(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "alice"), ErrNotFound)
}

func TestSQLStore_CheckPassword(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, _ = store.Create(ctx, "alice", "secret", nil, Opts{})

	t.Run("ok", func(t *testing.T) {
		record, err := store.CheckPassword(ctx, "alice", "secret")

		require.NoError(t, err)
		assert.Equal(t, "alice", record.Username)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := store.CheckPassword(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := store.CheckPassword(ctx, "bob", "secret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestPersonalInfo_Get(t *testing.T) {
	info := PersonalInfo{"First Name": "Alice", "dob": "1990-01-01"}

	value, ok := info.Get("dob")
	assert.True(t, ok)
	assert.Equal(t, "1990-01-01", value)

	value, ok = info.Get("firstname")
	assert.True(t, ok)
	assert.Equal(t, "Alice", value)

	_, ok = info.Get("ssn")
	assert.False(t, ok)
}
