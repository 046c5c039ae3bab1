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
	"fmt"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/user/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ Store = (*sqlStore)(nil)

// NewSQLStore creates a user store backed by the given SQL database.
func NewSQLStore(db *gorm.DB) Store {
	return &sqlStore{
		db:       db,
		hashCost: bcrypt.DefaultCost,
	}
}

type sqlStore struct {
	db       *gorm.DB
	hashCost int
}

func (s *sqlStore) Read(ctx context.Context, username string) (*Record, error) {
	return s.first(ctx, "username = ?", normalizeUsername(username))
}

func (s *sqlStore) ReadByAccount(ctx context.Context, accountNumber string) (*Record, error) {
	if len(accountNumber) == 0 {
		return nil, ErrNotFound
	}
	return s.first(ctx, "account_number = ?", accountNumber)
}

func (s *sqlStore) ReadByAgentName(ctx context.Context, agentName string) (*Record, error) {
	if len(agentName) == 0 {
		return nil, ErrNotFound
	}
	return s.first(ctx, "agent_name = ?", agentName)
}

func (s *sqlStore) first(ctx context.Context, query string, args ...interface{}) (*Record, error) {
	var result Record
	err := s.db.WithContext(ctx).Where(query, args...).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *sqlStore) List(ctx context.Context) ([]Record, error) {
	var result []Record
	if err := s.db.WithContext(ctx).Order("username").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqlStore) Create(ctx context.Context, username string, password string, personalInfo PersonalInfo, opts Opts) (*Record, error) {
	username = normalizeUsername(username)
	if len(username) == 0 {
		return nil, errors.New("username must not be empty")
	}
	if len(password) == 0 {
		return nil, errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("unable to hash password: %w", err)
	}
	record := Record{
		Username:      username,
		PasswordHash:  string(hash),
		PersonalInfo:  personalInfo,
		Opts:          opts,
		AccountNumber: accountNumberOf(personalInfo),
	}
	if record.PersonalInfo == nil {
		record.PersonalInfo = PersonalInfo{}
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Record{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrExists
		}
		return tx.Create(&record).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrExists
	}
	if err != nil {
		return nil, err
	}
	log.Logger().WithField(core.LogFieldUsername, username).Info("User created")
	return &record, nil
}

func (s *sqlStore) Update(ctx context.Context, username string, personalInfo PersonalInfo, opts Opts) (*Record, error) {
	var result *Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record Record
		err := tx.Where("username = ?", normalizeUsername(username)).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		record.PersonalInfo = personalInfo
		record.Opts = opts
		record.AccountNumber = accountNumberOf(personalInfo)
		// Select("*") so zero values (e.g. MobileUser=false) are written as well
		if err := tx.Select("*").Save(&record).Error; err != nil {
			return err
		}
		result = &record
		return nil
	})
	return result, err
}

func (s *sqlStore) Delete(ctx context.Context, username string) error {
	result := s.db.WithContext(ctx).Where("username = ?", normalizeUsername(username)).Delete(&Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	log.Logger().WithField(core.LogFieldUsername, username).Info("User deleted")
	return nil
}

func (s *sqlStore) CheckPassword(ctx context.Context, username string, password string) (*Record, error) {
	record, err := s.Read(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return record, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func accountNumberOf(personalInfo PersonalInfo) *string {
	if accountNumber, ok := personalInfo[AccountNumberAttribute]; ok && len(accountNumber) > 0 {
		return &accountNumber
	}
	return nil
}
