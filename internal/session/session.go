// Package session holds the signed-in identity as one object built at
// startup, instead of ad hoc per-call key/value reads.
package session

import (
	"encoding/json"

	"github.com/yashsurani047/workmanagement1-sub000/internal/logging"
	"github.com/yashsurani047/workmanagement1-sub000/internal/repository"
)

type Session struct {
	UserID         string
	Username       string
	OrganizationID string
	Token          string
}

// Authenticated reports whether a usable identity is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != "" && s.Token != ""
}

// Canonical storage keys.
const (
	keyUserID   = "user_id"
	keyUsername = "username"
	keyOrgID    = "organization_id"
	keyToken    = "token"
)

// Legacy keys written by older client versions. Load checks them once, in
// this order, and migrates the winner to the canonical key.
var legacyTokenKeys = []string{"userToken"}

const legacyUserInfoKey = "userInfo"

type legacyUserInfo struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	OrganizationID string `json:"organization_id"`
	Token          string `json:"token"`
}

// Load reads the session out of the store. Missing values stay empty; the
// caller decides whether an unauthenticated session is acceptable.
func Load(repo *repository.SessionRepository) (*Session, error) {
	s := &Session{}
	var err error

	if s.UserID, err = repo.Get(keyUserID); err != nil {
		return nil, err
	}
	if s.Username, err = repo.Get(keyUsername); err != nil {
		return nil, err
	}
	if s.OrganizationID, err = repo.Get(keyOrgID); err != nil {
		return nil, err
	}
	if s.Token, err = repo.Get(keyToken); err != nil {
		return nil, err
	}

	if s.Token == "" {
		if err := resolveLegacyToken(repo, s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func resolveLegacyToken(repo *repository.SessionRepository, s *Session) error {
	for _, key := range legacyTokenKeys {
		token, err := repo.Get(key)
		if err != nil {
			return err
		}
		if token != "" {
			logging.Logger.WithField("source", key).Info("migrated auth token from legacy key")
			s.Token = token
			return migrateToken(repo, key, token)
		}
	}

	blob, err := repo.Get(legacyUserInfoKey)
	if err != nil || blob == "" {
		return err
	}

	var info legacyUserInfo
	if err := json.Unmarshal([]byte(blob), &info); err != nil {
		// A corrupt blob is not fatal; the user just has to log in again.
		logging.Logger.WithError(err).Warn("ignoring unreadable legacy userInfo blob")
		return nil
	}
	if info.Token == "" {
		return nil
	}

	logging.Logger.WithField("source", legacyUserInfoKey).Info("migrated auth token from legacy key")
	s.Token = info.Token
	if s.UserID == "" {
		s.UserID = info.UserID
	}
	if s.Username == "" {
		s.Username = info.Username
	}
	if s.OrganizationID == "" {
		s.OrganizationID = info.OrganizationID
	}
	if err := repo.Set(keyToken, info.Token); err != nil {
		return err
	}
	return repo.Delete(legacyUserInfoKey)
}

func migrateToken(repo *repository.SessionRepository, legacyKey, token string) error {
	if err := repo.Set(keyToken, token); err != nil {
		return err
	}
	return repo.Delete(legacyKey)
}

// Save persists the whole session. Values are written individually but the
// session is always saved as a unit so related keys cannot drift.
func Save(repo *repository.SessionRepository, s *Session) error {
	if err := repo.Set(keyUserID, s.UserID); err != nil {
		return err
	}
	if err := repo.Set(keyUsername, s.Username); err != nil {
		return err
	}
	if err := repo.Set(keyOrgID, s.OrganizationID); err != nil {
		return err
	}
	return repo.Set(keyToken, s.Token)
}

// Clear wipes all session state (logout).
func Clear(repo *repository.SessionRepository) error {
	return repo.Clear()
}
