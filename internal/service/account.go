package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jackut/internal/model"
)

// CreateAccount registers a new user with empty collections.
func (s *System) CreateAccount(login, password, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(login) == "" {
		return model.ErrInvalidLogin
	}
	if strings.TrimSpace(password) == "" {
		return model.ErrInvalidPassword
	}
	if s.store.HasUser(login) {
		return model.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	s.store.AddUser(model.NewUser(login, string(hash), name))
	return nil
}

// Login authenticates the user and opens a session, returning its token.
// An unknown login and a wrong password yield the same error.
func (s *System) Login(login, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.User(login)
	if !ok {
		return "", model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}
	return s.sessions.Open(login)
}

// GetAttribute resolves a profile attribute of any registered user.
func (s *System) GetAttribute(login, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.User(login)
	if !ok {
		return "", model.ErrUserNotFound
	}
	return user.Attribute(name)
}

// EditProfile upserts a profile attribute of the session owner.
func (s *System) EditProfile(token, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.resolve(token)
	if err != nil {
		return err
	}
	user.SetAttribute(name, value)
	return nil
}

// RemoveAccount deletes the session owner and cascades: communities it
// owned disappear, memberships are stripped, its login vanishes from
// every relationship collection, recados it sent are purged and all of
// its sessions are revoked.
func (s *System) RemoveAccount(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.resolve(token)
	if err != nil {
		return err
	}
	login := user.Login

	for _, name := range s.store.CommunityNames() {
		community, ok := s.store.Community(name)
		if !ok {
			continue
		}
		if community.Owner == login {
			s.store.RemoveCommunity(name)
		} else {
			community.RemoveMember(login)
		}
	}

	for _, other := range s.store.Users() {
		if other.Login == login {
			continue
		}
		other.Friends = model.Remove(other.Friends, login)
		other.Invites = model.Remove(other.Invites, login)
		other.Idols = model.Remove(other.Idols, login)
		other.Crushes = model.Remove(other.Crushes, login)
		other.Enemies = model.Remove(other.Enemies, login)

		// Joined lists may still name communities that died with their
		// owner; drop anything that no longer resolves.
		kept := other.Communities[:0]
		for _, name := range other.Communities {
			if s.store.HasCommunity(name) {
				kept = append(kept, name)
			}
		}
		other.Communities = kept

		messages := other.Messages[:0]
		for _, msg := range other.Messages {
			if !model.SentBy(msg, login) {
				messages = append(messages, msg)
			}
		}
		other.Messages = messages
	}

	s.store.RemoveUser(login)
	s.sessions.CloseAll(login)
	return nil
}
