package model

import (
	"errors"
	"strings"
)

// AttrName is the reserved profile attribute backed by the display name.
const AttrName = "nome"

// User represents a registered account and everything hanging off it:
// profile attributes, relationship collections and the recado queue.
// All collections keep insertion order so enumeration is stable across
// snapshot round-trips.
type User struct {
	Login        string            `json:"login"`
	PasswordHash string            `json:"password_hash"`
	Name         string            `json:"name"`
	Attributes   map[string]string `json:"attributes"`
	Friends      []string          `json:"friends"`
	Invites      []string          `json:"invites"` // pending incoming friend invites
	Messages     []string          `json:"messages"`
	Communities  []string          `json:"communities"`
	Idols        []string          `json:"idols"`
	Crushes      []string          `json:"crushes"`
	Enemies      []string          `json:"enemies"`
}

// NewUser creates a user with empty collections.
func NewUser(login, passwordHash, name string) *User {
	return &User{
		Login:        login,
		PasswordHash: passwordHash,
		Name:         name,
		Attributes:   make(map[string]string),
	}
}

// Attribute resolves a profile attribute. "nome" always resolves to the
// display name; anything else comes from the custom attribute map.
func (u *User) Attribute(name string) (string, error) {
	if name == AttrName {
		return u.Name, nil
	}
	value, ok := u.Attributes[name]
	if !ok {
		return "", ErrAttributeNotSet
	}
	return value, nil
}

// SetAttribute upserts a profile attribute. Writing "nome" replaces the
// display name instead of shadowing it in the map.
func (u *User) SetAttribute(name, value string) {
	if name == AttrName {
		u.Name = value
		return
	}
	if u.Attributes == nil {
		u.Attributes = make(map[string]string)
	}
	u.Attributes[name] = value
}

// HasEnemy reports whether the user tagged login as an enemy.
func (u *User) HasEnemy(login string) bool {
	return Contains(u.Enemies, login)
}

// AddInvite records a pending friend invite from login.
func (u *User) AddInvite(login string) error {
	if Contains(u.Invites, login) {
		return ErrInvitePending
	}
	u.Invites = append(u.Invites, login)
	return nil
}

// AddFriend records a confirmed friendship with login.
func (u *User) AddFriend(login string) error {
	if Contains(u.Friends, login) {
		return ErrAlreadyFriends
	}
	u.Friends = append(u.Friends, login)
	return nil
}

// PushMessage appends a recado to the tail of the queue.
func (u *User) PushMessage(msg string) {
	u.Messages = append(u.Messages, msg)
}

// PopMessage removes and returns the head of the recado queue with the
// sender prefix stripped.
func (u *User) PopMessage() (string, error) {
	if len(u.Messages) == 0 {
		return "", ErrNoMessages
	}
	msg := u.Messages[0]
	u.Messages = u.Messages[1:]
	if i := strings.Index(msg, ":"); i >= 0 {
		msg = msg[i+1:]
	}
	return msg, nil
}

// JoinCommunity records the community name in the joined list, once.
func (u *User) JoinCommunity(name string) {
	if !Contains(u.Communities, name) {
		u.Communities = append(u.Communities, name)
	}
}

var (
	// ErrInvalidLogin is returned when creating an account with a blank login
	ErrInvalidLogin = errors.New("invalid login")

	// ErrInvalidPassword is returned when creating an account with a blank password
	ErrInvalidPassword = errors.New("invalid password")

	// ErrAccountExists is returned when the login is already taken
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials is returned on any failed login attempt, without
	// distinguishing an unknown login from a wrong password
	ErrInvalidCredentials = errors.New("invalid login or password")

	// ErrUserNotFound is returned when a login resolves to no account
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidSession is returned when a token resolves to no live session
	ErrInvalidSession = errors.New("invalid session")

	// ErrAttributeNotSet is returned when a profile attribute was never filled
	ErrAttributeNotSet = errors.New("attribute not set")
)
