package model

import "errors"

// EnemyError blocks friend requests, recados, idol and crush tags
// between a pair with an enemy relation in either direction. It carries
// the display name of the blocked counterpart.
type EnemyError struct {
	Name string
}

func (e *EnemyError) Error() string {
	return e.Name + " is your enemy"
}

var (
	// ErrSelfFriend is returned when a user sends a friend request to themselves
	ErrSelfFriend = errors.New("cannot add yourself as a friend")

	// ErrAlreadyFriends is returned when the pair is already friends
	ErrAlreadyFriends = errors.New("already friends")

	// ErrInvitePending is returned when the same friend invite is already
	// waiting for the target's acceptance
	ErrInvitePending = errors.New("friend request already pending")

	// ErrSelfFan is returned when a user adds themselves as an idol
	ErrSelfFan = errors.New("cannot be a fan of yourself")

	// ErrAlreadyIdol is returned on a duplicate idol tag
	ErrAlreadyIdol = errors.New("already added as an idol")

	// ErrSelfCrush is returned when a user adds themselves as a crush
	ErrSelfCrush = errors.New("cannot be your own crush")

	// ErrAlreadyCrush is returned on a duplicate crush tag
	ErrAlreadyCrush = errors.New("already added as a crush")

	// ErrSelfEnemy is returned when a user adds themselves as an enemy
	ErrSelfEnemy = errors.New("cannot be your own enemy")

	// ErrAlreadyEnemy is returned on a duplicate enemy tag
	ErrAlreadyEnemy = errors.New("already added as an enemy")
)
