package service

import (
	"jackut/internal/model"
)

// AddFriend sends a friend request from the session owner to target.
// If target had already invited the caller, the pair becomes mutual
// friends immediately and the pending invite is cleared; otherwise a
// new invite is recorded on the target.
func (s *System) AddFriend(token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	if caller.Login == target {
		return model.ErrSelfFriend
	}
	targetUser, ok := s.store.User(target)
	if !ok {
		return model.ErrUserNotFound
	}
	if caller.HasEnemy(target) || targetUser.HasEnemy(caller.Login) {
		return &model.EnemyError{Name: targetUser.Name}
	}
	if model.Contains(caller.Friends, target) {
		return model.ErrAlreadyFriends
	}

	// Symmetric completion: the target was already waiting on us.
	if model.Contains(caller.Invites, target) {
		if err := caller.AddFriend(target); err != nil {
			return err
		}
		if err := targetUser.AddFriend(caller.Login); err != nil {
			return err
		}
		caller.Invites = model.Remove(caller.Invites, target)
		return nil
	}

	return targetUser.AddInvite(caller.Login)
}

// IsFriend reports whether target is in login's confirmed friend set.
func (s *System) IsFriend(login, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.User(login)
	if !ok {
		return false, model.ErrUserNotFound
	}
	return model.Contains(user.Friends, target), nil
}

// Friends returns login's confirmed friends in insertion order.
func (s *System) Friends(login string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.User(login)
	if !ok {
		return nil, model.ErrUserNotFound
	}
	friends := make([]string, len(user.Friends))
	copy(friends, user.Friends)
	return friends, nil
}
