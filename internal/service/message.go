package service

import (
	"jackut/internal/model"
)

// SendMessage enqueues a recado from the session owner onto target's
// queue. The sender login travels as a colon-delimited prefix.
func (s *System) SendMessage(token, target, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	if caller.Login == target {
		return model.ErrSelfMessage
	}
	targetUser, ok := s.store.User(target)
	if !ok {
		return model.ErrUserNotFound
	}
	if caller.HasEnemy(target) || targetUser.HasEnemy(caller.Login) {
		return &model.EnemyError{Name: targetUser.Name}
	}

	targetUser.PushMessage(model.EncodeMessage(caller.Login, body))
	return nil
}

// ReadMessage dequeues the oldest recado of the session owner, with the
// sender prefix stripped.
func (s *System) ReadMessage(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return "", err
	}
	return caller.PopMessage()
}
