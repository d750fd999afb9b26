package service

import (
	"jackut/internal/model"
)

// AddIdol tags target as an idol of the session owner.
func (s *System) AddIdol(token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	if caller.Login == target {
		return model.ErrSelfFan
	}
	targetUser, ok := s.store.User(target)
	if !ok {
		return model.ErrUserNotFound
	}
	if caller.HasEnemy(target) || targetUser.HasEnemy(caller.Login) {
		return &model.EnemyError{Name: targetUser.Name}
	}
	if model.Contains(caller.Idols, target) {
		return model.ErrAlreadyIdol
	}

	caller.Idols = append(caller.Idols, target)
	return nil
}

// IsFan reports whether login tagged idol as an idol.
func (s *System) IsFan(login, idol string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.User(login)
	if !ok {
		return false, model.ErrUserNotFound
	}
	return model.Contains(user.Idols, idol), nil
}

// Fans returns the logins of every user who tagged login as an idol,
// in registration order.
func (s *System) Fans(login string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.HasUser(login) {
		return nil, model.ErrUserNotFound
	}

	var fans []string
	for _, user := range s.store.Users() {
		if model.Contains(user.Idols, login) {
			fans = append(fans, user.Login)
		}
	}
	return fans, nil
}

// AddCrush tags target as a crush of the session owner. When the crush
// is mutual both parties are notified through the regular recado queue.
func (s *System) AddCrush(token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	if caller.Login == target {
		return model.ErrSelfCrush
	}
	targetUser, ok := s.store.User(target)
	if !ok {
		return model.ErrUserNotFound
	}
	if caller.HasEnemy(target) || targetUser.HasEnemy(caller.Login) {
		return &model.EnemyError{Name: targetUser.Name}
	}
	if model.Contains(caller.Crushes, target) {
		return model.ErrAlreadyCrush
	}

	caller.Crushes = append(caller.Crushes, target)

	if model.Contains(targetUser.Crushes, caller.Login) {
		// System-generated recados carry no sender prefix.
		caller.PushMessage(targetUser.Name + " é seu paquera - Recado do Jackut.")
		targetUser.PushMessage(caller.Name + " é seu paquera - Recado do Jackut.")
	}
	return nil
}

// IsCrush reports whether the session owner tagged target as a crush.
func (s *System) IsCrush(token, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return false, err
	}
	return model.Contains(caller.Crushes, target), nil
}

// Crushes returns the crush tags of the session owner in insertion order.
func (s *System) Crushes(token string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return nil, err
	}
	crushes := make([]string, len(caller.Crushes))
	copy(crushes, caller.Crushes)
	return crushes, nil
}

// AddEnemy tags target as an enemy of the session owner. The enemy
// block itself does not prevent adding an enemy.
func (s *System) AddEnemy(token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	if caller.Login == target {
		return model.ErrSelfEnemy
	}
	if !s.store.HasUser(target) {
		return model.ErrUserNotFound
	}
	if model.Contains(caller.Enemies, target) {
		return model.ErrAlreadyEnemy
	}

	caller.Enemies = append(caller.Enemies, target)
	return nil
}
