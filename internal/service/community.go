package service

import (
	"jackut/internal/model"
)

// CreateCommunity registers a new community owned by the session owner,
// who becomes its first member.
func (s *System) CreateCommunity(token, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	if s.store.HasCommunity(name) {
		return model.ErrCommunityExists
	}

	s.store.AddCommunity(model.NewCommunity(name, description, caller.Login))
	caller.JoinCommunity(name)
	return nil
}

// JoinCommunity adds the session owner to an existing community.
func (s *System) JoinCommunity(token, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return err
	}
	community, ok := s.store.Community(name)
	if !ok {
		return model.ErrCommunityNotFound
	}
	if community.HasMember(caller.Login) {
		return model.ErrAlreadyMember
	}

	community.AddMember(caller.Login)
	caller.JoinCommunity(name)
	return nil
}

// Broadcast sends a message to a community. Delivery fans out to the
// members present at send time; membership is not required to send.
func (s *System) Broadcast(token, name, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.resolve(token); err != nil {
		return err
	}
	community, ok := s.store.Community(name)
	if !ok {
		return model.ErrCommunityNotFound
	}

	community.Broadcast(body)
	return nil
}

// ReadCommunityMessage dequeues the first available broadcast for the
// session owner, scanning communities in creation order.
func (s *System) ReadCommunityMessage(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.resolve(token)
	if err != nil {
		return "", err
	}

	for _, name := range s.store.CommunityNames() {
		community, ok := s.store.Community(name)
		if !ok || !community.HasMember(caller.Login) {
			continue
		}
		if msg, ok := community.PopMessage(caller.Login); ok {
			return msg, nil
		}
	}
	return "", model.ErrNoCommunityMessages
}

// CommunityDescription returns the description of a community.
func (s *System) CommunityDescription(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	community, ok := s.store.Community(name)
	if !ok {
		return "", model.ErrCommunityNotFound
	}
	return community.Description, nil
}

// CommunityOwner returns the owner login of a community.
func (s *System) CommunityOwner(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	community, ok := s.store.Community(name)
	if !ok {
		return "", model.ErrCommunityNotFound
	}
	return community.Owner, nil
}

// CommunityMembers returns the member logins of a community in join
// order, owner first.
func (s *System) CommunityMembers(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	community, ok := s.store.Community(name)
	if !ok {
		return nil, model.ErrCommunityNotFound
	}
	members := make([]string, len(community.Members))
	copy(members, community.Members)
	return members, nil
}

// Communities returns the community names login joined, in join order.
func (s *System) Communities(login string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.User(login)
	if !ok {
		return nil, model.ErrUserNotFound
	}
	names := make([]string, len(user.Communities))
	copy(names, user.Communities)
	return names, nil
}
