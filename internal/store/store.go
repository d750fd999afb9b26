// Package store holds the whole system state in memory: the account
// registry and the community registry, both insertion-ordered, plus the
// snapshot adapter that persists them as a single file.
package store

import (
	"jackut/internal/model"
)

// Registry owns every user and community record. It is not safe for
// concurrent use; the service layer serializes access.
type Registry struct {
	users       map[string]*model.User
	userOrder   []string
	communities map[string]*model.Community
	commOrder   []string

	path string
}

// NewRegistry creates a registry backed by the snapshot file at path.
// If the file exists its contents are loaded wholesale; otherwise the
// registry starts empty.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		users:       make(map[string]*model.User),
		communities: make(map[string]*model.Community),
		path:        path,
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// User returns the record for login.
func (r *Registry) User(login string) (*model.User, bool) {
	u, ok := r.users[login]
	return u, ok
}

// HasUser reports whether login is registered.
func (r *Registry) HasUser(login string) bool {
	_, ok := r.users[login]
	return ok
}

// AddUser registers a new user record.
func (r *Registry) AddUser(u *model.User) {
	r.users[u.Login] = u
	r.userOrder = append(r.userOrder, u.Login)
}

// RemoveUser deletes a user record.
func (r *Registry) RemoveUser(login string) {
	delete(r.users, login)
	r.userOrder = model.Remove(r.userOrder, login)
}

// Users returns every user record in registration order.
func (r *Registry) Users() []*model.User {
	users := make([]*model.User, 0, len(r.userOrder))
	for _, login := range r.userOrder {
		users = append(users, r.users[login])
	}
	return users
}

// Community returns the record for name.
func (r *Registry) Community(name string) (*model.Community, bool) {
	c, ok := r.communities[name]
	return c, ok
}

// HasCommunity reports whether name is registered.
func (r *Registry) HasCommunity(name string) bool {
	_, ok := r.communities[name]
	return ok
}

// AddCommunity registers a new community record.
func (r *Registry) AddCommunity(c *model.Community) {
	r.communities[c.Name] = c
	r.commOrder = append(r.commOrder, c.Name)
}

// RemoveCommunity deletes a community record.
func (r *Registry) RemoveCommunity(name string) {
	delete(r.communities, name)
	r.commOrder = model.Remove(r.commOrder, name)
}

// CommunityNames returns every community name in creation order. The
// slice is a copy, safe to range over while mutating the registry.
func (r *Registry) CommunityNames() []string {
	names := make([]string, len(r.commOrder))
	copy(names, r.commOrder)
	return names
}
