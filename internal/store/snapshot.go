package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"jackut/internal/model"
)

// snapshot is the on-disk form of the whole system state: explicit
// records rather than an opaque object graph. Sessions are never part
// of it.
type snapshot struct {
	Users          []*model.User      `json:"users"`
	Communities    []*model.Community `json:"communities"`
	CommunityOrder []string           `json:"community_order"`
}

// Save overwrites the snapshot file with the full registry contents.
func (r *Registry) Save() error {
	snap := snapshot{
		Users:          r.Users(),
		CommunityOrder: r.CommunityNames(),
	}
	for _, name := range snap.CommunityOrder {
		snap.Communities = append(snap.Communities, r.communities[name])
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// load restores the registry from the snapshot file, if one exists.
func (r *Registry) load() error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	for _, u := range snap.Users {
		if u.Attributes == nil {
			u.Attributes = make(map[string]string)
		}
		r.AddUser(u)
	}
	byName := make(map[string]*model.Community, len(snap.Communities))
	for _, c := range snap.Communities {
		if c.Inbox == nil {
			c.Inbox = make(map[string][]string)
		}
		byName[c.Name] = c
	}
	for _, name := range snap.CommunityOrder {
		if c, ok := byName[name]; ok {
			r.AddCommunity(c)
		}
	}
	return nil
}

// Reset wipes the registry and deletes the snapshot file, if present.
func (r *Registry) Reset() error {
	r.users = make(map[string]*model.User)
	r.userOrder = nil
	r.communities = make(map[string]*model.Community)
	r.commOrder = nil

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}
