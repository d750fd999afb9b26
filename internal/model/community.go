package model

import "errors"

// Community is a named group with a permanent owner, an ordered member
// set and broadcast messaging. Broadcasts land both in a shared log and
// in a per-member delivery queue filled at send time, so only members
// present at the moment of the send receive a copy.
type Community struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Owner       string              `json:"owner"`
	Members     []string            `json:"members"`
	Log         []string            `json:"log"`
	Inbox       map[string][]string `json:"inbox"`
}

// NewCommunity creates a community owned by owner, who is also its
// first member.
func NewCommunity(name, description, owner string) *Community {
	return &Community{
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     []string{owner},
		Inbox:       make(map[string][]string),
	}
}

// HasMember reports whether login is currently a member.
func (c *Community) HasMember(login string) bool {
	return Contains(c.Members, login)
}

// AddMember adds login to the member set, once.
func (c *Community) AddMember(login string) {
	if !Contains(c.Members, login) {
		c.Members = append(c.Members, login)
	}
}

// RemoveMember removes login from the member set and drops its delivery
// queue. The owner cannot be removed while the community exists.
func (c *Community) RemoveMember(login string) {
	if login == c.Owner {
		return
	}
	c.Members = Remove(c.Members, login)
	delete(c.Inbox, login)
}

// Broadcast appends the message to the shared log and fans it out to the
// delivery queue of every current member.
func (c *Community) Broadcast(msg string) {
	c.Log = append(c.Log, msg)
	for _, member := range c.Members {
		c.Inbox[member] = append(c.Inbox[member], msg)
	}
}

// PopMessage removes and returns the head of login's delivery queue.
func (c *Community) PopMessage(login string) (string, bool) {
	queue := c.Inbox[login]
	if len(queue) == 0 {
		return "", false
	}
	msg := queue[0]
	c.Inbox[login] = queue[1:]
	return msg, true
}

var (
	// ErrCommunityExists is returned when the community name is taken
	ErrCommunityExists = errors.New("community name already exists")

	// ErrCommunityNotFound is returned when the name resolves to no community
	ErrCommunityNotFound = errors.New("community not found")

	// ErrAlreadyMember is returned when the caller already joined the community
	ErrAlreadyMember = errors.New("already a member of this community")

	// ErrNoCommunityMessages is returned when no joined community has a
	// pending message for the caller
	ErrNoCommunityMessages = errors.New("no community messages")
)
