package model

import "errors"

// EncodeMessage builds the stored form of a recado. The sender login is
// kept as a colon-delimited prefix so account removal can purge messages
// by sender.
func EncodeMessage(sender, body string) string {
	return sender + ":" + body
}

// SentBy reports whether a stored recado was sent by login.
func SentBy(msg, login string) bool {
	return len(msg) > len(login) && msg[len(login)] == ':' && msg[:len(login)] == login
}

var (
	// ErrSelfMessage is returned when a user sends a recado to themselves
	ErrSelfMessage = errors.New("cannot send a message to yourself")

	// ErrNoMessages is returned when the recado queue is empty
	ErrNoMessages = errors.New("no messages")
)
