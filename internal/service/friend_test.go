package service

import (
	"errors"
	"reflect"
	"testing"

	"jackut/internal/model"
)

func TestSystem_AddFriend_InviteThenAccept(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")
	osorio := mustLogin(t, sys, "oabath")

	// First request only records an invite.
	if err := sys.AddFriend(jacques, "oabath"); err != nil {
		t.Fatalf("AddFriend: %v", err)
	}
	if isFriend, _ := sys.IsFriend("jpsauve", "oabath"); isFriend {
		t.Error("a single request must not create a friendship")
	}

	// The mirrored request completes the friendship for both sides.
	if err := sys.AddFriend(osorio, "jpsauve"); err != nil {
		t.Fatalf("AddFriend (accept): %v", err)
	}
	if isFriend, _ := sys.IsFriend("jpsauve", "oabath"); !isFriend {
		t.Error("jpsauve should be friends with oabath")
	}
	if isFriend, _ := sys.IsFriend("oabath", "jpsauve"); !isFriend {
		t.Error("oabath should be friends with jpsauve")
	}

	// No leftover invite in either direction: a new request now fails
	// with already-friends, not a pending-invite error.
	if err := sys.AddFriend(jacques, "oabath"); !errors.Is(err, model.ErrAlreadyFriends) {
		t.Errorf("error = %v, want %v", err, model.ErrAlreadyFriends)
	}
	if err := sys.AddFriend(osorio, "jpsauve"); !errors.Is(err, model.ErrAlreadyFriends) {
		t.Errorf("error = %v, want %v", err, model.ErrAlreadyFriends)
	}
}

func TestSystem_AddFriend_Errors(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	mustCreate(t, sys, "jdoe", "John")
	jacques := mustLogin(t, sys, "jpsauve")
	osorio := mustLogin(t, sys, "oabath")

	if err := sys.AddFriend(jacques, "oabath"); err != nil {
		t.Fatalf("AddFriend: %v", err)
	}
	if err := sys.AddEnemy(osorio, "jdoe"); err != nil {
		t.Fatalf("AddEnemy: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		target  string
		wantErr error
	}{
		{
			name:    "invalid session",
			token:   "bogus",
			target:  "oabath",
			wantErr: model.ErrInvalidSession,
		},
		{
			name:    "self friendship",
			token:   jacques,
			target:  "jpsauve",
			wantErr: model.ErrSelfFriend,
		},
		{
			name:    "unknown target",
			token:   jacques,
			target:  "nobody",
			wantErr: model.ErrUserNotFound,
		},
		{
			name:    "duplicate invite",
			token:   jacques,
			target:  "oabath",
			wantErr: model.ErrInvitePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := sys.AddFriend(tt.token, tt.target); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSystem_AddFriend_EnemyBlock(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")
	osorio := mustLogin(t, sys, "oabath")

	// One-directional tag blocks both directions.
	if err := sys.AddEnemy(jacques, "oabath"); err != nil {
		t.Fatalf("AddEnemy: %v", err)
	}

	var enemyErr *model.EnemyError
	if err := sys.AddFriend(jacques, "oabath"); !errors.As(err, &enemyErr) {
		t.Fatalf("error = %v, want enemy block", err)
	}
	if enemyErr.Name != "Osorio" {
		t.Errorf("blocked name = %q, want target's display name", enemyErr.Name)
	}
	if err := sys.AddFriend(osorio, "jpsauve"); !errors.As(err, &enemyErr) {
		t.Errorf("error = %v, want enemy block in the reverse direction", err)
	}
}

func TestSystem_Friends_Order(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	mustCreate(t, sys, "jdoe", "John")
	jacques := mustLogin(t, sys, "jpsauve")

	for _, friend := range []string{"oabath", "jdoe"} {
		if err := sys.AddFriend(jacques, friend); err != nil {
			t.Fatalf("AddFriend(%s): %v", friend, err)
		}
		token := mustLogin(t, sys, friend)
		if err := sys.AddFriend(token, "jpsauve"); err != nil {
			t.Fatalf("AddFriend accept (%s): %v", friend, err)
		}
	}

	friends, err := sys.Friends("jpsauve")
	if err != nil {
		t.Fatalf("Friends: %v", err)
	}
	if !reflect.DeepEqual(friends, []string{"oabath", "jdoe"}) {
		t.Errorf("friends = %v, want insertion order [oabath jdoe]", friends)
	}
	if model.FormatList(friends) != "{oabath,jdoe}" {
		t.Errorf("wire format = %q, want {oabath,jdoe}", model.FormatList(friends))
	}

	if _, err := sys.Friends("nobody"); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}
