package service

import (
	"errors"
	"reflect"
	"testing"

	"jackut/internal/model"
)

func TestSystem_AddIdol(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")

	if err := sys.AddIdol(jacques, "oabath"); err != nil {
		t.Fatalf("AddIdol: %v", err)
	}

	if isFan, _ := sys.IsFan("jpsauve", "oabath"); !isFan {
		t.Error("jpsauve should be a fan of oabath")
	}
	if isFan, _ := sys.IsFan("oabath", "jpsauve"); isFan {
		t.Error("the idol relation is one-directional")
	}
	fans, err := sys.Fans("oabath")
	if err != nil {
		t.Fatalf("Fans: %v", err)
	}
	if !reflect.DeepEqual(fans, []string{"jpsauve"}) {
		t.Errorf("fans = %v, want [jpsauve]", fans)
	}

	if err := sys.AddIdol(jacques, "oabath"); !errors.Is(err, model.ErrAlreadyIdol) {
		t.Errorf("error = %v, want %v", err, model.ErrAlreadyIdol)
	}
	if err := sys.AddIdol(jacques, "jpsauve"); !errors.Is(err, model.ErrSelfFan) {
		t.Errorf("error = %v, want %v", err, model.ErrSelfFan)
	}
	if err := sys.AddIdol(jacques, "nobody"); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}

func TestSystem_AddCrush_MutualNotification(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")
	osorio := mustLogin(t, sys, "oabath")

	if err := sys.AddCrush(jacques, "oabath"); err != nil {
		t.Fatalf("AddCrush: %v", err)
	}
	// No notification yet.
	if _, err := sys.ReadMessage(jacques); !errors.Is(err, model.ErrNoMessages) {
		t.Errorf("error = %v, want no messages before the crush is mutual", err)
	}

	if err := sys.AddCrush(osorio, "jpsauve"); err != nil {
		t.Fatalf("AddCrush (mutual): %v", err)
	}

	msg, err := sys.ReadMessage(jacques)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if msg != "Osorio é seu paquera - Recado do Jackut." {
		t.Errorf("jpsauve notification = %q", msg)
	}
	msg, err = sys.ReadMessage(osorio)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if msg != "Jacques é seu paquera - Recado do Jackut." {
		t.Errorf("oabath notification = %q", msg)
	}

	if isCrush, _ := sys.IsCrush(jacques, "oabath"); !isCrush {
		t.Error("jpsauve should have oabath as a crush")
	}
	crushes, err := sys.Crushes(osorio)
	if err != nil {
		t.Fatalf("Crushes: %v", err)
	}
	if !reflect.DeepEqual(crushes, []string{"jpsauve"}) {
		t.Errorf("crushes = %v, want [jpsauve]", crushes)
	}
}

func TestSystem_AddCrush_Errors(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")

	if err := sys.AddCrush(jacques, "jpsauve"); !errors.Is(err, model.ErrSelfCrush) {
		t.Errorf("error = %v, want %v", err, model.ErrSelfCrush)
	}
	if err := sys.AddCrush(jacques, "nobody"); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
	if err := sys.AddCrush(jacques, "oabath"); err != nil {
		t.Fatalf("AddCrush: %v", err)
	}
	if err := sys.AddCrush(jacques, "oabath"); !errors.Is(err, model.ErrAlreadyCrush) {
		t.Errorf("error = %v, want %v", err, model.ErrAlreadyCrush)
	}
}

func TestSystem_EnemyBlocksIdolAndCrush(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")
	osorio := mustLogin(t, sys, "oabath")

	if err := sys.AddEnemy(osorio, "jpsauve"); err != nil {
		t.Fatalf("AddEnemy: %v", err)
	}

	var enemyErr *model.EnemyError
	if err := sys.AddIdol(jacques, "oabath"); !errors.As(err, &enemyErr) {
		t.Errorf("AddIdol error = %v, want enemy block", err)
	}
	if err := sys.AddCrush(jacques, "oabath"); !errors.As(err, &enemyErr) {
		t.Errorf("AddCrush error = %v, want enemy block", err)
	}
}

func TestSystem_AddEnemy(t *testing.T) {
	sys := newTestSystem(t)
	mustCreate(t, sys, "jpsauve", "Jacques")
	mustCreate(t, sys, "oabath", "Osorio")
	jacques := mustLogin(t, sys, "jpsauve")
	osorio := mustLogin(t, sys, "oabath")

	if err := sys.AddEnemy(jacques, "oabath"); err != nil {
		t.Fatalf("AddEnemy: %v", err)
	}

	// The enemy block never applies to the enemy tag itself: the
	// counterpart can still tag back.
	if err := sys.AddEnemy(osorio, "jpsauve"); err != nil {
		t.Errorf("reverse AddEnemy should succeed, got %v", err)
	}

	if err := sys.AddEnemy(jacques, "oabath"); !errors.Is(err, model.ErrAlreadyEnemy) {
		t.Errorf("error = %v, want %v", err, model.ErrAlreadyEnemy)
	}
	if err := sys.AddEnemy(jacques, "jpsauve"); !errors.Is(err, model.ErrSelfEnemy) {
		t.Errorf("error = %v, want %v", err, model.ErrSelfEnemy)
	}
	if err := sys.AddEnemy(jacques, "nobody"); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}

func TestSystem_Fans_UnknownUser(t *testing.T) {
	sys := newTestSystem(t)

	if _, err := sys.Fans("nobody"); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
	if _, err := sys.IsFan("nobody", "x"); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}
