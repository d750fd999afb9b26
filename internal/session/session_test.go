package session

import "testing"

func TestRegistry_OpenResolve(t *testing.T) {
	r := NewRegistry("test-secret")

	token, err := r.Open("jpsauve")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	login, ok := r.Resolve(token)
	if !ok || login != "jpsauve" {
		t.Errorf("Resolve = %q, %v; want jpsauve, true", login, ok)
	}

	if _, ok := r.Resolve("bogus"); ok {
		t.Error("unknown token should not resolve")
	}
}

func TestRegistry_TokensAreUnique(t *testing.T) {
	r := NewRegistry("test-secret")

	t1, err := r.Open("jpsauve")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t2, err := r.Open("jpsauve")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if t1 == t2 {
		t.Error("two sessions for the same login must get distinct tokens")
	}
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry("test-secret")
	token, _ := r.Open("jpsauve")

	r.Close(token)

	if _, ok := r.Resolve(token); ok {
		t.Error("closed token should not resolve")
	}
}

func TestRegistry_CloseAll(t *testing.T) {
	r := NewRegistry("test-secret")
	t1, _ := r.Open("jpsauve")
	t2, _ := r.Open("jpsauve")
	other, _ := r.Open("oabath")

	r.CloseAll("jpsauve")

	if _, ok := r.Resolve(t1); ok {
		t.Error("first token should be revoked")
	}
	if _, ok := r.Resolve(t2); ok {
		t.Error("second token should be revoked")
	}
	if _, ok := r.Resolve(other); !ok {
		t.Error("other logins' sessions must survive")
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry("test-secret")
	token, _ := r.Open("jpsauve")

	r.Clear()

	if _, ok := r.Resolve(token); ok {
		t.Error("cleared registry should resolve nothing")
	}
}
