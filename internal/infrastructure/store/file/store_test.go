package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/learnstack/demo-console/internal/core/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_LoadAbsentMeansLoggedOut(t *testing.T) {
	s := tempStore(t)
	session, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session, got %+v", session)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	in := &domain.Session{
		Token: "abc.def.ghi",
		User:  domain.User{Username: "alice", Role: domain.RoleAdmin},
	}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if out == nil || out.Token != in.Token || out.User != in.User {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

// The on-disk document keeps the jwtToken/currentUser storage-key contract.
func TestStore_UsesStorageKeyContract(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	err := s.Save(ctx, &domain.Session{
		Token: "abc.def.ghi",
		User:  domain.User{Username: "alice", Role: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("parse session file: %v", err)
	}
	if _, ok := doc["jwtToken"]; !ok {
		t.Fatalf("missing jwtToken key: %s", raw)
	}
	if _, ok := doc["currentUser"]; !ok {
		t.Fatalf("missing currentUser key: %s", raw)
	}
}

func TestStore_PartialDocumentMeansLoggedOut(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.path, []byte(`{"jwtToken":"abc"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if session != nil {
		t.Fatalf("token without user must count as logged out, got %+v", session)
	}
}

func TestStore_ClearRemovesFile(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, &domain.Session{Token: "t", User: domain.User{Username: "u", Role: domain.RoleUser}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		t.Fatalf("session file still present after Clear")
	}

	// clearing twice is fine
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
}
