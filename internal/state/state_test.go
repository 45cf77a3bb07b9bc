package state_test

import (
	"os"
	"testing"

	"github.com/adarshanand67/helix-shell/internal/state"
)

func TestNewSeedsFromProcess(t *testing.T) {
	sh, err := state.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if sh.Cwd != wd {
		t.Fatalf("got Cwd %q, want %q", sh.Cwd, wd)
	}
	if !sh.Running {
		t.Fatalf("a freshly built Shell must start Running")
	}
	if sh.LastStatus != 0 {
		t.Fatalf("got LastStatus %d, want 0", sh.LastStatus)
	}
	if sh.Env == nil || sh.History == nil || sh.Jobs == nil {
		t.Fatalf("New must populate Env, History, and Jobs")
	}
}

func TestNewSnapshotsHomeFromEnvironment(t *testing.T) {
	t.Setenv("HOME", "/home/example-user")
	sh, err := state.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sh.Home != "/home/example-user" {
		t.Fatalf("got Home %q, want /home/example-user", sh.Home)
	}
	if v, ok := sh.Env.Get("HOME"); !ok || v != "/home/example-user" {
		t.Fatalf("Env should carry the same HOME value, got %q,%v", v, ok)
	}
}
