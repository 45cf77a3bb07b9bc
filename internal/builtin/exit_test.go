package builtin

import "testing"

func TestExitNoArgUsesLastStatus(t *testing.T) {
	sh := newTestShell(t)
	sh.LastStatus = 7
	ctx, _, _ := newCtx([]string{"exit"}, sh)

	code := exit(ctx)
	if code != 7 {
		t.Fatalf("got %d, want 7", code)
	}
	if sh.Running {
		t.Fatalf("expected Running=false")
	}
}

func TestExitNumericArg(t *testing.T) {
	sh := newTestShell(t)
	ctx, _, _ := newCtx([]string{"exit", "42"}, sh)

	code := exit(ctx)
	if code != 42 {
		t.Fatalf("got %d, want 42", code)
	}
	if sh.Running {
		t.Fatalf("expected Running=false")
	}
}

func TestExitNonNumericArgDoesNotExit(t *testing.T) {
	sh := newTestShell(t)
	ctx, _, errb := newCtx([]string{"exit", "banana"}, sh)

	code := exit(ctx)
	if code != 1 {
		t.Fatalf("got %d, want 1", code)
	}
	if !sh.Running {
		t.Fatalf("a non-numeric argument must not exit the shell")
	}
	if errb.Len() == 0 {
		t.Fatalf("expected a usage message")
	}
}
