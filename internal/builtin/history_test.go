package builtin

import (
	"strings"
	"testing"
)

func TestHistoryCmdPrintsEveryEntry(t *testing.T) {
	sh := newTestShell(t)
	sh.History.Add("echo a")
	sh.History.Add("echo b")

	ctx, out, _ := newCtx([]string{"history"}, sh)
	historyCmd(ctx)

	text := out.String()
	if !strings.Contains(text, "echo a") || !strings.Contains(text, "echo b") {
		t.Fatalf("expected both entries, got %q", text)
	}
}

func TestHistoryCmdEmptyPrintsNothing(t *testing.T) {
	sh := newTestShell(t)
	ctx, out, _ := newCtx([]string{"history"}, sh)
	historyCmd(ctx)
	if out.Len() != 0 {
		t.Fatalf("expected no output for empty history, got %q", out.String())
	}
}
