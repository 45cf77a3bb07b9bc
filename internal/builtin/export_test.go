package builtin

import (
	"strings"
	"testing"
)

func TestExportSetsVariable(t *testing.T) {
	sh := newTestShell(t)
	ctx, _, _ := newCtx([]string{"export", "A=1"}, sh)

	if code := export(ctx); code != 0 {
		t.Fatalf("export failed")
	}
	v, ok := sh.Env.Get("A")
	if !ok || v != "1" {
		t.Fatalf("got %q,%v want 1,true", v, ok)
	}
}

func TestExportNoArgListsAll(t *testing.T) {
	sh := newTestShell(t)
	sh.Env.Set("A", "1")
	ctx, out, _ := newCtx([]string{"export"}, sh)

	if code := export(ctx); code != 0 {
		t.Fatalf("export failed")
	}
	if !strings.Contains(out.String(), "export A=1") {
		t.Fatalf("expected output to contain 'export A=1', got %q", out.String())
	}
}

func TestExportQuotesValuesWithWhitespace(t *testing.T) {
	sh := newTestShell(t)
	sh.Env.Set("A", "has space")
	ctx, out, _ := newCtx([]string{"export"}, sh)

	export(ctx)
	if strings.Contains(out.String(), "export A=has space") {
		t.Fatalf("value with whitespace should be quoted for round-trip, got %q", out.String())
	}
}

func TestExportMalformedIsUsageError(t *testing.T) {
	sh := newTestShell(t)
	ctx, _, errb := newCtx([]string{"export", "NOVALUE"}, sh)

	code := export(ctx)
	if code != 1 {
		t.Fatalf("got %d, want 1", code)
	}
	if errb.Len() == 0 {
		t.Fatalf("expected a usage message")
	}
}
