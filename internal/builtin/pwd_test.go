package builtin

import (
	"strings"
	"testing"
)

func TestPwdPrintsShellCwd(t *testing.T) {
	sh := newTestShell(t)
	sh.Cwd = "/var/tmp/example"
	ctx, out, _ := newCtx([]string{"pwd"}, sh)

	if code := pwd(ctx); code != 0 {
		t.Fatalf("pwd failed")
	}
	if strings.TrimSpace(out.String()) != "/var/tmp/example" {
		t.Fatalf("got %q", out.String())
	}
}
