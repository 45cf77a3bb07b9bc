package builtin

import "testing"

func TestCdNoArgGoesHome(t *testing.T) {
	home := t.TempDir()
	sh := newTestShell(t)
	sh.Home = home
	ctx, _, errb := newCtx([]string{"cd"}, sh)

	code := cd(ctx)
	if code != 0 {
		t.Fatalf("cd home failed: %s", errb.String())
	}
	if sh.Cwd != home {
		t.Fatalf("cwd = %q, want %q", sh.Cwd, home)
	}
	pwd, _ := sh.Env.Get("PWD")
	if pwd != home {
		t.Fatalf("PWD = %q, want %q", pwd, home)
	}
}

func TestCdDashGoesToOldpwdAndPrints(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	sh := newTestShell(t)
	sh.Cwd = a
	sh.Env.Set("OLDPWD", b)

	ctx, out, _ := newCtx([]string{"cd", "-"}, sh)
	code := cd(ctx)
	if code != 0 {
		t.Fatalf("cd - failed")
	}
	if sh.Cwd != b {
		t.Fatalf("cwd = %q, want %q", sh.Cwd, b)
	}
	if out.Len() == 0 {
		t.Fatalf("cd - should print the new directory")
	}
}

func TestCdMissingOldpwdIsError(t *testing.T) {
	sh := newTestShell(t)
	sh.Env.Unset("OLDPWD")
	before := sh.Cwd

	ctx, _, errb := newCtx([]string{"cd", "-"}, sh)
	code := cd(ctx)
	if code == 0 {
		t.Fatalf("expected cd - with unset OLDPWD to fail")
	}
	if errb.Len() == 0 {
		t.Fatalf("expected an error message")
	}
	if sh.Cwd != before {
		t.Fatalf("cwd should be unchanged on error, got %q", sh.Cwd)
	}
}

func TestCdNonexistentDirLeavesStateUnchanged(t *testing.T) {
	sh := newTestShell(t)
	before := sh.Cwd

	ctx, _, errb := newCtx([]string{"cd", "/definitely/not/a/real/path"}, sh)
	code := cd(ctx)
	if code == 0 {
		t.Fatalf("expected failure")
	}
	if errb.Len() == 0 {
		t.Fatalf("expected diagnostic on stderr")
	}
	if sh.Cwd != before {
		t.Fatalf("cwd changed despite failure: %q", sh.Cwd)
	}
}

func TestCdUpdatesOldpwd(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	sh := newTestShell(t)
	sh.Cwd = a

	ctx, _, _ := newCtx([]string{"cd", b}, sh)
	if code := cd(ctx); code != 0 {
		t.Fatalf("cd failed")
	}
	oldpwd, _ := sh.Env.Get("OLDPWD")
	if oldpwd != a {
		t.Fatalf("OLDPWD = %q, want %q", oldpwd, a)
	}
}
