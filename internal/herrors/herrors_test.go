package herrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad quote", Syntax), 2},
		{fmt.Errorf("%w: not found", Resolution), 1},
		{fmt.Errorf("%w: open failed", IO), 1},
		{fmt.Errorf("%w: pipe failed", Spawn), 1},
		{fmt.Errorf("%w: bad arg", Builtin), 1},
		{errors.New("unrelated"), 1},
	}
	for _, c := range cases {
		if got := ExitStatusFor(c.err); got != c.want {
			t.Fatalf("ExitStatusFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestSentinelsDistinguishableWithIs(t *testing.T) {
	err := fmt.Errorf("%w: foo not found", Resolution)
	if !errors.Is(err, Resolution) {
		t.Fatalf("expected errors.Is to match Resolution")
	}
	if errors.Is(err, Syntax) {
		t.Fatalf("did not expect errors.Is to match Syntax")
	}
}
