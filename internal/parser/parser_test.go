package parser

import (
	"errors"
	"testing"
)

func TestParseSimpleCommand(t *testing.T) {
	pl, err := Parse("echo hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pl.Stages) != 1 {
		t.Fatalf("expected 1 stage, got %d", len(pl.Stages))
	}
	want := []string{"echo", "hello", "world"}
	got := pl.Stages[0].Argv
	if len(got) != len(want) {
		t.Fatalf("argv mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argv[%d]: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestParsePipeline(t *testing.T) {
	pl, err := Parse("echo one two three | wc -w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pl.Stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(pl.Stages))
	}
	if pl.Stages[1].Argv[0] != "wc" {
		t.Fatalf("second stage argv[0] = %q, want wc", pl.Stages[1].Argv[0])
	}
}

func TestParseBackground(t *testing.T) {
	pl, err := Parse("sleep 0.2 &")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pl.Background {
		t.Fatalf("expected Background=true")
	}
}

func TestParseRedirections(t *testing.T) {
	pl, err := Parse("echo a > /tmp/hx 2>> /tmp/err < /tmp/in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd := pl.Stages[0]
	if cmd.StdoutFile == nil || *cmd.StdoutFile != "/tmp/hx" || cmd.StdoutAppend {
		t.Fatalf("stdout redirection wrong: %+v", cmd)
	}
	if cmd.StderrFile == nil || *cmd.StderrFile != "/tmp/err" || !cmd.StderrAppend {
		t.Fatalf("stderr redirection wrong: %+v", cmd)
	}
	if cmd.StdinFile == nil || *cmd.StdinFile != "/tmp/in" {
		t.Fatalf("stdin redirection wrong: %+v", cmd)
	}
}

func TestParseSemicolonEndsEarly(t *testing.T) {
	pl, err := Parse("echo a ; echo b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pl.Stages) != 1 || pl.Stages[0].Argv[0] != "echo" || pl.Stages[0].Argv[1] != "a" {
		t.Fatalf("expected only the first statement to be parsed, got %+v", pl.Stages)
	}
}

func TestParseMissingCommandInStage(t *testing.T) {
	_, err := Parse("echo a |")
	if !errors.Is(err, ErrMissingCommandInStage) {
		t.Fatalf("expected ErrMissingCommandInStage, got %v", err)
	}
}

func TestParseExpectedFilenameAfterRedir(t *testing.T) {
	_, err := Parse("echo a >")
	if !errors.Is(err, ErrExpectedFilenameAfterRedir) {
		t.Fatalf("expected ErrExpectedFilenameAfterRedir, got %v", err)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse(`echo "oops`)
	if !errors.Is(err, ErrUnterminatedQuote) {
		t.Fatalf("expected ErrUnterminatedQuote, got %v", err)
	}
}

func TestParseUnexpectedTokenAfterBg(t *testing.T) {
	_, err := Parse("echo a & echo b")
	if !errors.Is(err, ErrUnexpectedTokenAfterBg) {
		t.Fatalf("expected ErrUnexpectedTokenAfterBg, got %v", err)
	}
}
