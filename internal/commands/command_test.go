package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent cat:Personal due:2026-03-01", TypeAdd},
		{"delete 2", TypeDelete},
		{"rm #3", TypeDelete},
		{"done 1", TypeDone},
		{"toggle 1", TypeDone},
		{"edit 1 buy oat milk", TypeEdit},
		{"/filter pending", TypeFilter},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddKeyedFields(t *testing.T) {
	cmd, err := Parse("/add pay cat:Work rent pri:high due:2026-03-01")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	d := cmd.Add.Draft
	if d.Text != "pay rent" || d.Category != "Work" || d.Priority != model.PriorityHigh || d.DueDate != "2026-03-01" {
		t.Fatalf("unexpected draft: %+v", d)
	}

	cmd, err = Parse("add just text")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Draft.Priority != model.PriorityMedium || cmd.Add.Draft.Category != "" {
		t.Fatalf("expected defaults, got %+v", cmd.Add.Draft)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{"add", "add cat:Work", "add x pri:critical", "delete", "delete zero", "done 0", "edit 1", "filter archived"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownAndEmpty(t *testing.T) {
	_, err := Parse("/unknown do x")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	_, err = Parse("  / ")
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/edit 2 write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Edit: func(a EditArgs) (Result, error) {
			called = true
			if a.Position != 2 || a.Text != "write docs" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("filter all")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
