package model

import (
	"errors"
	"testing"
	"time"
)

func TestDraftValidateSuccess(t *testing.T) {
	d := Draft{Text: "Buy milk", Category: "Personal", Priority: PriorityHigh, DueDate: "2024-01-01"}
	due, err := d.Validate()
	if err != nil {
		t.Fatalf("expected valid draft, got error: %v", err)
	}
	if !due.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", due)
	}
}

func TestDraftValidateMissingFields(t *testing.T) {
	cases := []Draft{
		{Text: "", Category: "Work", Priority: PriorityHigh, DueDate: "2024-01-01"},
		{Text: "   ", Category: "Work", Priority: PriorityHigh, DueDate: "2024-01-01"},
		{Text: "Buy milk", Category: " ", Priority: PriorityMedium, DueDate: "2024-01-01"},
		{Text: "Buy milk", Category: "Work", Priority: PriorityMedium, DueDate: ""},
	}
	for _, d := range cases {
		_, err := d.Validate()
		if err == nil || !errors.Is(err, ErrMissingFields) {
			t.Fatalf("draft %+v: expected ErrMissingFields, got %v", d, err)
		}
	}
}

func TestDraftValidateBadDueDateAndPriority(t *testing.T) {
	d := Draft{Text: "x", Category: "Work", Priority: PriorityLow, DueDate: "tomorrow"}
	if _, err := d.Validate(); !errors.Is(err, ErrInvalidDueDate) {
		t.Fatalf("expected ErrInvalidDueDate, got %v", err)
	}

	d.DueDate = "2024-02-03"
	d.Priority = Priority("Urgent")
	if _, err := d.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestDefaultDraftUsesMediumPriority(t *testing.T) {
	d := DefaultDraft()
	if d.Priority != PriorityMedium || d.Text != "" || d.Category != "" || d.DueDate != "" {
		t.Fatalf("unexpected default draft: %+v", d)
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{"low": PriorityLow, "HIGH": PriorityHigh, " Medium ": PriorityMedium, "": PriorityMedium}
	for in, want := range cases {
		got, err := ParsePriority(in)
		if err != nil || got != want {
			t.Fatalf("ParsePriority(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParsePriority("critical"); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if PriorityHigh.Next() != PriorityLow || PriorityLow.Prev() != PriorityHigh {
		t.Fatal("priority cycling is not circular")
	}
}

func TestTaskValidate(t *testing.T) {
	task := Task{ID: 1, Text: "Buy milk", Priority: PriorityMedium}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
	task.Text = " "
	if err := task.Validate(); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestFilterMatchAndParse(t *testing.T) {
	done := Task{ID: 1, Completed: true}
	open := Task{ID: 2}
	if !FilterAll.Match(done) || !FilterAll.Match(open) {
		t.Fatal("all must match everything")
	}
	if !FilterCompleted.Match(done) || FilterCompleted.Match(open) {
		t.Fatal("completed filter mismatch")
	}
	if FilterPending.Match(done) || !FilterPending.Match(open) {
		t.Fatal("pending filter mismatch")
	}

	f, err := ParseFilter(" Pending ")
	if err != nil || f != FilterPending {
		t.Fatalf("ParseFilter = %q, %v", f, err)
	}
	if _, err := ParseFilter("archived"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if FilterPending.Next() != FilterAll || FilterAll.Label() != "All" {
		t.Fatal("unexpected filter cycle or label")
	}
}
