package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingFields   = errors.New("model: required field is blank")
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidDueDate  = errors.New("model: invalid due date")
	ErrInvalidFilter   = errors.New("model: invalid filter")
)

// DateLayout is the calendar-date form used for due dates.
const DateLayout = "2006-01-02"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Next cycles Low -> Medium -> High -> Low.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

func (p Priority) Prev() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m", "":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
}

// Categories are the suggested labels; any non-blank text is accepted.
var Categories = []string{"Work", "Personal", "Study", "Urgent"}

type Task struct {
	ID        int64
	Text      string
	Completed bool
	Category  string
	Priority  Priority
	DueDate   time.Time
	CreatedAt time.Time
}

func (t Task) DueString() string {
	if t.DueDate.IsZero() {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("%w: text", ErrMissingFields)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// Draft holds the add-form inputs before a task exists.
type Draft struct {
	Text     string
	Category string
	Priority Priority
	DueDate  string
}

func DefaultDraft() Draft {
	return Draft{Priority: PriorityMedium}
}

// Validate checks the draft and returns the parsed due date.
func (d Draft) Validate() (time.Time, error) {
	var missing []string
	if strings.TrimSpace(d.Text) == "" {
		missing = append(missing, "text")
	}
	if strings.TrimSpace(d.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(d.DueDate) == "" {
		missing = append(missing, "due date")
	}
	if len(missing) > 0 {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if !d.Priority.IsValid() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}
	due, err := time.Parse(DateLayout, strings.TrimSpace(d.DueDate))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, d.DueDate)
	}
	return due, nil
}
