// Package notify defines the toast contract between the task handlers and
// whatever displays transient messages.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Position string

const (
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
)

func (p Position) IsValid() bool {
	switch p {
	case PositionTopRight, PositionTopLeft, PositionBottomRight, PositionBottomLeft:
		return true
	default:
		return false
	}
}

const DefaultAutoClose = 3 * time.Second

type Options struct {
	Position  Position
	AutoClose time.Duration
}

func DefaultOptions() Options {
	return Options{Position: PositionTopRight, AutoClose: DefaultAutoClose}
}

type Notice struct {
	ID      string
	Message string
	Kind    Kind
	Options Options
	At      time.Time
}

func New(kind Kind, message string, opts Options) Notice {
	return Notice{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		Options: opts,
	}
}

func MissingFields(opts Options) Notice {
	return New(KindError, "Please fill in all required fields.", opts)
}

func InvalidDueDate(raw string, opts Options) Notice {
	return New(KindError, fmt.Sprintf("Due date %q must look like YYYY-MM-DD.", raw), opts)
}

func Deleted(text string, opts Options) Notice {
	return New(KindError, fmt.Sprintf(`💔We hate to see you delete your task: "%s"`, text), opts)
}

func Completed(text string, opts Options) Notice {
	return New(KindSuccess, fmt.Sprintf(`Congratulations!!!🎉🎊 You've completed your task: "%s"`, text), opts)
}
