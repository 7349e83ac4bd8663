package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDelete Type = "delete"
	TypeDone   Type = "done"
	TypeEdit   Type = "edit"
	TypeFilter Type = "filter"
)

var aliases = map[string]Type{
	"del":    TypeDelete,
	"rm":     TypeDelete,
	"toggle": TypeDone,
	"show":   TypeFilter,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the raw form fields; validation happens in the handler.
type AddArgs struct {
	Draft model.Draft
}

// TargetArgs addresses a task by its 1-based position in the visible list.
type TargetArgs struct {
	Position int
}

type EditArgs struct {
	Position int
	Text     string
}

type FilterArgs struct {
	Filter model.Filter
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Delete *TargetArgs
	Done   *TargetArgs
	Edit   *EditArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}
	switch typ {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDelete, TypeDone:
		return parseTarget(input, typ, args)
	case TypeEdit:
		return parseEdit(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads `add <text...> [cat:X] [pri:Y] [due:Z]`; keyed tokens may appear anywhere.
func parseAdd(raw string, args []string) (Command, error) {
	draft := model.DefaultDraft()
	words := make([]string, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, ":")
		if !ok {
			words = append(words, arg)
			continue
		}
		switch strings.ToLower(key) {
		case "cat", "category":
			draft.Category = value
		case "pri", "priority":
			p, err := model.ParsePriority(value)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", value)}
			}
			draft.Priority = p
		case "due":
			draft.DueDate = value
		default:
			words = append(words, arg)
		}
	}
	draft.Text = strings.Join(words, " ")
	if strings.TrimSpace(draft.Text) == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Draft: draft}}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", typ)}
	}
	pos, err := parsePosition(args[0])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypeDelete {
		cmd.Delete = &TargetArgs{Position: pos}
	} else {
		cmd.Done = &TargetArgs{Position: pos}
	}
	return cmd, nil
}

func parseEdit(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a task number and new text"}
	}
	pos, err := parsePosition(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{Position: pos, Text: strings.Join(args[1:], " ")}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of all, completed, pending"}
	}
	f, err := model.ParseFilter(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}

func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || n < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", arg)}
	}
	return n, nil
}
