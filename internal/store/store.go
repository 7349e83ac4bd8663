// Package store holds the ordered in-memory task sequence. Every operation
// returns the next Store and leaves the receiver untouched.
package store

import (
	"slices"
	"time"

	"github.com/sandeepkv93/todo/internal/model"
)

// Clock supplies creation timestamps; ids derive from it.
type Clock func() time.Time

type Store struct {
	tasks  []model.Task
	lastID int64
	now    Clock
}

type Stats struct {
	Total     int
	Completed int
	Pending   int
	Rate      float64
}

func New() Store {
	return NewWithClock(time.Now)
}

func NewWithClock(now Clock) Store {
	if now == nil {
		now = time.Now
	}
	return Store{now: now}
}

// NewTask is the validated input for Add.
type NewTask struct {
	Text     string
	Category string
	Priority model.Priority
	DueDate  time.Time
}

func (s Store) Add(in NewTask) (Store, model.Task) {
	created := s.clock()()
	id := created.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	priority := in.Priority
	if !priority.IsValid() {
		priority = model.PriorityMedium
	}
	task := model.Task{
		ID:        id,
		Text:      in.Text,
		Category:  in.Category,
		Priority:  priority,
		DueDate:   in.DueDate,
		CreatedAt: created,
	}
	next := s.clone()
	next.tasks = append(next.tasks, task)
	next.lastID = id
	return next, task
}

func (s Store) Delete(id int64) (Store, model.Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return s, model.Task{}, false
	}
	removed := s.tasks[idx]
	next := s.clone()
	next.tasks = slices.Delete(next.tasks, idx, idx+1)
	return next, removed, true
}

func (s Store) SetText(id int64, text string) (Store, bool) {
	idx := s.index(id)
	if idx < 0 {
		return s, false
	}
	next := s.clone()
	next.tasks[idx].Text = text
	return next, true
}

// Toggle flips the completed flag and returns the task as it is afterwards.
func (s Store) Toggle(id int64) (Store, model.Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return s, model.Task{}, false
	}
	next := s.clone()
	next.tasks[idx].Completed = !next.tasks[idx].Completed
	return next, next.tasks[idx], true
}

func (s Store) Get(id int64) (model.Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx], true
}

func (s Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

func (s Store) Len() int {
	return len(s.tasks)
}

func (s Store) Filter(f model.Filter) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Store) Stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.Rate = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}

func (s Store) index(id int64) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func (s Store) clone() Store {
	next := s
	next.tasks = slices.Clone(s.tasks)
	return next
}

func (s Store) clock() Clock {
	if s.now == nil {
		return time.Now
	}
	return s.now
}
