package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInFireOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if _, err := engine.Schedule(Event{ID: "later", Kind: KindToastExpire, FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if _, err := engine.Schedule(Event{ID: "sooner", Kind: KindWelcome, FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
	if first.Kind != KindWelcome {
		t.Fatalf("unexpected kind: %s", first.Kind)
	}
}

func TestEngineCancelPreventsFire(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	id, err := engine.After(30*time.Millisecond, Event{Kind: KindWelcome})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}
	if _, err := engine.After(60*time.Millisecond, Event{ID: "keep", Kind: KindFilter}); err != nil {
		t.Fatalf("schedule keep: %v", err)
	}
	if !engine.Cancel(id) {
		t.Fatal("expected cancel to find the timer")
	}
	if engine.Cancel(id) {
		t.Fatal("second cancel must report false")
	}

	ev := waitEvent(t, engine.C(), time.Second)
	if ev.ID != "keep" {
		t.Fatalf("cancelled timer fired: %+v", ev)
	}
}

func TestEngineRescheduleReplacesTimer(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if _, err := engine.Schedule(Event{ID: "filter", Kind: KindFilter, FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if _, err := engine.Schedule(Event{ID: "filter", Kind: KindFilter, Ref: "second", FireAt: now.Add(40 * time.Millisecond)}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected one pending timer, got %d", engine.Pending())
	}
	ev := waitEvent(t, engine.C(), time.Second)
	if ev.Ref != "second" {
		t.Fatalf("expected replaced event, got %+v", ev)
	}
}

func TestEngineStopCancelsPending(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()

	if _, err := engine.After(50*time.Millisecond, Event{ID: "welcome", Kind: KindWelcome}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	engine.Stop()

	select {
	case ev, ok := <-engine.C():
		if ok {
			t.Fatalf("event delivered after stop: %+v", ev)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected channel to be closed after stop")
	}
	if _, err := engine.After(time.Millisecond, Event{Kind: KindWelcome}); err != ErrStopped {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func TestEngineStopDiscardsBufferedEvents(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()

	if _, err := engine.After(time.Millisecond, Event{ID: "w", Kind: KindWelcome}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	// Let the event fire into the buffer without reading it.
	time.Sleep(30 * time.Millisecond)
	engine.Stop()

	select {
	case ev, ok := <-engine.C():
		if ok {
			t.Fatalf("event delivered after stop: %+v", ev)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected channel to be closed after stop")
	}
}

func TestEngineStopWithoutStartClosesChannel(t *testing.T) {
	engine := NewEngine(1)
	engine.Stop()
	if _, ok := <-engine.C(); ok {
		t.Fatal("expected closed channel")
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if _, err := engine.Schedule(Event{Kind: KindToastExpire, FireAt: now}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesFireTime(t *testing.T) {
	engine := NewEngine(1)
	if _, err := engine.Schedule(Event{ID: "bad"}); err != ErrInvalidFireTime {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
