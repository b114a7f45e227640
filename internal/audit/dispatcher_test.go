package audit

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "client_created", Entity: "client", EntityKey: "ana"})
	d.Dispatch(Event{Action: "client_deleted", Entity: "client", EntityKey: "ana"})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	for _, ev := range sink.events {
		if ev.ID == "" {
			t.Fatal("event id should be assigned")
		}
		if ev.At.IsZero() {
			t.Fatal("event timestamp should be assigned")
		}
	}
	if sink.events[0].ID == sink.events[1].ID {
		t.Fatal("event ids should be unique")
	}
}

func TestDispatcher_DispatchAfterCloseIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)
	d.Close()
	d.Close()

	d.Dispatch(Event{Action: "late"})

	if len(sink.events) != 0 {
		t.Fatalf("expected no events, got %d", len(sink.events))
	}
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink)
	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("expected worker to keep going, got %d events", len(sink.events))
	}
}

func TestLogSink_WritesMetadata(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	if err := sink.Log(Event{ID: "1", Actor: "recepcion", RequestID: "req-1", Action: "service_added", Entity: "client", EntityKey: "ana", Metadata: map[string]string{"date": "2025-01-01"}}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "action=service_added") || !strings.Contains(out, `"date":"2025-01-01"`) {
		t.Fatalf("unexpected log line: %s", out)
	}
	if !strings.Contains(out, "actor=recepcion") || !strings.Contains(out, "request=req-1") {
		t.Fatalf("unexpected log line: %s", out)
	}
}
