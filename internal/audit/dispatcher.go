package audit

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        string
	Actor     string
	RequestID string
	Action    string
	Entity    string
	EntityKey string
	Metadata  any
	At        time.Time
}

// Sink persiste um evento de auditoria.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch nunca bloqueia. Dispatcher nil é aceito e ignora o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar a operação)
		log.Println("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	<-d.done
}
