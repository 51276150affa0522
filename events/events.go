package events

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrInputSource = errors.New("terminal input source closed")

type Kind int

const (
	Input Kind = iota
	Tick
	Resize
	Failure
)

type Event struct {
	Kind Kind
	Key  *tcell.EventKey // set for Input
	Err  error           // set for Failure
}

// Poller is the part of tcell.Screen the source reads from. PollEvent
// returns nil once the screen is finalized.
type Poller interface {
	PollEvent() tcell.Event
}

// Source turns raw terminal events into an ordered stream of Input and
// Tick events. A Tick is emitted whenever tickRate has elapsed since the
// previous one, so a consumer never waits longer than tickRate.
type Source struct {
	poller   Poller
	tickRate time.Duration
	log      *log.Logger

	out  chan Event
	stop chan struct{}
}

func NewSource(poller Poller, tickRate time.Duration, logger *log.Logger) *Source {
	return &Source{
		poller:   poller,
		tickRate: tickRate,
		log:      logger,
		out:      make(chan Event),
		stop:     make(chan struct{}),
	}
}

func (s *Source) Events() <-chan Event {
	return s.out
}

func (s *Source) Start() {
	raw := make(chan tcell.Event)
	go s.poll(raw)
	go s.run(raw)
}

// Stop ends the producer. The poll goroutine stays blocked in PollEvent
// until the screen is finalized.
func (s *Source) Stop() {
	close(s.stop)
}

func (s *Source) poll(raw chan<- tcell.Event) {
	for {
		ev := s.poller.PollEvent()
		select {
		case raw <- ev:
		case <-s.stop:
			return
		}
		if ev == nil {
			return
		}
	}
}

func (s *Source) run(raw <-chan tcell.Event) {
	defer close(s.out)

	// pending makes delivery unbounded: the producer never blocks on a
	// slow consumer.
	var pending []Event
	failed := false
	lastTick := time.Now()
	timer := time.NewTimer(s.tickRate)
	defer timer.Stop()

	for {
		if failed && len(pending) == 0 {
			return
		}

		var out chan<- Event
		var next Event
		if len(pending) > 0 {
			out = s.out
			next = pending[0]
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(max(s.tickRate-time.Since(lastTick), 0))

		select {
		case ev := <-raw:
			if ev == nil {
				s.log.Error("input source closed")
				pending = append(pending, Event{Kind: Failure, Err: ErrInputSource})
				failed = true
				raw = nil
				continue
			}
			if e, ok := translate(ev); ok {
				pending = append(pending, e)
			}
		case out <- next:
			pending = pending[1:]
		case <-timer.C:
		case <-s.stop:
			return
		}

		if !failed && time.Since(lastTick) >= s.tickRate {
			pending = append(pending, Event{Kind: Tick})
			lastTick = time.Now()
		}
	}
}

func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Event{Kind: Input, Key: ev}, true
	case *tcell.EventResize:
		return Event{Kind: Resize}, true
	}
	return Event{}, false
}
