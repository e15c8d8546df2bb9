package trace

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Version is the trace format written by Encode.
const Version = 1

// ErrVersion is returned by Decode for an unsupported format version.
var ErrVersion = errors.New("trace: unsupported format version")

// Event is one recorded visit.
type Event struct {
	Seq  uint64    `msgpack:"s"`
	Col  int       `msgpack:"c"`
	Row  int       `msgpack:"r"`
	Role grid.Mark `msgpack:"m"`
}

// Position returns the cell of e.
func (e Event) Position() grid.Position {
	return grid.Position{Col: e.Col, Row: e.Row}
}

// Recorder collects events. The zero value is ready to use and safe for
// concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	seq    uint64
}

// Visit appends one event. Its signature matches search.Visit.
func (r *Recorder) Visit(p grid.Position, role grid.Mark) {
	r.mu.Lock()
	r.events = append(r.events, Event{Seq: r.seq, Col: p.Col, Row: p.Row, Role: role})
	r.seq++
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Reset drops every event and restarts the sequence at zero.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = r.events[:0]
	r.seq = 0
	r.mu.Unlock()
}

// file is the on-disk envelope.
type file struct {
	Version int     `msgpack:"v"`
	Events  []Event `msgpack:"e"`
}

// Encode writes events to w as MessagePack.
func Encode(w io.Writer, events []Event) error {
	if err := msgpack.NewEncoder(w).Encode(file{Version: Version, Events: events}); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	return nil
}

// Decode reads a trace written by Encode.
func Decode(r io.Reader) ([]Event, error) {
	var f file
	if err := msgpack.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("trace: decode: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}
	return f.Events, nil
}

// Replay feeds events to visit in sequence order. A nil visit is a no-op.
func Replay(events []Event, visit search.Visit) {
	if visit == nil {
		return
	}
	for _, e := range sorted(events) {
		visit(e.Position(), e.Role)
	}
}

// Order returns, in sequence order, the positions of events with the given
// role. Order(events, grid.MarkClosed) is the expansion order of the run.
func Order(events []Event, role grid.Mark) []grid.Position {
	var out []grid.Position
	for _, e := range sorted(events) {
		if e.Role == role {
			out = append(out, e.Position())
		}
	}
	return out
}

// sorted returns events ordered by Seq, copying only when needed.
func sorted(events []Event) []Event {
	if slices.IsSortedFunc(events, bySeq) {
		return events
	}
	out := slices.Clone(events)
	slices.SortFunc(out, bySeq)
	return out
}

func bySeq(a, b Event) int { return cmp.Compare(a.Seq, b.Seq) }
