// Package mixer owns the values the on-screen controls edit. Controls only
// propose changes; the board accepts them and hands the result back on the
// next render.
package mixer

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/alkime/faders/pkg/uictl"
)

// Kind selects how a control is drawn.
type Kind int

const (
	// KindKnob is a rotary knob.
	KindKnob Kind = iota
	// KindFader is a vertical slider.
	KindFader
	// KindPan is a horizontal slider.
	KindPan
)

// Spec describes one control on the board.
type Spec struct {
	ID    string
	Label string
	Unit  string
	Kind  Kind
	Range uictl.Range[float64]
	Value float64
}

// Change records an accepted value change.
type Change struct {
	ID   string
	From float64
	To   float64
}

// Board holds the authoritative value of every control. It is safe for
// concurrent use so tests and the UI goroutine can both read it.
type Board struct {
	mu       sync.Mutex
	order    []string
	specs    map[string]Spec
	values   map[string]float64
	muted    map[string]bool
	onChange func(Change)
}

// NewBoard creates a board with the given controls. Initial values are
// clamped into their ranges.
func NewBoard(specs ...Spec) (*Board, error) {
	b := &Board{
		specs:  make(map[string]Spec, len(specs)),
		values: make(map[string]float64, len(specs)),
		muted:  make(map[string]bool, len(specs)),
	}

	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("control %q: empty id", s.Label)
		}

		if _, dup := b.specs[s.ID]; dup {
			return nil, fmt.Errorf("control %q: duplicate id", s.ID)
		}

		b.order = append(b.order, s.ID)
		b.specs[s.ID] = s
		b.values[s.ID] = s.Range.Clamp(s.Value)
	}

	return b, nil
}

// DefaultSpecs is the stock board: a master volume knob, three channel
// faders and a pan control.
func DefaultSpecs() []Spec {
	channel := uictl.Range[float64]{Min: 0, Max: 1, Step: 0.05}

	return []Spec{
		{ID: "volume", Label: "VOLUME", Unit: "db", Kind: KindKnob,
			Range: uictl.Range[float64]{Min: -60, Max: 0, Step: 1}, Value: -10},
		{ID: "mic", Label: "MIC", Kind: KindFader, Range: channel, Value: 0.8},
		{ID: "line", Label: "LINE", Kind: KindFader, Range: channel, Value: 0.5},
		{ID: "fx", Label: "FX", Kind: KindFader, Range: channel, Value: 0.2},
		{ID: "pan", Label: "PAN", Kind: KindPan,
			Range: uictl.Range[float64]{Min: -1, Max: 1, Step: 0.1}, Value: 0},
	}
}

// OnChange registers fn to be called after every accepted change.
func (b *Board) OnChange(fn func(Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.onChange = fn
}

// Specs returns the control specs in board order.
func (b *Board) Specs() []Spec {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Spec, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.specs[id])
	}

	return out
}

// Value returns the current value of a control.
func (b *Board) Value(id string) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.values[id]
}

// Set accepts a proposed value. Values outside the control's range are
// clamped; unknown ids are ignored.
func (b *Board) Set(id string, v float64) {
	b.mu.Lock()

	spec, ok := b.specs[id]
	if !ok {
		b.mu.Unlock()
		slog.Warn("set on unknown control", "id", id)

		return
	}

	change := Change{ID: id, From: b.values[id], To: spec.Range.Clamp(v)}
	b.values[id] = change.To
	fn := b.onChange
	b.mu.Unlock()

	if change.From == change.To {
		return
	}

	slog.Debug("control value accepted", "id", id, "from", change.From, "to", change.To)

	if fn != nil {
		fn(change)
	}
}

// Fader returns the control as a uictl.Fader.
func (b *Board) Fader(id string) uictl.Fader[float64] {
	return fader{board: b, id: id}
}

// Mute returns the mute switch of a control.
func (b *Board) Mute(id string) uictl.Switch {
	return muteSwitch{board: b, id: id}
}

// Format renders a value with the control's unit ("-10db", "0.35").
func (s Spec) Format(v float64) string {
	prec := 0
	if s.Range.Step > 0 && s.Range.Step < 1 {
		prec = len(strconv.FormatFloat(s.Range.Step, 'f', -1, 64)) - 2
	}

	return strconv.FormatFloat(v, 'f', prec, 64) + s.Unit
}

type fader struct {
	board *Board
	id    string
}

func (f fader) Read() float64 { return f.board.Value(f.id) }
func (f fader) Set(v float64) { f.board.Set(f.id, v) }

type muteSwitch struct {
	board *Board
	id    string
}

func (m muteSwitch) Read() bool {
	m.board.mu.Lock()
	defer m.board.mu.Unlock()

	return m.board.muted[m.id]
}

func (m muteSwitch) On()     { m.set(true) }
func (m muteSwitch) Off()    { m.set(false) }
func (m muteSwitch) Toggle() { m.set(!m.Read()) }

func (m muteSwitch) set(on bool) {
	m.board.mu.Lock()
	defer m.board.mu.Unlock()

	if _, ok := m.board.specs[m.id]; ok {
		m.board.muted[m.id] = on
	}
}
