// Package control turns gestures on a control's surface into value-change
// requests. One Controller serves one control instance and owns its drag
// state; the current value always comes from the owner through Bind.
package control

import (
	"log/slog"

	"github.com/alkime/faders/internal/geometry"
	"github.com/alkime/faders/internal/surface"
	"github.com/alkime/faders/pkg/uictl"
)

// DefaultFastFactor multiplies the wheel step while the fast-scroll
// modifier is held.
const DefaultFastFactor = 4

// State is the controller's interaction state.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means a pointer-down was seen and global move/up events
	// belong to this control.
	Dragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Mapper converts a pointer position into a value. bounds is nil when the
// control's surface has not been measured; implementations return current
// in that case.
type Mapper interface {
	ValueAt(p geometry.Point, bounds *geometry.Rect, r uictl.Range[float64], current float64) float64
}

// Config is everything a controller is bound to. The owner supplies a
// fresh Config whenever any of it changes.
type Config struct {
	Range         uictl.Range[float64]
	Value         float64
	OnValueChange func(v float64)
	Mapper        Mapper
	// FastFactor defaults to DefaultFastFactor.
	FastFactor float64
	// ReleaseOnBlur ends a drag when the host loses focus, so a pointer-up
	// released elsewhere cannot leave the drag stuck.
	ReleaseOnBlur bool
}

// Controller arbitrates gestures for one control.
type Controller struct {
	local  *surface.Surface
	global *surface.Surface
	logger *slog.Logger

	cfg   Config
	bound bool
	state State

	detachLocal  []func()
	detachGlobal []func()
}

// New creates a controller for the control drawn on local. global is the
// surface shared by all controls; it receives pointer moves and releases
// wherever they happen.
func New(local, global *surface.Surface) *Controller {
	return &Controller{
		local:  local,
		global: global,
		logger: slog.Default().With("surface", local.Name()),
	}
}

// Bind attaches the controller's listeners for cfg. Every listener from a
// previous Bind is detached first, so rebinding never leaves duplicate
// handlers behind. An ongoing drag survives a rebind.
func (c *Controller) Bind(cfg Config) {
	c.unlisten()

	if !(cfg.FastFactor > 0) {
		cfg.FastFactor = DefaultFastFactor
	}

	c.cfg = cfg
	c.bound = true

	c.detachLocal = []func(){
		c.local.Listen(surface.Wheel, c.handleWheel),
		c.local.Listen(surface.TouchStart, c.handleTouchStart),
		c.local.Listen(surface.TouchMove, c.handleTouchMove),
		c.local.Listen(surface.MouseDown, c.handleMouseDown),
	}

	if c.state == Dragging {
		c.listenGlobal()
	}
}

// Unbind detaches every listener and abandons any drag. Use it when the
// control goes away.
func (c *Controller) Unbind() {
	c.unlisten()
	c.bound = false

	if c.state == Dragging {
		c.state = Idle
		c.local.SetInteracting(false)
	}
}

// State returns the interaction state.
func (c *Controller) State() State {
	return c.state
}

// Bound reports whether listeners are attached.
func (c *Controller) Bound() bool {
	return c.bound
}

// Config returns the configuration from the last Bind.
func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) unlisten() {
	for _, off := range c.detachLocal {
		off()
	}

	c.detachLocal = nil
	c.unlistenGlobal()
}

func (c *Controller) listenGlobal() {
	c.unlistenGlobal()

	c.detachGlobal = []func(){
		c.global.Listen(surface.MouseMove, c.handleMouseMove),
		c.global.Listen(surface.MouseUp, c.handleMouseUp),
	}

	if c.cfg.ReleaseOnBlur {
		c.detachGlobal = append(c.detachGlobal, c.global.Listen(surface.Blur, c.handleBlur))
	}
}

func (c *Controller) unlistenGlobal() {
	for _, off := range c.detachGlobal {
		off()
	}

	c.detachGlobal = nil
}

func (c *Controller) startDrag() {
	if c.state != Dragging {
		c.logger.Debug("drag started")
	}

	c.state = Dragging
	c.local.SetInteracting(true)
	c.listenGlobal()
}

func (c *Controller) stopDrag(reason string) {
	c.state = Idle
	c.local.SetInteracting(false)
	c.unlistenGlobal()
	c.logger.Debug("drag ended", "reason", reason)
}

// propose emits the result of cmd if it differs from the bound value.
func (c *Controller) propose(cmd Command) {
	next, changed := Propose(cmd, c.cfg.Value, c.cfg.Range)
	if !changed {
		return
	}

	c.logger.Debug("value change", "from", c.cfg.Value, "to", next)

	if c.cfg.OnValueChange != nil {
		c.cfg.OnValueChange(next)
	}
}

func (c *Controller) valueAt(p geometry.Point) float64 {
	if c.cfg.Mapper == nil {
		return c.cfg.Value
	}

	return c.cfg.Mapper.ValueAt(p, c.local.Bounds(), c.cfg.Range, c.cfg.Value)
}

func (c *Controller) handleWheel(ev *surface.Event) {
	ev.PreventDefault()

	var steps float64

	switch {
	case ev.DeltaY < 0:
		steps = 1
	case ev.DeltaY > 0:
		steps = -1
	default:
		return
	}

	if ev.Shift {
		steps *= c.cfg.FastFactor
	}

	c.propose(Nudge{Steps: steps})
}

func (c *Controller) handleTouchStart(ev *surface.Event) {
	if ev.Cancelable {
		ev.PreventDefault()
		ev.StopPropagation()
	}

	c.propose(SetTo{Value: c.valueAt(ev.Pos)})
}

func (c *Controller) handleTouchMove(ev *surface.Event) {
	ev.PreventDefault()
	c.propose(SetTo{Value: c.valueAt(ev.Pos)})
}

func (c *Controller) handleMouseDown(ev *surface.Event) {
	if ev.Button != surface.ButtonPrimary {
		return
	}

	ev.PreventDefault()
	c.startDrag()
	c.propose(SetTo{Value: c.valueAt(ev.Pos)})
}

func (c *Controller) handleMouseMove(ev *surface.Event) {
	if c.state != Dragging {
		return
	}

	ev.PreventDefault()
	c.propose(SetTo{Value: c.valueAt(ev.Pos)})
}

func (c *Controller) handleMouseUp(ev *surface.Event) {
	if c.state != Dragging {
		return
	}

	ev.PreventDefault()
	c.stopDrag("pointer up")
}

func (c *Controller) handleBlur(*surface.Event) {
	if c.state == Dragging {
		c.stopDrag("blur")
	}
}
