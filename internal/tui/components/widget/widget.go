// Package widget holds what the slider and knob components share: a zone
// marked surface and the controller bound to it.
package widget

import (
	"github.com/alkime/faders/internal/control"
	"github.com/alkime/faders/internal/surface"
	"github.com/alkime/faders/pkg/uictl"
	zone "github.com/lrstanley/bubblezone"
)

// Widget is the interactive part of a control.
type Widget struct {
	id      string
	zones   *zone.Manager
	surface *surface.Surface
	ctrl    *control.Controller
	cfg     control.Config
}

// New creates a widget and binds its controller. The surface is measured
// through the zone named id, so the widget's view must go through Mark.
func New(id string, zones *zone.Manager, global *surface.Surface, cfg control.Config) *Widget {
	s := surface.New(id, surface.ZoneMeasurer{Zones: zones, ID: id})

	w := &Widget{
		id:      id,
		zones:   zones,
		surface: s,
		ctrl:    control.New(s, global),
		cfg:     cfg,
	}
	w.ctrl.Bind(cfg)

	return w
}

// ID returns the widget id.
func (w *Widget) ID() string {
	return w.id
}

// Surface returns the widget's own input surface.
func (w *Widget) Surface() *surface.Surface {
	return w.surface
}

// Sync re-supplies the owner's value, rebinding the controller if it changed.
func (w *Widget) Sync(value float64) {
	if value == w.cfg.Value && w.ctrl.Bound() {
		return
	}

	w.cfg.Value = value
	w.ctrl.Bind(w.cfg)
}

// Value returns the value last supplied by the owner.
func (w *Widget) Value() float64 {
	return w.cfg.Value
}

// Range returns the bound range.
func (w *Widget) Range() uictl.Range[float64] {
	return w.cfg.Range
}

// Interacting reports whether a drag is in progress on this widget.
func (w *Widget) Interacting() bool {
	return w.surface.Interacting()
}

// State returns the controller state.
func (w *Widget) State() control.State {
	return w.ctrl.State()
}

// Unbind detaches the widget from every surface.
func (w *Widget) Unbind() {
	w.ctrl.Unbind()
}

// Mark wraps view in the widget's zone so its bounds can be measured.
func (w *Widget) Mark(view string) string {
	if w.zones == nil {
		return view
	}

	return w.zones.Mark(w.id, view)
}
