// Package settings provides live-adjustable named numeric parameters
// and the single-selection panel that navigates them. A setting is
// mutated through the panel by the UI and read through a typed pointer
// by the physics step; both paths touch the same value on the one
// engine goroutine.
package settings

import "fmt"

// Setting is a named numeric control with increment and decrement
// effects. Effects impose no bounds: a speed may go negative (reversing
// time visually) and a drag may exceed one (amplifying energy).
type Setting interface {
	Label() string
	Display() string
	Increment()
	Decrement()
}

// Scaled multiplies on increment and divides on decrement by a fixed
// factor.
type Scaled struct {
	label  string
	format string
	val    float64
	factor float64
}

func NewScaled(label string, initial, factor float64, format string) *Scaled {
	return &Scaled{label: label, format: format, val: initial, factor: factor}
}

func (s *Scaled) Label() string   { return s.label }
func (s *Scaled) Display() string { return fmt.Sprintf(s.format, s.val) }
func (s *Scaled) Increment()      { s.val *= s.factor }
func (s *Scaled) Decrement()      { s.val /= s.factor }
func (s *Scaled) Value() float64  { return s.val }

// Stepped adds on increment and subtracts on decrement a fixed delta.
type Stepped struct {
	label  string
	format string
	val    float64
	delta  float64
}

func NewStepped(label string, initial, delta float64, format string) *Stepped {
	return &Stepped{label: label, format: format, val: initial, delta: delta}
}

func (s *Stepped) Label() string   { return s.label }
func (s *Stepped) Display() string { return fmt.Sprintf(s.format, s.val) }
func (s *Stepped) Increment()      { s.val += s.delta }
func (s *Stepped) Decrement()      { s.val -= s.delta }
func (s *Stepped) Value() float64  { return s.val }

// Panel is an ordered list of settings with one selected entry.
type Panel struct {
	items    []Setting
	selected int
}

func NewPanel(items ...Setting) *Panel {
	return &Panel{items: items}
}

// Up moves the selection toward the first entry, clamped.
func (p *Panel) Up() {
	if p.selected > 0 {
		p.selected--
	}
}

// Down moves the selection toward the last entry, clamped.
func (p *Panel) Down() {
	if p.selected < len(p.items)-1 {
		p.selected++
	}
}

// Left decrements the selected setting.
func (p *Panel) Left() {
	if len(p.items) > 0 {
		p.items[p.selected].Decrement()
	}
}

// Right increments the selected setting.
func (p *Panel) Right() {
	if len(p.items) > 0 {
		p.items[p.selected].Increment()
	}
}

func (p *Panel) Selected() int    { return p.selected }
func (p *Panel) Items() []Setting { return p.items }
