package camsensor

import (
	"fmt"
	"io"
	"time"
)

// PinState selects a pin configuration group
type PinState int

const (
	PinDefault PinState = iota
	PinSleep
)

// String implements the Stringer interface for PinState
func (s PinState) String() string {
	switch s {
	case PinDefault:
		return "default"
	case PinSleep:
		return "sleep"
	default:
		return fmt.Sprintf("PinState(%d)", int(s))
	}
}

// Clock is the sensor input clock
type Clock interface {
	SetRate(hz uint32) error
	Enable() error
	Disable() error
}

// Line is a GPIO output
type Line interface {
	SetValue(v int) error
}

// Regulator is a switchable supply
type Regulator interface {
	Enable() error
	Disable() error
}

// Pinctrl switches the pin configuration of the sensor interface
type Pinctrl interface {
	Select(s PinState) error
}

// Power holds the collaborators used to sequence the sensor power.  Every
// member is optional, a missing line or clock is skipped.
type Power struct {
	Clock      Clock
	Reset      Line
	Pwdn       Line
	Pwren      Line
	Regulators []Regulator
	Pinctrl    Pinctrl
}

// LineRole names a control line of the sensor
type LineRole int

const (
	LineReset LineRole = iota
	LinePwdn
	LinePwren
)

// String implements the Stringer interface for LineRole
func (r LineRole) String() string {
	switch r {
	case LineReset:
		return "reset"
	case LinePwdn:
		return "pwdn"
	case LinePwren:
		return "pwren"
	default:
		return fmt.Sprintf("LineRole(%d)", int(r))
	}
}

// StepKind is the action of a power sequence step
type StepKind int

const (
	StepPinctrl StepKind = iota
	StepClockOn
	StepClockOff
	StepLine
	StepRegulatorsOn
	StepRegulatorsOff
	StepSleep
	// StepCalDelay waits Cycles input clock cycles
	StepCalDelay
)

// PowerStep is one step of a power sequence
type PowerStep struct {
	Kind     StepKind
	Line     LineRole
	Level    int
	State    PinState
	Min, Max time.Duration
	Cycles   uint32
}

// PowerProfile lists the power on and power off sequences of a sensor
type PowerProfile struct {
	On  []PowerStep
	Off []PowerStep
}

func pinctrlStep(s PinState) PowerStep {
	return PowerStep{Kind: StepPinctrl, State: s}
}

func lineStep(role LineRole, level int) PowerStep {
	return PowerStep{Kind: StepLine, Line: role, Level: level}
}

func sleepStep(min, max time.Duration) PowerStep {
	return PowerStep{Kind: StepSleep, Min: min, Max: max}
}

func calStep(cycles uint32) PowerStep {
	return PowerStep{Kind: StepCalDelay, Cycles: cycles}
}

var (
	clockOn  = PowerStep{Kind: StepClockOn}
	clockOff = PowerStep{Kind: StepClockOff}
	regsOn   = PowerStep{Kind: StepRegulatorsOn}
	regsOff  = PowerStep{Kind: StepRegulatorsOff}
)

// line returns the collaborator for a line role
func (p *Power) line(role LineRole) Line {
	switch role {
	case LineReset:
		return p.Reset
	case LinePwdn:
		return p.Pwdn
	case LinePwren:
		return p.Pwren
	}
	return nil
}

// powerUp runs the power on sequence.  A clock or regulator failure undoes
// what was enabled so far and is returned, line and pinctrl failures are
// only logged.
func (d *Device) powerUp() error {

	p := &d.power
	clockEnabled := false
	enabled := 0

	unwind := func() {

		for i := enabled - 1; i >= 0; i-- {
			if err := p.Regulators[i].Disable(); err != nil {
				d.log.Warn().Err(err).Int("regulator", i).Msg("disable regulator")
			}
		}

		if clockEnabled {
			if err := p.Clock.Disable(); err != nil {
				d.log.Warn().Err(err).Msg("disable xvclk")
			}
		}
	}

	for _, st := range d.desc.Power.On {

		switch st.Kind {
		case StepPinctrl:
			d.selectPins(st.State)

		case StepClockOn:
			if p.Clock == nil {
				continue
			}

			if err := p.Clock.SetRate(d.desc.XVClk); err != nil {
				d.log.Warn().Err(err).Uint32("hz", d.desc.XVClk).
					Msg("failed to set xvclk rate")
			}

			if err := p.Clock.Enable(); err != nil {
				unwind()
				return fmt.Errorf("enable xvclk: %w", err)
			}

			clockEnabled = true

		case StepLine:
			d.setLine(st.Line, st.Level)

		case StepRegulatorsOn:
			for i, r := range p.Regulators {

				if err := r.Enable(); err != nil {
					unwind()
					return fmt.Errorf("enable regulator %s: %w",
						d.supplyName(i), err)
				}

				enabled++
			}

		case StepSleep:
			sleepRange(d.sleep, st.Min, st.Max)

		case StepCalDelay:
			us := calDelay(st.Cycles, d.desc.XVClk)
			d.sleep.Sleep(time.Duration(us) * time.Microsecond)
		}
	}

	return nil
}

// powerDown runs the power off sequence, failures are logged
func (d *Device) powerDown() {

	p := &d.power

	for _, st := range d.desc.Power.Off {

		switch st.Kind {
		case StepPinctrl:
			d.selectPins(st.State)

		case StepClockOff:
			if p.Clock == nil {
				continue
			}

			if err := p.Clock.Disable(); err != nil {
				d.log.Warn().Err(err).Msg("disable xvclk")
			}

		case StepLine:
			d.setLine(st.Line, st.Level)

		case StepRegulatorsOff:
			for i := len(p.Regulators) - 1; i >= 0; i-- {
				if err := p.Regulators[i].Disable(); err != nil {
					d.log.Warn().Err(err).Str("supply", d.supplyName(i)).
						Msg("disable regulator")
				}
			}

		case StepSleep:
			sleepRange(d.sleep, st.Min, st.Max)
		}
	}
}

func (d *Device) selectPins(s PinState) {

	if d.power.Pinctrl == nil {
		return
	}

	if err := d.power.Pinctrl.Select(s); err != nil {
		d.log.Warn().Err(err).Str("state", s.String()).Msg("could not set pins")
	}
}

func (d *Device) setLine(role LineRole, level int) {

	l := d.power.line(role)

	if l == nil {
		return
	}

	if err := l.SetValue(level); err != nil {
		d.log.Warn().Err(err).Str("line", role.String()).Int("level", level).
			Msg("set gpio")
	}
}

func (d *Device) supplyName(i int) string {

	if i < len(d.desc.Supplies) {
		return d.desc.Supplies[i]
	}

	return fmt.Sprintf("#%d", i)
}

// LineRegulator is a supply switched by a GPIO line
type LineRegulator struct {
	Line Line
}

func (r *LineRegulator) Enable() error {
	return r.Line.SetValue(1)
}

func (r *LineRegulator) Disable() error {
	return r.Line.SetValue(0)
}

func (r *LineRegulator) Close() error {
	return releaseLine(r.Line)
}

// LineClock is a fixed rate oscillator gated by a GPIO line
type LineClock struct {
	Line Line
	// Rate is the oscillator frequency in Hz, zero accepts any rate
	Rate uint32
}

// SetRate checks the requested rate against the fixed oscillator
func (c *LineClock) SetRate(hz uint32) error {

	if c.Rate != 0 && c.Rate != hz {
		return fmt.Errorf("oscillator runs at %d Hz, %d Hz requested", c.Rate, hz)
	}

	return nil
}

func (c *LineClock) Enable() error {
	return c.Line.SetValue(1)
}

func (c *LineClock) Disable() error {
	return c.Line.SetValue(0)
}

func (c *LineClock) Close() error {
	return releaseLine(c.Line)
}

// LinePinctrl switches a GPIO line driven level between the default and
// sleep pin states
type LinePinctrl struct {
	Line    Line
	Default int
	Sleep   int
}

func (p *LinePinctrl) Select(s PinState) error {

	if s == PinSleep {
		return p.Line.SetValue(p.Sleep)
	}

	return p.Line.SetValue(p.Default)
}

func (p *LinePinctrl) Close() error {
	return releaseLine(p.Line)
}

// releaseLine releases l when it holds a requested line
func releaseLine(l Line) error {

	if c, ok := l.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
