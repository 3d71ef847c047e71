package camsensor

import (
	"fmt"
)

// ControlKind identifies a sensor control
type ControlKind int

const (
	Exposure ControlKind = iota
	AnalogGain
	HBlank
	VBlank
	HFlip
	VFlip
	TestPattern
	PixelRate
	LinkFreq
	numControls
)

// String implements the Stringer interface for ControlKind
func (k ControlKind) String() string {
	switch k {
	case Exposure:
		return "exposure"
	case AnalogGain:
		return "analogue_gain"
	case HBlank:
		return "horizontal_blanking"
	case VBlank:
		return "vertical_blanking"
	case HFlip:
		return "horizontal_flip"
	case VFlip:
		return "vertical_flip"
	case TestPattern:
		return "test_pattern"
	case PixelRate:
		return "pixel_rate"
	case LinkFreq:
		return "link_frequency"
	default:
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}
}

// ControlRange holds the limits of a control
type ControlRange struct {
	Min     int64
	Max     int64
	Step    int64
	Default int64
}

// clamp limits v to the range
func (r ControlRange) clamp(v int64) int64 {

	if v < r.Min {
		return r.Min
	}

	if v > r.Max {
		return r.Max
	}

	return v
}

// control is the live state of one control
type control struct {
	ControlRange
	val      int64
	present  bool
	readOnly bool
}

// set replaces the range and resets the value to the default
func (c *control) set(r ControlRange) {
	c.ControlRange = r
	c.val = r.Default
}

// rerange replaces the range keeping the value where it is still legal
func (c *control) rerange(r ControlRange) {
	c.ControlRange = r
	c.val = r.clamp(c.val)
}

// initControls sets up which controls the sensor exposes
func (d *Device) initControls() {

	for k := range d.ctrls {
		d.ctrls[k].present = true
	}

	for _, k := range []ControlKind{HBlank, PixelRate, LinkFreq} {
		d.ctrls[k].readOnly = true
	}

	d.ctrls[HFlip].set(ControlRange{Min: 0, Max: 1, Step: 1})
	d.ctrls[VFlip].set(ControlRange{Min: 0, Max: 1, Step: 1})

	if d.desc.Flip == nil {
		d.ctrls[HFlip].present = false
		d.ctrls[VFlip].present = false
	}

	if tp := d.desc.TestPattern; tp != nil {
		d.ctrls[TestPattern].set(ControlRange{Min: 0,
			Max: int64(len(tp.Menu) - 1), Step: 1})
	} else {
		d.ctrls[TestPattern].present = false
	}

	d.ctrls[AnalogGain].set(d.gain().Range())
	d.resetRanges()
}

// lookup returns the control state of kind
func (d *Device) lookup(kind ControlKind) (*control, error) {

	if kind < 0 || kind >= numControls || !d.ctrls[kind].present {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedControl, kind)
	}

	return &d.ctrls[kind], nil
}

// Control returns the current value of a control
func (d *Device) Control(kind ControlKind) (int64, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.lookup(kind)

	if err != nil {
		return 0, err
	}

	return c.val, nil
}

// ControlRange returns the current limits of a control
func (d *Device) ControlRange(kind ControlKind) (ControlRange, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.lookup(kind)

	if err != nil {
		return ControlRange{}, err
	}

	return c.ControlRange, nil
}

// SetControl sets a control value, clamped to its range.  The value always
// updates the device state but only reaches the sensor while it is powered.
func (d *Device) SetControl(kind ControlKind, value int64) error {

	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.lookup(kind)

	if err != nil {
		return err
	}

	if c.readOnly {
		return fmt.Errorf("%w: %s is read only", ErrUnsupportedControl, kind)
	}

	c.val = c.clamp(value)
	powered := d.state != PoweredOff

	if kind == VBlank {
		// exposure must follow the new frame length before anything is
		// written
		if d.vblankChanged() && powered {
			if err := d.pushControl(Exposure); err != nil {
				return err
			}
		}
	}

	if !powered {
		return nil
	}

	return d.pushControl(kind)
}

// vblankChanged recomputes the frame length dependent state after a vblank
// update and reports whether the exposure value had to be clamped
func (d *Device) vblankChanged() bool {

	m := d.cur()
	vts := m.Height + uint32(d.ctrls[VBlank].val)

	d.curVTS = vts
	d.curFPS = Fraction{
		Numerator:   m.MaxFPS.Numerator,
		Denominator: uint32(uint64(m.MaxFPS.Denominator) * uint64(m.VTS) / uint64(vts)),
	}

	exp := &d.ctrls[Exposure]
	before := exp.val
	exp.rerange(ControlRange{Min: exp.Min,
		Max: int64(vts) - int64(m.ExposureOffset), Step: exp.Step,
		Default: exp.Default})

	d.log.Debug().Uint32("vts", vts).Int64("exposure_max", exp.Max).
		Msg("frame length changed")

	return exp.val != before
}

// pushControl writes the current value of a control to the sensor
func (d *Device) pushControl(kind ControlKind) error {

	val := uint32(d.ctrls[kind].val)
	m := d.cur()

	switch kind {
	case Exposure:
		return d.held(d.desc.Exposure(m, val))

	case AnalogGain:
		return d.held(d.gain().Encode(val))

	case VBlank:
		return d.held(d.desc.VTS(m, val+m.Height))

	case HFlip, VFlip:
		if d.desc.FlipOnStream {
			return nil
		}
		return d.applyFlip()

	case TestPattern:
		return d.regs.WriteBatch(d.desc.TestPattern.Encode(val))
	}

	return nil
}

// held writes a batch inside the sensor group hold when enabled
func (d *Device) held(writes []RegWrite) error {

	gh := d.desc.GroupHold

	if !d.groupHold || gh == nil {
		return d.regs.WriteBatch(writes)
	}

	if err := d.regs.WriteBatch(gh.Begin); err != nil {
		return fmt.Errorf("group hold: %w", err)
	}

	if err := d.regs.WriteBatch(writes); err != nil {
		return err
	}

	if err := d.regs.WriteBatch(gh.End); err != nil {
		return fmt.Errorf("group launch: %w", err)
	}

	return nil
}

// flip returns the flip bits selected by the HFlip and VFlip controls
func (d *Device) flip() Flip {

	var f Flip

	if d.ctrls[HFlip].val != 0 {
		f |= FlipMirror
	}

	if d.ctrls[VFlip].val != 0 {
		f |= FlipVertical
	}

	return f
}

// applyFlip writes the current flip state
func (d *Device) applyFlip() error {

	if d.desc.Flip == nil {
		return nil
	}

	if err := d.desc.Flip.applyFlip(&d.regs, d.flip()); err != nil {
		return fmt.Errorf("flip: %w", err)
	}

	return nil
}

// Flip is the mirror and vertical flip state of the image
type Flip uint8

const (
	FlipMirror   Flip = 1
	FlipVertical Flip = 2
)

// Flipper writes a flip state to the sensor
type Flipper interface {
	applyFlip(r *regio, f Flip) error
}

// FlipBits sets independent mirror and flip bits with read-modify-write
type FlipBits struct {
	MirrorReg  uint16
	MirrorMask uint8
	FlipReg    uint16
	FlipMask   uint8
}

func (b *FlipBits) applyFlip(r *regio, f Flip) error {

	var mirror, vflip uint8

	if f&FlipMirror != 0 {
		mirror = b.MirrorMask
	}

	if f&FlipVertical != 0 {
		vflip = b.FlipMask
	}

	if b.MirrorReg == b.FlipReg {
		return r.modify(b.MirrorReg, b.MirrorMask|b.FlipMask, mirror|vflip)
	}

	if err := r.modify(b.MirrorReg, b.MirrorMask, mirror); err != nil {
		return err
	}

	return r.modify(b.FlipReg, b.FlipMask, vflip)
}

// FlipTable writes a fixed register set for each combined flip state
type FlipTable struct {
	Writes [4][]RegWrite
}

func (t *FlipTable) applyFlip(r *regio, f Flip) error {
	return r.WriteBatch(t.Writes[f&3])
}

// PatternTable is the test pattern menu of a sensor and its register encoding
type PatternTable struct {
	// Menu lists the pattern names, index 0 disables the pattern
	Menu   []string
	Encode func(pattern uint32) []RegWrite
}
