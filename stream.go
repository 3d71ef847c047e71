package camsensor

import (
	"fmt"

	"github.com/google/uuid"
)

// PowerOn powers the sensor up.  It does nothing when already powered.
func (d *Device) PowerOn() error {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.powerOn()
}

func (d *Device) powerOn() error {

	if d.state != PoweredOff {
		return nil
	}

	if d.fastBoot {
		d.log.Info().Msg("fast boot, sensor left running")

	} else {

		if err := d.powerUp(); err != nil {
			return err
		}

		if len(d.desc.PowerOnProgram) > 0 {

			if err := d.writeProgram(d.desc.PowerOnProgram); err != nil {
				d.powerDown()
				return fmt.Errorf("power on program: %w", err)
			}

			d.sleep.Sleep(d.desc.InitSettle)
		}
	}

	d.state = PoweredOn
	d.programmed = false

	d.log.Debug().Msg("powered on")

	return nil
}

// PowerOff powers the sensor down.  A streaming sensor must be stopped first.
func (d *Device) PowerOff() error {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.powerOff()
}

func (d *Device) powerOff() error {

	if d.state == Streaming {
		return ErrStreaming
	}

	if d.state == PoweredOff {
		return nil
	}

	d.state = PoweredOff
	d.programmed = false

	if d.fastBoot {

		if !d.firstStreamOff {
			d.log.Info().Msg("fast boot, power off skipped")
			return nil
		}

		d.fastBoot = false
		d.firstStreamOff = false
	}

	d.powerDown()
	d.log.Debug().Msg("powered off")

	return nil
}

// StartStream programs the current mode when needed, applies every control
// and starts streaming
func (d *Device) StartStream() error {

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Streaming:
		return nil
	case PoweredOff:
		return ErrNotPowered
	}

	m := d.cur()

	if !d.programmed && !d.fastBoot {

		if err := d.writeModeProgram(m); err != nil {
			return err
		}

		d.programmed = true
	}

	if err := d.writeProgram(d.desc.PreSetup); err != nil {
		return fmt.Errorf("pre setup: %w", err)
	}

	if err := d.pushAll(); err != nil {
		return err
	}

	if err := d.applyFlip(); err != nil {
		return err
	}

	if d.desc.PostSetup != nil {
		if err := d.desc.PostSetup(&d.regs); err != nil {
			return fmt.Errorf("post setup: %w", err)
		}
	}

	s := d.desc.Stream

	if err := d.regs.Write(s.Reg, 1, uint32(s.On)); err != nil {
		return fmt.Errorf("stream on: %w", err)
	}

	d.state = Streaming
	d.streamID = uuid.New()

	d.log.Info().Str("stream", d.streamID.String()).Str("mode", m.String()).
		Msg("stream started")

	return nil
}

// pushAll writes every writable control in frame length first order
func (d *Device) pushAll() error {

	for _, k := range []ControlKind{VBlank, Exposure, AnalogGain, TestPattern} {

		if !d.ctrls[k].present {
			continue
		}

		if err := d.pushControl(k); err != nil {
			return fmt.Errorf("setup %s: %w", k, err)
		}
	}

	return nil
}

// StopStream puts the sensor into standby.  It does nothing when the sensor
// is not streaming.
func (d *Device) StopStream() error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Streaming {
		return nil
	}

	d.stopStream()

	return nil
}

func (d *Device) stopStream() {

	s := d.desc.Stream

	if err := d.regs.Write(s.Reg, 1, uint32(s.Off)); err != nil {
		d.log.Warn().Err(err).Msg("stream off")
	}

	if d.fastBoot {
		d.firstStreamOff = true
	}

	d.log.Info().Str("stream", d.streamID.String()).Msg("stream stopped")

	d.state = PoweredOn
	d.streamID = uuid.Nil
}

// Format is the active format of the sensor
type Format struct {
	Width  uint32
	Height uint32
	Code   PixelCode
}

// Format returns the format of the current mode
func (d *Device) Format() Format {

	d.mu.Lock()
	defer d.mu.Unlock()

	m := d.cur()

	return Format{Width: m.Width, Height: m.Height, Code: m.Code}
}

// Mode returns a copy of the current mode
func (d *Device) Mode() Mode {

	d.mu.Lock()
	defer d.mu.Unlock()

	return *d.cur()
}

// SetFormat selects the mode closest to the requested size.  With try set
// the fitted format is returned without changing anything.
func (d *Device) SetFormat(width, height uint32, code PixelCode, try bool) (Format, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.desc.Catalog.FindBestFit(width, height, code, d.desc.Fit)
	m := &d.desc.Catalog[idx]
	f := Format{Width: m.Width, Height: m.Height, Code: m.Code}

	if try {
		return f, nil
	}

	if d.state == Streaming {
		return Format{}, ErrBusy
	}

	if err := d.applyMode(idx); err != nil {
		return Format{}, err
	}

	return f, nil
}

// FrameInterval returns the current frame interval, which follows vblank
func (d *Device) FrameInterval() Fraction {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.curFPS
}

// SetFrameInterval selects the mode of the current size and format running
// at the requested rate
func (d *Device) SetFrameInterval(interval Fraction) error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Streaming {
		return ErrBusy
	}

	if interval.Numerator == 0 {
		return fmt.Errorf("%w: zero numerator", ErrInvalidInterval)
	}

	idx, ok := d.desc.Catalog.FindByInterval(d.cur(), interval)

	if !ok {
		return fmt.Errorf("%w: %d/%d", ErrInvalidInterval, interval.Numerator,
			interval.Denominator)
	}

	return d.applyMode(idx)
}
