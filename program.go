package camsensor

import (
	"fmt"
	"time"
)

const (
	// RegDelay as an address makes a program entry sleep Val milliseconds
	RegDelay uint16 = 0xfffe
	// RegNull as an address ends a program
	RegNull uint16 = 0xffff
)

// RegVal is an 8 bit register program entry
type RegVal struct {
	Addr uint16
	Val  uint8
}

// Program is an ordered register initialisation table
type Program []RegVal

// writeProgram writes the program entries in order, honouring delay and end
// markers
func (d *Device) writeProgram(p Program) error {

	var batch BatchError

	for _, rv := range p {

		if rv.Addr == RegNull {
			break
		}

		if rv.Addr == RegDelay {
			d.sleep.Sleep(time.Duration(rv.Val) * time.Millisecond)
			continue
		}

		if err := d.regs.Write(rv.Addr, 1, uint32(rv.Val)); err != nil {

			if d.regs.policy == FailFast {
				return err
			}

			batch.add(err)
		}
	}

	return batch.errOrNil()
}

// writeModeProgram writes the global and mode specific programs of a mode
func (d *Device) writeModeProgram(m *Mode) error {

	if err := d.writeProgram(m.Global); err != nil {
		return fmt.Errorf("global program: %w", err)
	}

	if err := d.writeProgram(m.Program); err != nil {
		return fmt.Errorf("%dx%d program: %w", m.Width, m.Height, err)
	}

	return nil
}

// applyMode switches to catalog entry idx.  When the sensor is powered the
// register program is written first and the mode only changes when every
// write succeeded.
func (d *Device) applyMode(idx int) error {

	m := &d.desc.Catalog[idx]
	written := false

	if d.state != PoweredOff && !d.fastBoot {

		if err := d.writeModeProgram(m); err != nil {
			return err
		}

		written = true
	}

	d.mode = idx
	d.programmed = written
	d.resetRanges()

	d.log.Info().Str("mode", m.String()).Bool("written", written).Msg("mode set")

	return nil
}

// resetRanges derives every mode dependent control from the current mode
func (d *Device) resetRanges() {

	m := d.cur()

	hblank := int64(m.HTS) - int64(m.Width)
	d.ctrls[HBlank].set(ControlRange{Min: hblank, Max: hblank, Step: 1,
		Default: hblank})

	vblank := int64(m.VTS) - int64(m.Height)
	d.ctrls[VBlank].set(ControlRange{Min: vblank,
		Max: int64(d.desc.VTSMax) - int64(m.Height), Step: 1, Default: vblank})

	d.curVTS = m.VTS
	d.curFPS = m.MaxFPS

	// short binned modes have a default exposure beyond their frame
	expRange := ControlRange{Min: int64(d.desc.ExposureMin),
		Max: int64(m.VTS) - int64(m.ExposureOffset), Step: 1}
	expRange.Default = expRange.clamp(int64(m.Exposure))
	d.ctrls[Exposure].set(expRange)

	d.ctrls[AnalogGain].rerange(d.gain().Range())

	rate := d.pixelRate(m)
	d.ctrls[PixelRate].set(ControlRange{Min: 0, Max: int64(rate), Step: 1,
		Default: int64(rate)})

	d.ctrls[LinkFreq].set(ControlRange{Min: 0,
		Max: int64(len(d.desc.LinkFreqs) - 1), Step: 1,
		Default: int64(m.LinkFreqIndex)})
}

// pixelRate returns link_freq / bits per sample * 2 * lanes for a mode
func (d *Device) pixelRate(m *Mode) uint64 {

	if m.LinkFreqIndex >= len(d.desc.LinkFreqs) || m.BPP == 0 {
		return 0
	}

	return d.desc.LinkFreqs[m.LinkFreqIndex] / uint64(m.BPP) * 2 *
		uint64(d.desc.Lanes)
}

// gain returns the gain encoder for the current mode
func (d *Device) gain() GainEncoder {

	if g := d.cur().Gain; g != nil {
		return g
	}

	return d.desc.Gain
}
