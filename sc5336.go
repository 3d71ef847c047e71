package camsensor

import (
	"fmt"
	"time"
)

func init() {
	register("sc5336", "", sc5336, true)
}

// sc5336Exposure writes the exposure in 1/16 line units, four high bits,
// eight middle bits and four low bits in the top nibble
func sc5336Exposure(_ *Mode, v uint32) []RegWrite {
	return []RegWrite{
		reg8(0x3e00, (v>>12)&0xf),
		reg8(0x3e01, (v>>4)&0xff),
		reg8(0x3e02, (v&0xf)<<4),
	}
}

// sc5336Revision applies the analog tuning that depends on the silicon
// revision in 0x3040
func sc5336Revision(r Registers) error {

	rev, err := r.Read(0x3040, 1)

	if err != nil {
		return fmt.Errorf("read chip revision: %w", err)
	}

	var vals []uint32

	switch rev {
	case 0x00:
		vals = []uint32{0x0c, 0x0b, 0x0a, 0x00, 0x75}
	case 0x03:
		vals = []uint32{0x08, 0x07, 0x05, 0x07, 0x74}
	default:
		return nil
	}

	addrs := []uint16{0x3258, 0x3249, 0x3934, 0x3935, 0x3937}
	writes := make([]RegWrite, len(addrs))

	for i, a := range addrs {
		writes[i] = reg8(a, vals[i])
	}

	return r.WriteBatch(writes)
}

func sc5336TestPattern(p uint32) []RegWrite {

	if p == 0 {
		return []RegWrite{reg8(0x4501, 0xa4), reg8(0x3902, 0xc0), reg8(0x3e07, 0x80)}
	}

	return []RegWrite{reg8(0x4501, 0xac), reg8(0x3902, 0x80), reg8(0x3e07, 0x40)}
}

// sc5336 returns the SmartSens SC5336 5MP sensor
func sc5336() *Descriptor {

	return &Descriptor{
		Name:      "sc5336",
		Lanes:     2,
		XVClk:     24000000,
		LinkFreqs: []uint64{432000000},
		Catalog: Catalog{
			{
				Code:           SBGGR10,
				Width:          2880,
				Height:         1620,
				MaxFPS:         Fraction{10000, 300000},
				Exposure:       0x0080 * 4,
				HTS:            0x0654 * 2,
				VTS:            0x0708,
				BPP:            10,
				ExposureOffset: 8,
				Program:        sc5336Regs2880x1620,
				VC:             [PadMax]uint32{Channel0},
			},
		},
		Fit:         FitPreferCode,
		VTSMax:      0x7fff,
		ExposureMin: 2,
		Gain: &BandGain{
			Min:     32,
			Max:     32 * 15 * 32,
			Default: 0x120,
			Unit:    32,
			Bands: []GainBand{
				{Below: 2000, Again: 0x00, Base: 1000},
				{Below: 4000, Again: 0x08, Base: 2000},
				{Below: 8000, Again: 0x09, Base: 4000},
				{Below: 16000, Again: 0x0b, Base: 8000},
				{Below: 32000, Again: 0x0f, Base: 16000},
				{Below: 64000, Again: 0x1f, Base: 32000},
				// digital gain up to 4x
				{Below: 128000, Again: 0x1f, Dgain: 0x01, Base: 32000, Div: 2},
				{Below: 256000, Again: 0x1f, Dgain: 0x03, Base: 32000, Div: 4},
				{Below: 480000, Again: 0x1f, Dgain: 0x07, Base: 32000, Div: 8},
				{Again: 0x1f, Dgain: 0x07, Fine: 0xf0},
			},
			DgainReg: 0x3e06,
			FineReg:  0x3e07,
			AgainReg: 0x3e09,
		},
		Exposure: sc5336Exposure,
		VTS:      SplitHL(0x320e, 0x320f),
		Flip: &FlipBits{
			MirrorReg: 0x3221, MirrorMask: 0x06,
			FlipReg: 0x3221, FlipMask: 0x60,
		},
		TestPattern: &PatternTable{
			Menu:   []string{"Disabled", "Vertical Gray Bar Type 1"},
			Encode: sc5336TestPattern,
		},
		Stream:    StreamRegs{Reg: 0x0100, On: 0x01, Off: 0x00},
		ID:        Identity{Addr: 0x3107, Width: 2, Value: 0xce50},
		PostSetup: sc5336Revision,
		// global registers are written on every power up
		PowerOnProgram: sc5336GlobalRegs,
		GroupHold: &GroupHold{
			Begin: []RegWrite{reg8(0x3812, 0x00)},
			End:   []RegWrite{reg8(0x3812, 0x30)},
		},
		Power: PowerProfile{
			On: []PowerStep{
				pinctrlStep(PinDefault),
				clockOn,
				lineStep(LineReset, 0),
				regsOn,
				lineStep(LineReset, 1),
				sleepStep(500*time.Microsecond, 1000*time.Microsecond),
				lineStep(LinePwdn, 1),
				sleepStep(6*time.Millisecond, 8*time.Millisecond),
				calStep(8192),
			},
			Off: []PowerStep{
				clockOff,
				lineStep(LinePwdn, 0),
				lineStep(LineReset, 0),
				pinctrlStep(PinSleep),
				regsOff,
			},
		},
		Supplies: []string{"avdd", "dovdd", "dvdd"},
	}
}
