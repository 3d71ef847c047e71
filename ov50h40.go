package camsensor

import "time"

// ov50h40FullHeight is the height of the full resolution mode, which counts
// exposure and frame length in line pairs
const ov50h40FullHeight = 6144

// ov50h40SPD is the PDAF statistics channel sent next to the image
var ov50h40SPD = &AuxChannel{
	Width:    4096,
	Height:   768,
	Code:     SPD2X8,
	DataType: 0x19,
	DataBit:  10,
}

func init() {
	register("ov50h40", "dphy", ov50h40DPHY, true)
	register("ov50h40", "cphy", ov50h40CPHY, false)
}

// ov50h40Halved returns an encoder writing v, halved on the full
// resolution mode, into a width byte register
func ov50h40Halved(addr uint16, width int) ValueEncoder {
	return func(m *Mode, v uint32) []RegWrite {

		if m.Height == ov50h40FullHeight {
			v /= 2
		}

		return []RegWrite{{Addr: addr, Width: width, Val: v}}
	}
}

// ov50h40Gain splits gains above 15.5x between the analog stage and the
// digital gain
func ov50h40Gain(gain uint32) []RegWrite {

	again, dgain := gain, uint32(1024)

	if gain > 1984 {
		dgain = gain * 1024 / 1984
		again = 1984
	}

	return []RegWrite{
		{Addr: 0x3508, Width: 2, Val: (again << 1) & 0x7ffe},
		{Addr: 0x350A, Width: 3, Val: (dgain << 6) & 0xfffc0},
	}
}

func ov50h40TestPattern(p uint32) []RegWrite {

	if p == 0 {
		return []RegWrite{reg8(0x50C1, 0)}
	}

	return []RegWrite{reg8(0x50C1, ((p-1)<<4)|1)}
}

// ov50h40Mode returns a 10 bit mode, the exposure offset doubling on the
// full resolution mode
func ov50h40Mode(w, h uint32, fps Fraction, hts, vts, exp uint32, link int,
	prog Program, spd *AuxChannel) Mode {

	offset := uint32(22)

	if h == ov50h40FullHeight {
		offset = 44
	}

	return Mode{
		Code:           SGBRG10,
		Width:          w,
		Height:         h,
		MaxFPS:         fps,
		Exposure:       exp,
		HTS:            hts,
		VTS:            vts,
		LinkFreqIndex:  link,
		BPP:            10,
		ExposureOffset: offset,
		Program:        prog,
		SPD:            spd,
		VC:             [PadMax]uint32{Channel0},
	}
}

// ov50h40DPHY returns the OmniVision OV50H40 50MP sensor on a D-PHY link
func ov50h40DPHY() *Descriptor {

	d := ov50h40Base("dphy")
	d.Catalog = Catalog{
		ov50h40Mode(4096, 3072, Fraction{10000, 300000}, 0x41a*4, 0x0c66,
			0x0840, 2, ov50h40Regs4096x3072DPHY, ov50h40SPD),
		ov50h40Mode(8192, 6144, Fraction{10000, 120000}, 0x9f6*4, 0x0cc3*2,
			0x0240, 3, ov50h40Regs8192x6144DPHY, ov50h40SPD),
	}

	return d
}

// ov50h40CPHY returns the OV50H40 on a C-PHY link
func ov50h40CPHY() *Descriptor {

	d := ov50h40Base("cphy")
	d.Catalog = Catalog{
		ov50h40Mode(4096, 3072, Fraction{10000, 150000}, 0x044c, 0x08e0,
			0x0C00, 0, ov50h40Regs4096x3072CPHY15, ov50h40SPD),
		ov50h40Mode(4096, 3072, Fraction{10000, 300000}, 0x044c, 0x08e0,
			0x0c00, 2, ov50h40Regs4096x3072CPHY30, ov50h40SPD),
		ov50h40Mode(8192, 6144, Fraction{10000, 120000}, 0x0306, 0x0c96,
			0x0c00, 3, ov50h40Regs8192x6144CPHY, nil),
	}

	return d
}

func ov50h40Base(variant string) *Descriptor {

	return &Descriptor{
		Name:        "ov50h40",
		Variant:     variant,
		Lanes:       3,
		XVClk:       19200000,
		LinkFreqs:   []uint64{356000000, 384000000, 750000000, 1250000000},
		Fit:         FitExactCode,
		VTSMax:      0xffff,
		ExposureMin: 4,
		Gain: &FuncGain{
			Limits: ControlRange{Min: 0x80, Max: 0x7C00, Step: 1, Default: 0x80},
			Fn:     ov50h40Gain,
		},
		Exposure: ov50h40Halved(0x3500, 3),
		VTS:      ov50h40Halved(0x380e, 2),
		Flip: &FlipBits{
			MirrorReg: 0x3821, MirrorMask: 0x04,
			FlipReg: 0x3820, FlipMask: 0x04,
		},
		TestPattern: &PatternTable{
			Menu: []string{
				"Disabled",
				"Vertical Color Bar Type 1",
				"Vertical Color Bar Type 2",
				"Vertical Color Bar Type 3",
				"Vertical Color Bar Type 4",
			},
			Encode: ov50h40TestPattern,
		},
		Stream: StreamRegs{Reg: 0x0100, On: 0x01, Off: 0x00},
		ID:     Identity{Addr: 0x300a, Width: 3, Value: 0x564041},
		// software reset
		PowerOnProgram: Program{{0x0103, 0x01}},
		InitSettle:     100 * time.Microsecond,
		GroupHold: &GroupHold{
			Begin: []RegWrite{reg8(0x3208, 0x00)},
			End:   []RegWrite{reg8(0x3208, 0x10), reg8(0x3208, 0xa0)},
		},
		Power: PowerProfile{
			On: []PowerStep{
				pinctrlStep(PinDefault),
				clockOn,
				lineStep(LineReset, 1),
				regsOn,
				lineStep(LineReset, 0),
				sleepStep(500*time.Microsecond, 1000*time.Microsecond),
				lineStep(LinePwdn, 0),
				sleepStep(8*time.Millisecond, 10*time.Millisecond),
				calStep(8192),
			},
			Off: []PowerStep{
				lineStep(LinePwdn, 1),
				clockOff,
				lineStep(LineReset, 1),
				pinctrlStep(PinSleep),
				regsOff,
			},
		},
		Supplies: []string{"avdd", "dovdd", "dvdd"},
	}
}
