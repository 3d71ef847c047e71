package camsensor

import "time"

func init() {
	register("imx708", "", imx708, true)
}

// imx708Gain converts a gain in 1/16 units into the 10 bit analog gain code
// 1024 - 1024/gain
func imx708Gain(gain uint32) []RegWrite {

	gain = clampU32(gain, 0x10, 0x400)
	again := 1024 - 1024*16/gain

	return []RegWrite{
		reg8(0x0204, (again>>8)&0x03),
		reg8(0x0205, again&0xff),
	}
}

// imx708TestPattern enables pattern p-1 of the sensor generator
func imx708TestPattern(p uint32) []RegWrite {

	if p == 0 {
		return []RegWrite{reg8(0x0600, 0)}
	}

	return []RegWrite{reg8(0x0600, (p-1)|1)}
}

// imx708Mode returns a 10 bit mode sharing the global program
func imx708Mode(w, h uint32, fps Fraction, hts, vts uint32, link int,
	prog Program) Mode {

	return Mode{
		Code:           SRGGB10,
		Width:          w,
		Height:         h,
		MaxFPS:         fps,
		Exposure:       0x0B00,
		HTS:            hts,
		VTS:            vts,
		LinkFreqIndex:  link,
		BPP:            10,
		ExposureOffset: 4,
		Global:         imx708GlobalRegs,
		Program:        prog,
		VC:             [PadMax]uint32{Channel0},
	}
}

// imx708 returns the Sony IMX708 12MP sensor
func imx708() *Descriptor {

	return &Descriptor{
		Name:      "imx708",
		Lanes:     4,
		XVClk:     24000000,
		LinkFreqs: []uint64{450000000, 447000000, 453000000},
		Catalog: Catalog{
			imx708Mode(4608, 2592, Fraction{10000, 300000}, 0x3D20, 0x0A59, 0,
				imx708Regs4608x2592),
			// 2x2 binning
			imx708Mode(2304, 1296, Fraction{10000, 64100}, 0x1E90, 0x0538, 0,
				imx708Regs2304x1296),
			imx708Mode(1536, 864, Fraction{10000, 64100}, 0x1460, 0x04B6, 0,
				imx708Regs1536x864),
			imx708Mode(2304, 1296, Fraction{10000, 97000}, 0x1460, 0x0A5B, 1,
				imx708Regs2304x1296Fast),
		},
		Fit:         FitFirstMinimum,
		VTSMax:      0xffff,
		ExposureMin: 1,
		Gain: &FuncGain{
			Limits: ControlRange{Min: 112, Max: 960, Step: 1, Default: 112},
			Fn:     imx708Gain,
		},
		Exposure: SplitHL(0x0202, 0x0203),
		VTS:      SplitHL(0x0340, 0x0341),
		Flip: &FlipBits{
			MirrorReg: 0x0101, MirrorMask: 0x01,
			FlipReg: 0x0101, FlipMask: 0x02,
		},
		FlipOnStream: true,
		TestPattern: &PatternTable{
			Menu: []string{
				"Disabled",
				"Solid color",
				"100% color bars",
				"Fade to grey color bars",
				"PN9",
			},
			Encode: imx708TestPattern,
		},
		Stream: StreamRegs{Reg: 0x0100, On: 0x01, Off: 0x00},
		ID:     Identity{Addr: 0x0016, Width: 2, Bytewise: true, Value: 0x0708},
		Power: PowerProfile{
			On: []PowerStep{
				clockOn,
				lineStep(LineReset, 0),
				regsOn,
				lineStep(LineReset, 1),
				sleepStep(8*time.Millisecond, 10*time.Millisecond),
				lineStep(LinePwdn, 1),
				calStep(8192),
			},
			Off: []PowerStep{
				lineStep(LinePwdn, 0),
				clockOff,
				lineStep(LineReset, 0),
				regsOff,
			},
		},
		Supplies: []string{"avdd", "dovdd", "dvdd"},
	}
}
