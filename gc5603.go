package camsensor

import "time"

// gc5603GainThresholds are the gain steps of the gc5603 in 1/64 units
var gc5603GainThresholds = []uint32{
	64, 74, 82, 96, 112, 133, 153, 191, 224, 266, 322, 377, 444, 525, 609,
	719, 855, 1011, 1200, 1424, 1689, 2003, 2376, 2819, 3343, 3965,
}

// gc5603GainRows are the analog stage settings for each threshold, columns
// 0614 0615 0225 1467 1468 00b8 00b9
var gc5603GainRows = [][]uint8{
	{0x00, 0x00, 0x04, 0x15, 0x15, 0x01, 0x00},
	{0x90, 0x02, 0x04, 0x15, 0x15, 0x01, 0x0A},
	{0x00, 0x00, 0x00, 0x15, 0x15, 0x01, 0x12},
	{0x90, 0x02, 0x00, 0x15, 0x15, 0x01, 0x20},
	{0x01, 0x00, 0x00, 0x15, 0x15, 0x01, 0x30},
	{0x91, 0x02, 0x00, 0x15, 0x15, 0x02, 0x05},
	{0x02, 0x00, 0x00, 0x15, 0x15, 0x02, 0x19},
	{0x92, 0x02, 0x00, 0x16, 0x16, 0x02, 0x3F},
	{0x03, 0x00, 0x00, 0x16, 0x16, 0x03, 0x20},
	{0x93, 0x02, 0x00, 0x17, 0x17, 0x04, 0x0A},
	{0x00, 0x00, 0x01, 0x18, 0x18, 0x05, 0x02},
	{0x90, 0x02, 0x01, 0x19, 0x19, 0x05, 0x39},
	{0x01, 0x00, 0x01, 0x19, 0x19, 0x06, 0x3C},
	{0x91, 0x02, 0x01, 0x19, 0x19, 0x08, 0x0D},
	{0x02, 0x00, 0x01, 0x1a, 0x1a, 0x09, 0x21},
	{0x92, 0x02, 0x01, 0x1a, 0x1a, 0x0B, 0x0F},
	{0x03, 0x00, 0x01, 0x1c, 0x1c, 0x0D, 0x17},
	{0x93, 0x02, 0x01, 0x1c, 0x1c, 0x0F, 0x33},
	{0x04, 0x00, 0x01, 0x1d, 0x1d, 0x12, 0x30},
	{0x94, 0x02, 0x01, 0x1d, 0x1d, 0x16, 0x10},
	{0x05, 0x00, 0x01, 0x1e, 0x1e, 0x1A, 0x19},
	{0x95, 0x02, 0x01, 0x1e, 0x1e, 0x1F, 0x13},
	{0x06, 0x00, 0x01, 0x20, 0x20, 0x25, 0x08},
	{0x96, 0x02, 0x01, 0x20, 0x20, 0x2C, 0x03},
	{0xb6, 0x04, 0x01, 0x20, 0x20, 0x34, 0x0F},
	{0x86, 0x06, 0x01, 0x20, 0x20, 0x3D, 0x3D},
}

// gcPowerProfile is the power sequence shared by the GalaxyCore sensors
var gcPowerProfile = PowerProfile{
	On: []PowerStep{
		pinctrlStep(PinDefault),
		clockOn,
		lineStep(LineReset, 0),
		lineStep(LinePwdn, 0),
		sleepStep(500*time.Microsecond, 1000*time.Microsecond),
		regsOn,
		lineStep(LinePwren, 1),
		sleepStep(1000*time.Microsecond, 1100*time.Microsecond),
		lineStep(LinePwdn, 1),
		sleepStep(100*time.Microsecond, 150*time.Microsecond),
		lineStep(LineReset, 1),
		// 8192 cycles prior to the first register access
		calStep(8192),
	},
	Off: []PowerStep{
		lineStep(LinePwdn, 0),
		clockOff,
		lineStep(LineReset, 0),
		pinctrlStep(PinSleep),
		regsOff,
		lineStep(LinePwren, 0),
	},
}

func init() {
	register("gc5603", "", gc5603, true)
}

// gc5603 returns the GalaxyCore gc5603 5MP sensor
func gc5603() *Descriptor {

	return &Descriptor{
		Name:      "gc5603",
		Lanes:     2,
		XVClk:     24000000,
		LinkFreqs: []uint64{423000000},
		Catalog: Catalog{
			{
				Code:           SGRBG10,
				Width:          2960,
				Height:         1666,
				MaxFPS:         Fraction{10000, 300000},
				Exposure:       0x6ce,
				HTS:            0x0C80,
				VTS:            0x06D6,
				BPP:            10,
				ExposureOffset: 4,
				Program:        gc5603Regs2960x1666,
				VC:             [PadMax]uint32{Channel0},
			},
		},
		Fit:         FitFirstMinimum,
		VTSMax:      0x7fff,
		ExposureMin: 1,
		Gain: &StagedGain{
			Min:        64,
			Max:        0xffff,
			Default:    64,
			Scale:      1,
			Thresholds: gc5603GainThresholds,
			Rows:       gc5603GainRows,
			BankReg:    0x031d,
			Banks: []GainBank{
				{Select: 0x2d, Columns: []GainColumn{
					{0x0614, 0}, {0x0615, 1}, {0x0225, 2},
				}},
				{Select: 0x28, Columns: []GainColumn{
					{0x1467, 3}, {0x1468, 4}, {0x00b8, 5}, {0x00b9, 6},
				}},
			},
			FineHigh:     0x0064,
			FineLow:      0x0065,
			FineLowShift: 2,
			ResidualMax:  0x3fff,
		},
		Exposure: SplitHL(0x0202, 0x0203),
		VTS:      SplitHL(0x0340, 0x0341),
		Flip: &FlipBits{
			MirrorReg: 0x0101, MirrorMask: 0x01,
			FlipReg: 0x0101, FlipMask: 0x02,
		},
		FlipOnStream: true,
		Stream:       StreamRegs{Reg: 0x0100, On: 0x09, Off: 0x00},
		ID:           Identity{Addr: 0x03f0, Width: 2, Bytewise: true, Value: 0x5603},
		PreSetup: Program{
			{RegDelay, 1},
			{0x0a70, 0x00},
			{0x0080, 0x02},
			{0x0a67, 0x00},
		},
		Power:    gcPowerProfile,
		Supplies: []string{"dovdd", "avdd", "dvdd"},
	}
}
