package camsensor

// gc8613GainThresholds are the gain steps of the gc8613 in 1/1024 units
var gc8613GainThresholds = []uint32{
	1024, 1184, 1440, 1680, 2016, 2272, 2624, 3200, 3824, 4544, 5456, 6512,
	7824, 8512, 10112, 12288, 15184, 16768, 20112, 24000, 28192, 33856, 40320,
	48784, 58688, 69872,
}

// gc8613LinearRows are the 10 bit linear stage settings, columns
// 0614 0615 0225 1467 1468 1447 00b8 00b9
var gc8613LinearRows = [][]uint8{
	{0x00, 0x00, 0x00, 0x0d, 0x0d, 0x77, 0x01, 0x00},
	{0x90, 0x02, 0x00, 0x0e, 0x0e, 0x77, 0x01, 0x0a},
	{0x01, 0x00, 0x00, 0x0e, 0x0e, 0x77, 0x01, 0x1a},
	{0x91, 0x02, 0x00, 0x0f, 0x0f, 0x77, 0x01, 0x29},
	{0x02, 0x00, 0x00, 0x0f, 0x0f, 0x77, 0x01, 0x3e},
	{0x00, 0x00, 0x00, 0x0d, 0x0d, 0x75, 0x02, 0x0d},
	{0x90, 0x02, 0x00, 0x0d, 0x0d, 0x75, 0x02, 0x24},
	{0x01, 0x00, 0x00, 0x0e, 0x0e, 0x75, 0x03, 0x08},
	{0x91, 0x02, 0x00, 0x0e, 0x0e, 0x75, 0x03, 0x2e},
	{0x02, 0x00, 0x00, 0x0f, 0x0f, 0x75, 0x04, 0x1b},
	{0x92, 0x02, 0x00, 0x0f, 0x0f, 0x75, 0x05, 0x14},
	{0x03, 0x00, 0x00, 0x10, 0x10, 0x75, 0x06, 0x17},
	{0x93, 0x02, 0x00, 0x10, 0x10, 0x75, 0x07, 0x29},
	{0x00, 0x00, 0x01, 0x11, 0x11, 0x75, 0x08, 0x13},
	{0x90, 0x02, 0x01, 0x12, 0x12, 0x75, 0x09, 0x38},
	{0x01, 0x00, 0x01, 0x13, 0x13, 0x75, 0x0c, 0x00},
	{0x91, 0x02, 0x01, 0x14, 0x14, 0x75, 0x0e, 0x35},
	{0x02, 0x00, 0x01, 0x15, 0x15, 0x75, 0x10, 0x18},
	{0x92, 0x02, 0x01, 0x16, 0x16, 0x75, 0x13, 0x29},
	{0x03, 0x00, 0x01, 0x17, 0x17, 0x75, 0x17, 0x1c},
	{0x93, 0x02, 0x01, 0x18, 0x18, 0x75, 0x1b, 0x22},
	{0x04, 0x00, 0x01, 0x19, 0x19, 0x75, 0x21, 0x04},
	{0x94, 0x02, 0x01, 0x1b, 0x1b, 0x75, 0x27, 0x18},
	{0x05, 0x00, 0x01, 0x1d, 0x1d, 0x75, 0x2f, 0x29},
	{0x95, 0x02, 0x01, 0x1e, 0x1e, 0x75, 0x39, 0x0b},
	{0x06, 0x00, 0x01, 0x20, 0x20, 0x75, 0x44, 0x0f},
}

// gc8613NonlinearRows are the 12 bit nonlinear stage settings, columns
// 0614 0615 0225 1467 1468 026e 0270 1447 00b8 00b9
var gc8613NonlinearRows = [][]uint8{
	{0x00, 0x00, 0x00, 0x46, 0x46, 0x74, 0x02, 0x77, 0x01, 0x00},
	{0x90, 0x02, 0x00, 0x47, 0x47, 0x74, 0x02, 0x77, 0x01, 0x0a},
	{0x01, 0x00, 0x00, 0x47, 0x47, 0x77, 0x02, 0x77, 0x01, 0x1a},
	{0x91, 0x02, 0x00, 0x48, 0x48, 0x77, 0x02, 0x77, 0x01, 0x29},
	{0x02, 0x00, 0x00, 0x48, 0x48, 0x79, 0x02, 0x77, 0x01, 0x3e},
	{0x00, 0x00, 0x00, 0x46, 0x46, 0x74, 0x02, 0x75, 0x02, 0x0d},
	{0x90, 0x02, 0x00, 0x47, 0x47, 0x74, 0x02, 0x75, 0x02, 0x24},
	{0x01, 0x00, 0x00, 0x47, 0x47, 0x77, 0x02, 0x75, 0x03, 0x08},
	{0x91, 0x02, 0x00, 0x48, 0x48, 0x79, 0x02, 0x75, 0x03, 0x2e},
	{0x02, 0x00, 0x00, 0x49, 0x49, 0x7a, 0x02, 0x75, 0x04, 0x1b},
	{0x92, 0x02, 0x00, 0x4b, 0x4b, 0x7b, 0x02, 0x75, 0x05, 0x14},
	{0x03, 0x00, 0x00, 0x4c, 0x4c, 0x7c, 0x02, 0x75, 0x06, 0x17},
	{0x93, 0x02, 0x00, 0x4d, 0x4d, 0x7d, 0x02, 0x75, 0x07, 0x29},
	{0x00, 0x00, 0x01, 0x4f, 0x4f, 0x7e, 0x02, 0x75, 0x08, 0x13},
	{0x90, 0x02, 0x01, 0x50, 0x50, 0x7f, 0x02, 0x75, 0x09, 0x38},
	{0x01, 0x00, 0x01, 0x51, 0x51, 0x7f, 0x02, 0x75, 0x0c, 0x00},
	{0x91, 0x02, 0x01, 0x53, 0x53, 0x7f, 0x02, 0x75, 0x0e, 0x35},
	{0x02, 0x00, 0x01, 0x54, 0x54, 0x7f, 0x02, 0x75, 0x10, 0x18},
	{0x92, 0x02, 0x01, 0x56, 0x56, 0x7f, 0x02, 0x75, 0x13, 0x29},
	{0x03, 0x00, 0x01, 0x58, 0x58, 0x7f, 0x02, 0x75, 0x17, 0x1c},
	{0x93, 0x02, 0x01, 0x5a, 0x5a, 0x7f, 0x01, 0x75, 0x1b, 0x22},
	{0x04, 0x00, 0x01, 0x5c, 0x5c, 0x7f, 0x01, 0x75, 0x21, 0x04},
}

// gc8613Gain returns a staged encoder over the gc8613 tables.  Control
// values are in 1/64 units, the tables in 1/1024.
func gc8613Gain(rows [][]uint8, banks []GainBank) *StagedGain {

	return &StagedGain{
		Min:     64,
		Max:     0x7fffffff,
		Default: 64,
		// the 10 bit linear table is scaled too, unscaled the minimum
		// gain of 64 falls below its first threshold
		Scale:        16,
		Thresholds:   gc8613GainThresholds[:len(rows)],
		Rows:         rows,
		BankReg:      0x031d,
		Banks:        banks,
		FineHigh:     0x0064,
		FineLow:      0x0065,
		FineLowShift: 0,
		ResidualMax:  0x3fff,
	}
}

var (
	gc8613LinearGain = gc8613Gain(gc8613LinearRows, []GainBank{
		{Select: 0x2d, Columns: []GainColumn{{0x0614, 0}, {0x0615, 1}}},
		{Select: 0x28, Columns: []GainColumn{
			{0x0225, 2}, {0x1467, 3}, {0x1468, 4}, {0x1447, 5},
			{0x00b8, 6}, {0x00b9, 7},
		}},
	})

	gc8613NonlinearGain = gc8613Gain(gc8613NonlinearRows, []GainBank{
		{Select: 0x2d, Columns: []GainColumn{
			{0x0614, 0}, {0x0615, 1}, {0x026e, 5}, {0x0270, 6},
		}},
		{Select: 0x28, Columns: []GainColumn{
			{0x0225, 2}, {0x1467, 3}, {0x1468, 4}, {0x1447, 7},
			{0x00b8, 8}, {0x00b9, 9},
		}},
	})
)

// gc8613Flip holds the 0x0063/0x022c pair for every flip state
var gc8613Flip = &FlipTable{
	Writes: [4][]RegWrite{
		{reg8(0x0063, 0), reg8(0x022c, 0)},
		{reg8(0x0063, 5), reg8(0x022c, 0)},
		{reg8(0x0063, 2), reg8(0x022c, 1)},
		{reg8(0x0063, 7), reg8(0x022c, 1)},
	},
}

var gc8613Mode1080p = Mode{
	Code:           SRGGB10,
	Width:          1920,
	Height:         1080,
	MaxFPS:         Fraction{10000, 900000},
	Exposure:       0x0127,
	HTS:            0x0283 * 3,
	VTS:            0x05fc,
	LinkFreqIndex:  1,
	BPP:            10,
	ExposureOffset: 8,
	Program:        gc8613Regs1920x1080,
	Gain:           gc8613LinearGain,
	VC:             [PadMax]uint32{Channel0},
}

func init() {
	register("gc8613", "nonlinear", gc8613Nonlinear, true)
	register("gc8613", "linear", gc8613Linear, false)
}

// gc8613Nonlinear returns the gc8613 with the 12 bit nonlinear 4K mode
func gc8613Nonlinear() *Descriptor {

	d := gc8613Base("nonlinear", 594000000)
	d.Catalog = Catalog{
		{
			Code:           SRGGB12,
			Width:          3840,
			Height:         2160,
			MaxFPS:         Fraction{10000, 300000},
			Exposure:       0x0327,
			HTS:            0x0310 * 8,
			VTS:            0x08f8,
			LinkFreqIndex:  0,
			BPP:            12,
			ExposureOffset: 8,
			Program:        gc8613Regs3840x2160Nonlinear,
			Gain:           gc8613NonlinearGain,
			VC:             [PadMax]uint32{Channel0},
		},
		gc8613Mode1080p,
	}

	return d
}

// gc8613Linear returns the gc8613 with the 10 bit linear 4K mode
func gc8613Linear() *Descriptor {

	d := gc8613Base("linear", 396000000)
	d.Catalog = Catalog{
		{
			Code:           SRGGB10,
			Width:          3840,
			Height:         2160,
			MaxFPS:         Fraction{10000, 300000},
			Exposure:       0x0127,
			HTS:            0x0320 * 8,
			VTS:            0x08CA,
			LinkFreqIndex:  0,
			BPP:            10,
			ExposureOffset: 8,
			Program:        gc8613Regs3840x2160Linear,
			Gain:           gc8613LinearGain,
			VC:             [PadMax]uint32{Channel0},
		},
		gc8613Mode1080p,
	}

	return d
}

// gc8613Base returns the descriptor parts shared by both variants, the 4K
// link frequency being the only difference outside the catalog
func gc8613Base(variant string, link4K uint64) *Descriptor {

	return &Descriptor{
		Name:        "gc8613",
		Variant:     variant,
		Lanes:       4,
		XVClk:       24000000,
		LinkFreqs:   []uint64{link4K, 501190000},
		Fit:         FitFirstMinimum,
		VTSMax:      0x3fff,
		ExposureMin: 1,
		Gain:        gc8613LinearGain,
		Exposure:    SplitHL(0x0202, 0x0203),
		VTS:         SplitHL(0x0340, 0x0341),
		Flip:        gc8613Flip,
		TestPattern: &PatternTable{
			Menu: []string{"Disabled", "Vertical Color Bar Type 1"},
			Encode: func(p uint32) []RegWrite {
				if p == 0 {
					return []RegWrite{reg8(0x008c, 0x10)}
				}
				return []RegWrite{reg8(0x008c, 0x14)}
			},
		},
		Stream:         StreamRegs{Reg: 0x0100, On: 0x09, Off: 0x00},
		ID:             Identity{Addr: 0x03f0, Width: 2, Bytewise: true, Value: 0x8613},
		PowerOnProgram: gc8613GlobalRegs,
		Power:          gcPowerProfile,
		Supplies:       []string{"dovdd", "dvdd", "avdd"},
	}
}
