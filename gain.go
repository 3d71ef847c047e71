package camsensor

// GainEncoder turns an analog gain control value into register writes.
// Encoders are pure, they only compute the writes.
type GainEncoder interface {
	Encode(gain uint32) []RegWrite
	Range() ControlRange
}

// GainColumn places column Index of a table row into register Addr
type GainColumn struct {
	Addr  uint16
	Index int
}

// GainBank is a group of columns written after selecting a register page
type GainBank struct {
	Select  uint8
	Columns []GainColumn
}

// StagedGain is a threshold table encoder.  The row with the largest
// threshold not above the gain selects the coarse analog and digital stage,
// the remaining ratio goes into a fine digital gain with 64 as unity.
type StagedGain struct {
	Min, Max, Default uint32
	// Scale converts control units into table units
	Scale uint32
	// Thresholds are ascending, one per row of Rows
	Thresholds []uint32
	Rows       [][]uint8
	// BankReg selects the register page of each bank
	BankReg uint16
	Banks   []GainBank
	// FineHigh receives residual>>6, FineLow receives the low 6 bits shifted
	// left by FineLowShift
	FineHigh     uint16
	FineLow      uint16
	FineLowShift uint
	// ResidualMax is the largest residual the fine gain registers hold
	ResidualMax uint32
}

// Range returns the analog gain control range
func (s *StagedGain) Range() ControlRange {
	return ControlRange{Min: int64(s.Min), Max: int64(s.Max), Step: 1,
		Default: int64(s.Default)}
}

// row returns the table row index for a gain in table units
func (s *StagedGain) row(g uint64) int {

	last := len(s.Thresholds) - 1

	for i := 0; i < last; i++ {
		if uint64(s.Thresholds[i]) <= g && g < uint64(s.Thresholds[i+1]) {
			return i
		}
	}

	if g >= uint64(s.Thresholds[last]) {
		return last
	}

	return 0
}

// scaled clamps the gain and converts it into table units
func (s *StagedGain) scaled(gain uint32) uint64 {

	gain = clampU32(gain, s.Min, s.Max)
	scale := uint64(s.Scale)

	if scale == 0 {
		scale = 1
	}

	return uint64(gain) * scale
}

// Stage returns the selected row and fine residual for a gain
func (s *StagedGain) Stage(gain uint32) (row int, residual uint32) {

	g := s.scaled(gain)
	row = s.row(g)

	r := g * 64 / uint64(s.Thresholds[row])

	if r > uint64(s.ResidualMax) {
		r = uint64(s.ResidualMax)
	}

	return row, uint32(r)
}

// Encode implements GainEncoder
func (s *StagedGain) Encode(gain uint32) []RegWrite {

	row, residual := s.Stage(gain)
	vals := s.Rows[row]

	var out []RegWrite

	for _, bank := range s.Banks {

		out = append(out, reg8(s.BankReg, uint32(bank.Select)))

		for _, col := range bank.Columns {
			out = append(out, reg8(col.Addr, uint32(vals[col.Index])))
		}
	}

	out = append(out,
		reg8(s.FineHigh, residual>>6),
		reg8(s.FineLow, (residual&0x3f)<<s.FineLowShift),
	)

	return out
}

// GainBand is one coarse step of a BandGain table
type GainBand struct {
	// Below is the exclusive upper bound of the band in factor units, zero
	// marks the top band
	Below uint32
	Again uint8
	Dgain uint8
	// Base and Div give fine = factor*128/Base/Div
	Base uint32
	Div  uint32
	// Fine is written as is when Base is zero
	Fine uint8
}

// BandGain encodes gain as coarse analog and digital steps plus a fine
// digital gain with 128 as unity, computed on gain*1000/Unit.
type BandGain struct {
	Min, Max, Default uint32
	Unit              uint32
	Bands             []GainBand
	DgainReg          uint16
	FineReg           uint16
	AgainReg          uint16
}

// Range returns the analog gain control range
func (b *BandGain) Range() ControlRange {
	return ControlRange{Min: int64(b.Min), Max: int64(b.Max), Step: 1,
		Default: int64(b.Default)}
}

// band returns the band and factor for a gain
func (b *BandGain) band(gain uint32) (*GainBand, uint32) {

	gain = clampU32(gain, b.Min, b.Max)
	factor := gain * 1000 / b.Unit

	for i := range b.Bands {
		if b.Bands[i].Below == 0 || factor < b.Bands[i].Below {
			return &b.Bands[i], factor
		}
	}

	return &b.Bands[len(b.Bands)-1], factor
}

// Encode implements GainEncoder
func (b *BandGain) Encode(gain uint32) []RegWrite {

	band, factor := b.band(gain)
	fine := uint32(band.Fine)

	if band.Base != 0 {

		fine = factor * 128 / band.Base

		if band.Div > 1 {
			fine /= band.Div
		}
	}

	return []RegWrite{
		reg8(b.DgainReg, uint32(band.Dgain)),
		reg8(b.FineReg, fine),
		reg8(b.AgainReg, uint32(band.Again)),
	}
}

// FuncGain wraps a gain formula
type FuncGain struct {
	Limits ControlRange
	Fn     func(gain uint32) []RegWrite
}

// Range returns the analog gain control range
func (f *FuncGain) Range() ControlRange {
	return f.Limits
}

// Encode implements GainEncoder
func (f *FuncGain) Encode(gain uint32) []RegWrite {
	return f.Fn(gain)
}

// ValueEncoder turns an exposure or frame length for a mode into register
// writes
type ValueEncoder func(m *Mode, v uint32) []RegWrite

// SplitHL writes the value into an 8 bit high and an 8 bit low register
func SplitHL(hi, lo uint16) ValueEncoder {
	return func(_ *Mode, v uint32) []RegWrite {
		return []RegWrite{reg8(hi, v>>8), reg8(lo, v)}
	}
}

// Wide writes the value into a single register of width bytes
func Wide(addr uint16, width int) ValueEncoder {
	return func(_ *Mode, v uint32) []RegWrite {
		return []RegWrite{{Addr: addr, Width: width, Val: v}}
	}
}

func clampU32(v, lo, hi uint32) uint32 {

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
