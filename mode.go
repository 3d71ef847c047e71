package camsensor

import "fmt"

// PixelCode is a media bus format code
type PixelCode uint32

const (
	SBGGR10 PixelCode = 0x3007
	SGRBG10 PixelCode = 0x300a
	SGBRG10 PixelCode = 0x300e
	SRGGB10 PixelCode = 0x300f
	SRGGB12 PixelCode = 0x3012
	SPD2X8  PixelCode = 0x5001
)

// String implements the Stringer interface for PixelCode
func (c PixelCode) String() string {
	switch c {
	case SBGGR10:
		return "SBGGR10_1X10"
	case SGRBG10:
		return "SGRBG10_1X10"
	case SGBRG10:
		return "SGBRG10_1X10"
	case SRGGB10:
		return "SRGGB10_1X10"
	case SRGGB12:
		return "SRGGB12_1X12"
	case SPD2X8:
		return "SPD_2X8"
	default:
		return fmt.Sprintf("PixelCode(0x%04x)", uint32(c))
	}
}

// HDRMode is the HDR variant of a mode
type HDRMode uint32

const (
	NoHDR HDRMode = 0
	HDRX2 HDRMode = 5
	HDRX3 HDRMode = 6
)

// String implements the Stringer interface for HDRMode
func (h HDRMode) String() string {
	switch h {
	case NoHDR:
		return "linear"
	case HDRX2:
		return "hdr-x2"
	case HDRX3:
		return "hdr-x3"
	default:
		return fmt.Sprintf("HDRMode(%d)", uint32(h))
	}
}

// Fraction is a frame interval in seconds, Numerator/Denominator
type Fraction struct {
	Numerator   uint32
	Denominator uint32
}

// FPS returns the frame rate rounded to the closest integer
func (f Fraction) FPS() uint32 {

	if f.Numerator == 0 {
		return 0
	}

	return (f.Denominator + f.Numerator/2) / f.Numerator
}

// PadMax is the number of output pads a mode can route
const PadMax = 4

// Virtual channel ids
const (
	Channel0 uint32 = 0
	Channel1 uint32 = 1
	Channel2 uint32 = 2
	Channel3 uint32 = 3
)

// AuxChannel describes a secondary data stream sent next to the image
type AuxChannel struct {
	Width    uint32
	Height   uint32
	Code     PixelCode
	DataType uint32
	DataBit  uint32
}

// Mode is one supported output configuration of a sensor.  Modes are never
// modified after the catalog is built.
type Mode struct {
	Code   PixelCode
	Width  uint32
	Height uint32
	// MaxFPS is the shortest frame interval
	MaxFPS Fraction
	// HTS is the line length, VTS the default frame length
	HTS uint32
	VTS uint32
	// Exposure is the default exposure in lines
	Exposure uint32
	HDR      HDRMode
	// LinkFreqIndex selects the entry of Descriptor.LinkFreqs
	LinkFreqIndex int
	BPP           uint32
	// ExposureOffset is subtracted from the frame length to get the longest
	// exposure
	ExposureOffset uint32
	// Global is written before Program when set
	Global  Program
	Program Program
	// Gain overrides the sensor gain encoder for this mode
	Gain GainEncoder
	SPD  *AuxChannel
	VC   [PadMax]uint32
}

// String returns a short description of the mode
func (m *Mode) String() string {
	return fmt.Sprintf("%dx%d %s @%dfps %s", m.Width, m.Height, m.Code,
		m.MaxFPS.FPS(), m.HDR)
}

// Catalog is the fixed list of modes of a sensor
type Catalog []Mode

// FitPolicy selects how FindBestFit treats the requested format code
type FitPolicy int

const (
	// FitFirstMinimum ignores the code, the first closest size wins
	FitFirstMinimum FitPolicy = iota
	// FitExactCode only considers modes with the requested code
	FitExactCode
	// FitPreferCode breaks a distance tie in favour of a code match when the
	// closest mode so far has another code
	FitPreferCode
)

// dist returns the size distance between a mode and a request
func dist(m *Mode, width, height uint32) uint32 {
	return absDiff(m.Width, width) + absDiff(m.Height, height)
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// FindBestFit returns the index of the mode closest to the requested size.
// It never fails, when nothing matches the first mode is returned.
func (c Catalog) FindBestFit(width, height uint32, code PixelCode,
	policy FitPolicy) int {

	best := 0
	bestDist := int64(-1)

	for i := range c {

		m := &c[i]

		if policy == FitExactCode && m.Code != code {
			continue
		}

		d := int64(dist(m, width, height))

		if bestDist == -1 || d < bestDist {
			best, bestDist = i, d
			continue
		}

		if policy == FitPreferCode && d == bestDist && m.Code == code &&
			c[best].Code != code {
			best = i
		}
	}

	return best
}

// FindByInterval returns the mode sharing size, code and HDR setting with
// ref whose rounded frame rate equals the one of interval
func (c Catalog) FindByInterval(ref *Mode, interval Fraction) (int, bool) {

	if interval.Numerator == 0 {
		return 0, false
	}

	fps := interval.FPS()

	for i := range c {

		m := &c[i]

		if m.Width != ref.Width || m.Height != ref.Height ||
			m.HDR != ref.HDR || m.Code != ref.Code {
			continue
		}

		if m.MaxFPS.FPS() == fps {
			return i, true
		}
	}

	return 0, false
}

// FindHDR returns the mode with the requested size and HDR setting
func (c Catalog) FindHDR(width, height uint32, hdr HDRMode) (int, bool) {

	for i := range c {
		if c[i].Width == width && c[i].Height == height && c[i].HDR == hdr {
			return i, true
		}
	}

	return 0, false
}

// EnumCodes returns the distinct format codes in catalog order
func (c Catalog) EnumCodes() []PixelCode {

	var codes []PixelCode
	seen := make(map[PixelCode]bool)

	for i := range c {

		if seen[c[i].Code] {
			continue
		}

		seen[c[i].Code] = true
		codes = append(codes, c[i].Code)
	}

	return codes
}

// FrameSize is a discrete frame size entry
type FrameSize struct {
	Width  uint32
	Height uint32
}

// EnumFrameSizes returns the frame sizes available for code
func (c Catalog) EnumFrameSizes(code PixelCode) []FrameSize {

	var sizes []FrameSize

	for i := range c {
		if c[i].Code == code {
			sizes = append(sizes, FrameSize{Width: c[i].Width, Height: c[i].Height})
		}
	}

	return sizes
}

// FrameInterval is a discrete frame interval entry
type FrameInterval struct {
	Interval Fraction
	HDR      HDRMode
}

// EnumFrameIntervals returns the frame intervals available for a size
func (c Catalog) EnumFrameIntervals(code PixelCode, width, height uint32) []FrameInterval {

	var out []FrameInterval

	for i := range c {

		m := &c[i]

		if m.Code == code && m.Width == width && m.Height == height {
			out = append(out, FrameInterval{Interval: m.MaxFPS, HDR: m.HDR})
		}
	}

	return out
}
