package camsensor

// lscEntries is the number of lens shading points per colour channel
const lscEntries = 289

// OTP is the raw calibration data read from a camera module EEPROM.
// Multi-byte values are big endian byte pairs.
type OTP struct {
	AWB  *OTPAWB  `yaml:"awb"`
	LSC  *OTPLSC  `yaml:"lsc"`
	PDAF *OTPPDAF `yaml:"pdaf"`
	AF   *OTPAF   `yaml:"af"`
}

// OTPAWB holds the module and golden white balance ratios
type OTPAWB struct {
	RRatio  uint32 `yaml:"r_ratio"`
	BRatio  uint32 `yaml:"b_ratio"`
	GRatio  uint32 `yaml:"g_ratio"`
	RGolden uint32 `yaml:"r_golden"`
	BGolden uint32 `yaml:"b_golden"`
	GGolden uint32 `yaml:"g_golden"`
	// GB ratios fall back to the G ratios when unset
	GBRatio  uint32 `yaml:"gb_ratio"`
	GBGolden uint32 `yaml:"gb_golden"`
}

// OTPLSC holds the lens shading tables of the four channels back to back
type OTPLSC struct {
	Width     uint32 `yaml:"width"`
	Height    uint32 `yaml:"height"`
	TableSize uint32 `yaml:"table_size"`
	Data      []byte `yaml:"data"`
}

// OTPPDAF holds the phase detection gain and DCC maps
type OTPPDAF struct {
	GainmapWidth  uint32 `yaml:"gainmap_width"`
	GainmapHeight uint32 `yaml:"gainmap_height"`
	DCCMode       uint32 `yaml:"dcc_mode"`
	DCCDir        uint32 `yaml:"dcc_dir"`
	DCCmapWidth   uint32 `yaml:"dccmap_width"`
	DCCmapHeight  uint32 `yaml:"dccmap_height"`
	Gainmap       []byte `yaml:"gainmap"`
	DCCmap        []byte `yaml:"dccmap"`
}

// OTPAF holds the focus motor calibration
type OTPAF struct {
	Infinity uint32 `yaml:"infinity"`
	Macro    uint32 `yaml:"macro"`
}

// ModuleInfo identifies the camera module and carries its decoded
// calibration
type ModuleInfo struct {
	Sensor string
	Module string
	Lens   string
	Facing string
	Index  uint32

	AWB  *AWBInfo
	LSC  *LSCInfo
	PDAF *PDAFInfo
	AF   *AFInfo
}

// AWBInfo is the white balance calibration of the module
type AWBInfo struct {
	R, B, GR, GB                         uint32
	GoldenR, GoldenB, GoldenGR, GoldenGB uint32
}

// LSCInfo is the lens shading calibration of the module
type LSCInfo struct {
	Width, Height, TableSize uint32
	R, GR, GB, B             []uint16
}

// PDAFInfo is the phase detection calibration of the module
type PDAFInfo struct {
	GainmapWidth, GainmapHeight uint32
	DCCMode, DCCDir             uint32
	DCCmapWidth, DCCmapHeight   uint32
	Gainmap                     []uint16
	DCCmap                      []uint16
}

// AFInfo is the focus motor calibration of the module
type AFInfo struct {
	VCMStart uint32
	VCMEnd   uint32
	VCMDir   uint32
}

// ModuleInfo returns the module identity with the decoded OTP data
func (d *Device) ModuleInfo() ModuleInfo {

	d.mu.Lock()
	defer d.mu.Unlock()

	inf := d.module
	inf.Sensor = d.desc.Name

	if d.otp != nil {
		d.otp.decode(&inf)
	}

	return inf
}

// mapWords returns the 16 bit entries of a width x height map, at most as
// many as data holds
func mapWords(data []byte, width, height uint32) []uint16 {

	n := uint64(width) * uint64(height)

	if limit := uint64(len(data) / 2); n > limit {
		n = limit
	}

	return words(data, 0, int(n))
}

// words returns count big endian 16 bit values starting at byte offset off,
// missing bytes read as zero
func words(data []byte, off, count int) []uint16 {

	out := make([]uint16, count)

	for i := range out {

		p := off + i*2

		if p+1 >= len(data) {
			break
		}

		out[i] = uint16(data[p])<<8 | uint16(data[p+1])
	}

	return out
}

// decode fills the calibration sections of inf
func (o *OTP) decode(inf *ModuleInfo) {

	if a := o.AWB; a != nil {
		inf.AWB = &AWBInfo{
			R:        a.RRatio,
			B:        a.BRatio,
			GR:       a.GRatio,
			GoldenR:  a.RGolden,
			GoldenB:  a.BGolden,
			GoldenGR: a.GGolden,
			GB:       a.GBRatio,
			GoldenGB: a.GBGolden,
		}

		if inf.AWB.GB == 0 {
			inf.AWB.GB = a.GRatio
		}

		if inf.AWB.GoldenGB == 0 {
			inf.AWB.GoldenGB = a.GGolden
		}
	}

	if l := o.LSC; l != nil {

		const stride = lscEntries * 2

		inf.LSC = &LSCInfo{
			Width:     l.Width,
			Height:    l.Height,
			TableSize: l.TableSize,
			R:         words(l.Data, 0, lscEntries),
			GR:        words(l.Data, stride, lscEntries),
			GB:        words(l.Data, stride*2, lscEntries),
			B:         words(l.Data, stride*3, lscEntries),
		}
	}

	if p := o.PDAF; p != nil {
		inf.PDAF = &PDAFInfo{
			GainmapWidth:  p.GainmapWidth,
			GainmapHeight: p.GainmapHeight,
			DCCMode:       p.DCCMode,
			DCCDir:        p.DCCDir,
			DCCmapWidth:   p.DCCmapWidth,
			DCCmapHeight:  p.DCCmapHeight,
			Gainmap:       mapWords(p.Gainmap, p.GainmapWidth, p.GainmapHeight),
			DCCmap:        mapWords(p.DCCmap, p.DCCmapWidth, p.DCCmapHeight),
		}
	}

	if f := o.AF; f != nil {
		inf.AF = &AFInfo{VCMStart: f.Infinity, VCMEnd: f.Macro}
	}
}
