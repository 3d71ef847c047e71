package camsensor

import (
	"fmt"
)

// HDRConfig returns the HDR setting of the current mode
func (d *Device) HDRConfig() HDRMode {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cur().HDR
}

// SetHDRConfig switches to the mode of the current size with the requested
// HDR setting
func (d *Device) SetHDRConfig(hdr HDRMode) error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Streaming {
		return ErrBusy
	}

	m := d.cur()
	idx, ok := d.desc.Catalog.FindHDR(m.Width, m.Height, hdr)

	if !ok {
		return fmt.Errorf("%w: %s %dx%d", ErrHDRMode, hdr, m.Width, m.Height)
	}

	return d.applyMode(idx)
}

// QuickStream toggles only the streaming register, leaving the mode and
// controls as they are
func (d *Device) QuickStream(on bool) error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == PoweredOff {
		return ErrNotPowered
	}

	s := d.desc.Stream
	val := s.Off

	if on {
		val = s.On
	}

	return d.regs.Write(s.Reg, 1, uint32(val))
}

// ChannelInfo describes the data sent on one output pad
type ChannelInfo struct {
	Index    int
	VC       uint32
	Width    uint32
	Height   uint32
	Code     PixelCode
	DataType uint32
	DataBit  uint32
}

// ChannelInfo returns the virtual channel and format of pad index
func (d *Device) ChannelInfo(index int) (ChannelInfo, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= PadMax {
		return ChannelInfo{}, fmt.Errorf("%w: %d", ErrInvalidChannel, index)
	}

	m := d.cur()

	if index == d.spdID && m.SPD != nil {
		return ChannelInfo{
			Index:    index,
			VC:       Channel1,
			Width:    m.SPD.Width,
			Height:   m.SPD.Height,
			Code:     m.SPD.Code,
			DataType: m.SPD.DataType,
			DataBit:  m.SPD.DataBit,
		}, nil
	}

	return ChannelInfo{
		Index:  index,
		VC:     m.VC[index],
		Width:  m.Width,
		Height: m.Height,
		Code:   m.Code,
	}, nil
}

// AWBConfig is the golden module white balance reference
type AWBConfig struct {
	Enable   bool   `yaml:"enable"`
	GoldenR  uint32 `yaml:"golden_r"`
	GoldenB  uint32 `yaml:"golden_b"`
	GoldenGR uint32 `yaml:"golden_gr"`
	GoldenGB uint32 `yaml:"golden_gb"`
}

// LSCConfig enables lens shading correction from module calibration
type LSCConfig struct {
	Enable bool `yaml:"enable"`
}

// SetAWBConfig stores the white balance reference
func (d *Device) SetAWBConfig(cfg AWBConfig) {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.awb = &cfg
	d.log.Debug().Bool("enable", cfg.Enable).Msg("awb config")
}

// SetLSCConfig stores the lens shading setting
func (d *Device) SetLSCConfig(cfg LSCConfig) {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.lsc = &cfg
	d.log.Debug().Bool("enable", cfg.Enable).Msg("lsc config")
}

// AWBConfig returns the stored white balance reference, false when none was
// set
func (d *Device) AWBConfig() (AWBConfig, bool) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.awb == nil {
		return AWBConfig{}, false
	}

	return *d.awb, true
}

// LSCConfig returns the stored lens shading setting, false when none was set
func (d *Device) LSCConfig() (LSCConfig, bool) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lsc == nil {
		return LSCConfig{}, false
	}

	return *d.lsc, true
}

// Command is a vendor specific request handled by Exec
type Command interface {
	command()
}

type (
	// GetHDR returns the HDRMode of the current mode
	GetHDR struct{}
	// SetHDR switches the HDR setting
	SetHDR struct{ Mode HDRMode }
	// GetModuleInfo returns the ModuleInfo
	GetModuleInfo struct{}
	// SetQuickStream toggles the streaming register
	SetQuickStream struct{ On bool }
	// GetChannelInfo returns the ChannelInfo of a pad
	GetChannelInfo struct{ Index int }
	// SetAWB stores a white balance reference
	SetAWB struct{ Config AWBConfig }
	// SetLSC stores a lens shading setting
	SetLSC struct{ Config LSCConfig }
)

func (GetHDR) command()         {}
func (SetHDR) command()         {}
func (GetModuleInfo) command()  {}
func (SetQuickStream) command() {}
func (GetChannelInfo) command() {}
func (SetAWB) command()         {}
func (SetLSC) command()         {}

// Exec runs a vendor command.  Getters return their result, setters return
// nil.
func (d *Device) Exec(cmd Command) (any, error) {

	switch c := cmd.(type) {
	case GetHDR:
		return d.HDRConfig(), nil
	case SetHDR:
		return nil, d.SetHDRConfig(c.Mode)
	case GetModuleInfo:
		return d.ModuleInfo(), nil
	case SetQuickStream:
		return nil, d.QuickStream(c.On)
	case GetChannelInfo:
		return d.ChannelInfo(c.Index)
	case SetAWB:
		d.SetAWBConfig(c.Config)
		return nil, nil
	case SetLSC:
		d.SetLSCConfig(c.Config)
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}
