package camsensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHDRConfig(t *testing.T) {
	r := newRig(t, "gc5603", "")
	r.attach(t)

	require.Equal(t, NoHDR, r.dev.HDRConfig())

	err := r.dev.SetHDRConfig(HDRX2)
	require.ErrorIs(t, err, ErrHDRMode)
	require.Equal(t, NoHDR, r.dev.HDRConfig())
	require.Empty(t, r.bus.writes)

	// the same setting reprograms the current mode
	require.NoError(t, r.dev.SetHDRConfig(NoHDR))
	require.NotEmpty(t, r.bus.writes)
}

func TestChannelInfo(t *testing.T) {
	r := newRig(t, "ov50h40", "", WithSPDChannel(1))

	ci, err := r.dev.ChannelInfo(0)
	require.NoError(t, err)
	require.Equal(t, ChannelInfo{Index: 0, VC: Channel0, Width: 4096,
		Height: 3072, Code: SGBRG10}, ci)

	ci, err = r.dev.ChannelInfo(1)
	require.NoError(t, err)
	require.Equal(t, ChannelInfo{Index: 1, VC: Channel1, Width: 4096,
		Height: 768, Code: SPD2X8, DataType: 0x19, DataBit: 10}, ci)

	for _, idx := range []int{-1, PadMax} {
		_, err = r.dev.ChannelInfo(idx)
		require.ErrorIs(t, err, ErrInvalidChannel)
	}

	// the C-PHY full resolution mode has no PDAF channel
	r = newRig(t, "ov50h40", "cphy", WithSPDChannel(1))
	_, err = r.dev.SetFormat(8192, 6144, SGBRG10, false)
	require.NoError(t, err)

	ci, err = r.dev.ChannelInfo(1)
	require.NoError(t, err)
	require.Equal(t, uint32(8192), ci.Width)

	// without a routed pad the image is reported
	r = newRig(t, "ov50h40", "")
	ci, err = r.dev.ChannelInfo(1)
	require.NoError(t, err)
	require.Equal(t, SGBRG10, ci.Code)
}

func TestCalibrationConfig(t *testing.T) {
	r := newRig(t, "sc5336", "")

	_, ok := r.dev.AWBConfig()
	require.False(t, ok)

	_, ok = r.dev.LSCConfig()
	require.False(t, ok)

	awb := AWBConfig{Enable: true, GoldenR: 0x200, GoldenB: 0x180}
	r.dev.SetAWBConfig(awb)
	r.dev.SetLSCConfig(LSCConfig{Enable: true})

	got, ok := r.dev.AWBConfig()
	require.True(t, ok)
	require.Equal(t, awb, got)

	lsc, ok := r.dev.LSCConfig()
	require.True(t, ok)
	require.True(t, lsc.Enable)
}

type unknownCommand struct{}

func (unknownCommand) command() {}

func TestExec(t *testing.T) {
	r := newRig(t, "ov50h40", "", WithSPDChannel(2),
		WithModule(ModuleInfo{Module: "CMK-OT2022", Lens: "default", Facing: "back"}))

	v, err := r.dev.Exec(GetHDR{})
	require.NoError(t, err)
	require.Equal(t, NoHDR, v)

	v, err = r.dev.Exec(GetModuleInfo{})
	require.NoError(t, err)
	inf := v.(ModuleInfo)
	require.Equal(t, "ov50h40", inf.Sensor)
	require.Equal(t, "CMK-OT2022", inf.Module)

	v, err = r.dev.Exec(GetChannelInfo{Index: 2})
	require.NoError(t, err)
	require.Equal(t, SPD2X8, v.(ChannelInfo).Code)

	_, err = r.dev.Exec(SetQuickStream{On: true})
	require.ErrorIs(t, err, ErrNotPowered)

	_, err = r.dev.Exec(SetHDR{Mode: HDRX3})
	require.ErrorIs(t, err, ErrHDRMode)

	v, err = r.dev.Exec(SetAWB{Config: AWBConfig{Enable: true}})
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = r.dev.Exec(SetLSC{Config: LSCConfig{Enable: true}})
	require.NoError(t, err)

	_, ok := r.dev.AWBConfig()
	require.True(t, ok)

	_, err = r.dev.Exec(unknownCommand{})
	require.ErrorIs(t, err, ErrUnknownCommand)

	_, err = r.dev.Exec(nil)
	require.ErrorIs(t, err, ErrUnknownCommand)
}
