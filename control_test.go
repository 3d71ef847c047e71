package camsensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExposureFollowsVBlank(t *testing.T) {
	r := newRig(t, "gc5603", "")
	r.attach(t)

	rng, err := r.dev.ControlRange(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(1750-4), rng.Max)
	require.Equal(t, int64(0x6ce), rng.Default)

	require.NoError(t, r.dev.SetControl(VBlank, 1000))
	require.Equal(t, []RegWrite{reg8(0x0340, 0x0a), reg8(0x0341, 0x6a)}, r.bus.writes)
	require.Equal(t, uint32(20), r.dev.FrameInterval().FPS())

	rng, err = r.dev.ControlRange(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(1666+1000-4), rng.Max)

	require.NoError(t, r.dev.SetControl(Exposure, 5000))
	v, err := r.dev.Control(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(2662), v)

	// shrinking the frame clamps the exposure, which is written first
	n := len(r.bus.writes)
	require.NoError(t, r.dev.SetControl(VBlank, 0))
	require.Equal(t, []RegWrite{
		reg8(0x0202, 0x06), reg8(0x0203, 0xd2),
		reg8(0x0340, 0x06), reg8(0x0341, 0xd6),
	}, r.bus.since(n))

	v, err = r.dev.Control(VBlank)
	require.NoError(t, err)
	require.Equal(t, int64(84), v)

	v, err = r.dev.Control(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(1746), v)

	require.Equal(t, uint32(30), r.dev.FrameInterval().FPS())
}

func TestControlsWhileOff(t *testing.T) {
	r := newRig(t, "imx708", "")

	require.NoError(t, r.dev.SetControl(AnalogGain, 500))
	require.NoError(t, r.dev.SetControl(Exposure, 100))
	require.Zero(t, r.bus.attempts)

	v, err := r.dev.Control(AnalogGain)
	require.NoError(t, err)
	require.Equal(t, int64(500), v)

	// the stored values reach the sensor at stream start
	r.attach(t)
	require.NoError(t, r.dev.StartStream())
	require.Equal(t, uint32(100), r.bus.regs[0x0203])
	require.Equal(t, imx708Gain(500)[1].Val, r.bus.regs[0x0205])
}

func TestControlErrors(t *testing.T) {
	r := newRig(t, "gc5603", "")

	require.ErrorIs(t, r.dev.SetControl(HBlank, 0), ErrUnsupportedControl)
	require.ErrorIs(t, r.dev.SetControl(PixelRate, 0), ErrUnsupportedControl)

	// no test pattern generator
	require.ErrorIs(t, r.dev.SetControl(TestPattern, 1), ErrUnsupportedControl)
	_, err := r.dev.Control(TestPattern)
	require.ErrorIs(t, err, ErrUnsupportedControl)

	_, err = r.dev.Control(ControlKind(42))
	require.ErrorIs(t, err, ErrUnsupportedControl)

	v, err := r.dev.Control(PixelRate)
	require.NoError(t, err)
	require.Equal(t, int64(423000000/10*2*2), v)

	v, err = r.dev.Control(HBlank)
	require.NoError(t, err)
	require.Equal(t, int64(0x0c80-2960), v)
}

func TestHBlankFollowsMode(t *testing.T) {
	r := newRig(t, "ov50h40", "dphy")

	v, err := r.dev.Control(HBlank)
	require.NoError(t, err)
	require.Equal(t, int64(104), v)

	f, err := r.dev.SetFormat(8192, 6144, SGBRG10, false)
	require.NoError(t, err)
	require.Equal(t, Format{8192, 6144, SGBRG10}, f)

	v, err = r.dev.Control(HBlank)
	require.NoError(t, err)
	require.Equal(t, int64(2008), v)

	rng, err := r.dev.ControlRange(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(0x0cc3*2-44), rng.Max)
	require.Equal(t, int64(0x0240), rng.Default)

	rng, err = r.dev.ControlRange(VBlank)
	require.NoError(t, err)
	require.Equal(t, int64(0x0cc3*2-6144), rng.Min)

	v, err = r.dev.Control(LinkFreq)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	// the C-PHY full resolution line is shorter than the image
	r = newRig(t, "ov50h40", "cphy")
	_, err = r.dev.SetFormat(8192, 6144, SGBRG10, false)
	require.NoError(t, err)

	v, err = r.dev.Control(HBlank)
	require.NoError(t, err)
	require.Equal(t, int64(0x0306-8192), v)
}

func TestHalvedFullResolution(t *testing.T) {
	r := newRig(t, "ov50h40", "")
	_, err := r.dev.SetFormat(8192, 6144, SGBRG10, false)
	require.NoError(t, err)
	r.attach(t)

	n := len(r.bus.writes)
	require.NoError(t, r.dev.SetControl(Exposure, 1000))
	require.Equal(t, []RegWrite{{Addr: 0x3500, Width: 3, Val: 500}}, r.bus.since(n))
}

func TestGainKeptAcrossModes(t *testing.T) {
	r := newRig(t, "imx708", "")

	require.NoError(t, r.dev.SetControl(AnalogGain, 500))
	require.NoError(t, r.dev.SetControl(Exposure, 100))

	_, err := r.dev.SetFormat(1536, 864, SRGGB10, false)
	require.NoError(t, err)

	v, err := r.dev.Control(AnalogGain)
	require.NoError(t, err)
	require.Equal(t, int64(500), v)

	// the default exposure is limited to the shorter frame
	v, err = r.dev.Control(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(0x04B6-4), v)
}

func TestGroupHold(t *testing.T) {
	r := newRig(t, "sc5336", "", WithGroupHold(true))
	r.attach(t)

	n := len(r.bus.writes)
	require.NoError(t, r.dev.SetControl(Exposure, 100))
	require.Equal(t, []RegWrite{
		reg8(0x3812, 0x00),
		reg8(0x3e00, 0x00), reg8(0x3e01, 0x06), reg8(0x3e02, 0x40),
		reg8(0x3812, 0x30),
	}, r.bus.since(n))

	// flips are not held
	n = len(r.bus.writes)
	require.NoError(t, r.dev.SetControl(HFlip, 1))
	require.Equal(t, []RegWrite{reg8(0x3221, 0x06)}, r.bus.since(n))

	r = newRig(t, "sc5336", "")
	r.attach(t)

	n = len(r.bus.writes)
	require.NoError(t, r.dev.SetControl(Exposure, 100))
	require.Len(t, r.bus.since(n), 3)
}

func TestFlipDeferredToStream(t *testing.T) {
	r := newRig(t, "gc5603", "")
	r.attach(t)

	require.NoError(t, r.dev.SetControl(HFlip, 1))
	require.Empty(t, r.bus.writes)

	require.NoError(t, r.dev.StartStream())

	flip := r.bus.lastIndex(0x0101, r.bus.regs[0x0101])
	on := r.bus.lastIndex(0x0100, 0x09)

	require.NotEqual(t, -1, flip)
	require.Less(t, flip, on)
	require.Equal(t, len(r.bus.writes)-1, on)
	require.Equal(t, uint32(0x01), r.bus.regs[0x0101]&0x03)
}

func TestFlipImmediate(t *testing.T) {
	r := newRig(t, "ov50h40", "")
	r.attach(t)
	r.bus.regs[0x3821] = 0x04

	require.NoError(t, r.dev.SetControl(VFlip, 1))
	require.Equal(t, uint32(0x04), r.bus.regs[0x3820]&0x04)
	require.Equal(t, uint32(0x00), r.bus.regs[0x3821]&0x04)

	r = newRig(t, "gc8613", "")
	r.attach(t)

	require.NoError(t, r.dev.SetControl(HFlip, 1))
	require.Equal(t, uint32(5), r.bus.regs[0x0063])
	require.Equal(t, uint32(0), r.bus.regs[0x022c])

	require.NoError(t, r.dev.SetControl(VFlip, 1))
	require.Equal(t, uint32(7), r.bus.regs[0x0063])
	require.Equal(t, uint32(1), r.bus.regs[0x022c])
}

func TestTestPattern(t *testing.T) {
	r := newRig(t, "gc8613", "linear")
	r.attach(t)

	require.NoError(t, r.dev.SetControl(TestPattern, 5))
	require.Equal(t, uint32(0x14), r.bus.regs[0x008c])

	v, err := r.dev.Control(TestPattern)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	require.NoError(t, r.dev.SetControl(TestPattern, 0))
	require.Equal(t, uint32(0x10), r.bus.regs[0x008c])

	require.Equal(t, []RegWrite{reg8(0x0600, 3)}, imx708TestPattern(3))
	require.Equal(t, []RegWrite{reg8(0x50C1, 0x21)}, ov50h40TestPattern(3))
}

func TestControlAggregate(t *testing.T) {
	r := newRig(t, "imx708", "", WithErrorPolicy(Aggregate))
	r.attach(t)
	r.bus.failAddr[0x0202] = true

	err := r.dev.SetControl(Exposure, 0x0123)

	var be *BatchError
	require.ErrorAs(t, err, &be)
	require.Len(t, be.Errs, 1)
	require.Equal(t, uint32(0x23), r.bus.regs[0x0203])
}
