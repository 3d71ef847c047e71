package camsensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPowerSequence(t *testing.T) {
	r := newRig(t, "gc5603", "")

	require.NoError(t, r.dev.PowerOn())
	require.Equal(t, PoweredOn, r.dev.State())

	require.Equal(t, []string{
		"pins default",
		"xvclk rate 24000000",
		"xvclk on",
		"reset=0",
		"pwdn=0",
		"dovdd on", "avdd on", "dvdd on",
		"pwren=1",
		"pwdn=1",
		"reset=1",
	}, r.ev.list)

	require.Equal(t, []time.Duration{
		500 * time.Microsecond,
		1000 * time.Microsecond,
		100 * time.Microsecond,
		// 8192 cycles at 24MHz
		342 * time.Microsecond,
	}, r.sleep.delays)

	r.ev.reset()
	require.NoError(t, r.dev.PowerOff())
	require.Equal(t, PoweredOff, r.dev.State())

	require.Equal(t, []string{
		"pwdn=0",
		"xvclk off",
		"reset=0",
		"pins sleep",
		"dvdd off", "avdd off", "dovdd off",
		"pwren=0",
	}, r.ev.list)
}

func TestPowerOnIdempotent(t *testing.T) {
	r := newRig(t, "gc5603", "")

	require.NoError(t, r.dev.PowerOn())
	r.ev.reset()

	require.NoError(t, r.dev.PowerOn())
	require.Empty(t, r.ev.list)

	require.NoError(t, r.dev.PowerOff())
	r.ev.reset()

	require.NoError(t, r.dev.PowerOff())
	require.Empty(t, r.ev.list)
}

func TestRegulatorUnwind(t *testing.T) {
	r := newRig(t, "gc5603", "")
	r.power.Regulators[1].(*fakeRegulator).fail = true

	err := r.dev.PowerOn()
	require.ErrorIs(t, err, errBus)
	require.Contains(t, err.Error(), "avdd")
	require.Equal(t, PoweredOff, r.dev.State())

	n := len(r.ev.list)
	require.Equal(t, []string{"avdd failed", "dovdd off", "xvclk off"}, r.ev.list[n-3:])
	require.NotContains(t, r.ev.list, "reset=1")
}

func TestClockFailure(t *testing.T) {
	r := newRig(t, "gc5603", "")
	r.power.Clock.(*fakeClock).fail = true

	require.ErrorIs(t, r.dev.PowerOn(), errBus)
	require.Equal(t, PoweredOff, r.dev.State())
	require.NotContains(t, r.ev.list, "xvclk off")

	// a rate the clock refuses is only logged
	r = newRig(t, "gc5603", "")
	r.power.Clock.(*fakeClock).failRate = true

	require.NoError(t, r.dev.PowerOn())
	require.Contains(t, r.ev.list, "xvclk on")
}

func TestPowerOnProgramFailure(t *testing.T) {
	r := newRig(t, "ov50h40", "")
	r.bus.failAll = true

	require.Error(t, r.dev.PowerOn())
	require.Equal(t, PoweredOff, r.dev.State())

	// powered down again
	require.Contains(t, r.ev.list, "pins sleep")
	require.Contains(t, r.ev.list, "avdd off")
}

func TestPowerOnSettle(t *testing.T) {
	r := newRig(t, "ov50h40", "")

	require.NoError(t, r.dev.PowerOn())
	require.Equal(t, []RegWrite{reg8(0x0103, 0x01)}, r.bus.writes)

	n := len(r.sleep.delays)
	require.Equal(t, 100*time.Microsecond, r.sleep.delays[n-1])
	// 8192 cycles at 19.2MHz rounds up on whole MHz
	require.Equal(t, 432*time.Microsecond, r.sleep.delays[n-2])
}

func TestMissingCollaborators(t *testing.T) {
	desc, err := Sensor("imx708", "")
	require.NoError(t, err)

	bus := newFakeBus()
	bus.loadID(desc.ID)

	d, err := New(bus, desc, nil, WithSleeper(&fakeSleeper{}))
	require.NoError(t, err)

	require.NoError(t, d.Attach())
	require.NoError(t, d.Detach())
	require.True(t, bus.closed)
}

func TestCalDelay(t *testing.T) {
	require.Equal(t, uint32(342), calDelay(8192, 24000000))
	require.Equal(t, uint32(432), calDelay(8192, 19200000))
	require.Equal(t, uint32(8192), calDelay(8192, 0))
}

func TestLineAdapters(t *testing.T) {
	ev := &events{}
	l := &fakeLine{ev: ev, name: "en"}

	reg := &LineRegulator{Line: l}
	require.NoError(t, reg.Enable())
	require.NoError(t, reg.Disable())

	clk := &LineClock{Line: l, Rate: 24000000}
	require.NoError(t, clk.SetRate(24000000))
	require.Error(t, clk.SetRate(19200000))
	require.NoError(t, (&LineClock{Line: l}).SetRate(19200000))
	require.NoError(t, clk.Enable())

	pins := &LinePinctrl{Line: l, Default: 1, Sleep: 0}
	require.NoError(t, pins.Select(PinSleep))
	require.NoError(t, pins.Select(PinDefault))

	require.Equal(t, []string{"en=1", "en=0", "en=1", "en=0", "en=1"}, ev.list)
}
