package camsensor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	desc, err := Sensor("gc5603", "")
	require.NoError(t, err)

	_, err = New(nil, desc, nil)
	require.Error(t, err)

	_, err = New(newFakeBus(), &Descriptor{Name: "empty"}, nil)
	require.Error(t, err)

	d, err := New(newFakeBus(), desc, nil)
	require.NoError(t, err)
	require.Equal(t, PoweredOff, d.State())
	require.Equal(t, uuid.Nil, d.StreamID())
	require.Same(t, desc, d.Descriptor())
}

func TestAttach(t *testing.T) {
	r := newRig(t, "gc5603", "")

	require.NoError(t, r.dev.Attach())
	require.Equal(t, PoweredOn, r.dev.State())
}

func TestAttachWideID(t *testing.T) {
	r := newRig(t, "ov50h40", "")

	require.NoError(t, r.dev.Attach())
	require.Equal(t, PoweredOn, r.dev.State())
}

func TestAttachWrongID(t *testing.T) {
	r := newRig(t, "gc5603", "")
	// only the low byte differs
	r.bus.regs[0x03f1] = 0x04

	err := r.dev.Attach()
	require.ErrorIs(t, err, ErrIdentity)

	var idErr *IdentityError
	require.ErrorAs(t, err, &idErr)
	require.Equal(t, uint32(0x5603), idErr.Want)
	require.Equal(t, uint32(0x5604), idErr.Got)

	require.Equal(t, PoweredOff, r.dev.State())
	require.Contains(t, r.ev.list, "pwren=0")
}

func TestAttachReadFailure(t *testing.T) {
	r := newRig(t, "sc5336", "")
	r.bus.failRead = true

	err := r.dev.Attach()
	require.ErrorIs(t, err, errBus)
	require.Equal(t, PoweredOff, r.dev.State())
}

func TestStateMachine(t *testing.T) {
	r := newRig(t, "imx708", "")

	require.ErrorIs(t, r.dev.StartStream(), ErrNotPowered)
	require.ErrorIs(t, r.dev.QuickStream(true), ErrNotPowered)
	require.Zero(t, r.bus.attempts)

	// stopping an idle sensor does nothing
	require.NoError(t, r.dev.StopStream())
	require.Zero(t, r.bus.attempts)

	r.attach(t)

	require.NoError(t, r.dev.StartStream())
	require.Equal(t, Streaming, r.dev.State())
	require.NotEqual(t, uuid.Nil, r.dev.StreamID())

	n := r.bus.attempts
	require.NoError(t, r.dev.StartStream())
	require.Equal(t, n, r.bus.attempts)

	require.ErrorIs(t, r.dev.PowerOff(), ErrStreaming)
	require.Equal(t, Streaming, r.dev.State())

	_, err := r.dev.SetFormat(1536, 864, SRGGB10, false)
	require.ErrorIs(t, err, ErrBusy)

	require.ErrorIs(t, r.dev.SetFrameInterval(Fraction{1, 30}), ErrBusy)
	require.ErrorIs(t, r.dev.SetHDRConfig(NoHDR), ErrBusy)

	require.NoError(t, r.dev.StopStream())
	require.Equal(t, PoweredOn, r.dev.State())
	require.Equal(t, uuid.Nil, r.dev.StreamID())
	require.Equal(t, uint32(0), r.bus.regs[0x0100])

	require.NoError(t, r.dev.PowerOff())
	require.Equal(t, PoweredOff, r.dev.State())
}

func TestStreamProgramsMode(t *testing.T) {
	r := newRig(t, "imx708", "")
	r.attach(t)

	require.NoError(t, r.dev.StartStream())

	m := r.dev.Mode()
	prog := len(m.Global) + len(m.Program)
	require.Greater(t, len(r.bus.writes), prog)
	require.Equal(t, m.Global[0].Addr, r.bus.writes[0].Addr)

	// stream on is the last write
	last := r.bus.writes[len(r.bus.writes)-1]
	require.Equal(t, RegWrite{Addr: 0x0100, Width: 1, Val: 1}, last)

	// a second stream in the same power cycle skips the program
	require.NoError(t, r.dev.StopStream())
	n := len(r.bus.writes)
	require.NoError(t, r.dev.StartStream())
	require.Less(t, len(r.bus.writes)-n, prog)
}

func TestStreamFailureKeepsState(t *testing.T) {
	r := newRig(t, "imx708", "")
	r.attach(t)

	r.bus.failAll = true
	require.ErrorIs(t, r.dev.StartStream(), errBus)
	require.Equal(t, PoweredOn, r.dev.State())

	r.bus.failAll = false
	require.NoError(t, r.dev.StartStream())
	require.Equal(t, Streaming, r.dev.State())
}

func TestStreamOffFailureLogged(t *testing.T) {
	r := newRig(t, "imx708", "")
	r.attach(t)
	require.NoError(t, r.dev.StartStream())

	r.bus.failAll = true
	require.NoError(t, r.dev.StopStream())
	require.Equal(t, PoweredOn, r.dev.State())
}

func TestFastBoot(t *testing.T) {
	r := newRig(t, "gc5603", "", WithFastBoot(true))

	require.NoError(t, r.dev.Attach())
	require.Empty(t, r.ev.list)
	require.Zero(t, r.bus.attempts)

	// the first power off before any stream off leaves the sensor running
	require.NoError(t, r.dev.PowerOff())
	require.Equal(t, PoweredOff, r.dev.State())
	require.Empty(t, r.ev.list)

	require.NoError(t, r.dev.PowerOn())
	require.Empty(t, r.ev.list)

	require.NoError(t, r.dev.StartStream())
	m := r.dev.Mode()
	require.Less(t, len(r.bus.writes), len(m.Program))

	require.NoError(t, r.dev.StopStream())
	require.NoError(t, r.dev.PowerOff())
	require.Contains(t, r.ev.list, "pwren=0")

	// normal power cycles from now on
	r.ev.reset()
	require.NoError(t, r.dev.PowerOn())
	require.Contains(t, r.ev.list, "pwren=1")
}

func TestDetach(t *testing.T) {
	r := newRig(t, "gc5603", "")
	r.attach(t)
	require.NoError(t, r.dev.StartStream())

	require.NoError(t, r.dev.Detach())
	require.Equal(t, PoweredOff, r.dev.State())
	require.Equal(t, uint32(0), r.bus.regs[0x0100])
	require.Contains(t, r.ev.list, "pwren=0")

	require.True(t, r.bus.closed)
	require.True(t, r.power.Reset.(*fakeLine).closed)
	require.True(t, r.power.Pwdn.(*fakeLine).closed)
}

func TestDetachLineAdapters(t *testing.T) {
	desc, err := Sensor("gc5603", "")
	require.NoError(t, err)

	bus := newFakeBus()
	bus.loadID(desc.ID)

	ev := &events{}
	supply := &fakeLine{ev: ev, name: "avdd"}
	clk := &fakeLine{ev: ev, name: "xvclk"}
	pins := &fakeLine{ev: ev, name: "pins"}

	d, err := New(bus, desc, &Power{
		Clock:      &LineClock{Line: clk},
		Pinctrl:    &LinePinctrl{Line: pins, Default: 1},
		Regulators: []Regulator{&LineRegulator{Line: supply}},
	}, WithSleeper(&fakeSleeper{}))
	require.NoError(t, err)

	require.NoError(t, d.Attach())
	require.Contains(t, ev.list, "avdd=1")

	require.NoError(t, d.Detach())
	require.True(t, supply.closed)
	require.True(t, clk.closed)
	require.True(t, pins.closed)
}

func TestDetachFastBoot(t *testing.T) {
	r := newRig(t, "gc5603", "", WithFastBoot(true))

	require.NoError(t, r.dev.Attach())
	require.NoError(t, r.dev.Detach())

	require.Contains(t, r.ev.list, "pwren=0")
}

func TestSensorRegistry(t *testing.T) {
	require.Equal(t, []string{"gc5603", "gc8613", "imx708", "ov50h40", "sc5336"},
		Sensors())

	_, err := Sensor("nope", "")
	require.ErrorIs(t, err, ErrUnknownSensor)

	_, err = Sensor("ov50h40", "xphy")
	require.ErrorIs(t, err, ErrUnknownSensor)

	desc, err := Sensor("gc8613", "")
	require.NoError(t, err)
	require.Equal(t, "nonlinear", desc.Variant)

	desc, err = Sensor("ov50h40", "cphy")
	require.NoError(t, err)
	require.Equal(t, "cphy", desc.Variant)

	// descriptors are fresh copies
	a, _ := Sensor("imx708", "")
	b, _ := Sensor("imx708", "")
	require.NotSame(t, a, b)
}
