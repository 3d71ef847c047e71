package camsensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetFormatTry(t *testing.T) {
	r := newRig(t, "imx708", "")
	r.attach(t)

	f, err := r.dev.SetFormat(1500, 860, SRGGB10, true)
	require.NoError(t, err)
	require.Equal(t, Format{1536, 864, SRGGB10}, f)

	require.Equal(t, Format{4608, 2592, SRGGB10}, r.dev.Format())
	require.Empty(t, r.bus.writes)
}

func TestSetFormatPowered(t *testing.T) {
	r := newRig(t, "imx708", "")
	r.attach(t)

	_, err := r.dev.SetFormat(1536, 864, SRGGB10, false)
	require.NoError(t, err)

	m := r.dev.Mode()
	prog := len(m.Global) + len(m.Program)
	require.Len(t, r.bus.writes, prog)

	// already programmed, stream start only pushes controls
	require.NoError(t, r.dev.StartStream())
	require.Less(t, len(r.bus.writes)-prog, prog)
}

func TestSetFormatAtomic(t *testing.T) {
	r := newRig(t, "imx708", "")
	r.attach(t)
	require.NoError(t, r.dev.SetControl(Exposure, 100))

	r.bus.failAll = true

	_, err := r.dev.SetFormat(2304, 1296, SRGGB10, false)
	require.ErrorIs(t, err, errBus)

	require.Equal(t, Format{4608, 2592, SRGGB10}, r.dev.Format())

	v, err := r.dev.Control(Exposure)
	require.NoError(t, err)
	require.Equal(t, int64(100), v)

	rng, err := r.dev.ControlRange(VBlank)
	require.NoError(t, err)
	require.Equal(t, int64(0x0A59-2592), rng.Default)
}

func TestSetFrameInterval(t *testing.T) {
	r := newRig(t, "imx708", "")
	cat := r.dev.Descriptor().Catalog

	_, err := r.dev.SetFormat(2304, 1296, SRGGB10, false)
	require.NoError(t, err)
	require.Equal(t, cat[1].MaxFPS, r.dev.FrameInterval())

	require.NoError(t, r.dev.SetFrameInterval(cat[3].MaxFPS))
	require.Equal(t, cat[3].MaxFPS, r.dev.FrameInterval())

	v, err := r.dev.Control(LinkFreq)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	require.ErrorIs(t, r.dev.SetFrameInterval(Fraction{0, 30}), ErrInvalidInterval)
	require.ErrorIs(t, r.dev.SetFrameInterval(Fraction{1, 1000}), ErrInvalidInterval)

	// failed requests keep the mode
	require.Equal(t, cat[3].MaxFPS, r.dev.FrameInterval())
}

func TestStreamBootloaderMode(t *testing.T) {
	r := newRig(t, "ov50h40", "")
	r.attach(t)

	require.Equal(t, RegNull, r.dev.Mode().Program[0].Addr)

	n := len(r.bus.writes)
	require.NoError(t, r.dev.StartStream())
	first := r.bus.since(n)

	require.NoError(t, r.dev.StopStream())

	// a second start only pushes controls, so the first wrote no program
	n = len(r.bus.writes)
	require.NoError(t, r.dev.StartStream())

	require.Equal(t, first, r.bus.since(n))
	require.Equal(t, reg8(0x0100, 0x01), first[len(first)-1])
}

func TestQuickStream(t *testing.T) {
	r := newRig(t, "sc5336", "")
	r.attach(t)

	n := len(r.bus.writes)
	require.NoError(t, r.dev.QuickStream(true))
	require.NoError(t, r.dev.QuickStream(false))

	require.Equal(t, []RegWrite{reg8(0x0100, 1), reg8(0x0100, 0)}, r.bus.since(n))
	require.Equal(t, PoweredOn, r.dev.State())
}

func TestPreAndPostSetup(t *testing.T) {
	r := newRig(t, "sc5336", "")
	r.attach(t)
	r.bus.regs[0x3040] = 0x03

	require.NoError(t, r.dev.StartStream())

	require.Equal(t, uint32(0x08), r.bus.regs[0x3258])
	require.Equal(t, uint32(0x74), r.bus.regs[0x3937])
	require.Less(t, r.bus.lastIndex(0x3937, 0x74), r.bus.lastIndex(0x0100, 0x01))

	// unknown revisions are left alone
	r = newRig(t, "sc5336", "")
	r.attach(t)
	r.bus.regs[0x3040] = 0x07

	require.NoError(t, r.dev.StartStream())

	count := 0
	for _, w := range r.bus.writes {
		if w.Addr == 0x3258 {
			count++
		}
	}

	// only the mode program wrote it
	require.Equal(t, 1, count)

	r = newRig(t, "gc5603", "")
	r.attach(t)

	require.NoError(t, r.dev.StartStream())
	require.Equal(t, uint32(0x02), r.bus.regs[0x0080])
}
