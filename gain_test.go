package camsensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func gc5603Staged(t *testing.T) *StagedGain {
	desc, err := Sensor("gc5603", "")
	require.NoError(t, err)
	return desc.Gain.(*StagedGain)
}

func TestStagedGainRows(t *testing.T) {
	g := gc5603Staged(t)

	row, res := g.Stage(70)
	require.Equal(t, 0, row)
	require.Equal(t, uint32(70), res)

	row, res = g.Stage(4000)
	require.Equal(t, 25, row)
	require.Equal(t, uint32(64), res)

	// threshold boundaries
	row, res = g.Stage(73)
	require.Equal(t, 0, row)
	require.Equal(t, uint32(73), res)

	row, res = g.Stage(74)
	require.Equal(t, 1, row)
	require.Equal(t, uint32(64), res)

	// below the minimum clamps to unity
	row, res = g.Stage(1)
	require.Equal(t, 0, row)
	require.Equal(t, uint32(64), res)
}

func TestStagedGainMonotonic(t *testing.T) {
	g := gc5603Staged(t)

	prevRow := 0
	prevGain := uint64(0)

	for gain := g.Min; gain <= g.Max; gain++ {

		row, res := g.Stage(gain)

		require.GreaterOrEqual(t, row, prevRow, "gain %d", gain)
		require.GreaterOrEqual(t, res, uint32(64), "gain %d", gain)
		require.LessOrEqual(t, res, g.ResidualMax, "gain %d", gain)

		eff := uint64(g.Thresholds[row]) * uint64(res)
		require.GreaterOrEqual(t, eff, prevGain, "gain %d", gain)

		prevRow, prevGain = row, eff
	}
}

func TestStagedGainEncode(t *testing.T) {
	g := gc5603Staged(t)

	require.Equal(t, []RegWrite{
		reg8(0x031d, 0x2d),
		reg8(0x0614, 0x00), reg8(0x0615, 0x00), reg8(0x0225, 0x04),
		reg8(0x031d, 0x28),
		reg8(0x1467, 0x15), reg8(0x1468, 0x15),
		reg8(0x00b8, 0x01), reg8(0x00b9, 0x00),
		reg8(0x0064, 0x01), reg8(0x0065, 0x06<<2),
	}, g.Encode(70))
}

func TestStagedGainScaled(t *testing.T) {
	for _, variant := range []string{"linear", "nonlinear"} {

		desc, err := Sensor("gc8613", variant)
		require.NoError(t, err)

		g := desc.Catalog[0].Gain.(*StagedGain)
		require.Len(t, g.Thresholds, len(g.Rows))

		row, res := g.Stage(64)
		require.Equal(t, 0, row)
		require.Equal(t, uint32(64), res)

		// 1184/16 = 74
		row, res = g.Stage(74)
		require.Equal(t, 1, row)
		require.Equal(t, uint32(64), res)

		row, res = g.Stage(g.Max)
		require.Equal(t, len(g.Rows)-1, row)
		require.Equal(t, g.ResidualMax, res)

		for _, w := range g.Encode(1000) {
			require.Equal(t, 1, w.Width)
		}
	}
}

func TestBandGain(t *testing.T) {
	desc, err := Sensor("sc5336", "")
	require.NoError(t, err)
	g := desc.Gain

	tests := []struct {
		gain               uint32
		dgain, fine, again uint32
	}{
		{32, 0x00, 0x80, 0x00},
		{0x120, 0x00, 0x90, 0x0b},
		{5000, 0x03, 0x9c, 0x1f},
		{32 * 15 * 32, 0x07, 0xf0, 0x1f},
		// clamped to the maximum
		{0xffffff, 0x07, 0xf0, 0x1f},
	}

	for _, tc := range tests {
		require.Equal(t, []RegWrite{
			reg8(0x3e06, tc.dgain),
			reg8(0x3e07, tc.fine),
			reg8(0x3e09, tc.again),
		}, g.Encode(tc.gain), "gain %d", tc.gain)
	}
}

func TestOV50H40Gain(t *testing.T) {
	require.Equal(t, []RegWrite{
		{Addr: 0x3508, Width: 2, Val: 0x100},
		{Addr: 0x350A, Width: 3, Val: 0x10000},
	}, ov50h40Gain(0x80))

	// twice the analog maximum goes into digital gain
	require.Equal(t, []RegWrite{
		{Addr: 0x3508, Width: 2, Val: 3968},
		{Addr: 0x350A, Width: 3, Val: 0x20000},
	}, ov50h40Gain(3968))
}

func TestIMX708Gain(t *testing.T) {
	require.Equal(t, []RegWrite{reg8(0x0204, 0), reg8(0x0205, 0)}, imx708Gain(16))
	require.Equal(t, []RegWrite{reg8(0x0204, 3), reg8(0x0205, 0x6e)}, imx708Gain(112))
	require.Equal(t, []RegWrite{reg8(0x0204, 3), reg8(0x0205, 0xf0)}, imx708Gain(0x400))
	require.Equal(t, imx708Gain(0x400), imx708Gain(0xffff))
	require.Equal(t, imx708Gain(16), imx708Gain(0))
}

func TestValueEncoders(t *testing.T) {
	require.Equal(t, []RegWrite{reg8(0x0202, 0x06), reg8(0x0203, 0xce)},
		SplitHL(0x0202, 0x0203)(nil, 0x6ce))

	require.Equal(t, []RegWrite{{Addr: 0x380e, Width: 2, Val: 0x0cc3}},
		Wide(0x380e, 2)(nil, 0x0cc3))

	require.Equal(t, []RegWrite{
		reg8(0x3e00, 0x1), reg8(0x3e01, 0x23), reg8(0x3e02, 0x40),
	}, sc5336Exposure(nil, 0x1234))

	full := &Mode{Height: ov50h40FullHeight}
	half := &Mode{Height: 3072}
	enc := ov50h40Halved(0x3500, 3)

	require.Equal(t, uint32(500), enc(full, 1000)[0].Val)
	require.Equal(t, uint32(1000), enc(half, 1000)[0].Val)
}
