package camsensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		{Code: SRGGB10, Width: 1920, Height: 1080, MaxFPS: Fraction{10000, 300000}},
		{Code: SRGGB12, Width: 1920, Height: 1080, MaxFPS: Fraction{10000, 300000}},
		{Code: SRGGB10, Width: 1920, Height: 1080, MaxFPS: Fraction{10000, 600000}},
		{Code: SRGGB10, Width: 1920, Height: 1080, MaxFPS: Fraction{10000, 300000}, HDR: HDRX2},
		{Code: SRGGB12, Width: 3840, Height: 2160, MaxFPS: Fraction{10000, 150000}},
	}
}

func TestFindBestFit(t *testing.T) {
	c := testCatalog()

	// the code is ignored and the first closest mode wins
	require.Equal(t, 0, c.FindBestFit(1920, 1080, SRGGB12, FitFirstMinimum))
	require.Equal(t, 4, c.FindBestFit(4000, 3000, SRGGB10, FitFirstMinimum))

	require.Equal(t, 1, c.FindBestFit(1920, 1080, SRGGB12, FitPreferCode))
	require.Equal(t, 0, c.FindBestFit(1920, 1080, SRGGB10, FitPreferCode))

	require.Equal(t, 4, c.FindBestFit(4000, 3000, SRGGB12, FitExactCode))
	require.Equal(t, 1, c.FindBestFit(640, 480, SRGGB12, FitExactCode))

	// no mode with the code falls back to the first
	require.Equal(t, 0, c.FindBestFit(3840, 2160, SBGGR10, FitExactCode))
}

func TestFindByInterval(t *testing.T) {
	c := testCatalog()

	idx, ok := c.FindByInterval(&c[0], Fraction{1, 60})
	require.True(t, ok)
	require.Equal(t, 2, idx)

	// rounded rate matches
	idx, ok = c.FindByInterval(&c[2], Fraction{10000, 299700})
	require.True(t, ok)
	require.Equal(t, 0, idx)

	// the HDR mode is never picked for a linear reference
	idx, ok = c.FindByInterval(&c[3], Fraction{1, 30})
	require.True(t, ok)
	require.Equal(t, 3, idx)

	_, ok = c.FindByInterval(&c[0], Fraction{1, 25})
	require.False(t, ok)

	_, ok = c.FindByInterval(&c[0], Fraction{0, 30})
	require.False(t, ok)
}

func TestFindHDR(t *testing.T) {
	c := testCatalog()

	idx, ok := c.FindHDR(1920, 1080, HDRX2)
	require.True(t, ok)
	require.Equal(t, 3, idx)

	_, ok = c.FindHDR(3840, 2160, HDRX2)
	require.False(t, ok)
}

func TestEnumerate(t *testing.T) {
	c := testCatalog()

	require.Equal(t, []PixelCode{SRGGB10, SRGGB12}, c.EnumCodes())
	require.Equal(t, []FrameSize{{1920, 1080}, {3840, 2160}}, c.EnumFrameSizes(SRGGB12))
	require.Nil(t, c.EnumFrameSizes(SBGGR10))

	require.Equal(t, []FrameInterval{
		{Interval: Fraction{10000, 300000}},
		{Interval: Fraction{10000, 600000}},
		{Interval: Fraction{10000, 300000}, HDR: HDRX2},
	}, c.EnumFrameIntervals(SRGGB10, 1920, 1080))
}

func TestFractionFPS(t *testing.T) {
	require.Equal(t, uint32(30), Fraction{10000, 300000}.FPS())
	require.Equal(t, uint32(30), Fraction{10000, 299700}.FPS())
	require.Equal(t, uint32(6), Fraction{10000, 64100}.FPS())
	require.Equal(t, uint32(0), Fraction{}.FPS())
}

func TestCatalogsValid(t *testing.T) {
	for _, name := range Sensors() {
		for variant := range sensors[name] {

			desc, err := Sensor(name, variant)
			require.NoError(t, err)
			require.Equal(t, name, desc.Name)
			require.NotEmpty(t, desc.Catalog)

			for _, m := range desc.Catalog {
				require.Less(t, m.LinkFreqIndex, len(desc.LinkFreqs), "%s %s", name, m.String())
				require.Greater(t, m.VTS, m.ExposureOffset, "%s %s", name, m.String())
				require.NotEmpty(t, m.Program, "%s %s", name, m.String())
			}
		}
	}
}
