package camsensor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWords(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	require.Equal(t, []uint16{0x0102, 0x0304, 0}, words(data, 0, 3))
	require.Equal(t, []uint16{0x0304}, words(data, 2, 1))
	require.Equal(t, []uint16{0, 0}, words(nil, 0, 2))
}

func TestModuleInfoOTP(t *testing.T) {
	const stride = lscEntries * 2

	lsc := make([]byte, stride*4)

	for ch := 0; ch < 4; ch++ {
		lsc[ch*stride] = byte(ch + 1)
		lsc[ch*stride+1] = 0x10
	}

	otp := &OTP{
		AWB: &OTPAWB{RRatio: 0x250, BRatio: 0x1f0, GRatio: 0x400,
			RGolden: 0x260, BGolden: 0x200, GGolden: 0x400},
		LSC: &OTPLSC{Width: 17, Height: 17, TableSize: lscEntries, Data: lsc},
		PDAF: &OTPPDAF{GainmapWidth: 2, GainmapHeight: 1,
			Gainmap: []byte{0x12, 0x34, 0x56, 0x78}},
		AF: &OTPAF{Infinity: 100, Macro: 400},
	}

	r := newRig(t, "ov50h40", "", WithOTP(otp),
		WithModule(ModuleInfo{Module: "m", Index: 1, Facing: "front"}))

	inf := r.dev.ModuleInfo()

	require.Equal(t, "ov50h40", inf.Sensor)
	require.Equal(t, uint32(1), inf.Index)

	require.Equal(t, &AWBInfo{R: 0x250, B: 0x1f0, GR: 0x400, GB: 0x400,
		GoldenR: 0x260, GoldenB: 0x200, GoldenGR: 0x400, GoldenGB: 0x400}, inf.AWB)

	require.Len(t, inf.LSC.R, lscEntries)
	require.Equal(t, uint16(0x0110), inf.LSC.R[0])
	require.Equal(t, uint16(0x0210), inf.LSC.GR[0])
	require.Equal(t, uint16(0x0310), inf.LSC.GB[0])
	require.Equal(t, uint16(0x0410), inf.LSC.B[0])

	require.Equal(t, []uint16{0x1234, 0x5678}, inf.PDAF.Gainmap)
	require.Empty(t, inf.PDAF.DCCmap)

	require.Equal(t, &AFInfo{VCMStart: 100, VCMEnd: 400}, inf.AF)
}

func TestModuleInfoOTPBounds(t *testing.T) {
	otp := &OTP{
		AWB: &OTPAWB{GRatio: 0x400, GGolden: 0x3f0, GBRatio: 0x410},
		PDAF: &OTPPDAF{GainmapWidth: 0x10001, GainmapHeight: 0xffff,
			Gainmap: []byte{0x12, 0x34, 0x56}, DCCmapWidth: 4, DCCmapHeight: 4},
	}

	r := newRig(t, "ov50h40", "", WithOTP(otp))
	inf := r.dev.ModuleInfo()

	require.Equal(t, uint32(0x410), inf.AWB.GB)
	require.Equal(t, uint32(0x3f0), inf.AWB.GoldenGB)

	require.Equal(t, []uint16{0x1234}, inf.PDAF.Gainmap)
	require.Empty(t, inf.PDAF.DCCmap)
}

func TestModuleInfoNoOTP(t *testing.T) {
	r := newRig(t, "imx708", "")

	inf := r.dev.ModuleInfo()
	require.Equal(t, "imx708", inf.Sensor)
	require.Nil(t, inf.AWB)
	require.Nil(t, inf.LSC)
}

func TestOTPYAML(t *testing.T) {
	var otp OTP

	err := yaml.Unmarshal([]byte(`
awb:
  r_ratio: 592
  b_ratio: 496
af:
  infinity: 120
  macro: 480
`), &otp)
	require.NoError(t, err)

	require.Equal(t, uint32(592), otp.AWB.RRatio)
	require.Equal(t, uint32(480), otp.AF.Macro)
	require.Nil(t, otp.LSC)
}
