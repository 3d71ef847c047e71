package camsensor

// Register programs for the imx708. Generated from the vendor init tables.

// imx708GlobalRegs common to every mode
var imx708GlobalRegs = Program{
	{0x0100, 0x00}, {0x0136, 0x18}, {0x0137, 0x00}, {0x33f0, 0x02},
	{0x33f1, 0x05}, {0x3062, 0x00}, {0x3063, 0x12}, {0x3068, 0x00},
	{0x3069, 0x12}, {0x306a, 0x00}, {0x306b, 0x30}, {0x3076, 0x00},
	{0x3077, 0x30}, {0x3078, 0x00}, {0x3079, 0x30}, {0x5e54, 0x0c},
	{0x6e44, 0x00}, {0xb0b6, 0x01}, {0xe829, 0x00}, {0xf001, 0x08},
	{0xf003, 0x08}, {0xf00d, 0x10}, {0xf00f, 0x10}, {0xf031, 0x08},
	{0xf033, 0x08}, {0xf03d, 0x10}, {0xf03f, 0x10}, {0x0112, 0x0a},
	{0x0113, 0x0a}, {0x0114, 0x01}, {0x0b8e, 0x01}, {0x0b8f, 0x00},
	{0x0b94, 0x01}, {0x0b95, 0x00}, {0x3400, 0x01}, {0x3478, 0x01},
	{0x3479, 0x1c}, {0x3091, 0x01}, {0x3092, 0x00}, {0x3419, 0x00},
	{0xbcf1, 0x02}, {0x3094, 0x01}, {0x3095, 0x01}, {0x3362, 0x00},
	{0x3363, 0x00}, {0x3364, 0x00}, {0x3365, 0x00}, {0x0138, 0x01},
}

// imx708Regs4608x2592 4608x2592 full resolution
var imx708Regs4608x2592 = Program{
	{0x0342, 0x3d}, {0x0343, 0x20}, {0x0340, 0x0a}, {0x0341, 0x59},
	{0x0344, 0x00}, {0x0345, 0x00}, {0x0346, 0x00}, {0x0347, 0x00},
	{0x0348, 0x11}, {0x0349, 0xff}, {0x034a, 0x0a}, {0x034b, 0x1f},
	{0x0220, 0x62}, {0x0222, 0x01}, {0x0900, 0x00}, {0x0901, 0x11},
	{0x0902, 0x0a}, {0x3200, 0x01}, {0x3201, 0x01}, {0x32d5, 0x01},
	{0x32d6, 0x00}, {0x32db, 0x01}, {0x32df, 0x00}, {0x350c, 0x00},
	{0x350d, 0x00}, {0x0408, 0x00}, {0x0409, 0x00}, {0x040a, 0x00},
	{0x040b, 0x00}, {0x040c, 0x12}, {0x040d, 0x00}, {0x040e, 0x0a},
	{0x040f, 0x20}, {0x034c, 0x12}, {0x034d, 0x00}, {0x034e, 0x0a},
	{0x034f, 0x20}, {0x0301, 0x05}, {0x0303, 0x02}, {0x0305, 0x02},
	{0x0306, 0x00}, {0x0307, 0x7c}, {0x030b, 0x02}, {0x030d, 0x04},
	{0x030e, 0x01}, {0x030f, 0x2c}, {0x0310, 0x01}, {0x3ca0, 0x00},
	{0x3ca1, 0x64}, {0x3ca4, 0x00}, {0x3ca5, 0x00}, {0x3ca6, 0x00},
	{0x3ca7, 0x00}, {0x3caa, 0x00}, {0x3cab, 0x00}, {0x3cb8, 0x00},
	{0x3cb9, 0x08}, {0x3cba, 0x00}, {0x3cbb, 0x00}, {0x3cbc, 0x00},
	{0x3cbd, 0x3c}, {0x3cbe, 0x00}, {0x3cbf, 0x00}, {0x0202, 0x0a},
	{0x0203, 0x29}, {0x0224, 0x01}, {0x0225, 0xf4}, {0x3116, 0x01},
	{0x3117, 0xf4}, {0x0204, 0x00}, {0x0205, 0x00}, {0x0216, 0x00},
	{0x0217, 0x00}, {0x0218, 0x01}, {0x0219, 0x00}, {0x020e, 0x01},
	{0x020f, 0x00}, {0x3118, 0x00}, {0x3119, 0x00}, {0x311a, 0x01},
	{0x311b, 0x00}, {0x341a, 0x00}, {0x341b, 0x00}, {0x341c, 0x00},
	{0x341d, 0x00}, {0x341e, 0x01}, {0x341f, 0x20}, {0x3420, 0x00},
	{0x3421, 0xd8}, {0x3366, 0x00}, {0x3367, 0x00}, {0x3368, 0x00},
	{0x3369, 0x00},
}

// imx708Regs2304x1296 2304x1296 2x2 binned
var imx708Regs2304x1296 = Program{
	{0x0342, 0x1e}, {0x0343, 0x90}, {0x0340, 0x05}, {0x0341, 0x38},
	{0x0344, 0x00}, {0x0345, 0x00}, {0x0346, 0x00}, {0x0347, 0x00},
	{0x0348, 0x11}, {0x0349, 0xff}, {0x034a, 0x0a}, {0x034b, 0x1f},
	{0x0220, 0x62}, {0x0222, 0x01}, {0x0900, 0x01}, {0x0901, 0x22},
	{0x0902, 0x08}, {0x3200, 0x41}, {0x3201, 0x41}, {0x32d5, 0x00},
	{0x32d6, 0x00}, {0x32db, 0x01}, {0x32df, 0x00}, {0x350c, 0x00},
	{0x350d, 0x00}, {0x0408, 0x00}, {0x0409, 0x00}, {0x040a, 0x00},
	{0x040b, 0x00}, {0x040c, 0x09}, {0x040d, 0x00}, {0x040e, 0x05},
	{0x040f, 0x10}, {0x034c, 0x09}, {0x034d, 0x00}, {0x034e, 0x05},
	{0x034f, 0x10}, {0x0301, 0x05}, {0x0303, 0x02}, {0x0305, 0x02},
	{0x0306, 0x00}, {0x0307, 0x7a}, {0x030b, 0x02}, {0x030d, 0x04},
	{0x030e, 0x01}, {0x030f, 0x2c}, {0x0310, 0x01}, {0x3ca0, 0x00},
	{0x3ca1, 0x3c}, {0x3ca4, 0x00}, {0x3ca5, 0x3c}, {0x3ca6, 0x00},
	{0x3ca7, 0x00}, {0x3caa, 0x00}, {0x3cab, 0x00}, {0x3cb8, 0x00},
	{0x3cb9, 0x1c}, {0x3cba, 0x00}, {0x3cbb, 0x08}, {0x3cbc, 0x00},
	{0x3cbd, 0x1e}, {0x3cbe, 0x00}, {0x3cbf, 0x0a}, {0x0202, 0x05},
	{0x0203, 0x08}, {0x0224, 0x01}, {0x0225, 0xf4}, {0x3116, 0x01},
	{0x3117, 0xf4}, {0x0204, 0x00}, {0x0205, 0x70}, {0x0216, 0x00},
	{0x0217, 0x70}, {0x0218, 0x01}, {0x0219, 0x00}, {0x020e, 0x01},
	{0x020f, 0x00}, {0x3118, 0x00}, {0x3119, 0x70}, {0x311a, 0x01},
	{0x311b, 0x00}, {0x341a, 0x00}, {0x341b, 0x00}, {0x341c, 0x00},
	{0x341d, 0x00}, {0x341e, 0x00}, {0x341f, 0x90}, {0x3420, 0x00},
	{0x3421, 0x6c}, {0x3366, 0x00}, {0x3367, 0x00}, {0x3368, 0x00},
	{0x3369, 0x00},
}

// imx708Regs1536x864 1536x864 2x2 binned, cropped
var imx708Regs1536x864 = Program{
	{0x0342, 0x14}, {0x0343, 0x60}, {0x0340, 0x04}, {0x0341, 0xb6},
	{0x0344, 0x03}, {0x0345, 0x00}, {0x0346, 0x01}, {0x0347, 0xb0},
	{0x0348, 0x0e}, {0x0349, 0xff}, {0x034a, 0x08}, {0x034b, 0x6f},
	{0x0220, 0x62}, {0x0222, 0x01}, {0x0900, 0x01}, {0x0901, 0x22},
	{0x0902, 0x08}, {0x3200, 0x41}, {0x3201, 0x41}, {0x32d5, 0x00},
	{0x32d6, 0x00}, {0x32db, 0x01}, {0x32df, 0x01}, {0x350c, 0x00},
	{0x350d, 0x00}, {0x0408, 0x00}, {0x0409, 0x00}, {0x040a, 0x00},
	{0x040b, 0x00}, {0x040c, 0x06}, {0x040d, 0x00}, {0x040e, 0x03},
	{0x040f, 0x60}, {0x034c, 0x06}, {0x034d, 0x00}, {0x034e, 0x03},
	{0x034f, 0x60}, {0x0301, 0x05}, {0x0303, 0x02}, {0x0305, 0x02},
	{0x0306, 0x00}, {0x0307, 0x76}, {0x030b, 0x02}, {0x030d, 0x04},
	{0x030e, 0x01}, {0x030f, 0x2c}, {0x0310, 0x01}, {0x3ca0, 0x00},
	{0x3ca1, 0x3c}, {0x3ca4, 0x01}, {0x3ca5, 0x5e}, {0x3ca6, 0x00},
	{0x3ca7, 0x00}, {0x3caa, 0x00}, {0x3cab, 0x00}, {0x3cb8, 0x00},
	{0x3cb9, 0x0c}, {0x3cba, 0x00}, {0x3cbb, 0x04}, {0x3cbc, 0x00},
	{0x3cbd, 0x1e}, {0x3cbe, 0x00}, {0x3cbf, 0x05}, {0x0202, 0x04},
	{0x0203, 0x86}, {0x0224, 0x01}, {0x0225, 0xf4}, {0x3116, 0x01},
	{0x3117, 0xf4}, {0x0204, 0x00}, {0x0205, 0x70}, {0x0216, 0x00},
	{0x0217, 0x70}, {0x0218, 0x01}, {0x0219, 0x00}, {0x020e, 0x01},
	{0x020f, 0x00}, {0x3118, 0x00}, {0x3119, 0x70}, {0x311a, 0x01},
	{0x311b, 0x00}, {0x341a, 0x00}, {0x341b, 0x00}, {0x341c, 0x00},
	{0x341d, 0x00}, {0x341e, 0x00}, {0x341f, 0x60}, {0x3420, 0x00},
	{0x3421, 0x48}, {0x3366, 0x00}, {0x3367, 0x00}, {0x3368, 0x00},
	{0x3369, 0x00},
}

// imx708Regs2304x1296Fast 2304x1296 binned, short line length
var imx708Regs2304x1296Fast = Program{
	{0x0342, 0x14}, {0x0343, 0x60}, {0x0340, 0x0a}, {0x0341, 0x5b},
	{0x0344, 0x00}, {0x0345, 0x00}, {0x0346, 0x00}, {0x0347, 0x00},
	{0x0348, 0x11}, {0x0349, 0xff}, {0x034a, 0x0a}, {0x034b, 0x1f},
	{0x0220, 0x01}, {0x0222, 0x04}, {0x0900, 0x00}, {0x0901, 0x11},
	{0x0902, 0x0a}, {0x3200, 0x01}, {0x3201, 0x01}, {0x32d5, 0x00},
	{0x32d6, 0x00}, {0x32db, 0x01}, {0x32df, 0x00}, {0x350c, 0x00},
	{0x350d, 0x00}, {0x0408, 0x00}, {0x0409, 0x00}, {0x040a, 0x00},
	{0x040b, 0x00}, {0x040c, 0x09}, {0x040d, 0x00}, {0x040e, 0x05},
	{0x040f, 0x10}, {0x034c, 0x09}, {0x034d, 0x00}, {0x034e, 0x05},
	{0x034f, 0x10}, {0x0301, 0x05}, {0x0303, 0x02}, {0x0305, 0x02},
	{0x0306, 0x00}, {0x0307, 0xa2}, {0x030b, 0x02}, {0x030d, 0x04},
	{0x030e, 0x01}, {0x030f, 0x2c}, {0x0310, 0x01}, {0x3ca0, 0x00},
	{0x3ca1, 0x00}, {0x3ca4, 0x00}, {0x3ca5, 0x00}, {0x3ca6, 0x00},
	{0x3ca7, 0x28}, {0x3caa, 0x00}, {0x3cab, 0x00}, {0x3cb8, 0x00},
	{0x3cb9, 0x30}, {0x3cba, 0x00}, {0x3cbb, 0x00}, {0x3cbc, 0x00},
	{0x3cbd, 0x32}, {0x3cbe, 0x00}, {0x3cbf, 0x00}, {0x0202, 0x0a},
	{0x0203, 0x2b}, {0x0224, 0x0a}, {0x0225, 0x2b}, {0x3116, 0x0a},
	{0x3117, 0x2b}, {0x0204, 0x00}, {0x0205, 0x00}, {0x0216, 0x00},
	{0x0217, 0x00}, {0x0218, 0x01}, {0x0219, 0x00}, {0x020e, 0x01},
	{0x020f, 0x00}, {0x3118, 0x00}, {0x3119, 0x00}, {0x311a, 0x01},
	{0x311b, 0x00}, {0x341a, 0x00}, {0x341b, 0x00}, {0x341c, 0x00},
	{0x341d, 0x00}, {0x341e, 0x00}, {0x341f, 0x90}, {0x3420, 0x00},
	{0x3421, 0x6c}, {0x3360, 0x01}, {0x3361, 0x01}, {0x3366, 0x09},
	{0x3367, 0x00}, {0x3368, 0x05}, {0x3369, 0x10},
}
