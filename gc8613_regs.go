package camsensor

// Register programs for the gc8613. Generated from the vendor init tables.

// gc8613GlobalRegs written on every power up
var gc8613GlobalRegs = Program{}

// gc8613Regs3840x2160Nonlinear 3840x2160 12-bit nonlinear, 4 lanes, 30fps
var gc8613Regs3840x2160Nonlinear = Program{
	{0x03fe, 0xf0}, {0x03fe, 0x00}, {0x03fe, 0x10}, {0x0a38, 0x01},
	{0x0a20, 0x19}, {0x061b, 0x17}, {0x061c, 0x48}, {0x061d, 0x05},
	{0x061e, 0x5a}, {0x061f, 0x05}, {0x0a21, 0x24}, {0x0a31, 0xc6},
	{0x0a34, 0x40}, {0x0a35, 0x08}, {0x0a37, 0x44}, {0x0314, 0x50},
	{0x0315, 0x00}, {0x031c, 0xce}, {0x0219, 0x47}, {0x0342, 0x03},
	{0x0343, 0x10}, {0x0259, 0x08}, {0x025a, 0x98}, {0x0340, 0x08},
	{0x0341, 0xf8}, {0x0345, 0x02}, {0x0347, 0x02}, {0x0348, 0x0f},
	{0x0349, 0x18}, {0x034a, 0x08}, {0x034b, 0x88}, {0x034f, 0xf0},
	{0x0094, 0x0f}, {0x0095, 0x00}, {0x0096, 0x08}, {0x0097, 0x70},
	{0x0099, 0x0c}, {0x009b, 0x0c}, {0x060c, 0x06}, {0x060e, 0x20},
	{0x060f, 0x0f}, {0x070c, 0x06}, {0x070e, 0x20}, {0x070f, 0x0f},
	{0x0087, 0x50}, {0x0907, 0xd5}, {0x0909, 0x06}, {0x0902, 0x0b},
	{0x0904, 0x08}, {0x0908, 0x09}, {0x0903, 0xc5}, {0x090c, 0x09},
	{0x0905, 0x10}, {0x0906, 0x00}, {0x0724, 0x2b}, {0x0727, 0x2b},
	{0x072b, 0x1c}, {0x072a, 0x7c}, {0x073e, 0x40}, {0x0078, 0x88},
	{0x0268, 0x40}, {0x0269, 0x44}, {0x0351, 0x54}, {0x0618, 0x01},
	{0x1466, 0x45}, {0x1468, 0x46}, {0x1467, 0x46}, {0x0709, 0x40},
	{0x0719, 0x40}, {0x1469, 0xf0}, {0x146a, 0xd0}, {0x146b, 0x03},
	{0x1480, 0x07}, {0x1481, 0x80}, {0x1484, 0x0b}, {0x1485, 0xc0},
	{0x1430, 0x80}, {0x1407, 0x10}, {0x1408, 0x16}, {0x1409, 0x03},
	{0x1434, 0x04}, {0x1447, 0x75}, {0x1470, 0x10}, {0x1471, 0x13},
	{0x0122, 0x0b}, {0x0123, 0x30}, {0x0124, 0x04}, {0x0125, 0x30},
	{0x0126, 0x0f}, {0x0127, 0x15}, {0x0128, 0xa8}, {0x0129, 0x0c},
	{0x012a, 0x18}, {0x012b, 0x18}, {0x1438, 0x00}, {0x143a, 0x00},
	{0x024b, 0x02}, {0x0245, 0xc7}, {0x025b, 0x07}, {0x02bb, 0x77},
	{0x0612, 0x01}, {0x0613, 0x26}, {0x0243, 0x66}, {0x0087, 0x53},
	{0x0053, 0x05}, {0x0089, 0x00}, {0x0002, 0xeb}, {0x005a, 0x0c},
	{0x0040, 0x83}, {0x0075, 0x68}, {0x0205, 0x0c}, {0x0202, 0x03},
	{0x0203, 0x27}, {0x061a, 0x02}, {0x0213, 0x64}, {0x0265, 0x01},
	{0x0618, 0x05}, {0x026e, 0x74}, {0x0270, 0x02}, {0x0709, 0x00},
	{0x0719, 0x00}, {0x0812, 0xdb}, {0x0822, 0x0f}, {0x0821, 0x18},
	{0x0002, 0xef}, {0x0813, 0xfb}, {0x0070, 0x88}, {0x03fe, 0x00},
	{0x0106, 0x78}, {0x0136, 0x00}, {0x0181, 0xf0}, {0x0185, 0x01},
	{0x0180, 0x46}, {0x0106, 0x38}, {0x010d, 0x80}, {0x010e, 0x16},
	{0x0111, 0x2c}, {0x0112, 0x02}, {0x0114, 0x03}, {0x0100, 0x09},
	{0x79cf, 0x01}, {0x0219, 0x47}, {0x0054, 0x98}, {0x0076, 0x01},
	{0x0052, 0x02}, {0x021a, 0x10}, {0x0430, 0x05}, {0x0431, 0x05},
	{0x0432, 0x05}, {0x0433, 0x05}, {0x0434, 0x70}, {0x0435, 0x70},
	{0x0436, 0x70}, {0x0437, 0x70}, {0x0004, 0x0f}, {0x0704, 0x03},
	{0x071d, 0xdc}, {0x071e, 0x05}, {0x0706, 0x02}, {0x0716, 0x02},
	{0x0708, 0xc8}, {0x0718, 0xc8}, {0x071d, 0xdc}, {0x071e, 0x05},
	{0x1469, 0x80}, {0x031f, 0x01}, {0x031f, 0x00}, {0x0a67, 0x80},
	{0x0a54, 0x0e}, {0x0a65, 0x10}, {0x0a98, 0x04}, {0x05be, 0x00},
	{0x05a9, 0x01}, {0x0089, 0x02}, {0x0aa0, 0x00}, {0x0023, 0x00},
	{0x0022, 0x00}, {0x0025, 0x00}, {0x0024, 0x00}, {0x0028, 0x0f},
	{0x0029, 0x18}, {0x002a, 0x08}, {0x002b, 0x88}, {0x0317, 0x1c},
	{0x0a70, 0x03}, {0x0a82, 0x00}, {0x0a83, 0xe0}, {0x0a71, 0x00},
	{0x0a72, 0x02}, {0x0a73, 0x60}, {0x0a75, 0x41}, {0x0a70, 0x03},
	{0x0a5a, 0x80},
	{RegDelay, 20},
	{0x0089, 0x00}, {0x05be, 0x01}, {0x0a70, 0x00}, {0x0080, 0x02},
	{0x0a67, 0x00}, {0x024b, 0x02}, {0x0220, 0x80}, {0x0058, 0x00},
	{0x0059, 0x04},
}

// gc8613Regs3840x2160Linear 3840x2160 10-bit linear, 4 lanes, 30fps
var gc8613Regs3840x2160Linear = Program{
	{0x03fe, 0xf0}, {0x03fe, 0x00}, {0x03fe, 0x10}, {0x0a38, 0x01},
	{0x0a20, 0x19}, {0x061b, 0x17}, {0x061c, 0x50}, {0x061d, 0x06},
	{0x061e, 0x87}, {0x061f, 0x05}, {0x0a21, 0x10}, {0x0a31, 0xfb},
	{0x0a34, 0x40}, {0x0a35, 0x08}, {0x0a37, 0x46}, {0x0314, 0x50},
	{0x0315, 0x00}, {0x031c, 0xce}, {0x0219, 0x47}, {0x0342, 0x03},
	{0x0343, 0x20}, {0x0259, 0x08}, {0x025a, 0x96}, {0x0340, 0x08},
	{0x0341, 0xca}, {0x0351, 0x00}, {0x0345, 0x02}, {0x0347, 0x02},
	{0x0348, 0x0f}, {0x0349, 0x18}, {0x034a, 0x08}, {0x034b, 0x88},
	{0x034f, 0xf0}, {0x0094, 0x0f}, {0x0095, 0x00}, {0x0096, 0x08},
	{0x0097, 0x70}, {0x0099, 0x0c}, {0x009b, 0x0c}, {0x060c, 0x06},
	{0x060e, 0x20}, {0x060f, 0x0f}, {0x070c, 0x06}, {0x070e, 0x20},
	{0x070f, 0x0f}, {0x0087, 0x50}, {0x0907, 0xd5}, {0x0909, 0x06},
	{0x0902, 0x0b}, {0x0904, 0x08}, {0x0908, 0x09}, {0x0903, 0xc5},
	{0x090c, 0x09}, {0x0905, 0x10}, {0x0906, 0x00}, {0x072a, 0x7c},
	{0x0724, 0x2b}, {0x0727, 0x2b}, {0x072b, 0x1c}, {0x073e, 0x40},
	{0x0078, 0x88}, {0x0618, 0x01}, {0x1466, 0x12}, {0x1468, 0x10},
	{0x1467, 0x10}, {0x0709, 0x40}, {0x0719, 0x40}, {0x1469, 0x80},
	{0x146a, 0xc0}, {0x146b, 0x03}, {0x1480, 0x02}, {0x1481, 0x80},
	{0x1484, 0x08}, {0x1485, 0xc0}, {0x1430, 0x80}, {0x1407, 0x10},
	{0x1408, 0x16}, {0x1409, 0x03}, {0x1434, 0x04}, {0x1447, 0x75},
	{0x1470, 0x10}, {0x1471, 0x13}, {0x1438, 0x00}, {0x143a, 0x00},
	{0x024b, 0x02}, {0x0245, 0xc7}, {0x025b, 0x07}, {0x02bb, 0x77},
	{0x0612, 0x01}, {0x0613, 0x26}, {0x0243, 0x66}, {0x0087, 0x53},
	{0x0053, 0x05}, {0x0089, 0x02}, {0x0002, 0xeb}, {0x005a, 0x0c},
	{0x0040, 0x83}, {0x0075, 0x54}, {0x0205, 0x0c}, {0x0202, 0x01},
	{0x0203, 0x27}, {0x061a, 0x02}, {0x03fe, 0x00}, {0x0106, 0x78},
	{0x0136, 0x03}, {0x0181, 0xf0}, {0x0185, 0x01}, {0x0180, 0x46},
	{0x0106, 0x38}, {0x010d, 0xc0}, {0x010e, 0x12}, {0x0113, 0x02},
	{0x0114, 0x03}, {0x0100, 0x09}, {0x0004, 0x0f}, {0x0219, 0x47},
	{0x0054, 0x98}, {0x0076, 0x01}, {0x0052, 0x02}, {0x021a, 0x10},
	{0x0430, 0x21}, {0x0431, 0x21}, {0x0432, 0x21}, {0x0433, 0x21},
	{0x0434, 0x61}, {0x0435, 0x61}, {0x0436, 0x61}, {0x0437, 0x61},
	{0x0704, 0x03}, {0x071d, 0xdc}, {0x071e, 0x05}, {0x0706, 0x02},
	{0x0716, 0x02}, {0x0708, 0xc8}, {0x0718, 0xc8}, {0x031f, 0x01},
	{0x031f, 0x00}, {0x0a67, 0x80}, {0x0a54, 0x0e}, {0x0a65, 0x10},
	{0x0a98, 0x04}, {0x05be, 0x00}, {0x05a9, 0x01}, {0x0089, 0x02},
	{0x0aa0, 0x00}, {0x0023, 0x00}, {0x0022, 0x00}, {0x0025, 0x00},
	{0x0024, 0x00}, {0x0028, 0x0f}, {0x0029, 0x18}, {0x002a, 0x08},
	{0x002b, 0x88}, {0x0317, 0x1c}, {0x0a70, 0x03}, {0x0a82, 0x00},
	{0x0a83, 0xe0}, {0x0a71, 0x00}, {0x0a72, 0x02}, {0x0a73, 0x60},
	{0x0a75, 0x41}, {0x0a70, 0x03}, {0x0a5a, 0x80},
	{RegDelay, 20},
	{0x0089, 0x02}, {0x05be, 0x01}, {0x0a70, 0x00}, {0x0080, 0x02},
	{0x0a67, 0x00}, {0x024b, 0x02}, {0x0220, 0x80}, {0x0058, 0x00},
	{0x0059, 0x04},
}

// gc8613Regs1920x1080 1920x1080 10-bit, 4 lanes, 90fps
var gc8613Regs1920x1080 = Program{
	{0x03fe, 0xf0}, {0x03fe, 0x00}, {0x03fe, 0x10}, {0x0a38, 0x01},
	{0x0a20, 0x19}, {0x061b, 0x17}, {0x061c, 0x44}, {0x061d, 0x09},
	{0x061e, 0x46}, {0x061f, 0x04}, {0x0a21, 0x08}, {0x0a28, 0x01},
	{0x0a30, 0x01}, {0x0a31, 0x29}, {0x0a34, 0x40}, {0x0a35, 0x08},
	{0x0a37, 0x44}, {0x0314, 0x70}, {0x031c, 0xce}, {0x0219, 0x47},
	{0x0342, 0x02}, {0x0343, 0x83}, {0x0259, 0x04}, {0x025a, 0x00},
	{0x0340, 0x05}, {0x0341, 0xfc}, {0x0351, 0x00}, {0x0345, 0x02},
	{0x0347, 0x02}, {0x0348, 0x0f}, {0x0349, 0x10}, {0x034a, 0x08},
	{0x034b, 0x88}, {0x034f, 0xf0}, {0x0094, 0x0f}, {0x0095, 0x00},
	{0x0096, 0x08}, {0x0097, 0x70}, {0x0099, 0x09}, {0x009b, 0x09},
	{0x060c, 0x0a}, {0x060e, 0x20}, {0x060f, 0x0f}, {0x070c, 0x0a},
	{0x070e, 0x20}, {0x070f, 0x0f}, {0x0087, 0x50}, {0x0907, 0xd5},
	{0x0909, 0x06}, {0x0902, 0x0b}, {0x0904, 0x08}, {0x0908, 0x09},
	{0x0903, 0xc5}, {0x090c, 0x09}, {0x0905, 0x10}, {0x0906, 0x00},
	{0x072a, 0x7c}, {0x0724, 0x2b}, {0x0727, 0x2b}, {0x072b, 0x1c},
	{0x073e, 0x40}, {0x0078, 0x88}, {0x0618, 0x01}, {0x1466, 0x12},
	{0x1468, 0x10}, {0x1467, 0x10}, {0x0709, 0x40}, {0x0719, 0x40},
	{0x1469, 0x80}, {0x146a, 0xc0}, {0x146b, 0x03}, {0x1480, 0x02},
	{0x1481, 0x80}, {0x1484, 0x08}, {0x1485, 0xc0}, {0x1430, 0x80},
	{0x1407, 0x10}, {0x1408, 0x16}, {0x1409, 0x03}, {0x1434, 0x04},
	{0x1447, 0x75}, {0x1470, 0x10}, {0x1471, 0x13}, {0x1438, 0x00},
	{0x143a, 0x00}, {0x024b, 0x02}, {0x0245, 0xc7}, {0x025b, 0x07},
	{0x02bb, 0x77}, {0x0612, 0x01}, {0x0613, 0x26}, {0x0243, 0x66},
	{0x0087, 0x53}, {0x0053, 0x05}, {0x0089, 0x02}, {0x0002, 0xeb},
	{0x005a, 0x0c}, {0x0040, 0x83}, {0x0075, 0x54}, {0x0077, 0x08},
	{0x0218, 0x10}, {0x0205, 0x0c}, {0x0202, 0x06}, {0x0203, 0x27},
	{0x061a, 0x02}, {0x0122, 0x11}, {0x0123, 0x40}, {0x0126, 0x0f},
	{0x0129, 0x08}, {0x012a, 0x16}, {0x012b, 0x0f}, {0x03fe, 0x00},
	{0x0205, 0x0c}, {0x0202, 0x01}, {0x0203, 0x27}, {0x061a, 0x02},
	{0x03fe, 0x00}, {0x0106, 0x78}, {0x0136, 0x03}, {0x0181, 0xf0},
	{0x0185, 0x01}, {0x0180, 0x46}, {0x0106, 0x38}, {0x010d, 0x60},
	{0x010e, 0x09}, {0x0113, 0x02}, {0x0114, 0x03}, {0x0100, 0x09},
	{0x0004, 0x0f}, {0x0219, 0x47}, {0x0054, 0x98}, {0x0076, 0x01},
	{0x0052, 0x02}, {0x021a, 0x10}, {0x0430, 0x21}, {0x0431, 0x21},
	{0x0432, 0x21}, {0x0433, 0x21}, {0x0434, 0x61}, {0x0435, 0x61},
	{0x0436, 0x61}, {0x0437, 0x61}, {0x0704, 0x07}, {0x0706, 0x02},
	{0x0716, 0x02}, {0x0708, 0xc8}, {0x0718, 0xc8}, {0x031f, 0x01},
	{0x031f, 0x00}, {0x0a67, 0x80}, {0x0a54, 0x0e}, {0x0a65, 0x10},
	{0x0a98, 0x04}, {0x05be, 0x00}, {0x05a9, 0x01}, {0x0089, 0x02},
	{0x0aa0, 0x00}, {0x0023, 0x00}, {0x0022, 0x00}, {0x0025, 0x00},
	{0x0024, 0x00}, {0x0028, 0x0f}, {0x0029, 0x18}, {0x002a, 0x08},
	{0x002b, 0x88}, {0x0317, 0x1c}, {0x0a70, 0x03}, {0x0a82, 0x00},
	{0x0a83, 0xe0}, {0x0a71, 0x00}, {0x0a72, 0x02}, {0x0a73, 0x60},
	{0x0a75, 0x41}, {0x0a70, 0x03}, {0x0a5a, 0x80},
	{RegDelay, 20},
	{0x0089, 0x02}, {0x05be, 0x01}, {0x0a70, 0x00}, {0x0080, 0x02},
	{0x0a67, 0x00}, {0x024b, 0x02}, {0x0220, 0xcf},
}
