package camsensor

// Register programs for the sc5336. Generated from the vendor init tables.

// sc5336GlobalRegs written on power up
var sc5336GlobalRegs = Program{}

// sc5336Regs2880x1620 2880x1620 10-bit linear, 2 lanes, 30fps
var sc5336Regs2880x1620 = Program{
	{0x0103, 0x01}, {0x36e9, 0x80}, {0x37f9, 0x80}, {0x301f, 0x1a},
	{0x320e, 0x07}, {0x320f, 0x08}, {0x3213, 0x04}, {0x3241, 0x00},
	{0x3243, 0x01}, {0x3248, 0x02}, {0x3249, 0x0b}, {0x3253, 0x10},
	{0x3258, 0x0c}, {0x3301, 0x0a}, {0x3305, 0x00}, {0x3306, 0x58},
	{0x3308, 0x08}, {0x3309, 0xb0}, {0x330a, 0x00}, {0x330b, 0xc8},
	{0x3314, 0x14}, {0x331f, 0xa1}, {0x3321, 0x10}, {0x3327, 0x14},
	{0x3328, 0x0b}, {0x3329, 0x0e}, {0x3333, 0x10}, {0x3334, 0x40},
	{0x3356, 0x10}, {0x3364, 0x5e}, {0x338f, 0x80}, {0x3390, 0x09},
	{0x3391, 0x0b}, {0x3392, 0x0f}, {0x3393, 0x10}, {0x3394, 0x16},
	{0x3395, 0x98}, {0x3396, 0x08}, {0x3397, 0x09}, {0x3398, 0x0f},
	{0x3399, 0x0a}, {0x339a, 0x18}, {0x339b, 0x60}, {0x339c, 0xff},
	{0x33ad, 0x0c}, {0x33ae, 0x5c}, {0x33af, 0x52}, {0x33b1, 0xa0},
	{0x33b2, 0x38}, {0x33b3, 0x18}, {0x33f8, 0x00}, {0x33f9, 0x60},
	{0x33fa, 0x00}, {0x33fb, 0x80}, {0x33fc, 0x0b}, {0x33fd, 0x1f},
	{0x349f, 0x03}, {0x34a6, 0x0b}, {0x34a7, 0x1f}, {0x34a8, 0x08},
	{0x34a9, 0x08}, {0x34aa, 0x00}, {0x34ab, 0xd0}, {0x34ac, 0x00},
	{0x34ad, 0xf0}, {0x34f8, 0x3f}, {0x34f9, 0x08}, {0x3630, 0xc0},
	{0x3631, 0x83}, {0x3632, 0x54}, {0x3633, 0x33}, {0x3638, 0xcf},
	{0x363f, 0xc0}, {0x3641, 0x38}, {0x3670, 0x56}, {0x3674, 0xc0},
	{0x3675, 0xa0}, {0x3676, 0xa0}, {0x3677, 0x83}, {0x3678, 0x86},
	{0x3679, 0x8a}, {0x367c, 0x08}, {0x367d, 0x0f}, {0x367e, 0x08},
	{0x367f, 0x0f}, {0x3696, 0x23}, {0x3697, 0x33}, {0x3698, 0x34},
	{0x36a0, 0x09}, {0x36a1, 0x0f}, {0x36b0, 0x85}, {0x36b1, 0x8a},
	{0x36b2, 0x95}, {0x36b3, 0xa6}, {0x36b4, 0x09}, {0x36b5, 0x0b},
	{0x36b6, 0x0f}, {0x36ea, 0x0c}, {0x36eb, 0x0c}, {0x36ec, 0x0c},
	{0x36ed, 0xb6}, {0x370f, 0x01}, {0x3721, 0x6c}, {0x3722, 0x89},
	{0x3724, 0x21}, {0x3725, 0xb4}, {0x3727, 0x14}, {0x3771, 0x89},
	{0x3772, 0x89}, {0x3773, 0xc5}, {0x377a, 0x0b}, {0x377b, 0x1f},
	{0x37fa, 0x0c}, {0x37fb, 0x24}, {0x37fc, 0x01}, {0x37fd, 0x36},
	{0x3900, 0x0d}, {0x3901, 0x00}, {0x3904, 0x04}, {0x3905, 0x8c},
	{0x391d, 0x04}, {0x391f, 0x49}, {0x3926, 0x21}, {0x3933, 0x80},
	{0x3934, 0x0a}, {0x3935, 0x00}, {0x3936, 0xff}, {0x3937, 0x75},
	{0x3938, 0x74}, {0x393c, 0x1e}, {0x39dc, 0x02}, {0x3e00, 0x00},
	{0x3e01, 0x70}, {0x3e02, 0x00}, {0x3e09, 0x00}, {0x440d, 0x10},
	{0x440e, 0x02}, {0x450d, 0x18}, {0x4819, 0x0b}, {0x481b, 0x06},
	{0x481d, 0x17}, {0x481f, 0x05}, {0x4821, 0x0b}, {0x4823, 0x06},
	{0x4825, 0x05}, {0x4827, 0x05}, {0x4829, 0x09}, {0x5780, 0x66},
	{0x5787, 0x08}, {0x5788, 0x03}, {0x5789, 0x00}, {0x578a, 0x08},
	{0x578b, 0x03}, {0x578c, 0x00}, {0x578d, 0x40}, {0x5790, 0x08},
	{0x5791, 0x04}, {0x5792, 0x01}, {0x5793, 0x08}, {0x5794, 0x04},
	{0x5795, 0x01}, {0x5799, 0x46}, {0x57aa, 0x2a}, {0x5ae0, 0xfe},
	{0x5ae1, 0x40}, {0x5ae2, 0x38}, {0x5ae3, 0x30}, {0x5ae4, 0x0c},
	{0x5ae5, 0x38}, {0x5ae6, 0x30}, {0x5ae7, 0x28}, {0x5ae8, 0x3f},
	{0x5ae9, 0x34}, {0x5aea, 0x2c}, {0x5aeb, 0x3f}, {0x5aec, 0x34},
	{0x5aed, 0x2c}, {0x36e9, 0x20}, {0x37f9, 0x20},
}
