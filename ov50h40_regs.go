package camsensor

// Register programs for the ov50h40. Generated from the vendor init tables.

// ov50h40Regs4096x3072DPHY 4096x3072 D-PHY, configured by the bootloader
var ov50h40Regs4096x3072DPHY = Program{{RegNull, 0}}

// ov50h40Regs8192x6144DPHY 8192x6144 D-PHY, configured by the bootloader
var ov50h40Regs8192x6144DPHY = Program{{RegNull, 0}}

// ov50h40Regs4096x3072CPHY15 4096x3072 C-PHY 15fps
var ov50h40Regs4096x3072CPHY15 = Program{
	{0x0103, 0x01}, {0x0102, 0x01}, {0x6a03, 0x00}, {0x0304, 0x02},
	{0x0305, 0xd0}, {0x0306, 0x03}, {0x0307, 0x00}, {0x0308, 0x03},
	{0x0323, 0x12}, {0x0324, 0x02}, {0x0325, 0x58}, {0x0327, 0x09},
	{0x0328, 0x9f}, {0x0329, 0x01}, {0x032a, 0x0f}, {0x032b, 0x09},
	{0x032c, 0x00}, {0x032e, 0x01}, {0x0343, 0x02}, {0x0344, 0x01},
	{0x0345, 0x20}, {0x0346, 0xdf}, {0x0347, 0x0f}, {0x0348, 0x7f},
	{0x0349, 0x0f}, {0x034a, 0x03}, {0x034b, 0x02}, {0x034c, 0x03},
	{0x034d, 0x01}, {0x034e, 0x01}, {0x0360, 0x09}, {0x300d, 0x11},
	{0x300d, 0x11}, {0x300e, 0x11}, {0x3012, 0x31}, {0x3014, 0xf0},
	{0x3015, 0x00}, {0x3016, 0xf0}, {0x3017, 0xf0}, {0x301c, 0x01},
	{0x301d, 0x02}, {0x301f, 0x98}, {0x3020, 0x01}, {0x3025, 0x03},
	{0x3026, 0x80}, {0x3027, 0x00}, {0x302c, 0x01}, {0x302d, 0x00},
	{0x302e, 0x00}, {0x302f, 0x00}, {0x3030, 0x03}, {0x3031, 0x00},
	{0x3044, 0xc2}, {0x3047, 0x07}, {0x3102, 0x0d}, {0x3106, 0x80},
	{0x3400, 0x0c}, {0x3401, 0x00}, {0x3406, 0x08}, {0x3407, 0x08},
	{0x3408, 0x08}, {0x3409, 0x02}, {0x340a, 0x03}, {0x340e, 0x60},
	{0x3420, 0x03}, {0x3421, 0x08}, {0x3422, 0x08}, {0x3423, 0x00},
	{0x3426, 0x15}, {0x342b, 0x40}, {0x342c, 0x15}, {0x342d, 0x01},
	{0x342e, 0x00}, {0x3500, 0x00}, {0x3501, 0x00}, {0x3502, 0x40},
	{0x3504, 0x4c}, {0x3506, 0x78}, {0x3507, 0x00}, {0x3508, 0x01},
	{0x3509, 0x00}, {0x350a, 0x01}, {0x350b, 0x00}, {0x350c, 0x00},
	{0x350d, 0x01}, {0x350e, 0x00}, {0x350f, 0x00}, {0x3519, 0x01},
	{0x351a, 0x71}, {0x351b, 0x40}, {0x3540, 0x00}, {0x3541, 0x00},
	{0x3542, 0x30}, {0x3544, 0x4c}, {0x3546, 0x78}, {0x3548, 0x01},
	{0x3549, 0x00}, {0x354a, 0x01}, {0x354b, 0x00}, {0x354d, 0x01},
	{0x354e, 0x00}, {0x354f, 0x00}, {0x3559, 0x01}, {0x355a, 0x71},
	{0x355b, 0x40}, {0x3580, 0x00}, {0x3581, 0x00}, {0x3582, 0x20},
	{0x3584, 0x4c}, {0x3586, 0x78}, {0x3588, 0x01}, {0x3589, 0x00},
	{0x358a, 0x01}, {0x358b, 0x00}, {0x358d, 0x01}, {0x358e, 0x00},
	{0x358f, 0x00}, {0x3599, 0x01}, {0x359a, 0x71}, {0x359b, 0x40},
	{0x3600, 0xe4}, {0x3602, 0xe4}, {0x3603, 0x80}, {0x3605, 0x38},
	{0x3607, 0x10}, {0x3608, 0x30}, {0x3609, 0x80}, {0x360a, 0xfa},
	{0x360b, 0xc7}, {0x360c, 0x0f}, {0x360d, 0xf4}, {0x360e, 0x2b},
	{0x3610, 0x08}, {0x3612, 0x00}, {0x3614, 0x0c}, {0x3616, 0x8c},
	{0x3617, 0x0d}, {0x3618, 0xcf}, {0x3619, 0x44}, {0x361a, 0x81},
	{0x361b, 0x04}, {0x361d, 0x1f}, {0x3622, 0x00}, {0x3627, 0xa0},
	{0x363b, 0x6a}, {0x363c, 0x6a}, {0x3640, 0x00}, {0x3641, 0x02},
	{0x3643, 0x01}, {0x3644, 0x00}, {0x3645, 0x06}, {0x3646, 0x40},
	{0x3647, 0x01}, {0x3648, 0x8e}, {0x364d, 0x10}, {0x3650, 0xbf},
	{0x3651, 0x00}, {0x3653, 0x03}, {0x3657, 0x40}, {0x3680, 0x00},
	{0x3682, 0x80}, {0x3683, 0x00}, {0x3684, 0x01}, {0x3685, 0x04},
	{0x3688, 0x00}, {0x3689, 0x88}, {0x368a, 0x0e}, {0x368b, 0xef},
	{0x368d, 0x00}, {0x368e, 0x70}, {0x3696, 0x41}, {0x369a, 0x00},
	{0x369f, 0x20}, {0x36a4, 0x00}, {0x36a5, 0x00}, {0x36d0, 0x00},
	{0x36d3, 0x80}, {0x36d4, 0x00}, {0x3700, 0x1c}, {0x3701, 0x13},
	{0x3702, 0x30}, {0x3703, 0x34}, {0x3704, 0x03}, {0x3706, 0x1c},
	{0x3707, 0x04}, {0x3708, 0x25}, {0x3709, 0x70}, {0x370b, 0x3a},
	{0x370c, 0x04}, {0x3712, 0x01}, {0x3714, 0xf8}, {0x3715, 0x00},
	{0x3716, 0x40}, {0x3720, 0x0b}, {0x3722, 0x05}, {0x3724, 0x12},
	{0x372b, 0x00}, {0x372e, 0x1c}, {0x372f, 0x13}, {0x3733, 0x00},
	{0x3735, 0x00}, {0x373f, 0x00}, {0x374b, 0x04}, {0x374c, 0x0c},
	{0x374f, 0x58}, {0x3754, 0x30}, {0x3755, 0xb1}, {0x3756, 0x00},
	{0x3757, 0x30}, {0x3758, 0x00}, {0x3759, 0x50}, {0x375e, 0x00},
	{0x375f, 0x00}, {0x3760, 0x10}, {0x3761, 0x30}, {0x3762, 0x10},
	{0x3763, 0x10}, {0x3765, 0x20}, {0x3766, 0x30}, {0x3767, 0x20},
	{0x3768, 0x00}, {0x3769, 0x10}, {0x376a, 0x10}, {0x376c, 0x00},
	{0x376e, 0x00}, {0x3770, 0x01}, {0x3780, 0x5c}, {0x3782, 0x01},
	{0x378a, 0x01}, {0x3791, 0x30}, {0x3793, 0x1c}, {0x3795, 0x1c},
	{0x3797, 0x8e}, {0x3799, 0x3a}, {0x379b, 0x3a}, {0x379c, 0x01},
	{0x379d, 0x01}, {0x379f, 0x01}, {0x37a0, 0x70}, {0x37a9, 0x01},
	{0x37b2, 0xc8}, {0x37b7, 0x02}, {0x37bd, 0x00}, {0x37c1, 0x1a},
	{0x37c3, 0x1a}, {0x37ca, 0xc4}, {0x37cb, 0x02}, {0x37cc, 0x51},
	{0x37cd, 0x01}, {0x37d0, 0x00}, {0x37d4, 0x00}, {0x37d8, 0x00},
	{0x37d9, 0x08}, {0x37da, 0x14}, {0x37db, 0x10}, {0x37dc, 0x1a},
	{0x37dd, 0x86}, {0x37e0, 0x68}, {0x37e3, 0x30}, {0x37e4, 0xf6},
	{0x37f0, 0x01}, {0x37f1, 0xe0}, {0x37f2, 0x24}, {0x37f6, 0x1a},
	{0x3800, 0x00}, {0x3801, 0x00}, {0x3802, 0x00}, {0x3803, 0x00},
	{0x3804, 0x20}, {0x3805, 0x1f}, {0x3806, 0x18}, {0x3807, 0x3f},
	{0x3808, 0x20}, {0x3809, 0x00}, {0x380a, 0x18}, {0x380b, 0x00},
	{0x380c, 0x03}, {0x380d, 0x00}, {0x380e, 0x0c}, {0x380f, 0x80},
	{0x3810, 0x00}, {0x3811, 0x0f}, {0x3812, 0x00}, {0x3813, 0x20},
	{0x3814, 0x11}, {0x3815, 0x11}, {0x381a, 0x0c}, {0x381b, 0x70},
	{0x381c, 0x01}, {0x381d, 0x80}, {0x381f, 0x00}, {0x3820, 0x40},
	{0x3821, 0x04}, {0x3822, 0x00}, {0x3823, 0x04}, {0x3827, 0x40},
	{0x3828, 0x27}, {0x382a, 0x80}, {0x382e, 0x49}, {0x3830, 0x20},
	{0x3831, 0x10}, {0x3837, 0x20}, {0x383f, 0x08}, {0x3840, 0x00},
	{0x3847, 0x00}, {0x384a, 0x00}, {0x384c, 0x03}, {0x384d, 0x00},
	{0x3858, 0x00}, {0x3860, 0x00}, {0x3867, 0x11}, {0x386a, 0x00},
	{0x386b, 0x00}, {0x386c, 0x00}, {0x386d, 0x7c}, {0x3888, 0x00},
	{0x3889, 0x10}, {0x388a, 0x00}, {0x388b, 0x20}, {0x388c, 0x20},
	{0x388d, 0x00}, {0x388e, 0x18}, {0x388f, 0x00}, {0x3890, 0x11},
	{0x3894, 0x02}, {0x3895, 0x80}, {0x3896, 0x00}, {0x3899, 0x00},
	{0x38a0, 0x00}, {0x38a1, 0x1d}, {0x38a2, 0x98}, {0x38a3, 0x00},
	{0x38a4, 0x1d}, {0x38a5, 0x98}, {0x38ac, 0x40}, {0x38ad, 0x00},
	{0x38ae, 0x00}, {0x38af, 0x00}, {0x38b0, 0x00}, {0x38b1, 0x00},
	{0x38b2, 0x00}, {0x38b3, 0x00}, {0x38b4, 0x20}, {0x38b5, 0x1f},
	{0x38b6, 0x18}, {0x38b7, 0x1f}, {0x38b8, 0x20}, {0x38b9, 0x00},
	{0x38ba, 0x18}, {0x38bb, 0x00}, {0x38bc, 0x00}, {0x38bd, 0x10},
	{0x38be, 0x00}, {0x38bf, 0x10}, {0x38c0, 0x11}, {0x38c1, 0x11},
	{0x38c2, 0x00}, {0x38c3, 0x00}, {0x38c4, 0x00}, {0x38c5, 0x00},
	{0x38c6, 0x11}, {0x38c7, 0x00}, {0x38c8, 0x11}, {0x38c9, 0x00},
	{0x38ca, 0x11}, {0x38cb, 0x00}, {0x38cc, 0x11}, {0x38cd, 0x00},
	{0x38ce, 0x11}, {0x38cf, 0x00}, {0x38d1, 0x11}, {0x38d2, 0x00},
	{0x38d3, 0x00}, {0x38d4, 0x08}, {0x38d5, 0x00}, {0x38d6, 0x08},
	{0x38db, 0x20}, {0x38dd, 0x10}, {0x38de, 0x0c}, {0x38df, 0x20},
	{0x38e0, 0x00}, {0x38f3, 0x00}, {0x3900, 0x40}, {0x3906, 0x24},
	{0x3907, 0x00}, {0x390a, 0x05}, {0x3913, 0x0c}, {0x3918, 0x00},
	{0x3919, 0x15}, {0x395b, 0x05}, {0x3982, 0x40}, {0x398b, 0x00},
	{0x3994, 0x0b}, {0x3995, 0x30}, {0x399d, 0x05}, {0x39a0, 0x0b},
	{0x39dc, 0x01}, {0x39fb, 0x01}, {0x39fc, 0x01}, {0x39fd, 0x06},
	{0x39fe, 0x06}, {0x3a1d, 0x01}, {0x3a1e, 0x01}, {0x3a1f, 0x03},
	{0x3a21, 0x01}, {0x3a22, 0x06}, {0x3a23, 0x03}, {0x3a68, 0x05},
	{0x3a69, 0x20}, {0x3a6d, 0x50}, {0x3a78, 0x03}, {0x3a79, 0x03},
	{0x3a7c, 0x04}, {0x3a7d, 0x04}, {0x3a94, 0x04}, {0x3ab5, 0x00},
	{0x3ab6, 0x01}, {0x3ab7, 0x01}, {0x3ab8, 0x01}, {0x3ab9, 0x01},
	{0x3af2, 0x03}, {0x3b01, 0x00}, {0x3b02, 0x00}, {0x3b16, 0x00},
	{0x3b3d, 0x07}, {0x3b4a, 0x38}, {0x3b4b, 0x38}, {0x3b56, 0x20},
	{0x3b57, 0x21}, {0x3b58, 0x21}, {0x3b59, 0x21}, {0x3b5a, 0x14},
	{0x3b5b, 0x14}, {0x3b5c, 0x14}, {0x3b5d, 0x14}, {0x3b82, 0x14},
	{0x3ba1, 0x20}, {0x3ba4, 0x77}, {0x3ba5, 0x77}, {0x3ba6, 0x00},
	{0x3ba7, 0x00}, {0x3baa, 0x33}, {0x3bab, 0x37}, {0x3bac, 0x77},
	{0x3baf, 0x00}, {0x3bba, 0x4c}, {0x3bde, 0x01}, {0x3be0, 0x30},
	{0x3be7, 0x08}, {0x3be8, 0x0f}, {0x3beb, 0x00}, {0x3bf2, 0x03},
	{0x3bf3, 0x01}, {0x3bf4, 0x50}, {0x3bfb, 0x01}, {0x3bfc, 0x50},
	{0x3bff, 0x08}, {0x3d84, 0x00}, {0x3d85, 0x0b}, {0x3d8c, 0x9b},
	{0x3d8d, 0xa0}, {0x3daa, 0x00}, {0x3dab, 0x00}, {0x3f00, 0x10},
	{0x4008, 0x00}, {0x4009, 0x02}, {0x400e, 0x14}, {0x4010, 0x34},
	{0x4011, 0x01}, {0x4012, 0x17}, {0x4015, 0x00}, {0x4016, 0x1f},
	{0x4017, 0x00}, {0x4018, 0x0f}, {0x401a, 0x40}, {0x401b, 0x04},
	{0x40f8, 0x04}, {0x40f9, 0x00}, {0x40fa, 0x02}, {0x40fb, 0x00},
	{0x4100, 0x00}, {0x4101, 0x00}, {0x4102, 0x00}, {0x4103, 0x00},
	{0x4105, 0x00}, {0x4288, 0x27}, {0x4504, 0x80}, {0x4505, 0x0c},
	{0x4506, 0x01}, {0x4509, 0x07}, {0x450c, 0x00}, {0x450d, 0x30},
	{0x450e, 0x00}, {0x450f, 0x20}, {0x4510, 0x00}, {0x4511, 0x00},
	{0x4512, 0x00}, {0x4513, 0x00}, {0x4514, 0x00}, {0x4515, 0x00},
	{0x4516, 0x00}, {0x4517, 0x00}, {0x4518, 0x00}, {0x4519, 0x00},
	{0x451a, 0x00}, {0x451b, 0x00}, {0x451c, 0x00}, {0x451d, 0x00},
	{0x451e, 0x00}, {0x451f, 0x00}, {0x4520, 0x00}, {0x4521, 0x00},
	{0x4522, 0x00}, {0x4523, 0x00}, {0x4524, 0x00}, {0x4525, 0x00},
	{0x4526, 0x00}, {0x4527, 0x18}, {0x4545, 0x00}, {0x4546, 0x07},
	{0x4547, 0x33}, {0x4549, 0x00}, {0x454a, 0x00}, {0x454b, 0x00},
	{0x454c, 0x00}, {0x454d, 0x00}, {0x454e, 0x00}, {0x454f, 0x00},
	{0x4550, 0x00}, {0x4551, 0x00}, {0x4552, 0x00}, {0x4553, 0x00},
	{0x4554, 0x00}, {0x4555, 0x00}, {0x4556, 0x00}, {0x4557, 0x00},
	{0x4558, 0x00}, {0x4559, 0x00}, {0x455a, 0x00}, {0x455b, 0x00},
	{0x455c, 0x00}, {0x455d, 0x00}, {0x455e, 0x00}, {0x455f, 0x00},
	{0x4560, 0x00}, {0x4561, 0x00}, {0x4562, 0x00}, {0x4563, 0x00},
	{0x4564, 0x00}, {0x4565, 0x00}, {0x4580, 0x01}, {0x4583, 0x00},
	{0x4584, 0x00}, {0x4585, 0x00}, {0x4586, 0x00}, {0x458c, 0x02},
	{0x458d, 0x00}, {0x458e, 0x00}, {0x45c0, 0x1c}, {0x45c1, 0x80},
	{0x45c2, 0x0a}, {0x45c3, 0x84}, {0x45c4, 0x10}, {0x45c5, 0x80},
	{0x45c6, 0x08}, {0x45c7, 0x00}, {0x45c8, 0x00}, {0x45c9, 0x00},
	{0x45ca, 0x00}, {0x45cb, 0x00}, {0x45cc, 0x00}, {0x45cd, 0x07},
	{0x45ce, 0x13}, {0x45cf, 0x13}, {0x45d0, 0x13}, {0x45d2, 0x00},
	{0x45d3, 0x00}, {0x45d4, 0x00}, {0x45d5, 0x00}, {0x45d6, 0x00},
	{0x45d7, 0x00}, {0x45d8, 0x00}, {0x45d9, 0x00}, {0x45da, 0x00},
	{0x45dd, 0x00}, {0x45de, 0x00}, {0x45df, 0x00}, {0x45e0, 0x00},
	{0x45e1, 0x00}, {0x45e2, 0x00}, {0x45e3, 0x00}, {0x45e4, 0x00},
	{0x45e5, 0x00}, {0x45e7, 0x00}, {0x4602, 0x00}, {0x4603, 0x15},
	{0x460b, 0x07}, {0x4640, 0x01}, {0x4641, 0x00}, {0x4643, 0x08},
	{0x4644, 0xe0}, {0x4645, 0xbf}, {0x4647, 0x02}, {0x464a, 0x00},
	{0x464b, 0x00}, {0x464c, 0x01}, {0x4680, 0x11}, {0x4681, 0x80},
	{0x4684, 0x2b}, {0x4685, 0x17}, {0x4686, 0x00}, {0x4687, 0x00},
	{0x4688, 0x00}, {0x4689, 0x00}, {0x468e, 0x30}, {0x468f, 0x00},
	{0x4690, 0x00}, {0x4691, 0x00}, {0x4694, 0x04}, {0x4800, 0x64},
	{0x4802, 0x02}, {0x4806, 0x40}, {0x4813, 0x10}, {0x481b, 0x25},
	{0x4825, 0x32}, {0x4826, 0x32}, {0x4829, 0x64}, {0x4836, 0x32},
	{0x4837, 0x04}, {0x4840, 0x00}, {0x4850, 0x42}, {0x4851, 0xaa},
	{0x4853, 0x10}, {0x4854, 0x05}, {0x4855, 0x1c}, {0x4860, 0x01},
	{0x4861, 0xec}, {0x4862, 0x3a}, {0x4883, 0x24}, {0x4884, 0x11},
	{0x4888, 0x10}, {0x4889, 0x00}, {0x4911, 0x00}, {0x491a, 0x40},
	{0x49f5, 0x00}, {0x49f8, 0x04}, {0x49f9, 0x00}, {0x49fa, 0x02},
	{0x49fb, 0x00}, {0x4a11, 0x00}, {0x4a1a, 0x40}, {0x4af8, 0x04},
	{0x4af9, 0x00}, {0x4afa, 0x02}, {0x4afb, 0x00}, {0x4d00, 0x04},
	{0x4d01, 0x9d}, {0x4d02, 0xbb}, {0x4d03, 0x6c}, {0x4d04, 0xc4},
	{0x4d05, 0x71}, {0x5000, 0x5b}, {0x5001, 0x28}, {0x5002, 0x00},
	{0x5003, 0x0e}, {0x5004, 0x02}, {0x5007, 0x06}, {0x5009, 0x2e},
	{0x5053, 0x05}, {0x5060, 0x10}, {0x5069, 0x10}, {0x506a, 0x20},
	{0x506b, 0x04}, {0x506c, 0x04}, {0x506d, 0x0c}, {0x506e, 0x0c},
	{0x506f, 0x04}, {0x5070, 0x0c}, {0x5071, 0x14}, {0x5072, 0x1c},
	{0x5091, 0x00}, {0x50c1, 0x00}, {0x5110, 0x90}, {0x5111, 0x14},
	{0x5112, 0x9b}, {0x5113, 0x27}, {0x5114, 0x01}, {0x5155, 0x08},
	{0x5156, 0x0c}, {0x5157, 0x0c}, {0x5159, 0x08}, {0x515a, 0x0c},
	{0x515b, 0x0c}, {0x5180, 0xc0}, {0x518a, 0x04}, {0x51d3, 0x0a},
	{0x5251, 0x00}, {0x5312, 0x00}, {0x53c1, 0x00}, {0x5410, 0x90},
	{0x5411, 0x14}, {0x5412, 0x9b}, {0x5413, 0x27}, {0x5455, 0x08},
	{0x5456, 0x0c}, {0x5457, 0x0c}, {0x5459, 0x08}, {0x545a, 0x0c},
	{0x545b, 0x0c}, {0x5480, 0xc0}, {0x548a, 0x04}, {0x56c1, 0x00},
	{0x5710, 0x90}, {0x5711, 0x14}, {0x5712, 0x9b}, {0x5713, 0x27},
	{0x5755, 0x08}, {0x5756, 0x0c}, {0x5757, 0x0c}, {0x5759, 0x08},
	{0x575a, 0x0c}, {0x575b, 0x0c}, {0x5780, 0xc0}, {0x578a, 0x04},
	{0x5853, 0xfe}, {0x5854, 0xfe}, {0x5855, 0xfe}, {0x5856, 0xff},
	{0x5857, 0xff}, {0x5858, 0xff}, {0x587b, 0x16}, {0x58a7, 0x11},
	{0x58c0, 0x3f}, {0x58fd, 0x0a}, {0x5925, 0x00}, {0x5926, 0x00},
	{0x5927, 0x00}, {0x5928, 0x00}, {0x5929, 0x00}, {0x592c, 0x06},
	{0x592d, 0x00}, {0x592e, 0x03}, {0x59c2, 0x00}, {0x59c3, 0xce},
	{0x59c4, 0x01}, {0x59c5, 0x20}, {0x59c6, 0x01}, {0x59c7, 0x91},
	{0x59c8, 0x02}, {0x59c9, 0x2f}, {0x59ca, 0x03}, {0x59cb, 0x0a},
	{0x59cc, 0x04}, {0x59cd, 0x3d}, {0x59ce, 0x05}, {0x59cf, 0xe8},
	{0x59d0, 0x08}, {0x59d1, 0x3c}, {0x59d2, 0x0b}, {0x59d3, 0x7a},
	{0x59d4, 0x0f}, {0x59d5, 0xff}, {0x59d6, 0x0f}, {0x59d7, 0xff},
	{0x59d8, 0x0f}, {0x59d9, 0xff}, {0x59da, 0x0f}, {0x59db, 0xff},
	{0x59ef, 0x5f}, {0x6901, 0x18}, {0x6924, 0x00}, {0x6925, 0x00},
	{0x6926, 0x00}, {0x6942, 0x00}, {0x6943, 0x00}, {0x6944, 0x00},
	{0x694b, 0x00}, {0x6a20, 0x03}, {0x6a21, 0x04}, {0x6a22, 0x00},
	{0x6a53, 0xfe}, {0x6a54, 0xfe}, {0x6a55, 0xfe}, {0x6a56, 0xff},
	{0x6a57, 0xff}, {0x6a58, 0xff}, {0x6a7b, 0x16}, {0x6aa7, 0x11},
	{0x6ac0, 0x3f}, {0x6afd, 0x0a}, {0x6b25, 0x00}, {0x6b26, 0x00},
	{0x6b27, 0x00}, {0x6b28, 0x00}, {0x6b29, 0x00}, {0x6b2c, 0x06},
	{0x6b2d, 0x00}, {0x6b2e, 0x03}, {0x6bc2, 0x00}, {0x6bc3, 0xce},
	{0x6bc4, 0x01}, {0x6bc5, 0x20}, {0x6bc6, 0x01}, {0x6bc7, 0x91},
	{0x6bc8, 0x02}, {0x6bc9, 0x2f}, {0x6bca, 0x03}, {0x6bcb, 0x0a},
	{0x6bcc, 0x04}, {0x6bcd, 0x3d}, {0x6bce, 0x05}, {0x6bcf, 0xe8},
	{0x6bd0, 0x08}, {0x6bd1, 0x3c}, {0x6bd2, 0x0b}, {0x6bd3, 0x7a},
	{0x6bd4, 0x0f}, {0x6bd5, 0xff}, {0x6bd6, 0x0f}, {0x6bd7, 0xff},
	{0x6bd8, 0x0f}, {0x6bd9, 0xff}, {0x6bda, 0x0f}, {0x6bdb, 0xff},
	{0x6bef, 0x5f}, {0xc200, 0x00}, {0xc201, 0x00}, {0xc202, 0x00},
	{0xc203, 0x00}, {0xc210, 0x00}, {0xc211, 0x00}, {0xc212, 0x00},
	{0xc213, 0x00}, {0xc214, 0x00}, {0xc230, 0x00}, {0xc231, 0x00},
	{0xc232, 0x00}, {0xc233, 0x00}, {0xc240, 0x00}, {0xc241, 0x00},
	{0xc242, 0x00}, {0xc243, 0x00}, {0xc250, 0x00}, {0xc251, 0x00},
	{0xc252, 0x00}, {0xc253, 0x00}, {0xc260, 0x00}, {0xc261, 0x00},
	{0xc262, 0x00}, {0xc263, 0x00}, {0xc270, 0x00}, {0xc271, 0x00},
	{0xc272, 0x00}, {0xc273, 0x00}, {0xc40e, 0xa0}, {0xc418, 0x02},
	{0xc42f, 0x00}, {0xc448, 0x00}, {0xc44e, 0x03}, {0xc44f, 0x03},
	{0xc450, 0x04}, {0xc451, 0x04}, {0xc46e, 0x01}, {0xc478, 0x01},
	{0xc49c, 0x00}, {0xc49d, 0x00}, {0xc49e, 0x1c}, {0xc49f, 0x30},
	{0xc4a2, 0x3a}, {0xc4a3, 0x8e}, {0xc4b9, 0x09}, {0xc4bf, 0x01},
	{0xc4c1, 0x07}, {0xc4c2, 0x07}, {0xc4c3, 0x77}, {0xc4c4, 0x77},
	{0xc4d2, 0x38}, {0xc4d3, 0x38}, {0xc4d4, 0x38}, {0xc4d5, 0x38},
	{0xc4e3, 0x14}, {0xc4e9, 0x20}, {0xc4f8, 0x01}, {0xc500, 0x01},
	{0xc506, 0x14}, {0xc507, 0x02}, {0xc50b, 0x77}, {0xc50e, 0x00},
	{0xc50f, 0x00}, {0xc510, 0x00}, {0xc511, 0x00}, {0xc512, 0x00},
	{0xc513, 0x4e}, {0xc514, 0x4f}, {0xc515, 0x2a}, {0xc516, 0x16},
	{0xc517, 0x0b}, {0xc518, 0x33}, {0xc519, 0x33}, {0xc51a, 0x33},
	{0xc51b, 0x33}, {0xc51c, 0x33}, {0xc51d, 0x37}, {0xc51e, 0x37},
	{0xc51f, 0x3a}, {0xc520, 0x3a}, {0xc521, 0x3a}, {0xc52e, 0x0e},
	{0xc52f, 0x0e}, {0xc530, 0x0e}, {0xc531, 0x0e}, {0xc532, 0x0e},
	{0xc533, 0x0e}, {0xc534, 0x0e}, {0xc535, 0x0e}, {0xc53a, 0x0e},
	{0xc53b, 0x0e}, {0xc53c, 0x0e}, {0xc53d, 0x0e}, {0xc53e, 0x0e},
	{0xc53f, 0x0e}, {0xc540, 0x0e}, {0xc541, 0x0e}, {0xc542, 0x0e},
	{0xc543, 0x0e}, {0xc544, 0x0e}, {0xc545, 0x0e}, {0xc546, 0x0e},
	{0xc547, 0x0e}, {0xc548, 0x0e}, {0xc549, 0x0e}, {0xc57d, 0x80},
	{0xc57f, 0x18}, {0xc580, 0x18}, {0xc581, 0x18}, {0xc582, 0x18},
	{0xc583, 0x01}, {0xc584, 0x01}, {0xc586, 0x0a}, {0xc587, 0x18},
	{0xc588, 0x18}, {0xc589, 0x18}, {0xc58a, 0x0c}, {0xc58b, 0x08},
	{0xc58c, 0x04}, {0xc58e, 0x0a}, {0xc58f, 0x28}, {0xc590, 0x28},
	{0xc591, 0x28}, {0xc592, 0x28}, {0xc593, 0x04}, {0xc594, 0x04},
	{0xc597, 0x2c}, {0xc598, 0x2c}, {0xc599, 0x2c}, {0xc59a, 0x28},
	{0xc59b, 0x20}, {0xc59c, 0x18}, {0xc5e3, 0x07}, {0xc5e4, 0x00},
	{0xc5e5, 0x01}, {0xc5e8, 0x01}, {0xc5eb, 0x55}, {0xc5ec, 0x05},
	{0xc624, 0xf8}, {0xc638, 0x01}, {0xc639, 0x00}, {0xc63c, 0x01},
	{0xc63d, 0x00}, {0xc640, 0x01}, {0xc641, 0x00}, {0xc64c, 0x08},
	{0xc64d, 0x08}, {0xc64e, 0x08}, {0xc64f, 0x08}, {0xc650, 0x08},
	{0xc651, 0x08}, {0xc664, 0x00}, {0xc66b, 0x00}, {0xc66c, 0x00},
	{0xc66d, 0x00}, {0xc66e, 0x01}, {0xc66f, 0x00}, {0xc700, 0x80},
	{0xc702, 0x00}, {0xc703, 0x00}, {0xc726, 0x03}, {0xc72b, 0xff},
	{0xc72c, 0xff}, {0xc72d, 0xff}, {0xc72f, 0x08}, {0xc730, 0x00},
	{0xc731, 0x00}, {0xc732, 0x00}, {0xc733, 0x00}, {0xc734, 0x00},
	{0xc735, 0x00}, {0xc736, 0x01}, {0xc739, 0x18}, {0xc73a, 0x49},
	{0xc73b, 0x92}, {0xc73c, 0x24}, {0xc73d, 0x00}, {0xc73e, 0x00},
	{0xc73f, 0x00}, {0xc740, 0x00}, {0xc741, 0x00}, {0xc742, 0x00},
	{0xc743, 0x00}, {0xc744, 0x00}, {0xc745, 0x00}, {0xc746, 0x01},
	{0xc747, 0x04}, {0xc749, 0x1c}, {0xc74c, 0x40}, {0xc74e, 0x00},
	{0xc750, 0x55}, {0xc751, 0x00}, {0xc758, 0x40}, {0xc75b, 0x01},
	{0xc75c, 0x05}, {0xc765, 0x2a}, {0xc773, 0x02}, {0xc774, 0x03},
	{0xc78a, 0x03}, {0xc78b, 0x04}, {0xc797, 0x03}, {0xc798, 0x03},
	{0xc79c, 0x00}, {0xc79e, 0x01}, {0xc7a0, 0x12}, {0xc7a2, 0x01},
	{0xc7a3, 0x01}, {0xc7a6, 0x02}, {0xc7a7, 0xff}, {0xc7a8, 0xff},
	{0xc7a9, 0xff}, {0xc7aa, 0xff}, {0xc7ab, 0xff}, {0xc7ac, 0x02},
	{0xc7ad, 0xff}, {0xc7ae, 0xff}, {0xc7af, 0xff}, {0xc7b0, 0xff},
	{0xc7b1, 0xff}, {0xc7b2, 0x01}, {0xc7b3, 0xff}, {0xc7b4, 0xff},
	{0xc7b5, 0xff}, {0xc7b6, 0xff}, {0xc7c3, 0xff}, {0xc7c4, 0x00},
	{0xc7c5, 0xff}, {0xc7d9, 0x50}, {0xc7da, 0xaa}, {0xc7db, 0x0a},
	{0xc7dc, 0xa0}, {0xc7e2, 0x01}, {0xc7e4, 0x01}, {0xc7e8, 0x12},
	{0xc7fd, 0x12}, {0xc855, 0x07}, {0xc8a4, 0x07}, {0xc95a, 0x77},
	{0xc95b, 0x77}, {0xc95c, 0x77}, {0xc95d, 0x77}, {0xc97b, 0x10},
	{0xc9a8, 0x1c}, {0xc9b9, 0x28}, {0xc9be, 0x01}, {0xc9f3, 0x01},
	{0xc9fe, 0x0a}, {0xc9ff, 0x0e}, {0xca00, 0x1a}, {0xca01, 0x1a},
	{0xca02, 0x1a}, {0xca02, 0x1a}, {0xca17, 0x03}, {0xca18, 0x1a},
	{0xca19, 0x1a}, {0xca1a, 0x1a}, {0xca1b, 0x1a}, {0xca22, 0x12},
	{0xca23, 0x12}, {0xca24, 0x12}, {0xca25, 0x12}, {0xca26, 0x12},
	{0xca31, 0x12}, {0xca32, 0x12}, {0xca33, 0x12}, {0xca34, 0x12},
	{0xca35, 0x12}, {0xca36, 0x12}, {0xca37, 0x12}, {0xca38, 0x12},
	{0xca39, 0x12}, {0xca3a, 0x12}, {0xca45, 0x12}, {0xca46, 0x12},
	{0xca47, 0x12}, {0xca48, 0x12}, {0xca49, 0x12}, {0xcaab, 0x18},
	{0xcaca, 0x0f}, {0xcada, 0x03},
}

// ov50h40Regs4096x3072CPHY30 4096x3072 C-PHY 30fps
var ov50h40Regs4096x3072CPHY30 = Program{
	{0x0304, 0x02}, {0x0305, 0xd0}, {0x0327, 0x0e}, {0x0329, 0x01},
	{0x032c, 0x00}, {0x0344, 0x01}, {0x0345, 0x10}, {0x0360, 0x09},
	{0x3027, 0x00}, {0x3400, 0x0c}, {0x3422, 0x08}, {0x3423, 0x00},
	{0x3506, 0xf8}, {0x350d, 0x00}, {0x350e, 0xb2}, {0x350f, 0x40},
	{0x3546, 0xf8}, {0x354d, 0x00}, {0x354e, 0xb2}, {0x354f, 0x40},
	{0x3586, 0xf8}, {0x358d, 0x00}, {0x358e, 0xb2}, {0x358f, 0x40},
	{0x3609, 0x80}, {0x360c, 0x4f}, {0x3610, 0x08}, {0x3614, 0x10},
	{0x3618, 0xcf}, {0x3619, 0x40}, {0x361a, 0x01}, {0x361d, 0x1f},
	{0x363b, 0x9f}, {0x363c, 0x6e}, {0x3640, 0x00}, {0x3641, 0x02},
	{0x3644, 0x00}, {0x3645, 0x06}, {0x3647, 0x01}, {0x3650, 0xbf},
	{0x3653, 0x03}, {0x3680, 0x00}, {0x3682, 0x80}, {0x3684, 0x01},
	{0x3688, 0x00}, {0x368a, 0x0e}, {0x3696, 0x41}, {0x369a, 0x00},
	{0x36d0, 0x00}, {0x36d3, 0x40}, {0x3700, 0x1c}, {0x3701, 0x13},
	{0x3704, 0x03}, {0x3706, 0x34}, {0x3707, 0x04}, {0x3709, 0x7c},
	{0x370b, 0x94}, {0x3712, 0x00}, {0x3714, 0xf2}, {0x3716, 0x40},
	{0x3722, 0x05}, {0x3724, 0x08}, {0x372b, 0x00}, {0x372e, 0x1c},
	{0x372f, 0x13}, {0x373f, 0x00}, {0x374f, 0x58}, {0x3755, 0x7c},
	{0x3757, 0x7f}, {0x3759, 0x50}, {0x375e, 0x0d}, {0x375f, 0x00},
	{0x3770, 0x04}, {0x3780, 0x5e}, {0x3782, 0x01}, {0x378a, 0x01},
	{0x3791, 0x34}, {0x3793, 0x1c}, {0x3795, 0x1c}, {0x3797, 0x94},
	{0x3799, 0x3a}, {0x379b, 0x3a}, {0x379c, 0x01}, {0x379f, 0x01},
	{0x37a0, 0x9b}, {0x37a9, 0x01}, {0x37b2, 0xc8}, {0x37b7, 0x02},
	{0x37bd, 0x00}, {0x37c1, 0x1a}, {0x37c3, 0x1a}, {0x37cb, 0x02},
	{0x37cd, 0x02}, {0x37d0, 0x22}, {0x37d4, 0x00}, {0x37db, 0x10},
	{0x37dc, 0x1a}, {0x37e3, 0x30}, {0x37f0, 0x01}, {0x37f6, 0x1a},
	{0x3800, 0x00}, {0x3801, 0x00}, {0x3802, 0x00}, {0x3803, 0x00},
	{0x3804, 0x20}, {0x3805, 0x1f}, {0x3806, 0x18}, {0x3807, 0x3f},
	{0x3808, 0x10}, {0x3809, 0x00}, {0x380a, 0x0c}, {0x380b, 0x00},
	{0x380c, 0x04}, {0x380d, 0x4c}, {0x380e, 0x08}, {0x380f, 0xe0},
	{0x3810, 0x00}, {0x3811, 0x07}, {0x3813, 0x10}, {0x3815, 0x11},
	{0x3820, 0x46}, {0x3821, 0x10}, {0x3822, 0x10}, {0x3823, 0x04},
	{0x3827, 0x40}, {0x3828, 0x21}, {0x3830, 0x20}, {0x3831, 0x12},
	{0x3837, 0x20}, {0x383f, 0x08}, {0x384c, 0x04}, {0x384d, 0x4c},
	{0x3888, 0x00}, {0x3889, 0x08}, {0x388b, 0x10}, {0x388c, 0x10},
	{0x388d, 0x00}, {0x388e, 0x0c}, {0x388f, 0x00}, {0x3896, 0x00},
	{0x38db, 0x08}, {0x38dd, 0x04}, {0x38de, 0x03}, {0x38df, 0x08},
	{0x3906, 0x24}, {0x390a, 0x15}, {0x3919, 0x11}, {0x3982, 0x40},
	{0x398b, 0x00}, {0x399d, 0x13}, {0x39dc, 0x00}, {0x39fb, 0x01},
	{0x39fc, 0x01}, {0x39fd, 0x01}, {0x39fe, 0x01}, {0x3a1d, 0x01},
	{0x3a1e, 0x01}, {0x3a21, 0x01}, {0x3a22, 0x01}, {0x3a68, 0x13},
	{0x3a69, 0x20}, {0x3ab6, 0x01}, {0x3ab7, 0x01}, {0x3af2, 0x03},
	{0x3b01, 0x1d}, {0x3b02, 0x00}, {0x3b3d, 0x07}, {0x3b4a, 0x00},
	{0x3b4b, 0x00}, {0x3b56, 0x1f}, {0x3b57, 0x1f}, {0x3b58, 0x20},
	{0x3b59, 0x20}, {0x3b5a, 0x19}, {0x3b5b, 0x19}, {0x3b5c, 0x19},
	{0x3b5d, 0x19}, {0x3b82, 0x19}, {0x3ba1, 0x1e}, {0x3ba6, 0x77},
	{0x3ba7, 0x77}, {0x3baa, 0x33}, {0x3bab, 0x2f}, {0x3baf, 0x16},
	{0x3bba, 0x48}, {0x3bf3, 0x01}, {0x3bfb, 0x01}, {0x3bfc, 0x50},
	{0x3bff, 0x08}, {0x400e, 0x1c}, {0x4010, 0x34}, {0x4012, 0x17},
	{0x4015, 0x08}, {0x4016, 0x17}, {0x4018, 0x07}, {0x4506, 0x01},
	{0x4509, 0x07}, {0x450c, 0x00}, {0x450d, 0x60}, {0x4510, 0x03},
	{0x4516, 0x55}, {0x4517, 0x55}, {0x4518, 0x55}, {0x4519, 0x55},
	{0x451a, 0xaa}, {0x451b, 0xaa}, {0x451c, 0xaa}, {0x451d, 0xaa},
	{0x451e, 0xff}, {0x451f, 0xff}, {0x4520, 0xff}, {0x4521, 0xff},
	{0x4522, 0x29}, {0x4523, 0x08}, {0x4524, 0xbb}, {0x4525, 0x0c},
	{0x4545, 0x00}, {0x4546, 0x03}, {0x4547, 0x9a}, {0x4549, 0x00},
	{0x454a, 0x29}, {0x454b, 0x08}, {0x454c, 0xbb}, {0x454d, 0x0c},
	{0x454e, 0x29}, {0x454f, 0x08}, {0x4550, 0xbb}, {0x4551, 0x0c},
	{0x4552, 0x29}, {0x4553, 0x08}, {0x4554, 0xbb}, {0x4555, 0x0c},
	{0x4556, 0x29}, {0x4557, 0x08}, {0x4558, 0xbb}, {0x4559, 0x0c},
	{0x455a, 0x29}, {0x455b, 0x08}, {0x455c, 0xbb}, {0x455d, 0x0c},
	{0x455e, 0x29}, {0x455f, 0x08}, {0x4560, 0xbb}, {0x4561, 0x0c},
	{0x4562, 0x29}, {0x4563, 0x08}, {0x4564, 0xbb}, {0x4565, 0x0c},
	{0x45c0, 0x8e}, {0x45c1, 0x80}, {0x45c2, 0x0a}, {0x45c3, 0x04},
	{0x45c4, 0x13}, {0x45c5, 0x40}, {0x45c6, 0x01}, {0x4602, 0x00},
	{0x4603, 0x15}, {0x460b, 0x07}, {0x4640, 0x01}, {0x4641, 0x00},
	{0x4643, 0x0c}, {0x4680, 0x11}, {0x4684, 0x2b}, {0x468e, 0x30},
	{0x4813, 0x10}, {0x4836, 0x32}, {0x4837, 0x04}, {0x49f5, 0x00},
	{0x5000, 0x2b}, {0x5001, 0x08}, {0x5002, 0x00}, {0x5007, 0x06},
	{0x5009, 0x40}, {0x5091, 0x00}, {0x5180, 0xc0}, {0x5480, 0xc0},
	{0x5780, 0xc0}, {0x6a03, 0x00}, {0xc200, 0x00}, {0xc201, 0x00},
	{0xc202, 0x00}, {0xc203, 0x00}, {0xc210, 0x00}, {0xc211, 0x00},
	{0xc212, 0x00}, {0xc213, 0x00}, {0xc214, 0x00}, {0xc230, 0x00},
	{0xc231, 0x00}, {0xc232, 0x00}, {0xc233, 0x00}, {0xc240, 0x00},
	{0xc241, 0x00}, {0xc242, 0x00}, {0xc243, 0x00}, {0xc250, 0x00},
	{0xc251, 0x00}, {0xc252, 0x00}, {0xc253, 0x00}, {0xc260, 0x00},
	{0xc261, 0x00}, {0xc262, 0x00}, {0xc263, 0x00}, {0xc270, 0x00},
	{0xc271, 0x00}, {0xc272, 0x00}, {0xc273, 0x00}, {0xc40e, 0x00},
	{0xc448, 0x00}, {0xc46e, 0x01}, {0xc478, 0x01}, {0xc49e, 0x34},
	{0xc49f, 0x34}, {0xc4a2, 0x94}, {0xc4a3, 0x94}, {0xc4c1, 0x07},
	{0xc4c2, 0x07}, {0xc4c3, 0x77}, {0xc4c4, 0x77}, {0xc4d2, 0x00},
	{0xc4d3, 0x00}, {0xc4d4, 0x00}, {0xc4d5, 0x00}, {0xc4e3, 0x19},
	{0xc4e9, 0x1e}, {0xc506, 0x16}, {0xc50e, 0x1f}, {0xc50f, 0x1f},
	{0xc510, 0x0f}, {0xc511, 0x07}, {0xc512, 0x03}, {0xc513, 0x4e},
	{0xc514, 0x4e}, {0xc515, 0x27}, {0xc516, 0x16}, {0xc517, 0x0c},
	{0xc518, 0x33}, {0xc519, 0x33}, {0xc51a, 0x33}, {0xc51b, 0x3b},
	{0xc51c, 0x3b}, {0xc51d, 0x2f}, {0xc51e, 0x2f}, {0xc51f, 0x2f},
	{0xc520, 0x2f}, {0xc521, 0x30}, {0xc52e, 0x0e}, {0xc52f, 0x0e},
	{0xc530, 0x0e}, {0xc531, 0x0e}, {0xc532, 0x0e}, {0xc533, 0x0e},
	{0xc534, 0x0e}, {0xc535, 0x0e}, {0xc542, 0x0e}, {0xc543, 0x0e},
	{0xc544, 0x0e}, {0xc545, 0x0e}, {0xc546, 0x0e}, {0xc547, 0x0e},
	{0xc548, 0x0e}, {0xc549, 0x0e}, {0xc57d, 0x00}, {0xc581, 0x18},
	{0xc582, 0x18}, {0xc583, 0x02}, {0xc584, 0x01}, {0xc587, 0x18},
	{0xc589, 0x18}, {0xc58a, 0x10}, {0xc58b, 0x08}, {0xc58c, 0x01},
	{0xc58f, 0x28}, {0xc590, 0x28}, {0xc591, 0x28}, {0xc592, 0x28},
	{0xc593, 0x0a}, {0xc594, 0x06}, {0xc597, 0x2e}, {0xc598, 0x2e},
	{0xc599, 0x2e}, {0xc59a, 0x18}, {0xc59b, 0x0e}, {0xc59c, 0x08},
	{0xc5e4, 0x00}, {0xc5e5, 0x07}, {0xc5e8, 0x01}, {0xc702, 0x10},
	{0xc726, 0x03}, {0xc72b, 0xff}, {0xc72c, 0xff}, {0xc72d, 0xff},
	{0xc72f, 0x08}, {0xc736, 0x01}, {0xc739, 0x18}, {0xc73a, 0xa6},
	{0xc73b, 0x00}, {0xc73c, 0x00}, {0xc746, 0x01}, {0xc747, 0x04},
	{0xc749, 0x1c}, {0xc75b, 0x01}, {0xc75c, 0x05}, {0xc765, 0x2a},
	{0xc773, 0x02}, {0xc774, 0x03}, {0xc78a, 0x03}, {0xc78b, 0x04},
	{0xc798, 0x03}, {0xc7a2, 0x01}, {0xc7a6, 0x02}, {0xc7a7, 0x02},
	{0xc7a8, 0xff}, {0xc7a9, 0xff}, {0xc7aa, 0xff}, {0xc7ac, 0x02},
	{0xc7ad, 0x08}, {0xc7ae, 0xff}, {0xc7af, 0xff}, {0xc7b0, 0xff},
	{0xc7b2, 0x01}, {0xc7b3, 0x02}, {0xc7b4, 0xff}, {0xc7b5, 0xff},
	{0xc7b6, 0xff}, {0xc7c4, 0x01}, {0xc7c5, 0x00}, {0xc7e2, 0x01},
	{0xc855, 0x77}, {0xc8a4, 0x77}, {0xc95a, 0x77}, {0xc95b, 0x77},
	{0xc9b9, 0x18}, {0xc9fe, 0x0a}, {0xc9ff, 0x12}, {0xca00, 0x1a},
	{0xca02, 0x1a}, {0xca17, 0x04}, {0xca18, 0x1a}, {0xca19, 0x1a},
	{0x3501, 0x08}, {0x3502, 0x00}, {0x3508, 0x01}, {0x3509, 0x00},
}

// ov50h40Regs8192x6144CPHY 8192x6144 C-PHY 12fps
var ov50h40Regs8192x6144CPHY = Program{
	{0x0304, 0x02}, {0x0305, 0xd0}, {0x0327, 0x0e}, {0x0329, 0x01},
	{0x032c, 0x00}, {0x0344, 0x01}, {0x0345, 0x20}, {0x0360, 0x09},
	{0x3027, 0x00}, {0x3400, 0x0c}, {0x3422, 0x08}, {0x3423, 0x00},
	{0x3506, 0x78}, {0x350d, 0x01}, {0x350e, 0x00}, {0x350f, 0x00},
	{0x3546, 0x78}, {0x354d, 0x01}, {0x354e, 0x00}, {0x354f, 0x00},
	{0x3586, 0x78}, {0x358d, 0x01}, {0x358e, 0x00}, {0x358f, 0x00},
	{0x3609, 0x80}, {0x360c, 0x0f}, {0x3610, 0x08}, {0x3614, 0x0c},
	{0x3618, 0xcf}, {0x3619, 0x44}, {0x361a, 0x81}, {0x361d, 0x1f},
	{0x363b, 0x6a}, {0x363c, 0x6a}, {0x3640, 0x00}, {0x3641, 0x02},
	{0x3644, 0x00}, {0x3645, 0x06}, {0x3647, 0x01}, {0x3650, 0xbf},
	{0x3653, 0x03}, {0x3680, 0x00}, {0x3682, 0x80}, {0x3684, 0x00},
	{0x3688, 0x00}, {0x368a, 0x0e}, {0x3696, 0x41}, {0x369a, 0x00},
	{0x36d0, 0x00}, {0x36d3, 0x80}, {0x3700, 0x1c}, {0x3701, 0x13},
	{0x3704, 0x03}, {0x3706, 0x1c}, {0x3707, 0x04}, {0x3709, 0x70},
	{0x370b, 0x3a}, {0x3712, 0x01}, {0x3714, 0xf8}, {0x3716, 0x40},
	{0x3722, 0x05}, {0x3724, 0x5d}, {0x372b, 0x00}, {0x372e, 0x1c},
	{0x372f, 0x13}, {0x373f, 0x00}, {0x374f, 0x58}, {0x3755, 0xb1},
	{0x3757, 0x30}, {0x3759, 0x50}, {0x375e, 0x00}, {0x375f, 0x00},
	{0x3770, 0x01}, {0x3780, 0x5c}, {0x3782, 0x01}, {0x378a, 0x01},
	{0x3791, 0x30}, {0x3793, 0x1c}, {0x3795, 0x1c}, {0x3797, 0x8e},
	{0x3799, 0x3a}, {0x379b, 0x3a}, {0x379c, 0x01}, {0x379f, 0x01},
	{0x37a0, 0x70}, {0x37a9, 0x01}, {0x37b2, 0xc8}, {0x37b7, 0x02},
	{0x37bd, 0x00}, {0x37c1, 0x1a}, {0x37c3, 0x1a}, {0x37cb, 0x02},
	{0x37cd, 0x01}, {0x37d0, 0x00}, {0x37d4, 0x00}, {0x37db, 0x10},
	{0x37dc, 0x1a}, {0x37e3, 0x30}, {0x37f0, 0x01}, {0x37f6, 0x1a},
	{0x3800, 0x00}, {0x3801, 0x00}, {0x3802, 0x00}, {0x3803, 0x00},
	{0x3804, 0x20}, {0x3805, 0x1f}, {0x3806, 0x18}, {0x3807, 0x3f},
	{0x3808, 0x20}, {0x3809, 0x00}, {0x380a, 0x18}, {0x380b, 0x00},
	{0x380c, 0x03}, {0x380d, 0x06}, {0x380e, 0x0c}, {0x380f, 0x96},
	{0x3810, 0x00}, {0x3811, 0x0f}, {0x3813, 0x20}, {0x3815, 0x11},
	{0x3820, 0x44}, {0x3821, 0x00}, {0x3822, 0x00}, {0x3823, 0x04},
	{0x3827, 0x40}, {0x3828, 0x27}, {0x3830, 0x20}, {0x3831, 0x10},
	{0x3837, 0x20}, {0x383f, 0x08}, {0x384c, 0x03}, {0x384d, 0x06},
	{0x3888, 0x00}, {0x3889, 0x10}, {0x388b, 0x20}, {0x388c, 0x20},
	{0x388d, 0x00}, {0x388e, 0x18}, {0x388f, 0x00}, {0x3896, 0x00},
	{0x38db, 0x20}, {0x38dd, 0x10}, {0x38de, 0x0c}, {0x38df, 0x20},
	{0x3906, 0x24}, {0x390a, 0x05}, {0x3919, 0x15}, {0x3982, 0x40},
	{0x398b, 0x00}, {0x399d, 0x05}, {0x39dc, 0x01}, {0x39fb, 0x01},
	{0x39fc, 0x01}, {0x39fd, 0x06}, {0x39fe, 0x06}, {0x3a1d, 0x01},
	{0x3a1e, 0x01}, {0x3a21, 0x01}, {0x3a22, 0x06}, {0x3a68, 0x05},
	{0x3a69, 0x20}, {0x3ab6, 0x01}, {0x3ab7, 0x01}, {0x3af2, 0x03},
	{0x3b01, 0x00}, {0x3b02, 0x00}, {0x3b3d, 0x07}, {0x3b4a, 0x38},
	{0x3b4b, 0x38}, {0x3b56, 0x20}, {0x3b57, 0x21}, {0x3b58, 0x21},
	{0x3b59, 0x21}, {0x3b5a, 0x14}, {0x3b5b, 0x14}, {0x3b5c, 0x14},
	{0x3b5d, 0x14}, {0x3b82, 0x14}, {0x3ba1, 0x20}, {0x3ba6, 0x00},
	{0x3ba7, 0x00}, {0x3baa, 0x33}, {0x3bab, 0x37}, {0x3baf, 0x00},
	{0x3bba, 0x4c}, {0x3bf3, 0x01}, {0x3bfb, 0x01}, {0x3bfc, 0x50},
	{0x3bff, 0x08}, {0x400e, 0x14}, {0x4010, 0x34}, {0x4012, 0x17},
	{0x4015, 0x10}, {0x4016, 0x2f}, {0x4018, 0x0f}, {0x4506, 0x01},
	{0x4509, 0x07}, {0x450c, 0x00}, {0x450d, 0x30}, {0x4510, 0x00},
	{0x4516, 0x00}, {0x4517, 0x00}, {0x4518, 0x00}, {0x4519, 0x00},
	{0x451a, 0x00}, {0x451b, 0x00}, {0x451c, 0x00}, {0x451d, 0x00},
	{0x451e, 0x00}, {0x451f, 0x00}, {0x4520, 0x00}, {0x4521, 0x00},
	{0x4522, 0x00}, {0x4523, 0x00}, {0x4524, 0x00}, {0x4525, 0x00},
	{0x4545, 0x00}, {0x4546, 0x04}, {0x4547, 0xcc}, {0x4549, 0x00},
	{0x454a, 0x00}, {0x454b, 0x00}, {0x454c, 0x00}, {0x454d, 0x00},
	{0x454e, 0x00}, {0x454f, 0x00}, {0x4550, 0x00}, {0x4551, 0x00},
	{0x4552, 0x00}, {0x4553, 0x00}, {0x4554, 0x00}, {0x4555, 0x00},
	{0x4556, 0x00}, {0x4557, 0x00}, {0x4558, 0x00}, {0x4559, 0x00},
	{0x455a, 0x00}, {0x455b, 0x00}, {0x455c, 0x00}, {0x455d, 0x00},
	{0x455e, 0x00}, {0x455f, 0x00}, {0x4560, 0x00}, {0x4561, 0x00},
	{0x4562, 0x00}, {0x4563, 0x00}, {0x4564, 0x00}, {0x4565, 0x00},
	{0x45c0, 0x9c}, {0x45c1, 0x80}, {0x45c2, 0x0a}, {0x45c3, 0x04},
	{0x45c4, 0x13}, {0x45c5, 0x80}, {0x45c6, 0x08}, {0x4602, 0x00},
	{0x4603, 0x15}, {0x460b, 0x07}, {0x4640, 0x01}, {0x4641, 0x00},
	{0x4643, 0x08}, {0x4680, 0x11}, {0x4684, 0x2b}, {0x468e, 0x30},
	{0x4813, 0x10}, {0x4836, 0x32}, {0x4837, 0x04}, {0x49f5, 0x00},
	{0x5000, 0x5b}, {0x5001, 0x28}, {0x5002, 0x00}, {0x5007, 0x06},
	{0x5009, 0x2e}, {0x5091, 0x00}, {0x5180, 0xc0}, {0x5480, 0xc0},
	{0x5780, 0xc0}, {0x6a03, 0x00}, {0xc200, 0x00}, {0xc201, 0x00},
	{0xc202, 0x00}, {0xc203, 0x00}, {0xc210, 0x00}, {0xc211, 0x00},
	{0xc212, 0x00}, {0xc213, 0x00}, {0xc214, 0x00}, {0xc230, 0x00},
	{0xc231, 0x00}, {0xc232, 0x00}, {0xc233, 0x00}, {0xc240, 0x00},
	{0xc241, 0x00}, {0xc242, 0x00}, {0xc243, 0x00}, {0xc250, 0x00},
	{0xc251, 0x00}, {0xc252, 0x00}, {0xc253, 0x00}, {0xc260, 0x00},
	{0xc261, 0x00}, {0xc262, 0x00}, {0xc263, 0x00}, {0xc270, 0x00},
	{0xc271, 0x00}, {0xc272, 0x00}, {0xc273, 0x00}, {0xc40e, 0xa0},
	{0xc448, 0x00}, {0xc46e, 0x01}, {0xc478, 0x01}, {0xc49e, 0x1c},
	{0xc49f, 0x30}, {0xc4a2, 0x3a}, {0xc4a3, 0x8e}, {0xc4c1, 0x07},
	{0xc4c2, 0x07}, {0xc4c3, 0x77}, {0xc4c4, 0x77}, {0xc4d2, 0x38},
	{0xc4d3, 0x38}, {0xc4d4, 0x38}, {0xc4d5, 0x38}, {0xc4e3, 0x14},
	{0xc4e9, 0x20}, {0xc506, 0x14}, {0xc50e, 0x00}, {0xc50f, 0x00},
	{0xc510, 0x00}, {0xc511, 0x00}, {0xc512, 0x00}, {0xc513, 0x4e},
	{0xc514, 0x4f}, {0xc515, 0x2a}, {0xc516, 0x16}, {0xc517, 0x0b},
	{0xc518, 0x33}, {0xc519, 0x33}, {0xc51a, 0x33}, {0xc51b, 0x33},
	{0xc51c, 0x33}, {0xc51d, 0x37}, {0xc51e, 0x37}, {0xc51f, 0x3a},
	{0xc520, 0x3a}, {0xc521, 0x3a}, {0xc52e, 0x0e}, {0xc52f, 0x0e},
	{0xc530, 0x0e}, {0xc531, 0x0e}, {0xc532, 0x0e}, {0xc533, 0x0e},
	{0xc534, 0x0e}, {0xc535, 0x0e}, {0xc542, 0x0e}, {0xc543, 0x0e},
	{0xc544, 0x0e}, {0xc545, 0x0e}, {0xc546, 0x0e}, {0xc547, 0x0e},
	{0xc548, 0x0e}, {0xc549, 0x0e}, {0xc57d, 0x80}, {0xc581, 0x18},
	{0xc582, 0x18}, {0xc583, 0x01}, {0xc584, 0x01}, {0xc587, 0x18},
	{0xc589, 0x18}, {0xc58a, 0x0c}, {0xc58b, 0x08}, {0xc58c, 0x04},
	{0xc58f, 0x28}, {0xc590, 0x28}, {0xc591, 0x28}, {0xc592, 0x28},
	{0xc593, 0x04}, {0xc594, 0x04}, {0xc597, 0x2c}, {0xc598, 0x2c},
	{0xc599, 0x2c}, {0xc59a, 0x28}, {0xc59b, 0x20}, {0xc59c, 0x18},
	{0xc5e4, 0x00}, {0xc5e5, 0x01}, {0xc5e8, 0x01}, {0xc702, 0x00},
	{0xc726, 0x03}, {0xc72b, 0xff}, {0xc72c, 0xff}, {0xc72d, 0xff},
	{0xc72f, 0x08}, {0xc736, 0x01}, {0xc739, 0x18}, {0xc73a, 0x49},
	{0xc73b, 0x92}, {0xc73c, 0x24}, {0xc746, 0x01}, {0xc747, 0x04},
	{0xc749, 0x1c}, {0xc75b, 0x01}, {0xc75c, 0x05}, {0xc765, 0x2a},
	{0xc773, 0x02}, {0xc774, 0x03}, {0xc78a, 0x03}, {0xc78b, 0x04},
	{0xc798, 0x03}, {0xc7a2, 0x01}, {0xc7a6, 0x02}, {0xc7a7, 0xff},
	{0xc7a8, 0xff}, {0xc7a9, 0xff}, {0xc7aa, 0xff}, {0xc7ac, 0x02},
	{0xc7ad, 0xff}, {0xc7ae, 0xff}, {0xc7af, 0xff}, {0xc7b0, 0xff},
	{0xc7b2, 0x01}, {0xc7b3, 0xff}, {0xc7b4, 0xff}, {0xc7b5, 0xff},
	{0xc7b6, 0xff}, {0xc7c4, 0x00}, {0xc7c5, 0xff}, {0xc7e2, 0x01},
	{0xc855, 0x07}, {0xc8a4, 0x07}, {0xc95a, 0x77}, {0xc95b, 0x77},
	{0xc9b9, 0x28}, {0xc9fe, 0x0a}, {0xc9ff, 0x0e}, {0xca00, 0x1a},
	{0xca02, 0x1a}, {0xca17, 0x03}, {0xca18, 0x1a}, {0xca19, 0x1a},
	{0x3501, 0x0c}, {0x3502, 0x00}, {0x3508, 0x01}, {0x3509, 0x00},
}
