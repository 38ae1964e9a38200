package textures

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Add shifts every channel by d, saturating at 0 and 255.
func (c RGB) Add(d int) RGB {
	return RGB{R: clampByte(int(c.R) + d), G: clampByte(int(c.G) + d), B: clampByte(int(c.B) + d)}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

var palette = struct {
	Stone, Mortar, Brick, Flag, Grout, Handle, Flame RGB
}{
	Stone:  RGB{58, 56, 54},
	Mortar: RGB{120, 116, 108},
	Brick:  RGB{128, 74, 56},
	Flag:   RGB{96, 92, 86},
	Grout:  RGB{34, 32, 30},
	Handle: RGB{70, 44, 24},
	Flame:  RGB{255, 190, 90},
}
