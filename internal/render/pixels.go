package render

import "image/color"

// fillCellsRGBA converts grid cells into one RGBA pixel per cell. Live cells
// take the on colour; the rest are left fully transparent so the image can be
// layered over the background.
func fillCellsRGBA(buf []byte, cells []bool, on color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}
