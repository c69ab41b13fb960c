package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 32

var iconColor = color.NRGBA{R: 51, G: 204, B: 102, A: 255}

// Icon returns a 32x32 ICO file holding one PNG image: a ring like the target
// outline the overlay draws.
func Icon() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	for y := range iconSize {
		for x := range iconSize {
			dx, dy := x*2-iconSize+1, y*2-iconSize+1
			d := dx*dx + dy*dy
			if d <= 30*30 && d >= 20*20 {
				img.SetNRGBA(x, y, iconColor)
			}
		}
	}

	var pngData bytes.Buffer
	_ = png.Encode(&pngData, img)

	var buf bytes.Buffer
	// ICONDIR
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY
	buf.Write([]byte{iconSize, iconSize, 0, 0})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint16{1, 32})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint32{uint32(pngData.Len()), 6 + 16})
	buf.Write(pngData.Bytes())

	return buf.Bytes()
}
