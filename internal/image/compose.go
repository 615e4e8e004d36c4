// Package imagepkg renders drawn hands and deck share codes as PNG images.
package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// Card slot geometry in pixels.
const (
	CardWidth  = 215
	CardHeight = 300
	cardGap    = 8
	margin     = 48
	perRow     = 5
	qrSize     = 300
)

var (
	background  = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	placeholder = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x5e, A: 0xff}
)

// ComposeHandImage lays the cards out in rows of five, in hand order. Nil
// cards get a placeholder slot. A non-nil qr is pasted right of the rows.
func ComposeHandImage(cards []image.Image, qr image.Image) image.Image {
	cols := min(len(cards), perRow)
	rows := (len(cards) + perRow - 1) / perRow
	if cols == 0 {
		cols, rows = 1, 1
	}
	w := 2*margin + cols*CardWidth + (cols-1)*cardGap
	h := 2*margin + rows*CardHeight + (rows-1)*cardGap
	if qr != nil {
		w += cardGap*4 + qrSize
		h = max(h, 2*margin+qrSize)
	}
	canvas := imaging.New(w, h, background)

	for i, c := range cards {
		x := margin + (i%perRow)*(CardWidth+cardGap)
		y := margin + (i/perRow)*(CardHeight+cardGap)
		var slot image.Image
		if c == nil {
			slot = imaging.New(CardWidth, CardHeight, placeholder)
		} else {
			slot = imaging.Fill(c, CardWidth, CardHeight, imaging.Center, imaging.Lanczos)
		}
		canvas = imaging.Paste(canvas, slot, image.Pt(x, y))
	}

	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(w-margin-qrSize, margin))
	}
	return canvas
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
