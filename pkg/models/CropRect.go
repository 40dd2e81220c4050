package models

import (
	"image"
)

/*
CropRect is a crop rectangle inside a source image. X and Y are the top-left
offsets. A zero-area rectangle is a valid, degenerate result for sources
smaller than one ratio unit; callers decide whether to reject it.
*/
type CropRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

/*
Bounds returns the rectangle in the coordinate space of the source image.
*/
func (c CropRect) Bounds() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

func (c CropRect) Empty() bool {
	return c.Width == 0 || c.Height == 0
}
