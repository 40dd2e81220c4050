package services

import (
	"fmt"
	"image"

	"github.com/Zephrnos/painting-pack-maker/pkg/models"
	"github.com/disintegration/imaging"
)

var (
	ErrDecode = fmt.Errorf("unable to decode image")
)

type CropServicer interface {
	CropRectangle(sourceWidth, sourceHeight int, ratio models.Size) models.CropRect
	CropFile(path string, class models.AspectClass) (image.Image, error)
	CropAll(path string) ([]image.Image, error)
	CropFileInPlace(path string, x, y, width, height int) error
}

type CropService struct{}

func NewCropService() CropService {
	return CropService{}
}

/*
CropRectangle computes the largest centered rectangle of the given ratio
that fits inside a sourceWidth x sourceHeight image. All arithmetic is
integer only: the ratio comparison cross-multiplies in 64 bits so large
dimensions cannot overflow, the scale factor is a floor division, and odd
leftover pixels bias the crop one pixel toward the top-left.

A source smaller than one ratio unit in its limiting dimension yields a
zero-area rectangle. That is a valid degenerate result, not an error.
*/
func (s CropService) CropRectangle(sourceWidth, sourceHeight int, ratio models.Size) models.CropRect {
	var (
		scale int
	)

	/*
	 * If the source is at least as wide as the target ratio, height is
	 * the limiting dimension. Otherwise width is.
	 */
	wideEnough := int64(sourceWidth)*int64(ratio.Height) >= int64(sourceHeight)*int64(ratio.Width)

	if wideEnough {
		scale = sourceHeight / ratio.Height
	} else {
		scale = sourceWidth / ratio.Width
	}

	cropWidth := ratio.Width * scale
	cropHeight := ratio.Height * scale

	return models.CropRect{
		X:      (sourceWidth - cropWidth) / 2,
		Y:      (sourceHeight - cropHeight) / 2,
		Width:  cropWidth,
		Height: cropHeight,
	}
}

/*
CropFile decodes the image at path and returns the centered crop for the
class's base ratio. The source is read fresh on every call; nothing is
cached between calls.
*/
func (s CropService) CropFile(path string, class models.AspectClass) (image.Image, error) {
	var (
		err error
		img image.Image
	)

	if img, err = imaging.Open(path); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrDecode, path, err)
	}

	return s.crop(img, class), nil
}

/*
CropAll decodes the image at path once and returns one crop per aspect
class, in declared class order. A decode failure produces no partial
results.
*/
func (s CropService) CropAll(path string) ([]image.Image, error) {
	var (
		err error
		img image.Image
	)

	if img, err = imaging.Open(path); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrDecode, path, err)
	}

	result := []image.Image{}

	for _, class := range models.AspectClasses() {
		result = append(result, s.crop(img, class))
	}

	return result, nil
}

/*
CropFileInPlace crops the image at path to the given rectangle and writes
the result back over the original file, keeping its format. The rectangle
is clamped to the image bounds rather than rejected.
*/
func (s CropService) CropFileInPlace(path string, x, y, width, height int) error {
	var (
		err error
		img image.Image
	)

	if img, err = imaging.Open(path); err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrDecode, path, err)
	}

	bounds := img.Bounds()

	width = min(max(width, 0), bounds.Dx())
	height = min(max(height, 0), bounds.Dy())
	x = min(max(x, 0), bounds.Dx()-1)
	y = min(max(y, 0), bounds.Dy()-1)

	cropped := imaging.Crop(img, image.Rect(x, y, x+width, y+height))

	if err = imaging.Save(cropped, path); err != nil {
		return fmt.Errorf("error saving cropped image '%s': %w", path, err)
	}

	return nil
}

func (s CropService) crop(img image.Image, class models.AspectClass) image.Image {
	bounds := img.Bounds()
	rect := s.CropRectangle(bounds.Dx(), bounds.Dy(), class.Ratio())
	return imaging.Crop(img, rect.Bounds())
}
