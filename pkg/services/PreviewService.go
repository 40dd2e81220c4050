package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/alitto/pond/v2"
	"github.com/nfnt/resize"
)

/*
PreviewResult pairs a source path with its generated previews. Err is set
when the path could not be decoded; Previews is nil in that case.
*/
type PreviewResult struct {
	Path     string
	Previews []string
	Err      error
}

type PreviewServicer interface {
	Previews(path string) ([]string, error)
	PreviewBatch(paths []string) []PreviewResult
}

type PreviewServiceConfig struct {
	CropService     CropServicer
	MaxWorkers      int
	PreviewMaxWidth int
}

type PreviewService struct {
	cropService     CropServicer
	maxWorkers      int
	previewMaxWidth int
}

func NewPreviewService(config PreviewServiceConfig) PreviewService {
	return PreviewService{
		cropService:     config.CropService,
		maxWorkers:      config.MaxWorkers,
		previewMaxWidth: config.PreviewMaxWidth,
	}
}

/*
Previews decodes the photo at path once and returns one inline preview per
aspect class, in declared class order, each encoded as a PNG data URI. The
cropped buffers live only for the duration of this call; nothing is written
to disk.
*/
func (s PreviewService) Previews(path string) ([]string, error) {
	var (
		err   error
		crops []image.Image
	)

	if crops, err = s.cropService.CropAll(path); err != nil {
		return nil, err
	}

	result := []string{}

	for _, crop := range crops {
		var uri string

		if uri, err = s.encodeDataURI(crop); err != nil {
			return nil, err
		}

		result = append(result, uri)
	}

	return result, nil
}

/*
PreviewBatch generates previews for several photos at once, fanning the
per-photo work out across a worker pool. Results come back in input order;
a photo that fails to decode carries its error without affecting the rest
of the batch.
*/
func (s PreviewService) PreviewBatch(paths []string) []PreviewResult {
	results := make([]PreviewResult, len(paths))
	pool := pond.NewPool(s.maxWorkers)

	for index, path := range paths {
		pool.Submit(func() {
			previews, err := s.Previews(path)

			results[index] = PreviewResult{
				Path:     path,
				Previews: previews,
				Err:      err,
			}
		})
	}

	_ = pool.Stop().Wait()
	return results
}

func (s PreviewService) encodeDataURI(img image.Image) (string, error) {
	var (
		err error
		buf bytes.Buffer
	)

	/*
	 * Inline previews are for display only. Cap the width so the encoded
	 * payload stays small; the export path re-crops at full resolution.
	 */
	if s.previewMaxWidth > 0 && img.Bounds().Dx() > s.previewMaxWidth {
		img = resize.Resize(uint(s.previewMaxWidth), 0, img, resize.Lanczos3)
	}

	if err = png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("error encoding preview: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return fmt.Sprintf("data:image/png;base64,%s", encoded), nil
}
