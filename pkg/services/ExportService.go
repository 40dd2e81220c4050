package services

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zephrnos/painting-pack-maker/pkg/assets"
	"github.com/Zephrnos/painting-pack-maker/pkg/models"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	ManifestFilename = "custompaintings.json"
	IconFilename     = "icon.png"
	ImagesDirName    = "images"

	// Maximum pixel width of any exported painting file.
	ExportWidthCap = 1024
)

type ExportServicer interface {
	Export(meta models.PackMeta, items []models.ExportItem, exportRoot string) (*models.Pack, error)
}

type ExportServiceConfig struct {
	CropService CropServicer
}

type ExportService struct {
	cropService CropServicer
}

func NewExportService(config ExportServiceConfig) ExportService {
	return ExportService{
		cropService: config.CropService,
	}
}

/*
Export materializes a bundle directory under exportRoot:

	<exportRoot>/<sanitized pack name>/
	   icon.png
	   images/<id>_<filename>_<w>x<h>.png   one per size multiple
	   custompaintings.json

Items are processed in input order; the caller filters to included entries.
Each item's source is decoded fresh, cropped at its class ratio, capped at
ExportWidthCap, then written once per size multiple. The same pixel buffer
backs every multiple of one item; only the manifest's nominal width and
height differ per record.

The first failure aborts the whole export. Files already written stay on
disk; there is no rollback.
*/
func (s ExportService) Export(meta models.PackMeta, items []models.ExportItem, exportRoot string) (*models.Pack, error) {
	var (
		err error
	)

	packDir := BundleDir(exportRoot, meta.Name)
	pack := models.NewPack(meta.Name, meta.Version, sanitizeID(meta.ID), meta.Description)

	if err = s.writeImages(pack, items, packDir); err != nil {
		return nil, err
	}

	if err = s.writeManifest(pack, packDir); err != nil {
		return nil, err
	}

	if err = s.writeIcon(packDir); err != nil {
		return nil, err
	}

	return pack, nil
}

func (s ExportService) writeImages(pack *models.Pack, items []models.ExportItem, packDir string) error {
	var (
		err      error
		painting image.Image
	)

	imagesDir := filepath.Join(packDir, ImagesDirName)

	if err = os.MkdirAll(imagesDir, 0755); err != nil {
		return fmt.Errorf("error creating images directory '%s': %w", imagesDir, err)
	}

	for index, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("%w: item %d ('%s')", models.ErrMissingItemID, index, item.SourcePath)
		}

		if strings.TrimSpace(item.Filename) == "" {
			return fmt.Errorf("%w: item %d ('%s')", models.ErrMissingItemFilename, index, item.SourcePath)
		}

		/*
		 * Re-crop from the source path on demand. Pixels are never kept
		 * resident between preview and export.
		 */
		if painting, err = s.cropService.CropFile(item.SourcePath, item.AspectClass); err != nil {
			return fmt.Errorf("error re-cropping item %d for export: %w", index, err)
		}

		if painting.Bounds().Dx() > ExportWidthCap {
			painting = resize.Resize(ExportWidthCap, 0, painting, resize.Lanczos3)
		}

		sanitizedID := sanitizeName(item.ID)
		sanitizedFilename := sanitizeName(item.Filename)

		for _, size := range item.Sizes() {
			filename := fmt.Sprintf("%s_%s_%dx%d.png", sanitizedID, sanitizedFilename, size.Width, size.Height)
			savePath := filepath.Join(imagesDir, filename)

			if err = imaging.Save(painting, savePath); err != nil {
				return fmt.Errorf("error writing image '%s': %w", savePath, err)
			}

			pack.AddPainting(models.Painting{
				ID:       fmt.Sprintf("%s_%dx%d", sanitizedID, size.Width, size.Height),
				Filename: filename,
				Name:     item.Name,
				Artist:   item.Artist,
				Width:    size.Width,
				Height:   size.Height,
			})
		}
	}

	return nil
}

func (s ExportService) writeManifest(pack *models.Pack, packDir string) error {
	var (
		err error
		b   []byte
	)

	if b, err = json.MarshalIndent(pack, "", "  "); err != nil {
		return fmt.Errorf("error serializing manifest: %w", err)
	}

	manifestPath := filepath.Join(packDir, ManifestFilename)

	if err = os.WriteFile(manifestPath, b, 0644); err != nil {
		return fmt.Errorf("error writing manifest '%s': %w", manifestPath, err)
	}

	return nil
}

func (s ExportService) writeIcon(packDir string) error {
	iconPath := filepath.Join(packDir, IconFilename)

	if err := os.WriteFile(iconPath, assets.DefaultIcon, 0644); err != nil {
		return fmt.Errorf("error writing icon '%s': %w", iconPath, err)
	}

	return nil
}

/*
BundleDir returns the directory a pack with the given name exports into.
*/
func BundleDir(exportRoot, packName string) string {
	return filepath.Join(exportRoot, sanitizeName(packName))
}

/*
sanitizeName makes a string safe for use in file and directory names by
replacing spaces with underscores.
*/
func sanitizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

/*
sanitizeID normalizes a pack identifier: lowercased, spaces replaced with
underscores, and every character outside [a-z0-9_] dropped.
*/
func sanitizeID(id string) string {
	lowered := strings.ReplaceAll(strings.ToLower(id), " ", "_")
	builder := strings.Builder{}

	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
