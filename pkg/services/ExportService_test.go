package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Zephrnos/painting-pack-maker/pkg/assets"
	"github.com/Zephrnos/painting-pack-maker/pkg/models"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportService() ExportService {
	return NewExportService(ExportServiceConfig{
		CropService: NewCropService(),
	})
}

func testPackMeta() models.PackMeta {
	return models.PackMeta{
		Name:        "My Test Pack",
		Version:     "1.0.0",
		ID:          "My Test ID!",
		Description: "A pack for testing",
	}
}

func testSquareItem(sourcePath string) models.ExportItem {
	return models.ExportItem{
		SourcePath:  sourcePath,
		AspectClass: models.Square,
		ID:          "Test Square",
		Filename:    "test_square_file",
		Name:        "My Square Painting",
		Artist:      "The Artist",
		Included:    true,
	}
}

func TestExportIntegration(t *testing.T) {
	service := newTestExportService()
	exportRoot := t.TempDir()
	source := createTestImageFile(t, filepath.Join(exportRoot, "source.png"), 800, 600)

	pack, err := service.Export(testPackMeta(), []models.ExportItem{testSquareItem(source)}, exportRoot)
	require.NoError(t, err)

	// The pack directory uses the sanitized pack name.
	packDir := filepath.Join(exportRoot, "My_Test_Pack")
	require.DirExists(t, packDir)

	// The icon is byte-identical to the bundled asset.
	iconBytes, err := os.ReadFile(filepath.Join(packDir, IconFilename))
	require.NoError(t, err)
	assert.Equal(t, assets.DefaultIcon, iconBytes)

	// One file per Square size multiple.
	imagesDir := filepath.Join(packDir, ImagesDirName)
	require.DirExists(t, imagesDir)

	for _, size := range models.Square.Sizes() {
		filename := fmt.Sprintf("Test_Square_test_square_file_%dx%d.png", size.Width, size.Height)
		assert.FileExists(t, filepath.Join(imagesDir, filename))
	}

	// Manifest content.
	manifestBytes, err := os.ReadFile(filepath.Join(packDir, ManifestFilename))
	require.NoError(t, err)

	manifest := &models.Pack{}
	require.NoError(t, json.Unmarshal(manifestBytes, manifest))

	assert.Equal(t, "My Test Pack", manifest.Name)
	assert.Equal(t, models.DefaultSchema, manifest.Schema)
	assert.Equal(t, "1.0.0", manifest.Version)
	assert.Equal(t, "my_test_id", manifest.ID)
	assert.Equal(t, "A pack for testing", manifest.Description)

	require.Equal(t, 4, manifest.PaintingCount())

	first := manifest.Paintings[0]
	assert.Equal(t, "Test_Square_1x1", first.ID)
	assert.Equal(t, "Test_Square_test_square_file_1x1.png", first.Filename)
	assert.Equal(t, "My Square Painting", first.Name)
	assert.Equal(t, "The Artist", first.Artist)
	assert.Equal(t, 1, first.Width)
	assert.Equal(t, 1, first.Height)

	last := manifest.Paintings[3]
	assert.Equal(t, "Test_Square_4x4", last.ID)
	assert.Equal(t, 4, last.Width)
	assert.Equal(t, 4, last.Height)

	// The returned pack matches the manifest on disk.
	assert.Equal(t, pack, manifest)
}

func TestExportFileAndRecordCounts(t *testing.T) {
	service := newTestExportService()
	exportRoot := t.TempDir()
	source := createTestImageFile(t, filepath.Join(exportRoot, "source.png"), 800, 600)

	wideItem := models.ExportItem{
		SourcePath:  source,
		AspectClass: models.Wide,
		ID:          "Banner",
		Filename:    "banner",
		Name:        "Banner",
		Artist:      "The Artist",
		Included:    true,
	}

	pack, err := service.Export(testPackMeta(), []models.ExportItem{testSquareItem(source), wideItem}, exportRoot)
	require.NoError(t, err)

	// Square has 4 multiples, Wide has 2.
	assert.Equal(t, 6, pack.PaintingCount())

	entries, err := os.ReadDir(filepath.Join(exportRoot, "My_Test_Pack", ImagesDirName))
	require.NoError(t, err)
	assert.Len(t, entries, 6)

	// Records accumulate in item order, then size order within an item.
	expectedIDs := []string{
		"Test_Square_1x1", "Test_Square_2x2", "Test_Square_3x3", "Test_Square_4x4",
		"Banner_2x1", "Banner_4x2",
	}

	for index, painting := range pack.Paintings {
		assert.Equal(t, expectedIDs[index], painting.ID)
	}
}

func TestExportCapsImageWidth(t *testing.T) {
	service := newTestExportService()
	exportRoot := t.TempDir()
	source := createTestImageFile(t, filepath.Join(exportRoot, "source.png"), 4096, 2048)

	_, err := service.Export(testPackMeta(), []models.ExportItem{testSquareItem(source)}, exportRoot)
	require.NoError(t, err)

	imagesDir := filepath.Join(exportRoot, "My_Test_Pack", ImagesDirName)

	/*
	 * The square crop of a 4096x2048 source is 2048x2048, which is over
	 * the cap. Every written multiple shares the same capped buffer; the
	 * nominal manifest sizes alone differ.
	 */
	for _, size := range models.Square.Sizes() {
		filename := fmt.Sprintf("Test_Square_test_square_file_%dx%d.png", size.Width, size.Height)
		img, err := imaging.Open(filepath.Join(imagesDir, filename))

		require.NoError(t, err)
		assert.Equal(t, ExportWidthCap, img.Bounds().Dx())
		assert.Equal(t, ExportWidthCap, img.Bounds().Dy())
	}
}

func TestExportMissingIDFailsWholeExport(t *testing.T) {
	service := newTestExportService()
	exportRoot := t.TempDir()
	source := createTestImageFile(t, filepath.Join(exportRoot, "source.png"), 800, 600)

	item := testSquareItem(source)
	item.ID = ""

	_, err := service.Export(testPackMeta(), []models.ExportItem{item}, exportRoot)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingItemID)

	// No manifest is written on a failed export.
	assert.NoFileExists(t, filepath.Join(exportRoot, "My_Test_Pack", ManifestFilename))
}

func TestExportMissingFilenameFailsWholeExport(t *testing.T) {
	service := newTestExportService()
	exportRoot := t.TempDir()
	source := createTestImageFile(t, filepath.Join(exportRoot, "source.png"), 800, 600)

	item := testSquareItem(source)
	item.Filename = "   "

	_, err := service.Export(testPackMeta(), []models.ExportItem{item}, exportRoot)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingItemFilename)
}

func TestExportDecodeFailureAbortsAndLeavesPartialOutput(t *testing.T) {
	service := newTestExportService()
	exportRoot := t.TempDir()
	source := createTestImageFile(t, filepath.Join(exportRoot, "source.png"), 800, 600)

	broken := testSquareItem(filepath.Join(exportRoot, "missing.png"))

	_, err := service.Export(testPackMeta(), []models.ExportItem{testSquareItem(source), broken}, exportRoot)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	// Files written before the failure stay on disk; no cleanup happens.
	assert.FileExists(t, filepath.Join(exportRoot, "My_Test_Pack", ImagesDirName, "Test_Square_test_square_file_1x1.png"))
	assert.NoFileExists(t, filepath.Join(exportRoot, "My_Test_Pack", ManifestFilename))
}

func TestBundleDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/exports", "My_Test_Pack"), BundleDir("/tmp/exports", "My Test Pack"))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "My_Test_Pack", sanitizeName("My Test Pack"))
	assert.Equal(t, "no_change", sanitizeName("no_change"))
}

func TestSanitizeID(t *testing.T) {
	assert.Equal(t, "my_test_id", sanitizeID("My Test ID!"))
	assert.Equal(t, "pack_42", sanitizeID("Pack 42"))
	assert.Equal(t, "", sanitizeID("!@#$"))
}
