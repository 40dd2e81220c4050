package services

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
)

type PublishServicer interface {
	PublishBundle(packDir string) error
}

type PublishServiceConfig struct {
	Bucket       string
	BundleFolder string
	Region       string
	S3Client     s3.S3Client
}

/*
PublishService uploads a finished bundle directory to S3 so the pack can
be distributed from a URL instead of passed around by hand. Publishing is
an optional step after a successful export; export success never depends
on it.
*/
type PublishService struct {
	bucket       string
	bundleFolder string
	region       string
	s3Client     s3.S3Client
}

func NewPublishService(config PublishServiceConfig) PublishService {
	return PublishService{
		bucket:       config.Bucket,
		bundleFolder: config.BundleFolder,
		region:       config.Region,
		s3Client:     config.S3Client,
	}
}

/*
PublishBundle walks the bundle directory and uploads every file, keyed by
its path relative to the export root, e.g. "bundles/My_Pack/images/a_1x1.png".
*/
func (s PublishService) PublishBundle(packDir string) error {
	var (
		err error
	)

	if err = s.ensureBucketExists(); err != nil {
		return err
	}

	packName := filepath.Base(packDir)
	uploaded := 0

	err = filepath.WalkDir(packDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			return nil
		}

		relativePath, err := filepath.Rel(packDir, path)

		if err != nil {
			return fmt.Errorf("error resolving relative path for '%s': %w", path, err)
		}

		key := filepath.Join(s.bundleFolder, packName, relativePath)
		f, err := os.Open(path)

		if err != nil {
			return fmt.Errorf("error opening '%s' for upload: %w", path, err)
		}

		defer f.Close()

		if _, err = s.s3Client.Put(s.bucket, key, f); err != nil {
			return fmt.Errorf("error uploading '%s' to S3: %w", key, err)
		}

		uploaded++
		return nil
	})

	if err != nil {
		return fmt.Errorf("error publishing bundle '%s': %w", packDir, err)
	}

	slog.Info("bundle published", "packDir", packDir, "bucket", s.bucket, "files", uploaded)
	return nil
}

func (s PublishService) ensureBucketExists() error {
	var (
		err    error
		exists bool
	)

	exists, err = s.s3Client.BucketExists(s.bucket)

	if err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", s.bucket, err)
	}

	if exists {
		return nil
	}

	slog.Info("creating bucket", "bucketName", s.bucket)

	err = s.s3Client.CreateBucket(
		s.bucket,
		createbucketoptions.WithRegion(s.region),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", s.bucket, err)
	}

	return nil
}
