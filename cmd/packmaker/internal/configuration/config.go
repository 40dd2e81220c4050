package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"" description:"S3 bucket to publish finished bundles to. Publishing is disabled when blank"`
	BundleFolder       string `flag:"bf" env:"BUNDLE_FOLDER" default:"bundles" description:"S3 folder for published bundles"`
	ExportRoot         string `flag:"exportroot" env:"EXPORT_ROOT" default:"./exports" description:"Directory bundles are exported into"`
	Host               string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxPreviewWorkers  int    `flag:"mpw" env:"MAX_PREVIEW_WORKERS" default:"4" description:"Maximum number of concurrent preview workers"`
	PreviewMaxWidth    int    `flag:"pmw" env:"PREVIEW_MAX_WIDTH" default:"480" description:"Maximum width in pixels of inline preview images"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
