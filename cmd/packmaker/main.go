package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/catalog"
	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/configuration"
	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/export"
	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/previews"
	"github.com/Zephrnos/painting-pack-maker/pkg/services"
)

var (
	Version string = "development"
	appName string = "painting-pack-maker"

	config configuration.Config

	/* Services */
	catalogService services.CatalogServicer
	cropService    services.CropServicer
	exportService  services.ExportServicer
	previewService services.PreviewServicer
	publishService services.PublishServicer

	/* Controllers */
	catalogController catalog.CatalogController
	exportController  export.ExportController
	previewController previews.PreviewController
)

func main() {
	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("exportRoot", config.ExportRoot),
		slog.String("awsBucket", config.AwsBucket),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	cropService = services.NewCropService()
	catalogService = services.NewCatalogService()

	previewService = services.NewPreviewService(services.PreviewServiceConfig{
		CropService:     cropService,
		MaxWorkers:      config.MaxPreviewWorkers,
		PreviewMaxWidth: config.PreviewMaxWidth,
	})

	exportService = services.NewExportService(services.ExportServiceConfig{
		CropService: cropService,
	})

	/*
	 * Publishing is optional. Without a bucket the export endpoint simply
	 * refuses publish requests.
	 */
	if config.AwsBucket != "" {
		publishService = setupPublishService(&config)
	}

	/*
	 * Setup controllers
	 */
	catalogController = catalog.NewCatalogController(catalog.CatalogControllerConfig{
		CatalogService: catalogService,
	})

	previewController = previews.NewPreviewController(previews.PreviewControllerConfig{
		CropService:    cropService,
		PreviewService: previewService,
	})

	exportController = export.NewExportController(export.ExportControllerConfig{
		CatalogService: catalogService,
		ExportService:  exportService,
		ExportRoot:     config.ExportRoot,
		PublishService: publishService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLogger := newRequestLoggerMiddleware([]string{
		"/heartbeat",
	})

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "POST /api/previews", HandlerFunc: previewController.GeneratePreviews, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST /api/images/crop", HandlerFunc: previewController.CropImage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST /api/items", HandlerFunc: catalogController.AddItem, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /api/items", HandlerFunc: catalogController.ListItems, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "PUT /api/items/{index}", HandlerFunc: catalogController.UpdateItem, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "PUT /api/items/{index}/toggle", HandlerFunc: catalogController.ToggleItem, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "DELETE /api/items/{index}", HandlerFunc: catalogController.RemoveItem, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /api/pack", HandlerFunc: exportController.GetPackMeta, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "PUT /api/pack", HandlerFunc: exportController.UpdatePackMeta, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST /api/export", HandlerFunc: exportController.Export, Middlewares: []mux.MiddlewareFunc{requestLogger}},
	}

	routerConfig := mux.RouterConfig{
		Address:          config.Host,
		Debug:            Version == "development",
		HttpWriteTimeout: 120,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func setupLogger(config *configuration.Config, version string) {
	level := slog.LevelInfo

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if version == "development" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	}
}

func setupPublishService(config *configuration.Config) services.PublishServicer {
	var (
		err error
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	return services.NewPublishService(services.PublishServiceConfig{
		Bucket:       config.AwsBucket,
		BundleFolder: config.BundleFolder,
		Region:       config.AwsRegion,
		S3Client:     s3Client,
	})
}
