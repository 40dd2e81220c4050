package export

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/api"
	"github.com/Zephrnos/painting-pack-maker/pkg/models"
	"github.com/Zephrnos/painting-pack-maker/pkg/services"
)

type ExportControllerConfig struct {
	CatalogService services.CatalogServicer
	ExportService  services.ExportServicer
	ExportRoot     string
	PublishService services.PublishServicer
}

/*
ExportController owns the working pack metadata and drives the export
pipeline. The metadata starts out as the default scaffold and is replaced
field by field as the user edits it; blank edits are ignored per the pack
setter policy.

Export calls are serialized with a mutex: concurrent exports against the
same directory tree could race on directory creation.
*/
type ExportController struct {
	catalogService services.CatalogServicer
	exportService  services.ExportServicer
	exportRoot     string
	publishService services.PublishServicer

	mutex *sync.Mutex
	meta  *models.PackMeta
}

func NewExportController(config ExportControllerConfig) ExportController {
	meta := models.DefaultPackMeta()

	return ExportController{
		catalogService: config.CatalogService,
		exportService:  config.ExportService,
		exportRoot:     config.ExportRoot,
		publishService: config.PublishService,
		mutex:          &sync.Mutex{},
		meta:           &meta,
	}
}

/*
GET /api/pack
*/
func (c ExportController) GetPackMeta(w http.ResponseWriter, r *http.Request) {
	c.mutex.Lock()
	meta := *c.meta
	c.mutex.Unlock()

	api.WriteJson(w, http.StatusOK, meta)
}

type updatePackRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	ID          string `json:"id"`
	Description string `json:"description"`
}

/*
PUT /api/pack

Applies the pack metadata setters. Blank or whitespace-only fields leave
the prior values in place, so the UI can push its whole form on every
edit.
*/
func (c ExportController) UpdatePackMeta(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		request updatePackRequest
	)

	if err = api.ReadJson(r, &request); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	c.mutex.Lock()
	c.meta.SetName(request.Name)
	c.meta.SetVersion(request.Version)
	c.meta.SetID(request.ID)
	c.meta.SetDescription(request.Description)
	meta := *c.meta
	c.mutex.Unlock()

	api.WriteJson(w, http.StatusOK, meta)
}

type exportRequest struct {
	Publish bool `json:"publish"`
}

type exportResponse struct {
	PackName      string `json:"packName"`
	PaintingCount int    `json:"paintingCount"`
	Published     bool   `json:"published"`
}

/*
POST /api/export

Exports every included catalog item into a bundle directory under the
configured export root, then optionally publishes the bundle to S3.
*/
func (c ExportController) Export(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		request exportRequest
		pack    *models.Pack
	)

	// An empty body means export without publishing.
	_ = api.ReadJson(r, &request)

	items := c.catalogService.Included()

	if len(items) == 0 {
		api.WriteError(w, http.StatusBadRequest, "no items are marked for export")
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if pack, err = c.exportService.Export(*c.meta, items, c.exportRoot); err != nil {
		slog.Error("export failed", "packName", c.meta.Name, "error", err)
		api.WriteError(w, c.exportErrorStatus(err), err.Error())
		return
	}

	slog.Info("export finished", "packName", pack.Name, "paintings", pack.PaintingCount())

	response := exportResponse{
		PackName:      pack.Name,
		PaintingCount: pack.PaintingCount(),
	}

	if request.Publish {
		if c.publishService == nil {
			api.WriteError(w, http.StatusBadRequest, "publishing is not configured")
			return
		}

		packDir := services.BundleDir(c.exportRoot, pack.Name)

		if err = c.publishService.PublishBundle(packDir); err != nil {
			slog.Error("publish failed", "packDir", packDir, "error", err)
			api.WriteError(w, http.StatusBadGateway, err.Error())
			return
		}

		response.Published = true
	}

	api.WriteJson(w, http.StatusOK, response)
}

func (c ExportController) exportErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingItemID), errors.Is(err, models.ErrMissingItemFilename):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDecode):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
