package previews

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/api"
	"github.com/Zephrnos/painting-pack-maker/pkg/services"
)

type PreviewControllerConfig struct {
	CropService    services.CropServicer
	PreviewService services.PreviewServicer
}

type PreviewController struct {
	cropService    services.CropServicer
	previewService services.PreviewServicer
}

func NewPreviewController(config PreviewControllerConfig) PreviewController {
	return PreviewController{
		cropService:    config.CropService,
		previewService: config.PreviewService,
	}
}

type previewsRequest struct {
	Paths []string `json:"paths"`
}

type previewsResponse struct {
	Path     string   `json:"path"`
	Previews []string `json:"previews,omitempty"`
	Error    string   `json:"error,omitempty"`
}

/*
POST /api/previews

Generates inline previews, one per aspect class, for each requested photo.
A photo that cannot be decoded reports its error in place without failing
the rest of the batch.
*/
func (c PreviewController) GeneratePreviews(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		request previewsRequest
	)

	if err = api.ReadJson(r, &request); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if len(request.Paths) == 0 {
		api.WriteError(w, http.StatusBadRequest, "at least one path is required")
		return
	}

	results := c.previewService.PreviewBatch(request.Paths)
	response := []previewsResponse{}

	for _, result := range results {
		converted := previewsResponse{
			Path:     result.Path,
			Previews: result.Previews,
		}

		if result.Err != nil {
			slog.Error("error generating previews", "path", result.Path, "error", result.Err)
			converted.Error = result.Err.Error()
		}

		response = append(response, converted)
	}

	api.WriteJson(w, http.StatusOK, response)
}

type cropRequest struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

/*
POST /api/images/crop

Crops the image at the given path to the given rectangle, overwriting the
file in place.
*/
func (c PreviewController) CropImage(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		request cropRequest
	)

	if err = api.ReadJson(r, &request); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if request.Path == "" {
		api.WriteError(w, http.StatusBadRequest, "path is required")
		return
	}

	if err = c.cropService.CropFileInPlace(request.Path, request.X, request.Y, request.Width, request.Height); err != nil {
		slog.Error("error cropping image in place", "path", request.Path, "error", err)

		if errors.Is(err, services.ErrDecode) {
			api.WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httphelpers.TextOK(w, "OK")
}
