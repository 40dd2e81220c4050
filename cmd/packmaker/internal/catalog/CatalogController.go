package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/Zephrnos/painting-pack-maker/cmd/packmaker/internal/api"
	"github.com/Zephrnos/painting-pack-maker/pkg/models"
	"github.com/Zephrnos/painting-pack-maker/pkg/services"
)

type CatalogControllerConfig struct {
	CatalogService services.CatalogServicer
}

type CatalogController struct {
	catalogService services.CatalogServicer
}

func NewCatalogController(config CatalogControllerConfig) CatalogController {
	return CatalogController{
		catalogService: config.CatalogService,
	}
}

type addItemRequest struct {
	SourcePath  string `json:"sourcePath"`
	AspectClass string `json:"aspectClass"`
}

type addItemResponse struct {
	Index int `json:"index"`
}

/*
POST /api/items
*/
func (c CatalogController) AddItem(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		request addItemRequest
		class   models.AspectClass
	)

	if err = api.ReadJson(r, &request); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if request.SourcePath == "" {
		api.WriteError(w, http.StatusBadRequest, "sourcePath is required")
		return
	}

	if class, err = models.ParseAspectClass(request.AspectClass); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	index := c.catalogService.Add(request.SourcePath, class)
	api.WriteJson(w, http.StatusCreated, addItemResponse{Index: index})
}

/*
GET /api/items
*/
func (c CatalogController) ListItems(w http.ResponseWriter, r *http.Request) {
	api.WriteJson(w, http.StatusOK, c.catalogService.List())
}

type updateItemRequest struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
}

/*
PUT /api/items/{index}
*/
func (c CatalogController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		request updateItemRequest
	)

	index := httphelpers.GetFromRequest[int](r, "index")

	if err = api.ReadJson(r, &request); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := services.ItemUpdate{
		ID:       request.ID,
		Filename: request.Filename,
		Name:     request.Name,
		Artist:   request.Artist,
	}

	if err = c.catalogService.Update(index, update); err != nil {
		c.writeCatalogError(w, err, index)
		return
	}

	httphelpers.TextOK(w, "OK")
}

type toggleItemResponse struct {
	Included bool `json:"included"`
}

/*
PUT /api/items/{index}/toggle
*/
func (c CatalogController) ToggleItem(w http.ResponseWriter, r *http.Request) {
	var (
		err      error
		included bool
	)

	index := httphelpers.GetFromRequest[int](r, "index")

	if included, err = c.catalogService.ToggleIncluded(index); err != nil {
		c.writeCatalogError(w, err, index)
		return
	}

	api.WriteJson(w, http.StatusOK, toggleItemResponse{Included: included})
}

/*
DELETE /api/items/{index}
*/
func (c CatalogController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index := httphelpers.GetFromRequest[int](r, "index")

	if err := c.catalogService.Remove(index); err != nil {
		c.writeCatalogError(w, err, index)
		return
	}

	httphelpers.TextOK(w, "OK")
}

func (c CatalogController) writeCatalogError(w http.ResponseWriter, err error, index int) {
	if errors.Is(err, services.ErrItemNotFound) {
		api.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	slog.Error("catalog operation failed", "index", index, "error", err)
	api.WriteError(w, http.StatusInternalServerError, err.Error())
}
