package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftValue_Go/internal/catalog"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/logger"
)

// DatasetVersionHeader carries the dataset version a response was produced from
const DatasetVersionHeader = "X-Dataset-Version"

// DatasetHandler serves the dataset editing endpoints
type DatasetHandler struct {
	service catalog.Service
	loader  dataset.Loader
}

// NewDatasetHandler creates a DatasetHandler
func NewDatasetHandler(service catalog.Service, loader dataset.Loader) *DatasetHandler {
	return &DatasetHandler{
		service: service,
		loader:  loader,
	}
}

// PutMaterialRequest sets the unit price of a material
type PutMaterialRequest struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// PutRecipeRequest creates or replaces a recipe
type PutRecipeRequest struct {
	Category    string             `json:"category" validate:"required,category"`
	Stamina     float64            `json:"stamina" validate:"gte=0"`
	Ingredients map[string]float64 `json:"ingredients" validate:"dive,keys,required,endkeys,gt=0"`
}

// NamedDatasetRequest names a stored dataset
type NamedDatasetRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t/"`
}

// SettingsResponse returns the settings after a patch
type SettingsResponse struct {
	Settings domain.Settings `json:"settings"`
	Version  uint64          `json:"version"`
}

// DatasetRecordResponse describes a stored dataset
type DatasetRecordResponse struct {
	Message  string `json:"message"`
	Name     string `json:"name"`
	Revision int64  `json:"revision"`
	Version  uint64 `json:"version,omitempty"`
}

// ExportResponse reports where the dataset was written
type ExportResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// HandleGetDataset returns the active dataset document
// @Summary Get active dataset
// @Tags dataset
// @Produce json
// @Produce application/yaml
// @Param format query string false "json (default) or yaml"
// @Success 200 {object} domain.Dataset
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/dataset [get]
func (h *DatasetHandler) HandleGetDataset(w http.ResponseWriter, r *http.Request) {
	format, ok := dataset.ParseFormat(GetOptionalQueryParam(r, "format", ""))
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgUnsupportedFormat)
		return
	}

	ds, version := h.service.Dataset(r.Context())
	body, err := h.loader.Encode(ds, format)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to encode dataset", "format", format, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgEncodeFailed)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set(DatasetVersionHeader, strconv.FormatUint(version, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// HandleReplaceDataset replaces the active dataset with the request body
// @Summary Replace active dataset
// @Description The body is a full dataset document in JSON or YAML
// @Tags dataset
// @Accept json
// @Accept application/yaml
// @Produce json
// @Param format query string false "json or yaml; defaults to the Content-Type"
// @Success 200 {object} VersionedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/dataset [put]
func (h *DatasetHandler) HandleReplaceDataset(w http.ResponseWriter, r *http.Request) {
	format, ok := requestFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgUnsupportedFormat)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, dataset.MaxDocumentSize+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return
	}
	if len(body) > dataset.MaxDocumentSize {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgDatasetTooLarge)
		return
	}

	ds, err := h.loader.Parse(body, format)
	if err != nil {
		respondDatasetError(w, r, "Parse dataset", err)
		return
	}

	version, err := h.service.ReplaceDataset(r.Context(), ds)
	if err != nil {
		respondDatasetError(w, r, "Replace dataset", err)
		return
	}
	respondJSON(w, http.StatusOK, VersionedResponse{Message: MsgDatasetReplaced, Version: version})
}

// HandlePutMaterial creates or reprices a material
// @Summary Put material
// @Tags dataset
// @Accept json
// @Produce json
// @Param name path string true "Material name"
// @Param request body PutMaterialRequest true "Unit price"
// @Success 200 {object} VersionedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/materials/{name} [put]
func (h *DatasetHandler) HandlePutMaterial(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req PutMaterialRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Put material"); err != nil {
		return
	}

	version, err := h.service.PutMaterial(r.Context(), name, req.Price)
	if err != nil {
		respondDatasetError(w, r, "Put material", err)
		return
	}
	respondJSON(w, http.StatusOK, VersionedResponse{Message: MsgMaterialSaved, Version: version})
}

// HandleDeleteMaterial removes a material
// @Summary Delete material
// @Tags dataset
// @Produce json
// @Param name path string true "Material name"
// @Success 200 {object} VersionedResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/materials/{name} [delete]
func (h *DatasetHandler) HandleDeleteMaterial(w http.ResponseWriter, r *http.Request) {
	version, err := h.service.RemoveMaterial(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondDatasetError(w, r, "Delete material", err)
		return
	}
	respondJSON(w, http.StatusOK, VersionedResponse{Message: MsgMaterialRemoved, Version: version})
}

// HandlePutRecipe creates or replaces a recipe
// @Summary Put recipe
// @Tags dataset
// @Accept json
// @Produce json
// @Param name path string true "Recipe name"
// @Param request body PutRecipeRequest true "Recipe"
// @Success 200 {object} VersionedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/recipes/{name} [put]
func (h *DatasetHandler) HandlePutRecipe(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req PutRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Put recipe"); err != nil {
		return
	}

	recipe := domain.Recipe{
		Category:    domain.Category(req.Category),
		Stamina:     req.Stamina,
		Ingredients: req.Ingredients,
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = map[string]float64{}
	}

	version, err := h.service.PutRecipe(r.Context(), name, recipe)
	if err != nil {
		respondDatasetError(w, r, "Put recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, VersionedResponse{Message: MsgRecipeSaved, Version: version})
}

// HandleDeleteRecipe removes a recipe
// @Summary Delete recipe
// @Tags dataset
// @Produce json
// @Param name path string true "Recipe name"
// @Success 200 {object} VersionedResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{name} [delete]
func (h *DatasetHandler) HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	version, err := h.service.RemoveRecipe(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondDatasetError(w, r, "Delete recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, VersionedResponse{Message: MsgRecipeRemoved, Version: version})
}

// HandlePatchSettings applies a partial settings update
// @Summary Patch settings
// @Description Setting wlb_level derives stamina_cost; clear_wlb_level switches back to a fixed stamina_cost
// @Tags dataset
// @Accept json
// @Produce json
// @Param request body domain.SettingsPatch true "Settings fields to change"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/settings [patch]
func (h *DatasetHandler) HandlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := DecodeAndValidateRequest(r, w, &patch, "Patch settings"); err != nil {
		return
	}

	settings, version, err := h.service.UpdateSettings(r.Context(), patch)
	if err != nil {
		respondDatasetError(w, r, "Patch settings", err)
		return
	}
	respondJSON(w, http.StatusOK, SettingsResponse{Settings: settings, Version: version})
}

// HandleSaveDataset stores the active dataset under a name
// @Summary Save dataset
// @Tags dataset
// @Accept json
// @Produce json
// @Param request body NamedDatasetRequest true "Dataset name"
// @Success 200 {object} DatasetRecordResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/dataset/save [post]
func (h *DatasetHandler) HandleSaveDataset(w http.ResponseWriter, r *http.Request) {
	var req NamedDatasetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save dataset"); err != nil {
		return
	}

	record, err := h.service.Save(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, "Save dataset", err)
		return
	}
	respondJSON(w, http.StatusOK, DatasetRecordResponse{
		Message:  fmt.Sprintf("Dataset %s saved", record.Name),
		Name:     record.Name,
		Revision: record.Revision,
	})
}

// HandleLoadDataset replaces the active dataset with a stored one
// @Summary Load dataset
// @Tags dataset
// @Accept json
// @Produce json
// @Param request body NamedDatasetRequest true "Dataset name"
// @Success 200 {object} DatasetRecordResponse
// @Failure 404 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/dataset/load [post]
func (h *DatasetHandler) HandleLoadDataset(w http.ResponseWriter, r *http.Request) {
	var req NamedDatasetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Load dataset"); err != nil {
		return
	}

	record, err := h.service.Load(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, "Load dataset", err)
		return
	}

	_, version := h.service.Dataset(r.Context())
	respondJSON(w, http.StatusOK, DatasetRecordResponse{
		Message:  MsgDatasetLoaded,
		Name:     record.Name,
		Revision: record.Revision,
		Version:  version,
	})
}

// HandleListDatasets lists the stored datasets
// @Summary List stored datasets
// @Tags dataset
// @Produce json
// @Success 200 {array} domain.DatasetSummary
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/datasets [get]
func (h *DatasetHandler) HandleListDatasets(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "List datasets", err)
		return
	}
	if summaries == nil {
		summaries = []domain.DatasetSummary{}
	}
	respondJSON(w, http.StatusOK, summaries)
}

// HandleExportDataset writes the active dataset to the configured file
// @Summary Export dataset to file
// @Tags dataset
// @Produce json
// @Success 200 {object} ExportResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/dataset/export [post]
func (h *DatasetHandler) HandleExportDataset(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.Export(r.Context())
	if err != nil {
		respondServiceError(w, r, "Export dataset", err)
		return
	}
	respondJSON(w, http.StatusOK, ExportResponse{Message: MsgDatasetExported, Path: path})
}

// respondDatasetError reports validation failures with their detail, since the
// detail names the offending entry and leaks nothing internal.
func respondDatasetError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	if errors.Is(err, domain.ErrInvalidDataset) || errors.Is(err, domain.ErrNameConflict) || errors.Is(err, domain.ErrInvalidInput) {
		status, _ := mapServiceErrorToUserMessage(err)
		respondJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}
	respondServiceError(w, r, opName, err)
}

func requestFormat(r *http.Request) (dataset.Format, bool) {
	if q := r.URL.Query().Get("format"); q != "" {
		return dataset.ParseFormat(q)
	}
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		return dataset.FormatYAML, true
	}
	return dataset.FormatJSON, true
}

func contentType(format dataset.Format) string {
	if format == dataset.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}
