package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/pricing"
)

// ItemValueResponse is returned by the scalar item queries
type ItemValueResponse struct {
	Item  string  `json:"item"`
	Value float64 `json:"value"`
}

// EfficiencyRequest asks for the delivery economics of one item
type EfficiencyRequest struct {
	Item   string  `json:"item" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Reward float64 `json:"reward" validate:"gte=0"`
	Mode   string  `json:"mode" validate:"required,efficiency_mode"`
}

// BatchEfficiencyRequest evaluates several items against the same dataset version
type BatchEfficiencyRequest struct {
	Queries []EfficiencyRequest `json:"queries" validate:"required,min=1,max=200,dive"`
}

// BatchEfficiencyEntry is one line of a batch response. Exactly one of Result and Error is set.
type BatchEfficiencyEntry struct {
	Item   string                   `json:"item"`
	Mode   domain.EfficiencyMode    `json:"mode"`
	Result *domain.EfficiencyResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`
	Kind   domain.ErrorKind         `json:"kind,omitempty"`
}

// BatchEfficiencyResponse wraps the batch entries in request order
type BatchEfficiencyResponse struct {
	Results []BatchEfficiencyEntry `json:"results"`
}

// StaminaValueResponse reports the coin value of stamina at a work-life-balance level
type StaminaValueResponse struct {
	Level int     `json:"level"`
	Value float64 `json:"value"`
}

type scalarQuery func(ctx context.Context, name string) (float64, error)

func handleItemValue(opName string, query scalarQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if strings.TrimSpace(name) == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingItemName)
			return
		}

		value, err := query(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, ItemValueResponse{Item: name, Value: value})
	}
}

// HandleGetItemCost returns the total cost of an item
// @Summary Get total cost
// @Description Material cost plus stamina priced at the dataset's stamina value
// @Tags valuation
// @Produce json
// @Param name path string true "Material or recipe name"
// @Success 200 {object} ItemValueResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/items/{name}/cost [get]
func HandleGetItemCost(svc pricing.Service) http.HandlerFunc {
	return handleItemValue("Resolve cost", svc.ResolveCost)
}

// HandleGetMaterialCost returns the coin cost of the raw materials behind an item
// @Summary Get material cost
// @Tags valuation
// @Produce json
// @Param name path string true "Material or recipe name"
// @Success 200 {object} ItemValueResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/items/{name}/material-cost [get]
func HandleGetMaterialCost(svc pricing.Service) http.HandlerFunc {
	return handleItemValue("Resolve material cost", svc.ResolveMaterialCost)
}

// HandleGetStamina returns the stamina needed to craft an item from scratch
// @Summary Get stamina
// @Tags valuation
// @Produce json
// @Param name path string true "Material or recipe name"
// @Success 200 {object} ItemValueResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/items/{name}/stamina [get]
func HandleGetStamina(svc pricing.Service) http.HandlerFunc {
	return handleItemValue("Resolve stamina", svc.ResolveStamina)
}

// HandleGetBreakdown returns the resolved cost tree of an item
// @Summary Get cost breakdown
// @Tags valuation
// @Produce json
// @Param name path string true "Material or recipe name"
// @Success 200 {object} domain.CostNode
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/items/{name}/breakdown [get]
func HandleGetBreakdown(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		node, err := svc.Breakdown(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, "Breakdown", err)
			return
		}
		respondJSON(w, http.StatusOK, node)
	}
}

// HandleEvaluateEfficiency evaluates a delivery run for one item
// @Summary Evaluate delivery efficiency
// @Description Mode "best" searches for the recommended delivery count; the other modes simulate a fixed milestone
// @Tags valuation
// @Accept json
// @Produce json
// @Param request body EfficiencyRequest true "Efficiency query"
// @Success 200 {object} domain.EfficiencyResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/efficiency [post]
func HandleEvaluateEfficiency(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EfficiencyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Evaluate efficiency"); err != nil {
			return
		}

		result, err := svc.EvaluateEfficiency(r.Context(), req.Item, req.Reward, normalizeMode(req.Mode))
		if err != nil {
			respondServiceError(w, r, "Evaluate efficiency", err)
			return
		}

		logger.FromContext(r.Context()).Info("Efficiency evaluated",
			"item", req.Item,
			"mode", req.Mode,
			"recommend", result.Recommend)
		respondJSON(w, http.StatusOK, result.Formatted())
	}
}

// HandleEvaluateBatch evaluates several efficiency queries at once
// @Summary Evaluate efficiency in bulk
// @Description Per-item failures are reported inline; the request only fails as a whole when it is malformed
// @Tags valuation
// @Accept json
// @Produce json
// @Param request body BatchEfficiencyRequest true "Efficiency queries"
// @Success 200 {object} BatchEfficiencyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/efficiency/batch [post]
func HandleEvaluateBatch(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchEfficiencyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Evaluate batch"); err != nil {
			return
		}

		queries := make([]pricing.EfficiencyQuery, len(req.Queries))
		for i, q := range req.Queries {
			queries[i] = pricing.EfficiencyQuery{Item: q.Item, Reward: q.Reward, Mode: normalizeMode(q.Mode)}
		}

		entries, err := svc.EvaluateBatch(r.Context(), queries)
		if err != nil {
			respondServiceError(w, r, "Evaluate batch", err)
			return
		}

		resp := BatchEfficiencyResponse{Results: make([]BatchEfficiencyEntry, len(entries))}
		for i, e := range entries {
			out := BatchEfficiencyEntry{Item: e.Query.Item, Mode: e.Query.Mode}
			if e.Err != nil {
				_, out.Error = mapServiceErrorToUserMessage(e.Err)
				if re, ok := domain.AsResolveError(e.Err); ok {
					out.Kind = re.Kind
				}
			} else {
				formatted := e.Result.Formatted()
				out.Result = &formatted
			}
			resp.Results[i] = out
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetStaminaValue converts a work-life-balance level into a stamina value
// @Summary Stamina value for a work-life-balance level
// @Tags valuation
// @Produce json
// @Param level query int true "Work-life-balance level"
// @Success 200 {object} StaminaValueResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/stamina-value [get]
func HandleGetStaminaValue(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level, ok := GetIntQueryParam(r, w, "level")
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, StaminaValueResponse{Level: level, Value: svc.StaminaValue(level)})
	}
}

func normalizeMode(mode string) domain.EfficiencyMode {
	return domain.EfficiencyMode(strings.ToLower(strings.TrimSpace(mode)))
}
