package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/pricing"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// efficiencyRequest evaluates one delivery. Dataset optionally replaces the
// bundled dataset for this request only.
type efficiencyRequest struct {
	Item    string                `json:"item"`
	Reward  float64               `json:"reward"`
	Mode    domain.EfficiencyMode `json:"mode"`
	Dataset json.RawMessage       `json:"dataset,omitempty"`
}

type errorBody struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind,omitempty"`
	Item  string           `json:"item,omitempty"`
}

type functionHandler struct {
	loader    dataset.Loader
	pricing   pricing.Service
	cacheSize int
	cacheTTL  time.Duration
}

func (h *functionHandler) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req efficiencyRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(http.StatusBadRequest, "invalid JSON: "+err.Error())
	}
	if req.Item == "" {
		return errResp(http.StatusBadRequest, "missing item")
	}
	if req.Reward < 0 {
		return errResp(http.StatusBadRequest, "reward must not be negative")
	}
	if req.Mode == "" {
		req.Mode = domain.ModeBest
	}

	svc := h.pricing
	if len(req.Dataset) > 0 {
		ds, err := h.loader.Parse(req.Dataset, dataset.FormatJSON)
		if err != nil {
			return errResp(http.StatusBadRequest, err.Error())
		}
		store, err := dataset.NewStore(ds)
		if err != nil {
			return errResp(http.StatusBadRequest, err.Error())
		}
		svc = pricing.NewService(store, h.cacheSize, h.cacheTTL)
	}

	result, err := svc.EvaluateEfficiency(ctx, req.Item, req.Reward, req.Mode)
	if err != nil {
		return serviceErrResp(err)
	}

	respJSON, err := json.Marshal(result.Formatted())
	if err != nil {
		return errResp(http.StatusInternalServerError, "failed to encode result")
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func serviceErrResp(err error) (events.LambdaFunctionURLResponse, error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidEfficiencyMode):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMaterialPriceMissing),
		errors.Is(err, domain.ErrCircularDependency),
		errors.Is(err, domain.ErrGenericCost):
		status = http.StatusUnprocessableEntity
	}

	resp := errorBody{Error: err.Error()}
	if re, ok := domain.AsResolveError(err); ok {
		resp.Kind = re.Kind
		resp.Item = re.Name
	}
	body, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: status, Headers: jsonHeader, Body: string(body)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(errorBody{Error: msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
