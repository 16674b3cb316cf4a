package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/stamina"
	"github.com/osse101/CraftValue_Go/internal/validation"
)

//go:embed schema/dataset.schema.json
var datasetSchema []byte

// Loader reads, validates and writes dataset documents
type Loader interface {
	LoadFile(path string) (*domain.Dataset, error)
	Parse(data []byte, format Format) (*domain.Dataset, error)
	Fetch(ctx context.Context, url string) (*domain.Dataset, error)
	Encode(ds *domain.Dataset, format Format) ([]byte, error)
	SaveFile(path string, ds *domain.Dataset) error
}

type loader struct {
	schemas validation.SchemaValidator
	client  *http.Client
}

// NewLoader creates a loader that validates documents against the embedded dataset
// schema. A nil client falls back to a client with FetchTimeout.
func NewLoader(client *http.Client) (Loader, error) {
	schemas := validation.NewSchemaValidator()
	if err := schemas.AddSchema(SchemaName, datasetSchema); err != nil {
		return nil, fmt.Errorf("failed to register dataset schema: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: FetchTimeout}
	}
	return &loader{schemas: schemas, client: client}, nil
}

// LoadFile reads a dataset from disk, picking the format from the file extension
func (l *loader) LoadFile(path string) (*domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	ds, err := l.Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a dataset document. The document must carry the materials, recipes
// and settings fields; the result is validated and normalized.
func (l *loader) Parse(data []byte, format Format) (*domain.Dataset, error) {
	doc, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("%w: malformed JSON document", domain.ErrInvalidDataset)
	}
	fields := gjson.GetManyBytes(doc, requiredFields...)
	for i, field := range fields {
		if !field.Exists() {
			return nil, fmt.Errorf("%w: missing required field %q", domain.ErrInvalidDataset, requiredFields[i])
		}
	}

	if err := l.schemas.ValidateBytes(doc, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}

	ds := domain.NewDataset()
	if err := json.Unmarshal(doc, ds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}

	if err := Validate(ds); err != nil {
		return nil, err
	}
	Normalize(ds)
	return ds, nil
}

// Fetch downloads a dataset document over HTTP. YAML is recognised from the
// Content-Type header or the URL extension; anything else is parsed as JSON.
func (l *loader) Fetch(ctx context.Context, url string) (*domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch dataset: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}

	format := FormatFromPath(url)
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		format = FormatYAML
	}
	return l.Parse(body, format)
}

// Encode serializes a dataset in the given format
func (l *loader) Encode(ds *domain.Dataset, format Format) ([]byte, error) {
	if format == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return nil, fmt.Errorf("failed to encode dataset: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode dataset: %w", err)
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	return append(data, '\n'), nil
}

// SaveFile writes a dataset next to path and renames it into place
func (l *loader) SaveFile(path string, ds *domain.Dataset) error {
	data, err := l.Encode(ds, FormatFromPath(path))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".dataset-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace dataset file: %w", err)
	}
	return nil
}

// toJSON converts a document to JSON bytes so every format goes through the same checks
func toJSON(data []byte, format Format) ([]byte, error) {
	if format != FormatYAML {
		return data, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	return out, nil
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a dataset's field constraints, categories and name uniqueness.
// Ingredient references are not checked; unknown names surface when resolved.
func Validate(ds *domain.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: dataset is nil", domain.ErrInvalidDataset)
	}
	if err := structValidator.Struct(ds); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}

	for name, recipe := range ds.Recipes {
		if err := ValidateRecipe(name, recipe); err != nil {
			return err
		}
		if _, clash := ds.Materials[name]; clash {
			return fmt.Errorf("%w: %q is both a material and a recipe", domain.ErrNameConflict, name)
		}
	}
	return nil
}

// ValidateRecipe checks a single recipe entry
func ValidateRecipe(name string, recipe domain.Recipe) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: recipe name is empty", domain.ErrInvalidDataset)
	}
	if !recipe.Category.IsValid() {
		return fmt.Errorf("%w: recipe %q has unknown category %q", domain.ErrInvalidDataset, name, recipe.Category)
	}
	if err := structValidator.Struct(recipe); err != nil {
		return fmt.Errorf("%w: recipe %q: %v", domain.ErrInvalidDataset, name, err)
	}
	return nil
}

// ValidateSettings checks settings bounds
func ValidateSettings(s domain.Settings) error {
	if err := structValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	return nil
}

// Normalize derives StaminaValue from the work-life-balance level when one is set
func Normalize(ds *domain.Dataset) {
	ds.Settings = NormalizeSettings(ds.Settings)
}

// NormalizeSettings returns s with StaminaValue derived from WorkLifeBalanceLevel, if set
func NormalizeSettings(s domain.Settings) domain.Settings {
	if s.WorkLifeBalanceLevel != nil {
		s.StaminaValue = stamina.MonetaryValue(*s.WorkLifeBalanceLevel)
	}
	return s
}
