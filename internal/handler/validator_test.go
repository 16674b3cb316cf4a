package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type modeStruct struct {
	Mode string `validate:"efficiency_mode"`
}

type recipeStruct struct {
	Category string `validate:"required,category"`
	Item     string `validate:"required,max=100,excludesall=\x00\n\r\t"`
}

func TestValidator_EfficiencyMode(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"best", "best", false},
		{"tier 1", "1", false},
		{"tier 10", "10", false},
		{"uppercase", "BEST", false},
		{"empty allowed", "", false},
		{"delivery count is not a tier", "25", true},
		{"unknown", "fastest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(modeStruct{Mode: tt.mode})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Category(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{"processed good", "processed_good", false},
		{"weaving", "weaving", false},
		{"smithing", "smithing", false},
		{"case sensitive", "Smithing", true},
		{"unknown", "millinery", true},
		{"required", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(recipeStruct{Category: tt.category, Item: "sword"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ItemName(t *testing.T) {
	InitValidator()
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(recipeStruct{Category: "cooking", Item: strings.Repeat("a", 100)}))
	assert.Error(t, v.ValidateStruct(recipeStruct{Category: "cooking", Item: strings.Repeat("a", 101)}))
	assert.Error(t, v.ValidateStruct(recipeStruct{Category: "cooking", Item: "bad\nname"}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	err := v.ValidateStruct(recipeStruct{Category: "millinery", Item: ""})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["item"])
	assert.Contains(t, fields["category"], "processed_good")

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
