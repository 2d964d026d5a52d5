package estimation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRecord_Valid(t *testing.T) {
	t.Parallel()
	if err := ValidateRecord(0, record("rack", "Dell", "R740", 1)); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}
}

func TestValidateRecord_NotAnObject(t *testing.T) {
	t.Parallel()
	for _, raw := range []any{nil, "rack", 42.0, []any{"rack"}, true} {
		err := ValidateRecord(0, raw)
		if err == nil {
			t.Errorf("expected error for %T value, got none", raw)
			continue
		}
		if !strings.Contains(err.Error(), "object") {
			t.Errorf("expected object reason for %T value, got %q", raw, err.Error())
		}
	}
}

func TestValidateRecord_MissingFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		record    map[string]any
		wantField string
	}{
		{
			name:      "absent type",
			record:    map[string]any{"manufacturer": "Dell", "model": "R740", "quantity": 1.0},
			wantField: "type",
		},
		{
			name:      "absent manufacturer",
			record:    map[string]any{"type": "rack", "model": "R740", "quantity": 1.0},
			wantField: "manufacturer",
		},
		{
			name:      "absent model",
			record:    map[string]any{"type": "rack", "manufacturer": "Dell", "quantity": 1.0},
			wantField: "model",
		},
		{
			name:      "absent quantity",
			record:    map[string]any{"type": "rack", "manufacturer": "Dell", "model": "R740"},
			wantField: "quantity",
		},
		// Falsy values deliberately count as missing.
		{
			name:      "null model",
			record:    map[string]any{"type": "rack", "manufacturer": "Dell", "model": nil, "quantity": 1.0},
			wantField: "model",
		},
		{
			name:      "empty manufacturer",
			record:    map[string]any{"type": "rack", "manufacturer": "", "model": "R740", "quantity": 1.0},
			wantField: "manufacturer",
		},
		{
			name:      "zero quantity reads as missing before positivity check",
			record:    map[string]any{"type": "rack", "manufacturer": "Dell", "model": "R740", "quantity": 0.0},
			wantField: "quantity",
		},
		{
			name:      "false type",
			record:    map[string]any{"type": false, "manufacturer": "Dell", "model": "R740", "quantity": 1.0},
			wantField: "type",
		},
		{
			name:      "first missing field wins",
			record:    map[string]any{"model": "R740"},
			wantField: "type",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRecord(3, tt.record)
			if err == nil {
				t.Fatal("expected validation error, got none")
			}

			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %T", err)
			}
			if invalid.Index != 3 {
				t.Errorf("expected index 3, got %d", invalid.Index)
			}
			if !strings.Contains(invalid.Reason, `"`+tt.wantField+`"`) {
				t.Errorf("expected reason to name field %q, got %q", tt.wantField, invalid.Reason)
			}
		})
	}
}

func TestValidateRecord_InvalidType(t *testing.T) {
	t.Parallel()
	for _, serverType := range []any{"tower", "RACK", "mainframe", 5.0} {
		err := ValidateRecord(0, map[string]any{
			"type":         serverType,
			"manufacturer": "Dell",
			"model":        "R740",
			"quantity":     1.0,
		})
		if err == nil {
			t.Errorf("expected error for type %v, got none", serverType)
			continue
		}
		if !strings.Contains(err.Error(), "type must be one of") {
			t.Errorf("expected type enum reason for %v, got %q", serverType, err.Error())
		}
	}
}

func TestValidateRecord_InvalidQuantity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		quantity   any
		wantReason string
	}{
		{name: "negative", quantity: -1.0, wantReason: "greater than zero"},
		{name: "string number", quantity: "five", wantReason: "must be a number"},
		{name: "object", quantity: map[string]any{"n": 5.0}, wantReason: "must be a number"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRecord(0, map[string]any{
				"type":         "rack",
				"manufacturer": "Dell",
				"model":        "R740",
				"quantity":     tt.quantity,
			})
			if err == nil {
				t.Fatal("expected quantity error, got none")
			}
			if !strings.Contains(err.Error(), "quantity") || !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("expected quantity-specific reason containing %q, got %q", tt.wantReason, err.Error())
			}
		})
	}
}

func TestInvalidInputError_MessageCarriesIndex(t *testing.T) {
	t.Parallel()
	err := &InvalidInputError{Index: 7, Reason: `missing field "model"`}
	want := `server record 7: missing field "model"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
