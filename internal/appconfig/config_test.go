package appconfig

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadMaxHistorySize(t *testing.T) {
	cfg := Default()
	cfg.MaxHistorySize = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for max_history_size=0")
	}
	var invalid *ErrInvalidConfig
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidConfig, got %T", err)
	}
	if invalid.Field != "max_history_size" {
		t.Errorf("Field = %q, want max_history_size", invalid.Field)
	}
}

func TestValidateRejectsBadInputMethod(t *testing.T) {
	cfg := Default()
	cfg.InputMethod = "Unikey"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown input_method")
	}
}
