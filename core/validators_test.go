package core

import (
	"testing"
	"time"
)

func TestSubdomainValidation(t *testing.T) {
	type input struct {
		Subdomain string `json:"subdomain" validate:"subdomain"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "simple", value: "greenwood"},
		{name: "with digits", value: "school42"},
		{name: "with hyphen", value: "green-wood"},
		{name: "single char", value: "x"},
		{name: "uppercase", value: "Greenwood", wantErr: true},
		{name: "leading hyphen", value: "-greenwood", wantErr: true},
		{name: "trailing hyphen", value: "greenwood-", wantErr: true},
		{name: "underscore", value: "green_wood", wantErr: true},
		{name: "space", value: "green wood", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateValidationErrors(Validate.Struct(input{Subdomain: tt.value}))
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil {
				vErr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("error is %T, want *ValidationError", err)
				}
				if msg := vErr.FieldMap()["subdomain"]; msg == "" {
					t.Errorf("no message for the subdomain field: %v", vErr.FieldMap())
				}
			}
		})
	}
}

func TestFutureValidation(t *testing.T) {
	type input struct {
		DueDate time.Time `json:"due_date" validate:"future"`
	}

	tests := []struct {
		name    string
		value   time.Time
		wantErr bool
	}{
		{name: "future", value: time.Now().Add(time.Hour)},
		{name: "past", value: time.Now().Add(-time.Hour), wantErr: true},
		{name: "zero", value: time.Time{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateValidationErrors(Validate.Struct(input{DueDate: tt.value}))
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestTranslateValidationErrorsUsesJSONNames(t *testing.T) {
	type input struct {
		FirstName string `json:"first_name" validate:"required"`
	}

	err := TranslateValidationErrors(Validate.Struct(input{}))
	if err == nil {
		t.Fatal("expected a validation error")
	}
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	if _, found := vErr.FieldMap()["first_name"]; !found {
		t.Errorf("field map keyed by %v, want json tag name first_name", vErr.FieldMap())
	}
}

func TestTranslateValidationErrorsNil(t *testing.T) {
	if err := TranslateValidationErrors(nil); err != nil {
		t.Errorf("TranslateValidationErrors(nil) = %v, want nil", err)
	}
}
