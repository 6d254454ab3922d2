// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package validation

import (
	"slices"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type testPayload struct {
	FaceShape string `json:"face_shape" validate:"required"`
	HairType  string `json:"hair_type,omitempty" validate:"required"`
	Season    string `json:"season" validate:"omitempty,oneof=spring summer fall winter all"`
	Age       int    `json:"age" validate:"gte=0,lte=120"`
	Untagged  string `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      testPayload
		wantFields []string
		wantMsg    string
	}{
		{
			name:  "all valid",
			input: testPayload{FaceShape: "oval", HairType: "wavy", Untagged: "x"},
		},
		{
			name:       "missing required uses json names",
			input:      testPayload{Untagged: "x"},
			wantFields: []string{"face_shape", "hair_type"},
			wantMsg:    "face_shape is required; hair_type is required",
		},
		{
			name:       "untagged field falls back to go name",
			input:      testPayload{FaceShape: "oval", HairType: "wavy"},
			wantFields: []string{"Untagged"},
			wantMsg:    "Untagged is required",
		},
		{
			name:       "oneof with param",
			input:      testPayload{FaceShape: "oval", HairType: "wavy", Untagged: "x", Season: "monsoon"},
			wantFields: []string{"season"},
			wantMsg:    "season must be one of: spring summer fall winter all",
		},
		{
			name:       "upper bound",
			input:      testPayload{FaceShape: "oval", HairType: "wavy", Untagged: "x", Age: 130},
			wantFields: []string{"age"},
			wantMsg:    "age must be less than or equal to 120",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)

			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := err.Fields(); !slices.Equal(got, tt.wantFields) {
				t.Errorf("Fields() = %v, want %v", got, tt.wantFields)
			}
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidationError_Accessors(t *testing.T) {
	input := testPayload{FaceShape: "oval", HairType: "wavy", Untagged: "x", Season: "monsoon"}
	err := ValidateStruct(&input)
	if err == nil || len(err.Errors()) != 1 {
		t.Fatalf("expected exactly one validation error, got %v", err)
	}

	fe := err.Errors()[0]
	if fe.Tag() != "oneof" {
		t.Errorf("Tag() = %q, want oneof", fe.Tag())
	}
	if !strings.Contains(fe.Param(), "winter") {
		t.Errorf("Param() = %q, want it to list seasons", fe.Param())
	}
	if fe.Value() != "monsoon" {
		t.Errorf("Value() = %v, want monsoon", fe.Value())
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("ValidateStruct(non-struct) should fail")
	}
	if err.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", err.Errors()[0].Field())
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	err := &RequestValidationError{}
	if err.Error() != "validation failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "validation failed")
	}
}
