package validator

import (
	"testing"

	"github.com/E11SH/RENTHUB/pkg/model"
)

func validProperty() *model.Property {
	return &model.Property{
		Title:    "Sunny Flat",
		Location: "Cairo",
		Price:    12000,
		Owner:    "507f191e810c19729de860ea",
	}
}

func TestValidate_ValidProperty(t *testing.T) {
	v := NewPropertyValidator()

	if err := v.Validate(validProperty()); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	v := NewPropertyValidator()

	tests := []struct {
		name   string
		mutate func(p *model.Property)
	}{
		{"missing title", func(p *model.Property) { p.Title = "" }},
		{"title too short", func(p *model.Property) { p.Title = "x" }},
		{"missing location", func(p *model.Property) { p.Location = "" }},
		{"zero price", func(p *model.Property) { p.Price = 0 }},
		{"negative price", func(p *model.Property) { p.Price = -100 }},
		{"missing owner", func(p *model.Property) { p.Owner = "" }},
		{"owner not an object id", func(p *model.Property) { p.Owner = "abc" }},
		{"too many bedrooms", func(p *model.Property) { p.Bedrooms = 99 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProperty()
			tt.mutate(p)
			if err := v.Validate(p); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateUpdate_PartialPayloads(t *testing.T) {
	v := NewPropertyValidator()

	// Empty update is legal, all fields optional.
	if err := v.ValidateUpdate(&model.PropertyUpdate{}); err != nil {
		t.Errorf("empty update should pass, got %v", err)
	}

	price := int64(-1)
	if err := v.ValidateUpdate(&model.PropertyUpdate{Price: &price}); err == nil {
		t.Error("negative price update should fail")
	}
}

func TestValidationErrors_Messages(t *testing.T) {
	v := NewPropertyValidator()

	p := validProperty()
	p.Title = ""
	err := v.Validate(p)

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(verrs))
	}
	if verrs[0].Field != "Title" {
		t.Errorf("expected Title, got %s", verrs[0].Field)
	}
	if verrs[0].Message != "is required" {
		t.Errorf("unexpected message: %q", verrs[0].Message)
	}
}
