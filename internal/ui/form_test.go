package ui

import (
	"strings"
	"testing"
)

func filledForm(values map[int]string) addForm {
	form := newAddForm()
	form.inputs[fieldName].SetValue("Monstera")
	form.inputs[fieldPrice].SetValue("19.99")
	form.inputs[fieldQuantity].SetValue("5")
	form.inputs[fieldCategories].SetValue("indoor, tropical")
	for field, value := range values {
		form.inputs[field].SetValue(value)
	}
	return form
}

func TestFormPayloadValid(t *testing.T) {
	form := filledForm(nil)

	payload, problem := form.payload()
	if problem != "" {
		t.Fatalf("unexpected problem: %q", problem)
	}
	if payload.Name != "Monstera" || payload.Price != 19.99 || payload.Quantity != 5 {
		t.Fatalf("payload = %#v", payload)
	}
	if len(payload.Categories) != 2 || payload.Categories[0] != "indoor" {
		t.Fatalf("categories = %#v", payload.Categories)
	}
	if payload.Light != "Medium" {
		t.Fatalf("default light = %q, want Medium", payload.Light)
	}
}

func TestFormPayloadValidation(t *testing.T) {
	cases := []struct {
		name   string
		values map[int]string
		want   string
	}{
		{"blank name", map[int]string{fieldName: "   "}, "Plant name is required"},
		{"long name", map[int]string{fieldName: strings.Repeat("x", 101)}, "Plant name must be less than 100 characters"},
		{"bad price", map[int]string{fieldPrice: "free"}, "Price must be a positive number"},
		{"negative price", map[int]string{fieldPrice: "-1"}, "Price must be a positive number"},
		{"fractional quantity", map[int]string{fieldQuantity: "1.5"}, "Quantity must be a non-negative integer"},
		{"negative quantity", map[int]string{fieldQuantity: "-2"}, "Quantity must be a non-negative integer"},
		{"no categories", map[int]string{fieldCategories: " , "}, "At least one category is required"},
		{"long description", map[int]string{fieldDescription: strings.Repeat("d", 501)}, "Description must be less than 500 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := filledForm(tc.values)
			if _, problem := form.payload(); problem != tc.want {
				t.Fatalf("problem = %q, want %q", problem, tc.want)
			}
		})
	}
}

func TestFormLightSelection(t *testing.T) {
	form := filledForm(nil)
	form.light = 2

	payload, problem := form.payload()
	if problem != "" {
		t.Fatalf("unexpected problem: %q", problem)
	}
	if payload.Light != "High" {
		t.Fatalf("light = %q, want High", payload.Light)
	}
}
