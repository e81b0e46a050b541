package listings

import (
	"testing"

	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

func validCarRequest() CreateCarRequest {
	return CreateCarRequest{
		Variant:            "GT TSI",
		Year:               2022,
		Kilometers:         42000,
		RegistrationNumber: "MH12AB1234",
		Ownership:          "FIRST",
		AskingPrice:        850000,
		City:               "Pune",
		State:              "Maharashtra",
		Description:        "Well maintained, single owner, full service history.",
		Images:             []string{"https://cdn.example.com/car1.jpg"},
	}
}

func validPartsRequest() CreatePartsRequest {
	return CreatePartsRequest{
		Title:       "Exhaust for sale",
		Category:    "ENGINE_PARTS",
		Description: "Borla cat-back exhaust, lightly used.",
		Price:       15000,
		City:        "Mumbai",
		Images:      []string{"https://cdn.example.com/exhaust.jpg"},
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	return details
}

func TestValidateCarAcceptsBoundaryValues(t *testing.T) {
	for _, year := range []int{2010, 2026} {
		req := validCarRequest()
		req.Year = year
		if err := validateCar(req); err != nil {
			t.Fatalf("year %d should be accepted: %v", year, err)
		}
	}

	req := validCarRequest()
	req.AskingPrice = 10000
	if err := validateCar(req); err != nil {
		t.Fatalf("asking price 10000 should be accepted: %v", err)
	}
}

func TestValidateCarRejectsOutOfRange(t *testing.T) {
	for _, year := range []int{2009, 2027} {
		req := validCarRequest()
		req.Year = year
		details := fieldErrors(t, validateCar(req))
		if _, ok := details["year"]; !ok {
			t.Fatalf("expected year error for %d, got %v", year, details)
		}
	}

	req := validCarRequest()
	req.AskingPrice = 9999
	details := fieldErrors(t, validateCar(req))
	if _, ok := details["asking_price"]; !ok {
		t.Fatalf("expected asking_price error, got %v", details)
	}
}

func TestValidateCarReportsAllFieldsAtOnce(t *testing.T) {
	req := CreateCarRequest{
		Variant:            "G",
		Year:               2005,
		Kilometers:         -1,
		RegistrationNumber: "MH",
		Ownership:          "FOURTH",
		AskingPrice:        500,
		City:               "P",
		State:              "M",
		Description:        "short",
	}
	details := fieldErrors(t, validateCar(req))

	for _, field := range []string{
		"variant", "year", "kilometers", "registration_number",
		"ownership", "asking_price", "city", "state", "description", "images",
	} {
		if _, ok := details[field]; !ok {
			t.Errorf("expected error for %q, got %v", field, details)
		}
	}
}

func TestValidatePartsBoundaries(t *testing.T) {
	req := validPartsRequest()
	req.Title = "12345"
	if err := validateParts(req); err != nil {
		t.Fatalf("5-char title should be accepted: %v", err)
	}

	req.Title = "1234"
	details := fieldErrors(t, validateParts(req))
	if _, ok := details["title"]; !ok {
		t.Fatalf("expected title error, got %v", details)
	}

	req = validPartsRequest()
	req.Price = 0
	if err := validateParts(req); err != nil {
		t.Fatalf("zero price should be accepted: %v", err)
	}

	req.Price = -1
	details = fieldErrors(t, validateParts(req))
	if _, ok := details["price"]; !ok {
		t.Fatalf("expected price error, got %v", details)
	}
}

func TestValidatePartsCategoryAndContact(t *testing.T) {
	req := validPartsRequest()
	req.Category = "NOT_A_CATEGORY"
	details := fieldErrors(t, validateParts(req))
	if _, ok := details["category"]; !ok {
		t.Fatalf("expected category error, got %v", details)
	}

	req = validPartsRequest()
	req.ContactPreference = "CARRIER_PIGEON"
	details = fieldErrors(t, validateParts(req))
	if _, ok := details["contact_preference"]; !ok {
		t.Fatalf("expected contact_preference error, got %v", details)
	}

	// Empty contact preference defaults later in the service.
	req = validPartsRequest()
	req.ContactPreference = ""
	if err := validateParts(req); err != nil {
		t.Fatalf("empty contact preference should pass validation: %v", err)
	}
}

func TestValidateRequiresImages(t *testing.T) {
	car := validCarRequest()
	car.Images = []string{" ", ""}
	details := fieldErrors(t, validateCar(car))
	if _, ok := details["images"]; !ok {
		t.Fatalf("expected images error, got %v", details)
	}

	parts := validPartsRequest()
	parts.Images = nil
	details = fieldErrors(t, validateParts(parts))
	if _, ok := details["images"]; !ok {
		t.Fatalf("expected images error, got %v", details)
	}
}
