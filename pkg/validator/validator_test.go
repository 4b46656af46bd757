package validator

import "testing"

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,min=2,max=10"`
	Status string `validate:"omitempty,oneof=scheduled completed cancelled"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "jane@example.com", Name: "Jane", Status: "scheduled"})
	if err != nil {
		t.Errorf("expected valid struct to pass, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "not-an-email", Status: "bogus"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("unexpected email message: %q", formatted["Email"])
	}
	if formatted["Name"] != "Name is required" {
		t.Errorf("unexpected name message: %q", formatted["Name"])
	}
	if formatted["Status"] != "Status must be one of: scheduled completed cancelled" {
		t.Errorf("unexpected status message: %q", formatted["Status"])
	}
}
