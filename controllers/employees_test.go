package controllers

import (
	"testing"

	"salesdesk/models"
)

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name    string
		card    string
		wantErr bool
	}{
		{"valid", "123456789012", false},
		{"too short", "12345678901", true},
		{"too long", "1234567890123", true},
		{"empty", "", true},
		{"letters", "12345678901a", true},
		{"spaces", "1234 5678 90", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCardNumber(tt.card)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCardNumber(%q) error = %v, wantErr %v", tt.card, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmployeeInput(t *testing.T) {
	valid := models.EmployeeInput{
		CardNumber: "123456789012",
		Name:       "John Doe",
		Salary:     50000,
		Password:   "password@123",
	}
	if err := validateEmployeeInput(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	negative := valid
	negative.Salary = -1
	if err := validateEmployeeInput(negative); err == nil {
		t.Error("negative salary accepted")
	}

	unnamed := valid
	unnamed.Name = ""
	if err := validateEmployeeInput(unnamed); err == nil {
		t.Error("empty name accepted")
	}
}
