package utils

import (
	"regexp"
	"strings"
)

var (
	lettersOnly = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	digitsOnly  = regexp.MustCompile(`^\d+$`)
	emailShape  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateName rejects empty values, digits and anything outside letters and
// spaces (accented letters included).
func ValidateName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return Validationf("%s cannot be empty", field)
	}
	if !lettersOnly.MatchString(name) {
		return Validationf("%s can only contain letters and spaces", field)
	}
	return nil
}

// ValidateDocument checks the identifying document. National id types (CC,
// TI, CE) are all-digit and at most 10 characters; other types are free-form.
func ValidateDocument(number, docType string) error {
	if strings.TrimSpace(number) == "" {
		return Validationf("document number cannot be empty")
	}
	switch docType {
	case "CC", "TI", "CE":
		if len(number) > 10 {
			return Validationf("document number cannot exceed 10 digits")
		}
		if !digitsOnly.MatchString(number) {
			return Validationf("document number can only contain digits")
		}
	}
	return nil
}

// ValidatePhone expects exactly 10 digits after stripping separators.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return Validationf("phone cannot be empty")
	}
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if len(stripped) != 10 {
		return Validationf("phone must have exactly 10 digits")
	}
	if !digitsOnly.MatchString(stripped) {
		return Validationf("phone can only contain digits")
	}
	return nil
}

func ValidateNationality(nationality string) error {
	if strings.TrimSpace(nationality) == "" {
		return Validationf("nationality cannot be empty")
	}
	if !lettersOnly.MatchString(nationality) {
		return Validationf("nationality can only contain letters and spaces")
	}
	return nil
}

// ValidateEmail accepts an empty email; when present it must look like an
// address.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return nil
	}
	if !emailShape.MatchString(email) {
		return Validationf("email format is not valid")
	}
	return nil
}
