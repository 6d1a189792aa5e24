// File: validation/profile.go
package validation

import (
	"regexp"
	"strings"
)

// DefaultEmailDomain is the institutional domain accepted at sign-up.
const DefaultEmailDomain = "espe.edu.ec"

// StudentIDPrefix is prepended to the digits a participant types.
const StudentIDPrefix = "L00"

var (
	nameRegex         = regexp.MustCompile(`^[a-zA-Z\sñÑáéíóúÁÉÍÓÚüÜ']+$`)
	studentDigitRegex = regexp.MustCompile(`^\d{7}$`)
	emailLocalRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+$`)
)

// ValidateInstitutionalEmail accepts addresses whose domain is exactly
// domain, compared case-insensitively.
func ValidateInstitutionalEmail(email, domain string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if !emailLocalRegex.MatchString(email[:at]) {
		return false
	}
	return strings.EqualFold(email[at+1:], domain)
}

// ValidateName accepts letters (including Spanish accents), spaces and
// apostrophes.
func ValidateName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && nameRegex.MatchString(trimmed)
}

// ValidateStudentIDDigits accepts exactly seven ASCII digits.
func ValidateStudentIDDigits(digits string) bool {
	return studentDigitRegex.MatchString(digits)
}

// StudentID builds the stored identifier from the typed digits.
func StudentID(digits string) string {
	return StudentIDPrefix + digits
}
