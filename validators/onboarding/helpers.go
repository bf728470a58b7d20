package onboardingValidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	mobileRegex  = regexp.MustCompile(`^\d{10}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	aadharRegex  = regexp.MustCompile(`^\d{12}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// DateLayout is the wire format for all date fields
const DateLayout = "2006-01-02"

// Helper to validate email format
func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

func isValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

func isValidAadhar(aadhar string) bool {
	return aadharRegex.MatchString(aadhar)
}

func isValidPan(pan string) bool {
	return panRegex.MatchString(pan)
}

func isValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
