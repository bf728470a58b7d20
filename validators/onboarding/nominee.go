package onboardingValidator

import (
	"bankflow/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NomineeDetailsRequest carries a nominee details form submission
type NomineeDetailsRequest struct {
	NomineeName          string `json:"nominee_name"`
	NomineeRelation      string `json:"nominee_relation"`
	NomineeDateOfBirth   string `json:"nominee_date_of_birth"`
	NomineeMobileNumber  string `json:"nominee_mobile_number"`
	NomineeEmail         string `json:"nominee_email"`
	NomineeAddress       string `json:"nominee_address"`
	NomineeAadharNumber  string `json:"nominee_aadhar_number"`
	NomineePanCardNumber string `json:"nominee_pan_card_number"`
}

// NomineeDetails validator middleware, shared by the create and edit routes
func NomineeDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NomineeDetailsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Nominee
		if strings.TrimSpace(reqData.NomineeName) == "" {
			errors["nominee_name"] = "Nominee name is required!"
		}
		if strings.TrimSpace(reqData.NomineeRelation) == "" {
			errors["nominee_relation"] = "Nominee relation is required!"
		}
		if reqData.NomineeDateOfBirth == "" || !isValidDate(reqData.NomineeDateOfBirth) {
			errors["nominee_date_of_birth"] = "Nominee date of birth must be in YYYY-MM-DD format!"
		}
		if reqData.NomineeMobileNumber == "" || !isValidMobile(reqData.NomineeMobileNumber) {
			errors["nominee_mobile_number"] = "Invalid nominee mobile number!"
		}

		// Email is optional for a nominee but must be well formed when present
		if reqData.NomineeEmail != "" && !isValidEmail(reqData.NomineeEmail) {
			errors["nominee_email"] = "Invalid nominee email!"
		}

		if strings.TrimSpace(reqData.NomineeAddress) == "" {
			errors["nominee_address"] = "Nominee address is required!"
		}

		// Validate Identity Documents
		if reqData.NomineeAadharNumber == "" || !isValidAadhar(reqData.NomineeAadharNumber) {
			errors["nominee_aadhar_number"] = "Nominee aadhar number must be 12 digits!"
		}
		if reqData.NomineePanCardNumber == "" || !isValidPan(reqData.NomineePanCardNumber) {
			errors["nominee_pan_card_number"] = "Invalid nominee PAN card number!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedNominee", reqData)
		return c.Next()
	}
}
