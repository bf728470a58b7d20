package onboardingValidator

import (
	"bankflow/middleware"
	"bankflow/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PersonalDetailsRequest carries a personal details form submission
type PersonalDetailsRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	MobileNumber  string `json:"mobile_number"`
	EmailID       string `json:"email_id"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	Pincode       string `json:"pincode"`
	City          string `json:"city"`
	State         string `json:"state"`
	AadharNumber  string `json:"aadhar_number"`
	PanCardNumber string `json:"pan_card_number"`
}

// PersonalDetails validator middleware, shared by the create and edit routes
func PersonalDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PersonalDetailsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["first_name"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["last_name"] = "Last name is required!"
		}

		// Validate Date of Birth
		if reqData.DateOfBirth == "" || !isValidDate(reqData.DateOfBirth) {
			errors["date_of_birth"] = "Date of birth must be in YYYY-MM-DD format!"
		}

		// Validate Gender
		switch reqData.Gender {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
		default:
			errors["gender"] = "Gender must be one of M, F or O!"
		}

		// Validate Contact
		if reqData.MobileNumber == "" || !isValidMobile(reqData.MobileNumber) {
			errors["mobile_number"] = "Invalid mobile number!"
		}
		if reqData.EmailID == "" || !isValidEmail(reqData.EmailID) {
			errors["email_id"] = "Invalid email!"
		}

		// Validate Address
		if strings.TrimSpace(reqData.Address1) == "" {
			errors["address1"] = "Address line 1 is required!"
		}
		if reqData.Pincode == "" || !isValidPincode(reqData.Pincode) {
			errors["pincode"] = "Pincode must be 6 digits!"
		}
		if strings.TrimSpace(reqData.City) == "" {
			errors["city"] = "City is required!"
		}
		if strings.TrimSpace(reqData.State) == "" {
			errors["state"] = "State is required!"
		}

		// Validate Identity Documents
		if reqData.AadharNumber == "" || !isValidAadhar(reqData.AadharNumber) {
			errors["aadhar_number"] = "Aadhar number must be 12 digits!"
		}
		if reqData.PanCardNumber == "" || !isValidPan(reqData.PanCardNumber) {
			errors["pan_card_number"] = "Invalid PAN card number!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedPersonal", reqData)
		return c.Next()
	}
}
