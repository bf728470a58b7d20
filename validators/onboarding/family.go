package onboardingValidator

import (
	"bankflow/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FamilyDetailsRequest carries a family details form submission
type FamilyDetailsRequest struct {
	SpouseName       string `json:"spouse_name"`
	SpouseOccupation string `json:"spouse_occupation"`
	ChildrenCount    int    `json:"children_count"`
	ChildrenDetails  string `json:"children_details"`

	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`

	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`
	EmergencyContactMobile   string `json:"emergency_contact_mobile"`
}

// FamilyDetails validator middleware, shared by the create and edit routes
func FamilyDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FamilyDetailsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Children Count
		if reqData.ChildrenCount < 0 {
			errors["children_count"] = "Children count cannot be negative!"
		}

		// Validate Parent Information
		if strings.TrimSpace(reqData.FatherName) == "" {
			errors["father_name"] = "Father name is required!"
		}
		if strings.TrimSpace(reqData.MotherName) == "" {
			errors["mother_name"] = "Mother name is required!"
		}

		// Validate Emergency Contact
		if strings.TrimSpace(reqData.EmergencyContactName) == "" {
			errors["emergency_contact_name"] = "Emergency contact name is required!"
		}
		if strings.TrimSpace(reqData.EmergencyContactRelation) == "" {
			errors["emergency_contact_relation"] = "Emergency contact relation is required!"
		}
		if reqData.EmergencyContactMobile == "" || !isValidMobile(reqData.EmergencyContactMobile) {
			errors["emergency_contact_mobile"] = "Invalid emergency contact mobile number!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedFamily", reqData)
		return c.Next()
	}
}
