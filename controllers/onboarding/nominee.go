package onboardingController

import (
	"bankflow/database"
	"bankflow/middleware"
	"bankflow/models"
	onboardingValidator "bankflow/validators/onboarding"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func applyNomineeRequest(nominee *models.NomineeDetails, reqData *onboardingValidator.NomineeDetailsRequest) error {
	dateOfBirth, err := time.Parse(onboardingValidator.DateLayout, reqData.NomineeDateOfBirth)
	if err != nil {
		return err
	}

	nominee.NomineeName = reqData.NomineeName
	nominee.NomineeRelation = reqData.NomineeRelation
	nominee.NomineeDateOfBirth = dateOfBirth
	nominee.NomineeMobileNumber = reqData.NomineeMobileNumber
	nominee.NomineeEmail = reqData.NomineeEmail
	nominee.NomineeAddress = reqData.NomineeAddress
	nominee.NomineeAadharNumber = reqData.NomineeAadharNumber
	nominee.NomineePanCardNumber = reqData.NomineePanCardNumber
	return nil
}

// GetNomineeDetails returns the form state for the nominee step
func GetNomineeDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	nominee, err := nomineeFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nominee details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nominee details fetched!", fiber.Map{
		"personal_details": personal,
		"nominee_details":  nominee,
	})
}

// CreateNomineeDetails is the workflow step: create-only, duplicates conflict
func CreateNomineeDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedNominee").(*onboardingValidator.NomineeDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	existing, err := nomineeFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nominee details!", nil)
	}
	if existing != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Nominee details already exist for this applicant!", nil)
	}

	nominee := models.NomineeDetails{PersonalDetailsID: personal.ID}
	if err := applyNomineeRequest(&nominee, reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"nominee_date_of_birth": "Nominee date of birth must be in YYYY-MM-DD format!"})
	}

	if err := database.Database.Db.Create(&nominee).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Nominee details already exist for this applicant!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save nominee details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Nominee details saved successfully!", fiber.Map{
		"nominee_details": nominee,
		"next_step":       fmt.Sprintf("/accounts/account-details/%d", personal.ID),
	})
}

// EditNomineeDetails upserts the nominee details for a parent
func EditNomineeDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedNominee").(*onboardingValidator.NomineeDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	nominee, err := nomineeFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nominee details!", nil)
	}
	if nominee == nil {
		nominee = &models.NomineeDetails{PersonalDetailsID: personal.ID}
	}
	if err := applyNomineeRequest(nominee, reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"nominee_date_of_birth": "Nominee date of birth must be in YYYY-MM-DD format!"})
	}

	if err := database.Database.Db.Save(nominee).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Nominee details were created concurrently, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update nominee details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nominee details updated successfully!", fiber.Map{
		"nominee_details": nominee,
	})
}
