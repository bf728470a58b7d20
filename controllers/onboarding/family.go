package onboardingController

import (
	"bankflow/database"
	"bankflow/middleware"
	"bankflow/models"
	onboardingValidator "bankflow/validators/onboarding"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func applyFamilyRequest(family *models.FamilyDetails, reqData *onboardingValidator.FamilyDetailsRequest) {
	family.SpouseName = reqData.SpouseName
	family.SpouseOccupation = reqData.SpouseOccupation
	family.ChildrenCount = uint(reqData.ChildrenCount)
	family.ChildrenDetails = reqData.ChildrenDetails
	family.FatherName = reqData.FatherName
	family.MotherName = reqData.MotherName
	family.EmergencyContactName = reqData.EmergencyContactName
	family.EmergencyContactRelation = reqData.EmergencyContactRelation
	family.EmergencyContactMobile = reqData.EmergencyContactMobile
}

// GetFamilyDetails returns the form state for the family step: the parent
// record plus the existing family details when present.
func GetFamilyDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	family, err := familyFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch family details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Family details fetched!", fiber.Map{
		"personal_details": personal,
		"family_details":   family,
	})
}

// CreateFamilyDetails is the workflow step: create-only, a second submission
// for the same parent is rejected with a conflict. The edit route upserts.
func CreateFamilyDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedFamily").(*onboardingValidator.FamilyDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	existing, err := familyFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch family details!", nil)
	}
	if existing != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Family details already exist for this applicant!", nil)
	}

	family := models.FamilyDetails{PersonalDetailsID: personal.ID}
	applyFamilyRequest(&family, reqData)

	if err := database.Database.Db.Create(&family).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Family details already exist for this applicant!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save family details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Family details saved successfully!", fiber.Map{
		"family_details": family,
		"next_step":      fmt.Sprintf("/accounts/nominee-details/%d", personal.ID),
	})
}

// EditFamilyDetails upserts the family details for a parent: it creates the
// record when absent and updates it in place when present.
func EditFamilyDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedFamily").(*onboardingValidator.FamilyDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	family, err := familyFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch family details!", nil)
	}
	if family == nil {
		family = &models.FamilyDetails{PersonalDetailsID: personal.ID}
	}
	applyFamilyRequest(family, reqData)

	if err := database.Database.Db.Save(family).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Family details were created concurrently, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update family details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Family details updated successfully!", fiber.Map{
		"family_details": family,
	})
}
