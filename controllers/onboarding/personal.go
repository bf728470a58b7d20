package onboardingController

import (
	"bankflow/database"
	"bankflow/middleware"
	"bankflow/models"
	"bankflow/utils"
	onboardingValidator "bankflow/validators/onboarding"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// checkUniqueFields pre-checks the applicant-supplied unique columns so the
// form can show a field-level message instead of a bare conflict. The unique
// indexes remain the backstop for races. excludeId skips the record being
// edited.
func checkUniqueFields(reqData *onboardingValidator.PersonalDetailsRequest, excludeId uint) map[string]string {
	db := database.Database.Db
	errors := make(map[string]string)

	var existing []models.PersonalDetails
	query := db.Where(
		"mobile_number = ? OR email_id = ? OR aadhar_number = ? OR pan_card_number = ?",
		reqData.MobileNumber, reqData.EmailID, reqData.AadharNumber, reqData.PanCardNumber,
	)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	if err := query.Find(&existing).Error; err != nil {
		// The unique indexes still reject duplicates on save
		log.Printf("Failed to pre-check unique personal fields: %v", err)
		return errors
	}

	for _, record := range existing {
		if record.MobileNumber == reqData.MobileNumber {
			errors["mobile_number"] = "Mobile number is already registered!"
		}
		if record.EmailID == reqData.EmailID {
			errors["email_id"] = "Email is already registered!"
		}
		if record.AadharNumber == reqData.AadharNumber {
			errors["aadhar_number"] = "Aadhar number is already registered!"
		}
		if record.PanCardNumber == reqData.PanCardNumber {
			errors["pan_card_number"] = "PAN card number is already registered!"
		}
	}

	return errors
}

// CreatePersonalDetails starts the onboarding workflow. The four bank
// identifiers are assigned here, once, before the record is persisted.
func CreatePersonalDetails(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPersonal").(*onboardingValidator.PersonalDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if errors := checkUniqueFields(reqData, 0); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	dateOfBirth, err := time.Parse(onboardingValidator.DateLayout, reqData.DateOfBirth)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"date_of_birth": "Date of birth must be in YYYY-MM-DD format!"})
	}

	personal := models.PersonalDetails{
		FirstName:     reqData.FirstName,
		LastName:      reqData.LastName,
		DateOfBirth:   dateOfBirth,
		Gender:        reqData.Gender,
		MobileNumber:  reqData.MobileNumber,
		EmailID:       reqData.EmailID,
		Address1:      reqData.Address1,
		Address2:      reqData.Address2,
		Pincode:       reqData.Pincode,
		City:          reqData.City,
		State:         reqData.State,
		AadharNumber:  reqData.AadharNumber,
		PanCardNumber: reqData.PanCardNumber,
	}

	// Explicit pre-save step; never regenerates an already-set identifier.
	utils.AssignBankIdentifiers(&personal)

	if err := database.Database.Db.Create(&personal).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Personal details already registered!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save personal details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Personal details saved successfully!", fiber.Map{
		"personal_details": personal,
		"next_step":        fmt.Sprintf("/accounts/family-details/%d", personal.ID),
	})
}

// EditPersonalDetails updates the mutable personal fields. The generated
// identifiers are carried over from the stored record untouched.
func EditPersonalDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedPersonal").(*onboardingValidator.PersonalDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if errors := checkUniqueFields(reqData, personal.ID); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	dateOfBirth, parseErr := time.Parse(onboardingValidator.DateLayout, reqData.DateOfBirth)
	if parseErr != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"date_of_birth": "Date of birth must be in YYYY-MM-DD format!"})
	}

	personal.FirstName = reqData.FirstName
	personal.LastName = reqData.LastName
	personal.DateOfBirth = dateOfBirth
	personal.Gender = reqData.Gender
	personal.MobileNumber = reqData.MobileNumber
	personal.EmailID = reqData.EmailID
	personal.Address1 = reqData.Address1
	personal.Address2 = reqData.Address2
	personal.Pincode = reqData.Pincode
	personal.City = reqData.City
	personal.State = reqData.State
	personal.AadharNumber = reqData.AadharNumber
	personal.PanCardNumber = reqData.PanCardNumber

	if err := database.Database.Db.Save(personal).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Another record already uses one of the unique fields!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update personal details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Personal details updated successfully!", fiber.Map{
		"personal_details": personal,
	})
}
