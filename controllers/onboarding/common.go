package onboardingController

import (
	"bankflow/database"
	"bankflow/middleware"
	"bankflow/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// findPersonal resolves the :personalId route parameter to its record.
// When it returns a nil record the response has already been written.
func findPersonal(c *fiber.Ctx) (*models.PersonalDetails, error) {
	personalId, err := c.ParamsInt("personalId")
	if err != nil || personalId < 1 {
		return nil, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid personal details id!", nil)
	}

	var personal models.PersonalDetails
	if err := database.Database.Db.First(&personal, personalId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Personal details not found!", nil)
		}
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch personal details!", nil)
	}

	return &personal, nil
}

// isDuplicate reports whether err is a storage-level uniqueness violation
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// familyFor returns the family details for a parent, or nil when absent.
// Absence is a valid state, not an error.
func familyFor(personalId uint) (*models.FamilyDetails, error) {
	var family models.FamilyDetails
	err := database.Database.Db.Where("personal_details_id = ?", personalId).First(&family).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &family, nil
}

// nomineeFor returns the nominee details for a parent, or nil when absent
func nomineeFor(personalId uint) (*models.NomineeDetails, error) {
	var nominee models.NomineeDetails
	err := database.Database.Db.Where("personal_details_id = ?", personalId).First(&nominee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nominee, nil
}

// accountFor returns the account details for a parent, or nil when absent
func accountFor(personalId uint) (*models.AccountDetails, error) {
	var account models.AccountDetails
	err := database.Database.Db.Where("personal_details_id = ?", personalId).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
