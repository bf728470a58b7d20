package onboardingController

import (
	"bankflow/database"
	"bankflow/middleware"
	"bankflow/models"

	"github.com/gofiber/fiber/v2"
)

// AccountSummary returns the parent record with each dependent when present.
// A missing dependent is a displayable state and comes back as null.
func AccountSummary(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	family, err := familyFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch family details!", nil)
	}
	nominee, err := nomineeFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nominee details!", nil)
	}
	account, err := accountFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch account details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account summary fetched!", fiber.Map{
		"personal_details": personal,
		"family_details":   family,
		"nominee_details":  nominee,
		"account_details":  account,
	})
}

// Dashboard lists every applicant, newest first
func Dashboard(c *fiber.Ctx) error {
	var accounts []models.PersonalDetails
	if err := database.Database.Db.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accounts fetched!", fiber.Map{
		"accounts": accounts,
	})
}
