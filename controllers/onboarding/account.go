package onboardingController

import (
	"bankflow/config"
	"bankflow/database"
	"bankflow/middleware"
	"bankflow/models"
	"bankflow/utils"
	onboardingValidator "bankflow/validators/onboarding"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAccountDetails returns the form state for the account step
func GetAccountDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	account, err := accountFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch account details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account details fetched!", fiber.Map{
		"personal_details": personal,
		"account_details":  account,
	})
}

// CreateAccountDetails is the terminal workflow step. The opening balance is
// initialized from the deposit amount, and for term deposits the maturity
// date is derived once from the opening date.
func CreateAccountDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedAccount").(*onboardingValidator.AccountDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	existing, err := accountFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch account details!", nil)
	}
	if existing != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Account details already exist for this applicant!", nil)
	}

	account := models.AccountDetails{
		PersonalDetailsID: personal.ID,
		AccountType:       reqData.AccountType,
		SchemeType:        reqData.SchemeType,
		DepositAmount:     reqData.DepositAmount,
		CurrentBalance:    reqData.DepositAmount,
		IsActive:          true,
		BranchCode:        config.AppConfig.BranchCode,
		InterestRate:      models.DefaultInterestRate,
	}

	// Explicit pre-save step; fills the opening date and derives the
	// maturity date for term deposits.
	account.ApplyOpeningDefaults()

	if err := database.Database.Db.Create(&account).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Account details already exist for this applicant!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save account details!", nil)
	}

	go func(email, name, accountNumber, accountType string) {
		if err := utils.SendAccountWelcomeEmail(email, name, accountNumber, accountType); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(personal.EmailID, personal.FullName(), personal.AccountNumber, account.AccountType)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account details saved successfully!", fiber.Map{
		"account_details": account,
		"next_step":       fmt.Sprintf("/accounts/account-summary/%d", personal.ID),
	})
}

// EditAccountDetails upserts the account details for a parent. The opening
// date and a derived maturity date are never recomputed once set; the
// balance is backfilled from the deposit amount only while it is zero.
func EditAccountDetails(c *fiber.Ctx) error {
	personal, err := findPersonal(c)
	if personal == nil {
		return err
	}

	reqData, ok := c.Locals("validatedAccount").(*onboardingValidator.AccountDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := accountFor(personal.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch account details!", nil)
	}
	if account == nil {
		account = &models.AccountDetails{
			PersonalDetailsID: personal.ID,
			IsActive:          true,
			BranchCode:        config.AppConfig.BranchCode,
			InterestRate:      models.DefaultInterestRate,
		}
	}

	account.AccountType = reqData.AccountType
	account.SchemeType = reqData.SchemeType
	account.DepositAmount = reqData.DepositAmount
	if account.CurrentBalance.IsZero() {
		account.CurrentBalance = account.DepositAmount
	}
	account.ApplyOpeningDefaults()

	if err := database.Database.Db.Save(account).Error; err != nil {
		if isDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Account details were created concurrently, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update account details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account details updated successfully!", fiber.Map{
		"account_details": account,
	})
}
