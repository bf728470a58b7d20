package onboardingValidator

import (
	"bankflow/middleware"
	"bankflow/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// AccountDetailsRequest carries an account details form submission
type AccountDetailsRequest struct {
	AccountType   string          `json:"account_type"`
	SchemeType    string          `json:"scheme_type"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
}

// AccountDetails validator middleware, shared by the create and edit routes
func AccountDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AccountDetailsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Account Type
		if !models.ValidAccountType(reqData.AccountType) {
			errors["account_type"] = "Invalid account type!"
		}

		// Validate Scheme Type
		if !models.ValidSchemeType(reqData.SchemeType) {
			errors["scheme_type"] = "Invalid scheme type!"
		}

		// Validate Deposit Amount
		if reqData.DepositAmount.IsNegative() {
			errors["deposit_amount"] = "Deposit amount cannot be negative!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedAccount", reqData)
		return c.Next()
	}
}
