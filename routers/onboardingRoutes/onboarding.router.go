package onboardingRoutes

import (
	onboardingController "bankflow/controllers/onboarding"
	onboardingValidator "bankflow/validators/onboarding"

	"github.com/gofiber/fiber/v2"
)

func SetupOnboardingRoutes(app *fiber.App) {
	accountGroup := app.Group("/accounts")

	accountGroup.Get("/dashboard", onboardingController.Dashboard)

	// Workflow steps: personal -> family -> nominee -> account -> summary
	accountGroup.Post("/personal-details", onboardingValidator.PersonalDetails(), onboardingController.CreatePersonalDetails)
	accountGroup.Get("/family-details/:personalId", onboardingController.GetFamilyDetails)
	accountGroup.Post("/family-details/:personalId", onboardingValidator.FamilyDetails(), onboardingController.CreateFamilyDetails)
	accountGroup.Get("/nominee-details/:personalId", onboardingController.GetNomineeDetails)
	accountGroup.Post("/nominee-details/:personalId", onboardingValidator.NomineeDetails(), onboardingController.CreateNomineeDetails)
	accountGroup.Get("/account-details/:personalId", onboardingController.GetAccountDetails)
	accountGroup.Post("/account-details/:personalId", onboardingValidator.AccountDetails(), onboardingController.CreateAccountDetails)

	accountGroup.Get("/account-summary/:personalId", onboardingController.AccountSummary)
	accountGroup.Get("/account-detail/:personalId", onboardingController.AccountSummary)

	// Edit routes upsert the corresponding record for the parent
	accountGroup.Put("/edit-personal/:personalId", onboardingValidator.PersonalDetails(), onboardingController.EditPersonalDetails)
	accountGroup.Put("/edit-family/:personalId", onboardingValidator.FamilyDetails(), onboardingController.EditFamilyDetails)
	accountGroup.Put("/edit-nominee/:personalId", onboardingValidator.NomineeDetails(), onboardingController.EditNomineeDetails)
	accountGroup.Put("/edit-account/:personalId", onboardingValidator.AccountDetails(), onboardingController.EditAccountDetails)

	accountGroup.Post("/search", onboardingController.SearchAccounts)
}
