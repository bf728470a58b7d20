package onboardingController

import (
	"bankflow/database"
	"bankflow/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SearchResult is the minimal projection returned by the search endpoint
type SearchResult struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Mobile        string `json:"mobile"`
}

const searchResultLimit = 10

// SearchAccounts matches a form-encoded search term against account number,
// first name and last name (case-insensitive substring) and returns up to
// ten minimal results. An empty term returns an empty list.
func SearchAccounts(c *fiber.Ctx) error {
	searchTerm := strings.TrimSpace(c.FormValue("search_term"))

	results := []SearchResult{}
	if searchTerm == "" {
		return c.JSON(fiber.Map{"results": results})
	}

	pattern := "%" + strings.ToLower(searchTerm) + "%"

	var accounts []models.PersonalDetails
	if err := database.Database.Db.
		Where("LOWER(account_number) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern, pattern).
		Limit(searchResultLimit).
		Find(&accounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"results": results})
	}

	for _, account := range accounts {
		results = append(results, SearchResult{
			ID:            account.ID,
			Name:          account.FullName(),
			AccountNumber: account.AccountNumber,
			Mobile:        account.MobileNumber,
		})
	}

	return c.JSON(fiber.Map{"results": results})
}
