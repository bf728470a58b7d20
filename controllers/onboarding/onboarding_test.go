package onboardingController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankflow/config"
	onboardingController "bankflow/controllers/onboarding"
	"bankflow/database"
	"bankflow/models"
	onboardingRoutes "bankflow/routers/onboardingRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		BranchCode: "MAIN001",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database and its pragmas alive
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.PersonalDetails{},
		&models.FamilyDetails{},
		&models.NomineeDetails{},
		&models.AccountDetails{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	onboardingRoutes.SetupOnboardingRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

type responseEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func personalPayload(n int) map[string]interface{} {
	return map[string]interface{}{
		"first_name":      "Asha",
		"last_name":       "Rao",
		"date_of_birth":   "1990-05-01",
		"gender":          "F",
		"mobile_number":   fmt.Sprintf("99900011%02d", n),
		"email_id":        fmt.Sprintf("asha%d@example.com", n),
		"address1":        "12 MG Road",
		"pincode":         "560001",
		"city":            "Bengaluru",
		"state":           "Karnataka",
		"aadhar_number":   fmt.Sprintf("1234123412%02d", n),
		"pan_card_number": fmt.Sprintf("ABCDE%04dF", n),
	}
}

func familyPayload() map[string]interface{} {
	return map[string]interface{}{
		"spouse_name":                "Vikram Rao",
		"children_count":             1,
		"father_name":                "Ravi Rao",
		"mother_name":                "Meena Rao",
		"emergency_contact_name":     "Ravi Rao",
		"emergency_contact_relation": "Father",
		"emergency_contact_mobile":   "9990002222",
	}
}

func nomineePayload() map[string]interface{} {
	return map[string]interface{}{
		"nominee_name":            "Ravi Rao",
		"nominee_relation":        "Father",
		"nominee_date_of_birth":   "1960-01-15",
		"nominee_mobile_number":   "9990003333",
		"nominee_address":         "12 MG Road",
		"nominee_aadhar_number":   "432143214321",
		"nominee_pan_card_number": "FGHIJ5678K",
	}
}

func accountPayload(accountType string) map[string]interface{} {
	return map[string]interface{}{
		"account_type":   accountType,
		"scheme_type":    "REGULAR",
		"deposit_amount": "1500.00",
	}
}

// createPersonal submits the personal form and returns the persisted record
func createPersonal(t *testing.T, app *fiber.App, n int) models.PersonalDetails {
	t.Helper()

	resp := doJSON(t, app, "POST", "/accounts/personal-details", personalPayload(n))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		PersonalDetails models.PersonalDetails `json:"personal_details"`
		NextStep        string                 `json:"next_step"`
	}
	envelope := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.NotZero(t, data.PersonalDetails.ID)
	return data.PersonalDetails
}

func TestCreatePersonalDetailsGeneratesIdentifiers(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	var stored models.PersonalDetails
	require.NoError(t, database.Database.Db.First(&stored, created.ID).Error)

	assert.True(t, strings.HasPrefix(stored.LegNumber, "LEG"))
	assert.True(t, strings.HasPrefix(stored.AccountNumber, "ACC"))
	assert.True(t, strings.HasPrefix(stored.CifID, "CIF"))
	assert.True(t, strings.HasPrefix(stored.AsacassNumber, "ASA"))
	assert.True(t, stored.HasBankIdentifiers())
}

func TestEditPersonalDetailsKeepsIdentifiers(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	payload := personalPayload(1)
	payload["city"] = "Mysuru"
	resp := doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-personal/%d", created.ID), payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.PersonalDetails
	require.NoError(t, database.Database.Db.First(&stored, created.ID).Error)

	assert.Equal(t, "Mysuru", stored.City)
	assert.Equal(t, created.LegNumber, stored.LegNumber)
	assert.Equal(t, created.AccountNumber, stored.AccountNumber)
	assert.Equal(t, created.CifID, stored.CifID)
	assert.Equal(t, created.AsacassNumber, stored.AsacassNumber)
}

func TestCreatePersonalDetailsValidationPersistsNothing(t *testing.T) {
	app := setupTestApp(t)

	payload := personalPayload(1)
	payload["pan_card_number"] = "bad"
	resp := doJSON(t, app, "POST", "/accounts/personal-details", payload)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.PersonalDetails{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePersonalDetailsRejectsDuplicateUniqueFields(t *testing.T) {
	app := setupTestApp(t)

	createPersonal(t, app, 1)

	// Same mobile, everything else fresh
	payload := personalPayload(2)
	payload["mobile_number"] = personalPayload(1)["mobile_number"]
	resp := doJSON(t, app, "POST", "/accounts/personal-details", payload)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(envelope.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "mobile_number")

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.PersonalDetails{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWorkflowHappyPath(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/accounts/family-details/%d", created.ID), familyPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", fmt.Sprintf("/accounts/nominee-details/%d", created.ID), nomineePayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", fmt.Sprintf("/accounts/account-details/%d", created.ID), accountPayload("SAVINGS"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var account models.AccountDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).First(&account).Error)

	assert.True(t, account.CurrentBalance.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, account.DepositAmount.Equal(account.CurrentBalance))
	assert.Nil(t, account.MaturityDate)
	assert.True(t, account.IsActive)
	assert.False(t, account.IsApproved)
	assert.Equal(t, "MAIN001", account.BranchCode)
	assert.False(t, account.DateOfOpening.IsZero())

	resp = doJSON(t, app, "GET", fmt.Sprintf("/accounts/account-summary/%d", created.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		PersonalDetails *models.PersonalDetails `json:"personal_details"`
		FamilyDetails   *models.FamilyDetails   `json:"family_details"`
		NomineeDetails  *models.NomineeDetails  `json:"nominee_details"`
		AccountDetails  *models.AccountDetails  `json:"account_details"`
	}
	envelope := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	require.NotNil(t, summary.PersonalDetails)
	require.NotNil(t, summary.FamilyDetails)
	require.NotNil(t, summary.NomineeDetails)
	require.NotNil(t, summary.AccountDetails)
	assert.Equal(t, "Ravi Rao", summary.FamilyDetails.FatherName)
}

func TestFixedDepositDerivesMaturityDate(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/accounts/account-details/%d", created.ID), accountPayload("FIXED_DEPOSIT"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var account models.AccountDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).First(&account).Error)

	require.NotNil(t, account.MaturityDate)
	assert.Equal(t,
		account.DateOfOpening.AddDate(0, 0, models.MaturityTermDays).Format("2006-01-02"),
		account.MaturityDate.Format("2006-01-02"))

	// Editing must not recompute the maturity date
	originalMaturity := account.MaturityDate.Format("2006-01-02")
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-account/%d", created.ID), accountPayload("FIXED_DEPOSIT"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).First(&account).Error)
	require.NotNil(t, account.MaturityDate)
	assert.Equal(t, originalMaturity, account.MaturityDate.Format("2006-01-02"))
}

func TestCreateDependentTwiceConflicts(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/accounts/family-details/%d", created.ID), familyPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", fmt.Sprintf("/accounts/family-details/%d", created.ID), familyPayload())
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.FamilyDetails{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEditFamilyDetailsUpserts(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	// First edit creates the record
	resp := doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-family/%d", created.ID), familyPayload())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Second edit updates it in place
	payload := familyPayload()
	payload["father_name"] = "Suresh Rao"
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-family/%d", created.ID), payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var families []models.FamilyDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).Find(&families).Error)
	require.Len(t, families, 1)
	assert.Equal(t, "Suresh Rao", families[0].FatherName)
}

func TestEditNomineeDetailsUpserts(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	// First edit creates the record
	resp := doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-nominee/%d", created.ID), nomineePayload())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Second edit updates it in place
	payload := nomineePayload()
	payload["nominee_relation"] = "Uncle"
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-nominee/%d", created.ID), payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var nominees []models.NomineeDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).Find(&nominees).Error)
	require.Len(t, nominees, 1)
	assert.Equal(t, "Uncle", nominees[0].NomineeRelation)
}

func TestEditAccountDetailsUpserts(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	// First edit creates the record; the balance backfills from the deposit
	resp := doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-account/%d", created.ID), accountPayload("SAVINGS"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var account models.AccountDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).First(&account).Error)
	assert.True(t, account.CurrentBalance.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, account.IsActive)
	assert.Equal(t, "MAIN001", account.BranchCode)
	assert.False(t, account.DateOfOpening.IsZero())

	// Second edit updates the single record in place
	payload := accountPayload("CURRENT")
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-account/%d", created.ID), payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var accounts []models.AccountDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).Find(&accounts).Error)
	require.Len(t, accounts, 1)
	assert.Equal(t, "CURRENT", accounts[0].AccountType)
}

func TestEditAccountDetailsKeepsNonZeroBalance(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/accounts/account-details/%d", created.ID), accountPayload("SAVINGS"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Balance stays at its current value when the deposit amount changes
	payload := accountPayload("SAVINGS")
	payload["deposit_amount"] = "9999.00"
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/accounts/edit-account/%d", created.ID), payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var account models.AccountDetails
	require.NoError(t, database.Database.Db.Where("personal_details_id = ?", created.ID).First(&account).Error)
	assert.True(t, account.DepositAmount.Equal(decimal.RequireFromString("9999.00")))
	assert.True(t, account.CurrentBalance.Equal(decimal.RequireFromString("1500.00")))
}

func TestAccountSummaryWithAbsentDependents(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	resp := doJSON(t, app, "GET", fmt.Sprintf("/accounts/account-summary/%d", created.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		PersonalDetails *models.PersonalDetails `json:"personal_details"`
		FamilyDetails   *models.FamilyDetails   `json:"family_details"`
		NomineeDetails  *models.NomineeDetails  `json:"nominee_details"`
		AccountDetails  *models.AccountDetails  `json:"account_details"`
	}
	envelope := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	require.NotNil(t, summary.PersonalDetails)
	assert.Nil(t, summary.FamilyDetails)
	assert.Nil(t, summary.NomineeDetails)
	assert.Nil(t, summary.AccountDetails)
}

func TestUnknownParentReturnsNotFound(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, "GET", "/accounts/account-summary/999", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/accounts/family-details/999", familyPayload())
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/accounts/edit-nominee/999", nomineePayload())
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func searchRequest(t *testing.T, app *fiber.App, term string) []onboardingController.SearchResult {
	t.Helper()

	form := "search_term=" + term
	req := httptest.NewRequest("POST", "/accounts/search", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Results []onboardingController.SearchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Results
}

func TestSearchAccounts(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	// Case-insensitive substring of the last name
	results := searchRequest(t, app, "rao")
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)
	assert.Equal(t, "Asha Rao", results[0].Name)
	assert.Equal(t, created.AccountNumber, results[0].AccountNumber)

	// Substring of the generated account number
	results = searchRequest(t, app, strings.ToLower(created.AccountNumber[:6]))
	require.NotEmpty(t, results)

	// No match
	results = searchRequest(t, app, "nobody")
	assert.Empty(t, results)

	// Empty term returns an empty result set
	results = searchRequest(t, app, "")
	assert.Empty(t, results)
}

func TestSearchAccountsCapsResults(t *testing.T) {
	app := setupTestApp(t)

	for i := 1; i <= 12; i++ {
		createPersonal(t, app, i)
	}

	results := searchRequest(t, app, "rao")
	assert.Len(t, results, 10)
}

func TestDeleteParentCascades(t *testing.T) {
	app := setupTestApp(t)

	created := createPersonal(t, app, 1)

	doJSON(t, app, "POST", fmt.Sprintf("/accounts/family-details/%d", created.ID), familyPayload())
	doJSON(t, app, "POST", fmt.Sprintf("/accounts/nominee-details/%d", created.ID), nomineePayload())
	doJSON(t, app, "POST", fmt.Sprintf("/accounts/account-details/%d", created.ID), accountPayload("SAVINGS"))

	// Hard delete at the storage level; the schema cascade removes dependents
	require.NoError(t, database.Database.Db.Exec("DELETE FROM personal_details WHERE id = ?", created.ID).Error)

	var count int64
	require.NoError(t, database.Database.Db.Unscoped().Model(&models.FamilyDetails{}).Where("personal_details_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, database.Database.Db.Unscoped().Model(&models.NomineeDetails{}).Where("personal_details_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, database.Database.Db.Unscoped().Model(&models.AccountDetails{}).Where("personal_details_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDashboardListsAccounts(t *testing.T) {
	app := setupTestApp(t)

	createPersonal(t, app, 1)
	createPersonal(t, app, 2)

	resp := doJSON(t, app, "GET", "/accounts/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Accounts []models.PersonalDetails `json:"accounts"`
	}
	envelope := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Len(t, data.Accounts, 2)
}
