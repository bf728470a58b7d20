package models

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account types
const (
	AccountTypeSavings          = "SAVINGS"
	AccountTypeCurrent          = "CURRENT"
	AccountTypeFixedDeposit     = "FIXED_DEPOSIT"
	AccountTypeRecurringDeposit = "RECURRING_DEPOSIT"
)

// Scheme types
const (
	SchemeTypeRegular       = "REGULAR"
	SchemeTypeSeniorCitizen = "SENIOR_CITIZEN"
	SchemeTypeStudent       = "STUDENT"
	SchemeTypeWomen         = "WOMEN"
	SchemeTypeRural         = "RURAL"
)

// MaturityTermDays is the deposit term applied when a fixed or recurring
// deposit is opened without an explicit maturity date.
const MaturityTermDays = 365

// DefaultInterestRate applies to new accounts
var DefaultInterestRate = decimal.NewFromFloat(3.50)

// AccountDetails model, at most one per PersonalDetails
type AccountDetails struct {
	gorm.Model
	PersonalDetailsID uint `gorm:"uniqueIndex;not null" json:"personal_details_id"`

	AccountType string `gorm:"size:20;not null" json:"account_type"`
	SchemeType  string `gorm:"size:20;not null" json:"scheme_type"`

	DateOfOpening  time.Time       `gorm:"type:date" json:"date_of_opening"`
	MaturityDate   *time.Time      `gorm:"type:date" json:"maturity_date"`
	DepositAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0.00" json:"deposit_amount"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);default:0.00" json:"current_balance"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsApproved bool `gorm:"default:false" json:"is_approved"`

	BranchCode   string          `gorm:"size:10;default:'MAIN001'" json:"branch_code"`
	InterestRate decimal.Decimal `gorm:"type:decimal(5,2);default:3.50" json:"interest_rate"`
}

// IsDeposit reports whether the account is a term deposit that matures.
func (a *AccountDetails) IsDeposit() bool {
	return a.AccountType == AccountTypeFixedDeposit || a.AccountType == AccountTypeRecurringDeposit
}

// ApplyOpeningDefaults fills the opening date and the derived maturity date
// before the record is first persisted. Already-set values are never touched,
// so calling it on an existing record is a no-op.
func (a *AccountDetails) ApplyOpeningDefaults() {
	if a.DateOfOpening.IsZero() {
		a.DateOfOpening = now.BeginningOfDay()
	}
	if a.IsDeposit() && a.MaturityDate == nil {
		maturity := a.DateOfOpening.AddDate(0, 0, MaturityTermDays)
		a.MaturityDate = &maturity
	}
}

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t string) bool {
	switch t {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeFixedDeposit, AccountTypeRecurringDeposit:
		return true
	}
	return false
}

// ValidSchemeType reports whether t is one of the supported scheme types.
func ValidSchemeType(t string) bool {
	switch t {
	case SchemeTypeRegular, SchemeTypeSeniorCitizen, SchemeTypeStudent, SchemeTypeWomen, SchemeTypeRural:
		return true
	}
	return false
}
