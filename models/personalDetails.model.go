package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender codes stored on PersonalDetails
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// PersonalDetails is the root record of the onboarding workflow. The three
// dependent records hang off it one-to-one and are removed with it.
type PersonalDetails struct {
	gorm.Model
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"size:10;not null" json:"gender"`

	MobileNumber string `gorm:"size:15;unique;not null" json:"mobile_number"`
	EmailID      string `gorm:"size:254;unique;not null" json:"email_id"`

	Address1 string `gorm:"type:text;not null" json:"address1"`
	Address2 string `gorm:"type:text" json:"address2"`
	Pincode  string `gorm:"size:10;not null" json:"pincode"`
	City     string `gorm:"size:100;not null" json:"city"`
	State    string `gorm:"size:100;not null" json:"state"`

	AadharNumber  string `gorm:"size:12;unique;not null" json:"aadhar_number"`
	PanCardNumber string `gorm:"size:10;unique;not null" json:"pan_card_number"`

	// Bank generated identifiers, assigned once before first persistence
	// and never regenerated afterwards.
	LegNumber     string `gorm:"size:20;unique" json:"leg_number"`
	AccountNumber string `gorm:"size:20;unique" json:"account_number"`
	CifID         string `gorm:"size:20;unique" json:"cif_id"`
	AsacassNumber string `gorm:"size:20;unique" json:"asacass_number"`

	FamilyDetails  *FamilyDetails  `gorm:"foreignKey:PersonalDetailsID;constraint:OnDelete:CASCADE" json:"family_details,omitempty"`
	NomineeDetails *NomineeDetails `gorm:"foreignKey:PersonalDetailsID;constraint:OnDelete:CASCADE" json:"nominee_details,omitempty"`
	AccountDetails *AccountDetails `gorm:"foreignKey:PersonalDetailsID;constraint:OnDelete:CASCADE" json:"account_details,omitempty"`
}

// FullName is how the record is presented on the dashboard and in search results.
func (p *PersonalDetails) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HasBankIdentifiers reports whether all four generated identifiers are set.
func (p *PersonalDetails) HasBankIdentifiers() bool {
	return p.LegNumber != "" && p.AccountNumber != "" && p.CifID != "" && p.AsacassNumber != ""
}
