package models

import (
	"time"

	"gorm.io/gorm"
)

// NomineeDetails model, at most one per PersonalDetails
type NomineeDetails struct {
	gorm.Model
	PersonalDetailsID uint `gorm:"uniqueIndex;not null" json:"personal_details_id"`

	NomineeName          string    `gorm:"size:200;not null" json:"nominee_name"`
	NomineeRelation      string    `gorm:"size:50;not null" json:"nominee_relation"`
	NomineeDateOfBirth   time.Time `gorm:"type:date;not null" json:"nominee_date_of_birth"`
	NomineeMobileNumber  string    `gorm:"size:15;not null" json:"nominee_mobile_number"`
	NomineeEmail         string    `gorm:"size:254" json:"nominee_email"`
	NomineeAddress       string    `gorm:"type:text;not null" json:"nominee_address"`
	NomineeAadharNumber  string    `gorm:"size:12;not null" json:"nominee_aadhar_number"`
	NomineePanCardNumber string    `gorm:"size:10;not null" json:"nominee_pan_card_number"`
}
