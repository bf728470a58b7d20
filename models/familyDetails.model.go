package models

import (
	"gorm.io/gorm"
)

// FamilyDetails model, at most one per PersonalDetails
type FamilyDetails struct {
	gorm.Model
	PersonalDetailsID uint `gorm:"uniqueIndex;not null" json:"personal_details_id"`

	SpouseName       string `gorm:"size:200" json:"spouse_name"`
	SpouseOccupation string `gorm:"size:100" json:"spouse_occupation"`

	ChildrenCount   uint   `gorm:"default:0" json:"children_count"`
	ChildrenDetails string `gorm:"type:text" json:"children_details"`

	FatherName string `gorm:"size:200;not null" json:"father_name"`
	MotherName string `gorm:"size:200;not null" json:"mother_name"`

	EmergencyContactName     string `gorm:"size:200;not null" json:"emergency_contact_name"`
	EmergencyContactRelation string `gorm:"size:50;not null" json:"emergency_contact_relation"`
	EmergencyContactMobile   string `gorm:"size:15;not null" json:"emergency_contact_mobile"`
}
