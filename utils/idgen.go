package utils

import (
	"strings"

	"bankflow/models"

	"github.com/google/uuid"
)

// Identifier prefixes and token lengths for the bank generated IDs
const (
	LegPrefix     = "LEG"
	AccountPrefix = "ACC"
	CifPrefix     = "CIF"
	AsacassPrefix = "ASA"

	legTokenLen     = 8
	accountTokenLen = 12
	cifTokenLen     = 10
	asacassTokenLen = 15
)

// randomToken returns n uppercase hex characters from a fresh random UUID.
// A UUID carries 32 hex characters, enough for the longest identifier.
func randomToken(n int) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return token[:n]
}

// AssignBankIdentifiers fills any empty bank identifier on the record.
// It runs once, right before the record is first persisted. Identifiers that
// are already set are left alone, so repeated calls never regenerate a value.
// Collisions are not handled here; the unique columns reject them on save.
func AssignBankIdentifiers(p *models.PersonalDetails) {
	if p.LegNumber == "" {
		p.LegNumber = LegPrefix + randomToken(legTokenLen)
	}
	if p.AccountNumber == "" {
		p.AccountNumber = AccountPrefix + randomToken(accountTokenLen)
	}
	if p.CifID == "" {
		p.CifID = CifPrefix + randomToken(cifTokenLen)
	}
	if p.AsacassNumber == "" {
		p.AsacassNumber = AsacassPrefix + randomToken(asacassTokenLen)
	}
}
