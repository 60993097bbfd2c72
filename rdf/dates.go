package rdf

import (
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
)

// dateIssuedOffset counts back from the end of an Item. The delimiter
// that closed the Item is its last statement, so for all but the final
// Item this is the second-to-last element of the record.
const dateIssuedOffset = -3

// ExtractDateIssued returns the issue date of an Item, which is the
// filtered text of its third-from-last statement if that statement is
// dateIssued. Otherwise it returns an empty string. No other position
// is checked.
func ExtractDateIssued(item *models.Item) string {
	statement := item.At(dateIssuedOffset)
	if statement == nil || statement.Name != constants.RelDateIssued {
		return ""
	}
	return statement.FilteredText
}
