package workbench

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util"
	"sort"
)

// AlignmentError means the base table and the RELS-EXT records
// describe different numbers of objects. Rows are matched to Items by
// position only, so nothing can be written when the counts differ.
type AlignmentError struct {
	Rows  int
	Items int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("Base table has %d rows but the RELS-EXT files describe %d objects",
		e.Rows, e.Items)
}

// Assemble copies the Nth set of derived fields into the Nth record of
// the table, adds the derived and placeholder columns, and sorts the
// records for Workbench. The table is modified in place. Returns an
// *AlignmentError, and leaves the table untouched, if the number of
// records and the number of derived field sets differ.
func Assemble(table *models.MetadataTable, derived []*models.DerivedFields) error {
	if len(table.Records) != len(derived) {
		return &AlignmentError{
			Rows:  len(table.Records),
			Items: len(derived),
		}
	}
	for _, column := range constants.DerivedColumns {
		table.AddColumn(column, "")
	}
	for _, column := range constants.PlaceholderColumns {
		table.AddColumn(column, "")
	}
	for i, record := range table.Records {
		record.ApplyDerivedFields(derived[i])
	}
	SortRecords(table.Records)
	return nil
}

// SortRecords puts records in the order Workbench should create them:
// by field_model, then field_weight, then parent_id, all ascending,
// then by field_identifier descending. All comparisons are plain
// string comparisons, so a weight of "10" sorts before "2". Records
// that tie on all four keep their original order.
func SortRecords(records []*models.MetadataRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		for _, column := range []string{
			constants.ColFieldModel,
			constants.ColFieldWeight,
			constants.ColParentId,
		} {
			if a.Get(column) != b.Get(column) {
				return a.Get(column) < b.Get(column)
			}
		}
		return a.Get(constants.ColFieldIdentifier) > b.Get(constants.ColFieldIdentifier)
	})
}

// CheckIdentifiers compares the PID each Item describes with the id of
// the record it will be matched to, and returns a description of each
// mismatch. Call this before Assemble, while records are still in
// their original order. A mismatch usually means the base table and
// the RELS-EXT files were not sorted the same way.
func CheckIdentifiers(table *models.MetadataTable, derived []*models.DerivedFields) []string {
	mismatches := make([]string, 0)
	for i, fields := range derived {
		if i >= len(table.Records) {
			break
		}
		itemPid := util.PidFromUri(fields.Subject)
		recordPid := table.Records[i].Identifier()
		if itemPid != recordPid {
			mismatches = append(mismatches, fmt.Sprintf(
				"Row %d is %s but object %d in %s describes %s",
				i+1, recordPid, fields.ItemIndex+1, fields.SourceFile, itemPid))
		}
	}
	return mismatches
}
