package models

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
)

// MetadataRecord is one row of the Workbench table: the descriptive
// columns that came from the base CSV plus the columns derived from
// RELS-EXT.
type MetadataRecord struct {
	Values map[string]string
}

// NewMetadataRecord returns an empty record.
func NewMetadataRecord() *MetadataRecord {
	return &MetadataRecord{
		Values: make(map[string]string),
	}
}

// Get returns the value of column, or an empty string.
func (record *MetadataRecord) Get(column string) string {
	return record.Values[column]
}

// Set sets the value of column.
func (record *MetadataRecord) Set(column, value string) {
	record.Values[column] = value
}

// Identifier returns the object's PID.
func (record *MetadataRecord) Identifier() string {
	return record.Values[constants.ColId]
}

// ApplyDerivedFields copies the fields derived from an Item into the
// record.
func (record *MetadataRecord) ApplyDerivedFields(fields *DerivedFields) {
	record.Set(constants.ColParentId, fields.ParentId)
	record.Set(constants.ColFieldWeight, fields.Weight)
	record.Set(constants.ColFieldModel, fields.Model)
	record.Set(constants.ColFieldViewerOverride, fields.ViewerOverride)
	record.Set(constants.ColFieldEdtfDateIssued, fields.DateIssued)
}

// MetadataTable is an ordered set of columns and an ordered list of
// records.
type MetadataTable struct {
	Header  []string
	Records []*MetadataRecord
}

// NewMetadataTable returns a table with the specified columns and
// no records.
func NewMetadataTable(header []string) *MetadataTable {
	return &MetadataTable{
		Header:  header,
		Records: make([]*MetadataRecord, 0),
	}
}

// HasColumn returns true if the table has the named column.
func (table *MetadataTable) HasColumn(column string) bool {
	return table.columnIndex(column) > -1
}

// AddColumn appends column to the header, with value in every record.
// If the column already exists, its values are overwritten in place
// and its position is unchanged.
func (table *MetadataTable) AddColumn(column, value string) {
	if !table.HasColumn(column) {
		table.Header = append(table.Header, column)
	}
	for _, record := range table.Records {
		record.Set(column, value)
	}
}

// DropColumn removes column from the header and every record. It's
// not an error to drop a column that doesn't exist.
func (table *MetadataTable) DropColumn(column string) {
	index := table.columnIndex(column)
	if index < 0 {
		return
	}
	table.Header = append(table.Header[:index], table.Header[index+1:]...)
	for _, record := range table.Records {
		delete(record.Values, column)
	}
}

// RenameColumn renames column from to column to. Returns an error if
// from doesn't exist or to already does.
func (table *MetadataTable) RenameColumn(from, to string) error {
	index := table.columnIndex(from)
	if index < 0 {
		return fmt.Errorf("Table has no column '%s'", from)
	}
	if table.HasColumn(to) {
		return fmt.Errorf("Table already has a column '%s'", to)
	}
	table.Header[index] = to
	for _, record := range table.Records {
		record.Values[to] = record.Values[from]
		delete(record.Values, from)
	}
	return nil
}

// Row returns the record's values in header order.
func (table *MetadataTable) Row(record *MetadataRecord) []string {
	row := make([]string, len(table.Header))
	for i, column := range table.Header {
		row[i] = record.Get(column)
	}
	return row
}

func (table *MetadataTable) columnIndex(column string) int {
	for i, name := range table.Header {
		if name == column {
			return i
		}
	}
	return -1
}

// DerivedFields are the values recovered from one Item's RELS-EXT
// statements.
type DerivedFields struct {
	ItemIndex      int    `json:"item_index"`
	Subject        string `json:"subject"`
	SourceFile     string `json:"source_file"`
	ParentId       string `json:"parent_id"`
	Weight         string `json:"field_weight"`
	Model          string `json:"field_model"`
	ViewerOverride string `json:"field_viewer_override"`
	DateIssued     string `json:"field_edtf_date_issued"`
	Classified     bool   `json:"classified"`
	Related        bool   `json:"related"`
	LabelCount     int    `json:"label_count"`
	LinkCount      int    `json:"link_count"`
}

// HasMultipleValues returns true if more than one classification or
// relationship rule fired for the item.
func (fields *DerivedFields) HasMultipleValues() bool {
	return fields.LabelCount > 1 || fields.LinkCount > 1
}
