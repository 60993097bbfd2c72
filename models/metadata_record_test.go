package models_test

import (
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func makeTable() *models.MetadataTable {
	table := models.NewMetadataTable([]string{"id", "title", "field_identifier"})
	for _, pid := range []string{"amistad:1", "amistad:2"} {
		record := models.NewMetadataRecord()
		record.Set("id", pid)
		record.Set("title", "Title of "+pid)
		record.Set("field_identifier", pid)
		table.Records = append(table.Records, record)
	}
	return table
}

func TestMetadataRecordGetSet(t *testing.T) {
	record := models.NewMetadataRecord()
	assert.Equal(t, "", record.Get("title"))
	assert.Equal(t, "", record.Identifier())
	record.Set("title", "Letter from Lewis Tappan")
	record.Set(constants.ColId, "amistad:7")
	assert.Equal(t, "Letter from Lewis Tappan", record.Get("title"))
	assert.Equal(t, "amistad:7", record.Identifier())
}

func TestMetadataRecordApplyDerivedFields(t *testing.T) {
	record := models.NewMetadataRecord()
	fields := &models.DerivedFields{
		ParentId:       "amistad:2",
		Weight:         "3",
		Model:          "Image",
		ViewerOverride: "OpenSeadragon",
		DateIssued:     "1923",
	}
	record.ApplyDerivedFields(fields)
	assert.Equal(t, "amistad:2", record.Get(constants.ColParentId))
	assert.Equal(t, "3", record.Get(constants.ColFieldWeight))
	assert.Equal(t, "Image", record.Get(constants.ColFieldModel))
	assert.Equal(t, "OpenSeadragon", record.Get(constants.ColFieldViewerOverride))
	assert.Equal(t, "1923", record.Get(constants.ColFieldEdtfDateIssued))
}

func TestMetadataTableColumns(t *testing.T) {
	table := makeTable()
	assert.True(t, table.HasColumn("title"))
	assert.False(t, table.HasColumn("file"))

	table.AddColumn("file", "")
	assert.Equal(t, []string{"id", "title", "field_identifier", "file"}, table.Header)
	assert.Equal(t, "", table.Records[1].Get("file"))

	// Adding an existing column keeps its position.
	table.AddColumn("title", "Untitled")
	assert.Equal(t, []string{"id", "title", "field_identifier", "file"}, table.Header)
	assert.Equal(t, "Untitled", table.Records[0].Get("title"))

	table.DropColumn("title")
	table.DropColumn("no_such_column")
	assert.Equal(t, []string{"id", "field_identifier", "file"}, table.Header)
	_, ok := table.Records[0].Values["title"]
	assert.False(t, ok)
}

func TestMetadataTableRenameColumn(t *testing.T) {
	table := makeTable()
	require.Nil(t, table.RenameColumn("id", "PID"))
	assert.Equal(t, []string{"PID", "title", "field_identifier"}, table.Header)
	assert.Equal(t, "amistad:2", table.Records[1].Get("PID"))
	assert.Equal(t, "", table.Records[1].Identifier())

	err := table.RenameColumn("nope", "id")
	require.NotNil(t, err)
	assert.Equal(t, "Table has no column 'nope'", err.Error())

	err = table.RenameColumn("PID", "title")
	require.NotNil(t, err)
	assert.Equal(t, "Table already has a column 'title'", err.Error())
}

func TestMetadataTableRow(t *testing.T) {
	table := makeTable()
	table.Records[0].Set("not_in_header", "x")
	assert.Equal(t, []string{"amistad:1", "Title of amistad:1", "amistad:1"},
		table.Row(table.Records[0]))
	table.Header = []string{"field_identifier", "missing"}
	assert.Equal(t, []string{"amistad:2", ""}, table.Row(table.Records[1]))
}

func TestDerivedFieldsHasMultipleValues(t *testing.T) {
	fields := &models.DerivedFields{LabelCount: 1, LinkCount: 1}
	assert.False(t, fields.HasMultipleValues())
	fields.LabelCount = 2
	assert.True(t, fields.HasMultipleValues())
	fields.LabelCount = 0
	fields.LinkCount = 2
	assert.True(t, fields.HasMultipleValues())
}
