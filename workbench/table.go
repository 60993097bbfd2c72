package workbench

import (
	"encoding/csv"
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util"
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"io"
	"os"
	"strings"
)

const utf8Bom = "\uFEFF"

// LoadBaseTable reads the CSV produced by the xml-to-csv step. The
// first row is the header. The table must have a PID column, and its
// rows must be in the same identifier order as the RELS-EXT files.
func LoadBaseTable(pathToCsv string) (*models.MetadataTable, error) {
	file, err := os.Open(pathToCsv)
	if err != nil {
		return nil, fmt.Errorf("Cannot open base table '%s': %v", pathToCsv, err)
	}
	defer file.Close()
	table, err := ReadBaseTable(file)
	if err != nil {
		return nil, fmt.Errorf("Error reading base table '%s': %v", pathToCsv, err)
	}
	return table, nil
}

// ReadBaseTable reads a base table from reader. Short rows are padded
// with empty values. Rows with more values than the header are an
// error, as are duplicate column names.
func ReadBaseTable(reader io.Reader) (*models.MetadataTable, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("Table is empty")
	} else if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = util.CleanString(strings.TrimPrefix(header[i], utf8Bom))
		if util.StringListIndex(header, header[i]) != i {
			return nil, fmt.Errorf("Column '%s' appears more than once", header[i])
		}
	}
	if !util.StringListContains(header, constants.ColPID) {
		return nil, fmt.Errorf("Table has no %s column", constants.ColPID)
	}
	table := models.NewMetadataTable(header)
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(row) > len(header) {
			line, _ := csvReader.FieldPos(0)
			return nil, fmt.Errorf("Line %d has %d values but there are only %d columns",
				line, len(row), len(header))
		}
		record := models.NewMetadataRecord()
		for i, column := range header {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			record.Set(column, value)
		}
		table.Records = append(table.Records, record)
	}
	return table, nil
}

// TablePreparer turns the xml-to-csv output into the base of a
// Workbench table, before anything is read from RELS-EXT.
type TablePreparer struct {
	// Finder locates each object's companion asset. If it's nil,
	// the file column is left empty.
	Finder *fileutil.AssetFinder

	// Warnings describes each record that could not be fully
	// prepared: unknown access groups, malformed PIDs and
	// unusable assets.
	Warnings []string
}

func NewTablePreparer(finder *fileutil.AssetFinder) *TablePreparer {
	return &TablePreparer{
		Finder:   finder,
		Warnings: make([]string, 0),
	}
}

// Prepare renames PID to id, adds the columns Workbench needs (see
// constants.PreparedColumns), fills in file and field_access_terms,
// and drops the columns Workbench can't use. The table is modified in
// place. Returns an error only if the table has no PID column.
func (preparer *TablePreparer) Prepare(table *models.MetadataTable) error {
	if err := table.RenameColumn(constants.ColPID, constants.ColId); err != nil {
		return err
	}
	for _, column := range constants.PreparedColumns {
		table.AddColumn(column, "")
	}
	for _, record := range table.Records {
		record.Set(constants.ColFile, preparer.assetPath(record.Identifier()))
		record.Set(constants.ColFieldAccessTerms, preparer.accessTerms(record.Identifier()))
	}
	for _, column := range constants.DroppedColumns {
		table.DropColumn(column)
	}
	return nil
}

func (preparer *TablePreparer) assetPath(pid string) string {
	if preparer.Finder == nil {
		return ""
	}
	assetPath, err := preparer.Finder.Find(pid)
	if err != nil {
		preparer.warn("%s: %v", pid, err)
		return ""
	}
	return assetPath
}

func (preparer *TablePreparer) accessTerms(pid string) string {
	prefix := util.InstitutionPrefix(pid)
	terms, ok := constants.AccessTerms[prefix]
	if !ok {
		preparer.warn("%s: no access group for namespace prefix '%s'", pid, prefix)
	}
	return terms
}

func (preparer *TablePreparer) warn(format string, a ...interface{}) {
	preparer.Warnings = append(preparer.Warnings, fmt.Sprintf(format, a...))
}
