package results

import (
	"encoding/json"
	"fmt"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"github.com/satori/go.uuid"
	"io/ioutil"
)

// ParseFailure describes one RDF file that could not be read.
type ParseFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// RunSummary describes one post-processing run: what went in, what
// came out, and which objects need a human to look at them.
type RunSummary struct {
	RunId        string `json:"run_id"`
	ActiveConfig string `json:"active_config"`
	BaseTable    string `json:"base_table"`
	FilesDir     string `json:"files_dir"`
	RdfDir       string `json:"rdf_dir"`
	OutputFile   string `json:"output_file"`

	// FilesRead is the number of RDF files that parsed.
	FilesRead   int            `json:"files_read"`
	ParseErrors []ParseFailure `json:"parse_errors"`

	// ItemCount is the number of objects found in the RDF files,
	// and RowCount is the number of rows in the base table. The
	// run fails if they differ.
	ItemCount   int `json:"item_count"`
	RowCount    int `json:"row_count"`
	AssetsFound int `json:"assets_found"`

	// These list the subject URIs of objects that matched no
	// content model rule, no relationship pattern, or more than
	// one rule or pattern.
	Unclassified    []string `json:"unclassified"`
	Unrelated       []string `json:"unrelated"`
	MultiLabelItems []string `json:"multi_label_items"`

	Summary Summary `json:"summary"`
}

// NewRunSummary returns a summary with a new random RunId.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		RunId:           uuid.NewV4().String(),
		ParseErrors:     make([]ParseFailure, 0),
		Unclassified:    make([]string, 0),
		Unrelated:       make([]string, 0),
		MultiLabelItems: make([]string, 0),
		Summary:         NewSummary(),
	}
}

// AddParseError records an RDF file that could not be read.
func (runSummary *RunSummary) AddParseError(path string, err error) {
	runSummary.ParseErrors = append(runSummary.ParseErrors, ParseFailure{
		Path:  path,
		Error: err.Error(),
	})
}

// AddDerivedFields tallies the classification and relationship
// results for one object.
func (runSummary *RunSummary) AddDerivedFields(fields *models.DerivedFields) {
	if !fields.Classified {
		runSummary.Unclassified = append(runSummary.Unclassified, fields.Subject)
	}
	if !fields.Related {
		runSummary.Unrelated = append(runSummary.Unrelated, fields.Subject)
	}
	if fields.HasMultipleValues() {
		runSummary.MultiLabelItems = append(runSummary.MultiLabelItems, fields.Subject)
	}
}

// Succeeded returns true if the run finished, wrote its output and
// had no fatal errors. Parse errors and warnings don't count.
func (runSummary *RunSummary) Succeeded() bool {
	return runSummary.Summary.Succeeded()
}

// ToJson converts this object to pretty-printed JSON.
func (runSummary *RunSummary) ToJson() (string, error) {
	data, err := json.MarshalIndent(runSummary, "", "  ")
	return string(data), err
}

// DumpToFile writes this summary as JSON to pathToFile.
func (runSummary *RunSummary) DumpToFile(pathToFile string) error {
	data, err := runSummary.ToJson()
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(pathToFile, []byte(data), 0644)
	if err != nil {
		return fmt.Errorf("Cannot write run summary to '%s': %v", pathToFile, err)
	}
	return nil
}

// LoadRunSummary reads a summary written by DumpToFile.
func LoadRunSummary(pathToFile string) (*RunSummary, error) {
	runSummary := &RunSummary{}
	err := fileutil.JsonFileToObject(pathToFile, runSummary)
	if err != nil {
		return nil, err
	}
	return runSummary, nil
}
