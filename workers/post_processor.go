package workers

import (
	"encoding/json"
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/context"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/rdf"
	"github.com/lsulibraries/ldlpost/results"
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"github.com/lsulibraries/ldlpost/workbench"
	"time"
)

// PostProcessor turns the xml-to-csv output for one LDL collection,
// plus the collection's RELS-EXT files, into a CSV that Islandora
// Workbench can ingest.
//
// The base table's rows and the objects in the RELS-EXT files are
// matched by position, so the base table must list objects in the
// same order the RELS-EXT file names sort in.
type PostProcessor struct {
	Context *context.Context

	// BaseTable is the CSV file from the xml-to-csv step.
	BaseTable string

	// FilesDir holds the exported companion assets.
	FilesDir string

	// RdfDir holds the RELS-EXT files. This is usually the same
	// as FilesDir.
	RdfDir string

	// OutputFile is where the Workbench table goes. It's written
	// as XLSX if the name ends in .xlsx, CSV otherwise.
	OutputFile string

	RunSummary *results.RunSummary
}

// NewPostProcessor returns a new PostProcessor. If rdfDir is empty,
// RELS-EXT files are read from filesDir.
func NewPostProcessor(_context *context.Context, baseTable, filesDir, rdfDir, outputFile string) (*PostProcessor, error) {
	if _context == nil {
		return nil, fmt.Errorf("Param _context cannot be nil")
	}
	if baseTable == "" {
		return nil, fmt.Errorf("Param baseTable cannot be empty")
	}
	if filesDir == "" {
		return nil, fmt.Errorf("Param filesDir cannot be empty")
	}
	if outputFile == "" {
		return nil, fmt.Errorf("Param outputFile cannot be empty")
	}
	if rdfDir == "" {
		rdfDir = filesDir
	}
	runSummary := results.NewRunSummary()
	runSummary.ActiveConfig = _context.Config.ActiveConfig
	runSummary.BaseTable = baseTable
	runSummary.FilesDir = filesDir
	runSummary.RdfDir = rdfDir
	runSummary.OutputFile = outputFile
	return &PostProcessor{
		Context:    _context,
		BaseTable:  baseTable,
		FilesDir:   filesDir,
		RdfDir:     rdfDir,
		OutputFile: outputFile,
		RunSummary: runSummary,
	}, nil
}

// Run prepares the base table, derives each object's fields from the
// RELS-EXT files, and writes the Workbench table. RDF files that
// can't be parsed are skipped and recorded in the RunSummary. Any
// other problem stops the run before output is written, and is
// returned as an error. If the number of objects in the RELS-EXT
// files doesn't match the number of rows in the base table, the
// error is a *workbench.AlignmentError.
func (processor *PostProcessor) Run() (*models.MetadataTable, error) {
	processor.RunSummary.Summary.Start()
	processor.Context.MessageLog.Info("Starting run %s", processor.RunSummary.RunId)
	table, err := processor.run()
	if err != nil {
		processor.RunSummary.Summary.AddError(err.Error())
		processor.Context.MessageLog.Error(err.Error())
	}
	processor.RunSummary.Summary.Finish()
	processor.saveRunSummary()
	processor.Context.LogStats()
	return table, err
}

func (processor *PostProcessor) run() (*models.MetadataTable, error) {
	config := processor.Context.Config
	vocabulary, err := config.LoadVocabulary()
	if err != nil {
		return nil, err
	}
	table, err := processor.prepareBaseTable()
	if err != nil {
		return nil, err
	}
	statements, err := processor.collectStatements()
	if err != nil {
		return nil, err
	}
	items := rdf.GroupItems(statements)
	processor.RunSummary.ItemCount = len(items)
	processor.Context.MessageLog.Info("Found %d objects in %d RDF files",
		len(items), len(processor.RunSummary.ParseErrors)+processor.RunSummary.FilesRead)

	deriver := rdf.NewDeriver(vocabulary, config.MultiValueDelimiter)
	deriver.UnclassifiedMarker = config.UnclassifiedMarker
	derived := make([]*models.DerivedFields, len(items))
	for i, item := range items {
		derived[i] = deriver.Derive(item)
		processor.record(derived[i])
	}

	for _, mismatch := range workbench.CheckIdentifiers(table, derived) {
		processor.warn(mismatch)
	}
	if err := workbench.Assemble(table, derived); err != nil {
		return nil, err
	}
	if err := workbench.Write(table, processor.OutputFile); err != nil {
		return nil, err
	}
	processor.Context.MessageLog.Info("Wrote %d rows to %s", len(table.Records), processor.OutputFile)
	return table, nil
}

// prepareBaseTable loads the base table and adds the file, access
// terms and other columns Workbench needs.
func (processor *PostProcessor) prepareBaseTable() (*models.MetadataTable, error) {
	config := processor.Context.Config
	table, err := workbench.LoadBaseTable(processor.BaseTable)
	if err != nil {
		return nil, err
	}
	processor.RunSummary.RowCount = len(table.Records)
	finder, err := fileutil.NewAssetFinder(processor.FilesDir, config.AssetMarker, config.AssetPathPrefix)
	if err != nil {
		return nil, err
	}
	if config.VerifyAssetMimeType {
		finder.RequireMimeType(config.AssetMimeType)
	}
	processor.Context.MessageLog.Info("Base table %s has %d rows. Found %d assets in %s",
		processor.BaseTable, len(table.Records), finder.Count(), processor.FilesDir)
	preparer := workbench.NewTablePreparer(finder)
	if err := preparer.Prepare(table); err != nil {
		return nil, err
	}
	for _, warning := range preparer.Warnings {
		processor.warn(warning)
	}
	for _, record := range table.Records {
		if record.Get(constants.ColFile) != "" {
			processor.RunSummary.AssetsFound++
		}
	}
	return table, nil
}

// collectStatements reads every RDF file in RdfDir. Files that don't
// parse are logged and skipped.
func (processor *PostProcessor) collectStatements() ([]*models.Statement, error) {
	collector := rdf.NewCollector()
	err := collector.CollectDir(processor.RdfDir, processor.Context.Config.RdfPattern)
	if err != nil {
		return nil, err
	}
	for _, file := range collector.FilesRead {
		processor.Context.MessageLog.Debug("Read %s", file)
	}
	for _, parseError := range collector.ParseErrors {
		processor.Context.MessageLog.Warning(parseError.Error())
		processor.RunSummary.AddParseError(parseError.Path, parseError.Err)
	}
	processor.RunSummary.FilesRead = len(collector.FilesRead)
	return collector.Statements, nil
}

// record tallies one object's derived fields and dumps them into
// the JSON log.
func (processor *PostProcessor) record(fields *models.DerivedFields) {
	processor.RunSummary.AddDerivedFields(fields)
	if fields.Classified && fields.Related && !fields.HasMultipleValues() {
		processor.Context.IncrementSucceeded()
	} else {
		processor.Context.IncrementFailed()
	}
	if fields.HasMultipleValues() {
		processor.Context.MessageLog.Warning("%s matched more than one rule: model '%s', parent '%s'",
			fields.Subject, fields.Model, fields.ParentId)
	}
	if !fields.Classified {
		processor.Context.MessageLog.Info("%s matched no content model", fields.Subject)
	}
	processor.logJson(fields)
}

// logJson dumps an object's derived fields into the JSON log,
// surrounded by markers that make it easy to find.
func (processor *PostProcessor) logJson(fields *models.DerivedFields) {
	jsonBytes, err := json.Marshal(fields)
	if err != nil {
		processor.Context.MessageLog.Error("Cannot convert fields for %s to JSON: %v",
			fields.Subject, err)
		return
	}
	timestamp := time.Now().UTC().Format(time.RFC3339)
	startMessage := fmt.Sprintf("-------- BEGIN %s | Run: %s | Time: %s --------",
		fields.Subject, processor.RunSummary.RunId, timestamp)
	endMessage := fmt.Sprintf("-------- END %s | Run: %s | Time: %s --------",
		fields.Subject, processor.RunSummary.RunId, timestamp)
	processor.Context.JsonLog.Println(startMessage, "\n",
		string(jsonBytes), "\n",
		endMessage)
}

func (processor *PostProcessor) warn(message string) {
	processor.Context.MessageLog.Warning(message)
	processor.RunSummary.Summary.AddWarning("%s", message)
}

// saveRunSummary adds this run to the run history, if there is one.
func (processor *PostProcessor) saveRunSummary() {
	if processor.Context.RunHistory == nil {
		return
	}
	err := processor.Context.RunHistory.Save(processor.RunSummary)
	if err != nil {
		processor.Context.MessageLog.Error("Cannot save run summary to %s: %v",
			processor.Context.RunHistory.FilePath(), err)
	}
}
