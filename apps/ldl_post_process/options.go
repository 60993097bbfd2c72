package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"github.com/op/go-logging"
	"path/filepath"
)

// Options are the command-line options. The short names match the
// ones the migration team's scripts already use.
type Options struct {
	ConfigFile string `long:"config" description:"Path to JSON config file (optional)"`
	BaseTable  string `short:"c" long:"csv" description:"Path to the xml-to-csv output for the collection" required:"true"`
	FilesDir   string `short:"f" long:"files" description:"Directory holding the exported assets and RELS-EXT files" required:"true"`
	RdfDir     string `long:"rdf" description:"Directory holding the RELS-EXT files, if not the files directory"`
	OutputFile string `short:"o" long:"output" description:"Path to write the Workbench CSV (or .xlsx) to" required:"true"`
	Summary    string `long:"summary" description:"Path to write a JSON run summary to (optional)"`
	Debug      bool   `long:"debug" description:"Log at DEBUG level and echo the log to STDERR"`
}

// parseOptions parses args, which should not include the program
// name. On --help it returns a *flags.Error of type flags.ErrHelp.
func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	for _, p := range []*string{&opts.ConfigFile, &opts.BaseTable, &opts.FilesDir,
		&opts.RdfDir, &opts.OutputFile, &opts.Summary} {
		*p = expandTilde(*p)
	}
	return opts, nil
}

// loadConfig returns the config named in --config, or the default
// config with logs next to the output file.
func (opts *Options) loadConfig() (*models.Config, error) {
	var config *models.Config
	if opts.ConfigFile != "" {
		var err error
		config, err = models.LoadConfigFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		config = models.NewConfig()
	}
	if config.LogDirectory == "" {
		config.LogDirectory = filepath.Dir(opts.OutputFile)
	}
	if opts.Debug {
		config.LogLevel = logging.DEBUG
		config.LogToStderr = true
	}
	return config, nil
}

func expandTilde(filePath string) string {
	expandedPath, err := fileutil.ExpandTilde(filePath)
	if err != nil {
		return filePath
	}
	return expandedPath
}
