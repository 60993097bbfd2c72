package main

import (
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/lsulibraries/ldlpost/context"
	"github.com/lsulibraries/ldlpost/workbench"
	"github.com/lsulibraries/ldlpost/workers"
	"os"
)

const (
	EXIT_OK         = 0
	EXIT_USAGE      = 1
	EXIT_CONFIG     = 2
	EXIT_FAILED     = 3
	EXIT_MISALIGNED = 4
	EXIT_SUMMARY    = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			printUsage()
			return EXIT_OK
		}
		fmt.Fprintln(os.Stderr, err.Error())
		printUsage()
		return EXIT_USAGE
	}
	config, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return EXIT_CONFIG
	}
	_context, err := context.NewContext(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return EXIT_CONFIG
	}
	defer _context.Close()

	processor, err := workers.NewPostProcessor(_context, opts.BaseTable,
		opts.FilesDir, opts.RdfDir, opts.OutputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return EXIT_USAGE
	}
	_, runErr := processor.Run()

	exitCode := EXIT_OK
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = EXIT_FAILED
		if _, ok := runErr.(*workbench.AlignmentError); ok {
			exitCode = EXIT_MISALIGNED
		}
	}
	if opts.Summary != "" {
		if err := processor.RunSummary.DumpToFile(opts.Summary); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			if exitCode == EXIT_OK {
				exitCode = EXIT_SUMMARY
			}
		}
	}

	runSummary := processor.RunSummary
	if exitCode == EXIT_OK || exitCode == EXIT_SUMMARY {
		fmt.Printf("Wrote %d rows to %s\n", runSummary.RowCount, opts.OutputFile)
	}
	fmt.Printf("Objects: %d  Unclassified: %d  Unrelated: %d  Multiple matches: %d  Unreadable RDF files: %d\n",
		runSummary.ItemCount, len(runSummary.Unclassified), len(runSummary.Unrelated),
		len(runSummary.MultiLabelItems), len(runSummary.ParseErrors))
	fmt.Println("Log:", _context.PathToLogFile())
	return exitCode
}

// Tell the user about the program.
func printUsage() {
	message := `
ldl_post_process builds an Islandora Workbench CSV for one LDL
collection from the collection's xml-to-csv output and its exported
RELS-EXT files.

Usage: ldl_post_process -c <csv> -f <files dir> -o <output> [--rdf <dir>]
                        [--config <path>] [--summary <path>] [--debug]

Param -c (--csv) is the CSV produced by the xml-to-csv step. It must
have a PID column, and its rows must be in the same order as the
RELS-EXT file names sort in.

Param -f (--files) is the directory of exported assets. Assets named
like <namespace>_<number>_PDF.<ext> are written into the file column
as Data/<name>. RELS-EXT files (*.rdf) are read from here too, unless
you specify --rdf.

Param -o (--output) is where the Workbench table goes. If the name
ends in .xlsx, it's written as an Excel workbook. Otherwise, CSV.

Param --config is an optional JSON config file. See config/ldl.json.

Param --summary is an optional path to which a JSON summary of the
run will be written, listing unreadable RDF files and the objects that
need review.

ldl_post_process has the following exit codes:

 0 - Workbench table was written.
 1 - Incorrect usage: required params missing.
 2 - Config file could not be loaded, or logs could not be opened.
 3 - Run failed. See the log. Nothing was written.
 4 - The base table and RELS-EXT files describe different numbers
     of objects. Nothing was written.
 5 - Workbench table was written, but the summary could not be.
`
	fmt.Println(message)
}
