package main

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/results"
	"github.com/lsulibraries/ldlpost/util/storage"
	"os"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] == "" {
		printUsage()
	}
	runHistory, err := storage.NewRunHistory(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer runHistory.Close()
	if len(os.Args) > 2 && os.Args[2] == "--last" {
		runSummary, err := runHistory.LastRunSummary()
		if err == nil && runSummary != nil {
			err = printRun(runSummary)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}
	err = runHistory.ForEach(func(key string, runSummary *results.RunSummary) error {
		return printRun(runSummary)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func printRun(runSummary *results.RunSummary) error {
	data, err := runSummary.ToJson()
	if err != nil {
		return err
	}
	fmt.Println(data)
	return nil
}

func printUsage() {
	msg := `
ldl_dump_runs prints the summary of each ldl_post_process run recorded
in a run history database to STDOUT, oldest first, in JSON format.
With --last, it prints only the most recent run.

Usage: ldl_dump_runs <path/to/runs.db> [--last]
`
	fmt.Println(msg)
	os.Exit(0)
}
