// Package main provides the entry point for the statement-csv CLI.
package main

import (
	"os"

	"msalas/statement-csv/cmd/batch"
	"msalas/statement-csv/cmd/convert"
	"msalas/statement-csv/cmd/root"
	"msalas/statement-csv/cmd/summarize"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(summarize.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
