package main

import (
	"fmt"
	"os"

	"fjacquet/csv-summary/cmd/categorize"
	"fjacquet/csv-summary/cmd/root"
	"fjacquet/csv-summary/cmd/summarize"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
