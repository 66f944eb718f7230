package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/spf13/cobra"

	"tableau"
	"tableau/store/duck"
	"tableau/util"
)

var (
	layoutPath string
	logPath    string
	keyField   string
)

var rootCmd = &cobra.Command{
	Use:   "browse <data.ndjson>",
	Short: "Browse a newline-delimited json file as a table",
	Long: `Load a newline-delimited json file into an in-memory duckdb table and
browse it: windowed rendering for large files, selection with bulk delete,
a detail view per record, and layout-driven columns.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {

	ctx := context.Background()

	logFile := util.OpenLog(logPath, 0644)
	defer util.CloseLog(logFile)
	lgr := &sabot.Sabot{Writer: logFile}

	err := tableau.SampleLayout(layoutPath)
	if err != nil {
		return err
	}

	dk, err := duck.New(keyField, lgr)
	if err != nil {
		return err
	}
	defer dk.Close()

	err = dk.LoadNDJSON(args[0])
	if err != nil {
		return err
	}

	model, err := tableau.NewModel(ctx, dk, dk, layoutPath, lgr)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model)
	_, err = program.Run()
	return err
}

func main() {

	rootCmd.Flags().StringVarP(&layoutPath, "layout", "l", "layout.yaml", "layout file")
	rootCmd.Flags().StringVar(&logPath, "log", "browse.log", "log file")
	rootCmd.Flags().StringVar(&keyField, "key", "id", "row key field")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
