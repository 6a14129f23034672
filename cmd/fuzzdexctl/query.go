package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdessy/fuzzdex"
)

func init() {
	rootCmd.AddCommand(newQueryCmd())
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <records.json> <query.json>",
		Short: "Run a JSON-shaped logical query against a JSON array of records",
		Long: `query compiles the $and/$or boolean tree in query.json (or "-" for
stdin) and evaluates it record by record, admitting a record only when the
tree itself says it matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args)
		},
	}
}

func runQuery(args []string) error {
	if err := checkArgs(args, 2, "fuzzdexctl query <records.json> <query.json>"); err != nil {
		return err
	}
	recordsPath, queryPath := args[0], args[1]

	records, err := loadRecords(recordsPath)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}

	queryData, err := readInput(queryPath)
	if err != nil {
		return fmt.Errorf("loading query: %w", err)
	}
	var node map[string]any
	if err := json.Unmarshal(queryData, &node); err != nil {
		return fmt.Errorf("decoding query JSON object: %w", err)
	}

	expr, err := fuzzdex.CompileLogicalQuery(node)
	if err != nil {
		return fmt.Errorf("compiling query: %w", err)
	}

	opts := fuzzdex.DefaultOptions()
	opts.IncludeScore = true
	opts.IncludeMatches = true
	for _, keyID := range fuzzdex.LeafKeyIDs(expr) {
		opts.Keys = append(opts.Keys, fuzzdex.Key(keyID))
	}

	f, err := fuzzdex.New(records, opts, nil)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	results, err := f.SearchLogical(expr)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	printInfo("%d match(es)\n", len(results))
	return printSearchResults(results)
}
