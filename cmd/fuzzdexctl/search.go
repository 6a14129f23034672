package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdessy/fuzzdex"
)

var (
	searchKeys      []string
	searchThreshold float64
	searchExtended  bool
	searchLimit     int
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().StringSliceVar(&searchKeys, "key", nil, "Dotted key path to search (repeatable); if omitted, only string records are searched")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", 0.6, "Maximum admissible fuzzy score in [0,1]")
	cmd.Flags().BoolVar(&searchExtended, "extended", false, "Use the extended query language instead of plain fuzzy search")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "Limit the number of results printed (0 = no limit)")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <records.json> <pattern>",
		Short: "Run a fuzzy or extended search against a JSON array of records",
		Long: `search builds an index from a JSON array (read from the given file, or
"-" for stdin) and runs pattern against it, printing ranked results.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
}

// searchResultLine is the shape printed for one ranked record.
type searchResultLine struct {
	RefIndex uint32         `json:"refIndex"`
	Score    *float64       `json:"score,omitempty"`
	Item     any            `json:"item"`
	Matches  []matchPayload `json:"matches,omitempty"`
}

type matchPayload struct {
	Key     string   `json:"key,omitempty"`
	Value   string   `json:"value"`
	Indices [][2]int `json:"indices"`
}

func runSearch(args []string) error {
	if err := checkArgs(args, 2, "fuzzdexctl search <records.json> <pattern>"); err != nil {
		return err
	}
	recordsPath, pattern := args[0], args[1]

	records, err := loadRecords(recordsPath)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	printVerbose("loaded %d record(s) from %s\n", len(records), recordsPath)

	opts := fuzzdex.DefaultOptions()
	opts.Threshold = searchThreshold
	opts.IncludeScore = true
	opts.IncludeMatches = true
	opts.UseExtendedSearch = searchExtended
	for _, k := range searchKeys {
		opts.Keys = append(opts.Keys, fuzzdex.Key(k))
	}

	f, err := fuzzdex.New(records, opts, nil)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	results, err := f.Search(pattern)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	printInfo("%d match(es) for %q\n", len(results), pattern)
	return printSearchResults(results)
}

func printSearchResults[T any](results []fuzzdex.FuseResult[T]) error {
	lines := make([]searchResultLine, 0, len(results))
	for _, r := range results {
		line := searchResultLine{RefIndex: r.RefIndex, Score: r.Score, Item: r.Item}
		for _, m := range r.Matches {
			line.Matches = append(line.Matches, matchPayload{Key: m.Key, Value: m.Value, Indices: m.Indices})
		}
		lines = append(lines, line)
	}

	if jsonOut {
		return printJSON(lines)
	}
	for _, line := range lines {
		score := "-"
		if line.Score != nil {
			score = fmt.Sprintf("%.4f", *line.Score)
		}
		item, _ := json.Marshal(line.Item)
		fmt.Printf("[%d] score=%s %s\n", line.RefIndex, score, string(item))
		for _, m := range line.Matches {
			fmt.Printf("    %s: %q %v\n", m.Key, m.Value, m.Indices)
		}
	}
	return nil
}

// loadRecords reads a JSON array of records from path ("-" for stdin).
func loadRecords(path string) ([]any, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	var records []any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding JSON array: %w", err)
	}
	return records, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
