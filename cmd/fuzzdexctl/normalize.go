package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdessy/fuzzdex/internal/normalize"
)

var (
	normalizeCaseSensitive bool
	normalizeIgnoreDiacrit bool
)

func init() {
	cmd := newNormalizeCmd()
	cmd.Flags().BoolVar(&normalizeCaseSensitive, "case-sensitive", false, "Disable lowercase folding")
	cmd.Flags().BoolVar(&normalizeIgnoreDiacrit, "ignore-diacritics", false, "Strip diacritics (NFD decompose, drop combining marks, NFC recompose)")
	rootCmd.AddCommand(cmd)
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>",
		Short: "Apply fuzzdex's text normalization to a string and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(args)
		},
	}
}

func runNormalize(args []string) error {
	if err := checkArgs(args, 1, "fuzzdexctl normalize <text>"); err != nil {
		return err
	}
	out := normalize.Normalize(args[0], normalizeCaseSensitive, normalizeIgnoreDiacrit)
	if jsonOut {
		return printJSON(map[string]string{"input": args[0], "normalized": out})
	}
	fmt.Println(out)
	return nil
}
