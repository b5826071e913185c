package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	jp "github.com/reoring/jsonparser"
	"github.com/reoring/jsonparser/examples/formula"
)

// schema runs one parser over a document and returns a printable summary of
// the value.
type schema func(jp.Node) (string, error)

func schemaOf[T any](p jp.Parser[T], show func(T) string) schema {
	return func(n jp.Node) (string, error) {
		v, err := jp.Document(n, p).Unwrap()
		if err != nil {
			return "", err
		}
		return show(v), nil
	}
}

var schemas = map[string]schema{
	"formula": schemaOf(formula.Parse, formula.Formula.String),
	"record":  schemaOf(formula.ParseRecord, showRecord),
	"sheet":   schemaOf(formula.ParseSheet, showSheet),
}

func showRecord(r formula.Record) string {
	return fmt.Sprintf("type=%s prop1=%d prop2=%t", r.Type, r.Prop1, r.Prop2)
}

func showSheet(s formula.Sheet) string {
	return fmt.Sprintf("%s: %d cell(s)", s.Name, len(s.Cells))
}

func schemaNames() []string {
	names := make([]string, 0, len(schemas))
	for n := range schemas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the schemas known to check and serve",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range schemaNames() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}
