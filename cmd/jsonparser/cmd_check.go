package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	jp "github.com/reoring/jsonparser"
	"github.com/reoring/jsonparser/internal/config"
)

// errInvalid signals that the document was read but did not parse. The
// errors themselves have already been printed.
var errInvalid = errors.New("document is invalid")

func newCheckCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	var schemaName string
	var format string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse a document with a schema and print every error",
		Long: `Parse a JSON or YAML document with one of the built-in schemas.

Each error is printed on its own line as "<path>: <message>". Paths are JSON
Pointers unless --paths jsonpath is given. If no file is provided, the
document is read from stdin.

The exit status is non-zero when the document is unreadable or invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := schemas[schemaName]
			if !ok {
				return fmt.Errorf("unknown schema %q (known: %s)", schemaName, strings.Join(schemaNames(), ", "))
			}

			var data []byte
			var err error
			filename := "-"
			if len(args) == 0 {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				data, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			src, err := sourceFor(format, filename, data)
			if err != nil {
				return err
			}
			opt := cfg.ParseOpt()
			opt.OnWarning = func(w jp.Warning) {
				log.Warn("reader warning", "file", filename, "code", w.Code, "path", w.Path, "message", w.Message)
			}
			if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
				return fmt.Errorf("%s: %w", filename, jp.ErrMaxBytes)
			}

			root, err := jp.ReadDocument(cmd.Context(), src, opt)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			log.Debug("document read", "file", filename, "schema", schemaName, "bytes", len(data))

			summary, err := s(root)
			if err != nil {
				errs, ok := jp.AsErrors(err)
				if !ok {
					return err
				}
				out := cmd.OutOrStdout()
				for _, e := range errs {
					fmt.Fprintf(out, "%s: %s\n", renderPath(e.Path, cfg.Paths), e.Reason.Message())
				}
				log.Info("document invalid", "file", filename, "schema", schemaName, "errors", len(errs))
				return errInvalid
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaName, "schema", "s", "formula", "schema to check against (see the schemas command)")
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format: json, yaml or auto (by file extension)")
	cmd.Flags().StringVar(&cfg.Paths, "paths", cfg.Paths, "path style in error output: pointer or jsonpath")

	return cmd
}

func sourceFor(format, filename string, data []byte) (jp.Source, error) {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "json":
		return jp.JSONBytes(data), nil
	case "yaml":
		return jp.YAMLBytes(data), nil
	default:
		return nil, fmt.Errorf("--format must be json, yaml or auto, got %q", format)
	}
}

func renderPath(p jp.Path, style string) string {
	if style == "jsonpath" {
		return p.NormalizedPath()
	}
	return p.Pointer()
}
