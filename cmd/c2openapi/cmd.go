package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	openapi "github.com/talav/c2openapi"
	"github.com/talav/c2openapi/internal/model"
)

// usageError marks an argument/flag problem distinct from a pipeline
// failure, so exitCodeFor can tell "c2openapi" was invoked wrong (exit 1)
// apart from a failure while processing well-formed input (exit 2/3).
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

type options struct {
	title      string
	apiVersion string
	targetOAS  string
	format     string
	validate   bool
	sourceExts []string
	serverURLs []string
}

func newRootCmd(log *zerolog.Logger) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "c2openapi <src_dir> <out.json>",
		Short:         "Extract an OpenAPI description from annotated C source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError{fmt.Errorf("expected exactly 2 arguments (src_dir, out.json), got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "API", "API title recorded in info.title")
	cmd.Flags().StringVar(&opts.apiVersion, "api-version", "1.0.0", "API version recorded in info.version")
	cmd.Flags().StringVar(&opts.targetOAS, "target", "3.1.2", "target OpenAPI version (e.g. 3.0.4, 3.1.2)")
	cmd.Flags().StringVar(&opts.format, "format", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "validate the generated document against the target meta-schema")
	cmd.Flags().StringSliceVar(&opts.sourceExts, "ext", []string{".c", ".h"}, "source file extensions to scan")
	cmd.Flags().StringSliceVar(&opts.serverURLs, "server", nil, "server URL to add to the document (repeatable)")

	return cmd
}

func run(ctx context.Context, log *zerolog.Logger, srcDir, outPath string, opts *options) error {
	if opts.format != "json" && opts.format != "yaml" {
		return usageError{fmt.Errorf("unsupported --format %q (want json or yaml)", opts.format)}
	}

	extractorOpts := []openapi.Option{
		openapi.WithInfoTitle(opts.title),
		openapi.WithInfoVersion(opts.apiVersion),
		openapi.WithVersion(opts.targetOAS),
		openapi.WithValidation(opts.validate),
		openapi.WithSourceExtensions(opts.sourceExts...),
	}
	for _, url := range opts.serverURLs {
		extractorOpts = append(extractorOpts, openapi.WithServer(url))
	}

	ex := openapi.NewExtractor(extractorOpts...)

	log.Info().Str("dir", srcDir).Msg("scanning source tree")
	result, err := ex.ExtractDir(ctx, srcDir)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		fmt.Println(f)
	}

	for _, w := range result.Warnings {
		log.Warn().Str("code", string(w.Code())).Str("path", w.Path()).Msg(w.Message())
	}

	out := result.JSON
	if opts.format == "yaml" {
		out, err = jsonToYAML(out)
		if err != nil {
			return model.Wrap(model.IO, outPath, err)
		}
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return model.Wrap(model.IO, outPath, err)
	}

	log.Info().Str("out", outPath).Int("warnings", len(result.Warnings)).Msg("wrote OpenAPI document")
	return nil
}

func jsonToYAML(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func exitCodeFor(err error) int {
	var u usageError
	if errors.As(err, &u) {
		return 1
	}

	var merr *model.Error
	if errors.As(err, &merr) {
		if merr.Kind == model.IO {
			return 2
		}
		return 3
	}

	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return 2
	}

	return 3
}
