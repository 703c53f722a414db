package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/analyses"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/config"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/textstats"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/uploads"
)

type deps struct {
	loadConfig    func() config.Config
	newExtractor  func(ctx context.Context, cfg docintel.Config) (docintel.Extractor, error)
	colorsEnabled bool
}

func defaultDeps() deps {
	return deps{
		loadConfig:    config.Load,
		newExtractor:  docintel.New,
		colorsEnabled: true,
	}
}

type options struct {
	excludeCommon bool
	top           int
	asJSON        bool
	verbose       bool
	provider      string
}

type report struct {
	analyses.View
	Provider     string  `json:"provider"`
	ExtractionMs float64 `json:"extractionMs"`
}

func newRootCmd(d deps) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "analyze [file.pdf]",
		Short: "Print text statistics for a PDF",
		Long: `Extracts the text of a PDF with Azure Document Intelligence (or the local
text layer with --provider pdftext) and prints word, character and sentence
counts together with the most frequent words.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, d, opts, args[0])
			if err != nil {
				cmd.PrintErrln(newStyles(d.colorsEnabled).Error.Render("Error: " + err.Error()))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.excludeCommon, "exclude-common-words", true, "hide common English words from the frequency table")
	cmd.Flags().IntVarP(&opts.top, "top", "n", textstats.DisplayLimit, "number of frequent words to show (0 for all)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "output the analysis as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "write structured logs to stderr")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "extraction provider: azure or pdftext (default from DOCINTEL_PROVIDER)")
	return cmd
}

func run(cmd *cobra.Command, d deps, opts options, path string) error {
	if opts.verbose {
		telemetry.SetOutput(cmd.ErrOrStderr())
	} else {
		telemetry.SetOutput(nil)
	}
	if opts.top < 0 {
		return fmt.Errorf("--top must not be negative")
	}

	cfg := d.loadConfig()
	if opts.provider != "" {
		switch opts.provider {
		case docintel.ProviderAzure, docintel.ProviderPDFText:
			cfg.DocIntel.Provider = opts.provider
		default:
			return fmt.Errorf("unknown provider %q", opts.provider)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	extractor, err := d.newExtractor(ctx, cfg.DocIntel)
	if err != nil {
		if errors.Is(err, docintel.ErrNotConfigured) {
			return errors.New(docintel.UserMessage(err))
		}
		return err
	}

	doc, err := uploads.Open(path, cfg.MaxUploadBytes)
	if err != nil {
		return err
	}

	svc := analyses.NewService(extractor, cfg.DocIntel.Provider)
	analysis, err := svc.Analyze(ctx, doc)
	if err != nil {
		return errors.New(docintel.UserMessage(err))
	}

	view := analyses.NewView(analysis, opts.excludeCommon)
	view.FrequentWords = textstats.TopWords(analysis.Result.FrequentWords, opts.excludeCommon, opts.top)
	out := report{View: view, Provider: analysis.Provider, ExtractionMs: analysis.ExtractionMs}

	if opts.asJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderReport(newStyles(d.colorsEnabled), out))
	return nil
}
