package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/adapter"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/diagnosis"
)

func newScoreCmd() *cobra.Command {
	var (
		lang    string
		asJSON  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "score <respondents.json|->",
		Short: "Score a questionnaire submission offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readDiagnosisRequest(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			svc := diagnosis.NewService(cache.NewMemoryStore(), nil, zap.NewNop())
			result, err := svc.Diagnose(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if noColor {
				color.NoColor = true
			}
			printResult(out, adapter.NewResponseFormatter(domain.ParseLanguage(lang)), result)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "es", "Output language (es|en)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw scoring result as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	return cmd
}

func readDiagnosisRequest(stdin io.Reader, path string) (diagnosis.Request, error) {
	var req diagnosis.Request

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode respondents file: %w", err)
	}
	return req, nil
}

func printResult(w io.Writer, f *adapter.ResponseFormatter, result *domain.ScoringResult) {
	if result.NeedsTieBreaker() {
		fmt.Fprintln(w, yellow(f.FormatResult(result)))
		return
	}

	fmt.Fprintln(w, bold(f.FormatResult(result)))
	if scores := f.FormatScores(result.Diagnosis); scores != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, green(scores))
	}
}
