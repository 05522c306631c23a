package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"penal-engine/internal/engine"
	"penal-engine/internal/format"
	"penal-engine/internal/model"
	"penal-engine/internal/reference"
)

type calcFlags struct {
	pena       string
	atenuantes int
	agravantes int
	tiempo     string
	format     string
}

func newCalcCmd(a *app) *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the adjusted sentence and parole threshold for one case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.OutOrStdout(), a.catalog, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.pena, "pena", "", "Base penalty category id (see the penalties command)")
	flags.IntVar(&f.atenuantes, "atenuantes", 0, "Mitigating steps (0-3)")
	flags.IntVar(&f.agravantes, "agravantes", 0, "Aggravating steps (0-2)")
	flags.StringVar(&f.tiempo, "tiempo", "", "Days already served")
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	return cmd
}

func runCalc(w io.Writer, catalog *reference.Catalog, f *calcFlags) error {
	if f.format != "text" && f.format != "json" {
		return exitError(2, "unknown format %q", f.format)
	}

	resp := engine.Process(catalog.Penalties, model.AdjustmentInput{
		BaseCategoryID:   f.pena,
		MitigatingCount:  f.atenuantes,
		AggravatingCount: f.agravantes,
		DaysServed:       model.ParseDays(f.tiempo),
	})

	if f.format == "json" {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(w, string(b))
	} else {
		writeCalcText(w, resp)
	}

	if resp.Result == nil {
		return exitError(1, "")
	}
	return nil
}

func writeCalcText(w io.Writer, resp *model.CalculationResponse) {
	for _, m := range resp.Messages {
		fmt.Fprintf(w, "%s %s: %s\n", m.Level, m.Code, m.Message)
	}
	r := resp.Result
	if r == nil {
		return
	}
	fmt.Fprintf(w, "Pena Base:          %s\n", r.BaseCategoryName)
	fmt.Fprintf(w, "Pena Aplicable:     %s\n", r.ResultingCategoryName)
	fmt.Fprintf(w, "Rango:              %s - %s\n", format.DaysToText(r.ResultingMinDays), format.DaysToText(r.ResultingMaxDays))
	fmt.Fprintf(w, "Libertad Condicional: %s (%s dias)\n", format.DaysToText(r.ParoleThresholdDays), format.Thousands(r.ParoleThresholdDays))
	if r.DaysServed > 0 {
		remaining := "Ya cumple requisito"
		if r.RemainingDaysToParole > 0 {
			remaining = format.DaysToText(r.RemainingDaysToParole)
		}
		fmt.Fprintf(w, "Tiempo Restante:    %s\n", remaining)
	}
}

func newPenaltiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "penalties",
		Short: "List the penalty scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writePenalties(cmd.OutOrStdout(), a.catalog.Penalties)
			return nil
		},
	}
}

func writePenalties(w io.Writer, scale model.Scale) {
	width := 0
	for _, p := range scale {
		if len(p.ID) > width {
			width = len(p.ID)
		}
	}
	for _, p := range scale {
		fmt.Fprintf(w, "%s%s  %s (%s - %s)\n", p.ID, strings.Repeat(" ", width-len(p.ID)), p.Name,
			format.DaysToText(p.MinDays), format.DaysToText(p.MaxDays))
	}
}
