package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"ib-compliance/internal/app"
	"ib-compliance/internal/catalog"
	"ib-compliance/internal/config"
	"ib-compliance/internal/logger"
	"ib-compliance/internal/risk"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ibctl",
		Short:        "Operate the ISO 27001 compliance tracker",
		SilenceUsage: true,
	}
	root.AddCommand(
		newSeedCmd(),
		newStatsCmd(),
		newCatalogCmd(),
		newClassifyCmd(),
	)
	return root
}

// openApp connects using the same environment as the server.
func openApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, logger.New(cfg.LogLevel, cfg.LogFile))
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the control catalog if the controls table is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			n, err := a.Engine.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already present, nothing inserted")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d controls\n", n)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	var (
		byDomain bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print compliance statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			overall := a.Engine.OverallStats(ctx)

			if asJSON {
				payload := map[string]interface{}{"overall": overall}
				if byDomain {
					payload["domains"] = a.Engine.DomainStatsOrdered(ctx)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			fmt.Fprintf(out, "total %d, implemented %d, in progress %d, not implemented %d, compliance %d%%\n",
				overall.Total, overall.Implemented, overall.InProgress, overall.NotImplemented, overall.Percentage)
			if !byDomain {
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOMAIN\tNAME\tIMPLEMENTED\tTOTAL\t%")
			for _, d := range a.Engine.DomainStatsOrdered(ctx) {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", d.ID, d.Name, d.Implemented, d.Total, d.Percentage)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&byDomain, "domains", false, "include per-domain statistics")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var (
		file string
		mode string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the control catalog without touching the database",
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "catalog YAML (default: embedded table)")
	cmd.PersistentFlags().StringVar(&mode, "mode", string(catalog.ModeSynthetic), "synthetic or strict")

	load := func() ([]catalog.Definition, error) {
		m, err := catalog.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		return catalog.Load(file, m)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Generate the catalog and check counts and code uniqueness",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := load()
			if err != nil {
				return err
			}
			synthetic := 0
			for _, d := range defs {
				if d.Synthetic {
					synthetic++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d controls in %d domains (%d synthetic)\n",
				len(defs), len(catalog.ISO27001), synthetic)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every generated control definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := load()
			if err != nil {
				return err
			}
			return printDefinitions(cmd.OutOrStdout(), defs)
		},
	})
	return cmd
}

func printDefinitions(w io.Writer, defs []catalog.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tDOMAIN\tNAME")
	for _, d := range defs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Code, d.Domain, d.Name)
	}
	return tw.Flush()
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <impact> <probability>",
		Short: "Print the risk level for an impact and probability (1..5)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			impact, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("impact: %w", err)
			}
			probability, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("probability: %w", err)
			}
			lvl, err := risk.Classify(impact, probability)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "score %d: %s (%s)\n", lvl.Score, lvl.Severity, lvl.Color)
			return nil
		},
	}
}
