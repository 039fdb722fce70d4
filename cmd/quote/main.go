package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	calc "Surya/internal/calc"
	chakki "Surya/internal/calc/chakki"
	sheet "Surya/internal/calc/sheet"
	solar "Surya/internal/calc/solar"
	subsidy "Surya/internal/calc/subsidy"
	config "Surya/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg.Assumptions).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a calc.Assumptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "quote",
		Short:        "Offline solar and atta-chakki quotes",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(subsidyCmd())
	rootCmd.AddCommand(solarCmd(a))
	rootCmd.AddCommand(chakkiCmd(a))
	rootCmd.AddCommand(priceListCmd())
	return rootCmd
}

func subsidyCmd() *cobra.Command {
	var in subsidy.Input

	cmd := &cobra.Command{
		Use:   "subsidy",
		Short: "Government subsidy for a rooftop system in a state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), subsidy.Quote(in))
		},
	}

	cmd.Flags().StringVar(&in.State, "state", "uttar-pradesh", "state key")
	cmd.Flags().Float64Var(&in.SystemSizeKW, "kw", 0, "system size in kW")
	cmd.MarkFlagRequired("kw")
	return cmd
}

func solarCmd(a calc.Assumptions) *cobra.Command {
	var kw int

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Cost, savings and payback of a catalogue solar system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := solar.CalculateWith(a, kw)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), solar.NewResponse(res, a))
		},
	}

	cmd.Flags().IntVar(&kw, "kw", 0, "system size in kW (1-10)")
	cmd.MarkFlagRequired("kw")
	return cmd
}

func chakkiCmd(a calc.Assumptions) *cobra.Command {
	var hp, option string

	cmd := &cobra.Command{
		Use:   "chakki",
		Short: "Solar-powered atta-chakki business projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := chakki.CalculateWith(a, hp, option)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&hp, "hp", "", "motor rating: 5, 7.5, 10 or 15")
	cmd.Flags().StringVar(&option, "option", "", "solar option for 10HP: 16.8 or 15.4")
	cmd.MarkFlagRequired("hp")
	return cmd
}

func priceListCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pricelist",
		Short: "Write the price list workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := sheet.WritePriceList(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "pricelist.xlsx", "output file")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
