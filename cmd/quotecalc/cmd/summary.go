package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/domain/pricing"
	"seminar_billing/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Compute the summary of a quote state",
		Long: `Read a quote state as JSON (the same document the HTTP API accepts)
and print its pricing summary. Reads stdin when no file is given or the file
is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) > 0 {
				file = args[0]
			}
			output = strings.ToLower(strings.TrimSpace(output))
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unsupported output %q (want %s or %s)", output, outputTable, outputJSON)
			}

			state, err := readState(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if err := usecase.ValidateQuoteState(state); err != nil {
				return fmt.Errorf("invalid quote state: %w", err)
			}

			summary := pricing.CalculateQuoteSummary(state)
			opts.log.Debug("summary computed",
				zap.String("file", file),
				zap.Int("calendar_days", summary.CalendarDays),
				zap.Float64("total_internal_cost", summary.TotalInternalCost),
			)

			if output == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return printSummaryTable(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "quote state JSON file (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table, json)")
	return cmd
}

func readState(stdin io.Reader, file string) (entities.QuoteState, error) {
	var r io.Reader = stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return entities.QuoteState{}, fmt.Errorf("open quote state: %w", err)
		}
		defer f.Close()
		r = f
	}

	var state entities.QuoteState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return entities.QuoteState{}, fmt.Errorf("decode quote state: %w", err)
	}
	return state, nil
}

func printSummaryTable(out io.Writer, s entities.QuoteSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Calendar days\t%d\t\n", s.CalendarDays)
	fmt.Fprintf(w, "Nights\t%d\t\n", s.Nights)
	fmt.Fprintf(w, "Workdays\t%d\t\n", s.Workdays)
	fmt.Fprintln(w, "\t\t")

	printItems(w, "Services", s.ServiceBreakdown, s.ServiceCosts)
	printItems(w, "Staff", s.StaffBreakdown, s.TotalStaffCosts)
	fmt.Fprintf(w, "Base cost\t%s\t\n", money(s.BaseCost))
	printItems(w, "Other costs", s.OtherCostsBreakdown, s.TotalOtherCosts)

	fmt.Fprintf(w, "Total internal cost\t%s\t\n", money(s.TotalInternalCost))
	fmt.Fprintf(w, "Cost per participant\t%s\t\n", money(s.CostPerParticipant))
	fmt.Fprintln(w, "\t\t")
	fmt.Fprintf(w, "Price per participant\t%s\t\n", money(s.ManualSellingPricePerParticipant))
	fmt.Fprintf(w, "Total revenue\t%s\t\n", money(s.TotalRevenue))
	fmt.Fprintf(w, "Net profit\t%s\t\n", money(s.NetProfit))
	fmt.Fprintf(w, "Margin\t%.2f%%\t\n", s.ProfitMarginPercentage)
	return w.Flush()
}

func printItems(w io.Writer, title string, items []entities.CostItem, total float64) {
	fmt.Fprintf(w, "%s\t%s\t\n", title, money(total))
	for _, it := range items {
		fmt.Fprintf(w, "  %s\t%s\t\n", it.Name, money(it.Cost))
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
