package backtest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// RenderTable writes the result rows as an aligned console table, best mean
// yield first.
func RenderTable(out io.Writer, results []Result) error {
	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanYield > ranked[j].MeanYield
	})

	table := tablewriter.NewWriter(out)
	table.Header("Parameters", "Risk", "Coverage", "Mean Yield", "Std Yield", "Std Mean Yield")
	for _, row := range ranked {
		table.Append(
			row.Parameters,
			fmt.Sprintf("%.2f", row.RiskFactor),
			fmt.Sprintf("%.3f", row.Coverage),
			fmt.Sprintf("%+.4f", row.MeanYield),
			fmt.Sprintf("%.4f", row.StdYield),
			fmt.Sprintf("%.4f", row.StdMeanYield),
		)
	}
	return table.Render()
}

// GenerateCSVExport writes the result table for spreadsheets, preserving the
// deterministic row order of the backtest.
func GenerateCSVExport(results []Result, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	var builder strings.Builder
	builder.WriteString("parameters,risk_factor,coverage,mean_yield,std_yield,std_mean_yield\n")
	for _, row := range results {
		builder.WriteString(fmt.Sprintf("%q,%.4f,%.6f,%.6f,%.6f,%.6f\n",
			row.Parameters, row.RiskFactor, row.Coverage, row.MeanYield, row.StdYield, row.StdMeanYield))
	}
	return os.WriteFile(outputPath, []byte(builder.String()), 0o644)
}
