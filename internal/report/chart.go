package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fecflow/internal/models"
	"fecflow/internal/pipeline"
)

// partyColors is the fixed categorical color mapping for the chart
// series.
var partyColors = map[models.Party]string{
	models.Democrat:   "#4169E1",
	models.Republican: "#DC143C",
	models.OtherParty: "#A9A9A9",
}

// QuarterChart renders the quarter-by-party donation counts as a
// grouped bar chart and writes it as a standalone HTML page. The
// x-axis carries the given quarter labels, normally the full cycle
// so quarters with no donations still chart as zero; one series per
// party with its fixed color.
func QuarterChart(ct *pipeline.Crosstab, quarters []string, title, sourceNote, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: sourceNote,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Quarter"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Donations"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	if len(quarters) == 0 {
		quarters = ct.Quarters
	}

	bar.SetXAxis(quarters)

	for _, p := range ct.Parties {
		data := make([]opts.BarData, 0, len(quarters))
		for _, q := range quarters {
			data = append(data, opts.BarData{Value: ct.Count(q, p)})
		}

		bar.AddSeries(p.String(), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: partyColors[p]}),
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
