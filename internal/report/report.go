// internal/report/report.go
// Package report renders a standalone HTML dashboard from a computed
// snapshot of every view, for sharing results outside the terminal.
package report

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/hawaiilawtech/mbebench/internal/analysis"
	"github.com/hawaiilawtech/mbebench/internal/appconfig"
	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// ReportData is the template view model: a title plus the full JSON payload
// the page's script renders from.
type ReportData struct {
	Title       string
	PayloadJSON template.JS
}

// Payload is everything the static page needs: per-view rows, baselines,
// and the platform palette.
type Payload struct {
	Baselines appconfig.Baselines      `json:"baselines"`
	Palette   map[string]string        `json:"palette"`
	Accuracy  []analysis.AccuracyRow   `json:"accuracy"`
	RawCounts []analysis.RawCountRow   `json:"rawCounts"`
	Pivot     pivotPayload             `json:"categoryPivot"`
	Cost      []analysis.EfficiencyRow `json:"cost,omitempty"`
	CostOK    bool                     `json:"costAvailable"`
	Latency   []analysis.EfficiencyRow `json:"latency,omitempty"`
	LatencyOK bool                     `json:"latencyAvailable"`
	Questions []questionPayload        `json:"questions"`
}

type pivotPayload struct {
	Categories []string          `json:"categories"`
	Rows       []pivotRowPayload `json:"rows"`
}

type pivotRowPayload struct {
	Model    string         `json:"model"`
	Platform string         `json:"platform"`
	Counts   map[string]int `json:"counts"`
	Total    int            `json:"total"`
}

type questionPayload struct {
	Question     string            `json:"question"`
	Category     string            `json:"category"`
	TotalCorrect int               `json:"totalCorrect"`
	TotalModels  int               `json:"totalModels"`
	Percentage   float64           `json:"percentage"`
	Outcomes     map[string]string `json:"outcomes"`
}

// Build computes every view over the working set and packages it for the
// template.
func Build(cfg *appconfig.Config, working *dataset.Table) Payload {
	human := cfg.HumanPlatformLabel()
	aliases := cfg.Aliases()

	payload := Payload{
		Baselines: cfg.Baselines,
		Palette:   cfg.Palette,
		Accuracy:  analysis.Accuracy(working, human),
		RawCounts: analysis.RawCounts(working, human),
	}

	pivot := analysis.CategoryPivot(working, aliases)
	payload.Pivot.Categories = pivot.Categories
	for _, r := range pivot.Rows {
		payload.Pivot.Rows = append(payload.Pivot.Rows, pivotRowPayload{
			Model:    r.Model,
			Platform: r.Platform,
			Counts:   r.Counts,
			Total:    r.Total,
		})
	}

	payload.Cost, payload.CostOK = analysis.CostEfficiency(working, human)
	payload.Latency, payload.LatencyOK = analysis.LatencyEfficiency(working, human)

	for _, q := range analysis.PerQuestion(working) {
		payload.Questions = append(payload.Questions, questionPayload{
			Question:     q.Question,
			Category:     q.Category,
			TotalCorrect: q.TotalCorrect,
			TotalModels:  q.TotalModels,
			Percentage:   q.Percentage,
			Outcomes:     q.Outcomes,
		})
	}
	return payload
}

// Generate renders the standalone HTML dashboard for a payload.
func Generate(payload Payload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	viewModel := ReportData{
		Title:       "AI Model Performance on MBE Questions",
		PayloadJSON: template.JS(raw),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, viewModel); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var reportTemplate = template.Must(template.New("mbe-report").Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      --primary: #334155;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --text: #0F172A;
      --border: #E2E8F0;
    }
    body { font-family: system-ui, sans-serif; background: var(--light); color: var(--text); margin: 0; }
    header { background: var(--primary); color: #fff; padding: 1rem 2rem; }
    main { max-width: 70rem; margin: 0 auto; padding: 1rem; }
    section { background: #fff; border: 1px solid var(--border); border-radius: 8px; padding: 1rem 1.5rem; margin-bottom: 1.5rem; }
    h2 { margin-top: 0; }
    table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
    th, td { border: 1px solid var(--border); padding: 0.3rem 0.5rem; text-align: left; }
    thead th { background: var(--light); }
    .bar-row { display: flex; align-items: center; gap: 0.5rem; margin: 2px 0; }
    .bar-label { width: 16rem; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; font-size: 0.85rem; }
    .bar-track { flex: 1; background: var(--light); height: 16px; position: relative; }
    .bar-fill { height: 100%; }
    .baseline { color: #dc2626; font-size: 0.85rem; }
    .band { color: #6b7280; font-size: 0.85rem; }
    .unavailable { color: #6b7280; font-style: italic; }
  </style>
</head>
<body>
  <header><h1>{{ .Title }}</h1></header>
  <main>
    <section id="accuracy"><h2>Percentage of Correct Answers</h2><div class="chart"></div><table></table></section>
    <section id="rawCounts"><h2>Number of Correct Answers</h2><div class="chart"></div><table></table></section>
    <section id="categories"><h2>Categories Answered Correctly</h2><table></table></section>
    <section id="cost"><h2>Cost Per Question</h2><table></table></section>
    <section id="latency"><h2>Time Per Question</h2><table></table></section>
    <section id="questions"><h2>Individual Questions</h2><table></table></section>
  </main>
  <script>
    const data = {{ .PayloadJSON }};

    function fillTable(sel, headers, rows) {
      const table = document.querySelector(sel + " table");
      const head = "<thead><tr>" + headers.map(h => "<th>" + h + "</th>").join("") + "</tr></thead>";
      const body = "<tbody>" + rows.map(r => "<tr>" + r.map(c => "<td>" + c + "</td>").join("") + "</tr>").join("") + "</tbody>";
      table.innerHTML = head + body;
    }

    function fillBars(sel, rows, value, max, note) {
      const chart = document.querySelector(sel + " .chart");
      let html = "";
      for (const r of rows) {
        const color = data.palette[r.Platform] || "#888";
        const pct = Math.min(100, 100 * value(r) / max);
        html += '<div class="bar-row"><span class="bar-label">' + r.Model + '</span>' +
          '<span class="bar-track"><span class="bar-fill" style="width:' + pct + '%;background:' + color + '"></span></span>' +
          '<span>' + value(r).toFixed(1) + '</span></div>';
      }
      html += note;
      chart.innerHTML = html;
    }

    const b = data.baselines;

    fillBars("#accuracy", data.accuracy, r => r.Percentage, 100,
      '<div class="baseline">Human Average: ' + b.humanAveragePct + '%</div>' +
      '<div class="band">Pass Rate: ' + b.passBandLowPct + '% to ' + b.passBandHighPct + '%</div>');
    fillTable("#accuracy", ["Model", "AI Platform", "Total", "Correct", "Percentage"],
      data.accuracy.map(r => [r.Model, r.Platform, r.Total, r.Correct, r.Percentage.toFixed(1) + "%"]));

    fillBars("#rawCounts", data.rawCounts, r => r.Correct, b.maxRawScore,
      '<div class="baseline">Human Average: ' + b.humanRawScore + ' &middot; Maximum Score: ' + b.maxRawScore + '</div>' +
      '<div class="band">Pass Rate: ' + b.passBandLowRaw + ' to ' + b.passBandHighRaw + '</div>');
    fillTable("#rawCounts", ["Model", "AI Platform", "Correct", "Total Questions", "Percentage Correct"],
      data.rawCounts.map(r => [r.Model, r.Platform, r.Correct, r.Total, r.Percentage.toFixed(1) + "%"]));

    fillTable("#categories",
      ["Model", "AI Platform"].concat(data.categoryPivot.categories).concat(["Total"]),
      data.categoryPivot.rows.map(r =>
        [r.model, r.platform].concat(data.categoryPivot.categories.map(c => r.counts[c] || 0)).concat([r.total])));

    if (data.costAvailable) {
      fillTable("#cost", ["Model", "AI Platform", "Average Cost Per Question", "Percentage Correct"],
        data.cost.map(r => [r.Model, r.Platform, "$" + r.Average.toFixed(5), r.Percentage.toFixed(1) + "%"]));
    } else {
      document.querySelector("#cost table").outerHTML = '<p class="unavailable">Cost data is not available in the dataset.</p>';
    }

    if (data.latencyAvailable) {
      fillTable("#latency", ["Model", "AI Platform", "Average Seconds", "Percentage Correct"],
        data.latency.map(r => [r.Model, r.Platform, r.Average.toFixed(2), r.Percentage.toFixed(1) + "%"]));
    } else {
      document.querySelector("#latency table").outerHTML = '<p class="unavailable">Duration data is not available in the dataset.</p>';
    }

    const models = [...new Set(data.questions.flatMap(q => Object.keys(q.outcomes)))].sort();
    fillTable("#questions",
      ["Question", "Law Category", "Percentage Correct"].concat(models),
      data.questions.map(q =>
        [q.question, q.category, q.percentage.toFixed(1) + "%"].concat(models.map(m => q.outcomes[m] || ""))));
  </script>
</body>
</html>
`
