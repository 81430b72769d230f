package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"FXBridge/internal/model"
)

// FormatSummary formats the console summary of a run: the pair, the covered
// date range, row counts and the first and last maxRows output rows.
func FormatSummary(res *model.Result, maxRows int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s | %s\n", res.Pair.Label(), res.Pair))
	first, ok := res.FirstDay()
	if !ok {
		b.WriteString("no rows\n")
		return b.String()
	}
	last, _ := res.LastDay()
	b.WriteString(fmt.Sprintf("range: %s .. %s\n", first, last))
	b.WriteString(fmt.Sprintf("calendar days: %d | observed: %d | months: %d\n",
		len(res.Rows), len(res.Daily), len(res.Monthly)))
	if res.LeadingGaps > 0 {
		b.WriteString(fmt.Sprintf("leading days without a value: %d\n", res.LeadingGaps))
	}
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	label := res.Pair.Label()
	fmt.Fprintf(tw, "InformationDate\t%s\t%s_Fill\t%s_MonthlyAver\n", label, label, label)

	head, tail := splitHeadTail(len(res.Rows), maxRows)
	for _, row := range res.Rows[:head] {
		writeRow(tw, row)
	}
	if tail < len(res.Rows) {
		fmt.Fprintf(tw, "...\t\t\t\n")
		for _, row := range res.Rows[tail:] {
			writeRow(tw, row)
		}
	}
	tw.Flush()

	return b.String()
}

// splitHeadTail returns the end of the head slice and the start of the tail
// slice. When everything fits, tail == n.
func splitHeadTail(n, maxRows int) (head, tail int) {
	if maxRows <= 0 || n <= 2*maxRows {
		return n, n
	}
	return maxRows, n - maxRows
}

func writeRow(tw *tabwriter.Writer, row model.CombinedRow) {
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		row.Date.Format(model.DateLayout), row.Raw, row.Filled, row.MonthlyAverage)
}
