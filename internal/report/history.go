package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/htmlscrub/htmlscrub/internal/audit"
)

// PrintHistory renders recorded scans, newest first, with their index for
// `history --delete`.
func PrintHistory(w io.Writer, records []audit.ScanRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scans recorded")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("#", "WHEN", "ALGO", "DOCS", "CACHED", "DURATION", "BASELINE")
	for i, r := range records {
		base := "-"
		if r.StatusCounts != nil {
			keys := make([]string, 0, len(r.StatusCounts))
			for k := range r.StatusCounts {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%d", k, r.StatusCounts[k]))
			}
			base = strings.Join(parts, " ")
		}
		if err := table.Append([]string{
			fmt.Sprint(i),
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Algorithm,
			fmt.Sprint(r.Documents),
			fmt.Sprint(r.CacheHits),
			r.Duration,
			base,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
