package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/htmlscrub/htmlscrub/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	CacheHits    int
}

var (
	statusStyles = map[types.Status]lipgloss.Style{
		types.StatusUnchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		types.StatusMarkup:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		types.StatusContent:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		types.StatusAdded:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		types.StatusRemoved:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	cachedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// shortDigest keeps tables narrow; JSON output carries the full digest.
func shortDigest(d string) string {
	if len(d) <= 16 {
		return d
	}
	return d[:16]
}

// PrintDocuments renders scan results as a table followed by a summary.
func PrintDocuments(w io.Writer, docs []types.Document, opts PrintOptions) error {
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	if len(docs) == 0 {
		fmt.Fprintln(w, "No HTML documents found")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("PATH", "RAW", "VISIBLE", "ATTRS", "DIGEST")
		for _, d := range docs {
			digest := shortDigest(d.Digest)
			if d.Cached {
				digest = paint(cachedStyle, digest+" (cached)", opts.NoColor)
			}
			if err := table.Append([]string{
				d.Path,
				fmt.Sprint(d.RawBytes),
				fmt.Sprint(d.VisibleBytes),
				fmt.Sprint(d.Attributes),
				digest,
			}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Documents: %d", len(docs))
		if opts.CacheHits > 0 {
			fmt.Fprintf(w, " (cached: %d)", opts.CacheHits)
		}
		fmt.Fprintln(w)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
	return nil
}

// Summary counts comparison rows by status.
type Summary map[types.Status]int

func Summarize(changes []types.Change) Summary {
	s := Summary{}
	for _, c := range changes {
		s[c.Status]++
	}
	return s
}

// Visible reports how many rows a reader would notice.
func (s Summary) Visible() int {
	return s[types.StatusContent] + s[types.StatusAdded] + s[types.StatusRemoved]
}

// PrintChanges renders comparison rows. Unchanged rows are hidden unless all
// is set.
func PrintChanges(w io.Writer, changes []types.Change, all bool, opts PrintOptions) error {
	var rows []types.Change
	for _, c := range changes {
		if all || c.Status != types.StatusUnchanged {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No changes")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("STATUS", "PATH", "BEFORE", "AFTER")
		for _, c := range rows {
			if err := table.Append([]string{
				paint(statusStyles[c.Status], string(c.Status), opts.NoColor),
				c.Path,
				shortDigest(c.Before),
				shortDigest(c.After),
			}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	s := Summarize(changes)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Visible changes: %d (content: %d, added: %d, removed: %d, markup only: %d)\n",
		s.Visible(), s[types.StatusContent], s[types.StatusAdded], s[types.StatusRemoved], s[types.StatusMarkup])
	return nil
}

// PrintLinks renders captured attribute values.
func PrintLinks(w io.Writer, links []types.Link) error {
	if len(links) == 0 {
		fmt.Fprintln(w, "No links found")
		return nil
	}
	withPath := false
	for _, l := range links {
		if l.Path != "" {
			withPath = true
			break
		}
	}
	table := tablewriter.NewWriter(w)
	if withPath {
		table.Header("PATH", "KIND", "VALUE")
	} else {
		table.Header("KIND", "VALUE")
	}
	for _, l := range links {
		row := []string{l.Kind, l.Value}
		if withPath {
			row = append([]string{l.Path}, row...)
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func paint(style lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
