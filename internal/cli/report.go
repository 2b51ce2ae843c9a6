package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/joshsymonds/brewmatch/internal/model"
)

// BarWidth is the width of analytics bars in cells.
const BarWidth = 30

// Output formats accepted by the report commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	return format == FormatTable || format == FormatJSON
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// newTable creates a borderless, left-aligned table.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Bar renders a gradient bar filled to pct (0 to 1).
func Bar(pct float64, width int) string {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(max(0, min(pct, 1)))
}

// RenderBeans lists catalog beans.
func RenderBeans(w io.Writer, beans []model.Bean) error {
	rows := make([][]string, 0, len(beans))
	for _, b := range beans {
		rows = append(rows, []string{
			b.ID,
			b.Name,
			b.Roaster,
			b.RoastLevel.Label(),
			strings.Join(b.FlavorNotes, ", "),
			fmt.Sprintf("%.1f", b.Rating),
		})
	}
	return renderTable(w, []string{"ID", "Name", "Roaster", "Roast", "Notes", "Rating"}, rows)
}

// RenderBeanMatches shows ranked matches with their reasons and the
// brewing tips for the top match.
func RenderBeanMatches(w io.Writer, matches []model.BeanMatch) error {
	if _, err := fmt.Fprintln(w, FormatTitle("Bean matches")); err != nil {
		return err
	}
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No beans in the catalog"))
		return err
	}

	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Bean.Name,
			m.Bean.RoastLevel.Label(),
			fmt.Sprintf("%d%%", m.MatchScore),
			strings.Join(m.MatchReasons, "; "),
		})
	}
	if err := renderTable(w, []string{"#", "Bean", "Roast", "Match", "Why"}, rows); err != nil {
		return err
	}

	if tips := matches[0].BrewTips; len(tips) > 0 {
		if _, err := fmt.Fprintln(w, "\n"+RenderBox("Brewing "+matches[0].Bean.Name, bulletList(tips))); err != nil {
			return err
		}
	}
	return nil
}

// RenderRecommendation shows recommended machines, grinders, the
// reasoning and tips.
func RenderRecommendation(w io.Writer, rec model.EquipmentRecommendation, percentage func(model.CatalogItem) int) error {
	if _, err := fmt.Fprintln(w, FormatTitle("Recommended equipment")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, SubtitleStyle.Render(rec.Reasoning)); err != nil {
		return err
	}

	machineRows := make([][]string, 0, len(rec.Machines))
	for _, m := range rec.Machines {
		machineRows = append(machineRows, itemRow(m, m.Brand, m.Price, percentage))
	}
	if err := renderTable(w, []string{"Machine", "Brand", "Tier", "Price", "Match"}, machineRows); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	grinderRows := make([][]string, 0, len(rec.Grinders))
	for _, g := range rec.Grinders {
		grinderRows = append(grinderRows, itemRow(g, g.Brand, g.Price, percentage))
	}
	if err := renderTable(w, []string{"Grinder", "Brand", "Tier", "Price", "Match"}, grinderRows); err != nil {
		return err
	}

	if len(rec.Tips) > 0 {
		if _, err := fmt.Fprintln(w, "\n"+RenderBox("Tips", bulletList(rec.Tips))); err != nil {
			return err
		}
	}
	return nil
}

func itemRow(item model.CatalogItem, brand string, price float64, percentage func(model.CatalogItem) int) []string {
	match := "-"
	if percentage != nil {
		match = fmt.Sprintf("%d%%", percentage(item))
	}
	return []string{item.ItemName(), brand, item.Tier().String(), fmt.Sprintf("$%.0f", price), match}
}

// RenderEntries lists journal entries.
func RenderEntries(w io.Writer, entries []model.BrewLogEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No brews logged yet"))
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		ratio := "-"
		if r := e.Ratio(); r > 0 {
			ratio = fmt.Sprintf("1:%.1f", r)
		}
		rows = append(rows, []string{
			e.ID,
			e.Date.Local().Format("2006-01-02 15:04"),
			e.CoffeeName,
			e.BrewMethod,
			ratio,
			strings.Repeat("★", e.Rating),
		})
	}
	return renderTable(w, []string{"ID", "Date", "Coffee", "Method", "Ratio", "Rating"}, rows)
}

// RenderAnalytics shows the brew log summary with distribution and weekly
// activity bars.
func RenderAnalytics(w io.Writer, s model.AnalyticsSummary) error {
	overview := strings.Join([]string{
		labelValue("Total brews", strconv.Itoa(s.TotalBrews)),
		labelValue("Average rating", fmt.Sprintf("%.1f", s.AverageRating)),
		labelValue("Favorite method", s.FavoriteMethod),
		labelValue("Favorite coffee", s.FavoriteCoffee),
		labelValue("This week", fmt.Sprintf("%d (%s vs last week)", s.ThisWeekBrews, signedPercent(s.WeekOverWeek()))),
	}, "\n")

	sections := []string{RenderBox(ChartIcon+" Brew statistics", overview)}

	if len(s.MethodDistribution) > 0 {
		lines := make([]string, 0, len(s.MethodDistribution))
		for _, m := range s.MethodDistribution {
			lines = append(lines, fmt.Sprintf("%-14s %s %3d%% (%d)",
				m.Method, Bar(float64(m.Percentage)/100, BarWidth), m.Percentage, m.Count))
		}
		sections = append(sections, RenderBox("Methods", strings.Join(lines, "\n")))
	}

	peak := 0
	for _, b := range s.WeeklyBrews {
		peak = max(peak, b.Count)
	}
	weekly := make([]string, 0, len(s.WeeklyBrews))
	for _, b := range s.WeeklyBrews {
		pct := 0.0
		if peak > 0 {
			pct = float64(b.Count) / float64(peak)
		}
		weekly = append(weekly, fmt.Sprintf("%-12s %s %d", b.Label, Bar(pct, BarWidth), b.Count))
	}
	sections = append(sections, RenderBox("Weekly activity", strings.Join(weekly, "\n")))

	if len(s.RatingTrend) > 0 {
		points := make([]string, 0, len(s.RatingTrend))
		for _, p := range s.RatingTrend {
			points = append(points, fmt.Sprintf("%s %s", SubtleStyle.Render(p.Label), strings.Repeat("★", p.Rating)))
		}
		sections = append(sections, RenderBox("Recent ratings", strings.Join(points, "\n")))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func labelValue(label, value string) string {
	return BoldStyle.Render(fmt.Sprintf("%-16s", label)) + value
}

func signedPercent(p int) string {
	if p > 0 {
		return fmt.Sprintf("+%d%%", p)
	}
	return fmt.Sprintf("%d%%", p)
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
