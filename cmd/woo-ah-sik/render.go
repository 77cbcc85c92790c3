package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"woo-ah-sik/internal/app"
	"woo-ah-sik/internal/formula"
	"woo-ah-sik/internal/planner"
	"woo-ah-sik/internal/recipe"
	"woo-ah-sik/internal/shopping"
	"woo-ah-sik/internal/stage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

var slotLabels = map[stage.Slot]string{
	stage.Breakfast: "아침",
	stage.Lunch:     "점심",
	stage.Dinner:    "저녁",
	stage.Snack:     "간식",
}

var weekdayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

type renderOptions struct {
	Allergens bool
	Seasonal  bool
	Month     time.Month
}

func renderAmount(w io.Writer, a formula.Amount, schedule []formula.Feeding) {
	fmt.Fprintf(w, "  하루 총량: %dml\n", a.DailyTotal)
	fmt.Fprintf(w, "  1회 수유량: %d~%dml\n", a.PerFeedingMin, a.PerFeedingMax)
	fmt.Fprintf(w, "  수유 횟수: 하루 %d회 (%s 간격)\n", a.FeedingsPerDay, a.IntervalDesc)
	if len(schedule) == 0 {
		return
	}
	times := make([]string, len(schedule))
	for i, f := range schedule {
		times[i] = f.Time
	}
	fmt.Fprintf(w, "  예시 일정: %s (%sml)\n", strings.Join(times, ", "), schedule[0].Amount)
}

func renderResult(w io.Writer, r *app.Result, opts renderOptions) {
	for _, f := range r.Formulas {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s · %d개월 · %s", f.Child.Label, f.Child.Months, f.Stage.Name)))
		renderAmount(w, f.Amount, f.Schedule)
		fmt.Fprintln(w)
	}
	for _, entry := range r.Plans {
		renderEntry(w, entry, opts)
		fmt.Fprintln(w)
	}
	if opts.Seasonal {
		fmt.Fprintf(w, "* %d월 제철 재료: %s\n", int(opts.Month), strings.Join(recipe.SeasonalIngredients(opts.Month), ", "))
	}
	fmt.Fprintln(w, mutedStyle.Render("plan id: "+r.ID))
}

func renderEntry(w io.Writer, entry planner.PlanEntry, opts renderOptions) {
	names := make([]string, len(entry.Children))
	for i, c := range entry.Children {
		names[i] = c.Label
	}
	title := fmt.Sprintf("%s · %s", strings.Join(names, ", "), entry.Stage.String())
	switch {
	case entry.Merged:
		title += " (통합 식단)"
	case entry.Shared:
		title += " (공유 식단)"
	}
	fmt.Fprintln(w, headerStyle.Render(title))

	days := entry.Meals()
	labels := make([]string, len(days))
	if entry.Monthly != nil {
		for i, d := range entry.Monthly.Days {
			wd := time.Date(entry.Monthly.Year, entry.Monthly.Month, d.Date, 0, 0, 0, 0, time.UTC).Weekday()
			labels[i] = fmt.Sprintf("%d일(%s)", d.Date, weekdayNames[wd])
		}
	} else {
		for i, d := range entry.Weekly {
			labels[i] = d.Day
		}
	}

	var slots []stage.Slot
	for _, s := range stage.Slots {
		for _, d := range days {
			if d.Get(s) != "" {
				slots = append(slots, s)
				break
			}
		}
	}

	rows := make([][]string, 0, len(days)+1)
	header := []string{""}
	for _, s := range slots {
		header = append(header, slotLabels[s])
	}
	rows = append(rows, header)
	for i, d := range days {
		row := []string{labels[i]}
		for _, s := range slots {
			row = append(row, annotate(d.Get(s), opts))
		}
		rows = append(rows, row)
	}
	writeTable(w, rows)
}

// annotate appends allergen icons and a seasonal marker to a menu name.
func annotate(menu string, opts renderOptions) string {
	if menu == "" {
		return "-"
	}
	var b strings.Builder
	b.WriteString(menu)
	if opts.Allergens {
		for _, a := range recipe.Allergens(menu) {
			b.WriteString(" ")
			b.WriteString(a.Icon)
		}
	}
	if opts.Seasonal && len(recipe.Seasonal(menu, opts.Month)) > 0 {
		b.WriteString(" *")
	}
	return b.String()
}

// writeTable aligns cells by display width so Hangul columns line up.
func writeTable(w io.Writer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight("  "+strings.Join(cells, "  "), " "))
	}
}

func renderShopping(w io.Writer, list *shopping.ShoppingList, links bool) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("🛒 %s (%d개 품목)", strings.Join(list.Children, ", "), list.Count())))
	for _, g := range list.Groups {
		fmt.Fprintf(w, "%s %s\n", g.Emoji, g.Category)
		rows := make([][]string, 0, len(g.Items))
		for _, item := range g.Items {
			rows = append(rows, []string{item.Emoji + " " + item.Name, item.Quantity, fmt.Sprintf("%d개 메뉴", len(item.Meals))})
		}
		writeTable(w, rows)
		if !links {
			continue
		}
		for _, item := range g.Items {
			fmt.Fprintf(w, "    %s 쿠팡: %s\n", item.Name, shopping.CoupangLink(item.Name))
			fmt.Fprintf(w, "    %s 컬리: %s\n", item.Name, shopping.KurlyLink(item.Name))
		}
	}
}
