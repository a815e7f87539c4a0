// Package output provides utilities for formatting and displaying
// point-comparison reports.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/mortgage-points/internal/report"
	"github.com/iwvelando/mortgage-points/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *report.Report) {
	if result == nil || len(result.Results) == 0 {
		return
	}

	p := message.NewPrinter(language.English)
	fmt.Printf("--- Results for loan %s ---\n", result.Name)
	_, _ = p.Printf("Start date %s | Down payment $%.2f\n", result.StartDate, result.DownPayment)
	fmt.Printf("Points | Rate       | Closing Costs | Monthly Payment | Months | Total Cost\n")
	fmt.Printf("______ | ____       | _____________ | _______________ | ______ | __________\n")
	for _, item := range result.Results {
		_, _ = p.Printf("%g | %.4f%%/yr | $%.2f | $%.2f | %d | $%.2f\n",
			item.Points, item.EffectiveRate, item.ClosingCosts, item.MonthlyPayment, item.Months, item.TotalCost)
	}
	if result.Optimal != nil {
		_, _ = p.Printf("Optimal: %g points costs $%.2f over %d months\n",
			result.Optimal.Points, result.Optimal.TotalCost, result.Optimal.Months)
	}

	for _, item := range result.Results {
		if len(item.Schedule) == 0 {
			continue
		}
		fmt.Printf("\n--- Amortization schedule at %g points ---\n", item.Points)
		fmt.Printf("Date    | Payment       | Interest      | Principal     | Balance\n")
		fmt.Printf("____    | _______       | ________      | _________     | _______\n")
		for _, entry := range item.Schedule {
			fmt.Printf("%s | %s | %s | %s | %s\n",
				entry.Date,
				format.Currency(entry.Payment),
				format.Currency(entry.Interest),
				format.Currency(entry.Principal),
				format.Currency(entry.Balance))
		}
	}
}

// CsvFormat outputs in comma-separated value format. Schedules follow the
// summary table as a date-by-points balance matrix when present.
func CsvFormat(result *report.Report) {
	fmt.Print(CsvString(result))
	if schedule := ScheduleCsvString(result); schedule != "" {
		fmt.Printf("\n")
		fmt.Print(schedule)
	}
}

// CsvString renders the summary table in comma-separated value format.
func CsvString(result *report.Report) string {
	if result == nil || len(result.Results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`"loan","points","effective rate (percent/year)","closing costs","monthly payment","months","total cost"`)
	b.WriteString("\n")
	for _, item := range result.Results {
		fmt.Fprintf(&b, `"%s","%g","%.4f","%s","%s","%d","%s"`+"\n",
			result.Name,
			item.Points,
			item.EffectiveRate,
			format.NumericCurrency(item.ClosingCosts),
			format.NumericCurrency(item.MonthlyPayment),
			item.Months,
			format.NumericCurrency(item.TotalCost))
	}
	return b.String()
}

// ScheduleCsvString renders remaining balances as one dated row per month
// with a column per points option. It returns the empty string when no
// result carries a schedule.
func ScheduleCsvString(result *report.Report) string {
	if result == nil {
		return ""
	}

	dateSet := make(map[string]struct{})
	balances := make([]map[string]float64, len(result.Results))
	for i, item := range result.Results {
		if len(item.Schedule) == 0 {
			continue
		}
		balances[i] = make(map[string]float64, len(item.Schedule))
		for _, entry := range item.Schedule {
			dateSet[entry.Date] = struct{}{}
			balances[i][entry.Date] = entry.Balance
		}
	}
	if len(dateSet) == 0 {
		return ""
	}

	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var b strings.Builder
	b.WriteString(`"date"`)
	for _, item := range result.Results {
		fmt.Fprintf(&b, `,"balance (%g points)"`, item.Points)
	}
	b.WriteString("\n")
	for _, date := range dates {
		fmt.Fprintf(&b, `"%s"`, date)
		for i := range result.Results {
			if balance, ok := balances[i][date]; ok {
				fmt.Fprintf(&b, `,"%s"`, format.NumericCurrency(balance))
			} else {
				b.WriteString(`,""`)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
