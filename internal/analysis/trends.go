package analysis

import (
	"sort"
	"strconv"

	"finadvisor/internal/models"
)

// trendWindow caps how many recent months the trend view shows.
const trendWindow = 6

// MonthlySeries buckets every transaction into YYYY-MM points, sorted
// ascending by month key. Summing Expenses across the full series always
// equals the snapshot's total spending.
func MonthlySeries(txs []models.Transaction) []MonthlyPoint {
	byMonth := make(map[string]*MonthlyPoint)
	for i := range txs {
		key := txs[i].MonthKey()
		point, ok := byMonth[key]
		if !ok {
			point = &MonthlyPoint{Month: key}
			byMonth[key] = point
		}
		switch txs[i].Type {
		case models.TransactionTypeIncome:
			point.Income += txs[i].Amount
		case models.TransactionTypeExpense:
			point.Expenses += txs[i].Amount
		}
	}

	series := make([]MonthlyPoint, 0, len(byMonth))
	for _, point := range byMonth {
		point.Net = point.Income - point.Expenses
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// TrendsFor trims the monthly series to the most recent months and computes
// month-over-month change percentages from the last two points.
func TrendsFor(txs []models.Transaction) Trends {
	series := MonthlySeries(txs)

	t := Trends{Monthly: series}
	if len(series) > trendWindow {
		t.Monthly = series[len(series)-trendWindow:]
	}

	if len(series) >= 2 {
		prev, last := series[len(series)-2], series[len(series)-1]
		t.IncomeChangePct = changePct(prev.Income, last.Income)
		t.ExpensesChangePct = changePct(prev.Expenses, last.Expenses)
		t.HasComparison = true
	}
	return t
}

func changePct(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

// YearMonthShare is one month's slice of a year's spending.
type YearMonthShare struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
	SharePct float64 `json:"share_pct"`
}

// YearlyBreakdown summarizes one calendar year of activity.
type YearlyBreakdown struct {
	Year          int              `json:"year"`
	TotalIncome   float64          `json:"total_income"`
	TotalExpenses float64          `json:"total_expenses"`
	Months        []YearMonthShare `json:"months"`
	HighestMonth  string           `json:"highest_month"`
	LowestMonth   string           `json:"lowest_month"`
}

// Yearly computes per-month expense shares for the given calendar year.
// Share percentages are zero when the year has no expenses. Highest and
// lowest months only consider months with activity.
func Yearly(txs []models.Transaction, year int) YearlyBreakdown {
	breakdown := YearlyBreakdown{Year: year, Months: []YearMonthShare{}}

	for _, point := range MonthlySeries(txs) {
		if len(point.Month) < 4 || point.Month[:4] != strconv.Itoa(year) {
			continue
		}
		breakdown.TotalIncome += point.Income
		breakdown.TotalExpenses += point.Expenses
		breakdown.Months = append(breakdown.Months, YearMonthShare{
			Month:    point.Month,
			Expenses: point.Expenses,
			Income:   point.Income,
		})
	}

	for i := range breakdown.Months {
		m := &breakdown.Months[i]
		if breakdown.TotalExpenses > 0 {
			m.SharePct = m.Expenses / breakdown.TotalExpenses * 100
		}
		if breakdown.HighestMonth == "" || m.Expenses > monthExpenses(breakdown.Months, breakdown.HighestMonth) {
			breakdown.HighestMonth = m.Month
		}
		if breakdown.LowestMonth == "" || m.Expenses < monthExpenses(breakdown.Months, breakdown.LowestMonth) {
			breakdown.LowestMonth = m.Month
		}
	}
	return breakdown
}

func monthExpenses(months []YearMonthShare, key string) float64 {
	for i := range months {
		if months[i].Month == key {
			return months[i].Expenses
		}
	}
	return 0
}
