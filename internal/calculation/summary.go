package calculation

import (
	"sort"

	"github.com/wlbtid/calculator/internal/domain"
)

// Fixed milestone ages shown in the summary alongside currentAge+10.
var summaryMilestoneAges = []int{45, 65, 85}

// SummaryTargetAges returns the ages the summary reports on, ascending and without
// duplicates. Only ages after currentAge qualify.
func SummaryTargetAges(currentAge int) []int {
	candidates := append([]int{currentAge + 10}, summaryMilestoneAges...)
	seen := make(map[int]bool, len(candidates))
	ages := make([]int, 0, len(candidates))
	for _, age := range candidates {
		if age <= currentAge || seen[age] {
			continue
		}
		seen[age] = true
		ages = append(ages, age)
	}
	sort.Ints(ages)
	return ages
}

// BuildSummary snapshots both ledgers at each target age. Ages outside the ledger are skipped.
func BuildSummary(wl []domain.WholeLifeYear, btid []domain.BTIDYear, currentAge int) []domain.SummaryRow {
	rows := make([]domain.SummaryRow, 0, len(summaryMilestoneAges)+1)
	for _, age := range SummaryTargetAges(currentAge) {
		wlYear, ok := findWholeLifeAge(wl, age)
		if !ok {
			continue
		}
		btidYear, ok := findBTIDAge(btid, age)
		if !ok {
			continue
		}
		rows = append(rows, domain.SummaryRow{
			Age:       age,
			WholeLife: wlYear.Snapshot(),
			BTID:      btidYear.Snapshot(),
		})
	}
	return rows
}

func findWholeLifeAge(ledger []domain.WholeLifeYear, age int) (domain.WholeLifeYear, bool) {
	for _, y := range ledger {
		if y.Age == age {
			return y, true
		}
	}
	return domain.WholeLifeYear{}, false
}

func findBTIDAge(ledger []domain.BTIDYear, age int) (domain.BTIDYear, bool) {
	for _, y := range ledger {
		if y.Age == age {
			return y, true
		}
	}
	return domain.BTIDYear{}, false
}
