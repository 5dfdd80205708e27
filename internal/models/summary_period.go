package models

type SummaryPeriod string

const (
	PeriodDaily   SummaryPeriod = "daily"
	PeriodWeekly  SummaryPeriod = "weekly"
	PeriodMonthly SummaryPeriod = "monthly"
)

func AllSummaryPeriods() []SummaryPeriod {
	return []SummaryPeriod{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

func (period SummaryPeriod) Valid() bool {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

// Days is the number of calendar days, today included, that the period spans
// for day-keyed records.
func (period SummaryPeriod) Days() int {
	switch period {
	case PeriodWeekly:
		return 7
	case PeriodMonthly:
		return 30
	default:
		return 1
	}
}
