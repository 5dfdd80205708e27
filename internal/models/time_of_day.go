package models

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// AllTimesOfDay lists the slots in display order.
func AllTimesOfDay() []TimeOfDay {
	return []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeNight}
}

func (slot TimeOfDay) Valid() bool {
	switch slot {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight:
		return true
	default:
		return false
	}
}

func (slot TimeOfDay) Icon() string {
	switch slot {
	case TimeMorning:
		return "sun.max.fill"
	case TimeAfternoon:
		return "sun.min.fill"
	case TimeEvening:
		return "sunset.fill"
	case TimeNight:
		return "moon.fill"
	default:
		return ""
	}
}
