package domain

// Default booking values
const (
	DefaultSlotGranularityMinutes = 30
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 240 // 4 hours
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours
	WeekdaysPerSchedule       = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
