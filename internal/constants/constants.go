package constants

const (
	AppName           = "lifeos"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/lifeos/life.yaml"
	DefaultDBPath     = "~/.config/lifeos/lifeos.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultMinSlotMinutes is the smallest gap worth offering to the scheduler.
	DefaultMinSlotMinutes = 15

	// DefaultSearchDays is how far ahead FindSlotsForActivity looks.
	DefaultSearchDays = 7
)

// Time-of-day bands (start hour inclusive, end hour exclusive).
const (
	MorningStartHour   = 5
	MorningEndHour     = 12
	AfternoonStartHour = 12
	AfternoonEndHour   = 17
	EveningStartHour   = 17
	EveningEndHour     = 22
)
