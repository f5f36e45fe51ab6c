package constants

const (
	AppName           = "wishwell"
	DefaultConfigPath = "~/.config/wishwell/wishwell.db"
	Version           = "v0.3.1"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// WeekWindowDays is the size of the trailing activity window (today inclusive)
	WeekWindowDays = 7

	// FocusCutoffHour: recording a contact before this local hour promotes the
	// desire to today's focus; later contacts leave focus untouched.
	FocusCutoffHour = 23

	// MaxDesireImages is the UI-level cap on images per desire; the store does
	// not enforce it.
	MaxDesireImages = 6

	// Life-area score bounds
	MinAreaScore = 0
	MaxAreaScore = 10

	// Feedback rating bounds
	MinFeedbackRating = 1
	MaxFeedbackRating = 5

	// Snapshot constants
	SnapshotFormatVersion = 1
	MaxSnapshots          = 14
	SnapshotDirName       = "backups"
	SnapshotFilePrefix    = "wishwell-"
	SnapshotFileSuffix    = ".json"
)
