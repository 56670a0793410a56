package domain

// Settings holds the scalar workbook state shared by every command.
type Settings struct {
	CurrentWeek   int
	WeekStartDate string
	ActiveTeacher string
	Subjects      []string
	Classes       []string
}

// DefaultSettings returns the settings of a fresh workbook.
func DefaultSettings() Settings {
	return Settings{CurrentWeek: 1}
}
