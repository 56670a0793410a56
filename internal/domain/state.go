package domain

// WeekState tracks how a (teacher, week) block came to hold its rows.
type WeekState string

const (
	WeekEmpty     WeekState = "empty"
	WeekGenerated WeekState = "generated"
	WeekEdited    WeekState = "edited"
)

// ValidWeekStates is the canonical set of accepted week state strings.
var ValidWeekStates = map[WeekState]bool{
	WeekEmpty: true, WeekGenerated: true, WeekEdited: true,
}

// WeekEvent is an action that may move a week between states.
type WeekEvent string

const (
	EventGenerate WeekEvent = "generate"
	EventApply    WeekEvent = "apply"
	EventEdit     WeekEvent = "edit"
	EventClear    WeekEvent = "clear"
)
