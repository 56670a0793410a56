package service

import "errors"

var (
	ErrNoActiveTeacher = errors.New("no active teacher")
	ErrInvalidWeek     = errors.New("invalid week")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidCell     = errors.New("invalid cell")
	ErrNoLesson        = errors.New("no lesson in this cell")
	ErrEmptyTemplate   = errors.New("timetable has no slots for teacher")
)
