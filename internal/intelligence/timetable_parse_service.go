// Package intelligence turns free-form timetable text into importer entries
// using a local LLM.
package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/importer"
	"github.com/alexanderramin/lessonlog/internal/llm"
)

// ErrEmptyInput is returned when there is no timetable text to parse.
var ErrEmptyInput = errors.New("timetable text is empty")

// TimetableParseService parses pasted timetable text. The result is meant to
// be shown to the user and then handed to the timetable import.
type TimetableParseService interface {
	// Parse extracts timetable entries from text. Entries without a teacher
	// are assigned defaultTeacher.
	Parse(ctx context.Context, text, defaultTeacher string) (*importer.TimetableImport, error)
}

type timetableParseService struct {
	client llm.LLMClient
}

// NewTimetableParseService creates a TimetableParseService backed by client.
func NewTimetableParseService(client llm.LLMClient) TimetableParseService {
	return &timetableParseService{client: client}
}

func (s *timetableParseService) Parse(ctx context.Context, text, defaultTeacher string) (*importer.TimetableImport, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !s.client.Available(ctx) {
		return nil, fmt.Errorf("checking %s: %w", llm.TaskParseTimetable, llm.ErrOllamaUnavailable)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskParseTimetable,
		SystemPrompt: timetableSystemPrompt,
		UserPrompt:   text,
		JSON:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("llm timetable parse failed: %w", err)
	}

	raw, err := llm.ExtractJSON[json.RawMessage](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to extract timetable JSON: %w", err)
	}
	tt, err := importer.ParseTimetableJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err)
	}

	tt.Entries = cleanEntries(tt.Entries, strings.TrimSpace(defaultTeacher))
	if errs := importer.ValidateTimetable(tt); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", llm.ErrInvalidOutput, errors.Join(errs...))
	}
	return tt, nil
}

// cleanEntries drops entries that name neither a subject nor a class and
// fills in the default teacher.
func cleanEntries(entries []importer.TimetableEntryImport, defaultTeacher string) []importer.TimetableEntryImport {
	out := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Subject) == "" && strings.TrimSpace(e.Class) == "" {
			continue
		}
		if strings.TrimSpace(e.Teacher) == "" {
			e.Teacher = defaultTeacher
		}
		out = append(out, e)
	}
	return out
}
