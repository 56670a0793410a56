package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/lessonlog/internal/domain"
)

// encodeList serializes a pick-list for storage in a TEXT column.
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(b), nil
}

// decodeList parses a stored pick-list. An empty column is an empty list.
func decodeList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(s), &values); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	return values, nil
}

// dayFromColumn converts a stored day index back into a Weekday.
func dayFromColumn(i int) (domain.Weekday, error) {
	d, ok := domain.WeekdayFromIndex(i)
	if !ok {
		return 0, fmt.Errorf("invalid day index %d", i)
	}
	return d, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
