package llm

// TaskType labels an LLM call in observer events.
type TaskType string

// TaskParseTimetable turns a pasted or OCR'd timetable into entries.
const TaskParseTimetable TaskType = "parse_timetable"

// LLMConfig configures the Ollama-backed timetable parser. Environment
// loading lives in internal/config.
type LLMConfig struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the parser defaults. The parser is off until enabled.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   60000,
		MaxRetries:  1,
		Temperature: 0.1,
		MaxTokens:   4096,
	}
}
