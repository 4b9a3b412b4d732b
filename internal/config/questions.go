package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
)

// LoadQuestions returns the intake sequence for this deployment. With an
// empty path the built-in sequence is used; otherwise the file must hold a
// JSON array of {field, prompt} objects.
func LoadQuestions(path string) (domain.Questions, error) {
	if path == "" {
		return domain.DefaultQuestions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var qs domain.Questions
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	if len(qs) == 0 {
		return nil, fmt.Errorf("%s: empty question list", path)
	}
	seen := make(map[string]bool, len(qs))
	for i, q := range qs {
		if q.Field == "" || q.Prompt == "" {
			return nil, fmt.Errorf("%s: question %d: field and prompt are required", path, i)
		}
		if seen[q.Field] {
			return nil, fmt.Errorf("%s: duplicate field %q", path, q.Field)
		}
		seen[q.Field] = true
	}
	return qs, nil
}
