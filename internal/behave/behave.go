package behave

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

// specScenario maps to a [[scenarios]] entry.
type specScenario struct {
	Description string   `toml:"description"`
	Input       string   `toml:"input"`
	Lines       []string `toml:"lines"`
	Expect      []string `toml:"expect"`
	Reject      []string `toml:"reject"`
}

type specRoot struct {
	Scenarios []specScenario `toml:"scenarios"`
}

// Case is a runnable scenario converted from TOML
type Case struct {
	ID   string
	Name string
	// Input is fed to the console as operator keystrokes.
	Input string
	// Expect lines must appear in the output in this order.
	Expect []string
	// Reject lines must not appear anywhere in the output.
	Reject []string
}

// Parse reads a behaviour TOML file and converts it to runnable cases.
func Parse(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behaviour file: %w", err)
	}
	return ParseBytes(data)
}

func ParseBytes(data []byte) ([]Case, error) {
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cases := make([]Case, 0, len(root.Scenarios))
	for i, sc := range root.Scenarios {
		name := sc.Description
		if name == "" {
			name = fmt.Sprintf("scenario %d", i+1)
		}

		// input may be given as one multi-line string or as a list of lines
		if sc.Input != "" && len(sc.Lines) > 0 {
			return nil, fmt.Errorf("%s: input and lines are mutually exclusive", name)
		}
		input := sc.Input
		if len(sc.Lines) > 0 {
			input = strings.Join(sc.Lines, "\n") + "\n"
		}
		if len(sc.Expect) == 0 && len(sc.Reject) == 0 {
			return nil, fmt.Errorf("%s: scenario has no expectations", name)
		}

		cases = append(cases, Case{
			ID:     uuid.NewString(),
			Name:   name,
			Input:  input,
			Expect: sc.Expect,
			Reject: sc.Reject,
		})
	}

	return cases, nil
}
