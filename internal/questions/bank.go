package questions

import (
	_ "embed"
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank format major version this build understands.
const SupportedMajor = "v1"

//go:embed data/b5-120.yaml
var embeddedBank []byte

// ErrUnsupportedVersion is returned when a bank's format version is not
// compatible with SupportedMajor.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

// Parse decodes, validates and normalises a bank document. YAML and JSON
// are both accepted.
func Parse(data []byte) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	doc, err := toJSONValue(raw)
	if err != nil {
		return nil, fmt.Errorf("normalise bank: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if !semver.IsValid(bank.Version) {
		return nil, fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, bank.Version)
	}
	if semver.Major(bank.Version) != SupportedMajor {
		return nil, fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, bank.Version, SupportedMajor)
	}

	seen := make(map[string]bool, len(bank.Questions))
	for i := range bank.Questions {
		q := &bank.Questions[i]
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		q.Num = i + 1
		if len(q.Choices) == 0 {
			q.Choices = DefaultChoices(q.Keyed)
		}
	}
	return &bank, nil
}

// Embedded returns the built-in English IPIP-NEO-120 bank.
func Embedded() (*Bank, error) {
	return Parse(embeddedBank)
}
