package questions

import (
	"context"
	"fmt"
	"os"
)

// Source supplies an ordered question bank.
type Source interface {
	Load(ctx context.Context) (*Bank, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*Bank, error)

func (f SourceFunc) Load(ctx context.Context) (*Bank, error) { return f(ctx) }

// EmbeddedSource serves the built-in bank.
var EmbeddedSource Source = SourceFunc(func(context.Context) (*Bank, error) {
	return Embedded()
})

// FileSource loads a bank from a YAML or JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Bank, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", s.Path, err)
	}
	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse bank %s: %w", s.Path, err)
	}
	return bank, nil
}
