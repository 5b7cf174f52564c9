package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("invalid match script")

// Script is a recorded match. Coordinates are one-based, as typed on the console.
//
//	first: X
//	moves:
//	  - [2, 2]
//	  - [1, 1]
type Script struct {
	First string  `yaml:"first"`
	Moves [][]int `yaml:"moves"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read script: %w", err)
	}

	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("can't parse script %s: %w", path, err)
	}

	return script, nil
}

func Parse(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	if err := script.validate(); err != nil {
		return nil, err
	}

	return &script, nil
}

// FirstSeed returns the seed that opens the match, defaulting to fallback when unset.
func (that *Script) FirstSeed(fallback entity.Seed) (entity.Seed, error) {
	if that.First == "" {
		return fallback, nil
	}

	seed, err := entity.ParseSeed(that.First)
	if err != nil {
		return entity.Empty, fmt.Errorf("%w: first: %w", ErrInvalidScript, err)
	}

	return seed, nil
}

func (that *Script) validate() error {
	if len(that.Moves) == 0 {
		return fmt.Errorf("%w: no moves", ErrInvalidScript)
	}

	for i, move := range that.Moves {
		if len(move) != 2 {
			return fmt.Errorf("%w: move %d: expected [row, column], got %v", ErrInvalidScript, i+1, move)
		}
	}

	if _, err := that.FirstSeed(entity.Cross); err != nil {
		return err
	}

	return nil
}
