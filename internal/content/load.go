package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"sagetrail/internal/domain"
)

// Tables bundles the static content a session plays with.
type Tables struct {
	Board   domain.Board        `json:"board"`
	Trials  []domain.TrialCard  `json:"trials"`
	Fates   []domain.FateCard   `json:"fates"`
	Chances []domain.ChanceCard `json:"chances"`
}

var (
	tables   Tables
	loadOnce sync.Once
	loadErr  error
)

// Default returns the compiled-in content tables.
func Default() Tables {
	return Tables{
		Board:   DefaultBoard(),
		Trials:  DefaultTrialPool(),
		Fates:   DefaultFatePool(),
		Chances: DefaultChancePool(),
	}
}

// LoadTables reads content overrides from a JSON file. Missing sections fall
// back to the compiled-in defaults. Safe to call more than once; only the
// first call reads the file.
func LoadTables(path string) error {
	loadOnce.Do(func() {
		tables = Default()

		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read content tables: %w", err)
			return
		}

		var override Tables
		if err := json.Unmarshal(data, &override); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal content tables: %w", err)
			return
		}

		if len(override.Board.Tiles) > 0 {
			tables.Board = override.Board
		}
		if len(override.Trials) > 0 {
			tables.Trials = override.Trials
		}
		if len(override.Fates) > 0 {
			tables.Fates = override.Fates
		}
		if len(override.Chances) > 0 {
			tables.Chances = override.Chances
		}

		loadErr = Validate(tables)
	})
	return loadErr
}

// GetTables returns the active content tables, defaulting when LoadTables
// has not run or failed.
func GetTables() Tables {
	if len(tables.Board.Tiles) == 0 {
		return Default()
	}
	return tables
}

// Validate checks the structural invariants the engine relies on.
func Validate(t Tables) error {
	if t.Board.Size() < 2 {
		return fmt.Errorf("board needs at least 2 tiles, has %d", t.Board.Size())
	}
	if t.Board.Tiles[0].Kind != domain.TileStart {
		return fmt.Errorf("tile 0 must be the start tile, got %q", t.Board.Tiles[0].Kind)
	}
	for i, tile := range t.Board.Tiles {
		if tile.Index != i {
			return fmt.Errorf("tile %d carries index %d", i, tile.Index)
		}
	}
	if len(t.Trials) == 0 {
		return fmt.Errorf("trial pool is empty")
	}
	for i, trial := range t.Trials {
		if trial.AnswerIndex < 0 || trial.AnswerIndex >= len(trial.Options) {
			return fmt.Errorf("trial %d answer index %d out of range", i, trial.AnswerIndex)
		}
	}
	if len(t.Fates) == 0 {
		return fmt.Errorf("fate pool is empty")
	}
	if len(t.Chances) == 0 {
		return fmt.Errorf("chance pool is empty")
	}
	size := t.Board.Size()
	for i, card := range t.Fates {
		if p := card.Effect.ForcePosition; p != nil && (*p < 0 || *p >= size) {
			return fmt.Errorf("fate %d forces position %d outside the board", i, *p)
		}
	}
	for i, card := range t.Chances {
		if p := card.Effect.ForcePosition; p != nil && (*p < 0 || *p >= size) {
			return fmt.Errorf("chance %d forces position %d outside the board", i, *p)
		}
	}
	return nil
}
