package instance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

func readFile[T any](path string, read func(r io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

// LoadScenario reads the scenario file at path
func LoadScenario(path string) (*model.Scenario, error) {
	return readFile(path, func(r io.Reader) (*model.Scenario, error) {
		return ReadScenario(r, path)
	})
}

// LoadWeek reads the week file at path
func LoadWeek(path string, scn *model.Scenario, opts Options) (*WeekData, error) {
	return readFile(path, func(r io.Reader) (*WeekData, error) {
		return ReadWeek(r, path, scn, opts)
	})
}

// LoadHistory reads the history file at path
func LoadHistory(path string, scn *model.Scenario) (*HistoryData, error) {
	return readFile(path, func(r io.Reader) (*HistoryData, error) {
		return ReadHistory(r, path, scn)
	})
}

// LoadSolution reads the solution file at path
func LoadSolution(path string, scn *model.Scenario) (*SolutionData, error) {
	return readFile(path, func(r io.Reader) (*SolutionData, error) {
		return ReadSolution(r, path, scn)
	})
}

func writeFile(path string, write func(w io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

// SaveHistory writes the states entering week to path
func SaveHistory(path string, scn *model.Scenario, week int, states []model.State) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteHistory(w, scn, week, states)
	})
}

// SaveSolution writes the roster of week to path
func SaveSolution(path string, scn *model.Scenario, week int, r *roster.Roster) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteSolution(w, scn, week, r)
	})
}

// HistoryFileName is the conventional name of the history file entering week
func HistoryFileName(scn *model.Scenario, week int) string {
	return fmt.Sprintf("H0-%s-%d.txt", scn.Name(), week)
}

// SolutionFileName is the conventional name of the solution file of week
func SolutionFileName(scn *model.Scenario, week int) string {
	return fmt.Sprintf("Sol-%s-%d.txt", scn.Name(), week)
}
