package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// LedgerStore persists the audit ledgers of repair runs.
type LedgerStore interface {
	SaveLedgers(path m.Path, reports []m.LedgerReport) error
	LoadLedgers(path m.Path) ([]m.LedgerReport, error)
}

type yamlLedgerStore struct{}

// NewLedgerStore returns a LedgerStore writing YAML documents.
func NewLedgerStore() LedgerStore {
	return &yamlLedgerStore{}
}

type ledgerFile struct {
	Runs []m.LedgerReport `yaml:"runs"`
}

// SaveLedgers writes reports to path, replacing any previous content.
func (s *yamlLedgerStore) SaveLedgers(path m.Path, reports []m.LedgerReport) error {
	data, err := yaml.Marshal(ledgerFile{Runs: reports})
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}

	return nil
}

// LoadLedgers reads reports previously written by SaveLedgers.
func (s *yamlLedgerStore) LoadLedgers(path m.Path) ([]m.LedgerReport, error) {
	// #nosec G304 - path is supplied by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var file ledgerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}

	return file.Runs, nil
}
