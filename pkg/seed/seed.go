package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-inventory-kardex/internal/model"
)

// Importer is satisfied by service.LedgerService
type Importer interface {
	Import(snapshot *model.Snapshot) error
}

// Read decodes a snapshot document; unknown fields are rejected
func Read(r io.Reader) (*model.Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var snapshot model.Snapshot
	if err := dec.Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot document: %w", err)
	}
	return &snapshot, nil
}

// ImportFile reads the document at path and imports it
func ImportFile(ledger Importer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snapshot, err := Read(f)
	if err != nil {
		return err
	}
	return ledger.Import(snapshot)
}
