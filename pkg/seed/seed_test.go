package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-inventory-kardex/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureImporter struct {
	got *model.Snapshot
	err error
}

func (c *captureImporter) Import(snapshot *model.Snapshot) error {
	c.got = snapshot
	return c.err
}

func TestRead(t *testing.T) {
	snapshot, err := Read(strings.NewReader(`{
		"categories": [{"name": "Tools"}],
		"products": [],
		"transactions": [{"type": "entry", "quantity": 3, "unitCost": 1.25, "date": "2024-02-29"}]
	}`))
	require.NoError(t, err)
	require.Len(t, snapshot.Transactions, 1)
	assert.Equal(t, model.TxEntry, snapshot.Transactions[0].Type)
	assert.Equal(t, "2024-02-29", snapshot.Transactions[0].Date.String())
	assert.Equal(t, "1.25", snapshot.Transactions[0].UnitCost.String())

	_, err = Read(strings.NewReader(`{"categories": [], "suppliers": []}`))
	assert.Error(t, err)

	_, err = Read(strings.NewReader(`{"transactions": [{"date": "29/02/2024"}]}`))
	assert.Error(t, err)
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": [{"name": "Tools"}]}`), 0o600))

	importer := &captureImporter{}
	require.NoError(t, ImportFile(importer, path))
	require.NotNil(t, importer.got)
	assert.Equal(t, "Tools", importer.got.Categories[0].Name)

	importer.err = errors.New("rejected")
	assert.EqualError(t, ImportFile(importer, path), "rejected")

	assert.Error(t, ImportFile(importer, filepath.Join(t.TempDir(), "missing.json")))
}
