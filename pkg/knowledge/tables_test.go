package knowledge

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables_EveryCropAvoidsItself(t *testing.T) {
	tables := Default()
	for _, crop := range tables.Crops() {
		assert.True(t, tables.AvoidsNext(crop, crop), "%s should avoid following itself", crop)
	}
}

func TestDefaultTables_UnknownCropIsZero(t *testing.T) {
	tables := Default()

	b := tables.Benefits("dragonfruit")
	assert.Zero(t, b.NitrogenFixation)
	assert.Zero(t, b.EconomicValue)

	tr := tables.Traits("dragonfruit")
	assert.Empty(t, tr.GoodNext)
	assert.Empty(t, tr.AvoidNext)

	assert.False(t, tables.AvoidsNext("dragonfruit", "corn"))
	assert.False(t, tables.FavorsNext("dragonfruit", "corn"))
}

func TestDefaultTables_FavorsNext(t *testing.T) {
	tables := Default()
	assert.True(t, tables.FavorsNext(Soybean, Corn))
	assert.True(t, tables.FavorsNext(Alfalfa, Corn))
	assert.False(t, tables.FavorsNext(Oats, Corn))
}

func TestDefaultTables_CropSet(t *testing.T) {
	tables := Default()
	crops := tables.Crops()
	assert.Len(t, crops, 6)
	assert.ElementsMatch(t, []string{Corn, Soybean, Wheat, Oats, Alfalfa, Barley}, crops)
}

func TestLoadFromFiles_EmptyPathsReturnDefaults(t *testing.T) {
	tables, err := LoadFromFiles("", "")
	require.NoError(t, err)
	assert.Equal(t, Default().Benefits(Corn), tables.Benefits(Corn))
}

func TestLoadFromFiles_TraitsCSVOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "traits.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll([][]string{
		{"Crop", "Good_Next", "Avoid-Next", "nitrogen demand"},
		{"corn", "wheat; oats", "corn; soybean", "High"},
		{"", "ignored", "ignored", ""},
	}))
	w.Flush()
	require.NoError(t, f.Close())

	tables, err := LoadFromFiles(path, "")
	require.NoError(t, err)

	tr := tables.Traits(Corn)
	assert.Equal(t, []string{"wheat", "oats"}, tr.GoodNext)
	assert.Equal(t, []string{"corn", "soybean"}, tr.AvoidNext)
	assert.Equal(t, "high", tr.NitrogenDemand)

	// untouched crops keep defaults
	assert.Equal(t, Default().Traits(Soybean), tables.Traits(Soybean))
}

func TestLoadFromFiles_TraitsCSVMissingCropColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := LoadFromFiles(path, "")
	assert.Error(t, err)
}

func TestLoadFromFiles_MissingBenefitsFileKeepsDefaults(t *testing.T) {
	// XLSX overrides are best-effort: a missing file is not fatal.
	tables, err := LoadFromFiles("", "/nonexistent/benefits.xlsx")
	require.NoError(t, err)
	assert.Equal(t, Default().Benefits(Alfalfa), tables.Benefits(Alfalfa))
}
