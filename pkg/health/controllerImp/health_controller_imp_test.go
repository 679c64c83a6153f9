package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rotopt/pkg/knowledge"
	"rotopt/pkg/rotation/types"
)

func callHealth(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Health(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth_AllChecksPass(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	h := NewHealthCtrl(db, knowledge.Default(), types.Params{})
	code, body := callHealth(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["ok"])

	checks := body["checks"].(map[string]any)
	assert.Equal(t, true, checks["plan_store"].(map[string]any)["ok"])
	assert.Equal(t, true, checks["knowledge_tables"].(map[string]any)["ok"])

	// Domain surface: loaded crop count and effective optimizer knobs.
	assert.Equal(t, float64(6), body["knowledge"].(map[string]any)["crops"])
	opt := body["optimizer"].(map[string]any)
	assert.Equal(t, float64(50), opt["population_size"])
	assert.Equal(t, float64(100), opt["generations"])
	assert.Equal(t, float64(1000), opt["max_iterations"])
}

func TestHealth_NilDatabaseIsUnavailable(t *testing.T) {
	h := NewHealthCtrl(nil, knowledge.Default(), types.Params{})
	code, body := callHealth(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, false, body["ok"])
	store := body["checks"].(map[string]any)["plan_store"].(map[string]any)
	assert.Equal(t, false, store["ok"])
	assert.Equal(t, "no database handle", store["detail"])
}

func TestHealth_EmptyTablesAreUnavailable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	h := NewHealthCtrl(db, knowledge.Tables{}, types.Params{})
	code, body := callHealth(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	tables := body["checks"].(map[string]any)["knowledge_tables"].(map[string]any)
	assert.Equal(t, false, tables["ok"])
}
