package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"rotopt/pkg/knowledge"
	"rotopt/pkg/rotation/types"
)

var started = time.Now()

// HealthCtrl reports readiness of everything a rotation request needs: the
// plan store and the knowledge tables the optimizer scores against.
type HealthCtrl struct {
	db     *gorm.DB
	tables knowledge.Tables
	params types.Params
}

func NewHealthCtrl(db *gorm.DB, tables knowledge.Tables, params types.Params) *HealthCtrl {
	return &HealthCtrl{db: db, tables: tables, params: params}
}

type check struct {
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
	defer cancel()

	store := h.checkStore(ctx)

	crops := h.tables.Crops()
	tables := check{OK: len(crops) > 0}
	if !tables.OK {
		tables.Detail = "knowledge tables empty"
	}

	p := h.params.WithDefaults()
	ok := store.OK && tables.OK
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"ok":         ok,
		"uptime_sec": int(time.Since(started).Seconds()),
		"checks": map[string]check{
			"plan_store":       store,
			"knowledge_tables": tables,
		},
		"knowledge": map[string]any{"crops": len(crops)},
		"optimizer": map[string]any{
			"population_size": p.PopulationSize,
			"generations":     p.Generations,
			"max_iterations":  p.MaxIterations,
		},
	})
}

func (h *HealthCtrl) checkStore(ctx context.Context) check {
	if h.db == nil {
		return check{Detail: "no database handle"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Detail: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Detail: "ping: " + err.Error()}
	}
	return check{OK: true}
}
