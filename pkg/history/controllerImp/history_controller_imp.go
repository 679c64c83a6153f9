package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rotopt/entities"
	"rotopt/pkg/history/controller"
	repo "rotopt/pkg/history/repository"
)

type HistoryCtrl struct{ repo repo.HistoryRepository }

func New(repo repo.HistoryRepository) controller.HistoryController { return &HistoryCtrl{repo} }

type recordReq struct {
	Year      int      `json:"year"`
	Crop      string   `json:"crop"`
	Yield     *float64 `json:"yield"`
	Practices string   `json:"practices"`
}

func (h *HistoryCtrl) Create(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Year == 0 || req.Crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "year and crop are required"})
	}
	rec := &entities.FieldHistory{
		FieldID:   uint(fid),
		Year:      req.Year,
		Crop:      req.Crop,
		Yield:     req.Yield,
		Practices: req.Practices,
	}
	if err := h.repo.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HistoryCtrl) List(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListByField(uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
