package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rotopt/entities"
	"rotopt/pkg/field/controller"
	"rotopt/pkg/field/service"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) controller.FieldController { return &FieldCtrl{svc} }

type createReq struct {
	FarmID        string  `json:"farm_id"`
	FieldName     string  `json:"field_name"`
	SizeAcres     float64 `json:"size_acres"`
	SoilType      string  `json:"soil_type"`
	DrainageClass string  `json:"drainage_class"`
	ClimateZone   string  `json:"climate_zone"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.SizeAcres <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "size_acres must be positive"})
	}
	f := &entities.Field{
		UserID:        uid,
		FarmID:        req.FarmID,
		FieldName:     req.FieldName,
		SizeAcres:     req.SizeAcres,
		SoilType:      req.SoilType,
		DrainageClass: req.DrainageClass,
		ClimateZone:   req.ClimateZone,
	}
	out, err := h.svc.CreateField(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.svc.GetFieldByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}
