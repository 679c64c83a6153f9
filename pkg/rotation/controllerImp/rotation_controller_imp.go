package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	fieldrepo "rotopt/pkg/field/repository"
	fieldRepoImp "rotopt/pkg/field/repositoryImp"
	"rotopt/pkg/rotation/controller"
	"rotopt/pkg/rotation/service"
	"rotopt/pkg/rotation/types"
)

type RotationCtrl struct {
	svc    service.RotationService
	fields fieldrepo.FieldRepository
}

func NewRotationCtrl(db *gorm.DB, svc service.RotationService) controller.RotationController {
	return &RotationCtrl{svc: svc, fields: fieldRepoImp.New(db)}
}

type generateReq struct {
	Goals       []types.RotationGoal       `json:"goals"`
	Constraints []types.RotationConstraint `json:"constraints"`
	Horizon     int                        `json:"planning_horizon"`
}

func (h *RotationCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	var req generateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	plan, err := h.svc.GenerateOptimalRotation(c.Request().Context(), f, req.Goals, req.Constraints, req.Horizon)
	if err != nil {
		if errors.Is(err, types.ErrInvalidHorizon) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if c.QueryParam("format") == "calendar" {
		type CalItem struct {
			Crop       string   `json:"crop"`
			Yield      float64  `json:"estimated_yield"`
			Unit       string   `json:"yield_unit"`
			Window     string   `json:"planting_window"`
			Confidence float64  `json:"confidence_score"`
			Notes      []string `json:"notes,omitempty"`
		}
		cal := map[int]CalItem{} // rotation year -> item
		for _, y := range plan.Years {
			cal[y.Year] = CalItem{
				Crop: y.CropName, Yield: y.EstimatedYield, Unit: y.YieldUnit,
				Window: y.PlantingWindow, Confidence: y.ConfidenceScore, Notes: y.ManagementNotes,
			}
		}
		return c.JSON(http.StatusCreated, map[string]any{
			"field_id":      f.FieldID,
			"plan_id":       plan.PlanID,
			"overall_score": plan.OverallScore,
			"calendar":      cal,
		})
	}
	return c.JSON(http.StatusCreated, plan)
}

func (h *RotationCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.fields.FindByID(uint(fid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	if c.QueryParam("latest") == "true" {
		plan, err := h.svc.LatestByField(uint(fid))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no plans for field"})
		}
		return c.JSON(http.StatusOK, plan)
	}
	plans, err := h.svc.ListByField(uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plans)
}
