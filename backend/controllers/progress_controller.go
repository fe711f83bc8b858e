package controllers

import (
	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/progress"
	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store   *progress.Store
	Catalog models.Catalog
}

func NewProgressController(store *progress.Store, catalog models.Catalog) *ProgressController {
	return &ProgressController{Store: store, Catalog: catalog}
}

type toggleRequest struct {
	ID string `json:"id"`
}

// GetCatalog godoc
// @Summary Get the curriculum
// @Description Returns phases, days and activities of the training plan
// @Tags progress
// @Produce json
// @Success 200 {object} models.Catalog
// @Router /catalog [get]
func (pc *ProgressController) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(pc.Catalog)
}

// GetProgress godoc
// @Summary Get progress summary
// @Description Returns overall and per-phase completion and the next five activities
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressSummary
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	return c.JSON(progress.Summarize(pc.Catalog, pc.Store.Completed()))
}

// GetCompleted godoc
// @Summary List completed activity ids
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /progress/completed [get]
func (pc *ProgressController) GetCompleted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"completed": pc.Store.Completed().Strings(),
	})
}

// GetUpcoming godoc
// @Summary Get upcoming activities
// @Tags progress
// @Produce json
// @Param limit query int false "Number of activities (default 5)"
// @Success 200 {object} map[string]interface{}
// @Router /progress/upcoming [get]
func (pc *ProgressController) GetUpcoming(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", progress.DefaultUpcomingLimit)
	if limit < 0 {
		return utils.BadRequest(c, "limit must not be negative")
	}
	return c.JSON(fiber.Map{
		"upcoming": progress.Upcoming(pc.Catalog, pc.Store.Completed(), limit),
	})
}

// ToggleActivity godoc
// @Summary Toggle an activity
// @Description Marks the activity done if it was open, or open if it was done
// @Tags progress
// @Accept json
// @Produce json
// @Param body body toggleRequest true "Activity id, e.g. p1-d1-a0"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /progress/toggle [post]
func (pc *ProgressController) ToggleActivity(c *fiber.Ctx) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	id, err := models.ParseActivityID(req.ID)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if !pc.Catalog.Contains(id) {
		return utils.BadRequest(c, "unknown activity "+id.String())
	}

	set := pc.Store.Toggle(c.UserContext(), id)

	return c.JSON(fiber.Map{
		"id":        id,
		"completed": set.Contains(id),
		"summary":   progress.Summarize(pc.Catalog, set),
	})
}

// ResetProgress godoc
// @Summary Clear all progress
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressSummary
// @Router /progress/reset [post]
func (pc *ProgressController) ResetProgress(c *fiber.Ctx) error {
	set := pc.Store.Reset(c.UserContext())
	return c.JSON(progress.Summarize(pc.Catalog, set))
}
