package controllers

import (
	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/resources"
	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ResourcesController struct {
	Store *resources.Store
}

func NewResourcesController(store *resources.Store) *ResourcesController {
	return &ResourcesController{Store: store}
}

// GetLinks godoc
// @Summary Get saved resource links
// @Tags resources
// @Produce json
// @Success 200 {object} models.ResourceLinks
// @Router /resources [get]
func (rc *ResourcesController) GetLinks(c *fiber.Ctx) error {
	return c.JSON(rc.Store.Load(c.UserContext()))
}

// SaveLinks godoc
// @Summary Replace saved resource links
// @Description All six links are written at once; omitted fields are cleared
// @Tags resources
// @Accept json
// @Produce json
// @Param links body models.ResourceLinks true "Links"
// @Success 200 {object} models.ResourceLinks
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /resources [post]
func (rc *ResourcesController) SaveLinks(c *fiber.Ctx) error {
	var links models.ResourceLinks
	if err := c.BodyParser(&links); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := rc.Store.Save(c.UserContext(), links); err != nil {
		return utils.InternalServerError(c, "Could not save links")
	}

	return c.JSON(links)
}
