package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cleanhnote/models"
	"cleanhnote/store"
	"cleanhnote/utils"
)

type DashboardController struct {
	Store  *store.Store
	Logger logrus.FieldLogger
}

func NewDashboardController(st *store.Store, logger logrus.FieldLogger) *DashboardController {
	return &DashboardController{
		Store:  st,
		Logger: logger,
	}
}

// DashboardResponse is the dashboard summary with formatted dates
type DashboardResponse struct {
	Dashboard       models.Dashboard `json:"dashboard"`
	LatestTaskLabel string           `json:"latest_task_date_label,omitempty"`
}

// GetDashboard returns the greeting, plan, latest task and first team of
// the active session
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	d, err := dc.Store.Dashboard()
	if err != nil {
		return storeError(c, "dashboard", err)
	}
	if d.FirstTeam != nil {
		team := hideInviteCode(*d.FirstTeam, c.Locals("email").(string))
		d.FirstTeam = &team
	}

	response := DashboardResponse{Dashboard: d}
	if d.LatestTask != nil {
		response.LatestTaskLabel = utils.FormatDate(d.LatestTask.Date)
	}
	return c.JSON(utils.SuccessResponse(response))
}
