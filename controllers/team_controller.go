package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cleanhnote/models"
	"cleanhnote/store"
	"cleanhnote/utils"
)

type TeamController struct {
	Store  *store.Store
	Logger logrus.FieldLogger
}

func NewTeamController(st *store.Store, logger logrus.FieldLogger) *TeamController {
	return &TeamController{
		Store:  st,
		Logger: logger,
	}
}

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" validate:"required"`
}

type AssignTeamTaskRequest struct {
	Member      string `json:"member" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// TeamTaskResponse adds the formatted due date to a team task
type TeamTaskResponse struct {
	models.TeamTask
	DateLabel string `json:"date_label"`
}

// TeamDetailResponse is everything the team page shows
type TeamDetailResponse struct {
	Team    models.Team         `json:"team"`
	IsOwner bool                `json:"is_owner"`
	Members []models.TeamMember `json:"members"`
	Tasks   []TeamTaskResponse  `json:"tasks"`
}

func newTeamTaskResponses(tasks []models.TeamTask) []TeamTaskResponse {
	response := make([]TeamTaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = TeamTaskResponse{TeamTask: t, DateLabel: utils.FormatDate(t.Date)}
	}
	return response
}

// CreateTeam creates a team owned by the active session (Premium only)
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	team, err := tc.Store.CreateTeam(req.Name, req.Description)
	if err != nil {
		return storeError(c, "create_team", err)
	}

	utils.LogEvent("team_created", map[string]interface{}{
		"team_id": team.ID,
		"owner":   team.Owner,
	})
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(team))
}

// JoinTeam adds the active session to the team with the given invite code
func (tc *TeamController) JoinTeam(c *fiber.Ctx) error {
	var req JoinTeamRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	team, err := tc.Store.JoinTeam(req.InviteCode)
	if err != nil {
		if store.KindOf(err) == store.ErrInvalidCode.Kind {
			tc.Logger.WithFields(logrus.Fields{
				"ip":         c.IP(),
				"request_id": c.Locals("requestID"),
			}).Warn("Join attempt with unknown invite code")
		}
		return storeError(c, "join_team", err)
	}

	return c.JSON(utils.SuccessResponse(hideInviteCode(team, c.Locals("email").(string))))
}

// GetTeams lists the teams the active session belongs to
func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	teams := tc.Store.ListTeams(email)
	for i := range teams {
		teams[i] = hideInviteCode(teams[i], email)
	}

	return c.JSON(utils.SuccessResponse(teams))
}

// GetTeam returns a team with its members and tasks
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	teamID := c.Params("id")

	team, err := tc.memberTeam(c, teamID)
	if err != nil {
		return storeError(c, "get_team", err)
	}
	members, err := tc.Store.TeamMembers(teamID)
	if err != nil {
		return storeError(c, "get_team", err)
	}
	tasks, err := tc.Store.ListTeamTasks(teamID)
	if err != nil {
		return storeError(c, "get_team", err)
	}

	return c.JSON(utils.SuccessResponse(TeamDetailResponse{
		Team:    hideInviteCode(team, email),
		IsOwner: team.Owner == email,
		Members: members,
		Tasks:   newTeamTaskResponses(tasks),
	}))
}

// AssignTeamTask lets the team owner give a task to a member
func (tc *TeamController) AssignTeamTask(c *fiber.Ctx) error {
	var req AssignTeamTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := tc.Store.AssignTeamTask(c.Params("id"), req.Member, req.Title, req.Description, req.Date)
	if err != nil {
		return storeError(c, "assign_team_task", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(newTeamTaskResponses([]models.TeamTask{task})[0]))
}

func (tc *TeamController) GetTeamTasks(c *fiber.Ctx) error {
	if _, err := tc.memberTeam(c, c.Params("id")); err != nil {
		return storeError(c, "get_team_tasks", err)
	}

	tasks, err := tc.Store.ListTeamTasks(c.Params("id"))
	if err != nil {
		return storeError(c, "get_team_tasks", err)
	}
	return c.JSON(utils.SuccessResponse(newTeamTaskResponses(tasks)))
}

// memberTeam loads a team the active session belongs to. Teams of which
// it is not a member are reported as not found.
func (tc *TeamController) memberTeam(c *fiber.Ctx, teamID string) (models.Team, error) {
	team, err := tc.Store.GetTeam(teamID)
	if err != nil {
		return models.Team{}, err
	}
	if !team.HasMember(c.Locals("email").(string)) {
		return models.Team{}, store.ErrTeamNotFound
	}
	return team, nil
}

// hideInviteCode blanks the invite code for everyone but the owner
func hideInviteCode(team models.Team, email string) models.Team {
	if team.Owner != email {
		team.InviteCode = ""
	}
	return team
}
