package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cleanhnote/models"
	"cleanhnote/store"
	"cleanhnote/utils"
)

type TaskController struct {
	Store  *store.Store
	Logger logrus.FieldLogger
}

func NewTaskController(st *store.Store, logger logrus.FieldLogger) *TaskController {
	return &TaskController{
		Store:  st,
		Logger: logger,
	}
}

type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Level       models.Level `json:"level"`
	Date        string       `json:"date"`
}

type UpdateTaskStatusRequest struct {
	Status models.Status `json:"status" validate:"required"`
}

// TaskResponse adds the formatted due date to a personal task
type TaskResponse struct {
	models.PersonalTask
	DateLabel string `json:"date_label"`
}

func newTaskResponse(t models.PersonalTask) TaskResponse {
	return TaskResponse{PersonalTask: t, DateLabel: utils.FormatDate(t.Date)}
}

// CreateTask adds a task for the active session
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := tc.Store.CreateTask(req.Title, req.Description, req.Level, req.Date)
	if err != nil {
		return storeError(c, "create_task", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(newTaskResponse(task)))
}

// GetTasks returns the tasks of the active session, newest first
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	tasks := tc.Store.ListTasks(email)
	response := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = newTaskResponse(t)
	}

	return c.JSON(utils.SuccessResponse(response))
}

func (tc *TaskController) GetTask(c *fiber.Ctx) error {
	id, ok := utils.ParseInt64(c.Params("id"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "InvalidRequest", "Invalid task ID")
	}

	task, found := tc.Store.GetTask(id)
	if !found {
		return storeError(c, "get_task", store.ErrTaskNotFound)
	}

	return c.JSON(utils.SuccessResponse(newTaskResponse(task)))
}

// UpdateTaskStatus changes the status of a task. An unknown id is not an
// error; the response reports updated=false.
func (tc *TaskController) UpdateTaskStatus(c *fiber.Ctx) error {
	id, ok := utils.ParseInt64(c.Params("id"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "InvalidRequest", "Invalid task ID")
	}

	var req UpdateTaskStatusRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	updated, err := tc.Store.SetTaskStatus(id, req.Status)
	if err != nil {
		return storeError(c, "update_task_status", err)
	}
	if !updated {
		tc.Logger.WithField("task_id", id).Debug("Status update for unknown task ignored")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"updated": updated,
		"status":  req.Status,
	})
}
