package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cleanhnote/store"
	"cleanhnote/utils"
)

type AuthController struct {
	Store  *store.Store
	Logger logrus.FieldLogger
}

func NewAuthController(st *store.Store, logger logrus.FieldLogger) *AuthController {
	return &AuthController{
		Store:  st,
		Logger: logger,
	}
}

// Presence is checked by the store, which reports MissingField and
// InvalidCredentials itself.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "InvalidRequest", "Invalid request body")
	}

	acc, err := ac.Store.Register(req.Username, req.Email, req.Password)
	if err != nil {
		return storeError(c, "register", err)
	}

	utils.LogEvent("account_registered", map[string]interface{}{
		"email":      acc.Email,
		"request_id": c.Locals("requestID"),
	})
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(ac.Store.Session()))
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "InvalidRequest", "Invalid request body")
	}

	if _, err := ac.Store.Login(req.Email, req.Password); err != nil {
		ac.Logger.WithFields(logrus.Fields{
			"ip":         c.IP(),
			"request_id": c.Locals("requestID"),
		}).Warn("Failed login attempt")
		return storeError(c, "login", err)
	}

	return c.JSON(utils.SuccessResponse(ac.Store.Session()))
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Store.Logout()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// GetCurrentUser returns the active session
func (ac *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	sess := ac.Store.Session()
	if !sess.LoggedIn {
		return storeError(c, "current_user", store.ErrNoSession)
	}
	return c.JSON(utils.SuccessResponse(sess))
}
