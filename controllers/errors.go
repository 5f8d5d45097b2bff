package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cleanhnote/store"
	"cleanhnote/utils"
)

var statusByKind = map[string]int{
	store.ErrMissingField.Kind:        fiber.StatusBadRequest,
	store.ErrDuplicateEmail.Kind:      fiber.StatusConflict,
	store.ErrInvalidCredentials.Kind:  fiber.StatusUnauthorized,
	store.ErrNotPremium.Kind:          fiber.StatusForbidden,
	store.ErrInvalidCode.Kind:         fiber.StatusNotFound,
	store.ErrAlreadyMember.Kind:       fiber.StatusConflict,
	store.ErrTeamNotFound.Kind:        fiber.StatusNotFound,
	store.ErrNoSession.Kind:           fiber.StatusUnauthorized,
	store.ErrInvalidLevel.Kind:        fiber.StatusBadRequest,
	store.ErrInvalidStatus.Kind:       fiber.StatusBadRequest,
	store.ErrNotTeamOwner.Kind:        fiber.StatusForbidden,
	store.ErrNotTeamMember.Kind:       fiber.StatusBadRequest,
	store.ErrInviteCodeExhausted.Kind: fiber.StatusServiceUnavailable,
	store.ErrTaskNotFound.Kind:        fiber.StatusNotFound,
}

// storeError writes the response for an error returned by the store.
// Unclassified errors are reported and answered with 500.
func storeError(c *fiber.Ctx, op string, err error) error {
	var se *store.Error
	if errors.As(err, &se) {
		status, ok := statusByKind[se.Kind]
		if !ok {
			status = fiber.StatusBadRequest
		}
		return utils.ErrorResponse(c, status, se.Kind, err.Error())
	}

	utils.LogError(op, err, map[string]interface{}{
		"path":       c.Path(),
		"request_id": c.Locals("requestID"),
	})
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "", "Internal server error")
}
