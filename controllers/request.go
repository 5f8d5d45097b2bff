package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cleanhnote/store"
	"cleanhnote/utils"
)

// parseBody decodes and validates a request body into req. When it returns
// false the error response has already been written.
func parseBody(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, "InvalidRequest", "Invalid request body")
	}

	if err := utils.ValidateStruct(req); err != nil {
		code := "InvalidRequest"
		var verr *utils.ValidationError
		if errors.As(err, &verr) && verr.MissingOnly() {
			code = store.ErrMissingField.Kind
		}
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, code, err.Error())
	}
	return true, nil
}
