package middleware

import (
	"github.com/gofiber/fiber/v2"

	"cleanhnote/store"
	"cleanhnote/utils"
)

// RequireSession rejects requests while no account is logged in and puts
// the active account's email in c.Locals("email").
func RequireSession(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acc, ok := st.CurrentAccount()
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized,
				store.ErrNoSession.Kind, store.ErrNoSession.Message)
		}

		c.Locals("email", acc.Email)

		return c.Next()
	}
}
