// file: internals/helpers/fromFiberError.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError menerjemahkan error dari layer service (umumnya *fiber.Error)
// ke response JSON standar. Error lain dianggap 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
