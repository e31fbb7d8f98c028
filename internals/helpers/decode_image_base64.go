// file: internals/helpers/decode_image_base64.go
package helper

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DecodeImageBase64 menerima base64 standar maupun data-URL
// ("data:image/...;base64,....") dan mengembalikan byte mentah gambar.
func DecodeImageBase64(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, ";base64,"); i >= 0 && strings.HasPrefix(raw, "data:") {
		raw = raw[i+len(";base64,"):]
	}
	payload, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "image_base64 bukan base64 yang valid")
	}
	return payload, nil
}
