package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"absensiku_backend/internals/constants"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

// Listing semua absensi adalah operasi petugas/admin; guard kapabilitas
// harus menolak siswa/guru sebelum query apa pun berjalan.
func TestListRejectsNonManagerRoles(t *testing.T) {
	for _, role := range []string{constants.RoleSiswa, constants.RoleGuru} {
		t.Run(role, func(t *testing.T) {
			app := fiber.New()
			ctl := NewAbsensiController(nil, nil)

			app.Get("/attendance", func(c *fiber.Ctx) error {
				c.Locals(helperAuth.LocUserID, uuid.NewString())
				c.Locals(helperAuth.LocRole, role)
				return ctl.List(c)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/attendance", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != fiber.StatusForbidden {
				t.Errorf("role %s dapat status %d, want %d", role, resp.StatusCode, fiber.StatusForbidden)
			}
		})
	}
}

func TestListRejectsMissingSession(t *testing.T) {
	app := fiber.New()
	ctl := NewAbsensiController(nil, nil)
	app.Get("/attendance", ctl.List)

	resp, err := app.Test(httptest.NewRequest("GET", "/attendance", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("tanpa sesi dapat status %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
