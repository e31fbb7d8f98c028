// file: internals/helpers/auth/current_user.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"absensiku_backend/internals/constants"
)

// Kunci locals yang di-hydrate oleh middleware JWT.
const (
	LocUserID   = "user_id"
	LocPersonID = "person_id"
	LocRole     = "role"
	LocUserType = "user_type" // SISWA | GURU
	LocUsername = "username"
)

// CurrentUser adalah identitas hasil autentikasi yang dipakai semua operasi
// inti sebagai parameter eksplisit (bukan lookup global).
type CurrentUser struct {
	UserID   uuid.UUID
	PersonID uuid.UUID
	Username string
	Role     string
	UserType string
}

func localString(c *fiber.Ctx, key string) string {
	if v := c.Locals(key); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetCurrentUser membaca identitas dari locals; error 401 jika tidak lengkap.
func GetCurrentUser(c *fiber.Ctx) (CurrentUser, error) {
	var cu CurrentUser

	uid, err := uuid.Parse(localString(c, LocUserID))
	if err != nil {
		return cu, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	cu.UserID = uid

	// person_id boleh sama dengan user_id untuk akun petugas/admin murni
	if pid, err := uuid.Parse(localString(c, LocPersonID)); err == nil {
		cu.PersonID = pid
	} else {
		cu.PersonID = uid
	}

	cu.Username = localString(c, LocUsername)
	cu.Role = strings.ToLower(localString(c, LocRole))
	cu.UserType = strings.ToUpper(localString(c, LocUserType))
	if cu.Role == "" {
		return cu, fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return cu, nil
}

// ==========================
// Capability checks
// ==========================

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// CanActForOthers: boleh mengajukan koreksi / absen atas nama orang lain.
func CanActForOthers(cu CurrentUser) bool {
	return hasRole(cu.Role, constants.PetugasAndAbove)
}

// CanApproveCorrections: boleh menyetujui/menolak koreksi absensi.
func CanApproveCorrections(cu CurrentUser) bool {
	return hasRole(cu.Role, constants.PetugasAndAbove)
}

// CanManageLocations: CRUD lokasi presensi & enroll wajah.
func CanManageLocations(cu CurrentUser) bool {
	return hasRole(cu.Role, constants.PetugasAndAbove)
}

// CanDeleteAttendance: hapus record absensi (operasi administratif).
func CanDeleteAttendance(cu CurrentUser) bool {
	return hasRole(cu.Role, constants.AdminOnly)
}
