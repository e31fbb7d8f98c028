package constants

import "fmt"

// Role dasar aplikasi absensi
const (
	RoleSiswa   = "siswa"
	RoleGuru    = "guru"
	RolePetugas = "petugas"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyPetugasCanAccess = "❌ Hanya petugas atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorPetugas(feature string) string {
	return fmt.Sprintf(ErrOnlyPetugasCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSiswa,
		RoleGuru,
		RolePetugas,
		RoleAdmin,
	}

	PetugasAndAbove = []string{
		RolePetugas,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
