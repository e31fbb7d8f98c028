package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	faceService "absensiku_backend/internals/features/attendance/face/service"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
	userModel "absensiku_backend/internals/features/users/model"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

// Person adalah hasil resolusi identitas dari kanal mana pun.
type Person struct {
	ID   uuid.UUID
	Nama string
	Type presenceModel.PersonType
}

type IdentityService struct {
	DB   *gorm.DB
	Face *faceService.FaceService
}

func NewIdentityService(db *gorm.DB, face *faceService.FaceService) *IdentityService {
	return &IdentityService{DB: db, Face: face}
}

// ResolveSession memastikan subject sesi terdaftar di direktori person.
func (s *IdentityService) ResolveSession(cu helperAuth.CurrentUser) (Person, error) {
	switch cu.UserType {
	case string(presenceModel.PersonTypeSiswa):
		var m userModel.SiswaModel
		if err := s.DB.Where("siswa_id = ?", cu.PersonID).First(&m).Error; err != nil {
			return Person{}, notFoundOrInternal(err, "Siswa tidak ditemukan")
		}
		return Person{ID: m.SiswaID, Nama: m.SiswaNama, Type: presenceModel.PersonTypeSiswa}, nil
	case string(presenceModel.PersonTypeGuru):
		var m userModel.GuruModel
		if err := s.DB.Where("guru_id = ?", cu.PersonID).First(&m).Error; err != nil {
			return Person{}, notFoundOrInternal(err, "Guru tidak ditemukan")
		}
		return Person{ID: m.GuruID, Nama: m.GuruNama, Type: presenceModel.PersonTypeGuru}, nil
	default:
		return Person{}, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terhubung ke data siswa/guru")
	}
}

// ResolveByID mengambil person dari direktori berdasarkan id + tipe.
func (s *IdentityService) ResolveByID(personID uuid.UUID, pt presenceModel.PersonType) (Person, error) {
	return s.ResolveSession(helperAuth.CurrentUser{PersonID: personID, UserType: string(pt)})
}

// ResolveRFID mencari pemilik kartu di registri siswa lalu guru.
func (s *IdentityService) ResolveRFID(cardID string) (Person, error) {
	return s.resolveIdentifier("siswa_kartu_rfid", "guru_kartu_rfid", cardID)
}

// ResolveBarcode mencari pemilik barcode di registri siswa lalu guru.
func (s *IdentityService) ResolveBarcode(code string) (Person, error) {
	return s.resolveIdentifier("siswa_barcode", "guru_barcode", code)
}

func (s *IdentityService) resolveIdentifier(siswaCol, guruCol, id string) (Person, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Person{}, fiber.NewError(fiber.StatusUnprocessableEntity, "Identifier kosong")
	}

	var siswa userModel.SiswaModel
	err := s.DB.Where(siswaCol+" = ?", id).First(&siswa).Error
	if err == nil {
		return Person{ID: siswa.SiswaID, Nama: siswa.SiswaNama, Type: presenceModel.PersonTypeSiswa}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Person{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencari identifier")
	}

	var guru userModel.GuruModel
	err = s.DB.Where(guruCol+" = ?", id).First(&guru).Error
	if err == nil {
		return Person{ID: guru.GuruID, Nama: guru.GuruNama, Type: presenceModel.PersonTypeGuru}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Person{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencari identifier")
	}

	return Person{}, fiber.NewError(fiber.StatusNotFound, "Identifier tidak terdaftar")
}

// ResolveFace mendelegasikan ke FaceService lalu memuat data person.
func (s *IdentityService) ResolveFace(payload []byte) (Person, error) {
	match, err := s.Face.Identify(payload)
	if err != nil {
		if errors.Is(err, faceService.ErrNoMatch) {
			return Person{}, fiber.NewError(fiber.StatusNotFound, "Wajah tidak dikenali")
		}
		return Person{}, err
	}
	return s.ResolveByID(match.PersonID, match.PersonType)
}

func notFoundOrInternal(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca direktori person")
}
