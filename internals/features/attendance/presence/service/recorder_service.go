package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	identityService "absensiku_backend/internals/features/attendance/identity/service"
	locationService "absensiku_backend/internals/features/attendance/location/service"
	"absensiku_backend/internals/features/attendance/presence/model"
)

// Recorder adalah pemilik state absensi: satu record per (person, tanggal).
type Recorder struct {
	DB     *gorm.DB
	Policy TimePolicy
	Geo    *locationService.GeoFenceService
}

func NewRecorder(db *gorm.DB, policy TimePolicy, geo *locationService.GeoFenceService) *Recorder {
	return &Recorder{DB: db, Policy: policy, Geo: geo}
}

type CheckInInput struct {
	Person    identityService.Person
	Metode    model.AbsensiMetode
	Latitude  *float64
	Longitude *float64
	Catatan   *string

	// Referensi sesi mengajar (opsional, guru saja)
	Kelas  *string
	Mapel  *string
	Materi *string

	// Kanal manual memvalidasi geofence; kanal hardware (reader di lokasi
	// tetap) dikecualikan.
	ValidateGeofence bool
}

// CheckIn membuat record hari ini. Duplikat dijaga oleh unique index DB
// pada (person_id, tanggal); pengecekan baca-dulu hanya untuk pesan yang
// lebih ramah, bukan sebagai penjaga kebenaran.
func (r *Recorder) CheckIn(in CheckInInput) (*model.AbsensiModel, error) {
	now := time.Now().In(r.Policy.Location)
	tanggal := r.Policy.DateOf(now)

	var existing model.AbsensiModel
	err := r.DB.Where("absensi_person_id = ? AND absensi_tanggal = ?", in.Person.ID, datatypes.Date(tanggal)).
		First(&existing).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Sudah absen masuk hari ini")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa absensi")
	}

	if in.ValidateGeofence {
		if err := r.Geo.Validate(in.Latitude, in.Longitude); err != nil {
			return nil, err
		}
	}

	m := &model.AbsensiModel{
		AbsensiPersonID:   in.Person.ID,
		AbsensiPersonType: in.Person.Type,
		AbsensiNama:       in.Person.Nama,
		AbsensiTanggal:    datatypes.Date(tanggal),
		AbsensiJamMasuk:   now,
		AbsensiStatus:     r.Policy.DeriveStatus(now),
		AbsensiMetode:     in.Metode,
		AbsensiLatitude:   in.Latitude,
		AbsensiLongitude:  in.Longitude,
		AbsensiCatatan:    in.Catatan,
	}
	if in.Person.Type == model.PersonTypeGuru {
		m.AbsensiKelas = in.Kelas
		m.AbsensiMapel = in.Mapel
		m.AbsensiMateri = in.Materi
	}

	if err := r.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Sudah absen masuk hari ini")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
	return m, nil
}

type CheckOutInput struct {
	Person    identityService.Person
	Latitude  *float64
	Longitude *float64
	Catatan   *string
}

// CheckOut mengisi jam keluar record hari ini. Koordinat (bila ada)
// menimpa koordinat lama; catatan baru di-append, tidak mengganti.
func (r *Recorder) CheckOut(in CheckOutInput) (*model.AbsensiModel, error) {
	now := time.Now().In(r.Policy.Location)
	tanggal := r.Policy.DateOf(now)

	var m model.AbsensiModel
	err := r.DB.Where("absensi_person_id = ? AND absensi_tanggal = ?", in.Person.ID, datatypes.Date(tanggal)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Belum absen masuk hari ini")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa absensi")
	}
	if m.AbsensiJamKeluar != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Sudah absen keluar hari ini")
	}

	updates := map[string]any{
		"absensi_jam_keluar": now,
	}
	if in.Latitude != nil && in.Longitude != nil {
		updates["absensi_latitude"] = in.Latitude
		updates["absensi_longitude"] = in.Longitude
	}
	if in.Catatan != nil {
		updates["absensi_catatan"] = AppendNote(m.AbsensiCatatan, *in.Catatan)
	}

	// Guard "jam keluar masih kosong" menutup race dua check-out bersamaan.
	res := r.DB.Model(&model.AbsensiModel{}).
		Where("absensi_id = ? AND absensi_jam_keluar IS NULL", m.AbsensiID).
		Updates(updates)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absen keluar")
	}
	if res.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Sudah absen keluar hari ini")
	}

	if err := r.DB.Where("absensi_id = ?", m.AbsensiID).First(&m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca absensi")
	}
	return &m, nil
}

// TodayRecord mengambil record hari ini; (nil, nil) bila belum ada.
func (r *Recorder) TodayRecord(personID uuid.UUID) (*model.AbsensiModel, error) {
	tanggal := r.Policy.DateOf(time.Now())
	var m model.AbsensiModel
	err := r.DB.Where("absensi_person_id = ? AND absensi_tanggal = ?", personID, datatypes.Date(tanggal)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca absensi")
	}
	return &m, nil
}

type HistoryFilter struct {
	PersonID *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
	Status   *model.AbsensiStatus
	Offset   int
	Limit    int
}

// History adalah query murni tanpa efek samping.
func (r *Recorder) History(f HistoryFilter) ([]model.AbsensiModel, int64, error) {
	q := r.DB.Model(&model.AbsensiModel{})
	if f.PersonID != nil {
		q = q.Where("absensi_person_id = ?", *f.PersonID)
	}
	if f.DateFrom != nil {
		q = q.Where("absensi_tanggal >= ?", datatypes.Date(r.Policy.DateOf(*f.DateFrom)))
	}
	if f.DateTo != nil {
		q = q.Where("absensi_tanggal <= ?", datatypes.Date(r.Policy.DateOf(*f.DateTo)))
	}
	if f.Status != nil {
		q = q.Where("absensi_status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var rows []model.AbsensiModel
	if err := q.Order("absensi_tanggal DESC, absensi_jam_masuk DESC").
		Offset(f.Offset).Limit(f.Limit).Find(&rows).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca absensi")
	}
	return rows, total, nil
}

// Delete: operasi administratif eksplisit, hard delete.
func (r *Recorder) Delete(id uuid.UUID) error {
	res := r.DB.Where("absensi_id = ?", id).Delete(&model.AbsensiModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	return nil
}

// Deteksi unique violation Postgres (kode "23505")
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// string fallback untuk driver lain (pgx) yang tidak memakai *pq.Error
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
