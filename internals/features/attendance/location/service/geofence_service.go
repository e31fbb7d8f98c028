package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	lokasiModel "absensiku_backend/internals/features/attendance/location/model"
)

// Radius bumi rata-rata (meter) untuk formula Haversine.
const EarthRadiusMeters = 6371000.0

// Haversine menghitung jarak lingkaran besar (meter) antara dua koordinat.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinRadius: tepat di batas radius dihitung lolos (<=).
func WithinRadius(distanceM, radiusM float64) bool {
	return distanceM <= radiusM
}

func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ViolationError membawa jarak terukur dan radius yang diizinkan agar
// caller bisa menampilkan umpan balik, bukan sekadar gagal/lolos.
type ViolationError struct {
	DistanceM float64
	RadiusM   float64
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("di luar area presensi: jarak %.1f m, radius maksimal %.0f m", e.DistanceM, e.RadiusM)
}

type GeoFenceService struct {
	DB *gorm.DB
}

func NewGeoFenceService(db *gorm.DB) *GeoFenceService {
	return &GeoFenceService{DB: db}
}

// ActiveLocation mengambil lokasi presensi aktif; (nil, nil) bila tidak ada.
func (s *GeoFenceService) ActiveLocation() (*lokasiModel.LokasiPresensiModel, error) {
	var m lokasiModel.LokasiPresensiModel
	err := s.DB.Where("lokasi_is_active = TRUE").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate memutuskan lolos/gagal geofence untuk koordinat yang dilaporkan.
// Tanpa lokasi aktif, validasi adalah no-op (geofencing opt-in).
func (s *GeoFenceService) Validate(lat, lon *float64) error {
	active, err := s.ActiveLocation()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa lokasi presensi")
	}
	if active == nil {
		return nil
	}

	if lat == nil || lon == nil {
		if configs.GetEnvBool("GEOFENCE_REQUIRED", false) {
			return fiber.NewError(fiber.StatusBadRequest, "Koordinat wajib diisi untuk absen di lokasi ini")
		}
		return nil
	}
	if !ValidCoordinate(*lat, *lon) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Koordinat di luar rentang yang valid")
	}

	d := Haversine(*lat, *lon, active.LokasiLatitude, active.LokasiLongitude)
	if !WithinRadius(d, active.LokasiRadiusMeter) {
		return &ViolationError{DistanceM: d, RadiusM: active.LokasiRadiusMeter}
	}
	return nil
}
