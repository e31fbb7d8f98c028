package service

import (
	"strconv"
	"strings"
	"time"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/presence/model"
)

// TimePolicy menentukan status absen masuk: sampai dengan batas toleransi
// dihitung HADIR, setelahnya TERLAMBAT.
type TimePolicy struct {
	StartHour    int
	StartMinute  int
	GraceMinutes int
	Location     *time.Location
}

// LoadTimePolicy membaca ATTENDANCE_START_TIME (HH:MM) + ATTENDANCE_GRACE_MINUTES.
func LoadTimePolicy() TimePolicy {
	p := TimePolicy{
		StartHour:    7,
		StartMinute:  0,
		GraceMinutes: configs.GetEnvInt("ATTENDANCE_GRACE_MINUTES", 15),
		Location:     configs.AppLocation,
	}
	if p.Location == nil {
		p.Location = time.Local
	}

	if raw := configs.GetEnv("ATTENDANCE_START_TIME", "07:00"); raw != "" {
		parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
		if len(parts) == 2 {
			if h, err := strconv.Atoi(parts[0]); err == nil {
				if m, err := strconv.Atoi(parts[1]); err == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
					p.StartHour, p.StartMinute = h, m
				}
			}
		}
	}
	return p
}

// Boundary: jam mulai + toleransi, di hari yang sama dengan t.
func (p TimePolicy) Boundary(t time.Time) time.Time {
	t = t.In(p.Location)
	start := time.Date(t.Year(), t.Month(), t.Day(), p.StartHour, p.StartMinute, 0, 0, p.Location)
	return start.Add(time.Duration(p.GraceMinutes) * time.Minute)
}

// DeriveStatus menghitung status dari jam masuk; batas toleransi inklusif.
// ALPHA tidak pernah dihasilkan oleh absen masuk.
func (p TimePolicy) DeriveStatus(checkIn time.Time) model.AbsensiStatus {
	if checkIn.In(p.Location).After(p.Boundary(checkIn)) {
		return model.AbsensiStatusTerlambat
	}
	return model.AbsensiStatusHadir
}

// DateOf memotong t ke tanggal kalender di timezone aplikasi.
func (p TimePolicy) DateOf(t time.Time) time.Time {
	t = t.In(p.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.Location)
}

// AppendNote menambahkan (bukan mengganti) catatan yang sudah ada.
func AppendNote(existing *string, extra string) *string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return existing
	}
	if existing == nil || strings.TrimSpace(*existing) == "" {
		return &extra
	}
	joined := *existing + "; " + extra
	return &joined
}
