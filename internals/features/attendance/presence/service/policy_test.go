package service

import (
	"testing"
	"time"

	"absensiku_backend/internals/features/attendance/presence/model"
)

func jakartaPolicy(t *testing.T) TimePolicy {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	return TimePolicy{StartHour: 7, StartMinute: 0, GraceMinutes: 15, Location: loc}
}

func TestDeriveStatus(t *testing.T) {
	p := jakartaPolicy(t)
	day := func(h, m, s int) time.Time {
		return time.Date(2026, 3, 2, h, m, s, 0, p.Location)
	}

	tests := []struct {
		name    string
		checkIn time.Time
		want    model.AbsensiStatus
	}{
		{"sebelum jam mulai", day(6, 45, 0), model.AbsensiStatusHadir},
		{"tepat jam mulai", day(7, 0, 0), model.AbsensiStatusHadir},
		{"dalam toleransi", day(7, 10, 0), model.AbsensiStatusHadir},
		{"tepat batas toleransi", day(7, 15, 0), model.AbsensiStatusHadir},
		{"sedetik lewat batas", day(7, 15, 1), model.AbsensiStatusTerlambat},
		{"terlambat jelas", day(7, 20, 0), model.AbsensiStatusTerlambat},
		{"siang hari", day(10, 0, 0), model.AbsensiStatusTerlambat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.DeriveStatus(tt.checkIn); got != tt.want {
				t.Errorf("DeriveStatus(%s) = %s, want %s", tt.checkIn.Format("15:04:05"), got, tt.want)
			}
		})
	}
}

func TestDeriveStatusCrossTimezone(t *testing.T) {
	p := jakartaPolicy(t)
	// 00:05 UTC = 07:05 WIB → masih HADIR
	utc := time.Date(2026, 3, 2, 0, 5, 0, 0, time.UTC)
	if got := p.DeriveStatus(utc); got != model.AbsensiStatusHadir {
		t.Errorf("check-in 00:05 UTC harus HADIR di WIB, dapat %s", got)
	}
	// 00:20 UTC = 07:20 WIB → TERLAMBAT
	utc = time.Date(2026, 3, 2, 0, 20, 0, 0, time.UTC)
	if got := p.DeriveStatus(utc); got != model.AbsensiStatusTerlambat {
		t.Errorf("check-in 00:20 UTC harus TERLAMBAT di WIB, dapat %s", got)
	}
}

func TestBoundary(t *testing.T) {
	p := jakartaPolicy(t)
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, p.Location)
	want := time.Date(2026, 3, 2, 7, 15, 0, 0, p.Location)
	if got := p.Boundary(now); !got.Equal(want) {
		t.Errorf("Boundary = %s, want %s", got, want)
	}
}

func TestDateOf(t *testing.T) {
	p := jakartaPolicy(t)
	ts := time.Date(2026, 3, 2, 23, 59, 59, 0, p.Location)
	got := p.DateOf(ts)
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != 2 {
		t.Errorf("DateOf harus memotong ke tengah malam, dapat %s", got)
	}

	// 18:00 UTC 2 Maret = 01:00 WIB 3 Maret: tanggal dihitung di WIB
	utc := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	if got := p.DateOf(utc); got.Day() != 3 {
		t.Errorf("tanggal harus dihitung di timezone aplikasi, dapat hari %d", got.Day())
	}
}

func TestAppendNote(t *testing.T) {
	existing := "sakit kepala"
	empty := "   "

	tests := []struct {
		name     string
		existing *string
		extra    string
		want     *string
	}{
		{"tanpa catatan lama", nil, "pulang cepat", strPtr("pulang cepat")},
		{"catatan lama kosong", &empty, "pulang cepat", strPtr("pulang cepat")},
		{"append ke catatan lama", &existing, "pulang cepat", strPtr("sakit kepala; pulang cepat")},
		{"extra kosong tidak mengubah", &existing, "  ", &existing},
		{"dua-duanya kosong", nil, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendNote(tt.existing, tt.extra)
			switch {
			case got == nil && tt.want != nil, got != nil && tt.want == nil:
				t.Errorf("AppendNote = %v, want %v", got, tt.want)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("AppendNote = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
