package service

import (
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"

	"absensiku_backend/internals/features/attendance/correction/model"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
)

func TestValidDecision(t *testing.T) {
	tests := []struct {
		name     string
		decision model.KoreksiStatus
		want     bool
	}{
		{"approved", model.KoreksiStatusApproved, true},
		{"rejected", model.KoreksiStatusRejected, true},
		{"pending bukan keputusan", model.KoreksiStatusPending, false},
		{"nilai asing", model.KoreksiStatus("DITERIMA"), false},
		{"kosong", model.KoreksiStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDecision(tt.decision); got != tt.want {
				t.Errorf("ValidDecision(%q) = %v, want %v", tt.decision, got, tt.want)
			}
		})
	}
}

func TestCanResolve(t *testing.T) {
	tests := []struct {
		name    string
		current model.KoreksiStatus
		want    bool
	}{
		{"pending bisa diputuskan", model.KoreksiStatusPending, true},
		{"approved terminal", model.KoreksiStatusApproved, false},
		{"rejected terminal", model.KoreksiStatusRejected, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanResolve(tt.current); got != tt.want {
				t.Errorf("CanResolve(%q) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestCorrectionNote(t *testing.T) {
	got := CorrectionNote(nil, "lupa absen masuk")
	if got == nil || *got != "[KOREKSI] lupa absen masuk" {
		t.Fatalf("CorrectionNote tanpa catatan lama = %v", got)
	}

	existing := "izin dokter"
	got = CorrectionNote(&existing, "  jam keluar salah  ")
	want := "izin dokter; [KOREKSI] jam keluar salah"
	if got == nil || *got != want {
		t.Fatalf("CorrectionNote = %v, want %q", got, want)
	}
}

func testKoreksi() *model.KoreksiAbsensiModel {
	return &model.KoreksiAbsensiModel{
		KoreksiPersonType: presenceModel.PersonTypeSiswa,
		KoreksiTanggal:    datatypes.Date(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)),
		KoreksiStatusBaru: presenceModel.AbsensiStatusHadir,
		KoreksiAlasan:     "lupa tap kartu",
	}
}

func TestApplyToRecordForcesManualMethod(t *testing.T) {
	rec := &presenceModel.AbsensiModel{
		AbsensiJamMasuk: time.Date(2026, 3, 2, 7, 5, 0, 0, time.UTC),
		AbsensiStatus:   presenceModel.AbsensiStatusAlpha,
		AbsensiMetode:   presenceModel.AbsensiMetodeRFID,
	}
	resolvedAt := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	if err := ApplyToRecord(rec, testKoreksi(), resolvedAt); err != nil {
		t.Fatalf("ApplyToRecord: %v", err)
	}

	if rec.AbsensiMetode != presenceModel.AbsensiMetodeManual {
		t.Errorf("metode harus dipaksa MANUAL, dapat %s", rec.AbsensiMetode)
	}
	if rec.AbsensiStatus != presenceModel.AbsensiStatusHadir {
		t.Errorf("status harus mengikuti usulan, dapat %s", rec.AbsensiStatus)
	}
}

func TestApplyToRecordProposedTimes(t *testing.T) {
	masuk := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	keluar := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	k := testKoreksi()
	k.KoreksiJamMasukBaru = &masuk
	k.KoreksiJamKeluarBaru = &keluar

	rec := &presenceModel.AbsensiModel{
		AbsensiJamMasuk: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}
	if err := ApplyToRecord(rec, k, time.Now()); err != nil {
		t.Fatalf("ApplyToRecord: %v", err)
	}

	if !rec.AbsensiJamMasuk.Equal(masuk) {
		t.Errorf("jam masuk harus ditimpa usulan, dapat %s", rec.AbsensiJamMasuk)
	}
	if rec.AbsensiJamKeluar == nil || !rec.AbsensiJamKeluar.Equal(keluar) {
		t.Errorf("jam keluar harus ditimpa usulan, dapat %v", rec.AbsensiJamKeluar)
	}
}

func TestApplyToRecordKeepsTimesWithoutProposal(t *testing.T) {
	masukLama := time.Date(2026, 3, 2, 7, 3, 0, 0, time.UTC)
	keluarLama := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	rec := &presenceModel.AbsensiModel{
		AbsensiJamMasuk:  masukLama,
		AbsensiJamKeluar: &keluarLama,
	}
	if err := ApplyToRecord(rec, testKoreksi(), time.Now()); err != nil {
		t.Fatalf("ApplyToRecord: %v", err)
	}

	if !rec.AbsensiJamMasuk.Equal(masukLama) {
		t.Errorf("jam masuk tanpa usulan tidak boleh berubah, dapat %s", rec.AbsensiJamMasuk)
	}
	if rec.AbsensiJamKeluar == nil || !rec.AbsensiJamKeluar.Equal(keluarLama) {
		t.Errorf("jam keluar tanpa usulan tidak boleh berubah, dapat %v", rec.AbsensiJamKeluar)
	}
}

func TestApplyToRecordDefaultsMissingCheckIn(t *testing.T) {
	// Record baru hasil koreksi tanpa usulan jam masuk: default ke waktu resolve.
	resolvedAt := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	rec := &presenceModel.AbsensiModel{}

	if err := ApplyToRecord(rec, testKoreksi(), resolvedAt); err != nil {
		t.Fatalf("ApplyToRecord: %v", err)
	}

	if !rec.AbsensiJamMasuk.Equal(resolvedAt) {
		t.Errorf("jam masuk kosong harus default ke waktu resolve, dapat %s", rec.AbsensiJamMasuk)
	}
}

func TestTimesOrdered(t *testing.T) {
	masuk := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	sebelum := masuk.Add(-time.Hour)
	sesudah := masuk.Add(8 * time.Hour)

	tests := []struct {
		name   string
		keluar *time.Time
		want   bool
	}{
		{"tanpa jam keluar", nil, true},
		{"keluar setelah masuk", &sesudah, true},
		{"keluar sama dengan masuk", &masuk, true},
		{"keluar sebelum masuk", &sebelum, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimesOrdered(masuk, tt.keluar); got != tt.want {
				t.Errorf("TimesOrdered = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyToRecordRejectsCheckOutBeforeCheckIn(t *testing.T) {
	masuk := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	keluar := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	k := testKoreksi()
	k.KoreksiJamMasukBaru = &masuk
	k.KoreksiJamKeluarBaru = &keluar

	rec := &presenceModel.AbsensiModel{}
	if err := ApplyToRecord(rec, k, time.Now()); err == nil {
		t.Fatal("jam keluar sebelum jam masuk harus ditolak")
	}
}

func TestApplyToRecordRejectsCheckOutBeforeExistingCheckIn(t *testing.T) {
	// Hanya jam keluar yang diusulkan, mendahului jam masuk yang sudah
	// tercatat: merge tetap harus ditolak.
	keluar := time.Date(2026, 3, 2, 6, 30, 0, 0, time.UTC)
	k := testKoreksi()
	k.KoreksiJamKeluarBaru = &keluar

	rec := &presenceModel.AbsensiModel{
		AbsensiJamMasuk: time.Date(2026, 3, 2, 7, 5, 0, 0, time.UTC),
	}
	if err := ApplyToRecord(rec, k, time.Now()); err == nil {
		t.Fatal("jam keluar sebelum jam masuk tercatat harus ditolak")
	}
}

func TestApplyToRecordAllowsEqualTimes(t *testing.T) {
	sama := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	k := testKoreksi()
	k.KoreksiJamMasukBaru = &sama
	k.KoreksiJamKeluarBaru = &sama

	rec := &presenceModel.AbsensiModel{}
	if err := ApplyToRecord(rec, k, time.Now()); err != nil {
		t.Fatalf("jam keluar sama dengan jam masuk harus diperbolehkan: %v", err)
	}
}

func TestApplyToRecordAppendsCorrectionNote(t *testing.T) {
	catatan := "tap kartu gagal"
	rec := &presenceModel.AbsensiModel{
		AbsensiJamMasuk: time.Now(),
		AbsensiCatatan:  &catatan,
	}
	if err := ApplyToRecord(rec, testKoreksi(), time.Now()); err != nil {
		t.Fatalf("ApplyToRecord: %v", err)
	}

	if rec.AbsensiCatatan == nil {
		t.Fatal("catatan tidak boleh hilang")
	}
	if !strings.HasPrefix(*rec.AbsensiCatatan, "tap kartu gagal; [KOREKSI] ") {
		t.Errorf("catatan lama harus dipertahankan dan diberi penanda koreksi, dapat %q", *rec.AbsensiCatatan)
	}
}
