package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/uuid"

	faceModel "absensiku_backend/internals/features/attendance/face/model"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
)

// testPNG membuat PNG berisi noise deterministik supaya ukurannya lolos
// batas minimum payload.
func testPNG(t *testing.T, seed uint32) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	state := seed
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			state = state*1664525 + 1013904223
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(state >> 24),
				G: uint8(state >> 16),
				B: uint8(state >> 8),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if buf.Len() < MinImageBytes {
		t.Fatalf("payload uji terlalu kecil: %d byte", buf.Len())
	}
	return buf.Bytes()
}

func TestEncodeImageDeterministic(t *testing.T) {
	payload := testPNG(t, 42)

	a, err := EncodeImage(payload)
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	b, err := EncodeImage(payload)
	if err != nil {
		t.Fatalf("EncodeImage kedua: %v", err)
	}
	if a != b {
		t.Errorf("encoding harus deterministik: %s vs %s", a, b)
	}
	if len(a) != EncodingLength {
		t.Errorf("panjang encoding = %d, want %d", len(a), EncodingLength)
	}
}

func TestEncodeImageDifferentImages(t *testing.T) {
	a, err := EncodeImage(testPNG(t, 1))
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	b, err := EncodeImage(testPNG(t, 2))
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	if a == b {
		t.Error("gambar berbeda seharusnya menghasilkan encoding berbeda")
	}
}

func TestEncodeImageRejectsGarbage(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xAB}, 2048)
	if _, err := EncodeImage(garbage); err == nil {
		t.Error("payload bukan gambar harus ditolak")
	}
}

func TestValidatePayloadSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"terlalu kecil", MinImageBytes - 1, true},
		{"tepat minimum", MinImageBytes, false},
		{"normal", 100 * 1024, false},
		{"tepat maksimum", MaxImageBytes, false},
		{"terlalu besar", MaxImageBytes + 1, true},
		{"kosong", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayloadSize(tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePayloadSize(%d) err = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identik", "abcdef", "abcdef", 1.0},
		{"dua-duanya kosong", "", "", 1.0},
		{"beda total", "aaaa", "bbbb", 0.0},
		{"satu kosong", "abcd", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"abcdef", "abcdeg"},
		{"abcdef", "xbcdef"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %f di luar [0,1]", p[0], p[1], got)
		}
		if got == 1.0 {
			t.Errorf("string berbeda tidak boleh skor 1.0: %q vs %q", p[0], p[1])
		}
	}
}

func TestBestMatch(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	enc := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	rows := []faceModel.FaceEncodingModel{
		{FaceEncodingPersonID: id1, FaceEncodingPersonType: presenceModel.PersonTypeSiswa, FaceEncodingValue: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab"}, // 1 edit
		{FaceEncodingPersonID: id2, FaceEncodingPersonType: presenceModel.PersonTypeSiswa, FaceEncodingValue: enc},                                 // identik
	}

	m := BestMatch(enc, rows, 0.90)
	if m == nil {
		t.Fatal("harus ada match di atas threshold")
	}
	if m.PersonID != id2 {
		t.Errorf("harus memilih skor tertinggi, dapat person %s", m.PersonID)
	}
	if m.Score != 1.0 {
		t.Errorf("skor match identik = %f, want 1.0", m.Score)
	}

	if m := BestMatch("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", rows, 0.90); m != nil {
		t.Errorf("encoding asing tidak boleh match, dapat skor %f", m.Score)
	}

	if m := BestMatch(enc, nil, 0.90); m != nil {
		t.Error("tanpa kandidat harus nil")
	}
}

func TestBestMatchThresholdBoundary(t *testing.T) {
	id := uuid.New()
	// 64 karakter, 7 beda → similarity = 1 - 7/64 ≈ 0.8906 (< 0.90)
	base := make([]byte, 64)
	cand := make([]byte, 64)
	for i := range base {
		base[i] = 'a'
		cand[i] = 'a'
	}
	for i := 0; i < 7; i++ {
		cand[i] = 'b'
	}
	rows := []faceModel.FaceEncodingModel{
		{FaceEncodingPersonID: id, FaceEncodingPersonType: presenceModel.PersonTypeGuru, FaceEncodingValue: string(cand)},
	}

	if m := BestMatch(string(base), rows, 0.90); m != nil {
		t.Errorf("skor di bawah threshold tidak boleh match, dapat %f", m.Score)
	}
	// threshold longgar meloloskan kandidat yang sama
	if m := BestMatch(string(base), rows, 0.85); m == nil {
		t.Error("threshold 0.85 seharusnya meloloskan kandidat")
	}
}
