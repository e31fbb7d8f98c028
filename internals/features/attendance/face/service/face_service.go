package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/configs"
	faceModel "absensiku_backend/internals/features/attendance/face/model"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
)

const (
	// Payload di luar rentang ini ditolak sebagai input malformed.
	MinImageBytes = 1 * 1024
	MaxImageBytes = 5 * 1024 * 1024

	// Panjang encoding tetap: hex sha256.
	EncodingLength = 64

	normalizedSize = 32
)

type FaceService struct {
	DB        *gorm.DB
	Threshold float64
}

func NewFaceService(db *gorm.DB) *FaceService {
	return &FaceService{
		DB:        db,
		Threshold: configs.GetEnvFloat("FACE_MATCH_THRESHOLD", 0.90),
	}
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("format tidak didukung: %s", ct)
	}
}

// ValidatePayloadSize menolak payload terlalu kecil/besar.
func ValidatePayloadSize(n int) error {
	if n < MinImageBytes {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Ukuran gambar terlalu kecil (min %d KB)", MinImageBytes/1024))
	}
	if n > MaxImageBytes {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Ukuran gambar terlalu besar (maks %d MB)", MaxImageBytes/(1024*1024)))
	}
	return nil
}

// EncodeImage menurunkan encoding deterministik dari isi gambar:
// resize + grayscale sebagai normalisasi, lalu sha256 atas piksel.
// Gambar yang sama selalu menghasilkan encoding yang sama.
func EncodeImage(payload []byte) (string, error) {
	if err := ValidatePayloadSize(len(payload)); err != nil {
		return "", err
	}
	img, err := decodeImage(payload)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "Gambar tidak bisa dibaca: "+err.Error())
	}

	norm := imaging.Grayscale(imaging.Resize(img, normalizedSize, normalizedSize, imaging.Lanczos))
	sum := sha256.Sum256(norm.Pix)
	return hex.EncodeToString(sum[:]), nil
}

/* =======================================================================
   Similarity: normalized edit distance antar encoding (skor 0..1)
======================================================================= */

func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Similarity mengembalikan skor [0.0, 1.0]; 1.0 berarti identik.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

/* =======================================================================
   Enroll & Identify
======================================================================= */

// Enroll menyimpan encoding untuk person, menimpa encoding lama bila ada.
func (s *FaceService) Enroll(personID uuid.UUID, personType presenceModel.PersonType, payload []byte) (*faceModel.FaceEncodingModel, error) {
	enc, err := EncodeImage(payload)
	if err != nil {
		return nil, err
	}

	m := &faceModel.FaceEncodingModel{
		FaceEncodingPersonID:   personID,
		FaceEncodingPersonType: personType,
		FaceEncodingValue:      enc,
		FaceEncodingEnrolledAt: time.Now(),
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "face_encoding_person_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"face_encoding_person_type",
			"face_encoding_value",
			"face_encoding_enrolled_at",
		}),
	}).Create(m).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan encoding wajah")
	}
	return m, nil
}

type Match struct {
	PersonID   uuid.UUID
	PersonType presenceModel.PersonType
	Score      float64
}

var ErrNoMatch = errors.New("wajah tidak dikenali")

// Identify membandingkan encoding gambar dengan semua encoding terdaftar
// (linear scan) dan mengembalikan skor tertinggi yang mencapai threshold.
// Siswa dipindai lebih dulu, baru guru; kecocokan siswa menang lebih dulu.
func (s *FaceService) Identify(payload []byte) (*Match, error) {
	enc, err := EncodeImage(payload)
	if err != nil {
		return nil, err
	}

	for _, pt := range []presenceModel.PersonType{presenceModel.PersonTypeSiswa, presenceModel.PersonTypeGuru} {
		var rows []faceModel.FaceEncodingModel
		if err := s.DB.Where("face_encoding_person_type = ?", pt).Find(&rows).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca encoding wajah")
		}
		if m := BestMatch(enc, rows, s.Threshold); m != nil {
			return m, nil
		}
	}
	return nil, ErrNoMatch
}

// BestMatch memilih skor tertinggi yang >= threshold dari satu kelompok.
func BestMatch(enc string, rows []faceModel.FaceEncodingModel, threshold float64) *Match {
	var best *Match
	for i := range rows {
		score := Similarity(enc, rows[i].FaceEncodingValue)
		if score < threshold {
			continue
		}
		if best == nil || score > best.Score {
			best = &Match{
				PersonID:   rows[i].FaceEncodingPersonID,
				PersonType: rows[i].FaceEncodingPersonType,
				Score:      score,
			}
		}
	}
	return best
}
