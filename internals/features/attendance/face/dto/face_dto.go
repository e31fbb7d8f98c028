package dto

import (
	"time"

	"github.com/google/uuid"

	faceModel "absensiku_backend/internals/features/attendance/face/model"
)

/* ===================== REQUESTS ===================== */

type EnrollFaceRequest struct {
	PersonID    uuid.UUID `json:"person_id" validate:"required"`
	PersonType  string    `json:"person_type" validate:"required,oneof=SISWA GURU"`
	ImageBase64 string    `json:"image_base64" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type EnrollFaceResponse struct {
	PersonID       uuid.UUID `json:"person_id"`
	PersonType     string    `json:"person_type"`
	Nama           string    `json:"nama"`
	EncodingLength int       `json:"encoding_length"`
	EnrolledAt     time.Time `json:"enrolled_at"`
}

func NewEnrollFaceResponse(m *faceModel.FaceEncodingModel, nama string) *EnrollFaceResponse {
	if m == nil {
		return nil
	}
	return &EnrollFaceResponse{
		PersonID:       m.FaceEncodingPersonID,
		PersonType:     string(m.FaceEncodingPersonType),
		Nama:           nama,
		EncodingLength: len(m.FaceEncodingValue),
		EnrolledAt:     m.FaceEncodingEnrolledAt,
	}
}
