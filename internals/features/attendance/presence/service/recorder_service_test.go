package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pq unique violation", &pq.Error{Code: "23505"}, true},
		{"pq error lain", &pq.Error{Code: "23503"}, false},
		{"pq dibungkus", fmt.Errorf("insert absensi: %w", &pq.Error{Code: "23505"}), true},
		{"pesan duplicate key (pgx)", errors.New(`ERROR: duplicate key value violates unique constraint "idx_absensi_person_tanggal" (SQLSTATE 23505)`), true},
		{"error biasa", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
