package service

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	d := Haversine(-6.2088, 106.8456, -6.2088, 106.8456)
	if d != 0 {
		t.Fatalf("jarak titik yang sama harus 0, dapat %f", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := Haversine(-6.2088, 106.8456, -6.1751, 106.8650)
	b := Haversine(-6.1751, 106.8650, -6.2088, 106.8456)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("Haversine harus simetris: %f vs %f", a, b)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// ~0.0005 derajat lintang ≈ 55.6 m di ekuator
	d := Haversine(0, 0, 0.0005, 0)
	if d < 54 || d > 57 {
		t.Fatalf("jarak 0.0005° lintang seharusnya ~55.6 m, dapat %f", d)
	}
	// Titik di luar radius sekolah 50 m
	if WithinRadius(d, 50) {
		t.Fatalf("%f m seharusnya di luar radius 50 m", d)
	}
}

func TestWithinRadiusBoundary(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		radius   float64
		want     bool
	}{
		{"jauh di dalam", 10, 50, true},
		{"tepat di batas", 50, 50, true},
		{"sedikit di luar", 50.01, 50, false},
		{"jauh di luar", 500, 50, false},
		{"jarak nol", 0, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinRadius(tt.distance, tt.radius); got != tt.want {
				t.Errorf("WithinRadius(%f, %f) = %v, want %v", tt.distance, tt.radius, got, tt.want)
			}
		})
	}
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"jakarta", -6.2088, 106.8456, true},
		{"batas lat atas", 90, 0, true},
		{"batas lon bawah", 0, -180, true},
		{"lat terlalu besar", 90.1, 0, false},
		{"lon terlalu kecil", 0, -180.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoordinate(tt.lat, tt.lon); got != tt.want {
				t.Errorf("ValidCoordinate(%f, %f) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestViolationErrorMessage(t *testing.T) {
	e := &ViolationError{DistanceM: 120.4, RadiusM: 50}
	msg := e.Error()
	if msg == "" {
		t.Fatal("pesan pelanggaran tidak boleh kosong")
	}
}
