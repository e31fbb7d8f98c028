package helper

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeImageBase64(t *testing.T) {
	raw := []byte("payload gambar pura-pura")
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"base64 polos", encoded, raw, false},
		{"dengan spasi pinggir", "  " + encoded + "  ", raw, false},
		{"data URL", "data:image/png;base64," + encoded, raw, false},
		{"bukan base64", "ini bukan base64!!!", nil, true},
		{"kosong", "", []byte{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeImageBase64(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !bytes.Equal(got, tt.want) {
				t.Errorf("hasil decode tidak sama dengan payload asal")
			}
		})
	}
}
