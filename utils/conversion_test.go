package utils

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeCameraImage(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"data uri", "data:image/jpeg;base64," + encoded, raw, false},
		{"bare base64", encoded, raw, false},
		{"data uri without comma", "data:image/jpeg;base64" + encoded, nil, true},
		{"invalid base64", "data:image/jpeg;base64,@@not-base64@@", nil, true},
		{"empty payload", "data:image/jpeg;base64,", nil, true},
		{"empty string", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCameraImage(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeCameraImage(%q) succeeded, expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeCameraImage returned error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decoded bytes = %v, want %v", got, tt.want)
			}
		})
	}
}
