package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeCameraImage turns a captured frame into raw JPEG bytes. The camera
// hands frames over as a data URI ("data:image/jpeg;base64,....") whose
// prefix must be stripped before transmission to the model; bare base64 is
// accepted as well.
func DecodeCameraImage(encoded string) ([]byte, error) {
	payload := encoded
	if strings.HasPrefix(encoded, "data:") {
		idx := strings.Index(encoded, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI: no comma separator")
		}
		payload = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image payload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}
