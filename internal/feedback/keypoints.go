package feedback

import (
	"encoding/json"
	"fmt"
)

// encodeKeyPoints serializes an ordered key-point list into the single text
// blob stored in the key_points column. A JSON array is used so any sequence
// round-trips exactly, separators in the points included.
func encodeKeyPoints(points []string) (string, error) {
	if points == nil {
		points = []string{}
	}
	data, err := json.Marshal(points)
	if err != nil {
		return "", fmt.Errorf("encode key points: %w", err)
	}
	return string(data), nil
}

// decodeKeyPoints is the inverse of encodeKeyPoints.
func decodeKeyPoints(blob string) ([]string, error) {
	if blob == "" {
		return nil, nil
	}
	var points []string
	if err := json.Unmarshal([]byte(blob), &points); err != nil {
		return nil, fmt.Errorf("decode key points: %w", err)
	}
	return points, nil
}
