package ddragon

import (
	"encoding/json"
	"fmt"
)

// parseChampionFile decodes a Data Dragon champion.json payload.
func parseChampionFile(data []byte) (*championFile, error) {
	var file championFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding champion.json: %w", err)
	}
	if file.Type != "" && file.Type != "champion" {
		return nil, fmt.Errorf("unexpected payload type %q, want \"champion\"", file.Type)
	}
	if len(file.Data) == 0 {
		return nil, fmt.Errorf("champion.json contains no champions")
	}
	return &file, nil
}
