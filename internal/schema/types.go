package schema

import (
	"encoding/json"
	"fmt"
)

// Block is one entry of a minecraft-data blocks.json file.
type Block struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	DisplayName string         `json:"displayName"`
	Hardness    *float64       `json:"hardness"`
	StackSize   int            `json:"stackSize"`
	Diggable    bool           `json:"diggable"`
	BoundingBox string         `json:"boundingBox"`
	Material    string         `json:"material"`
	Transparent bool           `json:"transparent"`
	EmitLight   int            `json:"emitLight"`
	FilterLight int            `json:"filterLight"`
	Resistance  float64        `json:"resistance"`
	Variations  []RawVariation `json:"variations"`

	// Present only in post-flattening schemes.
	States       []json.RawMessage `json:"states"`
	DefaultState *int              `json:"defaultState"`
}

type RawVariation struct {
	Metadata    int    `json:"metadata"`
	DisplayName string `json:"displayName"`
}

type VersionInfo struct {
	Version          int    `json:"version"`
	MinecraftVersion string `json:"minecraftVersion"`
	MajorVersion     string `json:"majorVersion"`
}

func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}
