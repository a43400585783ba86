package atlas

import (
	"encoding/json"
	"fmt"
	"io"
)

// Identifying constants written into every generated manifest.
const (
	AppName = "SpriteAtlasTool"
	Version = "1.0"
)

// Frame locates one named sprite within the atlas surface.
// The coordinates are pixel units in atlas space, origin at top-left.
type Frame struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

// Size holds the final atlas surface dimensions.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Meta identifies the generator and records the atlas dimensions.
type Meta struct {
	App     string `json:"app"`
	Version string `json:"version"`
	Size    Size   `json:"size"`
}

// Manifest is the persisted wire format describing an atlas layout.
// It must round-trip losslessly through JSON.
type Manifest struct {
	Frames []Frame `json:"frames"`
	Meta   Meta    `json:"meta"`
}

// ParseManifest decodes the manifest JSON data.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON metadata: %w", err)
	}
	return &m, nil
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode the manifest: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ValidateManifest performs the structural schema check over externally
// supplied manifest data before it can reach the unpacker. The raw JSON
// is probed field by field so that mistyped values are reported with the
// offending field name and, where available, the sprite name.
func ValidateManifest(data []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return &SchemaError{Field: "metadata", Reason: "metadata must be an object"}
	}

	rawFrames, ok := root["frames"]
	if !ok {
		return &SchemaError{Field: "frames", Reason: "frames must be an array"}
	}
	var frames []json.RawMessage
	if err := json.Unmarshal(rawFrames, &frames); err != nil {
		return &SchemaError{Field: "frames", Reason: "frames must be an array"}
	}

	rawMeta, ok := root["meta"]
	if !ok {
		return &SchemaError{Field: "meta", Reason: "meta must be an object"}
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(rawMeta, &meta); err != nil {
		return &SchemaError{Field: "meta", Reason: "meta must be an object"}
	}

	for _, raw := range frames {
		var frame map[string]json.RawMessage
		if err := json.Unmarshal(raw, &frame); err != nil {
			return &SchemaError{Field: "frames", Reason: "each frame must be an object"}
		}

		var name string
		if err := json.Unmarshal(frame["name"], &name); err != nil {
			return &SchemaError{Field: "name", Reason: "frame name must be a string"}
		}
		for _, field := range []string{"x", "y", "w", "h"} {
			var num float64
			if err := json.Unmarshal(frame[field], &num); err != nil {
				return &SchemaError{
					Field:  field,
					Sprite: name,
					Reason: fmt.Sprintf("frame %s must be a number", field),
				}
			}
		}
	}
	return nil
}
