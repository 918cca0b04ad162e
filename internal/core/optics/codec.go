package optics

import (
	"encoding/json"
	"fmt"

	"github.com/Echx/Planck/internal/core/geometry"
)

// deviceData is the persisted form of a Device. Edges are derived and rebuilt
// on decode rather than stored.
type deviceData struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Center      Coordinate `json:"center"`
	Direction   [2]float64 `json:"direction"`
	Params      Params     `json:"params"`
	ArcSegments int        `json:"arc_segments,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (d *Device) MarshalJSON() ([]byte, error) {
	return json.Marshal(deviceData{
		ID:          d.id,
		Kind:        d.kind,
		Center:      d.center,
		Direction:   [2]float64{d.direction.DX, d.direction.DY},
		Params:      d.params,
		ArcSegments: d.arcSegments,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Device) UnmarshalJSON(data []byte) error {
	var raw deviceData
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		return fmt.Errorf("%w: device without id", ErrInvalidGeometry)
	}
	decoded, err := New(raw.Kind, raw.Center, geometry.Vector{DX: raw.Direction[0], DY: raw.Direction[1]}, raw.Params,
		WithID(raw.ID), WithArcSegments(raw.ArcSegments))
	if err != nil {
		return fmt.Errorf("failed to decode device %s: %w", raw.ID, err)
	}
	*d = *decoded
	return nil
}
