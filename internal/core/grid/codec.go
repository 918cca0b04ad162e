package grid

import (
	"encoding/json"
	"fmt"

	"github.com/Echx/Planck/internal/core/optics"
)

type gridData struct {
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	UnitLength    float64          `json:"unit_length"`
	RotationSteps int              `json:"rotation_steps,omitempty"`
	Precision     float64          `json:"precision,omitempty"`
	Instruments   []*optics.Device `json:"instruments"`
}

// MarshalJSON implements json.Marshaler. Instruments are written in id order.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridData{
		Width:         g.width,
		Height:        g.height,
		UnitLength:    g.unitLength,
		RotationSteps: g.rotationSteps,
		Precision:     g.precision,
		Instruments:   g.Instruments(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridData
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Width <= 0 || raw.Height <= 0 || raw.UnitLength <= 0 {
		return fmt.Errorf("invalid grid dimensions %dx%d unit %v", raw.Width, raw.Height, raw.UnitLength)
	}

	decoded := New(raw.Width, raw.Height, raw.UnitLength)
	if raw.RotationSteps > 0 {
		decoded.rotationSteps = raw.RotationSteps
	}
	if raw.Precision > 0 {
		decoded.precision = raw.Precision
	}
	for _, d := range raw.Instruments {
		if d == nil {
			continue
		}
		if _, dup := decoded.instruments[d.ID()]; dup {
			return fmt.Errorf("duplicate instrument id %s", d.ID())
		}
		decoded.AddInstrument(d)
	}
	*g = *decoded
	return nil
}
