// Package lighting keeps the glows drawn over the scene: a steady light on
// every emitter and a short flash wherever a ray reaches a device.
package lighting

import (
	"image/color"
	"sort"
	"strings"

	"github.com/Echx/Planck/internal/render"
)

// LightSource represents a single glow in display space
type LightSource struct {
	X         float64     // Display X position (in pixels)
	Y         float64     // Display Y position (in pixels)
	Radius    float64     // Glow radius (in pixels)
	Intensity float64     // Glow intensity (0.0 to 1.0)
	Color     color.NRGBA // Glow color
	Decay     float64     // Intensity lost per second, 0 for steady lights
}

// Manager handles all glows in the scene
type Manager struct {
	ambientLight float64 // Background brightness (0.0 = black, 1.0 = white)
	lights       map[string]*LightSource
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		ambientLight: 0.08,
		lights:       make(map[string]*LightSource),
	}
}

// SetAmbientLight sets the background brightness
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = clamp01(level)
}

// GetAmbientLight returns the background brightness
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// AmbientColor is the background fill for the current ambient level
func (m *Manager) AmbientColor() color.NRGBA {
	v := uint8(m.ambientLight * 255)
	return color.NRGBA{v, v, v, 255}
}

// SetLight adds or replaces the glow under key
func (m *Manager) SetLight(key string, light LightSource) {
	light.Intensity = clamp01(light.Intensity)
	m.lights[key] = &light
}

// RemoveLight removes a glow (e.g. when its device is deleted)
func (m *Manager) RemoveLight(key string) {
	delete(m.lights, key)
}

// RemoveLightsWithPrefix removes every glow whose key starts with prefix
func (m *Manager) RemoveLightsWithPrefix(prefix string) {
	for key := range m.lights {
		if strings.HasPrefix(key, prefix) {
			delete(m.lights, key)
		}
	}
}

// Clear removes every glow
func (m *Manager) Clear() {
	m.lights = make(map[string]*LightSource)
}

// Update fades decaying glows by dt seconds and drops the ones that went dark
func (m *Manager) Update(dt float64) {
	for key, light := range m.lights {
		if light.Decay <= 0 {
			continue
		}
		light.Intensity -= light.Decay * dt
		if light.Intensity <= 0 {
			delete(m.lights, key)
		}
	}
}

// GetAllLights returns all glows ordered by key
func (m *Manager) GetAllLights() []LightSource {
	keys := make([]string, 0, len(m.lights))
	for key := range m.lights {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lights := make([]LightSource, 0, len(keys))
	for _, key := range keys {
		lights = append(lights, *m.lights[key])
	}
	return lights
}

// Draw paints every glow as concentric rings fading toward the edge
func (m *Manager) Draw(r render.Renderer, dst render.Image) {
	const rings = 4
	for _, light := range m.GetAllLights() {
		for i := rings; i >= 1; i-- {
			frac := float64(i) / rings
			c := light.Color
			c.A = uint8(float64(c.A) * light.Intensity * (1 - frac) * 0.8)
			r.FillCircle(dst, float32(light.X), float32(light.Y), float32(light.Radius*frac), c)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
