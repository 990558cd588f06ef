package shake

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// A named shake configuration, the data-driven counterpart of
// setting [Shake] fields by hand. Presets typically live in a
// YAML asset next to the rest of a game's tuning data:
//
//	explosion:
//	  amplitude: 5
//	  frequency: 0.1
//	  fade_in_time: 0
//	  fade_out_time: 1.5
//	  rotation_influence: [0.2, 0.2, 1]
//	rumble:
//	  amplitude: 0.4
//	  frequency: 0.4
//	  sustain: true
//
// Scalar fields left at zero fall back to the defaults of [New]()
// where zero would be degenerate (amplitude and the time-constant
// divisors); Sustain and SustainTime keep their zero values, which
// are meaningful. Influence fields are pointers so that an absent
// key defaults to unit influence while an explicit [0, 0, 0]
// silences that output.
type Preset struct {
	Amplitude         float64     `yaml:"amplitude"`
	Frequency         float64     `yaml:"frequency"`
	FadeInTime        float64     `yaml:"fade_in_time"`
	FadeOutTime       float64     `yaml:"fade_out_time"`
	Sustain           bool        `yaml:"sustain"`
	SustainTime       float64     `yaml:"sustain_time"`
	PositionInfluence *[3]float64 `yaml:"position_influence,flow"`
	RotationInfluence *[3]float64 `yaml:"rotation_influence,flow"`
}

// Parses a YAML document mapping preset names to configurations.
func LoadPresets(data []byte) (map[string]Preset, error) {
	presets := make(map[string]Preset)
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("shake: unmarshal presets: %w", err)
	}
	return presets, nil
}

// Builds a fresh, unstarted shake from the preset, applying the
// zero-value fallbacks described on [Preset].
func (self Preset) NewShake() *Shake {
	shk := New()
	if self.Amplitude != 0 {
		shk.Amplitude = self.Amplitude
	}
	if self.Frequency != 0 {
		shk.Frequency = self.Frequency
	}
	if self.FadeInTime != 0 {
		shk.FadeInTime = self.FadeInTime
	}
	if self.FadeOutTime != 0 {
		shk.FadeOutTime = self.FadeOutTime
	}
	shk.Sustain = self.Sustain
	shk.SustainTime = self.SustainTime
	if self.PositionInfluence != nil {
		v := *self.PositionInfluence
		shk.PositionInfluence = V3(v[0], v[1], v[2])
	}
	if self.RotationInfluence != nil {
		v := *self.RotationInfluence
		shk.RotationInfluence = V3(v[0], v[1], v[2])
	}
	return shk
}

// Returns a fresh map of built-in presets, so games can trigger
// decent-looking shakes without authoring any YAML:
//   - "explosion": short punchy burst, no fade-in.
//   - "earthquake": slow sustained rumble, stop via
//     [Shake.StopSustain]().
//   - "handheld": subtle endless drift for fake camera handling.
//
// The map is yours to mutate; each call builds a new one.
func Presets() map[string]Preset {
	return map[string]Preset{
		"explosion": {
			Amplitude:         5,
			Frequency:         0.1,
			FadeInTime:        0.05,
			FadeOutTime:       1.5,
			RotationInfluence: &[3]float64{0.2, 0.2, 1},
		},
		"earthquake": {
			Amplitude:   0.6,
			Frequency:   0.35,
			FadeInTime:  2,
			FadeOutTime: 8,
			Sustain:     true,
		},
		"handheld": {
			Amplitude:         0.1,
			Frequency:         2,
			FadeInTime:        1,
			FadeOutTime:       1,
			Sustain:           true,
			PositionInfluence: &[3]float64{0.2, 0.2, 0},
		},
	}
}
