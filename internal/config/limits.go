package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Limits are the host-tunable bounds of the building model. They cap values
// the widgets can produce; the model clamps against them on every write.
type Limits struct {
	FloorMax       int     `yaml:"floor_max"`
	LayerMax       int     `yaml:"layer_max"`
	FloorHeightMin float64 `yaml:"floor_height_min"`
	FloorHeightMax float64 `yaml:"floor_height_max"`
	PlanOffsetMax  float64 `yaml:"plan_offset_max"`
}

// DefaultLimits returns the limits used when no config file is present.
func DefaultLimits() Limits {
	return Limits{
		FloorMax:       30,
		LayerMax:       16,
		FloorHeightMin: 1.0,
		FloorHeightMax: 12.0,
		PlanOffsetMax:  8.0,
	}
}

// LoadLimits reads limits from a YAML file. A missing or unparseable file
// yields DefaultLimits with no error; a live editor should never refuse to
// start over a bad tuning file. Out-of-range entries are snapped back to the
// defaults.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultLimits(), nil
	}
	l := DefaultLimits()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return DefaultLimits(), nil
	}
	return l.sanitized(), nil
}

func (l Limits) sanitized() Limits {
	def := DefaultLimits()
	if l.FloorMax < 1 {
		l.FloorMax = def.FloorMax
	}
	if l.LayerMax < 2 {
		// Need room for at least one floor and one roof layer.
		l.LayerMax = def.LayerMax
	}
	if l.FloorHeightMin <= 0 {
		l.FloorHeightMin = def.FloorHeightMin
	}
	if l.FloorHeightMax < l.FloorHeightMin {
		l.FloorHeightMax = def.FloorHeightMax
	}
	if l.PlanOffsetMax <= 0 {
		l.PlanOffsetMax = def.PlanOffsetMax
	}
	return l
}
