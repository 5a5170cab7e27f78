package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cyber-escape/vmath"
)

//go:embed waves.yaml
var defaultWaves []byte

// Ring is one concentric group of orbs within a wave pattern
type Ring struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // rad/s, sign encodes direction
	Phase  float64 `yaml:"phase"` // starting angle of the first orb
}

// Pattern is the handcrafted hazard layout for one difficulty level
type Pattern struct {
	Level int    `yaml:"level"`
	Rings []Ring `yaml:"rings"`
}

// OrbSpec is the spawn parameters of a single orb
type OrbSpec struct {
	Radius     float64
	Speed      float64
	StartAngle float64
}

// OrbCount returns the total number of orbs across all rings
func (p Pattern) OrbCount() int {
	n := 0
	for _, r := range p.Rings {
		n += r.Count
	}
	return n
}

// Orbs expands the rings into per-orb spawn parameters, ring by ring
func (p Pattern) Orbs() []OrbSpec {
	specs := make([]OrbSpec, 0, p.OrbCount())
	for _, r := range p.Rings {
		for _, a := range vmath.EvenAngles(r.Count, r.Phase) {
			specs = append(specs, OrbSpec{Radius: r.Radius, Speed: r.Speed, StartAngle: a})
		}
	}
	return specs
}

// WaveTable provides lookup of hazard patterns by difficulty level
type WaveTable struct {
	patterns []Pattern
}

// DefaultWaves returns the built-in 11-pattern table
func DefaultWaves() *WaveTable {
	t, err := ParseWaves(defaultWaves)
	if err != nil {
		// Embedded data is validated by tests; reaching here is a build defect
		panic(fmt.Sprintf("embedded wave table: %v", err))
	}
	return t
}

// LoadWaves reads a wave table override from a YAML file
func LoadWaves(path string) (*WaveTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wave table: %w", err)
	}
	t, err := ParseWaves(raw)
	if err != nil {
		return nil, fmt.Errorf("wave table %s: %w", path, err)
	}
	return t, nil
}

// ParseWaves decodes and validates a YAML wave table
func ParseWaves(raw []byte) (*WaveTable, error) {
	var patterns []Pattern
	if err := yaml.Unmarshal(raw, &patterns); err != nil {
		return nil, fmt.Errorf("parse wave table: %w", err)
	}
	if err := ValidateWaves(patterns); err != nil {
		return nil, err
	}
	return &WaveTable{patterns: patterns}, nil
}

// ValidateWaves checks that levels are contiguous from 0 and every ring is spawnable
func ValidateWaves(patterns []Pattern) error {
	if len(patterns) == 0 {
		return fmt.Errorf("%w: no patterns", ErrInvalidWave)
	}
	for i, p := range patterns {
		if p.Level != i {
			return fmt.Errorf("%w: pattern %d has level %d", ErrInvalidWave, i, p.Level)
		}
		if len(p.Rings) == 0 {
			return fmt.Errorf("%w: level %d has no rings", ErrInvalidWave, p.Level)
		}
		for j, r := range p.Rings {
			if r.Count <= 0 {
				return fmt.Errorf("%w: level %d ring %d count %d", ErrInvalidWave, p.Level, j, r.Count)
			}
			if r.Radius <= 0 {
				return fmt.Errorf("%w: level %d ring %d radius %.1f", ErrInvalidWave, p.Level, j, r.Radius)
			}
		}
	}
	return nil
}

// Len returns the number of patterns
func (t *WaveTable) Len() int {
	return len(t.patterns)
}

// MaxLevel returns the highest handcrafted level
func (t *WaveTable) MaxLevel() int {
	return len(t.patterns) - 1
}

// Pattern returns the pattern for a level, clamping out-of-range levels into the table
func (t *WaveTable) Pattern(level int) Pattern {
	if level < 0 {
		level = 0
	}
	if level > t.MaxLevel() {
		level = t.MaxLevel()
	}
	return t.patterns[level]
}
