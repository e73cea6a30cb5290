package biome

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/terradye/terradye/internal/palette"
)

// UnknownBiomeError reports a lookup for a biome the bank never heard of.
type UnknownBiomeError struct {
	Name string
}

func (e *UnknownBiomeError) Error() string {
	return fmt.Sprintf("unknown biome %q", e.Name)
}

// Bank is a named collection of biome profiles.
type Bank map[string]Profile

// Lookup returns the profile registered under name.
func (b Bank) Lookup(name string) (Profile, error) {
	profile, ok := b[name]
	if !ok {
		return Profile{}, &UnknownBiomeError{Name: name}
	}
	return profile, nil
}

// Names lists the registered biomes in lexical order.
func (b Bank) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type profileDoc struct {
	Name       string         `yaml:"name"`
	SlopeLow   float64        `yaml:"slope_low"`
	SlopeHigh  float64        `yaml:"slope_high"`
	Desaturate *float64       `yaml:"desaturate"`
	Brighten   *float64       `yaml:"brighten"`
	Ramp       []palette.Stop `yaml:"ramp"`
}

type bankDoc struct {
	Biomes []profileDoc `yaml:"biomes"`
}

// ParseBank reads a YAML biome bank and validates every profile in it.
// Toning coefficients are optional and fall back to the defaults.
func ParseBank(reader io.Reader) (Bank, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var doc bankDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	if len(doc.Biomes) == 0 {
		return nil, fmt.Errorf("biome bank lists no biomes")
	}

	bank := make(Bank, len(doc.Biomes))
	for _, entry := range doc.Biomes {
		if entry.Name == "" {
			return nil, fmt.Errorf("biome bank entry without a name")
		}
		if _, dup := bank[entry.Name]; dup {
			return nil, fmt.Errorf("biome %q is declared twice", entry.Name)
		}

		ramp, err := palette.NewRamp(entry.Ramp...)
		if err != nil {
			return nil, fmt.Errorf("biome %q: %w", entry.Name, err)
		}

		profile := Profile{
			Name:      entry.Name,
			Ramp:      ramp,
			SlopeLow:  entry.SlopeLow,
			SlopeHigh: entry.SlopeHigh,
			Tone:      DefaultTone(),
		}
		if entry.Desaturate != nil {
			profile.Tone.Desaturate = *entry.Desaturate
		}
		if entry.Brighten != nil {
			profile.Tone.Brighten = *entry.Brighten
		}

		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("biome %q: %w", entry.Name, err)
		}

		bank[entry.Name] = profile
	}

	return bank, nil
}

// LoadBank is ParseBank for a file on disk.
func LoadBank(path string) (Bank, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bank, err := ParseBank(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}
