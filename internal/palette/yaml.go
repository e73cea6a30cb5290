package palette

import "gopkg.in/yaml.v3"

type rgbaDoc struct {
	R float64  `yaml:"r"`
	G float64  `yaml:"g"`
	B float64  `yaml:"b"`
	A *float64 `yaml:"a"`
}

// UnmarshalYAML decodes a color, defaulting alpha to fully opaque when the
// document leaves it out.
func (c *RGBA) UnmarshalYAML(value *yaml.Node) error {
	var raw rgbaDoc
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.R, c.G, c.B = raw.R, raw.G, raw.B
	if raw.A != nil {
		c.A = *raw.A
	} else {
		c.A = 1
	}

	return nil
}
