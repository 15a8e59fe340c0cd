package muxconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/embedded-go/xca954x/pkg/i2c"
	"github.com/embedded-go/xca954x/pkg/log"
	"github.com/embedded-go/xca954x/pkg/xca954x"
)

// RawMux is the YAML shape of a switch description.
type RawMux struct {
	Variant  string       `yaml:"variant"`
	Address  *RawAddress  `yaml:"address"`
	Channels []RawChannel `yaml:"channels"`
}

// RawAddress holds the A2..A0 strap pin levels. Omitting the address block
// selects the default address.
type RawAddress struct {
	A2 bool `yaml:"a2"`
	A1 bool `yaml:"a1"`
	A0 bool `yaml:"a0"`
}

// RawChannel names one downstream channel.
type RawChannel struct {
	Name    string `yaml:"name"`
	Channel int    `yaml:"channel"`
}

// Mux is a validated switch description.
type Mux struct {
	// Variant is the resolved device descriptor.
	Variant xca954x.Variant

	// Address is the resolved address specification.
	Address xca954x.AddrSpec

	// channel index by role name
	names map[string]int
}

// Parse parses and validates a switch description from YAML bytes.
func Parse(data []byte) (*Mux, error) {
	var raw RawMux
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing mux description: %w", err)
	}

	variant, ok := xca954x.LookupVariant(raw.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", raw.Variant)
	}

	address := xca954x.DefaultAddr()
	if raw.Address != nil {
		address = xca954x.AlternativeAddr(raw.Address.A2, raw.Address.A1, raw.Address.A0)
	}

	names := make(map[string]int, len(raw.Channels))
	for _, ch := range raw.Channels {
		if ch.Name == "" {
			return nil, fmt.Errorf("channel %d: missing name", ch.Channel)
		}
		if ch.Channel < 0 || ch.Channel >= variant.Channels() {
			return nil, fmt.Errorf("channel %q: index %d out of range for %s (%d channels)",
				ch.Name, ch.Channel, variant, variant.Channels())
		}
		if _, dup := names[ch.Name]; dup {
			return nil, fmt.Errorf("duplicate channel name %q", ch.Name)
		}
		names[ch.Name] = ch.Channel
	}

	return &Mux{Variant: variant, Address: address, names: names}, nil
}

// Load loads and parses a switch description from a file.
func Load(path string) (*Mux, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// ChannelNames returns the configured role names.
func (m *Mux) ChannelNames() []string {
	names := make([]string, 0, len(m.names))
	for name := range m.names {
		names = append(names, name)
	}
	return names
}

// Build constructs the driver on bus and returns it together with a handle
// for every named channel. logger may be nil to disable event capture.
func (m *Mux) Build(bus i2c.Bus, logger log.Logger) (*xca954x.Driver, map[string]*xca954x.Channel) {
	drv := xca954x.New(bus, m.Variant, xca954x.Config{
		Address: m.Address,
		Logger:  logger,
	})
	split := drv.Split()

	handles := make(map[string]*xca954x.Channel, len(m.names))
	for name, index := range m.names {
		handles[name] = split[index]
	}
	return drv, handles
}
