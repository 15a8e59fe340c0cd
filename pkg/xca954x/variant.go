package xca954x

import "strings"

// Variant describes one member of the XCA954xA family: how many downstream
// channels it has, which control-register bits are valid channel-select
// bits, and whether the upper nibble carries per-channel interrupt flags.
//
// One driver implementation serves all variants; the descriptor is plain
// data.
type Variant struct {
	name       string
	channels   int
	validMask  uint8
	interrupts bool
}

// Supported device variants.
var (
	// TCA9548A is an 8-channel switch without interrupt lines.
	TCA9548A = Variant{name: "TCA9548A", channels: 8, validMask: 0xFF}

	// PCA9548A is an 8-channel switch without interrupt lines.
	PCA9548A = Variant{name: "PCA9548A", channels: 8, validMask: 0xFF}

	// TCA9546A is a 4-channel switch without interrupt lines.
	TCA9546A = Variant{name: "TCA9546A", channels: 4, validMask: 0x0F}

	// XCA9545A is a 4-channel switch with per-channel interrupt inputs
	// (TCA9545A/PCA9545A).
	XCA9545A = Variant{name: "XCA9545A", channels: 4, validMask: 0x0F, interrupts: true}

	// XCA9543A is a 2-channel switch with per-channel interrupt inputs
	// (TCA9543A/PCA9543A).
	XCA9543A = Variant{name: "XCA9543A", channels: 2, validMask: 0x03, interrupts: true}
)

// variants lists all supported descriptors for name lookup.
var variants = []Variant{TCA9548A, PCA9548A, TCA9546A, XCA9545A, XCA9543A}

// LookupVariant returns the variant descriptor for a device name.
// Matching is case-insensitive.
func LookupVariant(name string) (Variant, bool) {
	for _, v := range variants {
		if strings.EqualFold(v.name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

// Channels returns the number of downstream channels.
func (v Variant) Channels() int {
	return v.channels
}

// ValidMask returns the control-register bits that select channels.
// Select masks are truncated to these bits before being written.
func (v Variant) ValidMask() uint8 {
	return v.validMask
}

// HasInterrupts reports whether the variant exposes per-channel interrupt
// flags in the upper nibble of the control register.
func (v Variant) HasInterrupts() bool {
	return v.interrupts
}

// String returns the device name.
func (v Variant) String() string {
	return v.name
}
