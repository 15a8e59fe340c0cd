package xca954x

import (
	"github.com/embedded-go/xca954x/pkg/i2c"
)

// BaseAddress is the fixed part of the device address. The A2..A0 strap
// pins OR into the low three bits.
const BaseAddress i2c.Addr = 0b111_0000

// AddrSpec selects the device address. The zero value is the default
// address (all strap pins low).
type AddrSpec struct {
	alternative bool
	a2, a1, a0  bool
}

// DefaultAddr returns the default address specification.
func DefaultAddr() AddrSpec {
	return AddrSpec{}
}

// AlternativeAddr returns an address specification for the given A2, A1 and
// A0 strap pin levels. Devices without all three pins treat the missing
// ones as false.
func AlternativeAddr(a2, a1, a0 bool) AddrSpec {
	return AddrSpec{alternative: true, a2: a2, a1: a1, a0: a0}
}

// addr resolves the specification against a base address.
func (s AddrSpec) addr(base i2c.Addr) i2c.Addr {
	if !s.alternative {
		return base
	}
	return base | i2c.Addr(b2i(s.a2)<<2|b2i(s.a1)<<1|b2i(s.a0))
}

func b2i(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
