package xca954x

import (
	"github.com/google/uuid"

	"github.com/embedded-go/xca954x/pkg/i2c"
	"github.com/embedded-go/xca954x/pkg/log"
)

// Config configures a Driver. The zero value is usable: default address,
// no event capture.
type Config struct {
	// Address selects the device address (strap pins A2..A0).
	Address AddrSpec

	// Logger receives bus trace events; nil disables capture.
	Logger log.Logger
}

// Driver is the top-level driver for one switch. It owns the underlying
// bus until Release is called.
//
// The Driver itself implements i2c.Bus: pass-through operations address
// whatever channels are currently routed and perform no implicit select.
type Driver struct {
	variant Variant
	dev     *deviceState
}

// New creates a driver for the given variant on bus. The driver takes
// ownership of the bus; no bus traffic is generated until the first
// operation. The channel mask starts at zero, matching the device's
// power-on-reset state.
func New(bus i2c.Bus, variant Variant, cfg Config) *Driver {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	d := &Driver{
		variant: variant,
		dev: &deviceState{
			bus:    bus,
			addr:   cfg.Address.addr(BaseAddress),
			id:     uuid.New().String(),
			device: variant.name,
			logger: logger,
		},
	}
	d.dev.logState("", "OPEN")
	return d
}

// NewTCA9548A creates a driver for a TCA9548A (8 channels, no interrupts).
func NewTCA9548A(bus i2c.Bus, cfg Config) *Driver { return New(bus, TCA9548A, cfg) }

// NewPCA9548A creates a driver for a PCA9548A (8 channels, no interrupts).
func NewPCA9548A(bus i2c.Bus, cfg Config) *Driver { return New(bus, PCA9548A, cfg) }

// NewTCA9546A creates a driver for a TCA9546A (4 channels, no interrupts).
func NewTCA9546A(bus i2c.Bus, cfg Config) *Driver { return New(bus, TCA9546A, cfg) }

// NewXCA9545A creates a driver for a TCA9545A/PCA9545A (4 channels,
// interrupts).
func NewXCA9545A(bus i2c.Bus, cfg Config) *Driver { return New(bus, XCA9545A, cfg) }

// NewXCA9543A creates a driver for a TCA9543A/PCA9543A (2 channels,
// interrupts).
func NewXCA9543A(bus i2c.Bus, cfg Config) *Driver { return New(bus, XCA9543A, cfg) }

// Variant returns the variant descriptor this driver was built for.
func (d *Driver) Variant() Variant {
	return d.variant
}

// Address returns the resolved 7-bit device address.
func (d *Driver) Address() i2c.Addr {
	return d.dev.addr
}

// ID returns the driver's trace identifier.
func (d *Driver) ID() string {
	return d.dev.id
}

// Release tears down the driver and returns the underlying bus. The driver
// and any channel handles obtained from Split must not be used afterwards;
// their operations fail with ErrReleased. Releasing an idle driver
// generates no bus traffic.
func (d *Driver) Release() (i2c.Bus, error) {
	if !d.dev.mu.TryLock() {
		return nil, ErrDeviceBusy
	}
	defer d.dev.mu.Unlock()

	bus := d.dev.bus
	if bus == nil {
		return nil, ErrReleased
	}
	d.dev.bus = nil
	d.dev.logState("OPEN", "RELEASED")
	return bus, nil
}

// SelectChannels selects which channels are enabled.
//
// Each bit corresponds to a channel: bit 0 to channel 0 and so on. A 0
// disables the channel and a 1 enables it; several channels can be enabled
// at the same time. Bits beyond the variant's channel count are silently
// ignored, so callers may pass full byte masks without bounds-checking.
//
// Every call issues a control-register write, even if the mask is already
// selected.
func (d *Driver) SelectChannels(mask uint8) error {
	return d.dev.withExclusive(func() error {
		return d.dev.selectLocked(nil, mask, mask&d.variant.validMask)
	})
}

// ChannelStatus reads the control register and returns the channel-enable
// bits. A 0 means the channel is disabled and a 1 that it is enabled. On
// variants with interrupt lines the raw register mixes in interrupt flags;
// those bits are masked out here.
func (d *Driver) ChannelStatus() (uint8, error) {
	var status uint8
	err := d.dev.withExclusive(func() error {
		var buf [1]byte
		if err := d.dev.readLocked(nil, d.dev.addr, buf[:]); err != nil {
			return err
		}
		status = buf[0]
		if d.variant.interrupts {
			status &= d.variant.validMask
		}
		return nil
	})
	return status, err
}

// InterruptStatus reads the per-channel interrupt flags from the upper
// nibble of the control register. Bit 0 corresponds to channel 0 and so
// on. The value is returned as read; the physical lines are active-low, so
// polarity interpretation is left to the caller.
//
// Variants without interrupt lines fail with ErrNoInterrupts.
func (d *Driver) InterruptStatus() (uint8, error) {
	if !d.variant.interrupts {
		return 0, ErrNoInterrupts
	}
	var status uint8
	err := d.dev.withExclusive(func() error {
		var buf [1]byte
		if err := d.dev.readLocked(nil, d.dev.addr, buf[:]); err != nil {
			return err
		}
		status = (buf[0] >> 4) & d.variant.validMask
		return nil
	})
	return status, err
}

// Write forwards a write to whatever channels are currently routed.
func (d *Driver) Write(addr i2c.Addr, p []byte) error {
	return d.dev.withExclusive(func() error {
		return d.dev.writeLocked(nil, addr, p)
	})
}

// Read forwards a read to whatever channels are currently routed.
func (d *Driver) Read(addr i2c.Addr, p []byte) error {
	return d.dev.withExclusive(func() error {
		return d.dev.readLocked(nil, addr, p)
	})
}

// WriteRead forwards a write-then-read to whatever channels are currently
// routed.
func (d *Driver) WriteRead(addr i2c.Addr, w, r []byte) error {
	return d.dev.withExclusive(func() error {
		return d.dev.writeReadLocked(nil, addr, w, r)
	})
}

// Transact forwards a composite transaction to whatever channels are
// currently routed.
func (d *Driver) Transact(addr i2c.Addr, txs []i2c.Tx) error {
	return d.dev.withExclusive(func() error {
		return d.dev.transactLocked(nil, addr, txs)
	})
}

// Compile-time interface satisfaction check.
var _ i2c.Bus = (*Driver)(nil)
