package xca954x

import (
	"github.com/embedded-go/xca954x/pkg/i2c"
)

// Channel is a logical bus handle bound to a single downstream channel of
// the switch. It implements i2c.Bus and can be handed to an unmodified
// device driver.
//
// Every operation first acquires exclusive access to the shared device
// record, routes the switch to this handle's channel if a different mask is
// latched, and only then forwards the caller's operation. Consecutive
// operations on the same handle therefore issue no redundant select writes;
// switching between handles issues exactly one.
//
// Channel handles share the device with the driver they were split from and
// must not be used after the driver is released.
type Channel struct {
	dev   *deviceState
	index uint8
	mask  uint8
}

// Split produces one Channel handle per downstream channel, in channel
// order. It never touches the bus and cannot fail. Handles may be used and
// discarded independently; all of them reference the driver's shared
// device record.
//
// Compatibility between channels is unknown to the driver, so a handle
// always routes the switch to only its own channel.
func (d *Driver) Split() []*Channel {
	channels := make([]*Channel, d.variant.channels)
	for i := range channels {
		channels[i] = &Channel{
			dev:   d.dev,
			index: uint8(i),
			mask:  1 << uint(i),
		}
	}
	return channels
}

// Index returns the handle's channel number.
func (c *Channel) Index() uint8 {
	return c.index
}

// Mask returns the handle's one-hot channel mask.
func (c *Channel) Mask() uint8 {
	return c.mask
}

// Write routes the switch to this channel and writes p to the device at
// addr behind it.
func (c *Channel) Write(addr i2c.Addr, p []byte) error {
	return c.dev.withExclusive(func() error {
		if err := c.dev.routeLocked(&c.index, c.mask); err != nil {
			return err
		}
		return c.dev.writeLocked(&c.index, addr, p)
	})
}

// Read routes the switch to this channel and fills p from the device at
// addr behind it.
func (c *Channel) Read(addr i2c.Addr, p []byte) error {
	return c.dev.withExclusive(func() error {
		if err := c.dev.routeLocked(&c.index, c.mask); err != nil {
			return err
		}
		return c.dev.readLocked(&c.index, addr, p)
	})
}

// WriteRead routes the switch to this channel and performs a
// write-then-read against the device at addr behind it.
func (c *Channel) WriteRead(addr i2c.Addr, w, r []byte) error {
	return c.dev.withExclusive(func() error {
		if err := c.dev.routeLocked(&c.index, c.mask); err != nil {
			return err
		}
		return c.dev.writeReadLocked(&c.index, addr, w, r)
	})
}

// Transact routes the switch to this channel and executes the composite
// transaction against the device at addr behind it. The channel is selected
// once for the whole transaction, not per sub-operation.
func (c *Channel) Transact(addr i2c.Addr, txs []i2c.Tx) error {
	return c.dev.withExclusive(func() error {
		if err := c.dev.routeLocked(&c.index, c.mask); err != nil {
			return err
		}
		return c.dev.transactLocked(&c.index, addr, txs)
	})
}

// Compile-time interface satisfaction check.
var _ i2c.Bus = (*Channel)(nil)
