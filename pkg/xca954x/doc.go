// Package xca954x drives the XCA954xA family of I²C switches and
// multiplexers (TCA9548A/PCA9548A, TCA9546A, XCA9545A, XCA9543A).
//
// A switch sits between the host bus and up to eight downstream channel
// buses. Writing its single control register selects which channels are
// connected through; devices behind a selected channel are then addressed
// exactly as if they sat on the host bus.
//
// # Driver and channel handles
//
// The Driver owns the underlying i2c.Bus for its lifetime. It can be used
// directly - select channels, read status, forward raw bus operations - or
// split into per-channel handles:
//
//	drv := xca954x.NewTCA9548A(bus, xca954x.Config{})
//	channels := drv.Split()
//
//	// channels[3] behaves like a bus that only sees channel 3
//	err := channels[3].Write(0x20, []byte{0xAA})
//
// Each handle implements i2c.Bus. Before forwarding an operation, a handle
// routes the switch to its channel - but only when the previously selected
// mask differs, so consecutive operations on the same handle pay for a
// single select write.
//
// # Arbitration
//
// All operations, from the driver or from any handle, pass through a
// non-reentrant exclusive gate on the shared device record. Overlapping use
// (for example, a downstream driver's callback re-entering the same switch)
// fails fast with ErrDeviceBusy instead of deadlocking or corrupting the
// latched channel mask.
//
// Handles must not be used after Release; operations on a released driver
// fail with ErrReleased.
package xca954x
