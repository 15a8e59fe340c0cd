package i2c

// Addr is a 7-bit I²C device address, right-aligned.
type Addr uint8

// Tx is one sub-operation of a composite transaction. W is written to the
// device first, then R is filled from it. Either may be nil for a pure
// read or a pure write; at least one must be set.
type Tx struct {
	// W holds the bytes to write.
	W []byte

	// R is the buffer to fill with bytes read from the device.
	R []byte
}

// Bus is a byte-oriented I²C transport. Implementations are expected to
// block until the exchange completes or fails; the driver adds no timeout
// or cancellation of its own.
//
// Errors returned by a Bus are transport-defined. The driver wraps them
// but never inspects or retries them.
type Bus interface {
	// Write sends p to the device at addr.
	Write(addr Addr, p []byte) error

	// Read fills p with bytes read from the device at addr.
	Read(addr Addr, p []byte) error

	// WriteRead sends w to the device at addr, then fills r from it,
	// without releasing the bus in between.
	WriteRead(addr Addr, w, r []byte) error

	// Transact executes txs against the device at addr as one logical
	// exchange, in order.
	Transact(addr Addr, txs []Tx) error
}
