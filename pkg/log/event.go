package log

import (
	"time"
)

// Event represents a bus trace event captured by a driver.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// DriverID uniquely identifies the driver instance (UUID).
	DriverID string `cbor:"2,keyasint"`

	// Device is the device variant name (e.g. "TCA9548A").
	Device string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Channel is the index of the logical channel handle that produced the
	// event. Nil for operations on the top-level driver.
	Channel *uint8 `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Select      *SelectEvent      `cbor:"10,keyasint,omitempty"` // Control-register writes
	Transfer    *TransferEvent    `cbor:"11,keyasint,omitempty"` // Forwarded data operations
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Driver lifecycle
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"` // Failed operations
}

// Category classifies the event type.
type Category uint8

const (
	// CategorySelect indicates a control-register select write.
	CategorySelect Category = 0
	// CategoryTransfer indicates a forwarded data operation.
	CategoryTransfer Category = 1
	// CategoryState indicates a driver lifecycle change.
	CategoryState Category = 2
	// CategoryError indicates a failed bus operation.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySelect:
		return "SELECT"
	case CategoryTransfer:
		return "TRANSFER"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SelectEvent captures a control-register write changing the routed
// channels.
type SelectEvent struct {
	// Requested is the channel mask as passed by the caller.
	Requested uint8 `cbor:"1,keyasint"`

	// Effective is the mask actually written, truncated to the variant's
	// valid channel bits.
	Effective uint8 `cbor:"2,keyasint"`
}

// TransferEvent captures a forwarded data operation.
type TransferEvent struct {
	// Op is the bus operation performed.
	Op TransferOp `cbor:"1,keyasint"`

	// Addr is the 7-bit address of the downstream device.
	Addr uint8 `cbor:"2,keyasint"`

	// WriteLen is the number of bytes written (0 for pure reads).
	WriteLen int `cbor:"3,keyasint,omitempty"`

	// ReadLen is the number of bytes read (0 for pure writes).
	ReadLen int `cbor:"4,keyasint,omitempty"`

	// SubOps is the number of sub-operations of a composite transaction
	// (0 for the simple operations).
	SubOps int `cbor:"5,keyasint,omitempty"`
}

// TransferOp indicates the kind of forwarded bus operation.
type TransferOp uint8

const (
	// TransferWrite indicates a plain write.
	TransferWrite TransferOp = 0
	// TransferRead indicates a plain read.
	TransferRead TransferOp = 1
	// TransferWriteRead indicates a write followed by a read.
	TransferWriteRead TransferOp = 2
	// TransferTransact indicates a composite transaction.
	TransferTransact TransferOp = 3
)

// String returns the transfer operation name.
func (o TransferOp) String() string {
	switch o {
	case TransferWrite:
		return "WRITE"
	case TransferRead:
		return "READ"
	case TransferWriteRead:
		return "WRITE_READ"
	case TransferTransact:
		return "TRANSACT"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures driver lifecycle events.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`
}

// ErrorEventData captures a failed bus operation.
type ErrorEventData struct {
	// Context describes what operation was being performed.
	Context string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`
}
