package xca954x

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/embedded-go/xca954x/pkg/i2c"
	"github.com/embedded-go/xca954x/pkg/log"
)

// Driver errors. Bus transport failures are returned wrapped and are
// distinguishable from these with errors.Is.
var (
	// ErrDeviceBusy indicates that exclusive access to the device could not
	// be acquired. This signals overlapping or reentrant use of the same
	// switch - a logic error in the caller, not a hardware fault. The call
	// is safe to retry once the conflicting operation has returned.
	ErrDeviceBusy = errors.New("xca954x: device already acquired")

	// ErrReleased indicates the driver has been released and no longer owns
	// a bus.
	ErrReleased = errors.New("xca954x: driver released")

	// ErrNoInterrupts indicates the variant has no interrupt lines.
	ErrNoInterrupts = errors.New("xca954x: variant has no interrupt lines")
)

// deviceState is the single shared record behind a driver and all channel
// handles split from it: the owned bus, the resolved device address and the
// channel mask most recently written to the control register.
//
// selected mirrors physical device state. The driver is assumed to be the
// only writer of the control register; it starts at zero to match the
// power-on-reset state of "no channels selected".
type deviceState struct {
	mu sync.Mutex

	bus      i2c.Bus // nil once released
	addr     i2c.Addr
	selected uint8

	// Trace identity, immutable after construction.
	id     string
	device string
	logger log.Logger
}

// withExclusive runs fn while holding exclusive, non-reentrant access to
// the device record. The gate is released on every exit path, including a
// panicking fn. Acquisition never blocks: if the record is already held,
// the call fails immediately with ErrDeviceBusy.
func (d *deviceState) withExclusive(fn func() error) error {
	if !d.mu.TryLock() {
		return ErrDeviceBusy
	}
	defer d.mu.Unlock()

	if d.bus == nil {
		return ErrReleased
	}
	return fn()
}

// selectLocked writes the control register and records the new mask.
// effective must already be truncated to the variant's valid bits. On a bus
// failure the recorded mask is left untouched: the write is not assumed to
// have taken effect, so a retry reissues it.
//
// Callers must hold the gate.
func (d *deviceState) selectLocked(ch *uint8, requested, effective uint8) error {
	if err := d.bus.Write(d.addr, []byte{effective}); err != nil {
		d.logError(ch, "select", err)
		return fmt.Errorf("selecting channels: %w", err)
	}
	d.selected = effective
	d.log(log.Event{
		Category: log.CategorySelect,
		Channel:  ch,
		Select:   &log.SelectEvent{Requested: requested, Effective: effective},
	})
	return nil
}

// routeLocked makes sure the switch is routed to exactly mask, reselecting
// only when the latched mask differs. Callers must hold the gate.
func (d *deviceState) routeLocked(ch *uint8, mask uint8) error {
	if d.selected == mask {
		return nil
	}
	return d.selectLocked(ch, mask, mask)
}

// writeLocked forwards a write to the bus. ch is the logical channel index
// for the trace, or nil for top-level driver operations. Callers must hold
// the gate.
func (d *deviceState) writeLocked(ch *uint8, addr i2c.Addr, p []byte) error {
	if err := d.bus.Write(addr, p); err != nil {
		d.logError(ch, "write", err)
		return fmt.Errorf("writing to %#02x: %w", uint8(addr), err)
	}
	d.logTransfer(ch, log.TransferEvent{Op: log.TransferWrite, Addr: uint8(addr), WriteLen: len(p)})
	return nil
}

// readLocked forwards a read to the bus. Callers must hold the gate.
func (d *deviceState) readLocked(ch *uint8, addr i2c.Addr, p []byte) error {
	if err := d.bus.Read(addr, p); err != nil {
		d.logError(ch, "read", err)
		return fmt.Errorf("reading from %#02x: %w", uint8(addr), err)
	}
	d.logTransfer(ch, log.TransferEvent{Op: log.TransferRead, Addr: uint8(addr), ReadLen: len(p)})
	return nil
}

// writeReadLocked forwards a write-then-read to the bus. Callers must hold
// the gate.
func (d *deviceState) writeReadLocked(ch *uint8, addr i2c.Addr, w, r []byte) error {
	if err := d.bus.WriteRead(addr, w, r); err != nil {
		d.logError(ch, "write-read", err)
		return fmt.Errorf("write-read at %#02x: %w", uint8(addr), err)
	}
	d.logTransfer(ch, log.TransferEvent{
		Op:       log.TransferWriteRead,
		Addr:     uint8(addr),
		WriteLen: len(w),
		ReadLen:  len(r),
	})
	return nil
}

// transactLocked forwards a composite transaction to the bus. Callers must
// hold the gate.
func (d *deviceState) transactLocked(ch *uint8, addr i2c.Addr, txs []i2c.Tx) error {
	if err := d.bus.Transact(addr, txs); err != nil {
		d.logError(ch, "transact", err)
		return fmt.Errorf("transaction at %#02x: %w", uint8(addr), err)
	}
	var wn, rn int
	for _, tx := range txs {
		wn += len(tx.W)
		rn += len(tx.R)
	}
	d.logTransfer(ch, log.TransferEvent{
		Op:       log.TransferTransact,
		Addr:     uint8(addr),
		WriteLen: wn,
		ReadLen:  rn,
		SubOps:   len(txs),
	})
	return nil
}

// log stamps identity and timestamp onto ev and hands it to the logger.
func (d *deviceState) log(ev log.Event) {
	ev.Timestamp = time.Now()
	ev.DriverID = d.id
	ev.Device = d.device
	d.logger.Log(ev)
}

func (d *deviceState) logTransfer(ch *uint8, transfer log.TransferEvent) {
	d.log(log.Event{
		Category: log.CategoryTransfer,
		Channel:  ch,
		Transfer: &transfer,
	})
}

func (d *deviceState) logError(ch *uint8, context string, err error) {
	d.log(log.Event{
		Category: log.CategoryError,
		Channel:  ch,
		Error:    &log.ErrorEventData{Context: context, Message: err.Error()},
	})
}

func (d *deviceState) logState(oldState, newState string) {
	d.log(log.Event{
		Category:    log.CategoryState,
		StateChange: &log.StateChangeEvent{OldState: oldState, NewState: newState},
	})
}
