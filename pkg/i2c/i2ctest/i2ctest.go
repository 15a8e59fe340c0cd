// Package i2ctest provides a scripted mock implementation of i2c.Bus.
//
// A Bus is created with the exact sequence of transactions the code under
// test is expected to perform. Each call is checked against the next entry
// in the script - address, operation kind and written bytes must match, and
// scripted read bytes are played back into the caller's buffers. Call Done
// at the end of the test to verify that the whole script was consumed.
package i2ctest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/embedded-go/xca954x/pkg/i2c"
)

// Kind identifies the bus operation a script entry expects.
type Kind uint8

const (
	// KindWrite expects a call to Write.
	KindWrite Kind = iota
	// KindRead expects a call to Read.
	KindRead
	// KindWriteRead expects a call to WriteRead.
	KindWriteRead
	// KindTransact expects a call to Transact.
	KindTransact
)

// String returns the operation kind name.
func (k Kind) String() string {
	switch k {
	case KindWrite:
		return "Write"
	case KindRead:
		return "Read"
	case KindWriteRead:
		return "WriteRead"
	case KindTransact:
		return "Transact"
	default:
		return "UNKNOWN"
	}
}

// Tx is one expected transaction and its scripted outcome.
type Tx struct {
	// Kind is the expected operation.
	Kind Kind

	// Addr is the expected device address.
	Addr i2c.Addr

	// W holds the bytes the caller must write (KindWrite, KindWriteRead).
	W []byte

	// R holds the bytes played back into the caller's read buffer
	// (KindRead, KindWriteRead). Its length must match the caller's buffer.
	R []byte

	// Txs holds the expected sub-operations of a composite transaction
	// (KindTransact). W slices are matched against the caller's, R slices
	// are played back.
	Txs []i2c.Tx

	// Err, if set, is returned to the caller after the expectation checks.
	Err error
}

// Write returns a script entry expecting Write(addr, w).
func Write(addr i2c.Addr, w []byte) Tx {
	return Tx{Kind: KindWrite, Addr: addr, W: w}
}

// Read returns a script entry expecting Read(addr, buf) with len(buf) equal
// to len(r), playing r back into buf.
func Read(addr i2c.Addr, r []byte) Tx {
	return Tx{Kind: KindRead, Addr: addr, R: r}
}

// WriteRead returns a script entry expecting WriteRead(addr, w, buf),
// playing r back into buf.
func WriteRead(addr i2c.Addr, w, r []byte) Tx {
	return Tx{Kind: KindWriteRead, Addr: addr, W: w, R: r}
}

// Transact returns a script entry expecting Transact(addr, txs).
func Transact(addr i2c.Addr, txs ...i2c.Tx) Tx {
	return Tx{Kind: KindTransact, Addr: addr, Txs: txs}
}

// Fail returns tx modified to fail with err after its expectation checks.
func Fail(tx Tx, err error) Tx {
	tx.Err = err
	return tx
}

// Bus is a scripted mock i2c.Bus. It is safe for concurrent use, though the
// script itself is strictly ordered.
type Bus struct {
	t *testing.T

	mu     sync.Mutex
	script []Tx
	next   int
}

// NewBus creates a mock bus that expects exactly the transactions in script,
// in order.
func NewBus(t *testing.T, script []Tx) *Bus {
	t.Helper()
	return &Bus{t: t, script: script}
}

// take pops the next script entry and checks kind and address.
func (b *Bus) take(kind Kind, addr i2c.Addr) Tx {
	b.t.Helper()
	require.Less(b.t, b.next, len(b.script),
		"unexpected %s to %#02x: script exhausted after %d transactions", kind, addr, len(b.script))
	tx := b.script[b.next]
	b.next++
	require.Equal(b.t, tx.Kind, kind, "transaction %d: operation mismatch", b.next-1)
	require.Equal(b.t, tx.Addr, addr, "transaction %d: address mismatch", b.next-1)
	return tx
}

// Write implements i2c.Bus.
func (b *Bus) Write(addr i2c.Addr, p []byte) error {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := b.take(KindWrite, addr)
	require.Equal(b.t, tx.W, p, "transaction %d: written bytes mismatch", b.next-1)
	return tx.Err
}

// Read implements i2c.Bus.
func (b *Bus) Read(addr i2c.Addr, p []byte) error {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := b.take(KindRead, addr)
	require.Len(b.t, p, len(tx.R), "transaction %d: read length mismatch", b.next-1)
	if tx.Err != nil {
		return tx.Err
	}
	copy(p, tx.R)
	return nil
}

// WriteRead implements i2c.Bus.
func (b *Bus) WriteRead(addr i2c.Addr, w, r []byte) error {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := b.take(KindWriteRead, addr)
	require.Equal(b.t, tx.W, w, "transaction %d: written bytes mismatch", b.next-1)
	require.Len(b.t, r, len(tx.R), "transaction %d: read length mismatch", b.next-1)
	if tx.Err != nil {
		return tx.Err
	}
	copy(r, tx.R)
	return nil
}

// Transact implements i2c.Bus.
func (b *Bus) Transact(addr i2c.Addr, txs []i2c.Tx) error {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := b.take(KindTransact, addr)
	require.Len(b.t, txs, len(tx.Txs), "transaction %d: sub-operation count mismatch", b.next-1)
	for i, sub := range txs {
		require.Equal(b.t, tx.Txs[i].W, sub.W,
			"transaction %d: sub-operation %d written bytes mismatch", b.next-1, i)
		require.Len(b.t, sub.R, len(tx.Txs[i].R),
			"transaction %d: sub-operation %d read length mismatch", b.next-1, i)
	}
	if tx.Err != nil {
		return tx.Err
	}
	for i, sub := range txs {
		copy(sub.R, tx.Txs[i].R)
	}
	return nil
}

// Done verifies that the whole script was consumed.
func (b *Bus) Done() {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.Equal(b.t, len(b.script), b.next,
		"script not fully consumed: %d of %d transactions performed", b.next, len(b.script))
}

// Compile-time interface satisfaction check.
var _ i2c.Bus = (*Bus)(nil)
