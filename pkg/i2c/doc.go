// Package i2c defines the bus transport contract consumed by the switch
// driver.
//
// The driver does not talk to hardware itself; it is handed a Bus
// implementation (a Linux i2c-dev adapter, a USB bridge, an emulated bus)
// and forwards all byte-level traffic through it. Any error returned by a
// Bus is passed through to the caller wrapped but uninterpreted - retry
// policy belongs to the transport or to the application, never to the
// driver.
//
// # Transactions
//
// Besides the three common exchanges (Write, Read, WriteRead), a Bus may be
// asked to execute a composite transaction: an ordered sequence of Tx
// sub-operations performed as one logical exchange, with a repeated start
// between sub-operations on transports that support it.
package i2c
