// Package muxconfig loads declarative YAML descriptions of a bus switch.
//
// A description names the device variant, the address strap pins and the
// downstream channels worth exposing:
//
//	variant: tca9548a
//	address:
//	  a2: false
//	  a1: true
//	  a0: true
//	channels:
//	  - name: imu
//	    channel: 0
//	  - name: env-sensor
//	    channel: 3
//
// The parsed Mux resolves the variant and address and, given a bus, builds
// the driver together with a name-to-handle map for the listed channels.
// Applications that wire devices from configuration can then look handles
// up by role name instead of hard-coding channel numbers.
package muxconfig
