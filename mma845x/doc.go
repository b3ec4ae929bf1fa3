// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma845x controls an NXP MMA8451Q or MMA8452Q 3-axis accelerometer
// over I²C.
//
// The device powers up in standby mode. Configuration (the measurement range)
// is only legal in standby; sampling requires a call to Active(). Readings are
// 16-bit two's-complement values scaled by the configured ±2g/±4g/±8g range.
//
// The driver is synchronous and issues no retries; transport errors from the
// bus are returned unchanged. It performs no locking of its own: the caller
// must serialize access to the bus.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/MMA8452Q.pdf
package mma845x
