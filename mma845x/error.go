// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma845x

import "fmt"

// UnsupportedDeviceError is returned by NewI2C when the WHO_AM_I register
// does not identify an MMA8451Q or MMA8452Q.
type UnsupportedDeviceError struct {
	ID byte
}

func (e *UnsupportedDeviceError) Error() string {
	return fmt.Sprintf("mma845x: unknown device ID 0x%02X", e.ID)
}

// InvalidRangeError is returned when a requested range is not one of
// Range2G, Range4G or Range8G. The device is left untouched.
type InvalidRangeError struct {
	Range Range
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("mma845x: invalid range %d, valid values are Range2G, Range4G and Range8G", byte(e.Range))
}

// InvalidModeError is returned when SetRange is called while the device is in
// active mode. The range can only be changed in standby mode.
type InvalidModeError struct{}

func (e *InvalidModeError) Error() string {
	return "mma845x: range can only be changed in standby mode"
}
