// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for device drivers and the utilities that
// go with them.
//
// The mma845x package drives an MMA8451Q/MMA8452Q 3-axis accelerometer over
// I²C. gmeter and accelplot visualize its readings on a terminal or as an
// image.
package devices
