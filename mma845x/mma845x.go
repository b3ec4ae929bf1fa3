// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma845x

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Range selects the full-scale measurement range. The value is the 2-bit
// field written to bits 0-1 of the XYZ_DATA_CFG register.
type Range byte

const (
	Range2G Range = 0x00 // ±2g
	Range4G Range = 0x01 // ±4g
	Range8G Range = 0x02 // ±8g
)

// G returns the nominal full-scale magnitude in g, e.g. 2 for Range2G.
func (r Range) G() int {
	return 2 << r
}

func (r Range) String() string {
	switch r {
	case Range2G, Range4G, Range8G:
		return fmt.Sprintf("±%dg", r.G())
	default:
		return fmt.Sprintf("Range(%d)", byte(r))
	}
}

// Mode is the device operating mode tracked in bit 0 of CTRL_REG1.
type Mode byte

const (
	// Standby permits configuration. The device takes no data.
	Standby Mode = 0
	// Active permits sampling. Configuration registers are locked.
	Active Mode = 1
)

func (m Mode) String() string {
	if m == Active {
		return "active"
	}
	return "standby"
}

// Axis identifies one of the three measurement axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

const (
	regStatus     byte = 0x00 // data-ready flags, reserved
	regOutXMSB    byte = 0x01
	regOutXLSB    byte = 0x02
	regOutYMSB    byte = 0x03
	regOutYLSB    byte = 0x04
	regOutZMSB    byte = 0x05
	regOutZLSB    byte = 0x06
	regWhoAmI     byte = 0x0D
	regXYZDataCfg byte = 0x0E
	regCtrl1      byte = 0x2A

	// WHO_AM_I values for the two supported variants.
	deviceIDMMA8451 byte = 0x1A
	deviceIDMMA8452 byte = 0x2A

	ctrl1ActiveBit  byte = 0x01
	dataCfgFSMask   byte = 0x03
	totalCodes           = 65536
)

// MSB register per axis; the LSB register follows immediately after.
var axisMSB = [3]byte{regOutXMSB, regOutYMSB, regOutZMSB}

// DefaultAddress is the I²C address of the common SparkFun/Adafruit breakout
// boards (SA0 high). With SA0 low the device answers at 0x1C.
const DefaultAddress uint16 = 0x1D

// Dev is a driver for an MMA8451Q/MMA8452Q accelerometer. The bus is borrowed
// from the caller and never closed by the driver.
type Dev struct {
	d        *i2c.Dev
	deviceID byte
	rng      Range
	mode     Mode
}

// NewI2C returns a driver for the accelerometer at addr on bus b, configured
// for the given range and left in standby mode.
//
// The WHO_AM_I register is read once; if it does not identify a supported
// variant an *UnsupportedDeviceError is returned and no handle is produced.
// An illegal rng fails with *InvalidRangeError before any bus traffic.
func NewI2C(b i2c.Bus, addr uint16, rng Range) (*Dev, error) {
	switch rng {
	case Range2G, Range4G, Range8G:
	default:
		return nil, &InvalidRangeError{Range: rng}
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}
	id, err := d.readReg(regWhoAmI)
	if err != nil {
		return nil, fmt.Errorf("mma845x: reading WHO_AM_I: %w", err)
	}
	if id != deviceIDMMA8451 && id != deviceIDMMA8452 {
		return nil, &UnsupportedDeviceError{ID: id}
	}
	d.deviceID = id
	// Drop into standby so the range can be applied. The device resets to
	// standby but may have been left active by a previous user of the bus.
	if err := d.Standby(); err != nil {
		return nil, err
	}
	if err := d.SetRange(rng); err != nil {
		return nil, err
	}
	return d, nil
}

// Standby puts the device in standby mode so its settings can be changed. No
// data is taken in standby. Idempotent.
func (d *Dev) Standby() error {
	ctrl, err := d.readReg(regCtrl1)
	if err != nil {
		return err
	}
	if err := d.writeReg(regCtrl1, ctrl&^ctrl1ActiveBit); err != nil {
		return err
	}
	d.mode = Standby
	return nil
}

// Active puts the device in active mode so that it takes data. Configuration
// registers cannot be changed while active. Idempotent.
func (d *Dev) Active() error {
	ctrl, err := d.readReg(regCtrl1)
	if err != nil {
		return err
	}
	if err := d.writeReg(regCtrl1, ctrl|ctrl1ActiveBit); err != nil {
		return err
	}
	d.mode = Active
	return nil
}

// Mode returns the current operating mode by reading CTRL_REG1.
func (d *Dev) Mode() (Mode, error) {
	ctrl, err := d.readReg(regCtrl1)
	if err != nil {
		return Standby, err
	}
	return Mode(ctrl & ctrl1ActiveBit), nil
}

// SetRange sets the full-scale measurement range. The device must be in
// standby mode; calling while active fails with *InvalidModeError and
// performs no write. Bits of XYZ_DATA_CFG outside the range field (such as
// the high-pass filter enable) are preserved.
func (d *Dev) SetRange(rng Range) error {
	switch rng {
	case Range2G, Range4G, Range8G:
	default:
		return &InvalidRangeError{Range: rng}
	}
	if d.mode == Active {
		return &InvalidModeError{}
	}
	cfg, err := d.readReg(regXYZDataCfg)
	if err != nil {
		return err
	}
	if err := d.writeReg(regXYZDataCfg, cfg&^dataCfgFSMask | byte(rng)); err != nil {
		return err
	}
	d.rng = rng
	return nil
}

// Range returns the configured full-scale range, the last value successfully
// written to the device.
func (d *Dev) Range() Range {
	return d.rng
}

// ReadRaw returns the acceleration on one axis in A/D conversion bits.
//
// Each call issues two fresh register reads (MSB then LSB); nothing is
// cached. The value is meaningful only in active mode; in standby the device
// holds stale data, which is returned as-is.
func (d *Dev) ReadRaw(a Axis) (int16, error) {
	msbReg := axisMSB[a]
	msb, err := d.readReg(msbReg)
	if err != nil {
		return 0, err
	}
	lsb, err := d.readReg(msbReg + 1)
	if err != nil {
		return 0, err
	}
	return combine(msb, lsb), nil
}

// ReadG returns the acceleration on one axis in g, scaled by the configured
// range.
func (d *Dev) ReadG(a Axis) (float64, error) {
	raw, err := d.ReadRaw(a)
	if err != nil {
		return 0, err
	}
	return float64(raw) * d.scale(), nil
}

// ReadRawAll returns the raw acceleration on all three axes.
func (d *Dev) ReadRawAll() (Acceleration, error) {
	var acc Acceleration
	var err error
	if acc.X, err = d.ReadRaw(AxisX); err != nil {
		return acc, err
	}
	if acc.Y, err = d.ReadRaw(AxisY); err != nil {
		return acc, err
	}
	acc.Z, err = d.ReadRaw(AxisZ)
	return acc, err
}

// ReadAllG returns the acceleration on all three axes in g. The three
// register-pair reads are independent bus transactions, so the axes are not
// sampled at exactly the same instant.
func (d *Dev) ReadAllG() (x, y, z float64, err error) {
	acc, err := d.ReadRawAll()
	if err != nil {
		return 0, 0, 0, err
	}
	s := d.scale()
	return float64(acc.X) * s, float64(acc.Y) * s, float64(acc.Z) * s, nil
}

// String returns a diagnostic summary of the device. The mode is derived by
// re-reading CTRL_REG1 so it reflects the hardware state even if it changed
// outside the driver's knowledge.
func (d *Dev) String() string {
	variant := "MMA8451"
	if d.deviceID == deviceIDMMA8452 {
		variant = "MMA8452"
	}
	mode := "unknown"
	if m, err := d.Mode(); err == nil {
		mode = m.String()
	}
	return fmt.Sprintf("%s: I²C address 0x%02X, Range=%dg, Mode=%s", variant, d.d.Addr, d.rng.G(), mode)
}

// Halt implements conn.Resource by placing the device in standby mode.
func (d *Dev) Halt() error {
	return d.Standby()
}

// scale is the conversion factor in g per LSB: the full-scale span (twice
// the nominal range) spread over the 65536 representable codes. ±2g gives
// 4/65536 ≈ 0.000061 g/LSB.
func (d *Dev) scale() float64 {
	return float64(2*d.rng.G()) / totalCodes
}

// combine joins the MSB/LSB register pair into a signed 16-bit sample. The
// int16 reinterpretation is the two's-complement correction: combined values
// of 32768 and above come out as combined-65536.
func combine(msb, lsb byte) int16 {
	return int16(uint16(msb)<<8 | uint16(lsb))
}

func (d *Dev) readReg(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (d *Dev) writeReg(reg, value byte) error {
	return d.d.Tx([]byte{reg, value}, nil)
}

// Acceleration holds a raw sample for the three axes in A/D bits.
type Acceleration struct {
	X int16
	Y int16
	Z int16
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", a.X, a.Y, a.Z)
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
