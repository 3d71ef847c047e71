package camsensor

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// PeriphTransport talks to a sensor through a periph.io I2C bus
type PeriphTransport struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// OpenPeriph opens the named periph.io I2C bus, "" selecting the first one,
// for the sensor at addr
func OpenPeriph(bus string, addr uint16) (*PeriphTransport, error) {

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	b, err := i2creg.Open(bus)

	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", bus, err)
	}

	return &PeriphTransport{bus: b, dev: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

// WriteReg writes a width byte value to the register
func (t *PeriphTransport) WriteReg(addr uint16, width int, val uint32) error {

	if err := checkWidth(width); err != nil {
		return err
	}

	return t.dev.Tx(frame(addr, width, val), nil)
}

// ReadReg reads a width byte value from the register in a combined
// transaction, retrying before giving up
func (t *PeriphTransport) ReadReg(addr uint16, width int) (uint32, error) {

	if err := checkWidth(width); err != nil {
		return 0, err
	}

	buf := make([]byte, width)
	var err error

	for i := 0; i < readAttempts; i++ {
		if err = t.dev.Tx([]byte{byte(addr >> 8), byte(addr)}, buf); err == nil {
			return unframe(buf), nil
		}
	}

	return 0, fmt.Errorf("readReg 0x%04x: %w", addr, err)
}

// Close releases the bus
func (t *PeriphTransport) Close() error {
	return t.bus.Close()
}
