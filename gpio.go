package camsensor

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIOChip opens sensor control lines on a Linux GPIO character device
type GPIOChip struct {
	chip *gpiocdev.Chip
	// consumer prefixes the consumer label of requested lines
	consumer string
}

// OpenGPIOChip opens the GPIO chip at path, e.g. "gpiochip0"
func OpenGPIOChip(path, consumer string) (*GPIOChip, error) {

	chip, err := gpiocdev.NewChip(path)

	if err != nil {
		return nil, fmt.Errorf("failed to open GPIO chip %s: %w", path, err)
	}

	return &GPIOChip{chip: chip, consumer: consumer}, nil
}

// Line requests offset as an output driven to initial, inverted when
// activeLow is set
func (c *GPIOChip) Line(offset int, name string, initial int,
	activeLow bool) (*CdevLine, error) {

	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsOutput(initial),
		gpiocdev.WithConsumer(c.consumer + "-" + name),
	}

	if activeLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}

	l, err := c.chip.RequestLine(offset, opts...)

	if err != nil {
		return nil, fmt.Errorf("failed to request %s pin %d: %w", name, offset, err)
	}

	return &CdevLine{line: l, name: name}, nil
}

// Close releases the chip, lines already requested stay valid
func (c *GPIOChip) Close() error {
	return c.chip.Close()
}

// CdevLine is an output line requested through the GPIO character device
type CdevLine struct {
	line *gpiocdev.Line
	name string
}

// SetValue drives the line to v
func (l *CdevLine) SetValue(v int) error {

	if err := l.line.SetValue(v); err != nil {
		return fmt.Errorf("gpio %s: %w", l.name, err)
	}

	return nil
}

// Close releases the line
func (l *CdevLine) Close() error {
	return l.line.Close()
}

// PeriphLine is an output pin looked up by name in the periph.io registry
type PeriphLine struct {
	pin gpio.PinOut
}

// OpenPeriphLine returns the named pin, e.g. "GPIO17"
func OpenPeriphLine(name string) (*PeriphLine, error) {

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: host init failed: %w", err)
	}

	p := gpioreg.ByName(name)

	if p == nil {
		return nil, fmt.Errorf("gpio: failed to open %s", name)
	}

	return &PeriphLine{pin: p}, nil
}

// SetValue drives the pin high for any non zero v
func (l *PeriphLine) SetValue(v int) error {

	level := gpio.Low

	if v != 0 {
		level = gpio.High
	}

	return l.pin.Out(level)
}

// Close stops driving the pin
func (l *PeriphLine) Close() error {
	return l.pin.Halt()
}
