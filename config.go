package camsensor

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Bus and GPIO driver names accepted in a Config
const (
	DriverI2C      = "go-i2c"
	DriverPeriph   = "periph"
	DriverGPIOCdev = "gpiocdev"
)

// Config describes how a sensor is wired to the host
type Config struct {
	Sensor  string `yaml:"sensor"`
	Variant string `yaml:"variant"`

	Bus  BusConfig  `yaml:"bus"`
	GPIO GPIOConfig `yaml:"gpio"`

	// Regulators are GPIO switched supplies in the order they are enabled
	Regulators []SupplyConfig `yaml:"regulators"`
	Clock      *ClockConfig   `yaml:"clock"`
	Pinctrl    *PinctrlConfig `yaml:"pinctrl"`

	Module ModuleConfig `yaml:"module"`
	OTP    *OTP         `yaml:"otp"`
	AWB    *AWBConfig   `yaml:"awb"`
	LSC    *LSCConfig   `yaml:"lsc"`

	FastBoot  bool   `yaml:"fast_boot"`
	GroupHold bool   `yaml:"group_hold"`
	Errors    string `yaml:"errors"`
	// SPDChannel is the pad carrying PDAF data, -1 when unused
	SPDChannel int `yaml:"spd_channel"`

	Log map[string]string `yaml:"log"`
}

// BusConfig selects the register bus
type BusConfig struct {
	Driver  string `yaml:"driver"`
	Device  string `yaml:"device"`
	Address uint16 `yaml:"address"`
}

// GPIOConfig names the control lines.  With the gpiocdev driver a pin is a
// line offset on Chip, with periph it is a pin name such as GPIO17.  An empty
// pin leaves the line unconnected.
type GPIOConfig struct {
	Driver    string `yaml:"driver"`
	Chip      string `yaml:"chip"`
	Reset     string `yaml:"reset"`
	Pwdn      string `yaml:"pwdn"`
	Pwren     string `yaml:"pwren"`
	ActiveLow bool   `yaml:"active_low"`
}

// SupplyConfig is a regulator enabled by a GPIO line
type SupplyConfig struct {
	Name string `yaml:"name"`
	Pin  string `yaml:"pin"`
}

// ClockConfig is an oscillator gated by a GPIO line
type ClockConfig struct {
	Pin  string `yaml:"pin"`
	Rate uint32 `yaml:"rate"`
}

// PinctrlConfig drives a GPIO line to select the pin state
type PinctrlConfig struct {
	Pin     string `yaml:"pin"`
	Default int    `yaml:"default"`
	Sleep   int    `yaml:"sleep"`
}

// ModuleConfig is the camera module identity
type ModuleConfig struct {
	Index  uint32 `yaml:"index"`
	Facing string `yaml:"facing"`
	Name   string `yaml:"name"`
	Lens   string `yaml:"lens"`
}

// LoadConfig reads and validates a YAML configuration file
func LoadConfig(path string) (*Config, error) {

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML configuration
func ParseConfig(data []byte) (*Config, error) {

	cfg := &Config{SPDChannel: -1}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults fills the unset fields
func (c *Config) setDefaults() {

	if c.Bus.Driver == "" {
		c.Bus.Driver = DriverI2C
	}

	if c.Bus.Device == "" && c.Bus.Driver == DriverI2C {
		c.Bus.Device = "/dev/i2c-0"
	}

	if c.GPIO.Driver == "" {
		c.GPIO.Driver = DriverGPIOCdev
	}

	if c.GPIO.Chip == "" {
		c.GPIO.Chip = "gpiochip0"
	}

	if c.Errors == "" {
		c.Errors = FailFast.String()
	}
}

// validate checks the configuration, errors name the offending key
func (c *Config) validate() error {

	if _, err := Sensor(c.Sensor, c.Variant); err != nil {
		return fmt.Errorf("sensor: %w", err)
	}

	switch c.Bus.Driver {
	case DriverI2C:
		if c.Bus.Address > 0x7f {
			return fmt.Errorf("bus.address: 0x%x is not a 7 bit address", c.Bus.Address)
		}
	case DriverPeriph:
	default:
		return fmt.Errorf("bus.driver: unknown driver %q", c.Bus.Driver)
	}

	if c.Bus.Address == 0 {
		return errors.New("bus.address: not set")
	}

	switch c.GPIO.Driver {
	case DriverGPIOCdev:
		for key, pin := range c.pins() {
			if pin == "" {
				continue
			}
			if _, err := strconv.Atoi(pin); err != nil {
				return fmt.Errorf("%s: %q is not a line offset", key, pin)
			}
		}
	case DriverPeriph:
	default:
		return fmt.Errorf("gpio.driver: unknown driver %q", c.GPIO.Driver)
	}

	if _, err := ParseErrorPolicy(c.Errors); err != nil {
		return fmt.Errorf("errors: %w", err)
	}

	if c.SPDChannel >= PadMax {
		return fmt.Errorf("spd_channel: %w: %d", ErrInvalidChannel, c.SPDChannel)
	}

	return nil
}

// pins returns every configured pin keyed by its config path
func (c *Config) pins() map[string]string {

	out := map[string]string{
		"gpio.reset": c.GPIO.Reset,
		"gpio.pwdn":  c.GPIO.Pwdn,
		"gpio.pwren": c.GPIO.Pwren,
	}

	for i, r := range c.Regulators {
		out[fmt.Sprintf("regulators[%d].pin", i)] = r.Pin
	}

	if c.Clock != nil {
		out["clock.pin"] = c.Clock.Pin
	}

	if c.Pinctrl != nil {
		out["pinctrl.pin"] = c.Pinctrl.Pin
	}

	return out
}

// ParseErrorPolicy returns the ErrorPolicy named s
func ParseErrorPolicy(s string) (ErrorPolicy, error) {

	for _, p := range []ErrorPolicy{FailFast, Aggregate} {
		if p.String() == s {
			return p, nil
		}
	}

	return FailFast, fmt.Errorf("unknown error policy %q", s)
}

// Options returns the device options selected by the configuration
func (c *Config) Options() []Option {

	policy, _ := ParseErrorPolicy(c.Errors)

	opts := []Option{
		WithErrorPolicy(policy),
		WithFastBoot(c.FastBoot),
		WithGroupHold(c.GroupHold),
		WithModule(ModuleInfo{
			Module: c.Module.Name,
			Lens:   c.Module.Lens,
			Facing: c.Module.Facing,
			Index:  c.Module.Index,
		}),
	}

	if c.OTP != nil {
		opts = append(opts, WithOTP(c.OTP))
	}

	if c.SPDChannel >= 0 {
		opts = append(opts, WithSPDChannel(c.SPDChannel))
	}

	return opts
}

// Open builds a Device from the configuration, opening the bus and the
// control lines.  Everything opened is released by Detach.
func Open(cfg *Config, log zerolog.Logger) (*Device, error) {

	desc, err := Sensor(cfg.Sensor, cfg.Variant)

	if err != nil {
		return nil, err
	}

	tr, err := cfg.openBus()

	if err != nil {
		return nil, err
	}

	pwr, opened, err := cfg.openPower(desc.Name)

	if err != nil {
		tr.Close()
		return nil, err
	}

	d, err := NewWithLog(tr, desc, pwr, log, cfg.Options()...)

	if err != nil {
		tr.Close()
		for _, l := range opened {
			l.Close()
		}
		return nil, err
	}

	if cfg.AWB != nil {
		d.SetAWBConfig(*cfg.AWB)
	}

	if cfg.LSC != nil {
		d.SetLSCConfig(*cfg.LSC)
	}

	return d, nil
}

// closeLine is a Line that can be released
type closeLine interface {
	Line
	Close() error
}

// busCloser is a Transport owning its bus
type busCloser interface {
	Transport
	Close() error
}

// openBus opens the register transport
func (c *Config) openBus() (busCloser, error) {

	switch c.Bus.Driver {
	case DriverPeriph:
		return OpenPeriph(c.Bus.Device, c.Bus.Address)
	default:
		return OpenI2C(uint8(c.Bus.Address), c.Bus.Device)
	}
}

// openPower requests the control lines and assembles the power
// collaborators.  The lines are returned so they can be released on failure.
func (c *Config) openPower(consumer string) (*Power, []closeLine, error) {

	var (
		opened []closeLine
		chip   *GPIOChip
	)

	fail := func(err error) (*Power, []closeLine, error) {
		for _, l := range opened {
			l.Close()
		}
		return nil, nil, err
	}

	if c.GPIO.Driver == DriverGPIOCdev {

		var err error
		chip, err = OpenGPIOChip(c.GPIO.Chip, consumer)

		if err != nil {
			return nil, nil, err
		}

		// requested lines outlive the chip handle
		defer chip.Close()
	}

	open := func(name, pin string, activeLow bool) (Line, error) {

		if pin == "" {
			return nil, nil
		}

		var (
			l   closeLine
			err error
		)

		if chip != nil {
			off, _ := strconv.Atoi(pin)
			l, err = chip.Line(off, name, 0, activeLow)
		} else {
			l, err = OpenPeriphLine(pin)
		}

		if err != nil {
			return nil, err
		}

		opened = append(opened, l)

		return l, nil
	}

	pwr := &Power{}
	var err error

	if pwr.Reset, err = open("reset", c.GPIO.Reset, c.GPIO.ActiveLow); err != nil {
		return fail(err)
	}

	if pwr.Pwdn, err = open("pwdn", c.GPIO.Pwdn, c.GPIO.ActiveLow); err != nil {
		return fail(err)
	}

	if pwr.Pwren, err = open("pwren", c.GPIO.Pwren, false); err != nil {
		return fail(err)
	}

	for _, r := range c.Regulators {

		l, err := open(r.Name, r.Pin, false)

		if err != nil {
			return fail(err)
		}

		if l != nil {
			pwr.Regulators = append(pwr.Regulators, &LineRegulator{Line: l})
		}
	}

	if c.Clock != nil {

		l, err := open("xvclk", c.Clock.Pin, false)

		if err != nil {
			return fail(err)
		}

		if l != nil {
			pwr.Clock = &LineClock{Line: l, Rate: c.Clock.Rate}
		}
	}

	if c.Pinctrl != nil {

		l, err := open("pinctrl", c.Pinctrl.Pin, false)

		if err != nil {
			return fail(err)
		}

		if l != nil {
			pwr.Pinctrl = &LinePinctrl{
				Line: l, Default: c.Pinctrl.Default, Sleep: c.Pinctrl.Sleep,
			}
		}
	}

	return pwr, opened, nil
}
