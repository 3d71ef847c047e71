// go-camsensor drives MIPI camera image sensors over their I2C register bus
// and GPIO power lines.
package camsensor

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the power and streaming state of a Device
type State int

const (
	PoweredOff State = iota
	PoweredOn
	Streaming
)

// String implements the Stringer interface for State
func (s State) String() string {
	switch s {
	case PoweredOff:
		return "powered off"
	case PoweredOn:
		return "powered on"
	case Streaming:
		return "streaming"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Device represents a single camera sensor instance.  All methods are safe
// for concurrent use, one operation runs at a time including its bus I/O.
type Device struct {
	mu sync.Mutex

	regs  regio
	tr    Transport
	desc  *Descriptor
	power Power
	sleep Sleeper

	state State
	// mode is the index of the current catalog entry
	mode int
	// programmed is set once the current mode program reached the sensor
	// in this power cycle
	programmed bool

	ctrls     [numControls]control
	groupHold bool

	curVTS uint32
	curFPS Fraction

	fastBoot       bool
	firstStreamOff bool

	module ModuleInfo
	otp    *OTP
	// spdID is the pad carrying the PDAF side channel, PadMax when unused
	spdID int
	awb   *AWBConfig
	lsc   *LSCConfig

	// streamID identifies the current stream session in logs
	streamID uuid.UUID

	// log logger for debugging
	log zerolog.Logger
}

// Option configures a Device at creation
type Option func(d *Device)

// WithErrorPolicy selects how register batches react to a failed write
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(d *Device) {
		d.regs.policy = p
	}
}

// WithFastBoot marks the sensor as already running from the bootloader so
// the first power cycle leaves it untouched
func WithFastBoot(on bool) Option {
	return func(d *Device) {
		d.fastBoot = on
	}
}

// WithGroupHold brackets exposure, gain and frame length updates in the
// sensor group hold registers when it has them
func WithGroupHold(on bool) Option {
	return func(d *Device) {
		d.groupHold = on
	}
}

// WithModule sets the camera module identity
func WithModule(m ModuleInfo) Option {
	return func(d *Device) {
		d.module = m
	}
}

// WithOTP attaches decoded module calibration data
func WithOTP(o *OTP) Option {
	return func(d *Device) {
		d.otp = o
	}
}

// WithSPDChannel routes the PDAF side channel of modes that have one to pad
func WithSPDChannel(pad int) Option {
	return func(d *Device) {
		d.spdID = pad
	}
}

// WithSleeper replaces the clock used for settle delays
func WithSleeper(s Sleeper) Option {
	return func(d *Device) {
		d.sleep = s
	}
}

// New returns a new sensor instance for the descriptor using the transport
// for register access and pwr for power sequencing.  pwr may be nil when the
// sensor is powered externally.
func New(tr Transport, desc *Descriptor, pwr *Power, opts ...Option) (*Device, error) {
	return NewWithLog(tr, desc, pwr, zerolog.Nop(), opts...)
}

// NewWithLog creates a sensor instance with a logger to be used for debugging
func NewWithLog(tr Transport, desc *Descriptor, pwr *Power, log zerolog.Logger,
	opts ...Option) (*Device, error) {

	d, err := new(tr, desc, pwr)

	if err != nil {
		return nil, err
	}

	d.log = log.With().Str("sensor", desc.Name).Logger()

	for _, opt := range opts {
		opt(d)
	}

	d.setup()

	return d, nil
}

// new returns a new sensor instance
func new(tr Transport, desc *Descriptor, pwr *Power) (*Device, error) {

	if tr == nil {
		return nil, fmt.Errorf("register transport is not initiated")
	}

	if desc == nil || len(desc.Catalog) == 0 {
		return nil, fmt.Errorf("sensor descriptor has no modes")
	}

	d := &Device{
		tr:    tr,
		desc:  desc,
		sleep: realSleeper,
		state: PoweredOff,
		spdID: PadMax,
		regs:  regio{tr: tr, policy: FailFast},
	}

	if pwr != nil {
		d.power = *pwr
	}

	return d, nil
}

// setup completes instance creation and is common to New() and NewWithLog()
func (d *Device) setup() {

	d.regs.log = &d.log
	d.mode = 0
	d.initControls()

	d.log.Debug().Str("mode", d.cur().String()).Bool("fast_boot", d.fastBoot).
		Str("errors", d.regs.policy.String()).Msg("device created")
}

// cur returns the current mode
func (d *Device) cur() *Mode {
	return &d.desc.Catalog[d.mode]
}

// Descriptor returns the sensor descriptor the device was built with
func (d *Device) Descriptor() *Descriptor {
	return d.desc
}

// State returns the power and streaming state
func (d *Device) State() State {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// StreamID returns the identifier of the current stream session, the zero
// UUID when not streaming
func (d *Device) StreamID() uuid.UUID {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.streamID
}

// Attach powers the sensor on and checks that the expected chip answers.
// The device is left powered on, or powered off again when anything failed.
func (d *Device) Attach() error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.powerOn(); err != nil {
		return fmt.Errorf("power on: %w", err)
	}

	if err := d.checkIdentity(); err != nil {

		if perr := d.powerOff(); perr != nil {
			d.log.Warn().Err(perr).Msg("power off after failed attach")
		}

		return err
	}

	d.log.Info().Str("mode", d.cur().String()).Msg("sensor attached")

	return nil
}

// checkIdentity reads the chip ID and compares the whole value
func (d *Device) checkIdentity() error {

	id := d.desc.ID

	if id.Width == 0 {
		return nil
	}

	var got uint32

	if id.Bytewise {

		for i := 0; i < id.Width; i++ {

			b, err := d.regs.Read(id.Addr+uint16(i), 1)

			if err != nil {
				return fmt.Errorf("read chip id: %w", err)
			}

			got = got<<8 | b
		}

	} else {

		v, err := d.regs.Read(id.Addr, id.Width)

		if err != nil {
			return fmt.Errorf("read chip id: %w", err)
		}

		got = v
	}

	if got != id.Value {
		return &IdentityError{Want: id.Value, Got: got}
	}

	d.log.Info().Str("id", fmt.Sprintf("0x%x", got)).Msg("detected sensor")

	return nil
}

// Detach stops streaming, powers the sensor off and releases the transport
// and power collaborators that can be closed
func (d *Device) Detach() error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Streaming {
		d.stopStream()
	}

	// a pending fast boot skip must not keep the sensor powered
	d.fastBoot = false

	var errs []error

	if err := d.powerOff(); err != nil {
		errs = append(errs, fmt.Errorf("power off: %w", err))
	}

	for _, c := range d.closers() {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// closers returns the collaborators implementing io.Closer
func (d *Device) closers() []io.Closer {

	var out []io.Closer

	add := func(v any) {
		if c, ok := v.(io.Closer); ok {
			out = append(out, c)
		}
	}

	add(d.tr)
	add(d.power.Clock)
	add(d.power.Reset)
	add(d.power.Pwdn)
	add(d.power.Pwren)
	add(d.power.Pinctrl)

	for _, r := range d.power.Regulators {
		add(r)
	}

	return out
}
