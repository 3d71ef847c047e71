package camsensor

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/swdee/go-i2c"
)

const (
	// readAttempts is the number of times a register read is tried before
	// the error is returned to the caller
	readAttempts = 3

	// maxWidth is the widest register value the sensors accept in a single
	// transaction
	maxWidth = 4
)

// Transport is the register level access to a sensor.  Addresses are 16 bit
// and values are sent big endian using the low width bytes of val.
type Transport interface {
	WriteReg(addr uint16, width int, val uint32) error
	ReadReg(addr uint16, width int) (uint32, error)
}

// RegWrite is a single register write of Width bytes
type RegWrite struct {
	Addr  uint16
	Width int
	Val   uint32
}

// reg8 returns an 8 bit register write
func reg8(addr uint16, val uint32) RegWrite {
	return RegWrite{Addr: addr, Width: 1, Val: val & 0xff}
}

// checkWidth rejects register widths the bus framing can not carry
func checkWidth(width int) error {

	if width < 1 || width > maxWidth {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	return nil
}

// frame builds the bus message for a register write
func frame(addr uint16, width int, val uint32) []byte {

	buf := make([]byte, 2, 2+width)
	buf[0] = byte(addr >> 8)
	buf[1] = byte(addr)

	for i := width - 1; i >= 0; i-- {
		buf = append(buf, byte(val>>(8*uint(i))))
	}

	return buf
}

// unframe assembles a big endian register value
func unframe(buf []byte) uint32 {

	var val uint32

	for _, b := range buf {
		val = val<<8 | uint32(b)
	}

	return val
}

// I2CTransport talks to a sensor through a Linux i2c-dev device node
type I2CTransport struct {
	bus *i2c.Options
}

// NewI2CTransport wraps an opened I2C connection
func NewI2CTransport(bus *i2c.Options) (*I2CTransport, error) {

	if bus.GetAddr() == 0 {
		return nil, fmt.Errorf("I2C device is not initiated")
	}

	return &I2CTransport{bus: bus}, nil
}

// OpenI2C opens the i2c-dev node dev for the sensor at addr
func OpenI2C(addr uint8, dev string) (*I2CTransport, error) {

	bus, err := i2c.New(addr, dev)

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dev, err)
	}

	return NewI2CTransport(bus)
}

// WriteReg writes a width byte value to the register
func (t *I2CTransport) WriteReg(addr uint16, width int, val uint32) error {

	if err := checkWidth(width); err != nil {
		return err
	}

	buf := frame(addr, width, val)
	n, err := t.bus.WriteBytes(buf)

	if err != nil {
		return err
	}

	if n != len(buf) {
		return fmt.Errorf("writeReg 0x%04x: short write %d/%d", addr, n, len(buf))
	}

	return nil
}

// ReadReg reads a width byte value from the register, retrying the transfer
// before giving up
func (t *I2CTransport) ReadReg(addr uint16, width int) (uint32, error) {

	if err := checkWidth(width); err != nil {
		return 0, err
	}

	var err error

	for i := 0; i < readAttempts; i++ {

		var val uint32

		if val, err = t.readOnce(addr, width); err == nil {
			return val, nil
		}
	}

	return 0, fmt.Errorf("readReg 0x%04x: %w", addr, err)
}

// readOnce performs a single address write followed by a read
func (t *I2CTransport) readOnce(addr uint16, width int) (uint32, error) {

	if _, err := t.bus.WriteBytes([]byte{byte(addr >> 8), byte(addr)}); err != nil {
		return 0, err
	}

	buf := make([]byte, width)
	n, err := t.bus.ReadBytes(buf)

	if err != nil {
		return 0, err
	}

	if n < width {
		return 0, ErrShortRead
	}

	return unframe(buf), nil
}

// Close releases the I2C connection
func (t *I2CTransport) Close() error {
	return t.bus.Close()
}

// ErrorPolicy selects how a batch of register writes reacts to a failure
type ErrorPolicy int

const (
	// FailFast stops the batch at the first failed write and reports it
	FailFast ErrorPolicy = iota
	// Aggregate attempts every write of the batch and reports all failures
	Aggregate
)

// String implements the Stringer interface for ErrorPolicy
func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case Aggregate:
		return "aggregate"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// Registers is the register access given to sensor specific hooks
type Registers interface {
	Write(addr uint16, width int, val uint32) error
	Read(addr uint16, width int) (uint32, error)
	WriteBatch(writes []RegWrite) error
}

// regio applies width validation, logging and the error policy on top of a
// Transport
type regio struct {
	tr     Transport
	policy ErrorPolicy
	log    *zerolog.Logger
}

// Write writes a single register
func (r *regio) Write(addr uint16, width int, val uint32) error {

	if err := checkWidth(width); err != nil {
		return err
	}

	r.log.Trace().Str("reg", fmt.Sprintf("0x%04x", addr)).Int("width", width).
		Str("val", fmt.Sprintf("0x%x", val)).Msg("write")

	if err := r.tr.WriteReg(addr, width, val); err != nil {
		return &WriteError{Addr: addr, Width: width, Err: err}
	}

	return nil
}

// Read reads a single register
func (r *regio) Read(addr uint16, width int) (uint32, error) {

	if err := checkWidth(width); err != nil {
		return 0, err
	}

	val, err := r.tr.ReadReg(addr, width)

	if err != nil {
		return 0, err
	}

	r.log.Trace().Str("reg", fmt.Sprintf("0x%04x", addr)).Int("width", width).
		Str("val", fmt.Sprintf("0x%x", val)).Msg("read")

	return val, nil
}

// WriteBatch writes the registers in order following the error policy
func (r *regio) WriteBatch(writes []RegWrite) error {

	var batch BatchError

	for _, w := range writes {

		err := r.Write(w.Addr, w.Width, w.Val)

		if err == nil {
			continue
		}

		if r.policy == FailFast || errors.Is(err, ErrInvalidWidth) {
			return err
		}

		batch.add(err)
	}

	return batch.errOrNil()
}

// modify performs a read-modify-write of an 8 bit register, clearing the
// clear bits before setting the set bits
func (r *regio) modify(addr uint16, clear, set uint8) error {

	val, err := r.Read(addr, 1)

	if err != nil {
		return err
	}

	return r.Write(addr, 1, (val&^uint32(clear))|uint32(set))
}
