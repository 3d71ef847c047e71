package camsensor

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

func newRegio(tr Transport, p ErrorPolicy) *regio {
	log := zerolog.Nop()
	return &regio{tr: tr, policy: p, log: &log}
}

func TestFrame(t *testing.T) {
	require.Equal(t, []byte{0x01, 0x00, 0x09}, frame(0x0100, 1, 0x09))
	require.Equal(t, []byte{0x35, 0x0a, 0x01, 0x00, 0x00}, frame(0x350a, 3, 0x10000))
	require.Equal(t, []byte{0x02, 0x02, 0x12, 0x34}, frame(0x0202, 2, 0xff1234))
	require.Equal(t, uint32(0x564041), unframe([]byte{0x56, 0x40, 0x41}))
}

func TestWidthValidation(t *testing.T) {
	bus := newFakeBus()
	r := newRegio(bus, FailFast)

	for _, w := range []int{0, 5, -1} {
		err := r.Write(0x0100, w, 1)
		require.ErrorIs(t, err, ErrInvalidWidth)

		_, err = r.Read(0x0100, w)
		require.ErrorIs(t, err, ErrInvalidWidth)
	}

	// nothing reached the bus
	require.Zero(t, bus.attempts)
	require.Zero(t, bus.reads)

	require.NoError(t, r.Write(0x0100, 4, 1))
}

func TestWriteBatchFailFast(t *testing.T) {
	bus := newFakeBus()
	bus.failAddr[0x0012] = true
	r := newRegio(bus, FailFast)

	err := r.WriteBatch([]RegWrite{
		reg8(0x0010, 1), reg8(0x0012, 2), reg8(0x0014, 3),
	})

	var we *WriteError
	require.ErrorAs(t, err, &we)
	require.Equal(t, uint16(0x0012), we.Addr)
	require.ErrorIs(t, err, errBus)
	require.Equal(t, 2, bus.attempts)
}

func TestWriteBatchAggregate(t *testing.T) {
	bus := newFakeBus()
	bus.failAddr[0x0010] = true
	bus.failAddr[0x0014] = true
	r := newRegio(bus, Aggregate)

	err := r.WriteBatch([]RegWrite{
		reg8(0x0010, 1), reg8(0x0012, 2), reg8(0x0014, 3), reg8(0x0016, 4),
	})

	var be *BatchError
	require.ErrorAs(t, err, &be)
	require.Len(t, be.Errs, 2)
	require.ErrorIs(t, err, errBus)
	require.Equal(t, 4, bus.attempts)
	require.Equal(t, uint32(4), bus.regs[0x0016])

	require.NoError(t, r.WriteBatch(nil))
}

func TestModify(t *testing.T) {
	bus := newFakeBus()
	bus.regs[0x3221] = 0x81
	r := newRegio(bus, FailFast)

	require.NoError(t, r.modify(0x3221, 0x66, 0x06))
	require.Equal(t, uint32(0x87), bus.regs[0x3221])

	require.NoError(t, r.modify(0x3221, 0x66, 0))
	require.Equal(t, uint32(0x81), bus.regs[0x3221])
}

// fakeI2C is a periph.io bus failing the first failures transactions
type fakeI2C struct {
	failures int
	tx       int
	last     []byte
	reply    []byte
}

func (b *fakeI2C) String() string { return "fake" }

func (b *fakeI2C) Tx(addr uint16, w, r []byte) error {

	b.tx++
	b.last = append([]byte(nil), w...)

	if b.tx <= b.failures {
		return errBus
	}

	copy(r, b.reply)

	return nil
}

func (b *fakeI2C) SetSpeed(f physic.Frequency) error { return nil }

func (b *fakeI2C) Close() error { return nil }

func TestPeriphReadRetries(t *testing.T) {
	bus := &fakeI2C{failures: 2, reply: []byte{0xce, 0x50}}
	tr := &PeriphTransport{bus: bus, dev: &i2c.Dev{Bus: bus, Addr: 0x30}}

	v, err := tr.ReadReg(0x3107, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(0xce50), v)
	require.Equal(t, 3, bus.tx)
	require.Equal(t, []byte{0x31, 0x07}, bus.last)

	bus = &fakeI2C{failures: 3}
	tr = &PeriphTransport{bus: bus, dev: &i2c.Dev{Bus: bus, Addr: 0x30}}

	_, err = tr.ReadReg(0x3107, 2)
	require.True(t, errors.Is(err, errBus))
	require.Equal(t, readAttempts, bus.tx)
}

func TestPeriphWrite(t *testing.T) {
	bus := &fakeI2C{}
	tr := &PeriphTransport{bus: bus, dev: &i2c.Dev{Bus: bus, Addr: 0x36}}

	require.NoError(t, tr.WriteReg(0x3500, 3, 0x1234))
	require.Equal(t, []byte{0x35, 0x00, 0x00, 0x12, 0x34}, bus.last)

	require.ErrorIs(t, tr.WriteReg(0x3500, 5, 0), ErrInvalidWidth)
	require.Equal(t, 1, bus.tx)
}
