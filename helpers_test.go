package camsensor

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBus = errors.New("bus error")

// fakeBus is an in memory register file recording every write
type fakeBus struct {
	regs   map[uint16]uint32
	writes []RegWrite
	// attempts counts writes including the failed ones
	attempts int
	reads    int
	// failAddr fails writes to the listed registers
	failAddr map[uint16]bool
	// failAll fails every write
	failAll  bool
	failRead bool
	closed   bool
}

func newFakeBus() *fakeBus {
	return &fakeBus{regs: map[uint16]uint32{}, failAddr: map[uint16]bool{}}
}

func (b *fakeBus) WriteReg(addr uint16, width int, val uint32) error {

	b.attempts++

	if b.failAll || b.failAddr[addr] {
		return errBus
	}

	b.regs[addr] = val
	b.writes = append(b.writes, RegWrite{Addr: addr, Width: width, Val: val})

	return nil
}

func (b *fakeBus) ReadReg(addr uint16, width int) (uint32, error) {

	b.reads++

	if b.failRead {
		return 0, errBus
	}

	return b.regs[addr], nil
}

func (b *fakeBus) Close() error {
	b.closed = true
	return nil
}

// since returns the writes made after the first n
func (b *fakeBus) since(n int) []RegWrite {
	return append([]RegWrite(nil), b.writes[n:]...)
}

// lastIndex returns the position of the last write of val to addr, -1 when
// there is none
func (b *fakeBus) lastIndex(addr uint16, val uint32) int {

	for i := len(b.writes) - 1; i >= 0; i-- {
		if b.writes[i].Addr == addr && b.writes[i].Val == val {
			return i
		}
	}

	return -1
}

// loadID stores the chip ID where the descriptor reads it from
func (b *fakeBus) loadID(id Identity) {

	if !id.Bytewise {
		b.regs[id.Addr] = id.Value
		return
	}

	for i := 0; i < id.Width; i++ {
		shift := 8 * uint(id.Width-1-i)
		b.regs[id.Addr+uint16(i)] = (id.Value >> shift) & 0xff
	}
}

// events is the ordered record of power collaborator calls
type events struct {
	list []string
}

func (e *events) add(format string, args ...any) {
	e.list = append(e.list, fmt.Sprintf(format, args...))
}

func (e *events) reset() {
	e.list = nil
}

type fakeLine struct {
	ev     *events
	name   string
	closed bool
}

func (l *fakeLine) SetValue(v int) error {
	l.ev.add("%s=%d", l.name, v)
	return nil
}

func (l *fakeLine) Close() error {
	l.closed = true
	return nil
}

type fakeRegulator struct {
	ev   *events
	name string
	fail bool
}

func (r *fakeRegulator) Enable() error {

	if r.fail {
		r.ev.add("%s failed", r.name)
		return errBus
	}

	r.ev.add("%s on", r.name)

	return nil
}

func (r *fakeRegulator) Disable() error {
	r.ev.add("%s off", r.name)
	return nil
}

type fakeClock struct {
	ev       *events
	failRate bool
	fail     bool
}

func (c *fakeClock) SetRate(hz uint32) error {

	c.ev.add("xvclk rate %d", hz)

	if c.failRate {
		return errBus
	}

	return nil
}

func (c *fakeClock) Enable() error {

	if c.fail {
		return errBus
	}

	c.ev.add("xvclk on")

	return nil
}

func (c *fakeClock) Disable() error {
	c.ev.add("xvclk off")
	return nil
}

type fakePinctrl struct {
	ev *events
}

func (p *fakePinctrl) Select(s PinState) error {
	p.ev.add("pins %s", s)
	return nil
}

// fakeSleeper records delays instead of waiting
type fakeSleeper struct {
	delays []time.Duration
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.delays = append(s.delays, d)
}

// rig is a device wired to fakes
type rig struct {
	dev   *Device
	bus   *fakeBus
	ev    *events
	sleep *fakeSleeper
	power *Power
}

// newRig creates a device for a registered sensor with the chip ID loaded
// into the fake bus
func newRig(t *testing.T, name, variant string, opts ...Option) *rig {

	t.Helper()

	desc, err := Sensor(name, variant)
	require.NoError(t, err)

	return newRigDesc(t, desc, opts...)
}

func newRigDesc(t *testing.T, desc *Descriptor, opts ...Option) *rig {

	t.Helper()

	r := &rig{bus: newFakeBus(), ev: &events{}, sleep: &fakeSleeper{}}
	r.bus.loadID(desc.ID)

	r.power = &Power{
		Clock:   &fakeClock{ev: r.ev},
		Reset:   &fakeLine{ev: r.ev, name: "reset"},
		Pwdn:    &fakeLine{ev: r.ev, name: "pwdn"},
		Pwren:   &fakeLine{ev: r.ev, name: "pwren"},
		Pinctrl: &fakePinctrl{ev: r.ev},
	}

	for _, s := range desc.Supplies {
		r.power.Regulators = append(r.power.Regulators,
			&fakeRegulator{ev: r.ev, name: s})
	}

	opts = append([]Option{WithSleeper(r.sleep)}, opts...)

	dev, err := New(r.bus, desc, r.power, opts...)
	require.NoError(t, err)

	r.dev = dev

	return r
}

// attach powers the rig on and clears the records
func (r *rig) attach(t *testing.T) {

	t.Helper()

	require.NoError(t, r.dev.Attach())

	r.ev.reset()
	r.sleep.delays = nil
}
