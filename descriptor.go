package camsensor

import (
	"fmt"
	"sort"
	"time"
)

// StreamRegs is the register switching the sensor between standby and
// streaming
type StreamRegs struct {
	Reg uint16
	On  uint8
	Off uint8
}

// Identity locates the chip ID of a sensor
type Identity struct {
	Addr  uint16
	Width int
	// Bytewise reads the ID one byte per register starting at Addr
	Bytewise bool
	Value    uint32
}

// GroupHold brackets register updates so they take effect on the same frame
type GroupHold struct {
	Begin []RegWrite
	End   []RegWrite
}

// Descriptor holds everything that differs between sensors.  The engine in
// Device is the same for all of them.
type Descriptor struct {
	Name    string
	Variant string
	// Lanes is the number of MIPI data lanes
	Lanes uint32
	// XVClk is the input clock rate in Hz
	XVClk     uint32
	LinkFreqs []uint64
	Catalog   Catalog
	Fit       FitPolicy
	VTSMax    uint32
	// ExposureMin is the shortest exposure in lines
	ExposureMin uint32

	Gain     GainEncoder
	Exposure ValueEncoder
	VTS      ValueEncoder

	Flip Flipper
	// FlipOnStream defers flip writes to stream start
	FlipOnStream bool
	TestPattern  *PatternTable
	Stream       StreamRegs
	ID           Identity

	// PowerOnProgram is written once the sensor is powered, followed by
	// InitSettle
	PowerOnProgram Program
	InitSettle     time.Duration
	// PreSetup is written at stream start before controls are pushed
	PreSetup Program
	// PostSetup runs at stream start after controls and flip are applied
	PostSetup func(r Registers) error

	GroupHold *GroupHold
	Power     PowerProfile
	// Supplies names the regulators in enable order
	Supplies []string
}

// sensors maps a sensor name to its descriptor constructors by variant, the
// empty variant being the default
var sensors = map[string]map[string]func() *Descriptor{}

// register adds a descriptor constructor, called from each sensor file
func register(name, variant string, fn func() *Descriptor, isDefault bool) {

	v, ok := sensors[name]

	if !ok {
		v = make(map[string]func() *Descriptor)
		sensors[name] = v
	}

	v[variant] = fn

	if isDefault {
		v[""] = fn
	}
}

// Sensor returns a fresh descriptor for a sensor name and bus or table
// variant.  An empty variant selects the default.
func Sensor(name, variant string) (*Descriptor, error) {

	v, ok := sensors[name]

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSensor, name)
	}

	fn, ok := v[variant]

	if !ok {
		return nil, fmt.Errorf("%w: %s variant %q", ErrUnknownSensor, name, variant)
	}

	return fn(), nil
}

// Sensors lists the supported sensor names
func Sensors() []string {

	names := make([]string, 0, len(sensors))

	for n := range sensors {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}
