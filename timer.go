package camsensor

import "time"

// Sleeper blocks for settle delays, replaced in tests to record the delays
// instead of waiting for them
type Sleeper interface {
	Sleep(d time.Duration)
}

// sleepFunc adapts a function to the Sleeper interface
type sleepFunc func(time.Duration)

func (f sleepFunc) Sleep(d time.Duration) {
	f(d)
}

// realSleeper waits using the system clock
var realSleeper Sleeper = sleepFunc(time.Sleep)

// sleepRange waits at least min.  The upper bound only documents the window
// the sensor tolerates, the shortest delay is always used.
func sleepRange(s Sleeper, min, max time.Duration) {

	if min <= 0 {
		return
	}

	s.Sleep(min)
}

// calDelay returns the delay in microseconds needed for cycles clock cycles
// of an xvclk Hz input clock, rounded up
func calDelay(cycles, xvclk uint32) uint32 {

	mhz := xvclk / 1000 / 1000

	if mhz == 0 {
		return cycles
	}

	return (cycles + mhz - 1) / mhz
}
