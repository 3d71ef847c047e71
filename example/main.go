package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/swdee/go-camsensor"
)

func main() {

	config := flag.String("c", "camsensor.yaml", "Path to sensor configuration file")
	i2cbus := flag.String("b", "", "Path to I2C bus overriding the configuration")
	width := flag.Uint("width", 0, "Frame width, 0 keeps the default mode")
	height := flag.Uint("height", 0, "Frame height, 0 keeps the default mode")
	frames := flag.Duration("t", 2*time.Second, "How long to stream for")
	flag.Parse()

	cfg, err := camsensor.LoadConfig(*config)

	if err != nil {
		// config errors are reported before the logger is known
		println("ERROR: " + err.Error())
		os.Exit(1)
	}

	log := newLogger(cfg.Log)

	if *i2cbus != "" {
		cfg.Bus.Device = *i2cbus
	}

	sensor, err := camsensor.Open(cfg, log)

	if err != nil {
		log.Fatal().Err(err).Msg("open sensor")
	}

	defer func() {
		if err := sensor.Detach(); err != nil {
			log.Error().Err(err).Msg("detach")
		}
	}()

	if err := sensor.Attach(); err != nil {
		var idErr *camsensor.IdentityError

		if errors.As(err, &idErr) {
			log.Error().Uint32("want", idErr.Want).Uint32("got", idErr.Got).
				Msg("wrong sensor on bus")
			return
		}

		log.Error().Err(err).Msg("attach")
		return
	}

	if *width != 0 && *height != 0 {

		f, err := sensor.SetFormat(uint32(*width), uint32(*height),
			sensor.Format().Code, false)

		if err != nil {
			log.Error().Err(err).Msg("set format")
			return
		}

		log.Info().Uint32("width", f.Width).Uint32("height", f.Height).
			Str("code", f.Code.String()).Msg("format selected")
	}

	// run at half the frame rate by doubling the vertical blanking
	m := sensor.Mode()

	if err := sensor.SetControl(camsensor.VBlank,
		int64(m.VTS)*2-int64(m.Height)); err != nil {
		log.Warn().Err(err).Msg("vblank")
	}

	if r, err := sensor.ControlRange(camsensor.AnalogGain); err == nil {
		if err := sensor.SetControl(camsensor.AnalogGain, r.Min*4); err != nil {
			log.Warn().Err(err).Msg("gain")
		}
	}

	if err := sensor.StartStream(); err != nil {
		log.Error().Err(err).Msg("start stream")
		return
	}

	fi := sensor.FrameInterval()
	log.Info().Str("stream", sensor.StreamID().String()).
		Uint32("fps", fi.FPS()).Msg("streaming")

	time.Sleep(*frames)

	if err := sensor.StopStream(); err != nil {
		log.Error().Err(err).Msg("stop stream")
	}
}

// newLogger builds a console logger from the log section of the config.
// Supported keys are format (color, text, json) and level.
func newLogger(mod map[string]string) zerolog.Logger {

	var writer io.Writer = os.Stdout

	if format := mod["format"]; format != "json" {
		writer = zerolog.ConsoleWriter{
			Out: writer, TimeFormat: "15:04:05.000",
			NoColor: format == "text",
		}
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	lvl, err := zerolog.ParseLevel(mod["level"])

	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}
