//go:build linux

package adc

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

// ADS1115Reader reads the position sensor through an ADS1115 on channel 0.
type ADS1115Reader struct {
	bus i2c.BusCloser
	pin ads1x15.PinADC
}

// NewADS1115 opens the default I2C bus and configures channel 0 for
// single-ended reads against the sensor's 3.3V supply.
func NewADS1115() (*ADS1115Reader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	dev, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("init ads1115: %w", err)
	}

	pin, err := dev.PinForChannel(ads1x15.Channel0, 3300*physic.MilliVolt, 1*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("configure channel 0: %w", err)
	}

	return &ADS1115Reader{bus: bus, pin: pin}, nil
}

// Read returns one sample scaled to the 12-bit range. The ADS1115 delivers
// 15 usable bits single-ended, so the raw count is shifted down by 3.
func (r *ADS1115Reader) Read() (int, error) {
	sample, err := r.pin.Read()
	if err != nil {
		return 0, fmt.Errorf("read channel: %w", err)
	}

	raw := int(sample.Raw) >> 3
	if raw < 0 {
		raw = 0
	}
	if raw > FullScale {
		raw = FullScale
	}
	return raw, nil
}

// Close halts the conversion pin and releases the I2C bus.
func (r *ADS1115Reader) Close() error {
	if err := r.pin.Halt(); err != nil {
		r.bus.Close()
		return fmt.Errorf("halt pin: %w", err)
	}
	return r.bus.Close()
}
