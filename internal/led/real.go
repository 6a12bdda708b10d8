//go:build linux

package led

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealOutput drives the LEDs through the Linux GPIO character device.
type RealOutput struct {
	chip  *gpiocdev.Chip
	red   *gpiocdev.Line
	green *gpiocdev.Line
}

// NewRealOutput requests both LED lines as outputs, initially low.
func NewRealOutput(pinRed, pinGreen int) (*RealOutput, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	redLine, err := chip.RequestLine(pinRed, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request red pin %d: %w", pinRed, err)
	}

	greenLine, err := chip.RequestLine(pinGreen, gpiocdev.AsOutput(0))
	if err != nil {
		redLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request green pin %d: %w", pinGreen, err)
	}

	return &RealOutput{
		chip:  chip,
		red:   redLine,
		green: greenLine,
	}, nil
}

// Set drives both channels.
func (o *RealOutput) Set(red, green bool) error {
	if err := o.red.SetValue(level(red)); err != nil {
		return fmt.Errorf("set red: %w", err)
	}
	if err := o.green.SetValue(level(green)); err != nil {
		return fmt.Errorf("set green: %w", err)
	}
	return nil
}

// Close turns both LEDs off before releasing the lines so a stopped daemon
// never leaves a stale limit indication lit.
func (o *RealOutput) Close() error {
	var errs []error

	if o.red != nil {
		if err := o.red.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear red: %w", err))
		}
		if err := o.red.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close red: %w", err))
		}
	}
	if o.green != nil {
		if err := o.green.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear green: %w", err))
		}
		if err := o.green.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close green: %w", err))
		}
	}
	if o.chip != nil {
		if err := o.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func level(on bool) int {
	if on {
		return 1
	}
	return 0
}
