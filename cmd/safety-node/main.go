// Command safety-node monitors an analog limit sensor and publishes safety
// events on the CAN bus, driving the red/green limit indicators.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/safety-node/internal/adc"
	"github.com/sweeney/safety-node/internal/canbus"
	"github.com/sweeney/safety-node/internal/config"
	"github.com/sweeney/safety-node/internal/led"
	"github.com/sweeney/safety-node/internal/logic"
	"github.com/sweeney/safety-node/internal/status"
	"github.com/sweeney/safety-node/internal/telemetry"
	"github.com/sweeney/safety-node/internal/watchdog"
	"github.com/sweeney/safety-node/internal/web"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults used when empty)")
	deviceID := flag.Uint("device-id", 0, "Device identifier override: 1 or 2 (0 = use config)")
	iface := flag.String("can", "", "CAN interface override (empty = use config)")
	poll := flag.Duration("poll", 0, "Sensor polling interval override (0 = use config)")
	broker := flag.String("broker", "", "MQTT broker for the telemetry mirror (empty to disable)")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	pinRed := flag.Int("pin-red", led.DefaultPinRed, "BCM pin number for the red LED")
	pinGreen := flag.Int("pin-green", led.DefaultPinGreen, "BCM pin number for the green LED")
	printSample := flag.Bool("print-sample", false, "Print one sensor sample and exit")

	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
	}
	applyOverrides(&cfg, *deviceID, *iface, *poll)
	if err := config.Validate(&cfg); err != nil {
		log.Fatalf("fatal: invalid config: %v", err)
	}

	if err := run(cfg, *broker, *httpAddr, *pinRed, *pinGreen, *printSample); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// applyOverrides folds command-line overrides into the loaded config.
func applyOverrides(cfg *config.Config, deviceID uint, iface string, poll time.Duration) {
	if deviceID != 0 {
		cfg.Device.ID = uint8(deviceID)
	}
	if iface != "" {
		cfg.Bus.Interface = iface
	}
	if poll > 0 {
		cfg.Timing.PollMs = int(poll / time.Millisecond)
	}
}

func run(cfg config.Config, broker, httpAddr string, pinRed, pinGreen int, printSample bool) error {
	// Initialize the sensor
	sensor, err := adc.NewADS1115()
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer sensor.Close()

	// Print sample mode
	if printSample {
		sample, err := sensor.Read()
		if err != nil {
			return fmt.Errorf("read sensor: %w", err)
		}
		th := thresholds(cfg)
		fmt.Printf("sample: %d zone: %s\n", sample, th.Classify(sample))
		return nil
	}

	// Initialize the bus. A node without a working transport must not start.
	transport, err := canbus.NewSocketCAN(cfg.Bus.Interface, cfg.Bus.Bitrate, cfg.Bus.TxTimeout())
	if err != nil {
		return fmt.Errorf("init can bus: %w", err)
	}
	defer transport.Close()
	sender := canbus.NewSender(transport, cfg.Bus.RecoverySettle())

	// Initialize the indicators
	leds, err := led.NewRealOutput(pinRed, pinGreen)
	if err != nil {
		return fmt.Errorf("init leds: %w", err)
	}
	defer leds.Close()

	// Optional telemetry mirror. Best effort: a broker that is down at
	// startup disables the mirror rather than the node.
	var publisher telemetry.Publisher
	if broker != "" {
		p, err := telemetry.NewRealPublisher(broker, cfg.Device.ID)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			publisher = p
			defer p.Close()
		}
	}

	// Host watchdog
	feeder, wdTimeout, err := watchdog.New()
	if err != nil {
		return fmt.Errorf("init watchdog: %w", err)
	}
	if wdTimeout > 0 {
		log.Printf("systemd watchdog armed: timeout=%v", wdTimeout)
		if wdTimeout <= cfg.Bus.RecoverySettle() {
			return fmt.Errorf("watchdog timeout %v does not cover the bus recovery settle %v", wdTimeout, cfg.Bus.RecoverySettle())
		}
	}

	// Status tracker + HTTP server
	startTime := time.Now()
	tracker := status.NewTracker(startTime, status.Config{
		DeviceID:    cfg.Device.ID,
		PollMs:      int64(cfg.Timing.PollMs),
		HeartbeatMs: int64(cfg.Timing.HeartbeatMs),
		BlinkHalfMs: int64(cfg.Timing.BlinkHalfMs),
		Interface:   cfg.Bus.Interface,
		Bitrate:     cfg.Bus.Bitrate,
		Broker:      broker,
		HTTPAddr:    httpAddr,
	})
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	node := logic.NewNode(cfg.Device.ID, thresholds(cfg), cfg.Timing.Heartbeat(), cfg.Timing.BlinkHalf(), startTime)

	log.Printf("started: device=0x%02X can=%s@%d poll=%v heartbeat=%v",
		cfg.Device.ID, cfg.Bus.Interface, cfg.Bus.Bitrate, cfg.Timing.Poll(), cfg.Timing.Heartbeat())

	ticker := time.NewTicker(cfg.Timing.Poll())
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(sensor, sender, leds, feeder, publisher, tracker, node, time.Now, ticker.C, sigCh)
}

func thresholds(cfg config.Config) logic.Thresholds {
	return logic.Thresholds{
		RedOn:      cfg.Thresholds.RedOn,
		RedBlink:   cfg.Thresholds.RedBlink,
		GreenBlink: cfg.Thresholds.GreenBlink,
		GreenOn:    cfg.Thresholds.GreenOn,
	}
}

func runLoop(sensor adc.Reader, sender *canbus.Sender, leds led.Output, feeder watchdog.Feeder, publisher telemetry.Publisher, tracker *status.Tracker, node *logic.Node, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	lastErrorMode := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			if err := leds.Set(false, false); err != nil {
				log.Printf("led clear error: %v", err)
			}
			return nil

		case <-tick:
			// Fed once per cycle, unconditionally.
			if err := feeder.Feed(); err != nil {
				log.Printf("watchdog feed error: %v", err)
			}

			t := now()
			sample, err := sensor.Read()
			if err != nil {
				log.Printf("sensor read error: %v", err)
				continue
			}

			msgs := node.Cycle(logic.Input{Sample: sample, Time: t})
			for _, m := range msgs {
				err := sender.Send(m.Data)
				node.RecordTransmit(err == nil)
				if err != nil {
					log.Printf("transmit error (%d consecutive): %v", node.ConsecutiveFailures(), err)
				} else {
					log.Printf("sent: id=0x%03X data=[% X]", canbus.FrameID, m.Data)
				}
				mirror(publisher, m, node.Zone(), t)
			}

			if em := node.ErrorMode(); em != lastErrorMode {
				if em {
					log.Printf("bus fault: %d consecutive transmit failures, error display engaged", node.ConsecutiveFailures())
				} else {
					log.Printf("bus fault cleared")
				}
				mirrorFault(publisher, node.DeviceID(), em, t)
				lastErrorMode = em
			}

			red, green := node.Render(t)
			if err := leds.Set(red, green); err != nil {
				log.Printf("led set error: %v", err)
			}

			if tracker != nil {
				tracker.Update(node.Zone(), node.ErrorMode(), node.ConsecutiveFailures(), red, green, node.Counts())
			}
		}
	}
}

// mirror publishes one bus message to the telemetry broker, if configured.
func mirror(p telemetry.Publisher, m logic.Message, zone logic.Zone, t time.Time) {
	if p == nil {
		return
	}
	ev := telemetry.Event{Timestamp: t, DeviceID: m.Data[0]}
	switch m.Kind {
	case logic.MessageHeartbeat:
		ev.Kind = telemetry.KindHeartbeat
	case logic.MessageStatus:
		ev.Kind = telemetry.KindStatus
		ev.Zone = zone.String()
		ev.Code = m.Data[1]
	}
	if err := p.Publish(ev); err != nil {
		log.Printf("telemetry publish error: %v", err)
	}
}

func mirrorFault(p telemetry.Publisher, deviceID byte, errorMode bool, t time.Time) {
	if p == nil {
		return
	}
	ev := telemetry.Event{
		Timestamp: t,
		Kind:      telemetry.KindFault,
		DeviceID:  deviceID,
		ErrorMode: errorMode,
	}
	if err := p.Publish(ev); err != nil {
		log.Printf("telemetry publish error: %v", err)
	}
}
