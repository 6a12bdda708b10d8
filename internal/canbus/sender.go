package canbus

import (
	"log"
	"time"
)

// Sender wraps a Transport with the pre-send bus-off probe. When the
// controller is bus-off it requests recovery and waits a bounded settle
// delay before the send proceeds. The wait blocks the poll loop; the
// watchdog budget is sized to tolerate it.
type Sender struct {
	transport Transport
	settle    time.Duration

	// sleep is swappable so tests don't wait out the settle delay.
	sleep func(time.Duration)
}

func NewSender(t Transport, settle time.Duration) *Sender {
	return &Sender{
		transport: t,
		settle:    settle,
		sleep:     time.Sleep,
	}
}

// Send probes for bus-off, recovers if needed, then transmits. A failed
// recovery is not fatal: the send is still attempted, and the next cycle
// probes again if bus-off persists.
func (s *Sender) Send(data []byte) error {
	if s.transport.BusOff() {
		log.Printf("canbus: bus-off detected, requesting recovery")
		if err := s.transport.Recover(); err != nil {
			log.Printf("canbus: recovery request failed: %v", err)
		}
		s.sleep(s.settle)
	}
	return s.transport.Send(data)
}
