// Package heartbeat drives the backend scan loop at the primary backend's
// polling rate and prints a periodic liveness line.
package heartbeat

import (
	"context"
	"sync/atomic"
	"time"

	"joyadapter-go/bus"
	"joyadapter-go/services/boot"
	"joyadapter-go/types"
	"joyadapter-go/x/logx"
	"joyadapter-go/x/timex"
)

// FastPeriod is the scan period when the primary reports a polling rate of
// zero (respond as soon as polled).
const FastPeriod = time.Millisecond

type Poller interface{ Poll() }

type Service struct {
	Poller   Poller
	Interval time.Duration // heartbeat line period; 0 => 1s
	Log      *logx.Logger

	polls atomic.Uint32
}

func New(p Poller) *Service {
	return &Service{Poller: p, Interval: time.Second, Log: logx.New("heartbeat")}
}

// Polls returns how many scans have run.
func (s *Service) Polls() uint32 { return s.polls.Load() }

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	stateSub := conn.Subscribe(boot.StateTopic)
	defer conn.Unsubscribe(stateSub)

	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}
	beat := time.NewTicker(interval)
	defer beat.Stop()

	// Scanning starts once a state with live backends arrives.
	scan := time.NewTicker(time.Hour)
	scan.Stop()
	defer scan.Stop()
	active := false

	for {
		select {
		case <-ctx.Done():
			s.Log.Printf("stopping")
			return
		case <-scan.C:
			if active {
				s.Poller.Poll()
				s.polls.Add(1)
			}
		case <-beat.C:
			s.Log.Printf("polls=%d active=%t", s.polls.Load(), active)
		case m := <-stateSub.Channel():
			st, ok := m.Payload.(types.CommsState)
			if !ok {
				continue
			}
			if len(st.Backends) == 0 {
				active = false
				scan.Stop()
				s.Log.Printf("no backends: %s", st.Status)
				continue
			}
			period := timex.PeriodFromHz(st.Backends[0].PollingRate, FastPeriod)
			scan.Reset(period)
			active = true
			s.Log.Printf("scanning %s every %dus", st.Backends[0].ID, int(period/time.Microsecond))
		}
	}
}

// Start runs the scan loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
