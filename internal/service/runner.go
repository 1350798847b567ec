package service

import (
	"context"
	"time"

	"smartcloth/internal/logger"
	"smartcloth/internal/metrics"
	"smartcloth/internal/repository"
)

// RunnerService polls the engine and persists its snapshot whenever the
// engine moved.
type RunnerService struct {
	engine    EnginePoller
	snapshots repository.SnapshotRepo
	log       *logger.Logger
	lastSeq   uint64
}

func NewRunnerService(e EnginePoller, snapshots repository.SnapshotRepo, log *logger.Logger) *RunnerService {
	return &RunnerService{engine: e, snapshots: snapshots, log: logger.OrNop(log)}
}

// Run ticks at the given interval until ctx is canceled.
func (s *RunnerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

// step runs one poll.
func (s *RunnerService) step(ctx context.Context) {
	start := time.Now()
	s.engine.Poll(ctx)
	metrics.PollLatency.Observe(time.Since(start).Seconds())

	snap, ok := s.engine.Snapshot()
	if !ok || snap.Seq == s.lastSeq {
		return
	}
	s.lastSeq = snap.Seq
	metrics.State.Set(float64(snap.Actual))
	if err := s.snapshots.Save(ctx, deviceState(snap)); err != nil {
		s.log.Warnw("runner_snapshot_save_failed", "state", snap.Actual, "error", err)
	}
}
