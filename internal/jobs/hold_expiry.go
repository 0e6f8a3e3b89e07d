package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = time.Minute

// Sweeper é satisfeito por ucBooking.ExpirePendingHolds.
type Sweeper interface {
	Execute(ctx context.Context) (int, error)
}

// HoldExpiry roda o sweep de holds pending no agendamento cron.
type HoldExpiry struct {
	cron    *cron.Cron
	sweeper Sweeper
	log     *zap.Logger
}

func NewHoldExpiry(spec string, sweeper Sweeper, log *zap.Logger) (*HoldExpiry, error) {
	j := &HoldExpiry{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeper: sweeper,
		log:     log,
	}

	if _, err := j.cron.AddFunc(spec, j.Run); err != nil {
		return nil, fmt.Errorf("invalid HOLD_SWEEP_SPEC %q: %w", spec, err)
	}
	return j, nil
}

// Run executa um sweep. Exportado para o cron e para testes.
func (j *HoldExpiry) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := j.sweeper.Execute(ctx)
	if err != nil {
		j.log.Error("hold expiry sweep failed", zap.Error(err))
		return
	}
	j.log.Debug("hold expiry sweep done", zap.Int("expired", n))
}

func (j *HoldExpiry) Start() {
	j.cron.Start()
}

// Stop espera o sweep em andamento terminar.
func (j *HoldExpiry) Stop() context.Context {
	return j.cron.Stop()
}
