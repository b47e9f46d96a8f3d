package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mlog"
	servicecommand "github.com/foodtrace/lotcore/services/command"
)

// reconcilerBatchSize bounds how many queued rows one poll pulls per client
// before grouping by client_txn_id, mirroring offline.apply's own default.
const reconcilerBatchSize = 100

// Reconciler is the long-lived worker that periodically drains the offline
// queue: every tick it discovers the distinct clients with rows still
// queued and runs offline.apply once per client, per §4.13.
type Reconciler struct {
	useCase      *servicecommand.UseCase
	pollInterval time.Duration
	logger       mlog.Logger
}

// NewReconciler returns a Reconciler polling every pollSeconds seconds.
func NewReconciler(uc *servicecommand.UseCase, pollSeconds int64, logger mlog.Logger) *Reconciler {
	return &Reconciler{
		useCase:      uc,
		pollInterval: time.Duration(pollSeconds) * time.Second,
		logger:       logger,
	}
}

// Run implements common.App. It ticks until SIGINT/SIGTERM.
func (r *Reconciler) Run(l *common.Launcher) error {
	ctx := common.ContextWithLogger(context.Background(), r.logger)

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			r.drain(ctx)
		case <-quit:
			return nil
		}
	}
}

func (r *Reconciler) drain(ctx context.Context) {
	queued, err := r.useCase.OfflineRepo.ListQueued(ctx, reconcilerBatchSize)
	if err != nil {
		r.logger.Errorf("offline reconciler: failed to list queued rows: %v", err)
		return
	}

	seen := make(map[string]bool)

	for _, row := range queued {
		if seen[row.ClientID] {
			continue
		}

		seen[row.ClientID] = true

		outcomes, err := r.useCase.ApplyOffline(ctx, &servicecommand.ApplyOfflineInput{
			ClientID: row.ClientID,
			Limit:    reconcilerBatchSize,
		})
		if err != nil {
			r.logger.Errorf("offline reconciler: apply failed for client %s: %v", row.ClientID, err)
			continue
		}

		r.logger.Infof("offline reconciler: client %s applied %d group(s)", row.ClientID, len(outcomes))
	}
}
