package query

import (
	"context"

	"github.com/foodtrace/lotcore/adapters/mongodb"
	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/services/traceability"
)

// RecallReport is the recall.report response: the full backward and forward
// closures of a lot, plus every customer who may have received it, per §4.3.
type RecallReport struct {
	LotID             int64
	BackwardLotIDs    []int64
	ForwardLotIDs     []int64
	AffectedCustomers []int64
}

// Recall computes recall.report for lotID.
func (uc *UseCase) Recall(ctx context.Context, lotID int64) (*RecallReport, error) {
	backward, err := traceability.BackwardClosure(ctx, uc.ProductionRepo, lotID)
	if err != nil {
		return nil, err
	}

	customers, forward, err := traceability.AffectedCustomers(ctx, uc.ProductionRepo, uc.SaleRepo, lotID)
	if err != nil {
		return nil, err
	}

	report := &RecallReport{
		LotID:             lotID,
		BackwardLotIDs:    backward,
		ForwardLotIDs:     forward,
		AffectedCustomers: customers,
	}

	if err := uc.Archive.ArchiveTraceabilitySnapshot(ctx, mongodb.TraceabilitySnapshotRecord{
		LotID:             report.LotID,
		BackwardLotIDs:    report.BackwardLotIDs,
		ForwardLotIDs:     report.ForwardLotIDs,
		AffectedCustomers: report.AffectedCustomers,
	}); err != nil {
		common.NewLoggerFromContext(ctx).Warnf("failed to archive traceability snapshot for lot %d: %v", lotID, err)
	}

	return report, nil
}
