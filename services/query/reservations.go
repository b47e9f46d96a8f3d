package query

import (
	"context"

	"github.com/foodtrace/lotcore/domain"
)

// ReservationsInput filters the reservations list (§4.10); zero LotID or
// CustomerID means unfiltered on that axis.
type ReservationsInput struct {
	LotID      int64
	CustomerID int64
	Limit      int
	Offset     int
}

// Reservations lists reservations, most-recent-first, filtered by lot or
// customer when given. A non-zero LotID takes precedence: the lot's
// reservations are returned without the CustomerID filter.
func (uc *UseCase) Reservations(ctx context.Context, input *ReservationsInput) ([]*domain.Reservation, error) {
	if input.LotID != 0 {
		return uc.ReservationRepo.ListByLot(ctx, input.LotID)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryPage
	}

	all, err := uc.ReservationRepo.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, err
	}

	if input.CustomerID == 0 {
		return all, nil
	}

	out := make([]*domain.Reservation, 0, len(all))

	for _, r := range all {
		if r.CustomerID == input.CustomerID {
			out = append(out, r)
		}
	}

	return out, nil
}
