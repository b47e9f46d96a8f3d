// Package traceability implements the Traceability Engine's closure walks
// over the production DAG (§4.3), shared by the command-side recall action
// and the read-side recall report so both compute identical results.
package traceability

import (
	"context"

	"github.com/foodtrace/lotcore/adapters/postgres"
)

// BackwardClosure returns the transitive union of input lots reached by
// walking (lotID = output of order O) → (inputs of O), repeated until no new
// lot is discovered. lotID itself is never included in the result.
func BackwardClosure(ctx context.Context, prod postgres.ProductionRepository, lotID int64) ([]int64, error) {
	return walk(ctx, lotID, prod.OrdersWithLotAsOutput, prod.InputLotsByOrders)
}

// ForwardClosure returns the transitive union of output lots reached by
// walking (lotID = input of order O) → (outputs of O), repeated until no new
// lot is discovered. lotID itself is never included in the result.
func ForwardClosure(ctx context.Context, prod postgres.ProductionRepository, lotID int64) ([]int64, error) {
	return walk(ctx, lotID, prod.OrdersWithLotAsInput, prod.OutputLotsByOrders)
}

// walk implements the fixed-point closure with a work set and a visited set,
// per §4.4: each round resolves the current frontier's lot ids to orders via
// ordersOf, then the orders to the next frontier of lot ids via lotsOf,
// stopping when a round contributes nothing new.
func walk(
	ctx context.Context,
	lotID int64,
	ordersOf func(ctx context.Context, lotIDs []int64) (map[int64][]int64, error),
	lotsOf func(ctx context.Context, orderIDs []int64) ([]int64, error),
) ([]int64, error) {
	visited := map[int64]bool{lotID: true}
	frontier := []int64{lotID}

	var result []int64

	for len(frontier) > 0 {
		orderSets, err := ordersOf(ctx, frontier)
		if err != nil {
			return nil, err
		}

		var orderIDs []int64

		seenOrder := map[int64]bool{}

		for _, orders := range orderSets {
			for _, o := range orders {
				if !seenOrder[o] {
					seenOrder[o] = true

					orderIDs = append(orderIDs, o)
				}
			}
		}

		if len(orderIDs) == 0 {
			break
		}

		nextLots, err := lotsOf(ctx, orderIDs)
		if err != nil {
			return nil, err
		}

		var next []int64

		for _, l := range nextLots {
			if !visited[l] {
				visited[l] = true

				result = append(result, l)
				next = append(next, l)
			}
		}

		frontier = next
	}

	return result, nil
}

// AffectedCustomers returns the distinct customer ids whose sale lines
// reference lotID or any lot in its forward closure, per §4.3.
func AffectedCustomers(ctx context.Context, prod postgres.ProductionRepository, sale postgres.SaleRepository, lotID int64) ([]int64, []int64, error) {
	forward, err := ForwardClosure(ctx, prod, lotID)
	if err != nil {
		return nil, nil, err
	}

	lotIDs := append([]int64{lotID}, forward...)

	byLot, err := sale.CustomersByLots(ctx, lotIDs)
	if err != nil {
		return nil, nil, err
	}

	seen := map[int64]bool{}

	var customers []int64

	for _, ids := range byLot {
		for _, c := range ids {
			if !seen[c] {
				seen[c] = true

				customers = append(customers, c)
			}
		}
	}

	return customers, forward, nil
}
