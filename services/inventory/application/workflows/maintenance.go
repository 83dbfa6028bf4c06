// Package workflows holds the Temporal workflow and activities for intake
// session maintenance: expiring overdue Open sessions and purging terminal
// sessions past retention. The worker registers these when Temporal
// scheduling is enabled; otherwise a plain ticker loop in the worker calls
// the same service methods.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
)

// MaintenanceTaskQueue is the Temporal task queue for session maintenance.
const MaintenanceTaskQueue = "inventory-maintenance"

// MaintenanceResult reports what one maintenance run did.
type MaintenanceResult struct {
	Swept  int `json:"swept"`
	Purged int `json:"purged"`
}

// MaintenanceActivities exposes the session maintenance operations as
// Temporal activities.
type MaintenanceActivities struct {
	Sessions *appsvcs.SessionService
}

// SweepExpiredSessions expires one batch of overdue Open sessions.
func (a *MaintenanceActivities) SweepExpiredSessions(ctx context.Context) (int, error) {
	return a.Sessions.SweepExpired(ctx)
}

// PurgeOldSessions removes one batch of terminal sessions past retention.
func (a *MaintenanceActivities) PurgeOldSessions(ctx context.Context) (int, error) {
	return a.Sessions.PurgeOld(ctx)
}

// SessionMaintenanceWorkflow runs one sweep batch followed by one purge
// batch. Scheduled as a cron workflow; each run handles a bounded batch so a
// large backlog drains over successive runs instead of one long transaction.
func SessionMaintenanceWorkflow(ctx workflow.Context) (MaintenanceResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var result MaintenanceResult
	var a *MaintenanceActivities

	if err := workflow.ExecuteActivity(ctx, a.SweepExpiredSessions).Get(ctx, &result.Swept); err != nil {
		return result, err
	}
	if err := workflow.ExecuteActivity(ctx, a.PurgeOldSessions).Get(ctx, &result.Purged); err != nil {
		return result, err
	}
	return result, nil
}
