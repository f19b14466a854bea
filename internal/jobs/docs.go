// Package jobs provides scheduled background tasks for the ride-order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to automate recurring operations:
//
//   - ScheduledOrderActivationJob: promotes pending orders whose scheduled
//     pickup time has passed to the searching status (runs every minute)
//
// Jobs are coordinated through the JobManager, which provides unified
// lifecycle management. Each job logs through a component-scoped slog logger
// and delegates the actual work to an application command handler.
package jobs
