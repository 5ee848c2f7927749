// Command cleanup_outbox prunes delivered and dead-lettered events from the
// outbox table. Meant to run as a periodic job.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"github.com/avick-dev/bizmarket-service/internal/models/m_outbox"
)

type config struct {
	spannerDB              string
	completedRetentionDays int
	failedRetentionDays    int
	dryRun                 bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config{}
	flag.StringVar(&cfg.spannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&cfg.completedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&cfg.failedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if cfg.spannerDB == "" {
		log.Fatal().Msg("-database flag is required")
	}

	if err := cleanupOutbox(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("Cleanup failed")
	}

	log.Info().Msg("Cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, cfg config) error {
	client, err := spanner.NewClient(ctx, cfg.spannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -cfg.completedRetentionDays)
	failedCutoff := now.AddDate(0, 0, -cfg.failedRetentionDays)

	log.Info().
		Time("completed_cutoff", completedCutoff).
		Time("failed_cutoff", failedCutoff).
		Bool("dry_run", cfg.dryRun).
		Msg("Starting outbox cleanup")

	if cfg.dryRun {
		return dryRunCleanup(ctx, client, completedCutoff, failedCutoff)
	}
	return performCleanup(ctx, client, completedCutoff, failedCutoff)
}

func cutoffParams(completedCutoff, failedCutoff time.Time) map[string]interface{} {
	return map[string]interface{}{
		"completedStatus": m_outbox.StatusCompleted,
		"completedCutoff": completedCutoff,
		"failedStatus":    m_outbox.StatusFailed,
		"failedCutoff":    failedCutoff,
	}
}

const cutoffPredicate = `(status = @completedStatus AND processed_at < @completedCutoff)
		   OR (status = @failedStatus AND processed_at < @failedCutoff)`

func dryRunCleanup(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time) error {
	stmt := spanner.Statement{
		SQL: `SELECT status, COUNT(*) AS count FROM outbox_events
		WHERE ` + cutoffPredicate + `
		GROUP BY status`,
		Params: cutoffParams(completedCutoff, failedCutoff),
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	total := int64(0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to query events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return fmt.Errorf("failed to parse row: %w", err)
		}

		log.Info().Str("status", status).Int64("count", count).Msg("Would delete events")
		total += count
	}

	log.Info().Int64("total", total).Msg("Dry run complete; run without --dry-run to delete")
	return nil
}

func performCleanup(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time) error {
	stmt := spanner.Statement{
		SQL:    `DELETE FROM outbox_events WHERE ` + cutoffPredicate,
		Params: cutoffParams(completedCutoff, failedCutoff),
	}

	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		rowCount, err := txn.Update(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		log.Info().Int64("deleted", rowCount).Msg("Deleted old events")
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}
	return nil
}
