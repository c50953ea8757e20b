package aiqueue

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// ExportRow is one claimed entry serialized for offline processing.
type ExportRow struct {
	ScanID          string
	URL             string
	ContentSnapshot string
}

// ExportPending atomically claims up to limit PENDING entries,
// transitioning them to DOWNLOADED. Claiming uses row locks with
// SKIP LOCKED, so two concurrent exports can never return overlapping
// scans. An empty queue yields an empty slice, not an error.
func (p *Processor) ExportPending(ctx context.Context, limit int, actor string) ([]ExportRow, error) {
	if limit <= 0 || limit > p.exportBatchSize {
		limit = p.exportBatchSize
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		WITH claimed AS (
			SELECT id FROM ai_queue_entries
			WHERE ai_status = 'PENDING'
			ORDER BY created_at, id
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE ai_queue_entries e SET ai_status = 'DOWNLOADED', updated_at = now()
		FROM claimed
		WHERE e.id = claimed.id
		RETURNING e.scan_id`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("claim pending entries: %w", err)
	}
	var scanIDs []string
	for rows.Next() {
		var scanID string
		if err := rows.Scan(&scanID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan claimed entry: %w", err)
		}
		scanIDs = append(scanIDs, scanID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed entries: %w", err)
	}

	export := make([]ExportRow, 0, len(scanIDs))
	if len(scanIDs) > 0 {
		scanRows, err := tx.Query(ctx, `
			SELECT id, url, COALESCE(content_snapshot, '')
			FROM scans WHERE id = ANY($1)
			ORDER BY id`,
			scanIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("load scan content for export: %w", err)
		}
		for scanRows.Next() {
			var row ExportRow
			if err := scanRows.Scan(&row.ScanID, &row.URL, &row.ContentSnapshot); err != nil {
				scanRows.Close()
				return nil, fmt.Errorf("scan export row: %w", err)
			}
			export = append(export, row)
		}
		scanRows.Close()
		if err := scanRows.Err(); err != nil {
			return nil, fmt.Errorf("iterate export rows: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit export tx: %w", err)
	}

	if len(export) > 0 {
		p.dispatch(ctx, domain.EventAiBatchExported, actor, domain.AiQueueEventPayload{ScanIDs: scanIDs})
		logger.Info("AI queue entries exported",
			zap.Int("claimed", len(export)),
			zap.String("actor", actor),
		)
	}
	return export, nil
}

// WriteExportCSV serializes export rows with a header line.
func WriteExportCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"scan_id", "url", "content_snapshot"}); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.ScanID, row.URL, row.ContentSnapshot}); err != nil {
			return fmt.Errorf("write export row for %s: %w", row.ScanID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
