package aiqueue

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// importColumns is the expected CSV layout for result uploads. The
// trailing error_message column is optional.
var importColumns = []string{"scan_id", "status", "input_tokens", "output_tokens", "model", "processing_ms", "error_message"}

// RowError records one rejected import row.
type RowError struct {
	Line    int    `json:"line"`
	ScanID  string `json:"scan_id,omitempty"`
	Message string `json:"message"`
}

// ImportSummary is the outcome of one result upload. Partial failure is
// the normal case: a malformed row never aborts the rest of the file.
type ImportSummary struct {
	Processed      int        `json:"processed"`
	Failed         int        `json:"failed"`
	Errors         []RowError `json:"errors,omitempty"`
	TokensDeducted int64      `json:"tokens_deducted"`
	// Code is PARTIAL_FAILURE when the upload mixed applied and
	// rejected rows.
	Code string `json:"code,omitempty"`
}

type importRow struct {
	scanID       string
	succeeded    bool
	usage        domain.TokenUsage
	errorMessage string
}

// ImportResults processes a CSV of offline AI results row by row. Each
// row is independent: it is validated, its queue entry moved to
// COMPLETED or FAILED, its reservation settled against the budget, and
// its outcome replayed into the batch lifecycle (a no-op for scans that
// already settled). Row-level failures are collected, never propagated.
func (p *Processor) ImportResults(ctx context.Context, r io.Reader, actor string) (*ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	summary := &ImportSummary{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, RowError{Line: line, Message: fmt.Sprintf("malformed CSV row: %v", err)})
			continue
		}
		if line == 1 && isHeaderRow(record) {
			line--
			continue
		}

		row, parseErr := parseImportRow(record)
		if parseErr != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, RowError{Line: line, ScanID: safeField(record, 0), Message: parseErr.Error()})
			continue
		}

		deducted, rowErr := p.applyResult(ctx, row)
		if rowErr != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, RowError{Line: line, ScanID: row.scanID, Message: rowErr.Error()})
			continue
		}
		summary.Processed++
		summary.TokensDeducted += deducted
	}

	if summary.Processed > 0 && summary.Failed > 0 {
		summary.Code = apperrors.CodePartialFailure
	}

	p.dispatch(ctx, domain.EventAiResultsImported, actor, domain.AiQueueEventPayload{
		Processed: summary.Processed,
		Failed:    summary.Failed,
	})
	logger.Info("AI results imported",
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int64("tokens_deducted", summary.TokensDeducted),
		zap.String("actor", actor),
	)
	return summary, nil
}

// applyResult moves one entry to its terminal state and settles its
// reservation. The guarded update admits only DOWNLOADED/PROCESSING
// entries, so replays and unknown scans surface as row errors.
func (p *Processor) applyResult(ctx context.Context, row importRow) (int64, error) {
	status := "FAILED"
	if row.succeeded {
		status = "COMPLETED"
	}

	var reservationID string
	err := p.pool.QueryRow(ctx, `
		UPDATE ai_queue_entries SET
			ai_status = $2,
			ai_input_tokens = $3, ai_output_tokens = $4, ai_total_tokens = $5,
			ai_model = $6, ai_processing_ms = $7,
			ai_processed_at = now(), updated_at = now()
		WHERE scan_id = $1 AND ai_status IN ('DOWNLOADED', 'PROCESSING')
		RETURNING reservation_id`,
		row.scanID, status,
		row.usage.InputTokens, row.usage.OutputTokens, row.usage.Total(),
		row.usage.Model, row.usage.ProcessingMS,
	).Scan(&reservationID)
	if err != nil {
		if isNoRows(err) {
			return 0, fmt.Errorf("scan %s has no importable queue entry", row.scanID)
		}
		return 0, fmt.Errorf("record result for scan %s: %w", row.scanID, err)
	}

	deducted := int64(0)
	if err := p.budget.Settle(ctx, reservationID, row.usage.Total(), row.succeeded); err != nil {
		// An already-released reservation is fine: cancel or sweep got
		// there first and the budget is already consistent.
		if appErr, ok := apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeQueueEntryNotFound {
			return 0, fmt.Errorf("settle reservation for scan %s: %w", row.scanID, err)
		}
	} else if row.succeeded {
		deducted = row.usage.Total()
	}

	if p.lifecycle != nil {
		outcome := domain.ScanOutcome{
			ScanID:       row.scanID,
			Succeeded:    row.succeeded,
			ErrorMessage: row.errorMessage,
			FinishedAt:   time.Now().UTC(),
		}
		if err := p.lifecycle.OnScanCompleted(ctx, outcome); err != nil {
			logger.Warn("failed to replay AI outcome into batch lifecycle",
				zap.String("scan_id", row.scanID),
				zap.Error(err),
			)
		}
	}
	return deducted, nil
}

func parseImportRow(record []string) (importRow, error) {
	if len(record) < 6 {
		return importRow{}, fmt.Errorf("expected at least 6 columns, got %d", len(record))
	}

	row := importRow{scanID: strings.TrimSpace(record[0])}
	if row.scanID == "" {
		return importRow{}, fmt.Errorf("scan_id is empty")
	}

	switch strings.ToUpper(strings.TrimSpace(record[1])) {
	case "COMPLETED":
		row.succeeded = true
	case "FAILED":
		row.succeeded = false
	default:
		return importRow{}, fmt.Errorf("status %q is not COMPLETED or FAILED", record[1])
	}

	inputTokens, err := parseTokens(record[2], "input_tokens")
	if err != nil {
		return importRow{}, err
	}
	outputTokens, err := parseTokens(record[3], "output_tokens")
	if err != nil {
		return importRow{}, err
	}
	processingMS, err := parseTokens(record[5], "processing_ms")
	if err != nil {
		return importRow{}, err
	}

	row.usage = domain.TokenUsage{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		Model:        strings.TrimSpace(record[4]),
		ProcessingMS: processingMS,
	}
	if len(record) > 6 {
		row.errorMessage = strings.TrimSpace(record[6])
	}
	return row, nil
}

func parseTokens(raw, column string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", column, raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", column, value)
	}
	return value, nil
}

func isHeaderRow(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), importColumns[0])
}

func safeField(record []string, i int) string {
	if i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
