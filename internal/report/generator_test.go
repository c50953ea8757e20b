package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/batch"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/config"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/testutil"
)

func seedBatch(t *testing.T, client *ent.Client) string {
	t.Helper()
	ctx := context.Background()
	const batchID = "batch-report-test"

	err := client.Batch.Create().
		SetID(batchID).
		SetHomepageURL("https://example.com").
		SetWcagLevel(batch.WcagLevelAA).
		SetStatus(batch.StatusCOMPLETED).
		SetTotalUrls(2).
		SetCompletedCount(1).
		SetFailedCount(1).
		SetTotalIssues(7).
		SetCriticalIssues(2).
		SetSeriousIssues(3).
		SetModerateIssues(1).
		SetMinorIssues(1).
		SetPassedChecks(40).
		SetCreatedBy("admin").
		Exec(ctx)
	require.NoError(t, err)

	err = client.Scan.Create().
		SetID("scan-report-1").
		SetBatchID(batchID).
		SetURL("https://example.com/").
		SetPageTitle("Example").
		SetStatus(entscan.StatusCOMPLETED).
		SetTotalIssues(7).
		SetCriticalIssues(2).
		SetSeriousIssues(3).
		SetModerateIssues(1).
		SetMinorIssues(1).
		SetPassedChecks(40).
		Exec(ctx)
	require.NoError(t, err)

	err = client.Scan.Create().
		SetID("scan-report-2").
		SetBatchID(batchID).
		SetURL("https://example.com/contact").
		SetStatus(entscan.StatusFAILED).
		SetErrorMessage("connection refused").
		Exec(ctx)
	require.NoError(t, err)

	return batchID
}

func TestExportBatch_JSON(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEntPostgres(t, "report")
	batchID := seedBatch(t, client)
	g := NewGenerator(client, config.ReportConfig{})

	export, err := g.ExportBatch(ctx, batchID, FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "application/json", export.ContentType)
	require.Contains(t, export.Filename, ".json")

	var report jsonReport
	require.NoError(t, json.Unmarshal(export.Data, &report))
	require.Equal(t, batchID, report.BatchID)
	require.Equal(t, 7, report.TotalIssues)
	require.Len(t, report.Scans, 2)
	require.Equal(t, "connection refused", report.Scans[1].ErrorMessage)
}

func TestExportBatch_CSV(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEntPostgres(t, "report")
	batchID := seedBatch(t, client)
	g := NewGenerator(client, config.ReportConfig{})

	export, err := g.ExportBatch(ctx, batchID, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", export.ContentType)

	records, err := csv.NewReader(strings.NewReader(string(export.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 scans
	require.Equal(t, "scan_id", records[0][0])
	require.Equal(t, "https://example.com/", records[1][1])
	require.Equal(t, "FAILED", records[2][3])
}

func TestExportBatch_PDFWithoutFont(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEntPostgres(t, "report")
	batchID := seedBatch(t, client)
	g := NewGenerator(client, config.ReportConfig{})

	_, err := g.ExportBatch(ctx, batchID, FormatPDF)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestExportBatch_UnknownBatchAndFormat(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEntPostgres(t, "report")
	g := NewGenerator(client, config.ReportConfig{})

	_, err := g.ExportBatch(ctx, "batch-missing", FormatJSON)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBatchNotFound, appErr.Code)

	batchID := seedBatch(t, client)
	_, err = g.ExportBatch(ctx, batchID, Format("xml"))
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
