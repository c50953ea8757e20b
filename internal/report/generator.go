// Package report renders batch scan results for export. JSON and CSV
// are assembled in-process; PDF rendering uses gopdf and requires a
// TTF font configured at deploy time.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"a11ysentinel.io/sentinel/ent"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/config"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
)

// Format selects the export rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// Export is a rendered batch report.
type Export struct {
	ContentType string
	Filename    string
	Data        []byte
}

// Generator renders batch exports.
type Generator struct {
	entClient *ent.Client
	fontPath  string
	fontName  string
}

// NewGenerator creates a report Generator.
func NewGenerator(entClient *ent.Client, cfg config.ReportConfig) *Generator {
	fontName := cfg.PDFFontName
	if fontName == "" {
		fontName = "report-font"
	}
	return &Generator{
		entClient: entClient,
		fontPath:  cfg.PDFFontPath,
		fontName:  fontName,
	}
}

// ExportBatch renders one batch with all of its scans.
func (g *Generator) ExportBatch(ctx context.Context, batchID string, format Format) (*Export, error) {
	b, err := g.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrBatchNotFoundf(batchID)
		}
		return nil, fmt.Errorf("fetch batch %s: %w", batchID, err)
	}
	scans, err := g.entClient.Scan.Query().
		Where(entscan.BatchIDEQ(batchID)).
		Order(ent.Asc(entscan.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch scans for batch %s: %w", batchID, err)
	}

	switch format {
	case FormatJSON:
		return g.renderJSON(b, scans)
	case FormatCSV:
		return g.renderCSV(b, scans)
	case FormatPDF:
		return g.renderPDF(b, scans)
	default:
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			fmt.Sprintf("unsupported export format %q", format))
	}
}

type jsonScan struct {
	ScanID         string `json:"scan_id"`
	URL            string `json:"url"`
	PageTitle      string `json:"page_title,omitempty"`
	Status         string `json:"status"`
	TotalIssues    int    `json:"total_issues"`
	CriticalIssues int    `json:"critical_issues"`
	SeriousIssues  int    `json:"serious_issues"`
	ModerateIssues int    `json:"moderate_issues"`
	MinorIssues    int    `json:"minor_issues"`
	PassedChecks   int    `json:"passed_checks"`
	ErrorMessage   string `json:"error_message,omitempty"`
	CompletedAt    string `json:"completed_at,omitempty"`
}

type jsonReport struct {
	BatchID        string     `json:"batch_id"`
	HomepageURL    string     `json:"homepage_url"`
	WCAGLevel      string     `json:"wcag_level"`
	Status         string     `json:"status"`
	TotalURLs      int        `json:"total_urls"`
	CompletedCount int        `json:"completed_count"`
	FailedCount    int        `json:"failed_count"`
	TotalIssues    int        `json:"total_issues"`
	CriticalIssues int        `json:"critical_issues"`
	SeriousIssues  int        `json:"serious_issues"`
	ModerateIssues int        `json:"moderate_issues"`
	MinorIssues    int        `json:"minor_issues"`
	PassedChecks   int        `json:"passed_checks"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      string     `json:"created_at"`
	GeneratedAt    string     `json:"generated_at"`
	Scans          []jsonScan `json:"scans"`
}

func (g *Generator) renderJSON(b *ent.Batch, scans []*ent.Scan) (*Export, error) {
	report := jsonReport{
		BatchID:        b.ID,
		HomepageURL:    b.HomepageURL,
		WCAGLevel:      b.WcagLevel.String(),
		Status:         b.Status.String(),
		TotalURLs:      b.TotalUrls,
		CompletedCount: b.CompletedCount,
		FailedCount:    b.FailedCount,
		TotalIssues:    b.TotalIssues,
		CriticalIssues: b.CriticalIssues,
		SeriousIssues:  b.SeriousIssues,
		ModerateIssues: b.ModerateIssues,
		MinorIssues:    b.MinorIssues,
		PassedChecks:   b.PassedChecks,
		CreatedBy:      b.CreatedBy,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Scans:          make([]jsonScan, 0, len(scans)),
	}
	for _, s := range scans {
		row := jsonScan{
			ScanID:         s.ID,
			URL:            s.URL,
			PageTitle:      s.PageTitle,
			Status:         s.Status.String(),
			TotalIssues:    s.TotalIssues,
			CriticalIssues: s.CriticalIssues,
			SeriousIssues:  s.SeriousIssues,
			ModerateIssues: s.ModerateIssues,
			MinorIssues:    s.MinorIssues,
			PassedChecks:   s.PassedChecks,
			ErrorMessage:   s.ErrorMessage,
		}
		if s.CompletedAt != nil {
			row.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339)
		}
		report.Scans = append(report.Scans, row)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON report: %w", err)
	}
	return &Export{
		ContentType: "application/json",
		Filename:    exportFilename(b.ID, "json"),
		Data:        data,
	}, nil
}

func (g *Generator) renderCSV(b *ent.Batch, scans []*ent.Scan) (*Export, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"scan_id", "url", "page_title", "status",
		"total_issues", "critical_issues", "serious_issues",
		"moderate_issues", "minor_issues", "passed_checks", "error_message",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}
	for _, s := range scans {
		record := []string{
			s.ID, s.URL, s.PageTitle, s.Status.String(),
			strconv.Itoa(s.TotalIssues), strconv.Itoa(s.CriticalIssues),
			strconv.Itoa(s.SeriousIssues), strconv.Itoa(s.ModerateIssues),
			strconv.Itoa(s.MinorIssues), strconv.Itoa(s.PassedChecks),
			s.ErrorMessage,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV row for scan %s: %w", s.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV report: %w", err)
	}
	return &Export{
		ContentType: "text/csv",
		Filename:    exportFilename(b.ID, "csv"),
		Data:        buf.Bytes(),
	}, nil
}

func exportFilename(batchID, ext string) string {
	stamp := time.Now().UTC().Format("20060102-150405")
	return fmt.Sprintf("%s-%s.%s", strings.TrimPrefix(batchID, "batch-"), stamp, ext)
}
