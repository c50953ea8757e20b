package report

import (
	"fmt"

	"github.com/signintech/gopdf"

	"a11ysentinel.io/sentinel/ent"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
)

const (
	pdfMarginLeft = 40.0
	pdfLineHeight = 16.0
	pdfPageBottom = 800.0
)

func (g *Generator) renderPDF(b *ent.Batch, scans []*ent.Scan) (*Export, error) {
	if g.fontPath == "" {
		return nil, apperrors.New(apperrors.CodeValidationFailed,
			"PDF export requires report.pdf_font_path to be configured", 422)
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFont(g.fontName, g.fontPath); err != nil {
		return nil, fmt.Errorf("load PDF font %s: %w", g.fontPath, err)
	}
	pdf.AddPage()

	write := func(size float64, text string) error {
		if pdf.GetY() > pdfPageBottom {
			pdf.AddPage()
			pdf.SetY(40)
		}
		if err := pdf.SetFont(g.fontName, "", size); err != nil {
			return err
		}
		pdf.SetX(pdfMarginLeft)
		if err := pdf.Cell(nil, text); err != nil {
			return err
		}
		pdf.Br(pdfLineHeight)
		return nil
	}

	lines := []struct {
		size float64
		text string
	}{
		{18, "Accessibility Scan Report"},
		{11, fmt.Sprintf("Batch %s", b.ID)},
		{11, fmt.Sprintf("Site: %s (WCAG %s)", b.HomepageURL, b.WcagLevel)},
		{11, fmt.Sprintf("Status: %s", b.Status)},
		{11, fmt.Sprintf("Pages: %d total, %d completed, %d failed", b.TotalUrls, b.CompletedCount, b.FailedCount)},
		{11, fmt.Sprintf("Issues: %d total (%d critical, %d serious, %d moderate, %d minor)",
			b.TotalIssues, b.CriticalIssues, b.SeriousIssues, b.ModerateIssues, b.MinorIssues)},
		{11, fmt.Sprintf("Passed checks: %d", b.PassedChecks)},
		{11, ""},
		{14, "Pages"},
	}
	for _, line := range lines {
		if err := write(line.size, line.text); err != nil {
			return nil, fmt.Errorf("render PDF header: %w", err)
		}
	}

	for _, s := range scans {
		summary := fmt.Sprintf("%s [%s] issues=%d critical=%d", s.URL, s.Status, s.TotalIssues, s.CriticalIssues)
		if s.ErrorMessage != "" {
			summary = fmt.Sprintf("%s [%s] error: %s", s.URL, s.Status, s.ErrorMessage)
		}
		if err := write(10, summary); err != nil {
			return nil, fmt.Errorf("render PDF row for scan %s: %w", s.ID, err)
		}
	}

	return &Export{
		ContentType: "application/pdf",
		Filename:    exportFilename(b.ID, "pdf"),
		Data:        pdf.GetBytesPdf(),
	}, nil
}
