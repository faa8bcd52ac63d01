package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// LedgerDisplay is the normalized display object handed to the renderer. The
// core builds it; it carries no persistence identifiers beyond the reference.
type LedgerDisplay struct {
	ReferenceID      string
	Type             string
	CompanyID        string
	LedgerDate       time.Time
	SubTotalAmount   float64
	DiscountAmount   float64
	AdjustmentAmount float64
	Amount           float64
	Lines            []DisplayLine
}

type DisplayLine struct {
	Description string
	Hours       float64
	Rate        float64
	Amount      float64
}

// Renderer turns a display object into a rendered artifact and returns its
// URL or path.
type Renderer interface {
	Render(ctx context.Context, d LedgerDisplay) (string, error)
}

// PDFRenderer writes a minimal PDF per ledger into an output directory.
type PDFRenderer struct{ outDir string }

func NewPDFRenderer(outDir string) *PDFRenderer { return &PDFRenderer{outDir: outDir} }

func (r *PDFRenderer) Render(_ context.Context, d LedgerDisplay) (string, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", err
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	title := "Invoice"
	if strings.EqualFold(d.Type, "bill") {
		title = "Bill"
	}
	pdf.Cell(0, 8, fmt.Sprintf("%s %s", title, d.ReferenceID))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Company: %s", d.CompanyID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", d.LedgerDate.Format("2006-01-02")))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 6, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Hours", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Rate", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, line := range d.Lines {
		pdf.CellFormat(90, 6, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", line.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", line.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", line.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Sub total: %.2f", d.SubTotalAmount))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Discount: %.2f", d.DiscountAmount))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Adjustment: %.2f", d.AdjustmentAmount))
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %.2f", d.Amount))

	path := filepath.Join(r.outDir, d.ReferenceID+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
