package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFFormatter renders the report as an A4 document: assumptions, key ages, breakevens
// and the yearly ledger.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *Report
}

func (p PDFFormatter) Format(r *Report) ([]byte, error) {
	doc := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), report: r}
	doc.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	doc.pdf.SetTitle("Whole Life vs Buy Term & Invest", false)

	doc.addOverviewPage()
	if !r.Result.IsEmpty() {
		doc.addLedgerPages()
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *pdfReport) addOverviewPage() {
	r := d.report
	d.pdf.AddPage()

	d.pdf.SetFont("Arial", "B", 18)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(pdfContentWidth, 10, "Whole Life vs Buy Term & Invest the Difference", "", 1, "L", false, 0, "")
	d.pdf.SetFont("Arial", "I", 10)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated %s - values: %s",
		r.GeneratedAt.Format("2 January 2006"), r.View.Label()), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)

	d.drawSectionHeader("Key Assumptions")
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.SetTextColor(50, 50, 50)
	for _, a := range GenerateAssumptions(r.Config) {
		d.pdf.MultiCell(pdfContentWidth, 5, "- "+a, "", "L", false)
	}
	d.pdf.Ln(4)

	if r.Result.IsEmpty() {
		d.pdf.SetFont("Arial", "B", 11)
		d.pdf.CellFormat(pdfContentWidth, 8, "No projection available.", "", 1, "L", false, 0, "")
		return
	}

	d.drawSectionHeader("Key Age Snapshots")
	widths := []float64{20, 26, 26, 26, 26, 28, 28}
	d.drawTableHeader([]string{"Age", "WL Cash", "WL Estate", "BTID Invest", "BTID Estate", "Liquidity", "Estate"}, widths)
	for _, row := range BuildComparison(r.Result.Summary, r.View) {
		d.drawTableRow([]string{
			fmt.Sprintf("Age %d", row.Age),
			FormatCurrency(row.WholeLife.Liquidity, true),
			FormatCurrency(row.WholeLife.EstateValue, true),
			FormatCurrency(row.BTID.Liquidity, true),
			FormatCurrency(row.BTID.EstateValue, true),
			row.Liquidity.String(),
			row.Estate.String(),
		}, widths, false)
	}
	d.pdf.Ln(6)

	a := AnalyzeProjection(r)
	d.drawSectionHeader("Breakevens")
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	d.pdf.CellFormat(pdfContentWidth, 6, "Investment balance reaches WL cash value: "+a.InvestmentCross, "", 1, "L", false, 0, "")
	d.pdf.CellFormat(pdfContentWidth, 6, "WL death benefit reaches BTID total estate: "+a.DeathBenefitCross, "", 1, "L", false, 0, "")
	if a.TermLapseAge > 0 {
		d.pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Term coverage lapses at age %d", a.TermLapseAge), "", 1, "L", false, 0, "")
	}

	d.pdf.Ln(10)
	d.pdf.SetFont("Arial", "I", 8)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.MultiCell(pdfContentWidth, 4,
		"Illustrative projection only. Cash values are modeled, not taken from an insurer illustration, unless calibrated. This is not financial advice.",
		"", "L", false)
}

func (d *pdfReport) addLedgerPages() {
	d.pdf.AddPage()
	d.drawSectionHeader("Year-by-Year Ledger")

	headers := []string{"Age", "WL Prem", "Cash Value", "Death Ben", "Term", "Invested", "Balance", "Estate"}
	widths := []float64{14, 22, 25, 25, 12, 22, 30, 30}
	d.drawTableHeader(headers, widths)
	lapse := d.report.Result.TermLapseYear()
	for _, row := range d.report.LedgerRows() {
		if d.pdf.GetY() > 270 {
			d.pdf.AddPage()
			d.drawTableHeader(headers, widths)
		}
		d.drawTableRow([]string{
			intToString(row.Age),
			FormatCurrency(row.WLPremium, false),
			FormatCurrency(row.WLCashValue, false),
			FormatCurrency(row.WLDeathBenefit, false),
			yesNo(row.TermActive),
			FormatCurrency(row.Contribution, false),
			FormatCurrency(row.Investment, false),
			FormatCurrency(row.BTIDEstate, false),
		}, widths, row.Year == lapse)
	}
}

func (d *pdfReport) drawSectionHeader(title string) {
	d.pdf.SetFont("Arial", "B", 13)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(pdfContentWidth, 8, title, "", 1, "L", false, 0, "")
	d.pdf.SetDrawColor(0, 51, 102)
	d.pdf.Line(pdfMarginLeft, d.pdf.GetY(), pdfMarginLeft+pdfContentWidth, d.pdf.GetY())
	d.pdf.Ln(3)
}

func (d *pdfReport) drawTableHeader(headers []string, widths []float64) {
	d.pdf.SetFillColor(0, 51, 102)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Arial", "B", 8)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		d.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	d.pdf.SetFillColor(250, 250, 250)
	d.pdf.SetTextColor(50, 50, 50)

	if isBold {
		d.pdf.SetFont("Arial", "B", 8)
		d.pdf.SetFillColor(255, 243, 205)
	} else {
		d.pdf.SetFont("Arial", "", 8)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		d.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	d.pdf.Ln(-1)
}
