package handler

import (
	"bytes"
	"fmt"
	"fxdash/internal/series"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"
)

const (
	pdfMargin    = 14.0
	pdfDateWidth = 28.0
	pdfRowHeight = 6.0
)

// ExportTablePDF godoc
// @Summary PDF export
// @Description Grid rows as a PDF table with title, export date and record count
// @Tags Rates
// @Produce application/pdf
// @Param base query string false "Base currency" default(EUR)
// @Param symbols query string false "Comma separated quote currencies" default(USD,CAD)
// @Param range query string false "Date range" Enums(6m, 1y, 2y) default(1y)
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/table.pdf [get]
func (h *Handler) ExportTablePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Table(r.Context(), q)
	if err != nil {
		writeFetchError(w, err, "ExportTablePDF", q)
		return
	}

	// rendered up front so a failure can still be reported as 500
	var buf bytes.Buffer
	if err = writePDF(&buf, rows, h.now()); err != nil {
		msg := "failed to render pdf"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ExportTablePDF", "base": q.Base}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="exchange-rates-%s.pdf"`, q.Name()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func writePDF(out io.Writer, rows []series.TableRow, exportedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pdfMargin, 18, "Exchange Rates")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Text(pdfMargin, 25, fmt.Sprintf("Exported %s  |  %d records", exportedAt.Format("2006-01-02"), len(rows)))
	pdf.SetY(30)

	columns := series.TableColumns(rows)
	pageWidth, pageHeight := pdf.GetPageSize()
	widths := columnWidths(len(columns), pageWidth-2*pdfMargin)

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(30, 41, 59)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range columns {
			pdf.CellFormat(widths[i], pdfRowHeight+1, columnTitle(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	for _, row := range rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		pdf.CellFormat(widths[0], pdfRowHeight, row.Date, "1", 0, "L", false, 0, "")
		for i, col := range columns[1:] {
			cell := ""
			if v, found := row.Value(col); found {
				cell = strconv.FormatFloat(v, 'f', -1, 64)
			}
			pdf.CellFormat(widths[i+1], pdfRowHeight, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(out)
}

func columnWidths(n int, total float64) []float64 {
	widths := make([]float64, n)
	widths[0] = pdfDateWidth
	if n == 1 {
		widths[0] = total
		return widths
	}
	rest := (total - pdfDateWidth) / float64(n-1)
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}

// columnTitle turns a column key into the grid header, EUR_USD -> EUR/USD.
func columnTitle(col string) string {
	if col == series.DateColumn {
		return "Date"
	}
	return strings.Replace(col, "_", "/", 1)
}
