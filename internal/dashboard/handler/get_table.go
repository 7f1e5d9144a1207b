package handler

import (
	"encoding/csv"
	"fmt"
	"fxdash/internal/series"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// GetTable godoc
// @Summary Grid rows
// @Description One flat row per date with forward and reciprocal rates rounded to 6 decimals
// @Tags Rates
// @Produce json
// @Param base query string false "Base currency" default(EUR)
// @Param symbols query string false "Comma separated quote currencies" default(USD,CAD)
// @Param range query string false "Date range" Enums(6m, 1y, 2y) default(1y)
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} object
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /rates/table [get]
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Table(r.Context(), q)
	if err != nil {
		writeFetchError(w, err, "GetTable", q)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// ExportTableCSV godoc
// @Summary CSV export
// @Description Grid rows as CSV, values written exactly as shown in the grid
// @Tags Rates
// @Produce text/csv
// @Param base query string false "Base currency" default(EUR)
// @Param symbols query string false "Comma separated quote currencies" default(USD,CAD)
// @Param range query string false "Date range" Enums(6m, 1y, 2y) default(1y)
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /rates/table.csv [get]
func (h *Handler) ExportTableCSV(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Table(r.Context(), q)
	if err != nil {
		writeFetchError(w, err, "ExportTableCSV", q)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="exchange-rates-%s.csv"`, q.Name()))
	w.WriteHeader(http.StatusOK)

	if err = writeCSV(csv.NewWriter(w), rows); err != nil {
		// headers are gone already, the client sees a truncated file
		logrus.WithError(err).WithField("handler", "ExportTableCSV").Error("failed to write csv")
	}
}

func writeCSV(cw *csv.Writer, rows []series.TableRow) error {
	columns := series.TableColumns(rows)
	if err := cw.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		record[0] = row.Date
		for i, col := range columns[1:] {
			record[i+1] = ""
			if v, ok := row.Value(col); ok {
				record[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
