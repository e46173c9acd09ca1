package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// WriteCSV writes a transaction table in CSV format: one header row of
// column names, then one row per record in table order. Null cells are
// empty, dates are ISO-8601, amounts keep two decimals.
func WriteCSV(out io.Writer, t *models.Table) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(t.Columns))
	for _, rec := range t.Rows {
		for i, col := range t.Columns {
			row[i] = formatCell(rec[col])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case models.Flow:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case int:
		return strconv.Itoa(val)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}
