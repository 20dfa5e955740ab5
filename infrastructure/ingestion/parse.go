package ingestion

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"2006-01",
	"01/2006",
}

// Limites do calendário 1900 do Excel (01/01/1900 a 31/12/9999)
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// ParseDate interpreta datas textuais e seriais do Excel, sempre em UTC
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial < minExcelSerial || serial > maxExcelSerial {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC().Round(time.Second), true
}

// ParseRevenue converte valores como "1.234,56", "1,234.56", "R$ 980" ou "1.2E+5".
// Apenas valores estritamente positivos são aceitos.
func ParseRevenue(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		d, err = decimal.NewFromString(normalizeNumber(s))
		if err != nil {
			return 0, false
		}
	}
	if !d.IsPositive() {
		return 0, false
	}

	f, _ := d.Float64()
	return f, true
}

func normalizeNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	n := b.String()

	lastComma := strings.LastIndex(n, ",")
	lastDot := strings.LastIndex(n, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		// o separador mais à direita é o decimal
		if lastComma > lastDot {
			n = strings.ReplaceAll(n, ".", "")
			n = strings.Replace(n, ",", ".", 1)
		} else {
			n = strings.ReplaceAll(n, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(n, ",") > 1 {
			n = strings.ReplaceAll(n, ",", "")
		} else {
			n = strings.Replace(n, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(n, ".") > 1 {
			n = strings.ReplaceAll(n, ".", "")
		}
	}
	return n
}
