package reader

import (
	"strings"

	"github.com/shopspring/decimal"

	"sharemax/models"
)

// Report renders one line per company, in listing order:
//
//	<company> : <value> on <month>,<year>
func Report(rs *ResultSet) string {
	var sb strings.Builder
	for _, rec := range rs.Records() {
		writeRecord(&sb, rec)
	}
	return sb.String()
}

func writeRecord(sb *strings.Builder, rec models.SharePrice) {
	sb.WriteString(rec.CompanyName)
	sb.WriteString(" : ")
	sb.WriteString(FormatValue(rec.Value))
	sb.WriteString(" on ")
	sb.WriteString(rec.Month)
	sb.WriteString(",")
	sb.WriteString(rec.Year)
	sb.WriteString("\n")
}

// FormatValue prints the shortest decimal form of v that reads back to the
// same float64, without exponent notation. Whole numbers keep one decimal
// place: 14 prints as 14.0.
func FormatValue(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Exponent() >= 0 {
		return d.StringFixed(1)
	}
	return d.String()
}
