package reader

import (
	"math"

	"github.com/shopspring/decimal"

	"sharemax/models"
)

// CellOutcome is the result of offering one company cell to a ResultSet.
type CellOutcome int

const (
	CellJunk     CellOutcome = iota // missing field or unparsable value, discarded
	CellInserted                    // first value for the company
	CellReplaced                    // strictly greater than the previous maximum
	CellKept                        // not greater, previous maximum stays
)

func (o CellOutcome) String() string {
	switch o {
	case CellInserted:
		return "inserted"
	case CellReplaced:
		return "replaced"
	case CellKept:
		return "kept"
	default:
		return "junk"
	}
}

// ResultSet holds the running maximum per company. Companies are listed in
// the order they were declared (header order), or first offered when they
// were never declared.
type ResultSet struct {
	order   []string
	records map[string]*models.SharePrice
	known   map[string]bool
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		records: make(map[string]*models.SharePrice),
		known:   make(map[string]bool),
	}
}

// Declare fixes the listing position of the given companies without
// recording a value for them.
func (rs *ResultSet) Declare(companies ...string) {
	for _, c := range companies {
		if c == "" || rs.known[c] {
			continue
		}
		rs.known[c] = true
		rs.order = append(rs.order, c)
	}
}

// Offer applies one cell to the running maximum of company. Ties keep the
// record that was seen first.
func (rs *ResultSet) Offer(company, year, month, raw string) CellOutcome {
	if company == "" || raw == "" {
		return CellJunk
	}

	value, ok := parseValue(raw)
	if !ok {
		return CellJunk
	}

	rs.Declare(company)
	current, exists := rs.records[company]
	if exists && !(value > current.Value) {
		return CellKept
	}

	rs.records[company] = &models.SharePrice{
		CompanyName: company,
		Year:        year,
		Month:       month,
		Value:       value,
	}
	if exists {
		return CellReplaced
	}
	return CellInserted
}

// parseValue accepts plain and exponent decimal notation only. NaN,
// infinities, hex floats and values overflowing float64 are rejected.
func parseValue(raw string) (float64, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, false
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Get returns the current maximum of company.
func (rs *ResultSet) Get(company string) (models.SharePrice, bool) {
	rec, ok := rs.records[company]
	if !ok {
		return models.SharePrice{}, false
	}
	return *rec, true
}

// Len is the number of companies with a recorded value.
func (rs *ResultSet) Len() int { return len(rs.records) }

// Records returns the recorded maxima in listing order. Declared companies
// without any valid value are left out.
func (rs *ResultSet) Records() []models.SharePrice {
	out := make([]models.SharePrice, 0, len(rs.records))
	for _, c := range rs.order {
		if rec, ok := rs.records[c]; ok {
			out = append(out, *rec)
		}
	}
	return out
}

// Junk counts the malformed input found during one run.
type Junk struct {
	Header bool // header missing or too short
	Rows   int  // rows skipped for a wrong field count
	Cells  int  // cells discarded for a missing or non-numeric value
}

func (j *Junk) Found() bool {
	return j.Header || j.Rows > 0 || j.Cells > 0
}
