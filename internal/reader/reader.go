// Package reader finds the maximum share price of every company listed in a
// CSV file laid out as:
//
//	Year, Month, CompanyA, CompanyB, ..., CompanyN
//	2000, Jan, 15, 14, ..., 17
//
// Lines starting with the comment marker are ignored anywhere in the file.
// Rows with the wrong number of fields, rows over the line size limit and
// cells that are not numbers are counted as junk and skipped; they never
// abort the run.
package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sharemax/internal/utils"
)

// JunkWarning is printed before the results when any junk was skipped.
const JunkWarning = "Junk data found while reading the file, Please check contents"

// Result is the outcome of reading one file.
type Result struct {
	Header []string
	Prices *ResultSet
	Junk   Junk
}

type Reader struct {
	path        string
	logger      *utils.Logger
	config      *utils.Config
	perfTracker *utils.PerformanceTracker
}

func New(path string, logger *utils.Logger, config *utils.Config) *Reader {
	return &Reader{
		path:        path,
		logger:      logger,
		config:      config,
		perfTracker: utils.NewPerformanceTracker(),
	}
}

func (r *Reader) GetPerformanceTracker() *utils.PerformanceTracker {
	return r.perfTracker
}

// AbsPath returns the absolute form of the path, or the path as given when
// it cannot be resolved.
func (r *Reader) AbsPath() string {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return r.path
	}
	return abs
}

// Read opens the file and aggregates it. The returned Result is never nil,
// so the junk counters are available even when err is set.
func (r *Reader) Read() (*Result, error) {
	abs := r.AbsPath()

	info, err := os.Stat(r.path)
	if err != nil {
		r.logger.Debug("stat %s: %v", abs, err)
		return newResult(), fmt.Errorf("%w: %s", ErrFileNotFound, abs)
	}
	if info.IsDir() {
		return newResult(), ErrInvalidPath
	}

	file, err := os.Open(r.path)
	if err != nil {
		r.logger.Debug("open %s: %v", abs, err)
		return newResult(), fmt.Errorf("%w: %s", ErrFileNotFound, abs)
	}
	defer file.Close()

	r.logger.Info("Reading share prices from %s", abs)
	return r.Parse(file)
}

// Parse reads share prices from src using the configured comment marker
// and separator.
func (r *Reader) Parse(src io.Reader) (*Result, error) {
	res := newResult()
	lines := newLineReader(src, r.config.Reader.Comment)

	r.perfTracker.StartStep("header")
	header, err := r.readHeader(lines, &res.Junk)
	r.perfTracker.EndStep()
	if err != nil {
		return res, err
	}
	res.Header = header

	r.perfTracker.StartStep("aggregate")
	r.aggregate(lines, res)
	r.perfTracker.EndStep()

	if err := lines.Err(); err != nil {
		return res, fmt.Errorf("%w: %s", ErrRead, err)
	}

	r.logger.Info("Read %d companies, %d junk rows, %d junk cells",
		res.Prices.Len(), res.Junk.Rows, res.Junk.Cells)
	return res, nil
}

func newResult() *Result {
	return &Result{Prices: NewResultSet()}
}

// readHeader takes the first line with more than one field as the header.
func (r *Reader) readHeader(lines *lineReader, junk *Junk) ([]string, error) {
	var header []string
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		fields := utils.SplitAndTrim(line, r.config.Reader.Separator)
		if len(fields) > 1 {
			header = fields
			r.logger.Debug("header found on line %d: %v", lines.LineNo(), header)
			break
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRead, err)
	}

	return header, ValidateHeader(header, junk)
}

// ValidateHeader checks that the header names a year, a month and at least
// one company. A rejected header counts as junk.
func ValidateHeader(header []string, junk *Junk) error {
	switch {
	case header == nil:
		junk.Header = true
		return ErrMissingHeader
	case len(header) < 3:
		junk.Header = true
		return ErrInsufficientColumns
	}
	return nil
}

func (r *Reader) aggregate(lines *lineReader, res *Result) {
	header := res.Header
	res.Prices.Declare(header[2:]...)

	for {
		line, ok := lines.Next()
		if !ok {
			return
		}
		if lines.Overlong() {
			res.Junk.Rows++
			r.logger.Debug("line %d: skipping row longer than %d bytes", lines.LineNo(), maxLineSize)
			continue
		}

		fields := utils.SplitAndTrim(line, r.config.Reader.Separator)
		if len(fields) != len(header) {
			res.Junk.Rows++
			r.logger.Debug("line %d: skipping row with %d fields, header has %d",
				lines.LineNo(), len(fields), len(header))
			continue
		}

		year, month := fields[0], fields[1]
		for i := 2; i < len(fields); i++ {
			if res.Prices.Offer(header[i], year, month, fields[i]) == CellJunk {
				res.Junk.Cells++
				r.logger.Debug("line %d: discarding value %q for company %q",
					lines.LineNo(), fields[i], header[i])
			}
		}
	}
}

// Display reads the file and writes the report to w. Structural problems
// are returned as errors; skipped junk only adds a warning line.
func (r *Reader) Display(w io.Writer) error {
	res, err := r.Read()
	if err != nil {
		return err
	}

	if res.Junk.Found() {
		r.logger.Warn("junk data in %s: %d rows and %d cells skipped",
			r.AbsPath(), res.Junk.Rows, res.Junk.Cells)
		fmt.Fprintln(w, JunkWarning)
	}

	if res.Prices.Len() == 0 {
		return ErrNoData
	}

	r.perfTracker.StartStep("report")
	defer r.perfTracker.EndStep()

	fmt.Fprintln(w, "Displaying max share prices from file : "+r.AbsPath())
	_, err = io.WriteString(w, Report(res.Prices))
	return err
}
