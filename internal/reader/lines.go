package reader

import (
	"bufio"
	"bytes"
	"io"
)

// maxLineSize bounds a single line. Longer lines are dropped, not buffered.
const maxLineSize = 1024 * 1024

// lineReader yields the lines of a share price file, skipping comment lines.
// Lines end with "\n", "\r\n" or a lone "\r".
type lineReader struct {
	scanner *bufio.Scanner
	comment []byte
	lineNo  int

	discarding      bool // inside a line already known to be overlong
	overlong        bool // last token was an overlong line
	overlongComment bool // ... and it started with the comment marker
}

func newLineReader(r io.Reader, comment string) *lineReader {
	lr := &lineReader{comment: []byte(comment)}
	lr.scanner = bufio.NewScanner(r)
	lr.scanner.Buffer(make([]byte, 0, 64*1024), 2*maxLineSize)
	lr.scanner.Split(lr.split)
	return lr
}

// Next returns the next non-comment line. ok is false once the input is
// exhausted or a read error occurred; check Err to tell them apart.
// An overlong line is returned empty with Overlong set.
func (lr *lineReader) Next() (line string, ok bool) {
	for lr.scanner.Scan() {
		lr.lineNo++
		if lr.overlong {
			if lr.overlongComment {
				continue
			}
			return "", true
		}
		b := lr.scanner.Bytes()
		if lr.isComment(b) {
			continue
		}
		return string(b), true
	}
	return "", false
}

// Overlong reports whether the last line returned by Next exceeded
// maxLineSize.
func (lr *lineReader) Overlong() bool { return lr.overlong }

// An empty comment marker disables comment handling.
func (lr *lineReader) isComment(line []byte) bool {
	return len(lr.comment) > 0 && bytes.HasPrefix(line, lr.comment)
}

// LineNo is the physical line number of the last line returned by Next.
func (lr *lineReader) LineNo() int { return lr.lineNo }

func (lr *lineReader) Err() error { return lr.scanner.Err() }

func (lr *lineReader) split(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		if lr.discarding {
			return 0, lr.emit(nil), nil
		}
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance := i + 1
		if data[i] == '\r' {
			switch {
			case i+1 < len(data):
				if data[i+1] == '\n' {
					advance++
				}
			case !atEOF:
				// Might be the first half of "\r\n".
				return 0, nil, nil
			}
		}
		return advance, lr.emit(data[:i]), nil
	}

	if atEOF {
		return len(data), lr.emit(data), nil
	}

	if len(data) >= maxLineSize {
		if !lr.discarding {
			lr.discarding = true
			lr.overlongComment = lr.isComment(data)
		}
		return len(data), nil, nil
	}
	return 0, nil, nil
}

// emit finishes one line, replacing it with an empty token when it is
// overlong.
func (lr *lineReader) emit(line []byte) []byte {
	switch {
	case lr.discarding:
		lr.discarding = false
		lr.overlong = true
	case len(line) > maxLineSize:
		lr.overlong = true
		lr.overlongComment = lr.isComment(line)
	default:
		lr.overlong = false
		if line == nil {
			return []byte{}
		}
		return line
	}
	return []byte{}
}
