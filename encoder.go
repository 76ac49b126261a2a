package texthuffman

import (
	"bytes"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Encoder serializes byte streams using a fixed CodeTable.  An initialized
// Encoder is read-only and may be shared between goroutines.
type Encoder struct {
	table  *CodeTable
	header string
	log    logrus.FieldLogger
}

// SetLogger sets the logger used by Init and the encoding methods.  The
// default logger discards everything.
func (e *Encoder) SetLogger(log logrus.FieldLogger) {
	e.log = log
}

// Init initializes this Encoder with the given CodeTable and precomputes the
// length header and code table section.  Every code in the table must
// consist solely of '0' and '1' characters.  The table is copied, so later
// changes to it do not affect this Encoder.
//
// A degenerate table (see CodeTable.Degenerate) is accepted, but logged as
// a warning: its empty-code symbol is listed in the header and produces no
// payload characters.
func (e *Encoder) Init(table *CodeTable) {
	own := NewCodeTable()
	for _, entry := range table.Entries() {
		own.Set(entry.Value, entry.Code)
	}
	table = own

	var section strings.Builder
	for _, entry := range table.entries {
		assert.Assertf(isBitString(string(entry.Code)), "code %s for symbol %d is not a bit string", entry.Code, entry.Value)
		appendDigits(&section, entryFieldWidth, uint64(entry.Code.Size()))
		appendDigits(&section, entryFieldWidth, uint64(entry.Value))
		section.WriteString(string(entry.Code))
	}

	var header strings.Builder
	header.Grow(lengthHeaderWidth + section.Len())
	appendDigits(&header, lengthHeaderWidth, uint64(section.Len()))
	header.WriteString(section.String())

	*e = Encoder{
		table:  table,
		header: header.String(),
		log:    e.log,
	}

	for _, entry := range table.entries {
		if entry.Code.Size() == 0 {
			e.logger().WithField("symbol", entry.Value).Warn("degenerate code table")
		}
	}
}

// Table returns a copy of the CodeTable this Encoder was initialized with.
func (e Encoder) Table() *CodeTable {
	out := NewCodeTable()
	for _, entry := range e.table.Entries() {
		out.Set(entry.Value, entry.Code)
	}
	return out
}

// Header returns the length header followed by the code table section.
func (e Encoder) Header() string {
	if e.header == "" {
		var empty Encoder
		empty.Init(nil)
		return empty.header
	}
	return e.header
}

// Encode returns the header followed by the code of every byte in src.  If
// some byte has no code, Encode returns an *EncodingError for the first
// such byte and no output.
func (e Encoder) Encode(src []byte) (string, error) {
	header := e.Header()

	var sb strings.Builder
	sb.Grow(len(header) + len(src))
	sb.WriteString(header)
	payloadLen, err := e.writePayload(&sb, src)
	if err != nil {
		return "", err
	}

	e.logEncoded(len(header), payloadLen)
	return sb.String(), nil
}

// EncodeTo writes the same output as Encode to the given writer.  Nothing
// is written if src contains a byte with no code.
func (e Encoder) EncodeTo(w io.Writer, src []byte) (int64, error) {
	header := e.Header()

	var buf bytes.Buffer
	buf.WriteString(header)
	payloadLen, err := e.writePayload(&buf, src)
	if err != nil {
		return 0, err
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return n, err
	}
	e.logEncoded(len(header), payloadLen)
	return n, nil
}

// Check reports every distinct byte value in src that has no code, one
// *EncodingError per value at its first offset.  It returns nil if src can
// be encoded.
func (e Encoder) Check(src []byte) error {
	var result *multierror.Error
	var seen [int(MaxSymbol) + 1]bool
	for offset, b := range src {
		if seen[b] {
			continue
		}
		seen[b] = true
		if _, found := e.table.Lookup(b); !found {
			result = multierror.Append(result, &EncodingError{Offset: offset, Value: b})
		}
	}
	return result.ErrorOrNil()
}

func (e Encoder) writePayload(sw io.StringWriter, src []byte) (int, error) {
	var n int
	for offset, b := range src {
		hc, found := e.table.Lookup(b)
		if !found {
			e.logger().WithFields(logrus.Fields{
				"offset": offset,
				"value":  b,
			}).Debug("missing code")
			return n, &EncodingError{Offset: offset, Value: b}
		}
		_, _ = sw.WriteString(string(hc))
		n += hc.Size()
	}
	return n, nil
}

func (e Encoder) logEncoded(headerLen int, payloadLen int) {
	e.logger().WithFields(logrus.Fields{
		"entries":     e.table.Len(),
		"table_len":   headerLen - lengthHeaderWidth,
		"payload_len": payloadLen,
	}).Debug("encoded stream")
}

func (e Encoder) logger() logrus.FieldLogger {
	if e.log == nil {
		return discardLogger
	}
	return e.log
}

var discardLogger = newDiscardLogger()

func newDiscardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Encode builds a tree from symbols, derives its code table, and encodes
// src with it.
func Encode(symbols []SymbolCount, src []byte) (string, error) {
	root, err := BuildTree(symbols)
	if err != nil {
		return "", err
	}

	var e Encoder
	e.Init(DeriveCodes(root))
	return e.Encode(src)
}
