package tradetools

import (
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed renders a decimal at its own scale, keeping the trailing zeros
// that Decimal.String would trim: a price parsed from "10.00" renders
// "10.00", a fee computed at 4 decimal places renders "0.0290". The
// output formats re-parse these fields, so the scale is contractual.
func Fixed(d decimal.Decimal) string {
	if d.Exponent() >= 0 {
		return d.String()
	}
	return d.StringFixed(-d.Exponent())
}

// Media types of the downloadable encodings offered to callers.
const (
	MediaText = "file/txt"
	MediaCSV  = "file/csv"
)

// Formatter renders canonical executions to the generic import line
// format. The column order is fixed; only the day layout and two column
// labels vary between target platforms.
//
// Formatting is pure and total: it never fails on a valid execution.
type Formatter struct {
	DayLayout  string // layout for the Date column
	SideColumn string // label of the side column, "Side" or "Buy/Sell"
	FeeColumn  string // label of the fee column, "TransFee" or "Fee"
}

// Header returns the single header line prepended to every document.
func (f Formatter) Header() string {
	return strings.Join([]string{
		"Date", "Time", "Symbol", "Quantity", "Price",
		f.SideColumn, "Commission", f.FeeColumn,
	}, ",")
}

// Row renders one execution as a comma-joined line. The price keeps its
// original decimal representation and the fee the exact scale the fee
// schedule produced.
func (f Formatter) Row(x CanonicalExecution) string {
	return strings.Join([]string{
		x.Day.Format(f.DayLayout),
		x.Clock.String(),
		x.Symbol,
		strconv.Itoa(x.Quantity),
		Fixed(x.Price),
		string(x.Side),
		Fixed(x.Commission),
		Fixed(x.TransactionFee),
	}, ",")
}

// Document renders the whole batch.
func (f Formatter) Document(execs []CanonicalExecution) *Document {
	d := &Document{Executions: execs, header: f.Header()}
	d.rows = make([]string, len(execs))
	for i, x := range execs {
		d.rows[i] = f.Row(x)
	}
	return d
}

// Document is the final, ordered output of a conversion: a header line
// followed by one line per canonical execution. It is immutable once
// built.
type Document struct {
	// Executions are the canonical records behind the rows, in row order.
	Executions []CanonicalExecution

	header string
	rows   []string
}

// Len returns the number of execution rows (excluding the header).
func (d *Document) Len() int { return len(d.rows) }

// Rows returns the execution lines, without the header.
func (d *Document) Rows() []string { return d.rows }

// String returns the displayable text block: the header line followed by
// the newline-joined rows.
func (d *Document) String() string {
	return strings.Join(append([]string{d.header}, d.rows...), "\n")
}

// WriteTo writes the text block plus a trailing newline to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String()+"\n")
	return int64(n), err
}

// DataURI returns the document encoded as a data URI of the given media
// type, the downloadable form handed to embedding UIs.
func (d *Document) DataURI(mediaType string) string {
	return "data:" + mediaType + ";base64," +
		base64.StdEncoding.EncodeToString([]byte(d.String()))
}
