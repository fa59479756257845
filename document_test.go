package tradetools

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestFormatterHeader(t *testing.T) {
	f := Tradervue().Formatter
	if got := f.Header(); got != "Date,Time,Symbol,Quantity,Price,Side,Commission,TransFee" {
		t.Errorf("tradervue header = %q", got)
	}
	f = TraderSync().Formatter
	if got := f.Header(); got != "Date,Time,Symbol,Quantity,Price,Buy/Sell,Commission,Fee" {
		t.Errorf("tradersync header = %q", got)
	}
}

func TestFormatterRow(t *testing.T) {
	execs := Merge([]RawExecution{raw("01/02/24", NewClock(9, 30, 0), Buy, 100, "ABC", "10.00")})
	fourWay().Apply(execs)

	if got := Tradervue().Formatter.Row(execs[0]); got != "01/02/24,09:30:00,ABC,100,10.00,Buy,0.00,0.0145" {
		t.Errorf("tradervue row = %q", got)
	}
	// Same execution under the tradersync layout: four-digit year.
	if got := TraderSync().Formatter.Row(execs[0]); got != "01/02/2024,09:30:00,ABC,100,10.00,Buy,0.00,0.0145" {
		t.Errorf("tradersync row = %q", got)
	}
}

// The price keeps the decimal scale the broker reported.
func TestFormatterPreservesPriceScale(t *testing.T) {
	for _, price := range []string{"10", "10.5", "10.00", "0.0001"} {
		execs := Merge([]RawExecution{raw("01/02/24", NewClock(9, 30, 0), Buy, 100, "ABC", price)})
		fourWay().Apply(execs)
		row := Tradervue().Formatter.Row(execs[0])
		if !strings.Contains(row, ","+price+",") {
			t.Errorf("row %q lost price %q", row, price)
		}
	}
}

func TestDocumentString(t *testing.T) {
	execs := Merge([]RawExecution{
		raw("01/02/24", NewClock(9, 30, 0), Buy, 100, "ABC", "10.00"),
		raw("01/02/24", NewClock(9, 31, 0), Short, 200, "XYZ", "5.00"),
	})
	fourWay().Apply(execs)
	doc := Tradervue().Formatter.Document(execs)

	want := "Date,Time,Symbol,Quantity,Price,Side,Commission,TransFee\n" +
		"01/02/24,09:30:00,ABC,100,10.00,Buy,0.00,0.0145\n" +
		"01/02/24,09:31:00,XYZ,200,5.00,Short,0.00,0.0390"
	if got := doc.String(); got != want {
		t.Errorf("document:\n%s\nwant:\n%s", got, want)
	}
	if doc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", doc.Len())
	}
}

// An empty conversion still yields the header line.
func TestDocumentEmpty(t *testing.T) {
	doc := Tradervue().Formatter.Document(nil)
	if got := doc.String(); got != "Date,Time,Symbol,Quantity,Price,Side,Commission,TransFee" {
		t.Errorf("empty document = %q", got)
	}
}

func TestDocumentDataURI(t *testing.T) {
	execs := Merge([]RawExecution{raw("01/02/24", NewClock(9, 30, 0), Buy, 100, "ABC", "10.00")})
	fourWay().Apply(execs)
	doc := Tradervue().Formatter.Document(execs)

	uri := doc.DataURI(MediaText)
	prefix := "data:file/txt;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("data URI = %q, want prefix %q", uri, prefix)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("data URI payload does not decode: %v", err)
	}
	if string(decoded) != doc.String() {
		t.Errorf("data URI payload = %q, want %q", decoded, doc.String())
	}
}
