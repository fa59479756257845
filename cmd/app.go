// Package cmd implements the CLI application to convert broker execution
// reports into journaling-platform import formats.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/tradetools"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tradervueCmd{}, "convert")
	c.Register(&tradersyncCmd{}, "convert")
	c.Register(&fixerCmd{}, "convert")

	c.Register(&topicCmd{}, "documentation")
}

// convertCmd carries the flags every conversion command shares.
type convertCmd struct {
	input   string
	output  string
	dataURI bool
}

func (p *convertCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "-", "Input file, or '-' to read standard input.")
	f.StringVar(&p.output, "o", "", "Write the result to this file instead of standard output.")
	f.BoolVar(&p.dataURI, "data-uri", false, "Emit the downloadable data-URI encoding instead of the text block.")
}

// open returns the selected input stream.
func (p *convertCmd) open() (io.ReadCloser, error) {
	if p.input == "-" || p.input == "" {
		return io.NopCloser(os.Stdin), nil
	}
	in, err := os.Open(p.input)
	if err != nil {
		return nil, fmt.Errorf("cannot open input %q: %w", p.input, err)
	}
	return in, nil
}

// run executes the whole conversion for one profile and one broker
// adapter, and emits the document on the selected output.
func (p *convertCmd) run(profile tradetools.Profile, imp tradetools.Importer) subcommands.ExitStatus {
	in, err := p.open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	doc, err := profile.Convert(imp, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s input: %v\n", imp.Name(), err)
		return subcommands.ExitFailure
	}

	if err := p.emit(doc, profile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Converted %d executions (%s notional, %s fees).\n",
		doc.Len(), notional(doc), fees(doc))
	return subcommands.ExitSuccess
}

func (p *convertCmd) emit(doc *tradetools.Document, profile tradetools.Profile) error {
	out := os.Stdout
	if p.output != "" {
		f, err := os.Create(p.output)
		if err != nil {
			return fmt.Errorf("cannot create output %q: %w", p.output, err)
		}
		defer f.Close()
		out = f
	}
	if p.dataURI {
		_, err := fmt.Fprintln(out, doc.DataURI(profile.MediaType))
		return err
	}
	_, err := doc.WriteTo(out)
	return err
}

// notional sums the dollar value of all converted executions.
func notional(doc *tradetools.Document) tradetools.Money {
	total := tradetools.USD(decimal.Zero)
	for _, x := range doc.Executions {
		total = total.Add(x.Notional())
	}
	return total
}

// fees sums the transaction fees of all converted executions.
func fees(doc *tradetools.Document) tradetools.Money {
	total := decimal.Zero
	for _, x := range doc.Executions {
		total = total.Add(x.TransactionFee)
	}
	return tradetools.USD(total)
}
