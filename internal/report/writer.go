package report

import (
	"encoding/xml"
	"fmt"
	"io"

	"metaexport/internal/diagnostic"
	"metaexport/pkg/meta"
)

// Writer streams a report to an XML sink and a console sink.
// Call Begin once, WriteType per type, then End.
type Writer struct {
	out     io.Writer
	console io.Writer
	enc     *xml.Encoder
	diags   diagnostic.Diagnostics
	root    xml.StartElement
}

// NewWriter creates a Writer. console may be io.Discard.
func NewWriter(out, console io.Writer) *Writer {
	enc := xml.NewEncoder(out)
	enc.Indent("", "\t")

	return &Writer{
		out:     out,
		console: console,
		enc:     enc,
		root:    xml.StartElement{Name: xml.Name{Local: "Library"}},
	}
}

// Begin writes the XML declaration, opens <Library> and writes its <name>.
func (w *Writer) Begin(libraryName string) error {
	if _, err := io.WriteString(w.out, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := w.enc.EncodeToken(w.root); err != nil {
		return fmt.Errorf("opening library element: %w", err)
	}

	name := xml.StartElement{Name: xml.Name{Local: "name"}}
	if err := w.enc.EncodeElement(libraryName, name); err != nil {
		return fmt.Errorf("writing library name: %w", err)
	}

	return nil
}

// WriteType appends one <type> element and its console block.
func (w *Writer) WriteType(t meta.TypeDescriptor) error {
	lines, elem, diags := DescribeType(t)
	w.diags.Merge(diags)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w.console, line); err != nil {
			return fmt.Errorf("writing console transcript: %w", err)
		}
	}

	if err := w.enc.Encode(elem); err != nil {
		return fmt.Errorf("writing type %s: %w", t.Name, err)
	}

	return nil
}

// End closes <Library> and flushes the encoder.
func (w *Writer) End() error {
	if err := w.enc.EncodeToken(w.root.End()); err != nil {
		return fmt.Errorf("closing library element: %w", err)
	}

	if err := w.enc.Flush(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}

	if _, err := io.WriteString(w.out, "\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// Diagnostics returns the findings collected so far.
func (w *Writer) Diagnostics() diagnostic.Diagnostics {
	return w.diags
}

// Write renders a complete report for types.
func Write(out, console io.Writer, libraryName string, types []meta.TypeDescriptor) (diagnostic.Diagnostics, error) {
	w := NewWriter(out, console)
	if err := w.Begin(libraryName); err != nil {
		return w.Diagnostics(), err
	}

	for _, t := range types {
		if err := w.WriteType(t); err != nil {
			return w.Diagnostics(), err
		}
	}

	return w.Diagnostics(), w.End()
}
