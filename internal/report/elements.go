package report

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Header is written before the root element.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Document is the whole report, used when reading a report back.
type Document struct {
	XMLName xml.Name      `xml:"Library"`
	Name    string        `xml:"name"`
	Types   []TypeElement `xml:"type"`
}

// TypeElement is the <type> element. Field order is element order.
type TypeElement struct {
	XMLName   xml.Name        `xml:"type"`
	Name      string          `xml:"name"`
	Modifiers string          `xml:"modifiers,omitempty"`
	BaseType  string          `xml:"basetype"`
	Members   []MemberElement `xml:"member"`
}

// MemberElement is the <member> element.
type MemberElement struct {
	XMLName      xml.Name `xml:"member"`
	Name         string   `xml:"name"`
	MemberType   string   `xml:"membertype"`
	FieldType    string   `xml:"fieldtype,omitempty"`
	PropertyType string   `xml:"propertytype,omitempty"`
}

// ReadDocument decodes a report.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &doc, nil
}
