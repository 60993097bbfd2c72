package rdf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"golang.org/x/net/html/charset"
	"io"
	"os"
)

// DocumentParseError means one RDF file could not be parsed. It is
// not fatal. The file is skipped and the objects it describes will be
// missing from the run.
type DocumentParseError struct {
	Path string
	Err  error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("Cannot parse RDF file '%s': %v", e.Path, e.Err)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Err
}

// Collector reads RDF files and flattens them into Statements.
type Collector struct {
	Statements  []*models.Statement
	ParseErrors []*DocumentParseError
	FilesRead   []string
}

func NewCollector() *Collector {
	return &Collector{
		Statements:  make([]*models.Statement, 0),
		ParseErrors: make([]*DocumentParseError, 0),
		FilesRead:   make([]string, 0),
	}
}

// CollectDir reads every file in dir that matches pattern, in lexical
// order of file name. Files that fail to parse are recorded in
// ParseErrors and skipped. Returns an error only if the directory
// itself can't be listed.
func (collector *Collector) CollectDir(dir, pattern string) error {
	files, err := fileutil.ListFiles(dir, pattern)
	if err != nil {
		return err
	}
	for _, file := range files {
		collector.CollectFile(file)
	}
	return nil
}

// CollectFile parses one RDF file and appends its statements. Returns
// the parse error, if any, after recording it. Statements from a file
// that fails to parse are discarded.
func (collector *Collector) CollectFile(path string) *DocumentParseError {
	file, err := os.Open(path)
	if err != nil {
		return collector.fail(path, err)
	}
	defer file.Close()
	statements, err := ParseDocument(file)
	if err != nil {
		return collector.fail(path, err)
	}
	offset := len(collector.Statements)
	for i, statement := range statements {
		statement.Position = offset + i
		statement.SourceFile = path
	}
	collector.Statements = append(collector.Statements, statements...)
	collector.FilesRead = append(collector.FilesRead, path)
	return nil
}

func (collector *Collector) fail(path string, err error) *DocumentParseError {
	parseError := &DocumentParseError{Path: path, Err: err}
	collector.ParseErrors = append(collector.ParseErrors, parseError)
	return parseError
}

// pendingElement tracks an element while its text is read.
type pendingElement struct {
	name       string
	attrs      []string
	text       bytes.Buffer
	hasText    bool
	textClosed bool
}

// ParseDocument returns one Statement for each element in the XML
// document, in document order (depth-first, pre-order), starting with
// the root. An element's text is the character data that comes before
// its first child element. Comments and processing instructions are
// ignored. The whole document is parsed before anything is returned,
// so a document that is not well formed yields no statements.
// Documents that declare an encoding other than UTF-8 are decoded
// to UTF-8.
func ParseDocument(reader io.Reader) ([]*models.Statement, error) {
	decoder := xml.NewDecoder(reader)
	decoder.CharsetReader = charset.NewReaderLabel
	elements := make([]*pendingElement, 0)
	stack := make([]*pendingElement, 0)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 && len(elements) > 0 {
				return nil, fmt.Errorf("document has more than one root element")
			}
			if len(stack) > 0 {
				stack[len(stack)-1].textClosed = true
			}
			element := &pendingElement{
				name:  t.Name.Local,
				attrs: attributeValues(t.Attr),
			}
			elements = append(elements, element)
			stack = append(stack, element)
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("text outside of root element")
				}
				continue
			}
			element := stack[len(stack)-1]
			if !element.textClosed {
				element.text.Write(t)
				element.hasText = true
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("document has no root element")
	}
	statements := make([]*models.Statement, len(elements))
	for i, element := range elements {
		statements[i] = models.NewStatement(
			element.name, element.attrs, element.text.String(), element.hasText)
	}
	return statements, nil
}

// attributeValues returns attribute values in source order, leaving
// out namespace declarations.
func attributeValues(attrs []xml.Attr) []string {
	values := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		values = append(values, attr.Value)
	}
	return values
}
