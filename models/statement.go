package models

import (
	"strings"
	"unicode/utf8"
)

// Statement is one element of a RELS-EXT RDF document, flattened.
// The collector emits one for every element, root included, in
// document order.
type Statement struct {
	// Name is the element's local name, with the namespace
	// prefix stripped. E.g. "isMemberOfCollection".
	Name string

	// AttributeValues are the values of the element's attributes,
	// in source order. Attribute names are not kept.
	AttributeValues []string

	// SequenceWeightText is the element's text if Name contains
	// "isSequenceNumberOf". Otherwise it's empty.
	SequenceWeightText string

	// FilteredText is the element's text, but only if that text is
	// a single line, is not "true", and is longer than four
	// characters. Otherwise it's empty.
	FilteredText string

	// Position is the index of this statement in the whole run,
	// across all files.
	Position int

	// SourceFile is the RDF file the statement came from.
	SourceFile string
}

// NewStatement builds a Statement from an element's local name, its
// attribute values and its text. Param hasText should be false if the
// element had no text at all.
func NewStatement(name string, attributeValues []string, text string, hasText bool) *Statement {
	statement := &Statement{
		Name:            name,
		AttributeValues: attributeValues,
	}
	if attributeValues == nil {
		statement.AttributeValues = make([]string, 0)
	}
	if hasText && strings.Contains(name, "isSequenceNumberOf") {
		statement.SequenceWeightText = text
	}
	if hasText && !strings.Contains(text, "\n") && text != "true" &&
		utf8.RuneCountInString(text) > 4 {
		statement.FilteredText = text
	}
	return statement
}

// Value returns the statement's first attribute value, which for
// RELS-EXT relations is the rdf:resource URI. Returns an empty string
// if the statement has no attributes.
func (statement *Statement) Value() string {
	if statement == nil || len(statement.AttributeValues) == 0 {
		return ""
	}
	return statement.AttributeValues[0]
}

// Item is the run of statements that describes one digital object.
type Item struct {
	// Index is the zero-based position of this item among
	// all items in the run.
	Index int

	Statements []*Statement
}

// Len returns the number of statements in the item.
func (item *Item) Len() int {
	return len(item.Statements)
}

// At returns the statement at position i. Negative positions count
// back from the end, so At(-1) is the last statement. Returns nil if
// there is no statement at i. Callers can use the result directly,
// because a nil statement has empty Name and Value.
func (item *Item) At(i int) *Statement {
	if i < 0 {
		i = len(item.Statements) + i
	}
	if i < 0 || i >= len(item.Statements) {
		return nil
	}
	return item.Statements[i]
}

// NameAt returns the name of the statement at position i, or an empty
// string.
func (item *Item) NameAt(i int) string {
	statement := item.At(i)
	if statement == nil {
		return ""
	}
	return statement.Name
}

// ValueAt returns the first attribute value of the statement at
// position i, or an empty string.
func (item *Item) ValueAt(i int) string {
	return item.At(i).Value()
}

// WeightAt returns the sequence weight text of the statement at
// position i, or an empty string.
func (item *Item) WeightAt(i int) string {
	statement := item.At(i)
	if statement == nil {
		return ""
	}
	return statement.SequenceWeightText
}

// Subject returns the URI the item describes, which is the rdf:about
// of its Description statement. Returns an empty string if the item
// has no Description.
func (item *Item) Subject() string {
	for _, statement := range item.Statements {
		if statement.Name == "Description" {
			return statement.Value()
		}
	}
	return ""
}

// SourceFile returns the file the item's first statement came from.
func (item *Item) SourceFile() string {
	if len(item.Statements) == 0 {
		return ""
	}
	return item.Statements[0].SourceFile
}
