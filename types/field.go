package types

import "strings"

// FieldSet is a bitfield recording which mandatory query fields
// have been written. It only ever grows along a builder chain.
type FieldSet uint8

const (
	FieldCreatedTime      FieldSet = 1 << iota // 0b0001
	FieldCreatorAccountID                      // 0b0010
	FieldQuery                                 // 0b0100
	FieldQueryCounter                          // 0b1000

	// FieldsAll is the accepting state: every mandatory field set.
	FieldsAll = FieldCreatedTime | FieldCreatorAccountID | FieldQuery | FieldQueryCounter
)

// Has returns true if all bits in f are set.
func (s FieldSet) Has(f FieldSet) bool {
	return s&f == f
}

// With returns the union of s and f.
func (s FieldSet) With(f FieldSet) FieldSet {
	return s | f
}

// Missing returns the mandatory fields not present in s.
func (s FieldSet) Missing() FieldSet {
	return FieldsAll &^ s
}

// Complete returns true if every mandatory field is set.
func (s FieldSet) Complete() bool {
	return s.Has(FieldsAll)
}

// String returns a human-readable representation.
func (s FieldSet) String() string {
	var fields []string
	if s.Has(FieldCreatedTime) {
		fields = append(fields, "CreatedTime")
	}
	if s.Has(FieldCreatorAccountID) {
		fields = append(fields, "CreatorAccountID")
	}
	if s.Has(FieldQuery) {
		fields = append(fields, "Query")
	}
	if s.Has(FieldQueryCounter) {
		fields = append(fields, "QueryCounter")
	}
	if len(fields) == 0 {
		return "none"
	}
	return strings.Join(fields, "|")
}
