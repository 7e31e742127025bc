// Package models contains the wire types exchanged with the DocumentAtom
// server. Field names follow the server's JSON casing exactly; values are
// produced only by deserializing responses and are never constructed by
// callers.
package models

import "github.com/mitchellh/mapstructure"

// Atom types returned by the server.
const (
	AtomTypeText   = "Text"
	AtomTypeImage  = "Image"
	AtomTypeBinary = "Binary"
	AtomTypeTable  = "Table"
	AtomTypeList   = "List"
)

// Atom is a single unit of extracted document content.
type Atom struct {
	// Content is the extracted content of the atom.
	Content string `json:"Content"`

	// AtomType is one of the AtomType constants, or empty when the server
	// did not classify the atom.
	AtomType string `json:"AtomType,omitempty"`

	// Position describes where in the source document the atom was found.
	// Its shape depends on the source format (page/line/cell coordinates).
	Position map[string]interface{} `json:"Position,omitempty"`

	// Metadata carries format-specific properties of the atom.
	Metadata map[string]interface{} `json:"Metadata,omitempty"`
}

// DecodePosition decodes the atom's position map into a caller-provided
// struct using mapstructure field tags.
func (a *Atom) DecodePosition(out interface{}) error {
	return mapstructure.Decode(a.Position, out)
}

// DecodeMetadata decodes the atom's metadata map into a caller-provided
// struct using mapstructure field tags.
func (a *Atom) DecodeMetadata(out interface{}) error {
	return mapstructure.Decode(a.Metadata, out)
}
