package models

// AtomExtractionResult is the response of an atom extraction request. Atoms
// keep the exact order the server returned them in.
type AtomExtractionResult struct {
	Atoms    []Atom                 `json:"Atoms"`
	Metadata map[string]interface{} `json:"Metadata,omitempty"`
	FileType string                 `json:"FileType,omitempty"`
}

// TypeDetectionResult is the response of a type detection request.
type TypeDetectionResult struct {
	// FileType is the detected document format.
	FileType string `json:"FileType"`

	// Confidence is the server's confidence in the detection, in [0, 1].
	// Zero when the server did not report one.
	Confidence float64 `json:"Confidence,omitempty"`

	Metadata map[string]interface{} `json:"Metadata,omitempty"`
}
