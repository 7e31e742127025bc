package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomExtractionResult_Unmarshal(t *testing.T) {
	raw := `{
		"Atoms": [
			{"Content": "Title", "AtomType": "Text"},
			{"Content": "a,b,c", "AtomType": "Table", "Position": {"Row": 1}},
			{"Content": "img", "AtomType": "Image", "Metadata": {"Width": 640}}
		],
		"Metadata": {"Pages": 2},
		"FileType": "pdf"
	}`

	var result AtomExtractionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	require.Len(t, result.Atoms, 3)
	assert.Equal(t, "Title", result.Atoms[0].Content)
	assert.Equal(t, AtomTypeText, result.Atoms[0].AtomType)
	assert.Equal(t, AtomTypeTable, result.Atoms[1].AtomType)
	assert.Equal(t, AtomTypeImage, result.Atoms[2].AtomType)
	assert.Equal(t, "pdf", result.FileType)
	assert.EqualValues(t, 2, result.Metadata["Pages"])
}

func TestTypeDetectionResult_Unmarshal(t *testing.T) {
	raw := `{"FileType": "docx", "Confidence": 0.92, "Metadata": {"Detector": "magic"}}`

	var result TypeDetectionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	assert.Equal(t, "docx", result.FileType)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	assert.Equal(t, "magic", result.Metadata["Detector"])
}

func TestAtom_DecodePosition(t *testing.T) {
	atom := Atom{
		Content:  "cell",
		AtomType: AtomTypeTable,
		Position: map[string]interface{}{"Page": 3, "Row": 7, "Column": 2},
	}

	var pos struct {
		Page   int
		Row    int
		Column int
	}
	require.NoError(t, atom.DecodePosition(&pos))
	assert.Equal(t, 3, pos.Page)
	assert.Equal(t, 7, pos.Row)
	assert.Equal(t, 2, pos.Column)
}

func TestAtom_DecodeMetadata(t *testing.T) {
	atom := Atom{
		Content:  "img",
		AtomType: AtomTypeImage,
		Metadata: map[string]interface{}{"Width": 640, "Height": 480, "Format": "png"},
	}

	var meta struct {
		Width  int
		Height int
		Format string
	}
	require.NoError(t, atom.DecodeMetadata(&meta))
	assert.Equal(t, 640, meta.Width)
	assert.Equal(t, 480, meta.Height)
	assert.Equal(t, "png", meta.Format)
}
