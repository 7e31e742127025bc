package fileinput

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docatom/docatom-go/pkg/apierr"
)

func TestResolve_AllModesProduceIdenticalOutput(t *testing.T) {
	content := []byte("%PDF-1.7 fake document body")
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/report.pdf", content, 0o644))

	inputs := map[string]Input{
		"path":   Path("/docs/report.pdf"),
		"bytes":  Bytes(content, "report.pdf"),
		"reader": Reader(bytes.NewReader(content), "report.pdf"),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			payload, filename, err := in.Resolve(fs)
			require.NoError(t, err)
			assert.Equal(t, content, payload)
			assert.Equal(t, "report.pdf", filename)
		})
	}
}

func TestResolve_Path(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/nested/input.csv", []byte("a,b\n1,2\n"), 0o644))
	require.NoError(t, fs.MkdirAll("/data/dir", 0o755))

	t.Run("filename is the final path component", func(t *testing.T) {
		_, filename, err := Path("/data/nested/input.csv").Resolve(fs)
		require.NoError(t, err)
		assert.Equal(t, "input.csv", filename)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Path("/data/absent.csv").Resolve(fs)
		require.Error(t, err)
		assert.True(t, apierr.Is(err, apierr.KindFileNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		_, _, err := Path("/data/dir").Resolve(fs)
		require.Error(t, err)
		assert.True(t, apierr.Is(err, apierr.KindValidation))
	})

	t.Run("empty path", func(t *testing.T) {
		_, _, err := Path("").Resolve(fs)
		require.Error(t, err)
		assert.True(t, apierr.Is(err, apierr.KindValidation))
	})
}

func TestResolve_MissingFilename(t *testing.T) {
	fs := afero.NewMemMapFs()

	tests := []struct {
		name string
		in   Input
	}{
		{name: "bytes", in: Bytes([]byte("data"), "")},
		{name: "reader", in: Reader(bytes.NewReader([]byte("data")), "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.in.Resolve(fs)
			require.Error(t, err)
			assert.True(t, apierr.Is(err, apierr.KindValidation))
		})
	}
}

// countingReader tracks reads so the drain-once contract is checkable.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func TestResolve_ReaderDrainedOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	cr := &countingReader{r: bytes.NewReader([]byte("streamed content"))}

	payload, filename, err := Reader(cr, "stream.txt").Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, []byte("streamed content"), payload)
	assert.Equal(t, "stream.txt", filename)
	assert.Greater(t, cr.reads, 0)

	// The reader is exhausted; a second resolve yields an empty payload,
	// never a rewind.
	payload, _, err = Reader(cr, "stream.txt").Resolve(fs)
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestResolve_ReaderFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	failing := io.MultiReader(
		bytes.NewReader([]byte("partial")),
		&errReader{err: errors.New("stream torn down")},
	)

	_, _, err := Reader(failing, "broken.bin").Resolve(fs)
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.KindValidation))
}

type errReader struct{ err error }

func (e *errReader) Read([]byte) (int, error) { return 0, e.err }

func TestContentTypeForFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "application/pdf"},
		{"scan.PNG", "image/png"},
		{"notes.md", "text/markdown"},
		{"table.csv", "text/csv"},
		{"slides.pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
		{"unknown.zz9", "application/octet-stream"},
		{"no-extension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeForFilename(tt.filename))
		})
	}
}
