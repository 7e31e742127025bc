// Package fileinput normalizes the three accepted upload sources — a file
// path, a raw byte buffer, or an io.Reader — into the (payload, filename)
// pair the transport needs. It performs no format sniffing.
package fileinput

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/docatom/docatom-go/pkg/apierr"
)

type kind int

const (
	kindPath kind = iota
	kindBytes
	kindReader
)

// Input is a tagged union over the accepted upload sources. Construct one
// with Path, Bytes, or Reader. An Input is resolved exactly once at call
// time and not retained afterwards.
type Input struct {
	kind     kind
	path     string
	data     []byte
	reader   io.Reader
	filename string
}

// Path uploads the file at p. The filename sent to the server is the path's
// final component.
func Path(p string) Input {
	return Input{kind: kindPath, path: p}
}

// Bytes uploads a raw byte buffer. A non-empty filename is required.
func Bytes(data []byte, filename string) Input {
	return Input{kind: kindBytes, data: data, filename: filename}
}

// Reader uploads the contents of r. A non-empty filename is required. The
// reader is drained exactly once and never rewound; on failure the caller
// owns re-supplying the input.
func Reader(r io.Reader, filename string) Input {
	return Input{kind: kindReader, reader: r, filename: filename}
}

// Resolve turns the input into a byte payload and filename. Path inputs are
// read through fs; validation failures are reported before any I/O happens.
func (in Input) Resolve(fs afero.Fs) ([]byte, string, error) {
	switch in.kind {
	case kindPath:
		return resolvePath(fs, in.path)

	case kindBytes:
		if in.filename == "" {
			return nil, "", apierr.New(apierr.KindValidation,
				"filename is required for byte buffer input")
		}
		return in.data, in.filename, nil

	case kindReader:
		if in.filename == "" {
			return nil, "", apierr.New(apierr.KindValidation,
				"filename is required for reader input")
		}
		if in.reader == nil {
			return nil, "", apierr.New(apierr.KindValidation, "reader is nil")
		}
		payload, err := io.ReadAll(in.reader)
		if err != nil {
			return nil, "", apierr.Wrap(apierr.KindValidation, err,
				fmt.Sprintf("reading input for %s: %v", in.filename, err))
		}
		return payload, in.filename, nil

	default:
		return nil, "", apierr.New(apierr.KindValidation, "empty file input")
	}
}

func resolvePath(fs afero.Fs, path string) ([]byte, string, error) {
	if path == "" {
		return nil, "", apierr.New(apierr.KindValidation, "file path is empty")
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, "", apierr.Wrap(apierr.KindFileNotFound, err,
			fmt.Sprintf("file does not exist: %s", path))
	}
	if info.IsDir() {
		return nil, "", apierr.Newf(apierr.KindValidation,
			"path is not a file: %s", path)
	}

	payload, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, "", apierr.Wrap(apierr.KindFileNotFound, err,
			fmt.Sprintf("file is not readable: %s", path))
	}

	return payload, filepath.Base(path), nil
}
