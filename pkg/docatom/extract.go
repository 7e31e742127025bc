package docatom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/docatom/docatom-go/pkg/apierr"
	"github.com/docatom/docatom-go/pkg/fileinput"
	"github.com/docatom/docatom-go/pkg/models"
	"github.com/docatom/docatom-go/pkg/transport"
)

// Format identifies a document format the extraction API supports.
type Format string

// Supported extraction formats.
const (
	FormatCSV        Format = "csv"
	FormatExcel      Format = "excel"
	FormatHTML       Format = "html"
	FormatJSON       Format = "json"
	FormatMarkdown   Format = "markdown"
	FormatOCR        Format = "ocr"
	FormatPDF        Format = "pdf"
	FormatPNG        Format = "png"
	FormatPowerPoint Format = "powerpoint"
	FormatRTF        Format = "rtf"
	FormatText       Format = "text"
	FormatWord       Format = "word"
	FormatXML        Format = "xml"
)

type formatInfo struct {
	contentType string
	ocrCapable  bool
}

var formats = map[Format]formatInfo{
	FormatCSV:        {contentType: "text/csv"},
	FormatExcel:      {contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	FormatHTML:       {contentType: "text/html"},
	FormatJSON:       {contentType: "application/json"},
	FormatMarkdown:   {contentType: "text/markdown"},
	FormatOCR:        {contentType: "application/octet-stream"},
	FormatPDF:        {contentType: "application/pdf", ocrCapable: true},
	FormatPNG:        {contentType: "image/png"},
	FormatPowerPoint: {contentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation", ocrCapable: true},
	FormatRTF:        {contentType: "application/rtf", ocrCapable: true},
	FormatText:       {contentType: "text/plain"},
	FormatWord:       {contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	FormatXML:        {contentType: "application/xml"},
}

// Formats returns the supported format tags in sorted order.
func Formats() []Format {
	out := make([]Format, 0, len(formats))
	for f := range formats {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type extractOptions struct {
	ocr *bool
}

// ExtractOption tunes a single extraction call.
type ExtractOption func(*extractOptions)

// WithOCR requests or suppresses server-side OCR. It only has an effect for
// the pdf, powerpoint, and rtf formats; for every other format it is
// accepted and silently ignored.
func WithOCR(enabled bool) ExtractOption {
	return func(o *extractOptions) { o.ocr = &enabled }
}

// AtomExtractionService decomposes documents into atoms. Atomization itself
// happens on the server; this service only ships the payload and decodes the
// result, preserving atom order exactly as received.
type AtomExtractionService struct {
	client *Client
}

// Extract uploads the input to the format-specific extraction endpoint. An
// unknown format tag fails with a validation error before any network call.
func (s *AtomExtractionService) Extract(ctx context.Context, in fileinput.Input, format Format, opts ...ExtractOption) (*models.AtomExtractionResult, error) {
	format = Format(strings.ToLower(string(format)))
	info, ok := formats[format]
	if !ok {
		return nil, apierr.Newf(apierr.KindValidation,
			"unsupported format %q, supported formats: %s", format, formatList())
	}

	o := &extractOptions{}
	for _, opt := range opts {
		opt(o)
	}

	payload, filename, err := in.Resolve(s.client.fs)
	if err != nil {
		return nil, err
	}

	var query url.Values
	if info.ocrCapable && o.ocr != nil {
		query = url.Values{"ocr": []string{strconv.FormatBool(*o.ocr)}}
	}

	resp, err := s.client.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		Path:   "/extract/" + string(format),
		Query:  query,
		Upload: &transport.Upload{
			Payload:     payload,
			Filename:    filename,
			ContentType: info.contentType,
		},
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.FromStatus(resp.StatusCode, resp.Body)
	}

	var result models.AtomExtractionResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, apierr.Wrap(apierr.KindAPI, err,
			fmt.Sprintf("decoding extraction response: %v", err))
	}

	s.client.logger.Debug("extracted atoms",
		"filename", filename,
		"format", format,
		"atoms", len(result.Atoms),
	)

	return &result, nil
}

// ExtractCSV extracts atoms from a CSV file.
func (s *AtomExtractionService) ExtractCSV(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatCSV)
}

// ExtractExcel extracts atoms from an Excel workbook.
func (s *AtomExtractionService) ExtractExcel(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatExcel)
}

// ExtractHTML extracts atoms from an HTML document.
func (s *AtomExtractionService) ExtractHTML(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatHTML)
}

// ExtractJSON extracts atoms from a JSON document.
func (s *AtomExtractionService) ExtractJSON(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatJSON)
}

// ExtractMarkdown extracts atoms from a Markdown document.
func (s *AtomExtractionService) ExtractMarkdown(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatMarkdown)
}

// ExtractOCR extracts atoms from an arbitrary document via OCR.
func (s *AtomExtractionService) ExtractOCR(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatOCR)
}

// ExtractPDF extracts atoms from a PDF file. WithOCR controls server-side
// OCR of embedded images.
func (s *AtomExtractionService) ExtractPDF(ctx context.Context, in fileinput.Input, opts ...ExtractOption) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatPDF, opts...)
}

// ExtractPNG extracts atoms from a PNG image.
func (s *AtomExtractionService) ExtractPNG(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatPNG)
}

// ExtractPowerPoint extracts atoms from a PowerPoint presentation. WithOCR
// controls server-side OCR of embedded images.
func (s *AtomExtractionService) ExtractPowerPoint(ctx context.Context, in fileinput.Input, opts ...ExtractOption) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatPowerPoint, opts...)
}

// ExtractRTF extracts atoms from an RTF document. WithOCR controls
// server-side OCR of embedded images.
func (s *AtomExtractionService) ExtractRTF(ctx context.Context, in fileinput.Input, opts ...ExtractOption) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatRTF, opts...)
}

// ExtractText extracts atoms from a plain text file.
func (s *AtomExtractionService) ExtractText(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatText)
}

// ExtractWord extracts atoms from a Word document.
func (s *AtomExtractionService) ExtractWord(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatWord)
}

// ExtractXML extracts atoms from an XML document.
func (s *AtomExtractionService) ExtractXML(ctx context.Context, in fileinput.Input) (*models.AtomExtractionResult, error) {
	return s.Extract(ctx, in, FormatXML)
}

func formatList() string {
	names := make([]string, 0, len(formats))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
