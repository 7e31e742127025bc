package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docatom/docatom-go/pkg/apierr"
)

func TestDo_MultipartUpload(t *testing.T) {
	content := []byte("col_a,col_b\n1,2\n")

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/extract/csv", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("ocr"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Contains(t, r.Header.Get("User-Agent"), "docatom-go/")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "table.csv", header.Filename)
		assert.Equal(t, "text/csv", header.Header.Get("Content-Type"))

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Atoms": []}`))
	}))
	defer mockServer.Close()

	tr := New(Options{BaseURL: mockServer.URL, Timeout: 5 * time.Second})

	resp, err := tr.Do(context.Background(), &Request{
		Method: http.MethodPost,
		Path:   "/extract/csv",
		Query:  url.Values{"ocr": []string{"true"}},
		Upload: &Upload{
			Payload:     content,
			Filename:    "table.csv",
			ContentType: "text/csv",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"Atoms": []}`, string(resp.Body))
}

func TestDo_ReturnsRawStatusWithoutMapping(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "no such endpoint"}`))
	}))
	defer mockServer.Close()

	tr := New(Options{BaseURL: mockServer.URL, Timeout: 5 * time.Second})

	resp, err := tr.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/missing"})

	// Non-2xx is not an error at this layer.
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "no such endpoint")
}

func TestDo_ConnectionFailure(t *testing.T) {
	// A closed server guarantees a refused connection.
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := mockServer.URL
	mockServer.Close()

	tr := New(Options{BaseURL: endpoint, Timeout: 5 * time.Second})

	_, err := tr.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health"})
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.KindConnection))
}

func TestDo_Timeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer mockServer.Close()

	tr := New(Options{BaseURL: mockServer.URL, Timeout: 50 * time.Millisecond})

	_, err := tr.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health"})
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.KindTimeout))
}

func TestDo_ContextDeadline(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer mockServer.Close()

	tr := New(Options{BaseURL: mockServer.URL, Timeout: 10 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.Do(ctx, &Request{Method: http.MethodGet, Path: "/health"})
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.KindTimeout))
}

func TestEncodeMultipart_FilenameEscaping(t *testing.T) {
	body, contentType, err := encodeMultipart(&Upload{
		Payload:  []byte("x"),
		Filename: `weird "name".pdf`,
	})
	require.NoError(t, err)
	assert.Contains(t, contentType, "multipart/form-data")
	assert.Contains(t, string(body), `filename="weird \"name\".pdf"`)
	// Unset content type falls back to octet-stream.
	assert.Contains(t, string(body), "application/octet-stream")
}
