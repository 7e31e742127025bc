package docatom

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docatom/docatom-go/pkg/apierr"
	"github.com/docatom/docatom-go/pkg/transport"
)

func TestConnectivity_Validate_StatusSemantics(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{200, true},
		{204, true},
		{299, true},
		{301, false},
		{404, false},
		{500, false},
		{503, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			exec := &fakeExecutor{response: &transport.Response{StatusCode: tt.status}}
			c, err := New(WithTransport(exec))
			require.NoError(t, err)

			healthy, err := c.Connectivity.Validate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, healthy)

			require.Len(t, exec.requests, 1)
			assert.Equal(t, http.MethodGet, exec.requests[0].Method)
			assert.Equal(t, "/health", exec.requests[0].Path)
			assert.Nil(t, exec.requests[0].Upload)
		})
	}
}

func TestConnectivity_Validate_NetworkFailureIsError(t *testing.T) {
	exec := &fakeExecutor{err: apierr.New(apierr.KindConnection, "dial tcp: connection refused")}
	c, err := New(WithTransport(exec))
	require.NoError(t, err)

	healthy, err := c.Connectivity.Validate(context.Background())

	// A network failure must never masquerade as an unhealthy server.
	require.Error(t, err)
	assert.False(t, healthy)
	assert.True(t, apierr.Is(err, apierr.KindConnection))
}

func TestConnectivity_Validate_EndToEnd(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	c, err := New(WithBaseURL(mockServer.URL))
	require.NoError(t, err)

	healthy, err := c.Connectivity.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, healthy)
}

func TestConnectivity_Validate_RefusedConnection(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := mockServer.URL
	mockServer.Close()

	c, err := New(WithBaseURL(endpoint))
	require.NoError(t, err)

	_, err = c.Connectivity.Validate(context.Background())
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.KindConnection))
}
