package docatom

import (
	"context"
	"net/http"

	"github.com/docatom/docatom-go/pkg/transport"
)

// healthPath is the lightweight reachability endpoint.
const healthPath = "/health"

// ConnectivityService checks whether the server is reachable.
type ConnectivityService struct {
	client *Client
}

// Validate issues a minimal GET against the health endpoint. It returns true
// on any 2xx response and false when a reachable server answers with any
// other status. Network-level failures (DNS, refused connection, timeout)
// are returned as errors, never as false.
func (s *ConnectivityService) Validate(ctx context.Context) (bool, error) {
	resp, err := s.client.transport.Do(ctx, &transport.Request{
		Method: http.MethodGet,
		Path:   healthPath,
	})
	if err != nil {
		return false, err
	}

	healthy := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !healthy {
		s.client.logger.Warn("health check returned non-2xx", "status", resp.StatusCode)
	}
	return healthy, nil
}
