package pool

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/jpillora/backoff"
	"github.com/pkg/errors"

	"github.com/tcfw/indyres/pkg/ledger"
)

const (
	submitPath  = "/submit"
	maxAttempts = 3
)

// GatewayClient submits prepared requests to a VDR gateway speaking
// JSON over HTTP and relays the ledger reply verbatim
type GatewayClient struct {
	addr string
	http *http.Client
}

func NewGatewayClient(addr string, timeout time.Duration) *GatewayClient {
	return &GatewayClient{
		addr: addr,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *GatewayClient) SubmitRequest(ctx context.Context, req *ledger.PreparedRequest) (string, error) {
	bo := &backoff.Backoff{
		Min: 250 * time.Millisecond,
		Max: 5 * time.Second,
	}

	for {
		reply, err := c.submit(ctx, req)
		if err == nil {
			return reply, nil
		}

		if !retryable(err) || bo.Attempt()+1 >= maxAttempts {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(bo.Duration()):
		}
	}
}

func (c *GatewayClient) submit(ctx context.Context, req *ledger.PreparedRequest) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addr+submitPath, bytes.NewReader(req.Body))
	if err != nil {
		return "", errors.Wrap(err, "building gateway request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "submitting to gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("gateway returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading gateway reply")
	}

	return string(body), nil
}

func retryable(err error) bool {
	ne, ok := errors.Cause(err).(net.Error)
	return ok && ne.Timeout()
}
