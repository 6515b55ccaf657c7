// Package tracker queries a Heron tracker service over HTTP.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"heron-explorer/internal/logging"
	"heron-explorer/internal/topology"
)

// ErrRetrieval matches every failure to obtain data from the tracker.
var ErrRetrieval = errors.New("tracker retrieval failed")

// RetrievalError describes a failed tracker request.
type RetrievalError struct {
	Op  string
	URL string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Is reports ErrRetrieval as a match so callers need not know the concrete type.
func (e *RetrievalError) Is(target error) bool { return target == ErrRetrieval }

const (
	statusSuccess   = "success"
	requestIDHeader = "X-Request-Id"
	// interval -1 asks the tracker for values over the whole topology lifetime.
	metricsInterval = "-1"
)

// response is the envelope every tracker endpoint replies with.
type response struct {
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	Version       string          `json:"version"`
	ExecutionTime float64         `json:"executiontime"`
	Result        json.RawMessage `json:"result"`
}

// Client is a tracker API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the tracker at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// TopologyInfo fetches the physical plan of the topology at loc.
func (c *Client) TopologyInfo(ctx context.Context, loc topology.Location) (*topology.PhysicalPlan, error) {
	var info struct {
		PhysicalPlan *topology.PhysicalPlan `json:"physical_plan"`
	}
	u := c.endpoint("/topologies/info", locationQuery(loc))
	if err := c.get(ctx, "topology info", u, &info); err != nil {
		return nil, err
	}
	if info.PhysicalPlan == nil {
		return nil, &RetrievalError{Op: "topology info", URL: u, Err: errors.New("response has no physical_plan")}
	}
	return info.PhysicalPlan, nil
}

// ComponentMetrics fetches the given metric fields for every instance of component.
func (c *Client) ComponentMetrics(ctx context.Context, loc topology.Location, component string, fields []string) (topology.MetricsResult, error) {
	q := locationQuery(loc)
	q.Set("component", component)
	q.Set("interval", metricsInterval)
	for _, f := range fields {
		q.Add("metricname", f)
	}
	var res struct {
		Metrics *topology.MetricsResult `json:"metrics"`
	}
	u := c.endpoint("/topologies/metrics", q)
	if err := c.get(ctx, "component metrics", u, &res); err != nil {
		return nil, err
	}
	if res.Metrics == nil {
		return nil, &RetrievalError{Op: "component metrics", URL: u, Err: errors.New("response has no metrics")}
	}
	return *res.Metrics, nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	return c.baseURL + path + "?" + q.Encode()
}

func locationQuery(loc topology.Location) url.Values {
	q := url.Values{}
	q.Set("cluster", loc.Cluster)
	q.Set("environ", loc.Environment)
	q.Set("topology", loc.Topology)
	q.Set("role", loc.Role)
	return q
}

// get performs a GET request and decodes the envelope's result into out.
func (c *Client) get(ctx context.Context, op, u string, out any) error {
	log := logging.FromContext(ctx)
	reqID := uuid.New().String()
	fail := func(err error) error {
		log.Debug("tracker request failed", "op", op, "request_id", reqID, "err", err)
		return &RetrievalError{Op: op, URL: u, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)

	start := time.Now()
	log.Debug("tracker request", "op", op, "url", u, "request_id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var env response
	if err := json.Unmarshal(body, &env); err != nil {
		return fail(fmt.Errorf("cannot decode response: %w", err))
	}
	if env.Status != statusSuccess {
		return fail(fmt.Errorf("tracker status %q: %s", env.Status, env.Message))
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fail(fmt.Errorf("cannot decode result: %w", err))
	}
	log.Debug("tracker response", "op", op, "request_id", reqID, "version", env.Version, "elapsed", time.Since(start))
	return nil
}
