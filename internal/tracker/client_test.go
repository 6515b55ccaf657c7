package tracker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heron-explorer/internal/topology"
	"heron-explorer/internal/view"
)

var _ view.Tracker = (*Client)(nil)

var loc = topology.Location{Cluster: "local", Role: "ops", Environment: "default", Topology: "wordcount"}

func TestTopologyInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/topologies/info", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "local", q.Get("cluster"))
		assert.Equal(t, "default", q.Get("environ"))
		assert.Equal(t, "wordcount", q.Get("topology"))
		assert.Equal(t, "ops", q.Get("role"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		w.Write([]byte(`{"status": "success", "version": "0.14", "executiontime": 0.01, "result": {
			"name": "wordcount",
			"physical_plan": {
				"stmgrs": {"stmgr-1": {"host": "h1", "port": 1, "pid": 10, "instance_ids": ["container_1_word_1"]}},
				"spouts": {"word": ["container_1_word_1"]},
				"bolts": {"count": []}
			}}}`))
	}))
	defer srv.Close()

	plan, err := NewClient(srv.URL+"/", time.Second).TopologyInfo(context.Background(), loc)
	require.NoError(t, err)
	require.Equal(t, []string{"word"}, plan.Spouts.Names())
	require.Equal(t, []string{"count"}, plan.Bolts.Names())
	require.Equal(t, "h1", plan.Stmgrs["stmgr-1"].Host)
}

func TestComponentMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/topologies/metrics", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "count", q.Get("component"))
		assert.Equal(t, "-1", q.Get("interval"))
		assert.Equal(t, []string{"__emit-count/default", "__jvm-uptime-secs"}, q["metricname"])
		w.Write([]byte(`{"status": "success", "result": {"component": "count", "interval": 100, "metrics": {
			"__emit-count/default": {"container_1_count_2": "40", "container_1_count_1": "12"}
		}}}`))
	}))
	defer srv.Close()

	m, err := NewClient(srv.URL, time.Second).ComponentMetrics(context.Background(), loc, "count", []string{"__emit-count/default", "__jvm-uptime-secs"})
	require.NoError(t, err)
	require.Len(t, m, 1)
	require.Equal(t, "container_1_count_2", m[0].Samples[0].Instance)
	v, ok := m.Lookup("__emit-count/default", "container_1_count_1")
	require.True(t, ok)
	require.Equal(t, "12", v)
}

func TestRetrievalFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusInternalServerError, "boom"},
		{"tracker failure", http.StatusOK, `{"status": "failure", "message": "topology not found"}`},
		{"malformed body", http.StatusOK, `not json`},
		{"missing plan", http.StatusOK, `{"status": "success", "result": {"name": "x"}}`},
		{"malformed plan", http.StatusOK, `{"status": "success", "result": {"physical_plan": {"spouts": ["x"]}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).TopologyInfo(context.Background(), loc)
			require.ErrorIs(t, err, ErrRetrieval)
			var re *RetrievalError
			require.True(t, errors.As(err, &re))
			require.Equal(t, "topology info", re.Op)
		})
	}
}

func TestMissingMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "result": {"component": "count"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).ComponentMetrics(context.Background(), loc, "count", nil)
	require.ErrorIs(t, err, ErrRetrieval)
}

func TestUnreachableTracker(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).TopologyInfo(context.Background(), loc)
	require.ErrorIs(t, err, ErrRetrieval)
}

func TestCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "result": {"physical_plan": {}}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, time.Second).TopologyInfo(ctx, loc)
	require.ErrorIs(t, err, ErrRetrieval)
	require.ErrorIs(t, err, context.Canceled)
}
