package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.RemoteConfig{BaseURL: baseURL, TimeoutSeconds: 2})
}

func TestAvailableCachesProbe(t *testing.T) {
	probes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			probes++
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	assert.True(t, c.Available(ctx))
	assert.True(t, c.Available(ctx))
	assert.Equal(t, 1, probes)

	c.Invalidate()
	assert.True(t, c.Available(ctx))
	assert.Equal(t, 2, probes)
}

func TestAvailableWithoutBaseURL(t *testing.T) {
	c := newTestClient("")
	assert.False(t, c.Available(context.Background()))
}

func TestAvailableUnhealthyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	assert.False(t, c.Available(context.Background()))
}

func TestFetchReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/api/v1/analytics/report":
			assert.Equal(t, "last_7_days", r.URL.Query().Get("range"))
			assert.Equal(t, "411001", r.URL.Query().Get("pincode"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"summary":{"total_orders":42,"total_revenue":1000}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	filter := analytics.Filter{Range: analytics.RangeLast7Days, Pincode: "411001"}

	report, ok := c.FetchReport(context.Background(), filter)
	require.True(t, ok)
	assert.Equal(t, 42, report.Summary.TotalOrders)
	assert.Equal(t, 1000.0, report.Summary.TotalRevenue)
}

func TestFetchReportNon200FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, ok := c.FetchReport(context.Background(), analytics.Filter{})
	assert.False(t, ok)
}

func TestFetchReportGarbageBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, ok := c.FetchReport(context.Background(), analytics.Filter{})
	assert.False(t, ok)
}

func TestFetchReportNetworkErrorInvalidatesAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	c := newTestClient(srv.URL)
	require.True(t, c.Available(context.Background()))

	srv.Close()

	_, ok := c.FetchReport(context.Background(), analytics.Filter{})
	assert.False(t, ok)

	// The failed request dropped the cached availability; the next probe
	// runs against the dead server and reports unavailable.
	assert.False(t, c.Available(context.Background()))
}

func TestFilterQueryOmitsDefaults(t *testing.T) {
	q := filterQuery(analytics.Filter{})
	assert.Empty(t, q.Encode())

	q = filterQuery(analytics.Filter{Range: analytics.RangeLifetime})
	assert.Empty(t, q.Encode())

	q = filterQuery(analytics.Filter{Products: []string{"A", "B"}})
	assert.Equal(t, "A,B", q.Get("products"))
}
