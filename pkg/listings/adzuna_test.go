package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// memoryOutput is an in-memory OutputStore stub.
type memoryOutput struct {
	mu   sync.Mutex
	jobs []JobListing
	set  bool
}

func (m *memoryOutput) Write(_ context.Context, jobs []JobListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = jobs
	m.set = true
	return nil
}

func (m *memoryOutput) Read(_ context.Context) ([]JobListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, ErrMalformedOutput
	}
	return m.jobs, nil
}

func stubUpstream(t *testing.T, status int, payload any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func rawResult(title, company, location, link, description string) map[string]any {
	m := map[string]any{}
	if title != "" {
		m["title"] = title
	}
	if company != "" {
		m["company"] = map[string]any{"display_name": company}
	}
	if location != "" {
		m["location"] = map[string]any{"display_name": location}
	}
	if link != "" {
		m["redirect_url"] = link
	}
	if description != "" {
		m["description"] = description
	}
	return m
}

func TestSearchNormalizesMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want JobListing
	}{
		{
			name: "all fields present",
			raw:  rawResult("Data Scientist", "Acme", "New York", "https://x.test/1", "Great role"),
			want: JobListing{Role: "Data Scientist", Company: "Acme", Location: "New York", Link: "https://x.test/1", Description: "Great role"},
		},
		{
			name: "missing company and location",
			raw:  rawResult("Data Scientist", "", "", "https://x.test/2", "desc"),
			want: JobListing{Role: "Data Scientist", Company: "N/A", Location: "N/A", Link: "https://x.test/2", Description: "desc"},
		},
		{
			name: "missing link",
			raw:  rawResult("Engineer", "Acme", "Austin", "", "desc"),
			want: JobListing{Role: "Engineer", Company: "Acme", Location: "Austin", Link: "#", Description: "desc"},
		},
		{
			name: "missing description",
			raw:  rawResult("Engineer", "Acme", "Austin", "https://x.test/3", ""),
			want: JobListing{Role: "Engineer", Company: "Acme", Location: "Austin", Link: "https://x.test/3", Description: "No description available."},
		},
		{
			name: "everything missing",
			raw:  map[string]any{},
			want: JobListing{Role: "N/A", Company: "N/A", Location: "N/A", Link: "#", Description: "No description available."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := stubUpstream(t, http.StatusOK, map[string]any{"results": []map[string]any{tt.raw}})
			c := NewClient("id", "key", "us", srv.URL, &memoryOutput{})

			got, err := c.Search(context.Background(), "role", "loc", 5)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, tt.want, got[0])
		})
	}
}

func TestSearchTruncatesToRequestedCount(t *testing.T) {
	raws := make([]map[string]any, 0, 5)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		raws = append(raws, rawResult(title, "co", "loc", "https://x.test", "d"))
	}
	srv := stubUpstream(t, http.StatusOK, map[string]any{"results": raws})
	c := NewClient("id", "key", "us", srv.URL, &memoryOutput{})

	got, err := c.Search(context.Background(), "role", "loc", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// upstream order preserved
	require.Equal(t, "a", got[0].Role)
	require.Equal(t, "b", got[1].Role)
	require.Equal(t, "c", got[2].Role)
}

func TestSearchEmptyUpstreamIsNotAnError(t *testing.T) {
	srv := stubUpstream(t, http.StatusOK, map[string]any{"results": []map[string]any{}})
	c := NewClient("id", "key", "us", srv.URL, &memoryOutput{})

	got, err := c.Search(context.Background(), "role", "loc", 5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchUpstreamFailure(t *testing.T) {
	srv := stubUpstream(t, http.StatusBadGateway, map[string]any{"error": "boom"})
	out := &memoryOutput{}
	c := NewClient("id", "key", "us", srv.URL, out)

	_, err := c.Search(context.Background(), "role", "loc", 5)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	require.False(t, out.set, "no partial results must be written on failure")
}

func TestSearchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused
	c := NewClient("id", "key", "us", srv.URL, &memoryOutput{})

	_, err := c.Search(context.Background(), "role", "loc", 5)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestSearchWritesOutputSlot(t *testing.T) {
	srv := stubUpstream(t, http.StatusOK, map[string]any{"results": []map[string]any{
		rawResult("a", "co", "loc", "https://x.test", "d"),
	}})
	out := &memoryOutput{}
	c := NewClient("id", "key", "us", srv.URL, out)

	got, err := c.Search(context.Background(), "role", "loc", 5)
	require.NoError(t, err)

	slot, err := out.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, got, slot)
}

func TestSearchIsDeterministic(t *testing.T) {
	srv := stubUpstream(t, http.StatusOK, map[string]any{"results": []map[string]any{
		rawResult("a", "", "loc", "", "d"),
		rawResult("b", "co", "", "https://x.test", ""),
	}})
	c := NewClient("id", "key", "us", srv.URL, &memoryOutput{})

	first, err := c.Search(context.Background(), "role", "loc", 5)
	require.NoError(t, err)
	second, err := c.Search(context.Background(), "role", "loc", 5)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical searches diverged: %v vs %v", first, second)
	}
	fj, _ := json.Marshal(first)
	sj, _ := json.Marshal(second)
	require.Equal(t, string(fj), string(sj))
}

func TestSearchValidatesInput(t *testing.T) {
	c := NewClient("id", "key", "us", "http://unused.test", &memoryOutput{})

	_, err := c.Search(context.Background(), "", "loc", 5)
	require.Error(t, err)
	_, err = c.Search(context.Background(), "role", "", 5)
	require.Error(t, err)
	_, err = c.Search(context.Background(), "role", "loc", 0)
	require.Error(t, err)
}
