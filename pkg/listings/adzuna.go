package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"
	httpTimeout   = 15 * time.Second
)

// ErrUpstreamUnavailable — внешний API вакансий недоступен или вернул
// неуспешный статус. Частичные результаты не возвращаются.
var ErrUpstreamUnavailable = errors.New("job listings API unavailable")

// Client fetches job listings from the Adzuna public API and normalises
// them into JobListing records. The full normalised list of every search
// is written to the output slot before being returned to the caller.
type Client struct {
	appID   string
	appKey  string
	country string // "us", "gb", "fr", …
	baseURL string
	output  OutputStore
	client  *http.Client
}

// NewClient constructs a client with a shared HTTP client.
// An empty baseURL selects the public Adzuna endpoint.
func NewClient(appID, appKey, country, baseURL string, output OutputStore) *Client {
	if country == "" {
		country = "us"
	}
	if baseURL == "" {
		baseURL = adzunaBaseURL
	}
	return &Client{
		appID:   appID,
		appKey:  appKey,
		country: country,
		baseURL: baseURL,
		output:  output,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// adzunaResponse mirrors the top-level Adzuna JSON response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

// adzunaResult mirrors a single Adzuna job listing.
type adzunaResult struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	RedirectURL string         `json:"redirect_url"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// Search запрашивает до numResults вакансий по роли и локации.
// Пустой результат от API — не ошибка: возвращается пустой список.
func (c *Client) Search(ctx context.Context, role, location string, numResults int) ([]JobListing, error) {
	if role == "" || location == "" {
		return nil, errors.New("role and location are required")
	}
	if numResults < 1 {
		return nil, fmt.Errorf("numResults must be >= 1, got %d", numResults)
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", c.baseURL, c.country)
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", strconv.Itoa(numResults))
	params.Set("what", role)
	params.Set("where", location)
	params.Set("content-type", "application/json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: adzuna returned %d: %s", ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var apiResp adzunaResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrUpstreamUnavailable, err)
	}

	jobs := make([]JobListing, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		jobs = append(jobs, JobListing{
			Role:        orSentinel(r.Title, SentinelText),
			Company:     orSentinel(r.Company.DisplayName, SentinelText),
			Location:    orSentinel(r.Location.DisplayName, SentinelText),
			Link:        orSentinel(r.RedirectURL, SentinelLink),
			Description: orSentinel(r.Description, SentinelDescription),
		})
	}
	// Upstream may ignore results_per_page; re-slice defensively.
	if len(jobs) > numResults {
		jobs = jobs[:numResults]
	}

	if err := c.output.Write(ctx, jobs); err != nil {
		return nil, fmt.Errorf("write search output: %w", err)
	}
	return jobs, nil
}
