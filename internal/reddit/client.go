package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/djenkins1/quickview/internal/config"
)

// Client fetches subreddit listings and name suggestions.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	pageLimit  int
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Reddit.HTTPTimeout,
		},
		baseURL:   cfg.Reddit.BaseURL,
		userAgent: cfg.Reddit.UserAgent,
		pageLimit: cfg.Reddit.PageLimit,
	}
}

// FetchPage requests one page of the newest posts in a subreddit. Pass an
// empty cursor for the first page; subsequent pages use the After value of
// the previous one.
func (c *Client) FetchPage(ctx context.Context, subreddit, after string) (*Page, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.pageLimit))
	if after != "" {
		params.Set("after", after)
	}

	endpoint := fmt.Sprintf("%s/r/%s/new.json?%s", c.baseURL, url.PathEscape(subreddit), params.Encode())

	var listing Listing
	if err := c.getJSON(ctx, endpoint, &listing); err != nil {
		return nil, fmt.Errorf("fetching r/%s: %w", subreddit, err)
	}

	page := &Page{
		Posts: make([]Post, 0, len(listing.Data.Children)),
		After: listing.Data.After,
	}
	for _, child := range listing.Data.Children {
		page.Posts = append(page.Posts, child.Data)
	}

	return page, nil
}

// SearchSubreddits returns subreddit names matching the query, for
// autocomplete suggestions.
func (c *Client) SearchSubreddits(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)

	endpoint := fmt.Sprintf("%s/subreddits/search.json?%s", c.baseURL, params.Encode())

	var listing SubredditListing
	if err := c.getJSON(ctx, endpoint, &listing); err != nil {
		return nil, fmt.Errorf("searching subreddits: %w", err)
	}

	names := make([]string, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Data.DisplayName != "" {
			names = append(names, child.Data.DisplayName)
		}
	}

	return names, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
