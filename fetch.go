package suttadown

import (
	"context"
	"io"
	"log/slog"
	"net/http"
)

// DefaultRandomURL redirects to a randomly chosen sutta page.
const DefaultRandomURL = "https://www.dhammatalks.org/random_sutta.php"

// Page is a fetched HTML document.
type Page struct {
	HTML []byte
	URL  string // final URL after redirects
}

// Fetcher retrieves sutta pages over HTTP.
type Fetcher struct {
	Client    *http.Client // nil uses http.DefaultClient
	RandomURL string       // empty uses DefaultRandomURL
	UserAgent string
}

// Fetch retrieves url, following redirects. Transport failures and
// non-2xx responses are returned as *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	final := resp.Request.URL.String()
	slog.Debug("fetched page", "url", url, "final_url", final, "bytes", len(b))
	return &Page{HTML: b, URL: final}, nil
}

// Random retrieves a random sutta page.
func (f *Fetcher) Random(ctx context.Context) (*Page, error) {
	u := f.RandomURL
	if u == "" {
		u = DefaultRandomURL
	}
	return f.Fetch(ctx, u)
}

// RandomSutta fetches a random sutta and converts it.
func RandomSutta(ctx context.Context, f *Fetcher) (Result, error) {
	page, err := f.Random(ctx)
	if err != nil {
		return Result{}, err
	}
	return ConvertSutta(string(page.HTML), page.URL)
}
