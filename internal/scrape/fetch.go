package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "JobFinder/1.0 (+local)"

// Fetcher is a rate-limited HTTP GET for board pages.
type Fetcher struct {
	hc  *http.Client
	lim *HostLimiter
}

func NewFetcher(reqPerSec float64, burst int) *Fetcher {
	return &Fetcher{
		hc:  &http.Client{Timeout: 20 * time.Second},
		lim: NewHostLimiter(reqPerSec, burst),
	}
}

func (f *Fetcher) Get(ctx context.Context, url string) (string, error) {
	if err := f.lim.WaitURL(ctx, url); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := f.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("get %s: status %d", url, res.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(b), nil
}
