package fetch

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
)

// robotsGate lazily fetches and caches the target host's robots.txt for the
// lifetime of the client. The scraper talks to exactly one host, so a single
// slot is enough.
type robotsGate struct {
	once sync.Once
	data *robotstxt.RobotsData
}

// allowed reports whether robots.txt permits fetching u. An unreachable or
// missing robots file means allowed, matching crawler convention.
func (g *robotsGate) allowed(ctx context.Context, client *http.Client, ua string, u *url.URL) bool {
	g.once.Do(func() {
		g.data = fetchRobots(ctx, client, ua, u)
	})
	if g.data == nil {
		return true
	}
	return g.data.FindGroup(ua).Test(u.Path)
}

func fetchRobots(ctx context.Context, client *http.Client, ua string, u *url.URL) *robotstxt.RobotsData {
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil
	}
	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return data
}
