// Package gymclient talks to the gymlog API and keeps a local read cache.
// Every cached read is registered under the tags it depends on, and every
// mutation invalidates its tags synchronously once the server accepted it.
package gymclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymlog/internal/cache"
)

const (
	DefaultCacheSize = 8 * cache.MB
	userAgent        = "gymlog-client/1"
)

type Option func(c *Client)

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithCacheSize(sizeBytes int) Option {
	return func(c *Client) {
		c.cacheSize = sizeBytes
	}
}

// WithHistoryInvalidationOnSave makes SaveDay also drop the cached history of
// every exercise in the saved day. Without it history reads may be stale after
// a save until the cache is cleared.
func WithHistoryInvalidationOnSave() Option {
	return func(c *Client) {
		c.historyOnSave = true
	}
}

type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	cacheSize     int
	historyOnSave bool

	tokenMutex sync.RWMutex
	token      string

	cache *cache.MemoryStore
	saves *saveGate
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:   u,
		cacheSize: DefaultCacheSize,
		saves:     newSaveGate(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		}
	}
	c.cache = cache.NewMemoryStore(c.cacheSize)

	return c, nil
}

func (c *Client) Token() string {
	c.tokenMutex.RLock()
	defer c.tokenMutex.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.tokenMutex.Lock()
	c.token = token
	c.tokenMutex.Unlock()
}

// CachedEntries is the number of values in the local cache.
func (c *Client) CachedEntries() int64 {
	return c.cache.Len()
}

// ClearCache drops every cached read.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends the request and returns the body of a 2xx response together with its status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, int, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debugf("close response body: %s", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response of %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, resp.StatusCode, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, dst any) (int, error) {
	respBody, status, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return status, err
	}
	if dst == nil {
		return status, nil
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		return status, fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return status, nil
}

// cachedGet serves path from the cache, or fetches it and caches the raw body
// under tags. A body fetched while a mutation invalidated one of the tags is
// returned but not cached.
func (c *Client) cachedGet(ctx context.Context, key, path string, query url.Values, dst any, tags ...cache.Tag) error {
	raw, err := c.cache.Get(ctx, key)
	if err == nil {
		if jsonErr := json.Unmarshal(raw, dst); jsonErr == nil {
			return nil
		}
		log.Debugf("gymclient: dropping undecodable cache entry %s", key)
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Debugf("gymclient: cache get %s: %s", key, err)
	}

	gen, _ := c.cache.Generation(ctx, tags...)
	raw, _, err = c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode response of GET %s: %w", path, err)
	}

	c.store(ctx, key, raw, gen)
	return nil
}

func (c *Client) store(ctx context.Context, key string, raw []byte, gen cache.Generation) {
	stored, err := c.cache.SetIfCurrent(ctx, key, raw, 0, gen)
	if err != nil {
		log.Debugf("gymclient: cache set %s: %s", key, err)
		return
	}
	if !stored {
		log.Debugf("gymclient: %s changed while it was fetched, not cached", key)
	}
}

func (c *Client) invalidate(ctx context.Context, tags ...cache.Tag) {
	// the memory store never fails an invalidation
	_, _ = c.cache.Invalidate(ctx, tags...)
}
