package dashsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

// Client talks to a labdash server the way the dashboard pages do: it keeps
// the session cookie in a jar and echoes the CSRF token the server hands out.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu        sync.RWMutex
	csrfToken string
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.csrfToken
}

func (c *Client) rememberToken(resp *http.Response) {
	if t := resp.Header.Get(CSRFHeader); t != "" {
		c.mu.Lock()
		c.csrfToken = t
		c.mu.Unlock()
	}
}

// CSRFHeader carries the anti-forgery token both ways.
const CSRFHeader = "X-CSRF-Token"
