package chatsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to a wgchat server. It is safe for concurrent use, but all
// calls share one cookie jar and therefore one session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil) // only fails on a non-nil bad PublicSuffixList
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// Cookie returns the value of a session cookie the server set, or "".
func (c *Client) Cookie(name string) string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(req.URL) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
