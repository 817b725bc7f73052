package catbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/mewbox/clowder/internal/cats"
)

// Collection is the remote document store holding the cat records. It is
// implemented by *Client and can be stubbed for testing.
type Collection interface {
	FetchAll(ctx context.Context) ([]cats.Cat, error)
	Persist(ctx context.Context, cat cats.Cat) error
}

// Ensure Client implements Collection at compile time.
var _ Collection = (*Client)(nil)

// Client talks to the cat store's REST collection.
type Client struct {
	baseURL    *url.URL
	collection string
	authToken  string
	http       *http.Client
	userAgent  string
}

const (
	defaultUserAgent = "clowder/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for one collection. baseURL must be an absolute
// http(s) URL; collection is the path segment the records live under.
func NewClient(baseURL, collection, authToken string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	collection = strings.Trim(strings.TrimSpace(collection), "/")
	if collection == "" {
		return nil, fmt.Errorf("collection is empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    base,
		collection: collection,
		authToken:  authToken,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// record is the wire shape of one stored cat. Pointer fields distinguish a
// missing field from a zero value so shape mismatches fail loudly.
type record struct {
	Name   *string `json:"name"`
	Img    *string `json:"img"`
	Clicks *int    `json:"clicks"`
}

// body is the wire shape sent on a record overwrite. The entry identifier
// lives in the URL only, never in the body.
type body struct {
	Name   string `json:"name"`
	Img    string `json:"img"`
	Clicks int    `json:"clicks"`
}

// FetchAll retrieves every cat in the collection. The response is a JSON
// object keyed by entry identifier; each key becomes the cat's RemoteID.
// Records come back in key order; the store attaches no meaning to the order.
func (c *Client) FetchAll(ctx context.Context) ([]cats.Cat, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	const op = "fetch"

	var payload map[string]record
	if err := c.do(ctx, op, http.MethodGet, c.collectionPath(), nil, &payload); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(payload))
	for id := range payload {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]cats.Cat, 0, len(ids))
	for _, id := range ids {
		rec := payload[id]
		if rec.Name == nil || rec.Img == nil || rec.Clicks == nil {
			return nil, badBody(op, fmt.Sprintf("entry %q is missing a field", id), nil)
		}
		out = append(out, cats.Cat{
			Name:        *rec.Name,
			ImageSource: *rec.Img,
			ClickCount:  *rec.Clicks,
			RemoteID:    id,
		})
	}
	return out, nil
}

// Persist overwrites one record with the cat's current contents (full-record
// PUT). A cat without a RemoteID has nowhere to go and persisting it is a
// no-op success.
func (c *Client) Persist(ctx context.Context, cat cats.Cat) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if cat.RemoteID == "" {
		return nil
	}
	const op = "persist"

	payload := body{Name: cat.Name, Img: cat.ImageSource, Clicks: cat.ClickCount}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return c.do(ctx, op, http.MethodPut, c.entryPath(cat.RemoteID), encoded, nil)
}

func (c *Client) collectionPath() *url.URL {
	return c.baseURL.JoinPath(c.collection + ".json")
}

func (c *Client) entryPath(id string) *url.URL {
	return c.baseURL.JoinPath(c.collection, id+".json")
}

func (c *Client) do(ctx context.Context, op, method string, reqURL *url.URL, reqBody []byte, dest any) error {
	if c.authToken != "" {
		values := url.Values{}
		values.Set("auth", c.authToken)
		reqURL.RawQuery = values.Encode()
	}

	reader := bytes.NewReader(reqBody)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return badURL(op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return badStatus(op, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return badBody(op, "could not decode collection", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
