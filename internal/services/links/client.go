package links

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrInvalidArgument is returned when a required argument is missing or
// blank. It is raised before any request is sent.
var ErrInvalidArgument = errors.New("invalid argument")

// Sender executes a prepared HTTP request. *http.Client satisfies it, as
// does transport.Client, which layers auth and retries on top. Request
// building and response mapping stay here; everything transport-level
// (headers, backoff, timeouts, cancellation) belongs to the Sender.
type Sender interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Egnyte links collection.
type Client struct {
	baseURL string
	sender  Sender
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a links client rooted at baseURL, which should point
// at the public API root (".../pubapi/v1").
func NewClient(baseURL string, sender Sender) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		sender:  sender,
	}
}

// ListLinks returns one page of link IDs matching the provided filters.
// Absent filters are omitted from the query string entirely; the list
// payload is returned as the API sent it.
func (c *Client) ListLinks(ctx context.Context, opts ListOptions) (*LinksList, error) {
	u := c.baseURL + "/links"
	if qs := opts.encode(); qs != "" {
		u += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.sender.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error listing links: %s", resp.Status)
	}

	var result LinksList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetLinkDetails fetches a single link by ID and maps the response into
// the domain model. Unknown enum values fall back to their defaults.
func (c *Client) GetLinkDetails(ctx context.Context, linkID string) (*LinkDetails, error) {
	if strings.TrimSpace(linkID) == "" {
		return nil, fmt.Errorf("%w: linkID must not be blank", ErrInvalidArgument)
	}

	u := fmt.Sprintf("%s/links/%s", c.baseURL, url.PathEscape(linkID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.sender.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error getting link %s: %s", linkID, resp.Status)
	}

	var raw linkDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return mapLinkDetails(&raw), nil
}

// CreateLink creates a new link for the given path. Optional fields left
// unset in link are omitted from the request body, letting the server
// apply its own defaults.
func (c *Client) CreateLink(ctx context.Context, link NewLink) (*CreatedLinks, error) {
	if strings.TrimSpace(link.Path) == "" {
		return nil, fmt.Errorf("%w: path must not be blank", ErrInvalidArgument)
	}

	body, err := json.Marshal(mapCreateLinkRequest(link))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/links", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.sender.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("error creating link for %s: %s", link.Path, resp.Status)
	}

	var raw createLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return mapCreatedLinks(&raw), nil
}

// DeleteLink removes a link by ID.
func (c *Client) DeleteLink(ctx context.Context, linkID string) error {
	if strings.TrimSpace(linkID) == "" {
		return fmt.Errorf("%w: linkID must not be blank", ErrInvalidArgument)
	}

	u := fmt.Sprintf("%s/links/%s", c.baseURL, url.PathEscape(linkID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.sender.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error deleting link %s: %s", linkID, resp.Status)
	}

	return nil
}
