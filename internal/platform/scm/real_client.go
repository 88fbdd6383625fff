package scm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/tidwall/gjson"

	"github.com/steelops/scmctl/internal/util/retry"
)

// RealClient implements ControllerAPI against a live SteelConnect Manager.
type RealClient struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	log        hclog.Logger

	retryMax   int
	retryDelay time.Duration
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the derived API base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *RealClient) {
		c.baseURL = url
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log hclog.Logger) ClientOption {
	return func(c *RealClient) {
		c.log = log
	}
}

// WithRetry tunes the backoff applied to read requests.
func WithRetry(maxRetries int, initialDelay time.Duration) ClientOption {
	return func(c *RealClient) {
		c.retryMax = maxRetries
		c.retryDelay = initialDelay
	}
}

// NewRealClient creates a client for the given controller hostname,
// authenticating every request with HTTP basic auth.
func NewRealClient(controller, username, password string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		baseURL:    "https://" + controller + "/api/scm.config/1.0/",
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        hclog.NewNullLogger(),
		retryMax:   2,
		retryDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listEnvelope is the wrapper every list endpoint returns.
type listEnvelope struct {
	Items json.RawMessage `json:"items"`
}

// get fetches a list resource and decodes its items array into out.
// Transport failures are retried with backoff; an HTTP error status is not.
func (c *RealClient) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	var body []byte

	err := retry.WithExponentialBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Fatal(err)
		}
		req.SetBasicAuth(c.username, c.password)
		req.Header.Set("Accept", "application/json")

		c.log.Debug("controller request", "method", "GET", "url", url)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &TransportError{Op: http.MethodGet, URL: url, Err: err}
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return &TransportError{Op: http.MethodGet, URL: url, Err: err}
		}
		if resp.StatusCode != http.StatusOK {
			return retry.Fatal(newAPIError(resp.StatusCode, b))
		}
		body = b
		return nil
	}, retry.WithMaxRetries(c.retryMax), retry.WithInitialDelay(c.retryDelay))
	if err != nil {
		return err
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	if err := json.Unmarshal(env.Items, out); err != nil {
		return fmt.Errorf("decoding %s items: %w", path, err)
	}
	return nil
}

// mutate issues a write and returns the raw response body. A non-2xx status
// becomes an *APIError carrying the server-supplied message and code; the
// caller decides whether that aborts anything.
func (c *RealClient) mutate(ctx context.Context, method, path string, payload any) ([]byte, error) {
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s payload: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("controller request", "method", method, "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method, URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: method, URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, b)
	}
	return b, nil
}

// newAPIError extracts the error message and code from a controller error
// body, which nests them under "error".
func newAPIError(status int, body []byte) *APIError {
	return &APIError{
		Status:  status,
		Code:    int(gjson.GetBytes(body, "error.code").Int()),
		Message: gjson.GetBytes(body, "error.message").String(),
	}
}

// ListOrgs returns all organizations visible to the credentials.
func (c *RealClient) ListOrgs(ctx context.Context) ([]Org, error) {
	var orgs []Org
	if err := c.get(ctx, "orgs", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListSites returns all sites visible to the credentials, across orgs.
func (c *RealClient) ListSites(ctx context.Context) ([]Site, error) {
	var sites []Site
	if err := c.get(ctx, "sites", &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// ListWANs returns the WANs defined for an organization.
func (c *RealClient) ListWANs(ctx context.Context, orgID string) ([]WAN, error) {
	var wans []WAN
	if err := c.get(ctx, "org/"+orgID+"/wans", &wans); err != nil {
		return nil, err
	}
	return wans, nil
}

// ListZones returns the zones of a site.
func (c *RealClient) ListZones(ctx context.Context, siteID string) ([]Zone, error) {
	var zones []Zone
	if err := c.get(ctx, "site/"+siteID+"/zones", &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// ListUplinks returns the uplinks of a site.
func (c *RealClient) ListUplinks(ctx context.Context, siteID string) ([]Uplink, error) {
	var uplinks []Uplink
	if err := c.get(ctx, "site/"+siteID+"/uplinks", &uplinks); err != nil {
		return nil, err
	}
	return uplinks, nil
}

// CreateSite creates a site in an organization and returns the created
// record, whose ID drives the rest of the row's provisioning sequence.
func (c *RealClient) CreateSite(ctx context.Context, orgID string, payload SitePayload) (*Site, error) {
	b, err := c.mutate(ctx, http.MethodPost, "org/"+orgID+"/sites", payload)
	if err != nil {
		return nil, err
	}
	var site Site
	if err := json.Unmarshal(b, &site); err != nil {
		return nil, fmt.Errorf("decoding created site: %w", err)
	}
	return &site, nil
}

// CreateUplink creates an uplink in an organization.
func (c *RealClient) CreateUplink(ctx context.Context, orgID string, payload UplinkPayload) (*Uplink, error) {
	b, err := c.mutate(ctx, http.MethodPost, "org/"+orgID+"/uplinks", payload)
	if err != nil {
		return nil, err
	}
	var uplink Uplink
	if err := json.Unmarshal(b, &uplink); err != nil {
		return nil, fmt.Errorf("decoding created uplink: %w", err)
	}
	return &uplink, nil
}

// UpdateUplink updates an existing uplink.
func (c *RealClient) UpdateUplink(ctx context.Context, uplinkID string, payload UplinkPayload) error {
	_, err := c.mutate(ctx, http.MethodPut, "uplink/"+uplinkID, payload)
	return err
}

// UpdateZone updates a zone's name and VLAN tag.
func (c *RealClient) UpdateZone(ctx context.Context, zoneID string, payload ZonePayload) error {
	_, err := c.mutate(ctx, http.MethodPut, "zone/"+zoneID, payload)
	return err
}

// UpdateNetwork updates a zone's network subnet and WAN membership.
func (c *RealClient) UpdateNetwork(ctx context.Context, networkID string, payload NetworkPayload) error {
	_, err := c.mutate(ctx, http.MethodPut, "network/"+networkID, payload)
	return err
}

// DeleteSite removes a site by id.
func (c *RealClient) DeleteSite(ctx context.Context, siteID string) error {
	_, err := c.mutate(ctx, http.MethodDelete, "site/"+siteID, nil)
	return err
}
