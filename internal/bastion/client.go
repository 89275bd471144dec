package bastion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fetcher defines the read surface of the Bastion API used by the console.
// It is implemented by *Client and can be stubbed in tests.
type Fetcher interface {
	FetchStatus(ctx context.Context) (*StatusResponse, error)
	FetchCertificates(ctx context.Context) ([]Certificate, error)
	FetchAuthorities(ctx context.Context) ([]Authority, error)
	FetchSigningRequests(ctx context.Context) ([]SigningRequest, error)
	FetchTemplates(ctx context.Context) ([]Template, error)
	FetchTrustAnchors(ctx context.Context) ([]TrustAnchor, error)
	FetchApprovals(ctx context.Context) ([]Approval, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the Bastion HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8632"
	defaultUserAgent = "certview/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchStatus retrieves daemon status and per-authority health.
func (c *Client) FetchStatus(ctx context.Context) (*StatusResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchCertificates retrieves the full certificate collection.
func (c *Client) FetchCertificates(ctx context.Context) ([]Certificate, error) {
	var payload CertificateListResponse
	if err := c.do(ctx, http.MethodGet, "/api/certificates", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchAuthorities retrieves the configured certificate authorities.
func (c *Client) FetchAuthorities(ctx context.Context) ([]Authority, error) {
	var payload AuthorityListResponse
	if err := c.do(ctx, http.MethodGet, "/api/authorities", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchSigningRequests retrieves pending and resolved CSRs.
func (c *Client) FetchSigningRequests(ctx context.Context) ([]SigningRequest, error) {
	var payload SigningRequestListResponse
	if err := c.do(ctx, http.MethodGet, "/api/requests", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchTemplates retrieves the issuance templates.
func (c *Client) FetchTemplates(ctx context.Context) ([]Template, error) {
	var payload TemplateListResponse
	if err := c.do(ctx, http.MethodGet, "/api/templates", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchTrustAnchors retrieves the trust store entries.
func (c *Client) FetchTrustAnchors(ctx context.Context) ([]TrustAnchor, error) {
	var payload TrustAnchorListResponse
	if err := c.do(ctx, http.MethodGet, "/api/truststore", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchApprovals retrieves the approval queue.
func (c *Client) FetchApprovals(ctx context.Context) ([]Approval, error) {
	var payload ApprovalListResponse
	if err := c.do(ctx, http.MethodGet, "/api/approvals", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// RevokeCertificate asks the daemon to revoke one certificate.
func (c *Client) RevokeCertificate(ctx context.Context, id int64, reason string) error {
	if id <= 0 {
		return fmt.Errorf("certificate id required")
	}
	body := map[string]string{"reason": strings.TrimSpace(reason)}
	path := "/api/certificates/" + strconv.FormatInt(id, 10) + "/revoke"
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// ResolveApproval approves or denies one approval request. Action must be
// "approve" or "deny".
func (c *Client) ResolveApproval(ctx context.Context, id int64, action string) error {
	if id <= 0 {
		return fmt.Errorf("approval id required")
	}
	switch action {
	case "approve", "deny":
	default:
		return fmt.Errorf("unknown approval action %q", action)
	}
	body := map[string]string{"action": action}
	path := "/api/approvals/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
