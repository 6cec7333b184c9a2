// Package portal is the HTTP client for the registrar portal's collection
// and action endpoints. Collection endpoints are GET queries returning one
// page of records plus pagination metadata; action endpoints are POSTs to a
// per-record URL carrying the anti-forgery token.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"govreg/internal/config"
	"govreg/pkg/logging"
)

const (
	domainsPath  = "/get-domains-json/"
	requestsPath = "/get-domain-requests-json/"
	membersPath  = "/get-portfolio-members-json/"

	sessionCookieName = "sessionid"
	csrfHeaderName    = "X-CSRFToken"
	csrfFieldName     = "csrfmiddlewaretoken"
)

// Client talks to one portal instance. It is safe for concurrent use.
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	sessionCookie string
	csrfToken     string
}

// New builds a Client from the portal section of the configuration.
func New(cfg config.PortalConfig) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("portal base URL %q must be absolute", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       base,
		httpClient:    &http.Client{Timeout: timeout},
		sessionCookie: cfg.SessionCookie,
		csrfToken:     cfg.CSRFToken,
	}, nil
}

// Domains fetches one page of the domains collection.
func (c *Client) Domains(ctx context.Context, q Query) (*DomainsPage, error) {
	var page DomainsPage
	if err := c.getJSON(ctx, domainsPath, q, &page); err != nil {
		return nil, err
	}
	if page.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrEndpoint, page.Error)
	}
	return &page, nil
}

// Requests fetches one page of the domain requests collection.
func (c *Client) Requests(ctx context.Context, q Query) (*RequestsPage, error) {
	var page RequestsPage
	if err := c.getJSON(ctx, requestsPath, q, &page); err != nil {
		return nil, err
	}
	if page.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrEndpoint, page.Error)
	}
	return &page, nil
}

// Members fetches one page of the organization members collection.
func (c *Client) Members(ctx context.Context, q Query) (*MembersPage, error) {
	var page MembersPage
	if err := c.getJSON(ctx, membersPath, q, &page); err != nil {
		return nil, err
	}
	if page.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrEndpoint, page.Error)
	}
	return &page, nil
}

// SubmitAction POSTs to a per-record action URL (delete, removal, ...)
// with the anti-forgery token. The action URL may be absolute or relative
// to the portal base. A returned ActionResult with Error set is an
// application-level refusal, not a transport failure; the caller decides
// how to surface it.
func (c *Client) SubmitAction(ctx context.Context, actionURL string) (*ActionResult, error) {
	ref, err := url.Parse(actionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid action URL %q: %w", actionURL, err)
	}
	target := c.baseURL.ResolveReference(ref)

	form := url.Values{csrfFieldName: {c.csrfToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(csrfHeaderName, c.csrfToken)
	c.addSession(req)

	logging.Debug("Portal", "POST %s", target.Path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: target.String()}
	}

	var result ActionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding action response: %w", err)
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q Query, out any) error {
	target := *c.baseURL
	target.Path = strings.TrimSuffix(target.Path, "/") + path
	target.RawQuery = q.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	c.addSession(req)

	logging.Debug("Portal", "GET %s?%s", target.Path, target.RawQuery)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, URL: target.String()}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) addSession(req *http.Request) {
	if c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.sessionCookie})
	}
}
