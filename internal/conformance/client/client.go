// Package client is the harness's HTTP surface to the target favorites API.
// Each scenario owns its own Client: the cookie jar and credential are never
// shared across scenarios, and nothing here retries.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"favorites-conformance/internal/conformance/config"
	"favorites-conformance/internal/conformance/domain/model"
	"favorites-conformance/internal/shared/errors"
)

const formContentType = "application/x-www-form-urlencoded"

// SpotResult carries everything observed from one creation request. The
// runner, not the client, judges the status: any HTTP response is a valid
// observation here.
type SpotResult struct {
	StatusCode int
	Body       []byte
	// Response is the decoded body when it was parseable JSON, nil otherwise.
	Response *model.SpotResponse
}

// Client drives the target favorites API for a single scenario.
type Client struct {
	baseURL       string
	tokenPath     string
	favoritesPath string
	cookieName    string
	httpClient    *http.Client
}

// New creates a Client with a fresh cookie jar.
func New(cfg *config.Config) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.NewInternalError("failed to create cookie jar").WithCause(err)
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.TargetURL, "/"),
		tokenPath:     cfg.TokenPath,
		favoritesPath: cfg.FavoritesPath,
		cookieName:    cfg.CookieName,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.HTTPTimeout,
		},
	}, nil
}

// AcquireSession obtains a fresh session credential from the token endpoint.
// Any 2xx with a retrievable credential succeeds; everything else is a
// transport-class failure carrying the observed status and body.
func (c *Client) AcquireSession(ctx context.Context) (*model.SessionCredential, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.tokenPath, nil)
	if err != nil {
		return nil, errors.NewTransportError("failed to build session request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("session acquisition failed").
			WithCause(errors.ErrTargetUnreachable).
			WithDetail("cause", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("failed to read session response").WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewTransportError("session endpoint returned non-success status").
			WithDetail("status", resp.StatusCode).
			WithDetail("body", string(body))
	}

	token := c.extractCredential(resp, body)
	if token == "" {
		return nil, errors.NewTransportError("session endpoint returned no retrievable credential").
			WithDetail("status", resp.StatusCode).
			WithDetail("body", string(body))
	}

	return &model.SessionCredential{
		Token:      token,
		AcquiredAt: time.Now(),
	}, nil
}

// CreateSpot sends a form-urlencoded creation request. Nil fields are omitted
// from the form entirely; a pointer to an empty string sends the key with an
// empty value.
func (c *Client) CreateSpot(ctx context.Context, spotReq model.SpotRequest, cred *model.SessionCredential) (*SpotResult, error) {
	form := url.Values{}
	if spotReq.Title != nil {
		form.Set("title", *spotReq.Title)
	}
	if spotReq.Lat != nil {
		form.Set("lat", *spotReq.Lat)
	}
	if spotReq.Lon != nil {
		form.Set("lon", *spotReq.Lon)
	}
	if spotReq.Color != nil {
		form.Set("color", *spotReq.Color)
	}

	return c.postForm(ctx, form.Encode(), cred)
}

// CreateSpotRaw sends a caller-assembled, unescaped form body. This is the
// deliberate mechanism for the transport-encoding artifact probes: a literal
// '&' splits fields and a literal '+' decodes to a space on the server side.
func (c *Client) CreateSpotRaw(ctx context.Context, rawBody string, cred *model.SessionCredential) (*SpotResult, error) {
	return c.postForm(ctx, rawBody, cred)
}

// postForm performs the favorites POST and decodes the response.
func (c *Client) postForm(ctx context.Context, body string, cred *model.SessionCredential) (*SpotResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.favoritesPath, strings.NewReader(body))
	if err != nil {
		return nil, errors.NewTransportError("failed to build creation request").WithCause(err)
	}
	req.Header.Set("Content-Type", formContentType)

	// The contract says header/cookie; attach the credential as both so the
	// probe works against targets honoring either carrier.
	if cred != nil {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: cred.Token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("creation request failed").
			WithCause(errors.ErrTargetUnreachable).
			WithDetail("cause", err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("failed to read creation response").WithCause(err)
	}

	result := &SpotResult{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}

	var decoded model.SpotResponse
	if json.Unmarshal(raw, &decoded) == nil {
		result.Response = &decoded
	}

	return result, nil
}

// extractCredential pulls the credential out of the Set-Cookie header or,
// failing that, a "token" field in a JSON body.
func (c *Client) extractCredential(resp *http.Response, body []byte) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == c.cookieName && cookie.Value != "" {
			return cookie.Value
		}
	}

	var payload struct {
		Token string `json:"token"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Token != "" {
		return payload.Token
	}

	return ""
}
