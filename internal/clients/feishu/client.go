package feishu

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
	"time"

	"github.com/DIMO-Network/feishu-llm-relay/internal/config"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/rs/zerolog"
)

const (
	// FailureCode is the rich error code for any failed call to the Feishu open API.
	FailureCode = -1

	defaultTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxErrorBodySize = 1024
	maxResponseSize  = 1 << 20
)

// ErrEmptyToken is returned when the credential exchange succeeds without a token.
var ErrEmptyToken = errors.New("tenant access token missing from response")

// TokenProvider supplies a bearer token for outbound calls.
type TokenProvider interface {
	TenantAccessToken(ctx context.Context) (string, error)
}

// Client for the Feishu open API.
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
	logger     zerolog.Logger
	tokens     TokenProvider
}

// New creates a new Client. When settings.FeishuTokenCache is set the tenant token is
// cached until shortly before it expires; otherwise every send exchanges credentials again.
func New(settings *config.Settings, httpClient *http.Client, logger zerolog.Logger) (*Client, error) {
	parsedURL, err := url.Parse(settings.FeishuBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feishu base URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("feishu base URL %q must be absolute", settings.FeishuBaseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	c := &Client{
		baseURL:    strings.TrimRight(parsedURL.String(), "/"),
		appID:      settings.FeishuAppID,
		appSecret:  settings.FeishuAppSecret,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "feishu").Logger(),
	}
	c.tokens = fetcher{client: c}
	if settings.FeishuTokenCache {
		c.tokens = NewCache(defaultCleanupInterval, c)
	}
	return c, nil
}

// FetchTenantAccessToken exchanges the app id and secret for a fresh tenant access token.
func (c *Client) FetchTenantAccessToken(ctx context.Context) (*AccessToken, error) {
	var resp TenantAccessTokenResponse
	reqBody := TenantAccessTokenRequest{AppID: c.appID, AppSecret: c.appSecret}
	if err := c.post(ctx, TenantAccessTokenPath, "", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch tenant access token: %w", err)
	}
	if resp.Code != 0 {
		return nil, richerrors.Error{
			Code: FailureCode,
			Err:  fmt.Errorf("failed to fetch tenant access token: %w", &APIError{Code: resp.Code, Msg: resp.Msg}),
		}
	}
	if resp.TenantAccessToken == "" {
		return nil, ErrEmptyToken
	}
	return &AccessToken{Value: resp.TenantAccessToken, ExpiresIn: resp.Expire}, nil
}

// SendText delivers text to the user identified by openID.
func (c *Client) SendText(ctx context.Context, openID, text string) error {
	token, err := c.tokens.TenantAccessToken(ctx)
	if err != nil {
		return err
	}

	content, err := json.Marshal(TextContent{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message content: %w", err)
	}
	reqBody := SendMessageRequest{
		ReceiveID: openID,
		MsgType:   MsgTypeText,
		Content:   string(content),
	}

	var resp SendMessageResponse
	path := MessagesPath + "?receive_id_type=" + ReceiveIDTypeOpenID
	if err := c.post(ctx, path, token, reqBody, &resp); err != nil {
		c.invalidateToken()
		return fmt.Errorf("failed to send message: %w", err)
	}
	if resp.Code != 0 {
		c.invalidateToken()
		return richerrors.Error{
			Code: FailureCode,
			Err:  fmt.Errorf("failed to send message: %w", &APIError{Code: resp.Code, Msg: resp.Msg}),
		}
	}
	c.logger.Debug().Str("open_id", openID).Str("message_id", resp.Data.MessageID).Msg("Message sent")
	return nil
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	reqBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: FailureCode,
			Err:  fmt.Errorf("failed to POST %s: %w", path, err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return richerrors.Error{
			Code: FailureCode,
			Err:  fmt.Errorf("feishu returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// invalidateToken drops a cached token after a failed send. It never retries.
func (c *Client) invalidateToken() {
	if inv, ok := c.tokens.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}
}

// fetcher exchanges credentials on every call.
type fetcher struct {
	client *Client
}

func (f fetcher) TenantAccessToken(ctx context.Context) (string, error) {
	tok, err := f.client.FetchTenantAccessToken(ctx)
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}
