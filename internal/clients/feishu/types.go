package feishu

import "fmt"

const (
	// TenantAccessTokenPath is the internal-app credential exchange endpoint.
	TenantAccessTokenPath = "/open-apis/auth/v3/tenant_access_token/internal"
	// MessagesPath is the send-message endpoint.
	MessagesPath = "/open-apis/im/v1/messages"

	// ReceiveIDTypeOpenID addresses a message to a user's open id.
	ReceiveIDTypeOpenID = "open_id"
	// MsgTypeText is the plain text message type.
	MsgTypeText = "text"
)

// TenantAccessTokenRequest is the body of the credential exchange.
type TenantAccessTokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

// TenantAccessTokenResponse is returned by the credential exchange.
type TenantAccessTokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	// Expire is the token lifetime in seconds.
	Expire int `json:"expire"`
}

// SendMessageRequest is the body of a send-message call.
type SendMessageRequest struct {
	ReceiveID string `json:"receive_id"`
	MsgType   string `json:"msg_type"`
	// Content is a JSON-encoded message body, e.g. {"text":"hi"}.
	Content string `json:"content"`
}

// SendMessageResponse is the envelope returned by the send-message call.
type SendMessageResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		MessageID string `json:"message_id"`
	} `json:"data"`
}

// TextContent is the decoded content of a text message.
type TextContent struct {
	Text string `json:"text"`
}

// AccessToken is a tenant access token together with its lifetime.
type AccessToken struct {
	Value string
	// ExpiresIn is the lifetime in seconds as reported by the platform. Zero means unknown.
	ExpiresIn int
}

// APIError is a non-zero code returned in a Feishu response envelope.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feishu api error %d: %s", e.Code, e.Msg)
}
