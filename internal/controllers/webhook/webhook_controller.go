package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DIMO-Network/feishu-llm-relay/internal/clients/feishu"
	"github.com/DIMO-Network/feishu-llm-relay/internal/clients/llm"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Completer generates a reply for a single user message.
type Completer interface {
	Complete(ctx context.Context, text string) llm.Reply
}

// Messenger delivers a text message to a user.
type Messenger interface {
	SendText(ctx context.Context, openID, text string) error
}

// WebhookController receives Feishu event callbacks and relays text messages to the LLM.
type WebhookController struct {
	completer Completer
	messenger Messenger
	logger    zerolog.Logger
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(completer Completer, messenger Messenger, logger zerolog.Logger) *WebhookController {
	return &WebhookController{
		completer: completer,
		messenger: messenger,
		logger:    logger,
	}
}

// HandleEvent godoc
// @Summary      Receive a Feishu event callback
// @Description  Echoes the challenge of a url_verification request. For a text message event the text is sent to the LLM and the reply is delivered to the sender. Every other well-formed event is acknowledged without action.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        request  body      InboundEvent       true  "Feishu event callback"
// @Success      200      {object}  AckResponse        "Event acknowledged"
// @Success      200      {object}  ChallengeResponse  "Challenge echoed"
// @Failure      400      "Invalid request payload"
// @Router       /webhook [post]
func (w *WebhookController) HandleEvent(c *fiber.Ctx) error {
	var payload InboundEvent
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if payload.Type == EventTypeURLVerification {
		eventsReceived.WithLabelValues(eventKindVerification).Inc()
		return c.JSON(ChallengeResponse{Challenge: payload.Challenge})
	}

	msg := payload.Event.Message
	if msg.MessageType != MessageTypeText {
		eventsReceived.WithLabelValues(eventKindIgnored).Inc()
		w.logger.Debug().
			Str("event_id", payload.Header.EventID).
			Str("message_type", msg.MessageType).
			Msg("Ignoring non-text event")
		return c.JSON(AckResponse{Code: 0})
	}
	eventsReceived.WithLabelValues(eventKindText).Inc()

	text, err := parseTextContent(msg.Content)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid message content",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	openID := payload.Event.Sender.SenderID.OpenID
	if openID == "" {
		w.logger.Warn().
			Str("event_id", payload.Header.EventID).
			Str("message_id", msg.MessageID).
			Msg("Text message without sender open_id, no reply possible")
		return c.JSON(AckResponse{Code: 0})
	}

	w.relay(c.UserContext(), payload.Header.EventID, openID, text)
	return c.JSON(AckResponse{Code: 0})
}

// relay asks the LLM for a reply and delivers it. Delivery failures are logged only.
func (w *WebhookController) relay(ctx context.Context, eventID, openID, text string) {
	logger := w.logger.With().
		Str("relay_id", uuid.NewString()).
		Str("event_id", eventID).
		Str("open_id", openID).
		Logger()

	reply := w.completer.Complete(ctx, text)
	if !reply.OK() {
		completionFailures.Inc()
		logger.Error().Err(reply.Err).Msg("Completion failed, sending diagnostic reply")
	}

	if err := w.messenger.SendText(ctx, openID, reply.Render()); err != nil {
		deliveries.WithLabelValues(deliveryStatusFailed).Inc()
		logger.Error().Err(err).Msg("Failed to deliver reply")
		return
	}
	deliveries.WithLabelValues(deliveryStatusOK).Inc()
	logger.Info().Bool("completion_ok", reply.OK()).Msg("Reply delivered")
}

// parseTextContent decodes the JSON content of a text message and trims the text.
// Empty content decodes as an empty object.
func parseTextContent(content string) (string, error) {
	if content == "" {
		content = "{}"
	}
	var decoded feishu.TextContent
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		return "", fmt.Errorf("failed to decode text message content: %w", err)
	}
	return strings.TrimSpace(decoded.Text), nil
}
