package app

import (
	"fmt"
	"strings"

	_ "github.com/DIMO-Network/feishu-llm-relay/docs" // Import Swagger docs
	"github.com/DIMO-Network/feishu-llm-relay/internal/clients/feishu"
	"github.com/DIMO-Network/feishu-llm-relay/internal/clients/llm"
	"github.com/DIMO-Network/feishu-llm-relay/internal/config"
	"github.com/DIMO-Network/feishu-llm-relay/internal/controllers/webhook"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the outbound clients from settings and returns the webhook app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if missing := settings.MissingCredentials(); len(missing) > 0 {
		logger.Warn().Str("missing", strings.Join(missing, ",")).Msg("Credentials not set, downstream calls will fail")
	}

	llmClient := llm.New(settings, nil)
	feishuClient, err := feishu.New(settings, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create feishu client: %w", err)
	}
	logger.Info().
		Str("llm_base_url", settings.LLMBaseURL).
		Str("llm_model", settings.LLMModel).
		Bool("token_cache", settings.FeishuTokenCache).
		Msg("Clients configured")

	return CreateFiberApp(logger, llmClient, feishuClient), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, completer webhook.Completer, messenger webhook.Messenger) *fiber.App {
	logger.Info().Msg("Starting Feishu LLM Relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Feishu LLM Relay!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(completer, messenger, logger)
	app.Post("/webhook", webhookController.HandleEvent)

	return app
}
