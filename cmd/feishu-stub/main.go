package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/DIMO-Network/feishu-llm-relay/internal/clients/feishu"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Local stand-in for the Feishu open API. Point FEISHU_BASE_URL at it to see
// the replies the relay would deliver without a real app.
func main() {
	addr := flag.String("addr", ":8081", "listen address")
	token := flag.String("token", "t-stub-token", "tenant access token to hand out")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Str("app", "feishu-stub").Logger()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post(feishu.TenantAccessTokenPath, func(c *fiber.Ctx) error {
		var req feishu.TenantAccessTokenRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		logger.Info().Str("app_id", req.AppID).Msg("Token requested")
		return c.JSON(feishu.TenantAccessTokenResponse{
			Msg:               "ok",
			TenantAccessToken: *token,
			Expire:            7200,
		})
	})

	app.Post(feishu.MessagesPath, func(c *fiber.Ctx) error {
		var req feishu.SendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		var content feishu.TextContent
		if err := json.Unmarshal([]byte(req.Content), &content); err != nil {
			return c.JSON(feishu.SendMessageResponse{Code: 230001, Msg: "invalid content"})
		}
		if c.Get(fiber.HeaderAuthorization) != "Bearer "+*token {
			logger.Warn().Str("authorization", c.Get(fiber.HeaderAuthorization)).Msg("Unexpected token")
		}
		logger.Info().
			Str("receive_id_type", c.Query("receive_id_type")).
			Str("receive_id", req.ReceiveID).
			Str("msg_type", req.MsgType).
			Str("text", content.Text).
			Msg("Message delivered")
		return c.JSON(fiber.Map{
			"code": 0,
			"msg":  "success",
			"data": fiber.Map{"message_id": "om_" + uuid.NewString()},
		})
	})

	logger.Info().Str("addr", *addr).Msg("Feishu stub listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Stub server failed")
	}
}
