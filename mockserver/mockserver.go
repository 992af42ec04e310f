// Package mockserver provides a local stand-in for the Gemini generateContent
// endpoint, for offline demos and end-to-end tests.
package mockserver

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/papercomputeco/promptlab/pkg/llm"
	"github.com/papercomputeco/promptlab/pkg/tokens"
)

const generateSuffix = ":generateContent"

// Server answers generateContent calls with canned replies.
type Server struct {
	config Config
	logger *zap.Logger
	server *fiber.App
}

// New creates a new Server.
func New(config Config, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		logger: logger,
		server: app,
	}

	app.Post("/:version/models/*", s.handleGenerate)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	return s
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting mock server",
		zap.String("listen", s.config.ListenAddr),
		zap.Int("fail_status", s.config.FailStatus),
	)

	return s.server.Listen(s.config.ListenAddr)
}

// RunWithListener serves on an existing listener.
func (s *Server) RunWithListener(ln net.Listener) error {
	return s.server.Listener(ln)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	key := c.Get("X-goog-api-key")
	if key == "" || (s.config.APIKey != "" && key != s.config.APIKey) {
		return s.fail(c, http.StatusForbidden, "Method doesn't allow unregistered callers. Please use API key.")
	}

	model, ok := strings.CutSuffix(c.Params("*"), generateSuffix)
	if !ok || model == "" {
		return s.fail(c, http.StatusNotFound, "Requested entity was not found.")
	}

	if s.config.FailStatus != 0 {
		return s.fail(c, s.config.FailStatus, http.StatusText(s.config.FailStatus))
	}

	var req llm.GenerateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.logger.Debug("failed to parse request", zap.Error(err))
		return s.fail(c, http.StatusBadRequest, "Invalid JSON payload received.")
	}
	if len(req.Contents) == 0 {
		return s.fail(c, http.StatusBadRequest, "* GenerateContentRequest.contents: contents is not specified")
	}

	last := req.Contents[len(req.Contents)-1].Text()
	reply := s.config.Reply
	if reply == "" {
		reply = "You said: " + last
	}

	promptTokens := 0
	for _, content := range req.Contents {
		promptTokens += tokens.Count(content.Text())
	}
	replyTokens := tokens.Count(reply)

	s.logger.Debug("answering generate request",
		zap.String("version", c.Params("version")),
		zap.String("model", model),
		zap.Int("content_count", len(req.Contents)),
	)

	return c.JSON(llm.GenerateResponse{
		Candidates: []llm.Candidate{{
			Content:      llm.ModelTurn(reply),
			FinishReason: "STOP",
		}},
		UsageMetadata: &llm.UsageMetadata{
			PromptTokenCount:     promptTokens,
			CandidatesTokenCount: replyTokens,
			TotalTokenCount:      promptTokens + replyTokens,
		},
		ModelVersion: model,
	})
}

func (s *Server) fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(llm.ErrorResponse{Error: llm.ErrorDetail{
		Code:    code,
		Message: message,
		Status:  statusName(code),
	}})
}

// statusName maps HTTP codes to the canonical error status names the
// service uses.
func statusName(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "INVALID_ARGUMENT"
	case http.StatusForbidden:
		return "PERMISSION_DENIED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusTooManyRequests:
		return "RESOURCE_EXHAUSTED"
	case http.StatusServiceUnavailable:
		return "UNAVAILABLE"
	default:
		if code >= 500 {
			return "INTERNAL"
		}
		return "UNKNOWN"
	}
}
