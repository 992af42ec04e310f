package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/papercomputeco/promptlab/pkg/config"
	"github.com/papercomputeco/promptlab/pkg/llm"
)

// SDKClient calls generateContent through the genai SDK.
type SDKClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewSDK creates a genai-backed client with the same endpoint settings as New.
func NewSDK(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*SDKClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/",
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &SDKClient{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate sends req through the SDK and converts the reply to wire types.
func (c *SDKClient) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	startTime := time.Now()

	c.logger.Debug("sending generateContent request via genai",
		zap.String("model", c.model),
		zap.Int("content_count", len(req.Contents)),
	)

	result, err := c.client.Models.GenerateContent(ctx, c.model, toGenaiContents(req.Contents), nil)
	if err != nil {
		return nil, mapSDKError(err)
	}

	c.logger.Debug("received generateContent response via genai",
		zap.Int("candidates", len(result.Candidates)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return fromGenaiResponse(result), nil
}

func toGenaiContents(contents []llm.Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, c := range contents {
		parts := make([]*genai.Part, 0, len(c.Parts))
		for _, p := range c.Parts {
			parts = append(parts, &genai.Part{Text: p.Text})
		}
		out = append(out, &genai.Content{Role: string(c.Role), Parts: parts})
	}
	return out
}

func fromGenaiResponse(result *genai.GenerateContentResponse) *llm.GenerateResponse {
	resp := &llm.GenerateResponse{}
	if result == nil {
		return resp
	}

	resp.ModelVersion = result.ModelVersion
	for _, cand := range result.Candidates {
		if cand == nil {
			continue
		}
		c := llm.Candidate{FinishReason: string(cand.FinishReason)}
		if cand.Content != nil {
			c.Content.Role = llm.Role(cand.Content.Role)
			for _, p := range cand.Content.Parts {
				var part llm.Part
				if p != nil {
					part.Text = p.Text
				}
				c.Content.Parts = append(c.Content.Parts, part)
			}
		}
		resp.Candidates = append(resp.Candidates, c)
	}
	return resp
}

// mapSDKError turns genai API errors into *StatusError so callers report
// both backends the same way.
func mapSDKError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return fmt.Errorf("genai request: %w", err)
		}
		apiErr = *apiErrPtr
	}

	detail := map[string]any{
		"code":    apiErr.Code,
		"message": apiErr.Message,
	}
	if apiErr.Status != "" {
		detail["status"] = apiErr.Status
	}

	return &StatusError{
		Code:    apiErr.Code,
		Reason:  http.StatusText(apiErr.Code),
		Details: map[string]any{"error": detail},
	}
}
