package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Generator sends prompts to a langchaingo model and returns the raw text.
// Identical prompts issued concurrently share a single model call.
type Generator struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
	group       singleflight.Group
}

// NewGenerator wraps model as a domain.TextGenerator.
func NewGenerator(model llms.Model, temperature float64, timeout time.Duration) *Generator {
	return &Generator{
		model:       model,
		temperature: temperature,
		timeout:     timeout,
	}
}

// SendPrompt implements domain.TextGenerator.
// The shared model call is detached from any single caller; each caller
// stops waiting when its own ctx is done.
func (g *Generator) SendPrompt(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()
	key := promptKey(prompt)

	ch := g.group.DoChan(key, func() (interface{}, error) {
		return g.call(context.WithoutCancel(ctx), prompt)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		l.Warn("LLM caller gave up waiting", zap.String("prompt_key", key), zap.Error(ctx.Err()))
		return "", domain.NewLLMServiceError(ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		l.Error("LLM call failed", zap.String("prompt_key", key), zap.Error(res.Err))
		return "", domain.NewLLMServiceError(res.Err)
	}
	if res.Shared {
		l.Debug("LLM response shared with concurrent caller", zap.String("prompt_key", key))
	}

	text := stripThinking(res.Val.(string))
	if strings.TrimSpace(text) == "" {
		return "", domain.NewEmptyResponseError()
	}
	return text, nil
}

func (g *Generator) call(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	logger.Get().Debug("LLM response received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("length", len(resp)))
	return resp, nil
}

// stripThinking removes <think>...</think> blocks emitted by reasoning models.
func stripThinking(s string) string {
	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			return s
		}
		end := strings.Index(s[start:], "</think>")
		if end == -1 {
			return s
		}
		s = s[:start] + s[start+end+len("</think>"):]
	}
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

var _ domain.TextGenerator = (*Generator)(nil)
