package llm

import (
	"NoteFlow/config"
	"NoteFlow/pkg/log"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// 生成失败的几种情况 调用方按需映射状态码
var (
	ErrRateLimited      = errors.New("rate limit exceeded by AI service")
	ErrTimedOut         = errors.New("AI generation timed out")
	ErrGenerationFailed = errors.New("failed to generate content")
)

const (
	// 单次生成的输出长度预算
	maxCompletionTokens = 500
	// 上游调用超时
	requestTimeout = 30 * time.Second

	systemPrompt = "You are a helpful assistant that summarizes educational materials. " +
		"Create a concise and clear summary of the provided text. " +
		"Focus on the most important concepts and information. " +
		"The summary should be shorter than the original text but preserve all key information."
)

type Client struct {
	api   openai.Client
	model string
}

func NewClient(cfg *config.AI) *Client {
	return &Client{
		api: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithMaxRetries(0),
		),
		model: cfg.Model,
	}
}

// GenerateNoteContent 把原文压缩成笔记草稿 单次调用 不重试
func (c *Client) GenerateNoteContent(ctx context.Context, sourceText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage("Summarize the following educational material:\n\n" + sourceText),
		},
		MaxTokens: openai.Int(maxCompletionTokens),
	}

	startTime := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrTimedOut
		}
		var apierr *openai.Error
		if errors.As(err, &apierr) && apierr.StatusCode == http.StatusTooManyRequests {
			return "", ErrRateLimited
		}
		log.L.Error("chat completion failed", zap.Error(err))
		return "", ErrGenerationFailed
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrGenerationFailed
	}

	content := completion.Choices[0].Message.Content
	log.L.Info("note content generated",
		zap.Int("source_len", len(sourceText)),
		zap.Int("content_len", len(content)),
		zap.Duration("gen time", time.Since(startTime)),
	)
	return content, nil
}
