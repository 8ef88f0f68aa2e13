package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel は振り返り生成に使うモデル。
const DefaultModel = "gemini-2.5-flash"

// Generator はプロンプトからテキストを生成するバックエンド。
type Generator interface {
	// Generate は model にプロンプトを送り、生成されたテキストを返す。
	// バックエンドがテキストを返さなかった場合は空文字列を返す。
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Factory はAPIキーから Generator を生成する。
// APIキーはリクエストごとに設定から読まれるため、生成もリクエストごとに行う。
type Factory func(ctx context.Context, apiKey string) (Generator, error)

// Gemini はGemini APIを使う Generator。
type Gemini struct {
	// client はgenaiのクライアント。
	client *genai.Client
}

// GeminiOption はGeminiクライアントの設定を変更する。
type GeminiOption func(*genai.ClientConfig)

// WithBaseURL は接続先のベースURLを差し替える。テスト用。
func WithBaseURL(baseURL string) GeminiOption {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = baseURL
	}
}

// NewGemini は新しいGemini Generatorを生成する。
func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*Gemini, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの生成に失敗: %w", err)
	}
	return &Gemini{client: client}, nil
}

// GeminiFactory は NewGemini を Factory として返す。
func GeminiFactory(opts ...GeminiOption) Factory {
	return func(ctx context.Context, apiKey string) (Generator, error) {
		return NewGemini(ctx, apiKey, opts...)
	}
}

// Generate はプロンプトをGeminiに送信する。
// 思考トークンの予算は0にして応答の遅延とコストを抑える。
func (g *Gemini) Generate(ctx context.Context, model, prompt string) (string, error) {
	budget := int32(0)
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: &budget},
	})
	if err != nil {
		return "", fmt.Errorf("コンテンツ生成に失敗: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}
