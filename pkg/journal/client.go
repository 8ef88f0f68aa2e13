package journal

import (
	"context"

	"github.com/nao1215/journalgw/pkg/httpclient"
)

// reflectionPath はゲートウェイの振り返り生成エンドポイントのパス。
const reflectionPath = "/api/generate-reflection"

// errAIService はゲートウェイがエラーメッセージを返さなかった場合のエラー文言。
const errAIService = "AI service error"

// Entry はゲートウェイに送る日記エントリ。
type Entry struct {
	// Title は日記のタイトル。
	Title string `json:"title,omitempty"`
	// Content は日記の本文。
	Content string `json:"content"`
	// Mood は気分。
	Mood string `json:"mood,omitempty"`
}

// Client は振り返り生成APIのクライアント。
type Client struct {
	http *httpclient.Client
}

// New は新しいクライアントを生成する。
func New(gatewayURL string, opts ...httpclient.Option) *Client {
	return &Client{http: httpclient.New(gatewayURL, opts...)}
}

// Error はゲートウェイが返したエラー。
type Error struct {
	// Message はゲートウェイの "error" フィールド。無ければ汎用メッセージ。
	Message string
	// Err は元のエラー。
	Err error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// GenerateReflection は日記エントリを送り、生成された振り返りを返す。
func (c *Client) GenerateReflection(ctx context.Context, entry Entry) (string, error) {
	var result struct {
		Reflection string `json:"reflection"`
	}
	if err := c.http.PostJSON(ctx, reflectionPath, entry, &result); err != nil {
		return "", &Error{Message: httpclient.ServerMessage(err, errAIService), Err: err}
	}
	return result.Reflection, nil
}
