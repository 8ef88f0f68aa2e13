package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout はリクエスト全体のタイムアウト。
const DefaultTimeout = 30 * time.Second

// Client はJSON API用のHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先のベースURL。
	baseURL string
	// headers は全リクエストに付与するヘッダー。
	headers http.Header
}

// Option はクライアントの設定を変更する。
type Option func(*Client)

// WithHeader は全リクエストに付与するヘッダーを追加する。
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithHTTPClient は内部で使用するHTTPクライアントを差し替える。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New は新しいHTTPクライアントを生成する。
// baseURLには接続先のベースURL（例: "https://journal.example.com"）を指定する。
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: baseURL,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL は接続先のベースURLを返す。
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError は2xx以外のHTTPレスポンスを表すエラー。
type StatusError struct {
	// StatusCode はHTTPステータスコード。
	StatusCode int
	// Message はレスポンスボディの "error" フィールド。無ければ空文字列。
	Message string
	// Body はレスポンスボディ。
	Body string
}

// Error はエラーメッセージを返す。
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTPエラー: status=%d, error=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTPエラー: status=%d, body=%s", e.StatusCode, e.Body)
}

// ServerMessage は err が StatusError であればサーバーが返したエラーメッセージを返す。
// 取り出せない場合は fallback を返す。
func ServerMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// PostJSON は指定パスにJSONボディでPOSTリクエストを送信する。
// レスポンスボディをresultにデシリアライズする。
func (c *Client) PostJSON(ctx context.Context, path string, body any, result any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, result)
}

// GetJSON は指定パスにGETリクエストを送信する。
// レスポンスボディをresultにデシリアライズする。
func (c *Client) GetJSON(ctx context.Context, path string, result any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, result)
}

// doJSON はJSON形式のHTTPリクエストを実行する共通処理。
func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("リクエストボディのシリアライズに失敗: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// コンテキストからリクエストIDを伝播する
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok && requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return newStatusError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("レスポンスボディのデシリアライズに失敗: %w", err)
		}
	}
	return nil
}

// newStatusError はレスポンスボディから "error" フィールドを取り出して StatusError を生成する。
// ボディがJSONでない場合は Message を空にする。
func newStatusError(statusCode int, body []byte) *StatusError {
	se := &StatusError{StatusCode: statusCode, Body: string(body)}
	var payload struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Error.(string); ok {
			se.Message = msg
		}
	}
	return se
}

// contextKey はコンテキストキーの型。
type contextKey string

// contextKeyRequestID はコンテキストにリクエストIDを格納するためのキー。
const contextKeyRequestID contextKey = "request_id"

// WithRequestID はコンテキストにリクエストIDを設定する。
// ゲートウェイのログと呼び出し元のログを突き合わせるために使用する。
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}
