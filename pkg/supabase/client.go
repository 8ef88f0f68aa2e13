package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nao1215/journalgw/pkg/httpclient"
)

var (
	// ErrURLRequired はURLが空の場合のエラー。
	ErrURLRequired = errors.New("supabase URL is required")
	// ErrKeyRequired はキーが空の場合のエラー。
	ErrKeyRequired = errors.New("supabase key is required")
)

// Client はSupabaseプロジェクトへの接続ハンドル。
type Client struct {
	// url はプロジェクトの公開URL。
	url string
	// rest はREST API（/rest/v1）用のHTTPクライアント。
	rest *httpclient.Client
}

// New はURLとキーから新しいハンドルを生成する。
func New(rawURL, key string, opts ...httpclient.Option) (*Client, error) {
	if rawURL == "" {
		return nil, ErrURLRequired
	}
	if key == "" {
		return nil, ErrKeyRequired
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("supabase URL が不正です: %q", rawURL)
	}

	base := strings.TrimSuffix(rawURL, "/")
	opts = append([]httpclient.Option{
		httpclient.WithHeader("apikey", key),
		httpclient.WithHeader("Authorization", "Bearer "+key),
	}, opts...)

	return &Client{
		url:  base,
		rest: httpclient.New(base+"/rest/v1", opts...),
	}, nil
}

// URL はプロジェクトの公開URLを返す。
func (c *Client) URL() string {
	return c.url
}

// Select はテーブルから行を取得し、resultにデシリアライズする。
// queryはPostgRESTのクエリ文字列（例: "select=*&order=created_at.desc"）。
func (c *Client) Select(ctx context.Context, table, query string, result any) error {
	path := "/" + url.PathEscape(table)
	if query != "" {
		path += "?" + query
	}
	if err := c.rest.GetJSON(ctx, path, result); err != nil {
		return fmt.Errorf("テーブル %s の取得に失敗: %w", table, err)
	}
	return nil
}
