package connclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nao1215/journalgw/internal/config"
	"github.com/nao1215/journalgw/pkg/httpclient"
	"github.com/nao1215/journalgw/pkg/supabase"
)

// configPath はゲートウェイの設定エンドポイントのパス。
const configPath = "/api/supabase-config"

// errFetchConfig はゲートウェイがエラーメッセージを返さなかった場合のエラー文言。
const errFetchConfig = "Could not fetch Supabase config"

// ErrMissingServerEnv はサーバー内で接続パラメータが揃っていない場合のエラー。
var ErrMissingServerEnv = errors.New("Missing Supabase environment variables on server")

// Params は接続パラメータ。ゲートウェイのレスポンスと同じ形をしている。
type Params struct {
	// URL はSupabaseの公開URL。
	URL string `json:"url"`
	// Anon はanonキー。ポリシーで拒否された場合はnil。
	Anon *string `json:"anon"`
}

// anonOrEmpty はanonキーを返す。nilなら空文字列を返す。
func (p Params) anonOrEmpty() string {
	if p.Anon == nil {
		return ""
	}
	return *p.Anon
}

// Resolver は接続パラメータを解決する。
type Resolver interface {
	Resolve(ctx context.Context) (Params, error)
}

// EnvResolver はサーバー内の信頼できるコンテキストで設定を直接読む。
type EnvResolver struct {
	// Source は設定の取得元。
	Source config.Source
}

// Resolve はURLとanonキーを設定から読む。どちらかが無ければ ErrMissingServerEnv を返す。
func (r EnvResolver) Resolve(_ context.Context) (Params, error) {
	url := config.Get(r.Source, config.KeySupabaseURL)
	anon := config.Get(r.Source, config.KeySupabaseAnonKey)
	if url == "" || anon == "" {
		return Params{}, ErrMissingServerEnv
	}
	return Params{URL: url, Anon: &anon}, nil
}

// RemoteResolver はゲートウェイの設定エンドポイントを呼び出す。
type RemoteResolver struct {
	// client はゲートウェイ用のHTTPクライアント。
	client *httpclient.Client
}

// NewRemoteResolver は新しい RemoteResolver を生成する。
// 共有シークレットを送る場合は httpclient.WithHeader を渡す。
func NewRemoteResolver(gatewayURL string, opts ...httpclient.Option) *RemoteResolver {
	return &RemoteResolver{client: httpclient.New(gatewayURL, opts...)}
}

// Resolve はゲートウェイから接続パラメータを取得する。
// 失敗した場合はゲートウェイのエラーメッセージ（無ければ汎用メッセージ）をエラーとして返す。
func (r *RemoteResolver) Resolve(ctx context.Context) (Params, error) {
	var params Params
	if err := r.client.GetJSON(ctx, configPath, &params); err != nil {
		return Params{}, &FetchError{Message: httpclient.ServerMessage(err, errFetchConfig), Err: err}
	}
	return params, nil
}

// FetchError はゲートウェイからの取得失敗を表す。
// Error() はゲートウェイが返したメッセージをそのまま返す。
type FetchError struct {
	// Message は呼び出し元に見せるメッセージ。
	Message string
	// Err は元のエラー。
	Err error
}

func (e *FetchError) Error() string { return e.Message }
func (e *FetchError) Unwrap() error { return e.Err }

// Factory は接続パラメータからハンドルを生成する。
type Factory func(url, anon string) (*supabase.Client, error)

// defaultFactory は supabase.New を使う Factory。
func defaultFactory(url, anon string) (*supabase.Client, error) {
	return supabase.New(url, anon)
}

// Provider は接続ハンドルを1度だけ解決してキャッシュする。
// 解決中はミューテックスで他の呼び出しを待たせるため、解決は同時に1つしか走らない。
// 失敗はキャッシュしないので、次の呼び出しで再度解決する。
type Provider struct {
	resolver Resolver
	factory  Factory

	mu     sync.Mutex
	client *supabase.Client
}

// Option は Provider の設定を変更する。
type Option func(*Provider)

// WithFactory はハンドルの生成関数を差し替える。
func WithFactory(f Factory) Option {
	return func(p *Provider) {
		p.factory = f
	}
}

// New は新しい Provider を生成する。
func New(resolver Resolver, opts ...Option) *Provider {
	p := &Provider{resolver: resolver, factory: defaultFactory}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get は接続ハンドルを返す。2回目以降はキャッシュを返す。
// anonがnullの場合でも特別扱いはせず、ハンドル生成の失敗としてエラーを返す。
func (p *Provider) Get(ctx context.Context) (*supabase.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	params, err := p.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	client, err := p.factory(params.URL, params.anonOrEmpty())
	if err != nil {
		return nil, fmt.Errorf("supabaseハンドルの生成に失敗: %w", err)
	}
	p.client = client
	return client, nil
}

// ResolverFor は実行コンテキストに応じた Resolver を返す。
// ゲートウェイのURLが設定されていればリモート、そうでなければサーバー内として扱う。
// リモートの場合、共有シークレットが設定されていればヘッダーで送る。
func ResolverFor(src config.Source) Resolver {
	gatewayURL := config.Get(src, config.KeyGatewayURL)
	if gatewayURL == "" {
		return EnvResolver{Source: src}
	}
	var opts []httpclient.Option
	if secret := config.Get(src, config.KeyConfigSecret); secret != "" {
		opts = append(opts, httpclient.WithHeader("X-Supabase-Config-Secret", secret))
	}
	return NewRemoteResolver(gatewayURL, opts...)
}

// defaultProvider はプロセス全体で共有する Provider。
var defaultProvider = sync.OnceValue(func() *Provider {
	return New(ResolverFor(config.Env{}))
})

// Default はプロセス全体で共有する Provider を返す。
// Resolver は最初の呼び出し時の環境変数で決まる。
func Default() *Provider {
	return defaultProvider()
}
