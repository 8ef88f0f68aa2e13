package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ゲートウェイが認識する設定キー。
const (
	// KeyGenAIAPIKey は生成AIバックエンドのAPIキー。
	KeyGenAIAPIKey = "GENAI_API_KEY"
	// KeyGenAITimeout は生成AI呼び出しのタイムアウト（Goのduration表記）。
	KeyGenAITimeout = "GENAI_TIMEOUT"
	// KeySupabaseURL はSupabaseの公開URL。
	KeySupabaseURL = "SUPABASE_URL"
	// KeyPublicSupabaseURL はKeySupabaseURLが未設定の場合のフォールバック。
	KeyPublicSupabaseURL = "NEXT_PUBLIC_SUPABASE_URL"
	// KeySupabaseAnonKey はSupabaseのanonキー。
	KeySupabaseAnonKey = "SUPABASE_ANON_KEY"
	// KeyPublicSupabaseAnonKey はKeySupabaseAnonKeyが未設定の場合のフォールバック。
	KeyPublicSupabaseAnonKey = "NEXT_PUBLIC_SUPABASE_ANON_KEY"
	// KeyAppEnv は実行モード。"production" のときだけ本番として扱う。
	KeyAppEnv = "APP_ENV"
	// KeyDebugSecret はエラー詳細の開示を許可するデバッグ用シークレット。
	KeyDebugSecret = "DEBUG_SECRET"
	// KeySiteOrigin はanonキーの取得を許可するオリジン。
	KeySiteOrigin = "SITE_ORIGIN"
	// KeyConfigSecret は設定エンドポイント用の共有シークレット。
	KeyConfigSecret = "SUPABASE_CONFIG_SECRET"
	// KeyFrontendURL はCORSで許可するフロントエンドのオリジン。
	KeyFrontendURL = "FRONTEND_URL"
	// KeyGatewayURL はクライアント側から見たゲートウェイのベースURL。
	// 設定されている場合、接続パラメータはゲートウェイ経由で取得する。
	KeyGatewayURL = "JOURNAL_GATEWAY_URL"
)

// Source は設定値の取得元。
// 値が存在しない、または空文字列の場合は ok=false を返す。
type Source interface {
	Lookup(key string) (value string, ok bool)
}

// Env はプロセスの環境変数を読む Source。
type Env struct{}

// Lookup は環境変数を取得する。空文字列は未設定として扱う。
func (Env) Lookup(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

// Map は固定値を返す Source。テストやYAMLファイルの読み込み結果に使う。
type Map map[string]string

// Lookup はマップから値を取得する。
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok && v != ""
}

// Chain は先頭から順に問い合わせ、最初に見つかった値を返す。
type Chain []Source

// Lookup は各 Source を順番に参照する。
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Get は keys を順に参照し、最初に見つかった値を返す。
// どれも設定されていなければ空文字列を返す。
func Get(s Source, keys ...string) string {
	for _, k := range keys {
		if v, ok := s.Lookup(k); ok {
			return v
		}
	}
	return ""
}

// GetOr は key の値を返す。未設定の場合は defaultValue を返す。
func GetOr(s Source, key, defaultValue string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return defaultValue
}

// IsProduction は実行モードが本番かどうかを返す。
func IsProduction(s Source) bool {
	return strings.EqualFold(Get(s, KeyAppEnv), "production")
}

// LoadFile はYAMLファイルを読み込み Map を返す。
// ファイルはトップレベルに "KEY: value" を並べた形式。
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}
	return Parse(data)
}

// Parse はYAMLを解析して Map を返す。
func Parse(data []byte) (Map, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
	}
	m := make(Map, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			m[k] = val
		case map[string]any, []any:
			return nil, fmt.Errorf("設定キー %s の値はスカラーである必要があります", k)
		default:
			m[k] = fmt.Sprint(val)
		}
	}
	return m, nil
}
