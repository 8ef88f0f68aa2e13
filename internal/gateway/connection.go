package gateway

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/journalgw/internal/config"
	"github.com/nao1215/journalgw/pkg/middleware"
)

// HeaderConfigSecret は設定エンドポイントの共有シークレットを運ぶリクエストヘッダー。
const HeaderConfigSecret = "X-Supabase-Config-Secret"

// defaultDenyWarning はどちらのゲートも設定されていない場合に返す警告。
const defaultDenyWarning = "Endpoint protected by default. Set SITE_ORIGIN or SUPABASE_CONFIG_SECRET to allow fetching anon key."

// ConnectionConfig は設定エンドポイントのレスポンスボディ。
// Anonはポリシーを満たさない場合にnull（JSONのnull）になる。
type ConnectionConfig struct {
	// URL はSupabaseの公開URL。設定されていれば常に返す。
	URL string `json:"url"`
	// Anon はSupabaseのanonキー。
	Anon *string `json:"anon"`
	// Warning はデフォルト拒否時の警告。
	Warning string `json:"warning,omitempty"`
}

// protectionPolicy はリクエスト時に設定から導出する保護ポリシー。
// 空文字列のフィールドはそのゲートが無効であることを表す。
type protectionPolicy struct {
	// siteOrigin はオリジンゲートの許可値。
	siteOrigin string
	// secret は共有シークレットゲートの値。
	secret string
}

// configured はいずれかのゲートが有効かどうかを返す。
func (p protectionPolicy) configured() bool {
	return p.siteOrigin != "" || p.secret != ""
}

// accessError はゲートで拒否された理由を表す。
type accessError struct {
	// message はクライアントに返すメッセージ。
	message string
	// outcome はメトリクスのラベル。
	outcome string
}

func (e *accessError) Error() string { return e.message }

var (
	errMissingOrigin  = &accessError{message: "Forbidden (missing origin)", outcome: "missing_origin"}
	errOriginMismatch = &accessError{message: "Forbidden (origin mismatch)", outcome: "origin_mismatch"}
	errMissingSecret  = &accessError{message: "Forbidden (missing secret)", outcome: "missing_secret"}
)

// authorize は有効なゲートをすべて評価する。
// どちらのゲートも有効な場合は両方を通過したときだけnilを返す。
// originにはOriginヘッダー（無ければReferer）、providedSecretには共有シークレットヘッダーを渡す。
func (p protectionPolicy) authorize(origin, providedSecret string) *accessError {
	if p.siteOrigin != "" {
		if origin == "" {
			return errMissingOrigin
		}
		if middleware.NormalizeOrigin(origin) != middleware.NormalizeOrigin(p.siteOrigin) {
			return errOriginMismatch
		}
	}

	if p.secret != "" {
		if providedSecret == "" || !secretEqual(providedSecret, p.secret) {
			return errMissingSecret
		}
	}
	return nil
}

// requestOrigin はOriginヘッダーを返す。無ければRefererを返す。
func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return c.GetHeader("Referer")
}

// handleSupabaseConfig はSupabaseの接続パラメータを返すハンドラを返す。
// anonキーは有効なゲートをすべて通過した場合にだけ返す。
func (s *Server) handleSupabaseConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := config.Get(s.cfg, config.KeySupabaseURL, config.KeyPublicSupabaseURL)
		if url == "" {
			s.metrics.IncConfig("not_configured")
			log.Printf("[Config] request_id=%s %sが設定されていません", middleware.GetRequestID(c), config.KeySupabaseURL)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Supabase URL not configured"})
			return
		}

		policy := protectionPolicy{
			siteOrigin: config.Get(s.cfg, config.KeySiteOrigin),
			secret:     config.Get(s.cfg, config.KeyConfigSecret),
		}

		// どちらのゲートも設定されていなければanonキーは返さない
		if !policy.configured() {
			s.metrics.IncConfig("default_deny")
			c.JSON(http.StatusOK, ConnectionConfig{URL: url, Anon: nil, Warning: defaultDenyWarning})
			return
		}

		if denied := policy.authorize(requestOrigin(c), c.GetHeader(HeaderConfigSecret)); denied != nil {
			s.metrics.IncConfig(denied.outcome)
			log.Printf("[Config] request_id=%s anonキーの取得を拒否: %s", middleware.GetRequestID(c), denied.outcome)
			c.JSON(http.StatusForbidden, gin.H{"error": denied.message})
			return
		}

		var anon *string
		if key := config.Get(s.cfg, config.KeySupabaseAnonKey, config.KeyPublicSupabaseAnonKey); key != "" {
			anon = &key
		}

		s.metrics.IncConfig("granted")
		c.JSON(http.StatusOK, ConnectionConfig{URL: url, Anon: anon})
	}
}
