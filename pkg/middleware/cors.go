package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// corsAllowHeaders はブラウザから送信を許可するリクエストヘッダー。
// デバッグ用と設定エンドポイント用のシークレットヘッダーを含む。
const corsAllowHeaders = "Content-Type, X-Request-ID, X-Debug-Secret, X-Supabase-Config-Secret"

// NormalizeOrigin は末尾のスラッシュを1つだけ取り除く。
func NormalizeOrigin(origin string) string {
	return strings.TrimSuffix(origin, "/")
}

// CORS は指定されたオリジンからのクロスオリジンリクエストを許可するGinミドルウェアを返す。
// オリジンは末尾スラッシュを正規化して比較する。空文字列のオリジンは無視する。
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originsSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "" {
			continue
		}
		originsSet[NormalizeOrigin(o)] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := originsSet[NormalizeOrigin(origin)]; ok && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			c.Header("Access-Control-Max-Age", "86400")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
