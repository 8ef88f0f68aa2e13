package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID はリクエストIDを伝播するHTTPヘッダーキー。
const HeaderRequestID = "X-Request-ID"

// contextKeyRequestID はGinコンテキストにリクエストIDを格納するキー。
const contextKeyRequestID = "request_id"

// maxRequestIDLength はクライアントから受け取るリクエストIDの最大長。
const maxRequestIDLength = 128

// RequestID はリクエストごとにIDを付与するGinミドルウェアを返す。
// クライアントが X-Request-ID を送ってきた場合はそれを引き継ぐ。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID はGinコンテキストからリクエストIDを取得する。
// RequestIDミドルウェアが適用されていない場合は空文字列を返す。
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(contextKeyRequestID)
	if id, ok := v.(string); ok {
		return id
	}
	return ""
}
