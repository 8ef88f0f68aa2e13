package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestRecovery はRecoveryミドルウェアを検証する。
func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("パニックが発生した場合500と固定メッセージが返ること", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/panic", func(_ *gin.Context) {
			panic("secret internal detail")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("レスポンスボディのパースに失敗: %v", err)
		}
		if body["error"] != "Internal server error" {
			t.Errorf("error = %q, want %q", body["error"], "Internal server error")
		}
		if strings.Contains(w.Body.String(), "secret internal detail") {
			t.Error("パニック値がレスポンスに含まれている")
		}
	})

	t.Run("error型のパニック値でも500が返ること", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/panic-error", func(_ *gin.Context) {
			panic(http.ErrAbortHandler)
		})

		req := httptest.NewRequest(http.MethodGet, "/panic-error", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})

	t.Run("パニック後もサーバーが次のリクエストを処理できること", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(), RequestID())
		router.GET("/panic", func(_ *gin.Context) {
			panic("パニック発生")
		})
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "recovered"})
		})

		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/panic", nil))
		if w1.Code != http.StatusInternalServerError {
			t.Errorf("1回目のステータスコード = %d, want %d", w1.Code, http.StatusInternalServerError)
		}

		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w2.Code != http.StatusOK {
			t.Errorf("2回目のステータスコード = %d, want %d", w2.Code, http.StatusOK)
		}
	})
}
