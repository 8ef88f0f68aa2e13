package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/journalgw/internal/ai"
	"github.com/nao1215/journalgw/internal/config"
	"github.com/nao1215/journalgw/pkg/middleware"
)

const (
	// fallbackReflection はバックエンドがテキストを返さなかった場合の応答。
	fallbackReflection = "I couldn't generate a reflection at this moment."
	// errReflectionFailed は振り返り生成失敗時の汎用メッセージ。
	errReflectionFailed = "Failed to generate reflection"
	// defaultGenerateTimeout は生成AI呼び出しのタイムアウト。
	defaultGenerateTimeout = 30 * time.Second
)

// JournalEntry は振り返り生成のリクエストボディ。
type JournalEntry struct {
	// Title は日記のタイトル。
	Title string `json:"title"`
	// Content は日記の本文。必須。
	Content string `json:"content"`
	// Mood は日記を書いたときの気分。
	Mood string `json:"mood"`
}

// ReflectionResult は振り返り生成のレスポンスボディ。
type ReflectionResult struct {
	// Reflection は生成された振り返り。
	Reflection string `json:"reflection"`
}

// handleGenerateReflection は日記エントリから振り返りを生成するハンドラを返す。
func (s *Server) handleGenerateReflection() gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry JournalEntry
		if err := c.ShouldBindJSON(&entry); err != nil {
			s.failReflection(c, fmt.Errorf("リクエストボディの解析に失敗: %w", err))
			return
		}

		if entry.Content == "" {
			s.metrics.IncReflection("missing_content")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing entry content"})
			return
		}

		apiKey := config.Get(s.cfg, config.KeyGenAIAPIKey)
		if apiKey == "" {
			s.metrics.IncReflection("not_configured")
			log.Printf("[Reflection] request_id=%s %sが設定されていません", middleware.GetRequestID(c), config.KeyGenAIAPIKey)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service not configured"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), s.generateTimeout())
		defer cancel()

		generator, err := s.newGenerator(ctx, apiKey)
		if err != nil {
			s.failReflection(c, fmt.Errorf("生成AIクライアントの初期化に失敗: %w", err))
			return
		}

		text, err := generator.Generate(ctx, ai.DefaultModel, buildReflectionPrompt(entry))
		if err != nil {
			s.failReflection(c, fmt.Errorf("振り返りの生成に失敗: %w", err))
			return
		}
		if text == "" {
			text = fallbackReflection
		}

		s.metrics.IncReflection("ok")
		c.JSON(http.StatusOK, ReflectionResult{Reflection: text})
	}
}

// failReflection はエラーをログに出力し、開示ポリシーに従って500を返す。
func (s *Server) failReflection(c *gin.Context, err error) {
	log.Printf("[Reflection] request_id=%s 振り返り生成エラー: %v", middleware.GetRequestID(c), err)

	level := decideDisclosure(s.cfg, c.GetHeader(HeaderDebugSecret))
	s.metrics.IncReflection("error")
	s.metrics.IncDisclosure(level.String())
	c.JSON(http.StatusInternalServerError, disclosureBody(level, errReflectionFailed, err))
}

// generateTimeout は生成AI呼び出しのタイムアウトを返す。
// 設定値が不正な場合はデフォルト値を使う。
func (s *Server) generateTimeout() time.Duration {
	raw := config.Get(s.cfg, config.KeyGenAITimeout)
	if raw == "" {
		return defaultGenerateTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[Reflection] %sの値が不正です: %q", config.KeyGenAITimeout, raw)
		return defaultGenerateTimeout
	}
	return d
}
