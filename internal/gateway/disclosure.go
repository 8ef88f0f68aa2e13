package gateway

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/journalgw/internal/config"
)

// HeaderDebugSecret はエラー詳細の開示を求めるリクエストヘッダー。
const HeaderDebugSecret = "X-Debug-Secret"

// DisclosureLevel はエラー応答に含める内部情報の段階。
type DisclosureLevel int

const (
	// DisclosureOpaque は汎用メッセージのみを返す。
	DisclosureOpaque DisclosureLevel = iota
	// DisclosureNonProduction は非本番環境でエラーメッセージを返す。
	DisclosureNonProduction
	// DisclosureDebugHeader はデバッグシークレットが一致した場合にエラーチェーン全体を返す。
	DisclosureDebugHeader
)

// String はメトリクスやログに使うティア名を返す。
func (l DisclosureLevel) String() string {
	switch l {
	case DisclosureDebugHeader:
		return "debug-header"
	case DisclosureNonProduction:
		return "non-production"
	default:
		return "opaque"
	}
}

// decideDisclosure は開示ティアを決める。
// 優先順位は debug-header > non-production > opaque で、最初に一致したものを使う。
func decideDisclosure(cfg config.Source, providedSecret string) DisclosureLevel {
	if debugSecret, ok := cfg.Lookup(config.KeyDebugSecret); ok && providedSecret != "" && secretEqual(providedSecret, debugSecret) {
		return DisclosureDebugHeader
	}
	if !config.IsProduction(cfg) {
		return DisclosureNonProduction
	}
	return DisclosureOpaque
}

// disclosureBody はティアに応じたエラー応答ボディを組み立てる。
func disclosureBody(level DisclosureLevel, message string, err error) gin.H {
	body := gin.H{"error": message}
	switch level {
	case DisclosureDebugHeader:
		body["details"] = errorChain(err)
	case DisclosureNonProduction:
		body["details"] = err.Error()
	}
	return body
}

// errorChain はラップされたエラーを外側から順に1行ずつ並べる。
func errorChain(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString("\ncaused by: ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// secretEqual はシークレットを定数時間で比較する。
// 結果は通常の文字列比較と同じで、長さが異なる場合は即座に不一致となる。
func secretEqual(provided, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}
