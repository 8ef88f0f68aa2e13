// Package ai は生成AIバックエンドへの呼び出しを抽象化する。
//
// ゲートウェイは Generator インターフェースだけに依存し、本番では
// Gemini API（google.golang.org/genai）を使う実装を注入する。
package ai
