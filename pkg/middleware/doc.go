// Package middleware はゲートウェイで使用するGinミドルウェアを提供する。
//
// パニックリカバリ、リクエストIDの付与、CORS設定を含む。
// オリジン比較の正規化は設定エンドポイントのオリジンゲートと共有する。
package middleware
