// Package supabase はSupabaseのREST APIに接続するための最小限のハンドルを提供する。
//
// ハンドルは公開URLとanonキーの組から生成する。キーが空（ゲートウェイが
// anonをnullで返した場合）はハンドルの生成に失敗する。
package supabase
