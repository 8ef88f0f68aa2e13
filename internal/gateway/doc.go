// Package gateway は日記アプリのサーバー側境界レイヤーを提供する。
//
// 生成AIによる振り返り生成（POST /api/generate-reflection）と、Supabaseの
// 接続パラメータ取得（GET /api/supabase-config）の2つのエンドポイントを持つ。
// APIキーなどのシークレットはサーバー側に留め、anonキーはオリジンゲートと
// 共有シークレットゲートを通過したリクエストにだけ返す。内部エラーの詳細は
// 段階的な開示ポリシーに従ってのみクライアントに返す。
package gateway
