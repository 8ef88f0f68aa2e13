// Package connclient はSupabaseの接続ハンドルをプロセス内で1度だけ解決して使い回す。
//
// 接続パラメータの解決方法は実行コンテキストで異なる。サーバー内で動く
// 呼び出し元は環境変数を直接読み（EnvResolver）、リモートのクライアントは
// ゲートウェイの /api/supabase-config を呼ぶ（RemoteResolver）。
// 最初に成功した解決結果はプロセスの終了までキャッシュされ、無効化の手段はない。
package connclient
