// Package httpclient はゲートウェイのJSON APIを呼び出すHTTPクライアントを提供する。
//
// 設定クライアント（connclient）や振り返りクライアント（journal）が
// ゲートウェイへの通信に使用する。2xx以外の応答は StatusError として返し、
// サーバーが返した "error" フィールドを呼び出し元が取り出せるようにする。
package httpclient
