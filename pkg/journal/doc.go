// Package journal はゲートウェイの振り返り生成APIを呼び出すクライアントを提供する。
//
// 生成AIのAPIキーはゲートウェイ側にだけ置かれ、このクライアントは日記エントリを
// 送って生成されたテキストを受け取るだけである。
package journal
