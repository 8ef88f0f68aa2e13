// Package config はゲートウェイが参照する設定値の取得元を抽象化する。
//
// 設定値はリクエスト処理のたびに Source から読み出される。本番では環境変数、
// テストでは固定値の MapSource を注入する。YAMLファイルを環境変数に重ねて
// 使うこともできる。
package config
