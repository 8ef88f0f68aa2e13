// 日記ゲートウェイのエントリポイント。
// 生成AIによる振り返り生成と、Supabase接続パラメータの提供を担当する。
// APIキーやanonキーなどのシークレットをクライアントから隠す境界として動作する。
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/nao1215/journalgw/internal/config"
	"github.com/nao1215/journalgw/internal/gateway"
	"github.com/nao1215/journalgw/internal/metrics"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Gatewayサービスの起動に失敗: %v", err)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("gateway", pflag.ContinueOnError)
	port := flagSet.String("port", config.GetOr(config.Env{}, "PORT", "8080"), "リッスンポート")
	configPath := flagSet.String("config", "", "環境変数に重ねるYAML設定ファイル（環境変数が優先）")
	enableMetrics := flagSet.Bool("metrics", true, "/metrics でPrometheusメトリクスを公開する")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	var src config.Source = config.Env{}
	if *configPath != "" {
		fileSource, err := config.LoadFile(*configPath)
		if err != nil {
			return err
		}
		src = config.Chain{config.Env{}, fileSource}
		log.Printf("設定ファイルを読み込みました: %s", *configPath)
	}

	var opts []gateway.Option
	if *enableMetrics {
		opts = append(opts, gateway.WithMetrics(metrics.NewProm("journalgw")))
	}

	server, err := gateway.NewServer(*port, src, opts...)
	if err != nil {
		return fmt.Errorf("Gatewayサーバーの初期化に失敗: %w", err)
	}

	log.Printf("Gatewayサービスを起動します: :%s", *port)
	return server.Run()
}
