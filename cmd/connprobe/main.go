// Supabase接続パラメータの取得を確認するためのコマンド。
// JOURNAL_GATEWAY_URL（または --gateway）が指定されていればゲートウェイ経由で、
// そうでなければ環境変数から直接、接続ハンドルを解決する。anonキーは表示しない。
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nao1215/journalgw/internal/config"
	"github.com/nao1215/journalgw/pkg/connclient"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("接続パラメータの解決に失敗: %v", err)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("connprobe", pflag.ContinueOnError)
	gatewayURL := flagSet.String("gateway", "", "ゲートウェイのベースURL（未指定なら JOURNAL_GATEWAY_URL）")
	secret := flagSet.String("secret", "", "設定エンドポイントの共有シークレット（未指定なら SUPABASE_CONFIG_SECRET）")
	timeout := flagSet.Duration("timeout", 10*time.Second, "解決のタイムアウト")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	flags := config.Map{config.KeyGatewayURL: *gatewayURL, config.KeyConfigSecret: *secret}
	provider := connclient.New(connclient.ResolverFor(config.Chain{flags, config.Env{}}))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := provider.Get(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("接続ハンドルを取得しました: url=%s\n", client.URL())
	return nil
}
