package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nao1215/journalgw/internal/config"
)

// TestDecideDisclosure は開示ティアの優先順位を検証する。
func TestDecideDisclosure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.Map
		provided string
		want     DisclosureLevel
	}{
		{name: "本番でシークレット一致", cfg: config.Map{config.KeyAppEnv: "production", config.KeyDebugSecret: "d"}, provided: "d", want: DisclosureDebugHeader},
		{name: "非本番でシークレット一致", cfg: config.Map{config.KeyDebugSecret: "d"}, provided: "d", want: DisclosureDebugHeader},
		{name: "本番でシークレット不一致", cfg: config.Map{config.KeyAppEnv: "production", config.KeyDebugSecret: "d"}, provided: "x", want: DisclosureOpaque},
		{name: "本番でヘッダー空", cfg: config.Map{config.KeyAppEnv: "production", config.KeyDebugSecret: "d"}, provided: "", want: DisclosureOpaque},
		{name: "非本番でシークレット不一致", cfg: config.Map{config.KeyDebugSecret: "d"}, provided: "x", want: DisclosureNonProduction},
		{name: "本番でシークレット未設定", cfg: config.Map{config.KeyAppEnv: "production"}, provided: "", want: DisclosureOpaque},
		{name: "実行モード未設定は非本番", cfg: config.Map{}, provided: "", want: DisclosureNonProduction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := decideDisclosure(tt.cfg, tt.provided); got != tt.want {
				t.Errorf("decideDisclosure() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDisclosureBody はティアごとの応答ボディを検証する。
func TestDisclosureBody(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", errors.New("inner detail"))

	t.Run("不透明ティアはerrorのみ", func(t *testing.T) {
		t.Parallel()

		body := disclosureBody(DisclosureOpaque, "generic", err)
		if len(body) != 1 || body["error"] != "generic" {
			t.Errorf("body = %v, want only error", body)
		}
	})

	t.Run("非本番ティアはメッセージを含む", func(t *testing.T) {
		t.Parallel()

		body := disclosureBody(DisclosureNonProduction, "generic", err)
		if body["details"] != "outer: inner detail" {
			t.Errorf("details = %v, want %q", body["details"], "outer: inner detail")
		}
	})

	t.Run("デバッグティアはエラーチェーンを含む", func(t *testing.T) {
		t.Parallel()

		body := disclosureBody(DisclosureDebugHeader, "generic", err)
		want := "outer: inner detail\ncaused by: inner detail"
		if body["details"] != want {
			t.Errorf("details = %q, want %q", body["details"], want)
		}
	})
}

// TestDisclosureLevelString はティア名を検証する。
func TestDisclosureLevelString(t *testing.T) {
	t.Parallel()

	for level, want := range map[DisclosureLevel]string{
		DisclosureOpaque:        "opaque",
		DisclosureNonProduction: "non-production",
		DisclosureDebugHeader:   "debug-header",
	} {
		if got := level.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

// TestSecretEqual はシークレット比較を検証する。
func TestSecretEqual(t *testing.T) {
	t.Parallel()

	if !secretEqual("abc", "abc") {
		t.Error("同じ値が不一致と判定された")
	}
	if secretEqual("abc", "abd") || secretEqual("abc", "abcd") || secretEqual("", "abc") {
		t.Error("異なる値が一致と判定された")
	}
}
