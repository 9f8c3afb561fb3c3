package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"surrogatetk/internal/service/surrogate"
)

// AppName はコマンド名
const AppName = "surrogatetk"

var (
	addonRoot       string
	preferencesPath string
	assetsPath      string
	outputDir       string
	configFile      string
	verbose         bool

	logger = zap.NewNop()
	layout surrogate.Layout
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "レガシープリファレンスのサロゲートをユーザースクリプトに移行するツール",
	Long: `レガシー拡張機能のプリファレンス（legacy/defaults.js）に埋め込まれた
surrogate.<名前>.<sources|replacement|exceptions> 形式のキーを
1サロゲート1ファイルのユーザースクリプトに変換し、マニフェスト（assets.json）に登録します。

デフォルトではカレントディレクトリをアドオンルートとして次の構成を前提とします:
  legacy/defaults.js       レガシープリファレンス
  surrogates/assets.json   マニフェスト
  surrogates/*.user.js     出力先

移行はアドオンルートで surrogatetk convert を実行して行います。
変換せずに対象を確認する場合は surrogatetk ls を使います。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&addonRoot, "addon-root", "A", ".", "アドオンルートのディレクトリ")
	RootCmd.PersistentFlags().StringVar(&preferencesPath, "preferences", surrogate.DefaultPreferences, "レガシープリファレンスファイル（アドオンルートからの相対パス）")
	RootCmd.PersistentFlags().StringVar(&assetsPath, "assets", surrogate.DefaultAssets, "マニフェストファイル（アドオンルートからの相対パス）")
	RootCmd.PersistentFlags().StringVar(&outputDir, "out", "", "ユーザースクリプトの出力先（デフォルト: マニフェストと同じディレクトリ）")
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "レイアウト設定ファイル（YAML）")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力")

	// コマンド実行前に共通でロガーとレイアウトを準備する
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプとバージョン表示の場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制

		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l

		resolved, err := resolveLayout(cmd)
		if err != nil {
			return err
		}
		layout = resolved
		return nil
	}
}

// newLogger はzapのロガーを作成する。通常はWarn以上、--verbose指定時はDebug以上を出力
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
