package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"surrogatetk/internal/cli"
	"surrogatetk/internal/service/common"
	"surrogatetk/internal/service/surrogate"
)

var (
	convertDryRun bool
	convertGitAdd bool
	convertQuiet  bool
)

// convertCmd はconvertコマンドを表す
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "サロゲートをユーザースクリプトに変換",
	Long: `レガシープリファレンスのサロゲートキーを1件ずつユーザースクリプトに書き出し、
マニフェストに登録したうえでプリファレンスファイルから該当キーを取り除きます。

出力はすべて一時ファイルに書き込み、全件成功した場合のみ置き換えます。
replacement を持たないサロゲートが1件でもあれば何も書き込まずに終了します。

例:
  ` + AppName + ` convert
  ` + AppName + ` convert -A src --dry-run
  ` + AppName + ` convert -c surrogatetk.yaml --git-add`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runConvert(out, errOut io.Writer) error {
	opts := surrogate.Options{
		Layout: layout,
		Logger: logger,
		DryRun: convertDryRun,
	}
	if !convertQuiet {
		opts.Progress = common.NewProgressBar(errOut).Report
	}

	fmt.Fprintf(out, common.ProcessingFormat+"\n", common.ProcessIcon, layout.Preferences)
	result, err := surrogate.Run(opts)
	if err != nil {
		return fmt.Errorf(common.ConvertErrorFormat, common.ErrorIcon, layout.Preferences, err)
	}

	printConvertResult(out, result)

	if convertDryRun {
		fmt.Fprintf(out, "\n%s  --dry-runが指定されました。ファイルは書き込まれていません。\n", common.WarningIcon)
		return nil
	}

	if convertGitAdd {
		if err := cli.GitAdd(result.Layout.AddonRoot, result.Written...); err != nil {
			return fmt.Errorf("%s git add に失敗: %w", common.ErrorIcon, err)
		}
		fmt.Fprintf(out, "%s %d件のファイルをgitのインデックスに追加しました\n", common.SuccessIcon, len(result.Written))
	}
	return nil
}

// printConvertResult は変換結果を表示する
func printConvertResult(out io.Writer, result *surrogate.RunResult) {
	for _, s := range result.Surrogates {
		note := ""
		if s.Replaced {
			note = " (既存エントリを上書き)"
		}
		fmt.Fprintf(out, "  %s %s ← %s%s\n", common.FileIcon, s.ContentURL, s.Name, note)
	}

	fmt.Fprintf(out, common.ConvertSuccessFormat+"\n", common.SuccessIcon, len(result.Surrogates))

	manifestState := "更新"
	if result.ManifestNew {
		manifestState = "新規作成"
	}
	fmt.Fprintf(out, "%s マニフェスト: %s (%s, 追加 %d件 / 上書き %d件)\n",
		common.InfoIcon,
		filepath.Base(result.Layout.Assets),
		manifestState,
		result.AddedCount(),
		len(result.Surrogates)-result.AddedCount())
	fmt.Fprintf(out, "%s 残りのプリファレンス: %d件\n", common.InfoIcon, result.ResidualKeys)
}

func init() {
	RootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "ファイルを書き込まずに結果だけ表示")
	convertCmd.Flags().BoolVar(&convertGitAdd, "git-add", false, "書き込んだファイルをgit addする")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "プログレスバーを表示しない")
	convertCmd.MarkFlagsMutuallyExclusive("dry-run", "git-add")
}
