package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"surrogatetk/internal/service/common"
	"surrogatetk/internal/service/surrogate"
)

var lsFilter string

// lsCmd はlsコマンドを表す
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "プリファレンス中のサロゲートを一覧表示",
	Long: `レガシープリファレンスに含まれるサロゲートを、変換後のファイル名とともに一覧表示します。
ファイルは書き込みません。

例:
  ` + AppName + ` ls
  ` + AppName + ` ls -f 'google*'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := surrogate.List(layout)
		if err != nil {
			return common.FormatListError("サロゲート", err)
		}

		summaries = common.FilterByPattern(summaries, lsFilter, func(s surrogate.Summary) string {
			return s.Name
		})

		opts := &common.DisplayOptions{
			ShowCount:    true,
			EmptyMessage: common.FormatEmptyMessage("サロゲート"),
		}
		if lsFilter != "" {
			opts.FilterMessages = []string{fmt.Sprintf("パターン'%s'に一致する", lsFilter)}
		}
		common.DisplayList(cmd.OutOrStdout(), summaries, "サロゲート", summaryTable, opts)
		return nil
	},
}

func summaryTable(items []surrogate.Summary) ([]common.TableColumn, [][]string) {
	columns := []common.TableColumn{
		{Header: "名前"},
		{Header: "ファイル"},
		{Header: "フィールド"},
		{Header: "replacement"},
	}
	data := make([][]string, len(items))
	for i, s := range items {
		replacement := "あり"
		if !s.HasReplacement {
			replacement = common.WarningIcon + " なし"
		}
		data[i] = []string{s.Name, s.FileName, strings.Join(s.Fields, ","), replacement}
	}
	return columns, data
}

func init() {
	RootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVarP(&lsFilter, "filter", "f", "", "サロゲート名のフィルタ（*を含む場合はglob、含まない場合は部分一致）")
}
