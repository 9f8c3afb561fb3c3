package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"surrogatetk/internal/config"
	"surrogatetk/internal/service/common"
	"surrogatetk/internal/service/surrogate"
)

// resolveLayout はフラグ・設定ファイル・デフォルトの順でレイアウトを決定する
func resolveLayout(cmd *cobra.Command) (surrogate.Layout, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return surrogate.Layout{}, fmt.Errorf(common.ConfigErrorFormat, common.ErrorIcon, configFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s 設定ファイル '%s' を使用します\n", common.SearchIcon, configFile)
		cfg = loaded
	}

	l := surrogate.Layout{
		AddonRoot:   cfg.Layout.AddonRoot,
		Preferences: cfg.Layout.Preferences,
		Assets:      cfg.Layout.Assets,
		OutputDir:   cfg.Layout.OutputDir,
	}

	// 明示的に指定されたフラグだけ設定ファイルの値を上書きする
	flags := cmd.Flags()
	if flags.Changed("addon-root") {
		l.AddonRoot = addonRoot
	}
	if flags.Changed("preferences") {
		l.Preferences = preferencesPath
	}
	if flags.Changed("assets") {
		l.Assets = assetsPath
	}
	if flags.Changed("out") {
		l.OutputDir = outputDir
	}

	// 書き込みを始める前にパスの衝突を検出する
	if _, err := l.Resolve(); err != nil {
		return surrogate.Layout{}, fmt.Errorf("%s レイアウトが不正です: %w", common.ErrorIcon, err)
	}
	return l, nil
}
