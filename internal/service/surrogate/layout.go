package surrogate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// デフォルトのディレクトリ構成（アドオンルートからの相対パス）
const (
	DefaultPreferences = "legacy/defaults.js"
	DefaultAssets      = "surrogates/assets.json"
)

// Layout は入出力ファイルの配置
type Layout struct {
	AddonRoot   string // アドオンルート
	Preferences string // レガシープリファレンスファイル
	Assets      string // マニフェストファイル
	OutputDir   string // ユーザースクリプトの出力先。空の場合はAssetsと同じディレクトリ
}

// DefaultLayout はaddonRootを基準にしたデフォルトのLayoutを返す
func DefaultLayout(addonRoot string) Layout {
	return Layout{
		AddonRoot:   addonRoot,
		Preferences: DefaultPreferences,
		Assets:      DefaultAssets,
	}
}

// Resolve は相対パスをアドオンルート基準の絶対パスに解決する
func (l Layout) Resolve() (Layout, error) {
	root := l.AddonRoot
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, fmt.Errorf("アドオンルート %s の解決に失敗: %w", l.AddonRoot, err)
	}

	resolved := Layout{AddonRoot: root}
	resolved.Preferences = resolveAgainst(root, orDefault(l.Preferences, DefaultPreferences))
	resolved.Assets = resolveAgainst(root, orDefault(l.Assets, DefaultAssets))
	if resolved.Preferences == resolved.Assets {
		return Layout{}, fmt.Errorf("%w: %s", ErrSamePath, resolved.Assets)
	}
	if l.OutputDir == "" {
		resolved.OutputDir = filepath.Dir(resolved.Assets)
	} else {
		resolved.OutputDir = resolveAgainst(root, l.OutputDir)
	}
	return resolved, nil
}

// ContentURL はアドオンルートからの相対パスをPOSIX形式で返す
func (l Layout) ContentURL(path string) (string, error) {
	rel, err := filepath.Rel(l.AddonRoot, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutsideAddonRoot, path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideAddonRoot, path)
	}
	return filepath.ToSlash(rel), nil
}

func resolveAgainst(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
