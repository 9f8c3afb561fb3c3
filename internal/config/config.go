// Package config はレイアウト設定ファイル（YAML）を読み込む
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"surrogatetk/internal/service/surrogate"
)

// Config は設定ファイル全体
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
}

// LayoutConfig は入出力ファイルの配置
type LayoutConfig struct {
	AddonRoot   string `yaml:"addon_root"`           // アドオンルート
	Preferences string `yaml:"preferences"`          // アドオンルートからの相対パスまたは絶対パス
	Assets      string `yaml:"assets"`               // 同上
	OutputDir   string `yaml:"output_dir,omitempty"` // 空の場合はassetsと同じディレクトリ
}

// Default はデフォルト値だけを持つConfigを返す
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load はYAMLファイルから設定を読み込む。
// 相対パスのaddon_rootは設定ファイルのディレクトリを基準に解決する
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // 未知のフィールドはエラー

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのデコードに失敗: %w", err)
	}

	if cfg.Layout.AddonRoot != "" && !filepath.IsAbs(cfg.Layout.AddonRoot) {
		cfg.Layout.AddonRoot = filepath.Join(filepath.Dir(path), cfg.Layout.AddonRoot)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults は未設定のフィールドにデフォルト値を入れる
func (c *Config) setDefaults() {
	if c.Layout.AddonRoot == "" {
		c.Layout.AddonRoot = "."
	}
	if c.Layout.Preferences == "" {
		c.Layout.Preferences = surrogate.DefaultPreferences
	}
	if c.Layout.Assets == "" {
		c.Layout.Assets = surrogate.DefaultAssets
	}
}

// Validate は設定値の整合性をチェック
func (c *Config) Validate() error {
	if filepath.Ext(c.Layout.Assets) != ".json" {
		return fmt.Errorf("layout.assets は .json ファイルを指定してください: %s", c.Layout.Assets)
	}
	if filepath.Clean(c.Layout.Preferences) == filepath.Clean(c.Layout.Assets) {
		return fmt.Errorf("layout.preferences と layout.assets に同じファイルは指定できません: %s", c.Layout.Assets)
	}
	return nil
}
