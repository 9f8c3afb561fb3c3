package surrogate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"surrogatetk/internal/jsonobj"
)

// マニフェストのcontent種別
const (
	ContentInternal            = "internal"
	ContentUserScriptSurrogate = "userscript-surrogate"

	manifestTitle = "surrogates list"
)

// Descriptor はマニフェストの1エントリ
type Descriptor struct {
	Content     string   `json:"content"`
	Title       string   `json:"title"`
	UpdateAfter *int64   `json:"updateAfter,omitempty"`
	ContentURL  []string `json:"contentURL"`
}

// Manifest はassets.jsonの内容。既存エントリは元のJSONのまま保持する
type Manifest struct {
	entries *jsonobj.Object
	created bool
}

// NewManifest はマニフェスト自身を指すエントリだけを持つManifestを作成
func NewManifest(layout Layout) (*Manifest, error) {
	url, err := layout.ContentURL(layout.Assets)
	if err != nil {
		return nil, err
	}
	var zero int64
	m := &Manifest{entries: jsonobj.New(), created: true}
	if err := m.Put(filepath.Base(layout.Assets), Descriptor{
		Content:     ContentInternal,
		Title:       manifestTitle,
		UpdateAfter: &zero,
		ContentURL:  []string{url},
	}); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadManifest は既存のマニフェストを読み込む。存在しない場合はNewManifestと同じ
func LoadManifest(layout Layout) (*Manifest, error) {
	data, err := os.ReadFile(layout.Assets)
	if errors.Is(err, fs.ErrNotExist) {
		return NewManifest(layout)
	}
	if err != nil {
		return nil, &IOError{Op: "読み込み", Path: layout.Assets, Err: err}
	}

	entries, err := jsonobj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", layout.Assets, ErrMalformedJSON, err)
	}
	return &Manifest{entries: entries}, nil
}

// Created はファイルが存在せず新規作成されたかを返す
func (m *Manifest) Created() bool {
	return m.created
}

// Keys はエントリのキー一覧を返す
func (m *Manifest) Keys() []string {
	return m.entries.Keys()
}

// Has はキーが存在するか判定
func (m *Manifest) Has(key string) bool {
	return m.entries.Has(key)
}

// Get はキーに対応するDescriptorを返す
func (m *Manifest) Get(key string) (Descriptor, bool, error) {
	raw, ok := m.entries.Get(key)
	if !ok {
		return Descriptor{}, false, nil
	}
	var d Descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return Descriptor{}, true, fmt.Errorf("マニフェストエントリ %s: %w: %v", key, ErrMalformedJSON, err)
	}
	return d, true, nil
}

// Put はエントリを追加する。同じキーがあれば位置を保ったまま上書きする
func (m *Manifest) Put(key string, d Descriptor) error {
	return m.entries.SetValue(key, d)
}

// Marshal はタブインデントのJSONを返す
func (m *Manifest) Marshal() ([]byte, error) {
	return m.entries.MarshalIndent("\t")
}
