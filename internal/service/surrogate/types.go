package surrogate

import (
	"encoding/json"

	"go.uber.org/zap"
)

// 対象となるフィールド名
const (
	FieldSources     = "sources"
	FieldReplacement = "replacement"
	FieldExceptions  = "exceptions"
)

// Field はサロゲートの1フィールド
type Field struct {
	Name  string
	Value json.RawMessage
}

// Record は同じ名前を持つサロゲートキーをまとめたもの
type Record struct {
	Name   string
	Fields []Field // 出現順
}

// Field は名前に対応する値を返す
func (r *Record) Field(name string) (json.RawMessage, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// FieldNames はフィールド名を出現順に返す
func (r *Record) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// set は既存フィールドなら位置を保ったまま値を置き換える
func (r *Record) set(name string, value json.RawMessage) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Options はRunの実行オプション
type Options struct {
	Layout   Layout
	Progress ProgressFunc // nilの場合は何もしない
	Logger   *zap.Logger  // nilの場合はzap.NewNop()
	DryRun   bool         // trueの場合はファイルを書き込まない
}

// Emitted は出力した（または出力予定の）ユーザースクリプト1件の情報
type Emitted struct {
	Name        string // サロゲート名
	FileName    string // 例: foo_bar.user.js
	Path        string // 絶対パス
	ContentURL  string // アドオンルートからの相対パス（POSIX形式）
	Replaced    bool   // 既存のマニフェストエントリを上書きしたか
	FieldsCount int    // replacement以外のディレクティブ行数
}

// RunResult はRunの実行結果
type RunResult struct {
	Layout       Layout // 解決済みのレイアウト
	Surrogates   []Emitted
	ResidualKeys int
	ManifestNew  bool // マニフェストを新規作成したか
	DryRun       bool
	Written      []string // 実際に書き込んだファイル（DryRun時は空）
}

// AddedCount は新規に追加したマニフェストエントリ数
func (r *RunResult) AddedCount() int {
	n := 0
	for _, s := range r.Surrogates {
		if !s.Replaced {
			n++
		}
	}
	return n
}
