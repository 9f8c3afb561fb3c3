package surrogate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ユーザースクリプトのメタデータブロック
const (
	userScriptOpen  = "// ==UserScript=="
	userScriptClose = "// ==/UserScript=="
	directivePrefix = "// @NoScript:"

	// UserScriptSuffix は出力ファイルの拡張子
	UserScriptSuffix = ".user.js"
)

// FileName はサロゲート名から出力ファイル名を作る
func FileName(name string) string {
	return strings.ReplaceAll(name, ".", "_") + UserScriptSuffix
}

// RenderUserScript はレコードをユーザースクリプトのテキストに変換する
func RenderUserScript(r *Record) ([]byte, error) {
	rawBody, ok := r.Field(FieldReplacement)
	if !ok {
		return nil, fmt.Errorf("サロゲート %s: %w", r.Name, ErrMissingReplacement)
	}
	var body string
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return nil, fmt.Errorf("サロゲート %s の %s は文字列である必要があります: %w", r.Name, FieldReplacement, ErrTypeMismatch)
	}

	var buf bytes.Buffer
	buf.WriteString(userScriptOpen + "\n")
	for _, f := range r.Fields {
		if f.Name == FieldReplacement {
			continue
		}
		value, err := directiveValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("サロゲート %s の %s: %w", r.Name, f.Name, err)
		}
		buf.WriteString(directivePrefix + f.Name + " " + value + "\n")
	}
	buf.WriteString(userScriptClose + "\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// directiveValue はディレクティブ行に書く値を返す。
// 文字列はそのまま、数値と真偽値はJSONリテラルのまま書く
func directiveValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", ErrTypeMismatch
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return s, nil
	case 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), nil
	default:
		// null, 配列, オブジェクト
		return "", fmt.Errorf("%w: %s", ErrTypeMismatch, raw)
	}
}
