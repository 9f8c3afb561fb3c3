// Package jsonobj はキー順序を保持するJSONオブジェクトを提供する
package jsonobj

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object はキーの挿入順を保持したまま値を生のJSONで持つオブジェクト
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

// New は空のObjectを作成
func New() *Object {
	return &Object{values: make(map[string]json.RawMessage)}
}

// Len はキー数を返す
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys は挿入順のキー一覧を返す
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get はキーに対応する生のJSON値を返す
func (o *Object) Get(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has はキーが存在するか判定
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set は値を設定する。既存キーの場合は位置を保ったまま値だけ置き換える
func (o *Object) Set(key string, value json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// SetValue は任意の値をJSONに変換して設定
func (o *Object) SetValue(key string, value any) error {
	raw, err := marshalNoEscape(value)
	if err != nil {
		return fmt.Errorf("キー %q の値のエンコードに失敗: %w", key, err)
	}
	o.Set(key, raw)
	return nil
}

// Parse はdata全体を1つのJSONオブジェクトとして読み込む
func Parse(data []byte) (*Object, error) {
	if !json.Valid(data) {
		// 位置情報付きのエラーを得るため標準のデコードに任せる
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("不正なJSONです")
	}
	o := New()
	if err := o.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return o, nil
}

// UnmarshalJSON はトークン単位で読み込みキー順序を保持する
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("JSONオブジェクトではありません: 先頭トークン %v", tok)
	}

	o.keys = nil
	o.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("オブジェクトのキーが文字列ではありません: %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("キー %q の値の読み込みに失敗: %w", key, err)
		}
		o.Set(key, bytes.TrimSpace(raw))
	}

	// 閉じ括弧
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON はキー順序を保ったままコンパクトに出力
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := json.Compact(&buf, o.values[key]); err != nil {
			return nil, fmt.Errorf("キー %q の値が不正なJSONです: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent はindent単位でインデントしたJSONを返す。末尾に改行は付けない
func (o *Object) MarshalIndent(indent string) ([]byte, error) {
	if len(o.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range o.keys {
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.WriteString(indent)
		buf.Write(k)
		buf.WriteString(": ")
		if err := json.Indent(&buf, o.values[key], indent, indent); err != nil {
			return nil, fmt.Errorf("キー %q の値が不正なJSONです: %w", key, err)
		}
		if i < len(o.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape はHTMLエスケープなしでJSONエンコードする
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
