package surrogate

import (
	"fmt"
	"os"
	"regexp"

	"surrogatetk/internal/jsonobj"
)

// envelopePattern はレガシープリファレンスファイル中のJSONペイロードを囲む形式
var envelopePattern = regexp.MustCompile(`(?s)^(.*Legacy\.migrated\.prefs\s*=\s*Object\.assign\s*\(\s*)(\{.+\})(\s*,.+)$`)

// Envelope はプリファレンスファイルを前置部・ペイロード・後置部に分解したもの
type Envelope struct {
	Prefix string
	Suffix string
	Store  *jsonobj.Object // キー順序を保持したプリファレンス
}

// Extract はテキストからエンベロープを取り出しペイロードをパースする
func Extract(text string) (*Envelope, error) {
	m := envelopePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrMalformedEnvelope
	}

	store, err := jsonobj.Parse([]byte(m[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return &Envelope{
		Prefix: m[1],
		Suffix: m[3],
		Store:  store,
	}, nil
}

// ReadPreferences はファイルを読み込みExtractする
func ReadPreferences(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "読み込み", Path: path, Err: err}
	}
	env, err := Extract(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}
