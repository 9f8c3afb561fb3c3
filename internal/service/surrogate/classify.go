package surrogate

import (
	"regexp"

	"surrogatetk/internal/jsonobj"
)

// keyPattern は surrogate.<名前>.<フィールド> 形式のキーにマッチする
var keyPattern = regexp.MustCompile(`^surrogate\.(.+?)\.(sources|replacement|exceptions)$`)

// Partition はClassifyの結果
type Partition struct {
	Records  []*Record       // 初出順
	Residual *jsonobj.Object // サロゲート以外のキー（元の順序）
}

// Record は名前に対応するレコードを返す
func (p *Partition) Record(name string) (*Record, bool) {
	for _, r := range p.Records {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// ParseKey はキーをサロゲート名とフィールド名に分解する
func ParseKey(key string) (name, field string, ok bool) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Classify はプリファレンスをサロゲートレコードと残りのキーに振り分ける。
// キー1件ごとに label を付けて progress を呼ぶ
func Classify(store *jsonobj.Object, progress ProgressFunc, label string) *Partition {
	progress = progress.orNop()

	p := &Partition{Residual: jsonobj.New()}
	index := make(map[string]*Record)
	keys := store.Keys()
	for i, key := range keys {
		value, _ := store.Get(key)
		if name, field, ok := ParseKey(key); ok {
			rec, exists := index[name]
			if !exists {
				rec = &Record{Name: name}
				index[name] = rec
				p.Records = append(p.Records, rec)
			}
			rec.set(field, value)
		} else {
			p.Residual.Set(key, value)
		}
		progress(i+1, len(keys), label)
	}
	return p
}
