package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// MatchPattern はワイルドカードパターンマッチングを行う
// ワイルドカード（*）を含む場合はglob形式でマッチング、
// 含まない場合は部分一致で判定する
func MatchPattern(name, pattern string) bool {
	// ワイルドカードを含む場合
	if strings.Contains(pattern, "*") {
		// サロゲート名は . 区切りなので区切り文字は指定しない
		g, err := glob.Compile(pattern)
		if err != nil {
			return false
		}
		return g.Match(name)
	}
	// ワイルドカードなしの場合は部分一致
	return strings.Contains(name, pattern)
}

// FilterByPattern はパターンにマッチする要素だけを返す。パターンが空なら全件
func FilterByPattern[T any](items []T, pattern string, getName func(T) string) []T {
	if pattern == "" {
		return items
	}
	var filtered []T
	for _, item := range items {
		if MatchPattern(getName(item), pattern) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
