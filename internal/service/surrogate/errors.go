package surrogate

import (
	"errors"
	"fmt"
)

// パイプライン各段のエラー。すべて実行全体を中断させる
var (
	ErrMalformedEnvelope  = errors.New("プリファレンスファイルのエンベロープ形式が不正です")
	ErrMalformedJSON      = errors.New("JSONペイロードが不正です")
	ErrMissingReplacement = errors.New("replacement フィールドがありません")
	ErrTypeMismatch       = errors.New("フィールド値の型がサポートされていません")
	ErrOutsideAddonRoot   = errors.New("パスがアドオンルートの外にあります")
	ErrSamePath           = errors.New("プリファレンスとマニフェストに同じファイルは指定できません")
)

// IOError はファイルの読み書きに失敗したことを表す
type IOError struct {
	Op   string // 例: "読み込み", "書き込み", "リネーム"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s の%sに失敗: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
