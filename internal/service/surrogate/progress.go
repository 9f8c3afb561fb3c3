package surrogate

// ProgressFunc は進捗を通知するコールバック
type ProgressFunc func(current, total int, label string)

// NopProgress は何もしないProgressFunc
func NopProgress(current, total int, label string) {}

func (p ProgressFunc) orNop() ProgressFunc {
	if p == nil {
		return NopProgress
	}
	return p
}
