package surrogate

import (
	"fmt"

	"surrogatetk/internal/jsonobj"
)

// RenderPreferences は残りのキーを元の前置部と後置部の間に戻したテキストを返す
func RenderPreferences(env *Envelope, residual *jsonobj.Object) ([]byte, error) {
	payload, err := residual.MarshalIndent("\t")
	if err != nil {
		return nil, fmt.Errorf("プリファレンスのエンコードに失敗: %w", err)
	}
	out := make([]byte, 0, len(env.Prefix)+len(payload)+len(env.Suffix))
	out = append(out, env.Prefix...)
	out = append(out, payload...)
	out = append(out, env.Suffix...)
	return out, nil
}
