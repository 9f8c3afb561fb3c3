package surrogate

// Summary はlsで表示するサロゲート1件の概要
type Summary struct {
	Name           string
	FileName       string
	Fields         []string
	HasReplacement bool
}

// List はプリファレンスファイル中のサロゲートを書き込みなしで列挙する
func List(layout Layout) ([]Summary, error) {
	resolved, err := layout.Resolve()
	if err != nil {
		return nil, err
	}
	env, err := ReadPreferences(resolved.Preferences)
	if err != nil {
		return nil, err
	}

	part := Classify(env.Store, nil, "")
	summaries := make([]Summary, 0, len(part.Records))
	for _, rec := range part.Records {
		_, ok := rec.Field(FieldReplacement)
		summaries = append(summaries, Summary{
			Name:           rec.Name,
			FileName:       FileName(rec.Name),
			Fields:         rec.FieldNames(),
			HasReplacement: ok,
		})
	}
	return summaries, nil
}
