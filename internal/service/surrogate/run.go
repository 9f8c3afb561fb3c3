package surrogate

import (
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// 進捗表示のラベル
const (
	parsingLabelPrefix = "parsing "
	DumpingLabel       = "dumping userscripts"
)

type pendingFile struct {
	path string
	data []byte
}

// Run はプリファレンスファイルのサロゲートをユーザースクリプトに移行する。
// レコードを1件でも出力できない場合は何も書き込まずにエラーを返す
func Run(opts Options) (*RunResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	progress := opts.Progress.orNop()

	layout, err := opts.Layout.Resolve()
	if err != nil {
		return nil, err
	}
	logger.Debug("レイアウトを解決",
		zap.String("addonRoot", layout.AddonRoot),
		zap.String("preferences", layout.Preferences),
		zap.String("assets", layout.Assets),
		zap.String("outputDir", layout.OutputDir))

	// 1. 抽出
	env, err := ReadPreferences(layout.Preferences)
	if err != nil {
		return nil, err
	}

	// 2. 分類
	part := Classify(env.Store, progress, ParsingLabel(layout.Preferences))
	logger.Debug("プリファレンスを分類",
		zap.Int("keys", env.Store.Len()),
		zap.Int("surrogates", len(part.Records)),
		zap.Int("residual", part.Residual.Len()))

	manifest, err := LoadManifest(layout)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Layout:       layout,
		ResidualKeys: part.Residual.Len(),
		ManifestNew:  manifest.Created(),
		DryRun:       opts.DryRun,
	}

	// 3. ユーザースクリプトの生成
	var pending []pendingFile
	for i, rec := range part.Records {
		data, err := RenderUserScript(rec)
		if err != nil {
			return nil, err
		}

		name := FileName(rec.Name)
		path := filepath.Join(layout.OutputDir, name)
		url, err := layout.ContentURL(path)
		if err != nil {
			return nil, err
		}

		replaced := manifest.Has(name)
		if err := manifest.Put(name, Descriptor{
			Content:    ContentUserScriptSurrogate,
			Title:      rec.Name,
			ContentURL: []string{url},
		}); err != nil {
			return nil, err
		}
		if replaced {
			logger.Warn("既存のマニフェストエントリを上書き", zap.String("key", name))
		}

		pending = append(pending, pendingFile{path: path, data: data})
		result.Surrogates = append(result.Surrogates, Emitted{
			Name:        rec.Name,
			FileName:    name,
			Path:        path,
			ContentURL:  url,
			Replaced:    replaced,
			FieldsCount: len(rec.Fields) - 1,
		})
		progress(i+1, len(part.Records), DumpingLabel)
	}

	// 4. マニフェストとプリファレンスの書き戻し
	manifestData, err := manifest.Marshal()
	if err != nil {
		return nil, fmt.Errorf("マニフェストのエンコードに失敗: %w", err)
	}
	prefsData, err := RenderPreferences(env, part.Residual)
	if err != nil {
		return nil, err
	}
	pending = append(pending,
		pendingFile{path: layout.Assets, data: manifestData},
		pendingFile{path: layout.Preferences, data: prefsData},
	)

	if opts.DryRun {
		logger.Debug("ドライランのため書き込みをスキップ", zap.Int("files", len(pending)))
		return result, nil
	}

	stager := NewStager(logger)
	for _, p := range pending {
		if err := stager.Stage(p.path, p.data); err != nil {
			return nil, multierr.Append(err, stager.Abort())
		}
	}
	written, err := stager.Commit()
	result.Written = written
	if err != nil {
		return result, err
	}
	return result, nil
}

// ParsingLabel はプリファレンス分類時の進捗ラベルを返す
func ParsingLabel(preferencesPath string) string {
	return parsingLabelPrefix + filepath.Base(preferencesPath)
}
