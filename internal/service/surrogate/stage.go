package surrogate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type stagedFile struct {
	target string
	temp   string
}

// Stager は出力を一時ファイルに書き、すべて成功した後にまとめてリネームする
type Stager struct {
	files  []stagedFile
	logger *zap.Logger
}

// NewStager は新しいStagerを作成
func NewStager(logger *zap.Logger) *Stager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stager{logger: logger}
}

// Stage はpathと同じディレクトリに一時ファイルを作りdataを書き込む
func (s *Stager) Stage(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "ディレクトリ作成", Path: dir, Err: err}
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "書き込み", Path: path, Err: err}
	}
	s.files = append(s.files, stagedFile{target: path, temp: f.Name()})

	if _, err := f.Write(data); err != nil {
		f.Close()
		return &IOError{Op: "書き込み", Path: path, Err: err}
	}
	if err := f.Chmod(targetMode(path)); err != nil {
		f.Close()
		return &IOError{Op: "書き込み", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "書き込み", Path: path, Err: err}
	}

	s.logger.Debug("一時ファイルに書き込み",
		zap.String("target", path),
		zap.String("temp", f.Name()),
		zap.Int("bytes", len(data)))
	return nil
}

// targetMode は既存ファイルのパーミッションを返す。存在しなければ0644
func targetMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0644
}

// Pending はまだ確定していないファイル数を返す
func (s *Stager) Pending() int {
	return len(s.files)
}

// Commit は一時ファイルをステージ順に本来のパスへリネームする。
// 途中で失敗した場合は残りの一時ファイルを削除し、確定済みのパスとエラーを返す
func (s *Stager) Commit() ([]string, error) {
	committed := make([]string, 0, len(s.files))
	for i, sf := range s.files {
		if err := os.Rename(sf.temp, sf.target); err != nil {
			s.files = s.files[i:]
			renameErr := &IOError{Op: "リネーム", Path: sf.target, Err: err}
			return committed, multierr.Append(renameErr, s.Abort())
		}
		committed = append(committed, sf.target)
	}
	s.files = nil
	s.logger.Debug("書き込みを確定", zap.Int("files", len(committed)))
	return committed, nil
}

// Abort は未確定の一時ファイルをすべて削除する
func (s *Stager) Abort() error {
	var err error
	for _, sf := range s.files {
		if rmErr := os.Remove(sf.temp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = multierr.Append(err, &IOError{Op: "削除", Path: sf.temp, Err: rmErr})
		}
	}
	s.files = nil
	return err
}
