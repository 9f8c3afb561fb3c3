package cli

import (
	"fmt"
	"os/exec"
	"strings"
)

// executeGitCommand はGitコマンドを実行する共通関数
func executeGitCommand(dir string, args []string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s に失敗: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// GitAdd はファイルをインデックスに追加する
func GitAdd(dir string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	return executeGitCommand(dir, append([]string{"add", "--"}, paths...))
}
