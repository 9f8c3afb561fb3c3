package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"surrogatetk/cmd"
)

func main() {
	docsDir := "./docs"

	// 既存のdocsディレクトリをクリーン
	if err := os.RemoveAll(docsDir); err != nil {
		log.Fatalf("Failed to clean docs directory: %v", err)
	}

	count, err := generateDocs(cmd.RootCmd, docsDir)
	if err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}
	fmt.Printf("✅ Documentation generated in %s (%d files)\n", docsDir, count)
}

// generateDocs はルートをREADME.md、各コマンドを<name>.mdとしてdirに書き出し、生成したファイル数を返す
func generateDocs(root *cobra.Command, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := writeCommandDoc(root, filepath.Join(dir, "README.md")); err != nil {
		return 0, err
	}
	count := 1

	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := writeCommandDoc(c, filepath.Join(dir, c.Name()+".md")); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// writeCommandDoc は1コマンド分のMarkdownを書き出す
func writeCommandDoc(c *cobra.Command, filename string) error {
	buf := new(bytes.Buffer)
	if err := doc.GenMarkdownCustom(c, buf, linkHandler); err != nil {
		return fmt.Errorf("failed to generate markdown for %s: %w", c.CommandPath(), err)
	}

	content := buf.String()
	// versionはレイアウト系のフラグを使わない
	if c.Name() == "version" {
		content = removeInheritedFlagsSection(content)
	}
	return os.WriteFile(filename, []byte(content), 0644)
}

// linkHandler はcobraが生成するリンク先（surrogatetk_convert.md など）を出力ファイル名に合わせる
func linkHandler(link string) string {
	if link == cmd.AppName+".md" {
		return "README.md"
	}
	return strings.TrimPrefix(link, cmd.AppName+"_")
}

// removeInheritedFlagsSection は継承フラグセクションを削除
func removeInheritedFlagsSection(content string) string {
	var kept []string
	skipping := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "### Options inherited from parent commands") {
			skipping = true
			continue
		}
		if skipping && strings.HasPrefix(line, "### ") {
			skipping = false
		}
		if !skipping {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
