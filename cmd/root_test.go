package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"linecount/internal/classifier"
)

// runRootCmd 是测试辅助函数，用给定参数执行根命令并捕获输出。
func runRootCmd(t *testing.T, args ...string) string {
	t.Helper()

	rootCmd := newRootCmd("test", classifier.NewRegistry())
	rootCmd.SetArgs(args)

	var buffer bytes.Buffer
	rootCmd.SetOut(&buffer)
	rootCmd.SetErr(&buffer)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	return buffer.String()
}

// writeFixtureFile 在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

// TestRootCmdScansDirectory 验证根命令端到端输出文本摘要。
func TestRootCmdScansDirectory(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "app.py"), "# comment\nvalue = 1\n")

	output := runRootCmd(t, tempDir)

	if !strings.Contains(output, "Total files: 1\n") {
		t.Fatalf("missing total files line in output: %q", output)
	}
	if !strings.Contains(output, ".py\t1\t1\t0\t2\tfiles:1\n") {
		t.Fatalf("missing extension row in output: %q", output)
	}
}

// TestRootCmdIncludeDirFlag 验证 --include-dir 放开默认跳过目录。
func TestRootCmdIncludeDirFlag(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "node_modules", "dep.py"), "x = 1\n")

	pruned := runRootCmd(t, tempDir)
	if !strings.Contains(pruned, "Total files: 0\n") {
		t.Fatalf("expected pruned run to count 0 files: %q", pruned)
	}

	included := runRootCmd(t, tempDir, "--include-dir", "node_modules")
	if !strings.Contains(included, "Total files: 1\n") {
		t.Fatalf("expected include-dir run to count 1 file: %q", included)
	}
}

// TestRootCmdJSONFormat 验证 --format json 输出 JSON 结果。
func TestRootCmdJSONFormat(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "app.py"), "value = 1\n")

	output := runRootCmd(t, tempDir, "--format", "json")

	if !strings.Contains(output, "\"scanned_path\"") || !strings.Contains(output, "\"total\"") {
		t.Fatalf("unexpected json output: %q", output)
	}
}

// TestRootCmdRejectsUnknownFormat 验证非法 format 返回错误。
func TestRootCmdRejectsUnknownFormat(t *testing.T) {
	rootCmd := newRootCmd("test", classifier.NewRegistry())
	rootCmd.SetArgs([]string{t.TempDir(), "--format", "xml"})

	var buffer bytes.Buffer
	rootCmd.SetOut(&buffer)
	rootCmd.SetErr(&buffer)

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
