package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestIsBinaryFileDetectsNullByte 验证前缀中的 NUL 字节触发二进制判定。
func TestIsBinaryFileDetectsNullByte(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "image.py")

	if err := os.WriteFile(path, []byte("header\x00payload"), 0o644); err != nil {
		t.Fatalf("write fixture failed: %v", err)
	}

	if !isBinaryFile(path) {
		t.Fatalf("expected binary verdict for file with NUL byte")
	}
}

// TestIsBinaryFileAcceptsText 验证普通文本（包括超过探测窗口的文件）
// 不会被误判为二进制。
func TestIsBinaryFileAcceptsText(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "long.py")

	content := strings.Repeat("value = 1\n", 1000)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture failed: %v", err)
	}

	if isBinaryFile(path) {
		t.Fatalf("expected text verdict for plain source file")
	}
}

// TestIsBinaryFileNullBeyondProbeWindow 验证探测只看前 2048 字节。
func TestIsBinaryFileNullBeyondProbeWindow(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "late-null.py")

	content := append([]byte(strings.Repeat("a", binaryProbeSize)), 0x00)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture failed: %v", err)
	}

	if isBinaryFile(path) {
		t.Fatalf("expected text verdict when NUL byte sits past the probe window")
	}
}

// TestIsBinaryFileOnMissingPath 验证探测失败按二进制处理（跳过而非崩溃）。
func TestIsBinaryFileOnMissingPath(t *testing.T) {
	if !isBinaryFile(filepath.Join(t.TempDir(), "does-not-exist.py")) {
		t.Fatalf("expected binary verdict for unreadable path")
	}
}
