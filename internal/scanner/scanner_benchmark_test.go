package scanner

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"linecount/internal/classifier"
)

// prepareBenchmarkDirectory 创建目录扫描基准测试数据。
func prepareBenchmarkDirectory(b *testing.B) string {
	b.Helper()

	tempDir := b.TempDir()
	for i := 0; i < 200; i++ {
		pyFile := filepath.Join(tempDir, "pkg", "m"+strconv.Itoa(i)+".py")
		tsFile := filepath.Join(tempDir, "web", "c"+strconv.Itoa(i)+".ts")

		if err := os.MkdirAll(filepath.Dir(pyFile), 0o755); err != nil {
			b.Fatalf("mkdir py fixture dir failed: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(tsFile), 0o755); err != nil {
			b.Fatalf("mkdir ts fixture dir failed: %v", err)
		}

		pyLines := make([]string, 0, 300)
		for j := 0; j < 100; j++ {
			pyLines = append(pyLines, "value_"+strconv.Itoa(j)+" = 1  # inline")
			pyLines = append(pyLines, "'''block'''")
			pyLines = append(pyLines, "")
		}
		if err := os.WriteFile(pyFile, []byte(strings.Join(pyLines, "\n")), 0o644); err != nil {
			b.Fatalf("write py fixture failed: %v", err)
		}

		if err := os.WriteFile(tsFile, []byte("const x = 1; /* c */"), 0o644); err != nil {
			b.Fatalf("write ts fixture failed: %v", err)
		}
	}
	return tempDir
}

// BenchmarkScanDirectory 衡量串行目录扫描性能。
func BenchmarkScanDirectory(b *testing.B) {
	dirPath := prepareBenchmarkDirectory(b)
	service := NewService(classifier.NewRegistry(), Options{})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.ScanRoot(dirPath); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}
