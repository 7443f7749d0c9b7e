// Package scanner 提供扫描调度能力。
// 该层负责目录遍历、过滤规则和结果聚合，不负责注释词法细节。
// 扫描是完全串行的：同一时间只有一个文件被打开、读取和分类，
// 聚合表由扫描器独占持有，无需任何加锁。
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"linecount/internal/classifier"
	"linecount/internal/model"
)

// DefaultSkipDirs 返回默认跳过的目录名集合（副本）。
// 覆盖版本控制元数据、依赖安装目录、构建产物、各类缓存、
// 编辑器配置目录和通用 data 目录。
func DefaultSkipDirs() map[string]bool {
	return map[string]bool{
		".git":          true,
		".venv":         true,
		"venv":          true,
		"node_modules":  true,
		"dist":          true,
		"build":         true,
		"out":           true,
		".pytest_cache": true,
		"__pycache__":   true,
		".mypy_cache":   true,
		".ruff_cache":   true,
		".next":         true,
		".turbo":        true,
		".idea":         true,
		".vscode":       true,
		"data":          true,
	}
}

// DefaultAllowedExtensions 返回参与统计的后缀白名单（副本）。
// 白名单比注释规则表窄得多：规则表里的大部分条目
// 只有在白名单放开后才会真正被用到。
func DefaultAllowedExtensions() map[string]bool {
	return map[string]bool{
		".py":  true,
		".ts":  true,
		".tsx": true,
	}
}

// extensionNoneKey 是无后缀文件的聚合哨兵键。
// 当前白名单下不可能出现，但聚合口径上保持完整定义。
const extensionNoneKey = "<none>"

// Options 存放一次扫描的可配置参数。
type Options struct {
	// IncludeDirs 中的目录名会从默认跳过集合中移除。
	IncludeDirs []string
	// ExcludeDirs 中的目录名会追加到跳过集合。
	ExcludeDirs []string
}

// Service 是扫描服务对象。
type Service struct {
	registry    *classifier.Registry
	skipDirs    map[string]bool
	allowedExts map[string]bool
}

// NewService 创建扫描服务并固化本次运行的过滤配置。
func NewService(registry *classifier.Registry, options Options) *Service {
	skipDirs := DefaultSkipDirs()
	for _, name := range options.IncludeDirs {
		delete(skipDirs, name)
	}
	for _, name := range options.ExcludeDirs {
		skipDirs[name] = true
	}

	return &Service{
		registry:    registry,
		skipDirs:    skipDirs,
		allowedExts: DefaultAllowedExtensions(),
	}
}

// ScanRoot 串行遍历根目录并统计所有合格文件。
// 不可读目录和二进制探测失败只会静默跳过对应子树或文件；
// 分类阶段的读取失败会让整次扫描终止，不输出部分报告。
func (s *Service) ScanRoot(rootPath string) (model.ScanResult, error) {
	var result model.ScanResult

	trimmedPath := strings.TrimSpace(rootPath)
	if trimmedPath == "" {
		trimmedPath = "."
	}

	absoluteRoot, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteRoot)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("not a directory: %s", absoluteRoot)
	}

	result.ScannedPath = absoluteRoot

	byExtension := make(map[string]*model.ExtensionMetrics)

	walkErr := filepath.WalkDir(absoluteRoot, func(path string, entry fs.DirEntry, entryErr error) error {
		if entryErr != nil {
			// 不可读目录整棵静默跳过，报告照常产出；
			// 只有分类阶段的文件读取失败才是致命错误。
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return entryErr
		}

		if entry.IsDir() {
			// 只裁剪子目录；根目录本身即使命中跳过集合也照常扫描。
			if path != absoluteRoot && s.skipDirs[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		if !s.isEligibleFile(path, entry.Name()) {
			return nil
		}

		counts, classifyErr := s.classifyFile(path)
		if classifyErr != nil {
			return fmt.Errorf("classify %s: %w", path, classifyErr)
		}

		s.accumulate(byExtension, entry.Name(), counts)
		return nil
	})
	if walkErr != nil {
		return result, walkErr
	}

	s.buildSummaries(&result, byExtension)
	return result, nil
}

// isEligibleFile 应用后缀白名单、测试文件命名过滤和二进制探测。
func (s *Service) isEligibleFile(path string, name string) bool {
	if !s.allowedExts[strings.ToLower(classifier.FileExt(name))] {
		return false
	}
	if isTestFile(name) {
		return false
	}
	return !isBinaryFile(path)
}

// isTestFile 判断文件名主干是否符合测试文件命名约定（忽略大小写）。
func isTestFile(name string) bool {
	stem := strings.ToLower(strings.TrimSuffix(name, classifier.FileExt(name)))

	if strings.HasPrefix(stem, "test_") {
		return true
	}
	return strings.HasSuffix(stem, "_test") ||
		strings.HasSuffix(stem, ".test") ||
		strings.HasSuffix(stem, ".spec")
}

// classifyFile 打开单个文件并交给分类引擎统计。
func (s *Service) classifyFile(path string) (model.FileCounts, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.FileCounts{}, err
	}
	defer file.Close()

	return classifier.Classify(file, s.registry.Lookup(filepath.Base(path)))
}

// accumulate 把单文件结果叠加到对应后缀的聚合项上。
func (s *Service) accumulate(byExtension map[string]*model.ExtensionMetrics, name string, counts model.FileCounts) {
	key := strings.ToLower(classifier.FileExt(name))
	if key == "" {
		key = extensionNoneKey
	}

	summary, ok := byExtension[key]
	if !ok {
		summary = &model.ExtensionMetrics{Extension: key}
		byExtension[key] = summary
	}

	summary.Files++
	summary.FileCounts.Add(counts)
}

// buildSummaries 计算后缀级排序结果和项目总计。
func (s *Service) buildSummaries(result *model.ScanResult, byExtension map[string]*model.ExtensionMetrics) {
	result.Extensions = make([]model.ExtensionMetrics, 0, len(byExtension))
	result.Total = model.TotalMetrics{}

	for _, item := range byExtension {
		result.Extensions = append(result.Extensions, *item)
		result.Total.Files += item.Files
		result.Total.FileCounts.Add(item.FileCounts)
	}

	// 总行数降序；行数相同时按后缀名升序，保证输出可重复。
	sort.Slice(result.Extensions, func(i int, j int) bool {
		left := result.Extensions[i]
		right := result.Extensions[j]
		if left.Total() != right.Total() {
			return left.Total() > right.Total()
		}
		return left.Extension < right.Extension
	})
}
