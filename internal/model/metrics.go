// Package model 定义 linecount 的核心数据模型。
// 这些结构会被分类引擎、扫描器、输出层和命令层共同使用。
package model

// FileCounts 表示一组行级统计值。
//
// 注意：
// - 每个物理行只会归入 Code/Comment/Blank 三者之一
// - 块注释在某行闭合且该行尾部还有代码时，该行整体计入 Code
// - Blank 表示去掉空白字符后为空的行
type FileCounts struct {
	Code    int64 `json:"code"`
	Comment int64 `json:"comment"`
	Blank   int64 `json:"blank"`
}

// Total 返回该组统计覆盖的总行数。
func (c FileCounts) Total() int64 {
	return c.Code + c.Comment + c.Blank
}

// Add 将另一个统计结果叠加到当前对象。
func (c *FileCounts) Add(other FileCounts) {
	c.Code += other.Code
	c.Comment += other.Comment
	c.Blank += other.Blank
}

// ExtensionMetrics 表示某个文件后缀的聚合结果。
// Extension 对无后缀文件使用哨兵值 "<none>"。
type ExtensionMetrics struct {
	Extension string `json:"extension"`
	Files     int64  `json:"files"`
	FileCounts
}

// TotalMetrics 表示本次扫描的项目级总计信息。
// 在 FileCounts 基础上额外增加 Files 字段，
// 用于表达“本次扫描统计到了多少个有效源码文件”。
type TotalMetrics struct {
	Files int64 `json:"files"`
	FileCounts
}

// ScanResult 是一次扫描的完整输出模型。
// 包含后缀级汇总和全局总计，按总行数降序排列。
type ScanResult struct {
	ScannedPath string             `json:"scanned_path"`
	Extensions  []ExtensionMetrics `json:"extensions"`
	Total       TotalMetrics       `json:"total"`
}
