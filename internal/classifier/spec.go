// Package classifier 提供注释规则注册中心与行级分类引擎。
// 规则表是纯数据（行注释前缀 + 块注释起止对），
// 所有文件类型共享同一个分类算法，不存在按类型派生的行为。
package classifier

import (
	"path/filepath"
	"sort"
	"strings"
)

// BlockPair 表示一对块注释起止定界符。
type BlockPair struct {
	Start string
	End   string
}

// CommentSpec 描述某类文件的注释词法规则。
// 查找成功后保持只读；BlockPairs 按声明顺序参与匹配，
// 同一行出现多个候选起始符时，声明靠前的对优先。
type CommentSpec struct {
	LinePrefixes []string
	BlockPairs   []BlockPair
}

// Registry 管理“文件名/后缀 -> 注释规则”的映射。
// 表在启动时构建一次，之后只读，不存在进程级可变单例。
type Registry struct {
	specByName map[string]CommentSpec
	specByExt  map[string]CommentSpec
}

// NewRegistry 创建并注册全部内置注释规则。
func NewRegistry() *Registry {
	return &Registry{
		specByName: map[string]CommentSpec{
			"dockerfile":    {LinePrefixes: []string{"#"}},
			"makefile":      {LinePrefixes: []string{"#"}},
			".gitignore":    {LinePrefixes: []string{"#"}},
			".dockerignore": {LinePrefixes: []string{"#"}},
			".env":          {LinePrefixes: []string{"#"}},
			".env.example":  {LinePrefixes: []string{"#"}},
		},
		specByExt: map[string]CommentSpec{
			".py": {
				LinePrefixes: []string{"#"},
				BlockPairs: []BlockPair{
					{Start: "'''", End: "'''"},
					{Start: `"""`, End: `"""`},
				},
			},

			".js":   {LinePrefixes: []string{"//"}, BlockPairs: []BlockPair{{Start: "/*", End: "*/"}}},
			".jsx":  {LinePrefixes: []string{"//"}, BlockPairs: []BlockPair{{Start: "/*", End: "*/"}}},
			".ts":   {LinePrefixes: []string{"//"}, BlockPairs: []BlockPair{{Start: "/*", End: "*/"}}},
			".tsx":  {LinePrefixes: []string{"//"}, BlockPairs: []BlockPair{{Start: "/*", End: "*/"}}},
			".cjs":  {LinePrefixes: []string{"//"}, BlockPairs: []BlockPair{{Start: "/*", End: "*/"}}},
			".css":  {BlockPairs: []BlockPair{{Start: "/*", End: "*/"}}},
			".html": {BlockPairs: []BlockPair{{Start: "<!--", End: "-->"}}},
			".htm":  {BlockPairs: []BlockPair{{Start: "<!--", End: "-->"}}},
			".md":   {BlockPairs: []BlockPair{{Start: "<!--", End: "-->"}}},

			".yml":     {LinePrefixes: []string{"#"}},
			".yaml":    {LinePrefixes: []string{"#"}},
			".env":     {LinePrefixes: []string{"#"}},
			".example": {LinePrefixes: []string{"#"}},
			".sh":      {LinePrefixes: []string{"#"}},
			".bash":    {LinePrefixes: []string{"#"}},
			".zsh":     {LinePrefixes: []string{"#"}},
			".ps1":     {LinePrefixes: []string{"#"}, BlockPairs: []BlockPair{{Start: "<#", End: "#>"}}},

			".json": {},
			".txt":  {},
		},
	}
}

// FileExt 返回文件名后缀。与 filepath.Ext 的差别在于：
// 仅有前导点的隐藏文件（如 ".py"、".gitignore"）视为无后缀，
// 前导点属于文件名本身，不参与后缀匹配。
func FileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}

// Lookup 根据文件名解析注释规则。
// 解析顺序：完整文件名（忽略大小写）优先于后缀；
// 两张表都未命中时返回空规则，表示所有非空行都按代码统计。
// 未知类型不是错误，静默回退即可。
func (r *Registry) Lookup(filename string) CommentSpec {
	name := strings.ToLower(filepath.Base(filename))
	if spec, ok := r.specByName[name]; ok {
		return spec
	}
	if spec, ok := r.specByExt[FileExt(name)]; ok {
		return spec
	}
	return CommentSpec{}
}

// SpecDescriptor 用于对外展示某条注册规则。
type SpecDescriptor struct {
	Key  string
	Spec CommentSpec
}

// NameSpecs 返回按文件名注册的规则清单，按键名排序。
func (r *Registry) NameSpecs() []SpecDescriptor {
	return sortedDescriptors(r.specByName)
}

// ExtensionSpecs 返回按后缀注册的规则清单，按键名排序。
func (r *Registry) ExtensionSpecs() []SpecDescriptor {
	return sortedDescriptors(r.specByExt)
}

func sortedDescriptors(table map[string]CommentSpec) []SpecDescriptor {
	result := make([]SpecDescriptor, 0, len(table))
	for key, spec := range table {
		result = append(result, SpecDescriptor{Key: key, Spec: spec})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}
