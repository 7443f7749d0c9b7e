package classifier

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"linecount/internal/model"
)

// Classify 对输入流做逐行分类统计。
// 每行被判定为 Code/Comment/Blank 三者之一，
// 跨行块注释通过“待匹配结束符”状态在行之间传播。
// 状态在每个文件开始时重置，不会泄漏到下一个文件。
func Classify(reader io.Reader, spec CommentSpec) (model.FileCounts, error) {
	var counts model.FileCounts

	// pendingClose 对应当前未闭合块注释的结束符；
	// 空串表示不在块注释中。
	pendingClose := ""

	// 这里使用 ReadString('\n') 做“按行流式”读取：
	// 1) 不会把整个文件一次性载入内存；
	// 2) 便于和行级统计模型（code/comment/blank）天然对齐。
	bufferedReader := bufio.NewReader(reader)
	for {
		line, err := bufferedReader.ReadString('\n')
		// EOF 且没有任何剩余字符时，说明已经没有可处理行，直接退出。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		// 非 EOF 错误需要立即返回，避免输出不完整统计结果。
		if err != nil && !errors.Is(err, io.EOF) {
			return counts, err
		}

		pendingClose = classifyLine(&counts, strings.TrimSpace(line), spec, pendingClose)

		// EOF 但 line 非空代表“最后一行没有换行符”，这行已经处理完，随后退出。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return counts, nil
}

// classifyLine 判定一条已去除首尾空白的行并更新统计值，
// 返回下一行应继承的待匹配块注释结束符。
//
// 两个刻意保留的历史行为（改掉会影响既有统计口径）：
//   - 空行永远计 Blank，即使当前处于未闭合块注释中；
//     空行判定先于块注释状态检查执行。
//   - 某行在块注释起始符之前存在代码时，整行计 Code 且不进入
//     跨行注释状态；起始符之后即使没有结束符也不再追踪。
func classifyLine(counts *model.FileCounts, trimmed string, spec CommentSpec, pendingClose string) string {
	if trimmed == "" {
		counts.Blank++
		return pendingClose
	}

	if pendingClose != "" {
		idx := strings.Index(trimmed, pendingClose)
		if idx < 0 {
			counts.Comment++
			return pendingClose
		}
		// 块注释在本行闭合：结束符之后还有内容则整行计 Code。
		if strings.TrimSpace(trimmed[idx+len(pendingClose):]) != "" {
			counts.Code++
		} else {
			counts.Comment++
		}
		return ""
	}

	for _, prefix := range spec.LinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			counts.Comment++
			return ""
		}
	}

	// 按声明顺序只评估第一个命中的块注释对。
	for _, pair := range spec.BlockPairs {
		idx := strings.Index(trimmed, pair.Start)
		if idx < 0 {
			continue
		}

		if strings.TrimSpace(trimmed[:idx]) != "" {
			counts.Code++
			return ""
		}

		after := trimmed[idx+len(pair.Start):]
		endIdx := strings.Index(after, pair.End)
		if endIdx < 0 {
			counts.Comment++
			return pair.End
		}
		if strings.TrimSpace(after[endIdx+len(pair.End):]) != "" {
			counts.Code++
		} else {
			counts.Comment++
		}
		return ""
	}

	counts.Code++
	return ""
}
