// Package report 提供 linecount 的输出能力。
// 当前实现支持纯文本摘要和 JSON 两种格式，都只写入给定 writer，
// 不落盘、不产生任何文件副作用。
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"linecount/internal/model"
)

// PrintText 输出纯文本摘要。
// 汇总区之后是一个空行、一条表头，然后每个后缀一行。
// 明细行使用原始制表符分隔，字节格式是对外口径的一部分，
// 因此这里不做列对齐。
func PrintText(writer io.Writer, result model.ScanResult) error {
	total := result.Total

	if _, err := fmt.Fprintf(writer, "Total files: %d\n", total.Files); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Total lines: %d\n", total.Total()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Code lines: %d\n", total.Code); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comment lines: %d\n", total.Comment); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Blank lines: %d\n", total.Blank); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(writer, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, "Lines by extension (code/comment/blank/total, files):"); err != nil {
		return err
	}

	for _, item := range result.Extensions {
		if _, err := fmt.Fprintf(
			writer,
			"%s\t%d\t%d\t%d\t%d\tfiles:%d\n",
			item.Extension,
			item.Code,
			item.Comment,
			item.Blank,
			item.Total(),
			item.Files,
		); err != nil {
			return err
		}
	}

	return nil
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
