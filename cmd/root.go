// Package cmd 提供 linecount 的命令行入口与子命令编排。
package cmd

import (
	"errors"
	"strings"

	"linecount/internal/classifier"
	"linecount/internal/report"
	"linecount/internal/scanner"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := classifier.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// rootOptions 存放根命令的可配置参数。
type rootOptions struct {
	includeDirs []string
	excludeDirs []string
	format      string
}

// newRootCmd 创建根命令并注册全部子命令。
// 扫描行为直接挂在根命令上，根目录作为可选位置参数：
//
//	linecount
//	linecount ./project --exclude-dir fixtures
//	linecount ./project --include-dir data --format json
func newRootCmd(version string, registry *classifier.Registry) *cobra.Command {
	options := rootOptions{
		format: "table",
	}

	rootCmd := &cobra.Command{
		Use:   "linecount [root]",
		Short: "按文件后缀统计 code/comment/blank 行数",
		Long: "linecount 递归扫描目录树，基于逐后缀词法规则把每一行归类为\n" +
			"code/comment/blank，并按后缀输出聚合统计。它是启发式度量工具，\n" +
			"不做任何语言的真实语法解析。",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			rootPath := "."
			if len(args) == 1 {
				rootPath = args[0]
			}

			service := scanner.NewService(registry, scanner.Options{
				IncludeDirs: options.includeDirs,
				ExcludeDirs: options.excludeDirs,
			})
			result, err := service.ScanRoot(rootPath)
			if err != nil {
				return err
			}

			if format == "json" {
				return report.PrintJSON(cmd.OutOrStdout(), result)
			}
			return report.PrintText(cmd.OutOrStdout(), result)
		},
	}

	rootCmd.Flags().StringArrayVar(&options.includeDirs, "include-dir", nil, "从默认跳过集合中移除的目录名（可重复）")
	rootCmd.Flags().StringArrayVar(&options.excludeDirs, "exclude-dir", nil, "追加到跳过集合的目录名（可重复）")
	rootCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newSpecsCmd(registry))

	return rootCmd
}
