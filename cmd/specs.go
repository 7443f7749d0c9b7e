package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"linecount/internal/classifier"

	"github.com/spf13/cobra"
)

// newSpecsCmd 创建 specs 子命令。
// 命令用于展示内置的注释规则表：按文件名注册的条目在前，
// 按后缀注册的条目在后。
func newSpecsCmd(registry *classifier.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "specs",
		Short: "展示内置注释规则表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "FILENAME\tLINE PREFIXES\tBLOCK PAIRS"); err != nil {
				return err
			}
			if err := writeSpecRows(writer, registry.NameSpecs()); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(writer, "\nEXTENSION\tLINE PREFIXES\tBLOCK PAIRS"); err != nil {
				return err
			}
			if err := writeSpecRows(writer, registry.ExtensionSpecs()); err != nil {
				return err
			}

			return writer.Flush()
		},
	}
}

// writeSpecRows 输出一组规则行，空集合用 "-" 占位。
func writeSpecRows(writer *tabwriter.Writer, descriptors []classifier.SpecDescriptor) error {
	for _, item := range descriptors {
		prefixes := strings.Join(item.Spec.LinePrefixes, ", ")
		if prefixes == "" {
			prefixes = "-"
		}

		pairs := make([]string, 0, len(item.Spec.BlockPairs))
		for _, pair := range item.Spec.BlockPairs {
			pairs = append(pairs, pair.Start+" "+pair.End)
		}
		blocks := strings.Join(pairs, ", ")
		if blocks == "" {
			blocks = "-"
		}

		if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", item.Key, prefixes, blocks); err != nil {
			return err
		}
	}
	return nil
}
