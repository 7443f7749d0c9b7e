package scanner

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// binaryProbeSize 是二进制探测读取的最大前缀长度。
const binaryProbeSize = 2048

// isBinaryFile 读取文件前 2048 字节并检查是否包含 NUL 字节。
// 这是启发式判断，不追求精确；探测过程中的任何 I/O 失败
// 都按“二进制”处理，宁可跳过也不让整次扫描崩溃。
func isBinaryFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return true
	}
	defer file.Close()

	buffer := make([]byte, binaryProbeSize)
	n, readErr := io.ReadFull(file, buffer)
	if readErr != nil && !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF) {
		return true
	}

	return bytes.IndexByte(buffer[:n], 0x00) >= 0
}
