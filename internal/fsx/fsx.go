package fsx

import "os"

// 通过可替换的函数指针，让测试能稳定模拟权限不足等删除错误。
var removeFunc = os.Remove

// Remove 删除 path 指向的单个文件（相对进程当前工作目录）。
// 错误按 os 原样返回：不重试、不包装、不做本地恢复，分类（not-found、
// 权限、其余 I/O 失败）保留给调用方通过 errors.Is 判断。
func Remove(path string) error {
	return removeFunc(path)
}
