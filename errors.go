package photofile

import (
	"errors"
	"fmt"
	"io/fs"
)

// NotTrackedError 表示请求删除的文件类型在记录中被标记为不存在。
// 它产生于任何文件系统访问之前，是记录层面的守卫，与磁盘层的 not-found
// 可按类型区分；只关心"找不到"这一类的调用方用 errors.Is(err, fs.ErrNotExist)
// 即可同时覆盖两者。
type NotTrackedError struct {
	Name    string
	Variant Variant
}

func (e *NotTrackedError) Error() string {
	return fmt.Sprintf("记录未标记 %s 文件存在：%q", e.Variant, e.Name)
}

func (e *NotTrackedError) Is(target error) bool { return target == fs.ErrNotExist }

// IsNotTracked 判断 err 是否为删除前的记录层守卫错误（未访问文件系统）。
func IsNotTracked(err error) bool {
	var e *NotTrackedError
	return errors.As(err, &e)
}
