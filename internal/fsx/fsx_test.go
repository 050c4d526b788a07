package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemove_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DSCF0001RAF")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644), "写入测试文件失败")

	require.NoError(t, Remove(path), "不期望错误")

	_, err := os.Stat(path)
	require.True(t, errors.Is(err, fs.ErrNotExist), "文件应已被删除：%v", err)
}

func TestRemove_NotFound(t *testing.T) {
	dir := t.TempDir()

	err := Remove(filepath.Join(dir, "missing"))
	require.Error(t, err, "期望失败，但得到 nil")
	require.True(t, errors.Is(err, fs.ErrNotExist), "期望 not-found，实际：%v", err)
}

func TestRemove_PropagatesInjectedError(t *testing.T) {
	old := removeFunc
	removeFunc = func(string) error { return os.ErrPermission }
	defer func() { removeFunc = old }()

	err := Remove("whatever")
	require.True(t, errors.Is(err, fs.ErrPermission), "底层错误必须原样透传，实际：%v", err)
}

func TestRemove_PassesPathVerbatim(t *testing.T) {
	var got string
	old := removeFunc
	removeFunc = func(p string) error {
		got = p
		return nil
	}
	defer func() { removeFunc = old }()

	require.NoError(t, Remove("DSCF1022JPG"))
	require.Equal(t, "DSCF1022JPG", got, "路径不应被改写")
}
