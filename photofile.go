// Package photofile 维护一张逻辑照片与其关联文件（raw/已冲洗/其他）的对应关系。
//
// 一个照片目录里，同一基础文件名（不含扩展名）可能对应三类文件：
// - raw 文件：相机厂商格式（默认富士 RAF）
// - 已冲洗文件：导出的成品（默认 JPG）
// - 其他文件：第三方软件（如 Darktable）产生的 sidecar 描述文件（默认 xmp）
//
// 本包只做登记与删除：存在标志由调用方自行扫描后断言，本包不做目录发现、
// 不做内容哈希、不做并发保护。每个 PhotoFile 由其调用方独占持有。
package photofile

import (
	"fmt"

	"github.com/John-Robertt/photofile/internal/fsx"
)

// Variant 表示一张逻辑照片可能关联的三类文件之一。
type Variant int

const (
	Raw Variant = iota
	Developed
	Other
)

func (v Variant) String() string {
	switch v {
	case Raw:
		return "raw"
	case Developed:
		return "developed"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// 默认扩展名（富士相机约定）。注意不含分隔点：拼接路径时按原样追加在
// 基础文件名之后，其他厂商需要点号时由调用方写进扩展名本身（如 ".dng"）。
const (
	DefaultRawExt       = "RAF"
	DefaultDevelopedExt = "JPG"
	DefaultOtherExt     = "xmp"
)

// Options 是构造时的扩展名覆盖项；留空的字段取默认值。零值可直接使用。
type Options struct {
	RawExt       string
	DevelopedExt string
	OtherExt     string
}

// PhotoFile 描述一张逻辑照片及其三类关联文件的存在状态。
//
// 不变量（实现必须遵守）：
// - 基础文件名与三个扩展名在构造后不可变
// - 存在标志是调用方断言的事实，本类型从不主动核对磁盘
// - 同一目录内基础文件名的唯一性由调用方保证，本包不做索引与去重
type PhotoFile struct {
	name string

	rawExt       string
	developedExt string
	otherExt     string

	hasRaw       bool
	hasDeveloped bool
	hasOther     bool
}

// New 以基础文件名（不含扩展名）创建记录，三个存在标志初始为 false。
// 例如对图片 DSCF10992.RAF，传入的 name 应为 DSCF10992。
// name 不做校验（空串也接受），构造过程不访问文件系统。
func New(name string, opts Options) *PhotoFile {
	p := &PhotoFile{
		name:         name,
		rawExt:       opts.RawExt,
		developedExt: opts.DevelopedExt,
		otherExt:     opts.OtherExt,
	}
	if p.rawExt == "" {
		p.rawExt = DefaultRawExt
	}
	if p.developedExt == "" {
		p.developedExt = DefaultDevelopedExt
	}
	if p.otherExt == "" {
		p.otherExt = DefaultOtherExt
	}
	return p
}

// Name 返回基础文件名（不含扩展名）。
func (p *PhotoFile) Name() string { return p.name }

// Extension 返回 v 对应的生效扩展名；未知 Variant 返回空串。
func (p *PhotoFile) Extension(v Variant) string {
	switch v {
	case Raw:
		return p.rawExt
	case Developed:
		return p.developedExt
	case Other:
		return p.otherExt
	default:
		return ""
	}
}

// Path 返回 v 对应文件的路径：基础文件名直接拼接扩展名，不插入分隔符。
// 路径相对进程当前工作目录解释，进入正确目录是调用方的责任。
func (p *PhotoFile) Path(v Variant) string {
	return p.name + p.Extension(v)
}

// Raw 返回 raw 文件的存在标志。
func (p *PhotoFile) Raw() bool { return p.hasRaw }

// SetRaw 断言 raw 文件是否存在。
func (p *PhotoFile) SetRaw(exists bool) { p.hasRaw = exists }

// Developed 返回已冲洗文件的存在标志。
func (p *PhotoFile) Developed() bool { return p.hasDeveloped }

// SetDeveloped 断言已冲洗文件是否存在。
func (p *PhotoFile) SetDeveloped(exists bool) { p.hasDeveloped = exists }

// Other 返回其他关联文件的存在标志。
func (p *PhotoFile) Other() bool { return p.hasOther }

// SetOther 断言其他关联文件是否存在。
func (p *PhotoFile) SetOther(exists bool) { p.hasOther = exists }

// IsDeveloped 当且仅当 raw 与已冲洗两个标志同时为 true 时返回 true。
// 只看两者是否都在，不比较时间戳或内容对应关系。
func (p *PhotoFile) IsDeveloped() bool {
	return p.hasRaw && p.hasDeveloped
}

// Clear 从磁盘删除 v 对应的文件。
//
// 若记录中 v 的存在标志为 false，直接返回 *NotTrackedError，不访问文件系统；
// 该错误对 errors.Is(err, fs.ErrNotExist) 同样成立。标志为 true 时执行删除，
// 文件系统错误（磁盘上不存在、权限不足等）按原样返回。
//
// 删除成功后不会重置对应标志：记录相对磁盘变为陈旧状态，由调用方自行
// 重新断言。再次 Clear 同一类型会照常尝试删除，并得到磁盘层的 not-found。
func (p *PhotoFile) Clear(v Variant) error {
	var exists bool
	switch v {
	case Raw:
		exists = p.hasRaw
	case Developed:
		exists = p.hasDeveloped
	case Other:
		exists = p.hasOther
	default:
		return fmt.Errorf("非法 variant：%d", int(v))
	}

	if !exists {
		return &NotTrackedError{Name: p.name, Variant: v}
	}
	return fsx.Remove(p.Path(v))
}
