// File game/classes.go
package game

import "github.com/pkg/errors"

// 棋子等价类。合法的格子内容只有 34 种:每色 3×3 同色叠子、
// 4 种压在智者上的叠子、4 种单子。把 256 个可能字节折到
// [0, 35) 的稠密编号后,Zobrist 表和其他按棋子索引的表都只需要
// 35 行而不是 256 行。
const (
	NClasses   = 35
	ClassEmpty = 34 // 空格和所有不合法字节都折到这一类
)

// Descriptor 描述一个等价类的组成。Stacked 为假时 Bottom 无意义。
type Descriptor struct {
	Colour  Colour
	Top     PieceType
	Bottom  PieceType
	Stacked bool
}

// Byte 返回该等价类在指定布局下的字节。
func (d Descriptor) Byte(p Packing) uint8 {
	if d.Stacked {
		return p.Stack(d.Colour, d.Top, d.Bottom)
	}
	return p.Single(d.Colour, d.Top)
}

// String 返回字母标记,顶层在前:压在智者上的白剪刀是 "SW",
// 黑方布单子是 "p"。
func (d Descriptor) String() string {
	letters := [4]byte{'S', 'P', 'R', 'W'}
	lower := byte(0)
	if d.Colour == Black {
		lower = 'a' - 'A'
	}
	if d.Stacked {
		return string([]byte{letters[d.Top] + lower, letters[d.Bottom] + lower})
	}
	return string([]byte{letters[d.Top] + lower})
}

// ClassDescriptors 按固定顺序枚举 34 个真实等价类:每种颜色先是
// 3×3 同色叠子(底层在外层循环),然后 4 种压在智者上的叠子,最后
// 4 种单子。白方占 0..16,黑方占 17..33。这个顺序是对外约定,
// 生成出的等价类表要和依赖它的哈希表配套使用。
func ClassDescriptors() []Descriptor {
	base := []PieceType{Scissors, Paper, Rock}
	all := []PieceType{Scissors, Paper, Rock, Wise}
	out := make([]Descriptor, 0, NClasses-1)
	for _, c := range []Colour{White, Black} {
		for _, bottom := range base {
			for _, top := range base {
				out = append(out, Descriptor{Colour: c, Top: top, Bottom: bottom, Stacked: true})
			}
		}
		for _, top := range all {
			out = append(out, Descriptor{Colour: c, Top: top, Bottom: Wise, Stacked: true})
		}
		for _, t := range all {
			out = append(out, Descriptor{Colour: c, Top: t})
		}
	}
	return out
}

// BuildPieceToClass 构建指定布局的 256 项等价类表。
func BuildPieceToClass(p Packing) ([256]uint8, error) {
	return buildClassTable(func(d Descriptor) uint8 { return d.Byte(p) })
}

// buildClassTable 把 256 个可能字节映射到等价类编号。
// 没被 34 个描述覆盖的字节全部折到 ClassEmpty。两个描述折到同一
// 字节说明布局被破坏,这时表不可用,返回错误。
func buildClassTable(byteOf func(Descriptor) uint8) ([256]uint8, error) {
	var table [256]uint8
	for i := range table {
		table[i] = ClassEmpty
	}
	seen := make(map[uint8]int, NClasses)
	for class, d := range ClassDescriptors() {
		b := byteOf(d)
		if prev, ok := seen[b]; ok {
			return table, errors.Errorf("piece byte 0x%02x maps to both class %d and class %d", b, prev, class)
		}
		seen[b] = class
		table[b] = uint8(class)
	}
	return table, nil
}

// 两套布局各自的等价类表,启动时一次性构建。
var (
	PieceToClassLow  [256]uint8
	PieceToClassHigh [256]uint8
)

// ClassTable 返回该布局的等价类表。
func (p Packing) ClassTable() *[256]uint8 {
	if p == PackFlagHigh {
		return &PieceToClassHigh
	}
	return &PieceToClassLow
}

func initClassTables() {
	low, err := BuildPieceToClass(PackFlagLow)
	if err != nil {
		// 两套布局都是单射,构建失败只可能是枚举本身改坏了
		panic(err)
	}
	high, err := BuildPieceToClass(PackFlagHigh)
	if err != nil {
		panic(err)
	}
	PieceToClassLow = low
	PieceToClassHigh = high
}
