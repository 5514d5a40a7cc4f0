// internal/codegen/emit.go
// 把 internal/game 算出的各张表渲染成源码片段。生成器命令先把片段
// 写进内存缓冲,校验通过后整体落盘,所以这里的写入不逐条检查错误。
package codegen

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"pijersi_go/internal/game"
)

// Lang 目标方言。表默认渲染成本仓库用的 Go;也可以渲染成和上游
// 引擎同构的 Rust,方便和既有常量逐行 diff。
type Lang int

const (
	LangGo Lang = iota
	LangRust
)

// ParseLang 解析 -lang 标志。
func ParseLang(s string) (Lang, error) {
	switch s {
	case "go":
		return LangGo, nil
	case "rust":
		return LangRust, nil
	}
	return LangGo, errors.Errorf("unknown lang %q (want go or rust)", s)
}

// Header 写文件头。Go 片段带上标准的生成标记和包名。
func Header(w io.Writer, lang Lang, tool, pkg string) {
	if lang == LangGo {
		fmt.Fprintf(w, "// Code generated by %s. DO NOT EDIT.\n\npackage %s\n\n", tool, pkg)
		return
	}
	fmt.Fprintf(w, "// Generated by %s. Do not edit.\n\n", tool)
}

// BitboardTable 渲染一张 [45]Bitboard 表,十进制一行一项。
func BitboardTable(w io.Writer, lang Lang, name string, table *[game.NCells]game.Bitboard) {
	if lang == LangGo {
		fmt.Fprintf(w, "var %s = [%d]Bitboard{\n", name, game.NCells)
		for _, b := range table {
			fmt.Fprintf(w, "\t%d,\n", uint64(b))
		}
		fmt.Fprintf(w, "}\n")
		return
	}
	fmt.Fprintf(w, "pub const %s: [Bitboard; %d] = [\n", name, game.NCells)
	for _, b := range table {
		fmt.Fprintf(w, "    Bitboard(%d),\n", uint64(b))
	}
	fmt.Fprintf(w, "];\n")
}

// IndexLists 渲染两步表的下标形式,每格一行。
func IndexLists(w io.Writer, lang Lang, name string, lists *[game.NCells][]int) {
	if lang == LangGo {
		fmt.Fprintf(w, "var %s = [%d][]int{\n", name, game.NCells)
		for _, list := range lists {
			fmt.Fprintf(w, "\t{")
			writeInts(w, list)
			fmt.Fprintf(w, "},\n")
		}
		fmt.Fprintf(w, "}\n")
		return
	}
	fmt.Fprintf(w, "pub const %s: [&[usize]; %d] = [\n", name, game.NCells)
	for _, list := range lists {
		fmt.Fprintf(w, "    &[")
		writeInts(w, list)
		fmt.Fprintf(w, "],\n")
	}
	fmt.Fprintf(w, "];\n")
}

func writeInts(w io.Writer, list []int) {
	for k, v := range list {
		if k > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "%d", v)
	}
}

// ClassTable 渲染 256 项等价类表,命中的字节行尾注明棋子标记。
func ClassTable(w io.Writer, lang Lang, name string, p game.Packing) {
	table := p.ClassTable()
	labels := make(map[uint8]string, game.NClasses)
	for _, d := range game.ClassDescriptors() {
		labels[d.Byte(p)] = d.String()
	}
	if lang == LangGo {
		fmt.Fprintf(w, "var %s = [256]uint8{\n", name)
		for b := 0; b < 256; b++ {
			if label, ok := labels[uint8(b)]; ok {
				fmt.Fprintf(w, "\t%d, // 0x%02x %s\n", table[b], b, label)
			} else {
				fmt.Fprintf(w, "\t%d,\n", table[b])
			}
		}
		fmt.Fprintf(w, "}\n")
		return
	}
	fmt.Fprintf(w, "pub const %s: [usize; 256] = [\n", name)
	for b := 0; b < 256; b++ {
		fmt.Fprintf(w, "    %d", table[b])
		if b != 255 {
			fmt.Fprintf(w, ",\n")
		} else {
			fmt.Fprintf(w, "\n")
		}
	}
	fmt.Fprintf(w, "];\n")
}

// HashTable 渲染 Zobrist 键表和行棋方翻转键,十六进制逐行。
func HashTable(w io.Writer, lang Lang, tableName, sideName string, z *game.ZobristTable) {
	if lang == LangGo {
		fmt.Fprintf(w, "var %s = [%d]uint64{\n", tableName, game.ZobristEntries)
		for _, key := range z.Keys {
			fmt.Fprintf(w, "\t0x%016X,\n", key)
		}
		fmt.Fprintf(w, "}\n\n")
		fmt.Fprintf(w, "const %s uint64 = 0x%016X\n", sideName, z.Side)
		return
	}
	fmt.Fprintf(w, "pub const %s: [usize; %d] = [\n", tableName, game.ZobristEntries)
	for _, key := range z.Keys {
		fmt.Fprintf(w, "    0x%016X,\n", key)
	}
	fmt.Fprintf(w, "];\n\n")
	fmt.Fprintf(w, "pub const %s: usize = 0x%016X;\n", sideName, z.Side)
}

// MagicTables 渲染跳子查表:阻挡掩码一张,乘数和 64 槽表一格一组。
// 没被命中的槽位就是全 1 哨兵,照原样落盘。
func MagicTables(w io.Writer, lang Lang, maskName, magicName string, ms *game.MagicSet) {
	BitboardTable(w, lang, maskName, &ms.Masks)
	fmt.Fprintf(w, "\n")
	if lang == LangGo {
		fmt.Fprintf(w, "var %s = [%d]MagicEntry{\n", magicName, game.NCells)
		for i := range ms.Entries {
			e := &ms.Entries[i]
			fmt.Fprintf(w, "\t{Magic: 0x%016X, Table: [64]Bitboard{\n", e.Magic)
			writeMagicSlots(w, lang, e)
			fmt.Fprintf(w, "\t}},\n")
		}
		fmt.Fprintf(w, "}\n")
		return
	}
	fmt.Fprintf(w, "pub const %s: [(u64, [u64; 64]); %d] = [\n", magicName, game.NCells)
	for i := range ms.Entries {
		e := &ms.Entries[i]
		fmt.Fprintf(w, "    (0x%016X, [\n", e.Magic)
		writeMagicSlots(w, lang, e)
		fmt.Fprintf(w, "    ]),\n")
	}
	fmt.Fprintf(w, "];\n")
}

// writeMagicSlots 每行 8 个槽位,Go 用制表符缩进,Rust 用空格。
func writeMagicSlots(w io.Writer, lang Lang, e *game.MagicEntry) {
	indent := "\t\t"
	if lang == LangRust {
		indent = "        "
	}
	for row := 0; row < 8; row++ {
		fmt.Fprintf(w, "%s", indent)
		for col := 0; col < 8; col++ {
			fmt.Fprintf(w, "0x%016X,", uint64(e.Table[row*8+col]))
			if col != 7 {
				fmt.Fprintf(w, " ")
			}
		}
		fmt.Fprintf(w, "\n")
	}
}
