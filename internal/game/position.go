// File game/position.go
package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Cells 数组棋盘:每格一个低位布局的棋子字节,0 为空。
// 这是生成出的各张表最直接的消费方,也充当测试里的基准表示。
type Cells [NCells]uint8

// StartCells 摆出开局:黑方占上两行,白方占下两行,每方 12 个单子
// 加一个双智者叠。前排中央 f4/b4 是智者叠,两翼按 布-石-剪 对称展开。
func StartCells() Cells {
	var c Cells
	single := func(index int, colour Colour, t PieceType) {
		c[index] = PackFlagLow.Single(colour, t)
	}
	// 后排(g 行和 a 行):剪 布 石 剪 布 石,两方互为镜像
	for j, t := range []PieceType{Scissors, Paper, Rock, Scissors, Paper, Rock} {
		single(cellIndex(0, j), Black, t)
		single(cellIndex(6, 5-j), White, t)
	}
	// 前排(f 行和 b 行):布 石 剪 智叠 石 剪 布
	for j, t := range []PieceType{Paper, Rock, Scissors, Wise, Rock, Scissors, Paper} {
		if t == Wise {
			c[cellIndex(1, j)] = PackFlagLow.Stack(Black, Wise, Wise)
			c[cellIndex(5, 6-j)] = PackFlagLow.Stack(White, Wise, Wise)
			continue
		}
		single(cellIndex(1, j), Black, t)
		single(cellIndex(5, 6-j), White, t)
	}
	return c
}

// CellsToString 把局面编码成棋谱串:行从 g 到 a 用 '/' 分隔,
// 单子是 字母+'-',叠子是 底字母+顶字母,连续空格压成计数。
func CellsToString(c *Cells) string {
	var sb strings.Builder
	for i := 0; i < NRows; i++ {
		if i > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for j := 0; j < RowLen[i]; j++ {
			piece := c[cellIndex(i, j)]
			if piece == CellEmpty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if IsStack(piece) {
				bottom, _ := PieceToChar(BottomNibble(piece))
				top, _ := PieceToChar(TopNibble(piece))
				sb.WriteByte(bottom)
				sb.WriteByte(top)
			} else {
				ch, _ := PieceToChar(TopNibble(piece))
				sb.WriteByte(ch)
				sb.WriteByte('-')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// StringToCells 解析棋谱串。每个棋子占两个字符(单子第二个字符是
// '-'),空格计数占一个字符,行数和每行覆盖的格数都要对得上。
func StringToCells(s string) (Cells, error) {
	var c Cells
	rows := strings.Split(s, "/")
	if len(rows) != NRows {
		return c, errors.Errorf("cells string %q: want %d rows, got %d", s, NRows, len(rows))
	}
	for i, row := range rows {
		j := 0
		for pos := 0; pos < len(row); {
			ch := row[pos]
			if ch >= '1' && ch <= '9' {
				j += int(ch - '0')
				pos++
				continue
			}
			if j >= RowLen[i] {
				return c, errors.Errorf("row %d %q: more pieces than cells", i, row)
			}
			if pos+1 >= len(row) {
				return c, errors.Errorf("row %d %q: dangling piece letter %q", i, row, ch)
			}
			bottom, ok := CharToPiece(ch)
			if !ok {
				return c, errors.Errorf("row %d %q: bad piece letter %q", i, row, ch)
			}
			next := row[pos+1]
			if next == '-' {
				c[cellIndex(i, j)] = bottom
			} else {
				top, ok := CharToPiece(next)
				if !ok {
					return c, errors.Errorf("row %d %q: bad stack letter %q", i, row, next)
				}
				c[cellIndex(i, j)] = StackBytes(bottom, top)
			}
			pos += 2
			j++
		}
		if j != RowLen[i] {
			return c, errors.Errorf("row %d %q: covers %d of %d cells", i, row, j, RowLen[i])
		}
	}
	return c, nil
}

// PrettyString 画一个人读的盘面:每格两个字符(顶层在前,单子第二
// 位是 '-'),偶数行缩进半格对齐砖墙。
func PrettyString(c *Cells) string {
	var sb strings.Builder
	for i := 0; i < NRows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i%2 == 0 {
			sb.WriteByte(' ')
		}
		for j := 0; j < RowLen[i]; j++ {
			piece := c[cellIndex(i, j)]
			var c1, c2 byte = '.', ' '
			if piece != CellEmpty {
				c1, _ = PieceToChar(TopNibble(piece))
				c2 = '-'
				if IsStack(piece) {
					c2, _ = PieceToChar(BottomNibble(piece))
				}
			}
			sb.WriteByte(c1)
			sb.WriteByte(c2)
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// HashCells 用本表把局面折叠成 64 位键:每个非空格按(等价类, 格子)
// 异或一个键,轮到黑方再异或翻转键。
func (z *ZobristTable) HashCells(c *Cells, player Colour) uint64 {
	var h uint64
	if player == Black {
		h = z.Side
	}
	for index, piece := range c {
		if piece == CellEmpty {
			continue
		}
		h ^= z.Key(int(PieceToClassLow[piece]), index)
	}
	return h
}

// PositionHash 用进程内共享的 Zobrist 表折叠局面。
// 两套布局共享等价类编号,所以位板引擎按高位布局折出的键和
// 这里按低位布局折出的键一致。
func PositionHash(c *Cells, player Colour) uint64 {
	return zobristShared().HashCells(c, player)
}
