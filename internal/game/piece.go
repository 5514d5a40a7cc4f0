// File game/piece.go
package game

// 一个格子用一个字节描述:低半字节是顶层棋子,高半字节是底层棋子,
// 单子的高半字节为 0,空格整字节为 0。半字节内部的布局有两套,
// 见 Packing。

// Colour 棋子颜色。白方先行,开局在下方两行。
type Colour uint8

const (
	White Colour = 0
	Black Colour = 1
)

// PieceType 四种棋子:剪刀、布、石头、智者。
// 前三种互相克制,智者不参与吃子也不能上底线获胜。
type PieceType uint8

const (
	Scissors PieceType = 0
	Paper    PieceType = 1
	Rock     PieceType = 2
	Wise     PieceType = 3
)

// Packing 选择半字节的内部布局。两套布局服务于两种棋盘表示,
// 同一套棋子在两套布局下字节不同,但等价类编号一致,见 classes.go。
type Packing uint8

const (
	// PackFlagLow:bit0 存在位,bit1 颜色,bit2-3 类型。
	// 数组棋盘(Cells)和棋谱字符映射用这一套。
	PackFlagLow Packing = iota
	// PackFlagHigh:bit0-2 是 颜色*4+类型 的序数,bit3 存在位。
	// 位板引擎按棋子种类分别存位板,重建字节时用这一套。
	PackFlagHigh
)

// Nibble 返回单个棋子在该布局下的半字节编码,永不为 0。
func (p Packing) Nibble(c Colour, t PieceType) uint8 {
	switch p {
	case PackFlagLow:
		return 0b0001 | uint8(c)<<1 | uint8(t)<<2
	case PackFlagHigh:
		return uint8(c)*4 + uint8(t) + 8
	}
	panic("game: unknown packing")
}

// Single 组合一个单子的格子字节。
func (p Packing) Single(c Colour, t PieceType) uint8 {
	return p.Nibble(c, t)
}

// Stack 组合一个同色叠子的格子字节,top 在低半字节。
func (p Packing) Stack(c Colour, top, bottom PieceType) uint8 {
	return p.Nibble(c, top) | p.Nibble(c, bottom)<<4
}

const (
	// CellEmpty 空格字节。
	CellEmpty uint8 = 0
	// 两套布局下单子字节都不超过 15,叠子的底层半字节都非零,
	// 所以"是不是叠子"的判断与布局无关。
	stackThreshold uint8 = 16
)

func IsStack(piece uint8) bool {
	return piece >= stackThreshold
}

func TopNibble(piece uint8) uint8 {
	return piece & 0x0F
}

func BottomNibble(piece uint8) uint8 {
	return piece >> 4
}

// StackBytes 把两个单子字节叠成一个格子字节,第一个参数在底。
func StackBytes(bottom, top uint8) uint8 {
	return top&0x0F | bottom<<4
}

// 低位布局的八个单子字节,也是棋谱字符映射的锚点。
const (
	WhiteScissors uint8 = 0b0001
	WhitePaper    uint8 = 0b0101
	WhiteRock     uint8 = 0b1001
	WhiteWise     uint8 = 0b1101
	BlackScissors uint8 = 0b0011
	BlackPaper    uint8 = 0b0111
	BlackRock     uint8 = 0b1011
	BlackWise     uint8 = 0b1111
)

// PieceToChar 把低位布局的单层半字节转成棋谱字符,白大写黑小写,
// 空层是 '-'。
func PieceToChar(piece uint8) (byte, bool) {
	switch piece {
	case CellEmpty:
		return '-', true
	case WhiteScissors:
		return 'S', true
	case WhitePaper:
		return 'P', true
	case WhiteRock:
		return 'R', true
	case WhiteWise:
		return 'W', true
	case BlackScissors:
		return 's', true
	case BlackPaper:
		return 'p', true
	case BlackRock:
		return 'r', true
	case BlackWise:
		return 'w', true
	}
	return 0, false
}

// CharToPiece 是 PieceToChar 的逆。
func CharToPiece(ch byte) (uint8, bool) {
	switch ch {
	case '-':
		return CellEmpty, true
	case 'S':
		return WhiteScissors, true
	case 'P':
		return WhitePaper, true
	case 'R':
		return WhiteRock, true
	case 'W':
		return WhiteWise, true
	case 's':
		return BlackScissors, true
	case 'p':
		return BlackPaper, true
	case 'r':
		return BlackRock, true
	case 'w':
		return BlackWise, true
	}
	return 0, false
}
