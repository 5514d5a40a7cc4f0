// File game/board.go
package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// 棋盘是 7 行的六角"砖墙"布局:偶数行 6 格,奇数行 7 格,从上(黑方底线)
// 到下(白方底线)按行优先编号,共 45 格,恰好放得进一个 uint64 位板。
// 相邻两行共 13 格,所以线性下标有闭式公式,见 cellIndex。
const (
	NRows  = 7
	NCells = 45
)

var (
	RowStart [NRows]int // 每行首格的线性下标
	RowLen   [NRows]int // 每行格数:偶数行 6,奇数行 7
)

// 行名从上到下是 g..a,列号从 1 开始,所以左上角是 g1,右下角是 a6。
var rowLetters = [NRows]byte{'g', 'f', 'e', 'd', 'c', 'b', 'a'}

// 获胜线/底线掩码。白方走到最上一行获胜,黑方走到最下一行获胜。
var (
	WhiteWinMask Bitboard
	BlackWinMask Bitboard
)

// init 在程序启动时把所有静态表一次性算好。顺序有讲究:行表先于邻居表。
// 这里的表全是确定性的,随机的 Zobrist 表走 sync.Once 懒加载。
func init() {
	initBoardTables()
	initNeighbourTables()
	initClassTables()
}

func initBoardTables() {
	s := 0
	for i := 0; i < NRows; i++ {
		if i%2 == 0 {
			RowLen[i] = 6
		} else {
			RowLen[i] = 7
		}
		RowStart[i] = s
		s += RowLen[i]
	}
	if s != NCells {
		// 保险:行配置一旦改动,所有闭式下标全部失效
		panic("game: row layout does not sum to NCells")
	}

	for j := 0; j < RowLen[0]; j++ {
		WhiteWinMask.Set(cellIndex(0, j))
	}
	for j := 0; j < RowLen[NRows-1]; j++ {
		BlackWinMask.Set(cellIndex(NRows-1, j))
	}
}

// cellIndex 按闭式公式折算线性下标,不做越界检查。
// 偶数行:13*i/2 + j;奇数行:6 + 13*(i-1)/2 + j。
func cellIndex(i, j int) int {
	if i%2 == 0 {
		return 13*i/2 + j
	}
	return 6 + 13*(i-1)/2 + j
}

// CoordsToIndex 校验 (i, j) 后返回线性下标。
func CoordsToIndex(i, j int) (int, error) {
	if i < 0 || i >= NRows {
		return 0, errors.Errorf("row %d out of range [0, %d)", i, NRows)
	}
	if j < 0 || j >= RowLen[i] {
		return 0, errors.Errorf("column %d out of range [0, %d) on row %d", j, RowLen[i], i)
	}
	return cellIndex(i, j), nil
}

// IndexToCoords 是 cellIndex 的逆:先按 13 格一组定位行对,
// 余数超过偶数行宽度就落进下面的奇数行。
func IndexToCoords(index int) (int, int, error) {
	if index < 0 || index >= NCells {
		return 0, 0, errors.Errorf("cell index %d out of range [0, %d)", index, NCells)
	}
	i := 2 * (index / 13)
	j := index % 13
	if j > 5 {
		j -= 6
		i++
	}
	return i, j, nil
}

// CellName 返回棋谱格名,比如 0 -> "g1",44 -> "a6"。
func CellName(index int) (string, error) {
	i, j, err := IndexToCoords(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%c%d", rowLetters[i], j+1), nil
}

// ParseCell 解析 "a4" 这样的格名。
func ParseCell(name string) (int, error) {
	if len(name) != 2 {
		return 0, errors.Errorf("cell name %q: want letter+digit", name)
	}
	ch := name[0]
	if ch < 'a' || ch > 'g' {
		return 0, errors.Errorf("cell name %q: row letter must be a..g", name)
	}
	i := int('g' - ch)
	d := name[1]
	if d < '1' || d > '9' {
		return 0, errors.Errorf("cell name %q: column must be a digit", name)
	}
	j := int(d - '1')
	index, err := CoordsToIndex(i, j)
	if err != nil {
		return 0, errors.Wrapf(err, "cell name %q", name)
	}
	return index, nil
}

// IsWhiteHome 判断下标是否在白方底线(最下一行)。
func IsWhiteHome(index int) bool {
	return index >= RowStart[NRows-1]
}

// IsBlackHome 判断下标是否在黑方底线(最上一行)。
func IsBlackHome(index int) bool {
	return index < RowStart[0]+RowLen[0]
}
