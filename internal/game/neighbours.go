// File game/neighbours.go
package game

import "sort"

// 相邻表。Neighbours1 是一步的 6 邻居,Neighbours2 是同方向两步可达格
// (跳子走法的目标),Neighbours2List 是同一张表的升序下标形式,
// 给需要逐目标扫描的调用方(比如 magic 表的构建)用。
//
// 砖墙布局下没有统一的方向增量:同一行内是 ±1,斜向增量按行奇偶在
// ±6/±7 之间切换,两步斜向固定是 ±12/±14。这里逐格按 (i, j) 展开
// 全部分支,越界的方向直接跳过。
var (
	Neighbours1     [NCells]Bitboard
	Neighbours2     [NCells]Bitboard
	Neighbours2List [NCells][]int
)

func initNeighbourTables() {
	for i := 0; i < NRows; i++ {
		for j := 0; j < RowLen[i]; j++ {
			index := cellIndex(i, j)
			for _, n := range neighbours1(i, j) {
				Neighbours1[index].Set(n)
			}
			list := neighbours2(i, j)
			Neighbours2List[index] = list
			for _, n := range list {
				Neighbours2[index].Set(n)
			}
		}
	}
}

// neighbours1 枚举 (i, j) 的一步邻居,升序返回。
// 左支负责 -1 以及左斜的 -7/+6,右支负责 +1 以及右斜的 -6/+7。
// 偶数行(6 格)整体嵌在两条 7 格行之间,所以偶数行两侧斜向都存在,
// 奇数行在行首没有左斜、行尾没有右斜。
func neighbours1(i, j int) []int {
	index := cellIndex(i, j)
	var out []int
	if j > 0 || i%2 == 0 {
		if j > 0 {
			out = append(out, index-1)
		}
		if i > 0 {
			out = append(out, index-7)
		}
		if i < 6 {
			out = append(out, index+6)
		}
	}
	if i%2 == 0 || j < 6 {
		if (i%2 == 0 && j < 5) || (i%2 == 1 && j < 6) {
			out = append(out, index+1)
		}
		if i > 0 {
			out = append(out, index-6)
		}
		if i < 6 {
			out = append(out, index+7)
		}
	}
	sort.Ints(out)
	return out
}

// neighbours2 枚举同方向两步可达的格子,升序返回。
// 增量是一步的两倍(±2/±12/±14),行界从 0/6 收紧到 1/5:
// 两步斜向要跨过一对行,不能只剩半步。
func neighbours2(i, j int) []int {
	index := cellIndex(i, j)
	var out []int
	if j > 0 {
		if j > 1 {
			out = append(out, index-2)
		}
		if i > 1 {
			out = append(out, index-14)
		}
		if i < 5 {
			out = append(out, index+12)
		}
	}
	if (i%2 == 0 && j < 5) || (i%2 == 1 && j < 6) {
		if (i%2 == 0 && j < 4) || (i%2 == 1 && j < 5) {
			out = append(out, index+2)
		}
		if i > 1 {
			out = append(out, index-12)
		}
		if i < 5 {
			out = append(out, index+14)
		}
	}
	sort.Ints(out)
	return out
}
