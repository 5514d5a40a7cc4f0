// File game/bitboard.go
package game

import "math/bits"

// Bitboard 用一个 uint64 的低 45 位表示格子集合,第 i 位对应下标 i。
type Bitboard uint64

const (
	// BoardMask 全盘 45 位全 1。
	BoardMask Bitboard = (1 << NCells) - 1
	// NullBitboard 全 1 哨兵。合法的格子集合不会超出低 45 位,
	// 所以它可以安全地标记 magic 表里没被任何子集命中的槽位。
	NullBitboard Bitboard = ^Bitboard(0)
)

func (b Bitboard) Get(index int) bool {
	return b&(1<<uint(index)) != 0
}

func (b *Bitboard) Set(index int) {
	*b |= 1 << uint(index)
}

func (b *Bitboard) Clear(index int) {
	*b &^= 1 << uint(index)
}

// Flip 翻转单个位。挪子 = 起点终点各翻一次。
func (b *Bitboard) Flip(index int) {
	*b ^= 1 << uint(index)
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Indices 按升序展开集合里的下标。逐位取最低位再抹掉,不走 45 次循环。
func (b Bitboard) Indices() []int {
	out := make([]int, 0, b.Count())
	for f := uint64(b); f != 0; f &= f - 1 {
		out = append(out, bits.TrailingZeros64(f))
	}
	return out
}
