// File game/magic.go
package game

import (
	"math/rand"

	"github.com/pkg/errors"
)

// 跳子走法的 magic 完美哈希表。
//
// 跳子要跨过紧邻的一格,所以一个格子的可跳目标只取决于它到各个
// 两步目标的中点是否为空。每格的阻挡掩码就是这些中点的集合(最多
// 6 个位),把"掩码里哪些中点是空的"这个子集乘上 magic 再右移
// 58 位,得到 [0, 64) 的表下标,一次查表拿到全部可跳目标。
const (
	magicIndexBits = 6
	magicShift     = 64 - magicIndexBits
	magicTableLen  = 1 << magicIndexBits
	magicMaxTries  = 1 << 24 // 单格搜索的保险上限,实际几百次内就能命中
)

// MagicEntry 单格的乘数和查找表。没被任何子集命中的槽位保持
// NullBitboard。
type MagicEntry struct {
	Magic uint64
	Table [magicTableLen]Bitboard
}

// MagicSet 全盘 45 格的跳子查表集合。
type MagicSet struct {
	Masks   [NCells]Bitboard
	Entries [NCells]MagicEntry
}

// jumpBlockerMask 汇总 index 到每个两步目标的中点。
// 同方向两步的两段增量相等,中点下标恰好是 (index+target)/2。
func jumpBlockerMask(index int) Bitboard {
	var mask Bitboard
	for _, target := range Neighbours2List[index] {
		mask.Set((index + target) / 2)
	}
	return mask
}

// jumpTargets 不查表,按"中点必须空"逐个目标过滤。open 的置位
// 表示空格。构表和校验都拿它当基准实现。
func jumpTargets(index int, open Bitboard) Bitboard {
	var out Bitboard
	for _, target := range Neighbours2List[index] {
		if open.Get((index + target) / 2) {
			out.Set(target)
		}
	}
	return out
}

// FindMagics 为全部 45 格搜索乘数并填表。
func FindMagics(rng *rand.Rand) (*MagicSet, error) {
	ms := &MagicSet{}
	for index := 0; index < NCells; index++ {
		ms.Masks[index] = jumpBlockerMask(index)
	}
	for index := 0; index < NCells; index++ {
		magic, table, err := findCellMagic(rng, index, ms.Masks[index])
		if err != nil {
			return nil, err
		}
		ms.Entries[index] = MagicEntry{Magic: magic, Table: table}
	}
	return ms, nil
}

// findCellMagic 随机试乘数。三个随机数按位与出来的稀疏候选
// 更容易把不同子集打散到高 6 位。
func findCellMagic(rng *rand.Rand, index int, mask Bitboard) (uint64, [magicTableLen]Bitboard, error) {
	for try := 0; try < magicMaxTries; try++ {
		magic := rng.Uint64() & rng.Uint64() & rng.Uint64()
		if table, ok := tryMagic(mask, magic, index); ok {
			return magic, table, nil
		}
	}
	var none [magicTableLen]Bitboard
	return 0, none, errors.Errorf("magic: cell %d has no perfect 6-bit mapping after %d tries", index, magicMaxTries)
}

// tryMagic 把掩码的全部子集散列进 64 槽的表。两个子集落进同一槽
// 且目标集不同就是破坏性冲突,该乘数作废;目标集相同的冲突无害。
// 子集用 (subset - mask) & mask 枚举,从 0 出发绕一圈回到 0,
// 正好覆盖 2^k 个子集。
func tryMagic(mask Bitboard, magic uint64, index int) ([magicTableLen]Bitboard, bool) {
	var table [magicTableLen]Bitboard
	for i := range table {
		table[i] = NullBitboard
	}
	subset := uint64(0)
	subsetCount := 1 << mask.Count()
	for n := 0; n < subsetCount; n++ {
		subset = (subset - uint64(mask)) & uint64(mask)
		slot := (subset * magic) >> magicShift
		targets := jumpTargets(index, Bitboard(subset))
		if table[slot] == NullBitboard {
			table[slot] = targets
		} else if table[slot] != targets {
			return table, false
		}
	}
	return table, true
}

// JumpTargets 查表返回 index 的可跳目标。open 是全盘空格位板,
// 掩码外的位会先被滤掉。
func (ms *MagicSet) JumpTargets(index int, open Bitboard) Bitboard {
	e := &ms.Entries[index]
	subset := uint64(ms.Masks[index] & open)
	return e.Table[(subset*e.Magic)>>magicShift]
}

// Verify 穷举每格的全部阻挡子集,查表结果必须与逐目标过滤一致。
// 生成器命令在落盘前调用,把坏表挡在产物之外。
func (ms *MagicSet) Verify() error {
	for index := 0; index < NCells; index++ {
		mask := uint64(ms.Masks[index])
		subset := uint64(0)
		subsetCount := 1 << ms.Masks[index].Count()
		for n := 0; n < subsetCount; n++ {
			subset = (subset - mask) & mask
			want := jumpTargets(index, Bitboard(subset))
			if got := ms.JumpTargets(index, Bitboard(subset)); got != want {
				return errors.Errorf("magic: cell %d subset %#x: table %#x, direct scan %#x", index, subset, uint64(got), uint64(want))
			}
		}
	}
	return nil
}
