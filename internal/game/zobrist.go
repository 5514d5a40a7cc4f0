// File game/zobrist.go
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Zobrist 哈希表:35 个等价类 × 45 格,外加一个轮到黑方时异或进
// 局面哈希的翻转键。表内 1575 个键要求全局两两不同 —— 0 不被特殊
// 对待,重复才是问题。生成采用整表重采:哪怕只撞了一对键也丢弃
// 整张表从头再抽,抽样保持均匀,不会在"去掉重复"上引入偏差。
const (
	ZobristEntries     = NClasses * NCells // 1575
	zobristMaxAttempts = 1000
)

// ZobristTable 平铺存键,等价类 c 在格 k 上的键位于 c*NCells+k。
type ZobristTable struct {
	Keys [ZobristEntries]uint64
	Side uint64
}

// Key 返回等价类 class 在格 cell 上的键。下标越界会直接 panic,
// 调用方的 class 都来自等价类表,不会超出 [0, NClasses)。
func (z *ZobristTable) Key(class, cell int) uint64 {
	return z.Keys[class*NCells+cell]
}

// NewZobristTable 用给定随机源抽一张满足全局去重约束的表。
// 正常的随机源一两次就能成;源质量太差(比如常量源)时采样永远
// 不收敛,超过尝试上限就报错,而不是挂死在循环里。
func NewZobristTable(rng *rand.Rand) (*ZobristTable, error) {
	for attempt := 0; attempt < zobristMaxAttempts; attempt++ {
		z := &ZobristTable{}
		for i := range z.Keys {
			z.Keys[i] = rng.Uint64()
		}
		z.Side = rng.Uint64()
		if zobristDistinct(z) {
			return z, nil
		}
	}
	return nil, errors.Errorf("zobrist: no collision-free table after %d attempts", zobristMaxAttempts)
}

func zobristDistinct(z *ZobristTable) bool {
	seen := make(map[uint64]struct{}, ZobristEntries+1)
	for _, k := range z.Keys {
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	// 翻转键也不能和表内任何键相同,否则某个棋子恰好抵消行棋方
	if _, dup := seen[z.Side]; dup {
		return false
	}
	return true
}

var (
	defaultZobrist  *ZobristTable
	onceZobristInit sync.Once
)

// zobristShared 返回进程内共享的一张表,首次使用时按时间种子生成。
// 只求进程内自洽,跨进程比较哈希要用生成器命令落盘的固定表。
func zobristShared() *ZobristTable {
	onceZobristInit.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		z, err := NewZobristTable(rng)
		if err != nil {
			// 真随机源不可能连续上千次撞键
			panic(err)
		}
		defaultZobrist = z
	})
	return defaultZobrist
}
