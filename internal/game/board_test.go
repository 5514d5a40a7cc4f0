package game

import "testing"

// 45 格的坐标与格名全量对照表,逐格校验闭式下标、逆变换和棋谱格名。
var cellTable = []struct {
	i, j  int
	index int
	name  string
}{
	{0, 0, 0, "g1"}, {0, 1, 1, "g2"}, {0, 2, 2, "g3"}, {0, 3, 3, "g4"}, {0, 4, 4, "g5"}, {0, 5, 5, "g6"},
	{1, 0, 6, "f1"}, {1, 1, 7, "f2"}, {1, 2, 8, "f3"}, {1, 3, 9, "f4"}, {1, 4, 10, "f5"}, {1, 5, 11, "f6"}, {1, 6, 12, "f7"},
	{2, 0, 13, "e1"}, {2, 1, 14, "e2"}, {2, 2, 15, "e3"}, {2, 3, 16, "e4"}, {2, 4, 17, "e5"}, {2, 5, 18, "e6"},
	{3, 0, 19, "d1"}, {3, 1, 20, "d2"}, {3, 2, 21, "d3"}, {3, 3, 22, "d4"}, {3, 4, 23, "d5"}, {3, 5, 24, "d6"}, {3, 6, 25, "d7"},
	{4, 0, 26, "c1"}, {4, 1, 27, "c2"}, {4, 2, 28, "c3"}, {4, 3, 29, "c4"}, {4, 4, 30, "c5"}, {4, 5, 31, "c6"},
	{5, 0, 32, "b1"}, {5, 1, 33, "b2"}, {5, 2, 34, "b3"}, {5, 3, 35, "b4"}, {5, 4, 36, "b5"}, {5, 5, 37, "b6"}, {5, 6, 38, "b7"},
	{6, 0, 39, "a1"}, {6, 1, 40, "a2"}, {6, 2, 41, "a3"}, {6, 3, 42, "a4"}, {6, 4, 43, "a5"}, {6, 5, 44, "a6"},
}

func TestCellIndexTable(t *testing.T) {
	if len(cellTable) != NCells {
		t.Fatalf("对照表不全: %d", len(cellTable))
	}
	for _, tc := range cellTable {
		// 1) 闭式下标
		got, err := CoordsToIndex(tc.i, tc.j)
		if err != nil {
			t.Fatalf("CoordsToIndex(%d,%d): %v", tc.i, tc.j, err)
		}
		if got != tc.index {
			t.Errorf("CoordsToIndex(%d,%d) = %d, want %d", tc.i, tc.j, got, tc.index)
		}
		// 2) 逆变换
		i, j, err := IndexToCoords(tc.index)
		if err != nil {
			t.Fatalf("IndexToCoords(%d): %v", tc.index, err)
		}
		if i != tc.i || j != tc.j {
			t.Errorf("IndexToCoords(%d) = (%d,%d), want (%d,%d)", tc.index, i, j, tc.i, tc.j)
		}
		// 3) 棋谱格名来回
		name, err := CellName(tc.index)
		if err != nil {
			t.Fatalf("CellName(%d): %v", tc.index, err)
		}
		if name != tc.name {
			t.Errorf("CellName(%d) = %q, want %q", tc.index, name, tc.name)
		}
		back, err := ParseCell(tc.name)
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", tc.name, err)
		}
		if back != tc.index {
			t.Errorf("ParseCell(%q) = %d, want %d", tc.name, back, tc.index)
		}
	}
}

func TestCoordsOutOfRange(t *testing.T) {
	bad := []struct{ i, j int }{
		{-1, 0}, {7, 0}, {0, -1},
		{0, 6},  // 偶数行只有 6 格
		{1, 7},  // 奇数行只有 7 格
		{6, 6},
	}
	for _, tc := range bad {
		if _, err := CoordsToIndex(tc.i, tc.j); err == nil {
			t.Errorf("CoordsToIndex(%d,%d) 应当报错", tc.i, tc.j)
		}
	}
	for _, index := range []int{-1, 45, 100} {
		if _, _, err := IndexToCoords(index); err == nil {
			t.Errorf("IndexToCoords(%d) 应当报错", index)
		}
	}
	for _, name := range []string{"", "a", "h1", "a0", "a7", "f8", "a1x", "1a"} {
		if _, err := ParseCell(name); err == nil {
			t.Errorf("ParseCell(%q) 应当报错", name)
		}
	}
}

func TestRowTables(t *testing.T) {
	wantLen := [NRows]int{6, 7, 6, 7, 6, 7, 6}
	wantStart := [NRows]int{0, 6, 13, 19, 26, 32, 39}
	if RowLen != wantLen {
		t.Fatalf("RowLen = %v, want %v", RowLen, wantLen)
	}
	if RowStart != wantStart {
		t.Fatalf("RowStart = %v, want %v", RowStart, wantStart)
	}
}

func TestWinMasks(t *testing.T) {
	// 白方获胜线是最上一行 g1..g6,黑方是最下一行 a1..a6
	if got := uint64(WhiteWinMask); got != 0b111111 {
		t.Errorf("WhiteWinMask = %#x", got)
	}
	if got := uint64(BlackWinMask); got != uint64(0b111111)<<39 {
		t.Errorf("BlackWinMask = %#x", got)
	}
	if WhiteWinMask&BlackWinMask != 0 {
		t.Errorf("两条获胜线不应相交")
	}
	for index := 0; index < NCells; index++ {
		if IsBlackHome(index) != (index <= 5) {
			t.Errorf("IsBlackHome(%d) 错误", index)
		}
		if IsWhiteHome(index) != (index >= 39) {
			t.Errorf("IsWhiteHome(%d) 错误", index)
		}
	}
}
