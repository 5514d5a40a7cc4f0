package game

import "testing"

func TestClassDescriptorOrder(t *testing.T) {
	ds := ClassDescriptors()
	if len(ds) != NClasses-1 {
		t.Fatalf("描述数量 = %d", len(ds))
	}
	// 1) 白方在前,黑方在后,各 17 类
	for k, d := range ds {
		wantColour := White
		if k >= 17 {
			wantColour = Black
		}
		if d.Colour != wantColour {
			t.Errorf("类 %d 颜色 = %d", k, d.Colour)
		}
	}
	// 2) 锚点:首类是白 SS 叠,12 是白双智者,13..16 是白单子,33 是黑智者单子
	if ds[0].String() != "SS" || !ds[0].Stacked {
		t.Errorf("类 0 = %q", ds[0].String())
	}
	if ds[12].String() != "WW" {
		t.Errorf("类 12 = %q", ds[12].String())
	}
	for k, want := range []string{"S", "P", "R", "W"} {
		if got := ds[13+k].String(); got != want || ds[13+k].Stacked {
			t.Errorf("类 %d = %q, want %q", 13+k, got, want)
		}
	}
	if ds[17].String() != "ss" || ds[33].String() != "w" {
		t.Errorf("黑方块锚点错误: %q %q", ds[17].String(), ds[33].String())
	}
}

func TestPieceToClassSpotValues(t *testing.T) {
	// 低位布局:白剪单子 0b0001 -> 13,白双智者 0xDD -> 12,黑智单 0b1111 -> 33
	if got := PieceToClassLow[WhiteScissors]; got != 13 {
		t.Errorf("低位布局 %#02x -> %d, want 13", WhiteScissors, got)
	}
	if got := PieceToClassLow[0xDD]; got != 12 {
		t.Errorf("低位布局 0xDD -> %d, want 12", got)
	}
	if got := PieceToClassLow[BlackWise]; got != 33 {
		t.Errorf("低位布局 %#02x -> %d, want 33", BlackWise, got)
	}
	// 高位布局:白剪单子 8 -> 13,白双智者 187 -> 12,黑 ss 叠 204 -> 17
	if got := PieceToClassHigh[8]; got != 13 {
		t.Errorf("高位布局 8 -> %d, want 13", got)
	}
	if got := PieceToClassHigh[187]; got != 12 {
		t.Errorf("高位布局 187 -> %d, want 12", got)
	}
	if got := PieceToClassHigh[204]; got != 17 {
		t.Errorf("高位布局 204 -> %d, want 17", got)
	}
	// 空格在两套布局里都折到兜底类
	if PieceToClassLow[0] != ClassEmpty || PieceToClassHigh[0] != ClassEmpty {
		t.Errorf("空格未折到 ClassEmpty")
	}
}

func TestPieceToClassTotality(t *testing.T) {
	for _, p := range []Packing{PackFlagLow, PackFlagHigh} {
		table := p.ClassTable()
		// 1) 每个真实等价类恰好占一个字节
		var hit [NClasses]int
		for b := 0; b < 256; b++ {
			class := table[b]
			if class >= NClasses {
				t.Fatalf("布局 %d 字节 %#02x 映射到 %d", p, b, class)
			}
			hit[class]++
		}
		for class := 0; class < NClasses-1; class++ {
			if hit[class] != 1 {
				t.Errorf("布局 %d 类 %d 出现 %d 次", p, class, hit[class])
			}
		}
		if hit[ClassEmpty] != 256-(NClasses-1) {
			t.Errorf("布局 %d 兜底类出现 %d 次", p, hit[ClassEmpty])
		}
		// 2) 描述往返:按描述拼字节再查表,拿回描述自己的编号
		for class, d := range ClassDescriptors() {
			if got := table[d.Byte(p)]; int(got) != class {
				t.Errorf("布局 %d 描述 %s: 查表 %d, want %d", p, d, got, class)
			}
		}
	}
}

func TestPackingsShareClassNumbers(t *testing.T) {
	// 同一个棋子在两套布局下字节不同,等价类编号必须相同:
	// 位板引擎和数组棋盘折出的 Zobrist 键才会一致
	for class, d := range ClassDescriptors() {
		low := PieceToClassLow[d.Byte(PackFlagLow)]
		high := PieceToClassHigh[d.Byte(PackFlagHigh)]
		if low != high || int(low) != class {
			t.Errorf("描述 %s: 低位 %d, 高位 %d, want %d", d, low, high, class)
		}
	}
}

func TestClassTableCollision(t *testing.T) {
	// 人为把所有描述折到同一字节,构建必须报错而不是静默覆盖
	if _, err := buildClassTable(func(Descriptor) uint8 { return 0x5A }); err == nil {
		t.Fatalf("退化布局应当报错")
	}
}

func TestPieceByteHelpers(t *testing.T) {
	for _, p := range []Packing{PackFlagLow, PackFlagHigh} {
		single := p.Single(White, Rock)
		stack := p.Stack(Black, Scissors, Wise)
		if IsStack(single) {
			t.Errorf("布局 %d 单子 %#02x 被判成叠子", p, single)
		}
		if !IsStack(stack) {
			t.Errorf("布局 %d 叠子 %#02x 被判成单子", p, stack)
		}
		if TopNibble(stack) != p.Nibble(Black, Scissors) || BottomNibble(stack) != p.Nibble(Black, Wise) {
			t.Errorf("布局 %d 叠子拆层错误: %#02x", p, stack)
		}
		if BottomNibble(single) != 0 {
			t.Errorf("布局 %d 单子带了底层: %#02x", p, single)
		}
	}
	if got := StackBytes(WhitePaper, WhiteScissors); got != 0x51 {
		t.Errorf("StackBytes = %#02x, want 0x51", got)
	}
}

func TestPieceCharRoundTrip(t *testing.T) {
	table := []struct {
		piece uint8
		ch    byte
	}{
		{CellEmpty, '-'},
		{WhiteScissors, 'S'}, {WhitePaper, 'P'}, {WhiteRock, 'R'}, {WhiteWise, 'W'},
		{BlackScissors, 's'}, {BlackPaper, 'p'}, {BlackRock, 'r'}, {BlackWise, 'w'},
	}
	for _, tc := range table {
		ch, ok := PieceToChar(tc.piece)
		if !ok || ch != tc.ch {
			t.Errorf("PieceToChar(%#02x) = %q,%v", tc.piece, ch, ok)
		}
		piece, ok := CharToPiece(tc.ch)
		if !ok || piece != tc.piece {
			t.Errorf("CharToPiece(%q) = %#02x,%v", tc.ch, piece, ok)
		}
	}
	if _, ok := PieceToChar(0xFF); ok {
		t.Errorf("非法半字节不应有字符")
	}
	if _, ok := CharToPiece('?'); ok {
		t.Errorf("非法字符不应有棋子")
	}
}
