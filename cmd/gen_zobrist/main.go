// cmd/gen_zobrist/main.go
// 生成 Zobrist 键表:35 类 × 45 格加一个行棋方翻转键,全局无重复。
// 记下打印出来的种子就能逐位复现同一张表。
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"pijersi_go/internal/codegen"
	"pijersi_go/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "随机种子,0 表示取当前时间")
	tableName := flag.String("table", "", "覆盖默认的键表名")
	sideName := flag.String("side", "", "覆盖默认的翻转键名")
	lang := flag.String("lang", "go", "输出方言: go 或 rust")
	pkg := flag.String("pkg", "game", "Go 片段的包名")
	out := flag.String("out", "", "输出文件,留空写到标准输出")
	flag.Parse()

	l, err := codegen.ParseLang(*lang)
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed = %d", *seed)

	start := time.Now()
	z, err := game.NewZobristTable(rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d 个键生成完成,耗时 %v", game.ZobristEntries+1, time.Since(start))

	var buf bytes.Buffer
	codegen.Header(&buf, l, "gen_zobrist", *pkg)
	codegen.HashTable(&buf, l,
		pick(*tableName, l, "ZobristKeys", "ZOBRIST_TABLE"),
		pick(*sideName, l, "ZobristSide", "PLAYER_HASH"), z)
	writeOut(*out, buf.Bytes())
}

func pick(override string, l codegen.Lang, goName, rustName string) string {
	if override != "" {
		return override
	}
	if l == codegen.LangRust {
		return rustName
	}
	return goName
}

func writeOut(path string, data []byte) {
	if path == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("写 %s: %v", path, err)
	}
	log.Printf("已写入 %s (%d 字节)", path, len(data))
}
