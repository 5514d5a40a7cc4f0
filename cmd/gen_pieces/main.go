// cmd/gen_pieces/main.go
// 生成棋子等价类表:把 256 个字节折到 [0, 35) 的稠密编号。
// 两套半字节布局各有一张表,用 -packing 选择。
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"pijersi_go/internal/codegen"
	"pijersi_go/internal/game"
)

func main() {
	packing := flag.String("packing", "low", "半字节布局: low 或 high")
	name := flag.String("name", "", "覆盖默认表名")
	lang := flag.String("lang", "go", "输出方言: go 或 rust")
	pkg := flag.String("pkg", "game", "Go 片段的包名")
	out := flag.String("out", "", "输出文件,留空写到标准输出")
	flag.Parse()

	l, err := codegen.ParseLang(*lang)
	if err != nil {
		log.Fatal(err)
	}

	var p game.Packing
	var goName string
	switch *packing {
	case "low":
		p, goName = game.PackFlagLow, "PieceToClassLow"
	case "high":
		p, goName = game.PackFlagHigh, "PieceToClassHigh"
	default:
		log.Fatalf("未知布局 %q (要 low 或 high)", *packing)
	}

	// 表在包加载时已构建并做过冲突校验,这里再跑一遍,
	// 让命令行产物不依赖 init 里的 panic 路径
	if _, err := game.BuildPieceToClass(p); err != nil {
		log.Fatalf("等价类表损坏: %v", err)
	}

	var buf bytes.Buffer
	codegen.Header(&buf, l, "gen_pieces", *pkg)
	codegen.ClassTable(&buf, l, pick(*name, l, goName, "PIECE_TO_INDEX"), p)
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
