// cmd/gen_neighbours/main.go
// 生成相邻表的源码片段:一环邻居、同方向两步,位板或下标列表形式。
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
	ring := flag.Int("ring", 1, "1=一步邻居, 2=同方向两步")
	shape := flag.String("shape", "mask", "mask=位板, list=下标列表(仅 ring=2)")
	name := flag.String("name", "", "覆盖默认表名")
	lang := flag.String("lang", "go", "输出方言: go 或 rust")
	pkg := flag.String("pkg", "game", "Go 片段的包名")
	out := flag.String("out", "", "输出文件,留空写到标准输出")
	flag.Parse()

	l, err := codegen.ParseLang(*lang)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	codegen.Header(&buf, l, "gen_neighbours", *pkg)
	switch {
	case *ring == 1 && *shape == "mask":
		codegen.BitboardTable(&buf, l, pick(*name, l, "Neighbours1", "NEIGHBOURS1"), &game.Neighbours1)
	case *ring == 2 && *shape == "mask":
		codegen.BitboardTable(&buf, l, pick(*name, l, "Neighbours2", "NEIGHBOURS2"), &game.Neighbours2)
	case *ring == 2 && *shape == "list":
		codegen.IndexLists(&buf, l, pick(*name, l, "Neighbours2List", "NEIGHBOURS2_LISTS"), &game.Neighbours2List)
	default:
		log.Fatalf("没有 ring=%d shape=%q 这张表", *ring, *shape)
	}
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
