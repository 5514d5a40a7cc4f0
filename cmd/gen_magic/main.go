// cmd/gen_magic/main.go
// 生成跳子走法的 magic 查表:每格一个乘数和 64 槽的目标位板表。
// 落盘前穷举全部阻挡子集做一遍校验,坏表直接拒绝输出。
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"pijersi_go/internal/codegen"
	"pijersi_go/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "随机种子,0 表示取当前时间")
	maskName := flag.String("masks", "", "覆盖默认的掩码表名")
	magicName := flag.String("magics", "", "覆盖默认的乘数表名")
	lang := flag.String("lang", "go", "输出方言: go 或 rust")
	pkg := flag.String("pkg", "game", "Go 片段的包名")
	out := flag.String("out", "", "输出文件,留空写到标准输出")
	cpuprofile := flag.String("cpuprofile", "", "把 CPU profile 写到该文件")
	flag.Parse()

	l, err := codegen.ParseLang(*lang)
	if err != nil {
		log.Fatal(err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed = %d", *seed)

	start := time.Now()
	ms, err := game.FindMagics(rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("45 格搜索完成,耗时 %v", time.Since(start))

	if err := ms.Verify(); err != nil {
		log.Fatalf("校验失败: %v", err)
	}
	log.Printf("穷举校验通过")

	var buf bytes.Buffer
	codegen.Header(&buf, l, "gen_magic", *pkg)
	codegen.MagicTables(&buf, l,
		pick(*maskName, l, "JumpBlockerMasks", "BLOCKER_MASKS"),
		pick(*magicName, l, "JumpMagics", "MAGICS"), ms)
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
