package engine

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkDigest(b *testing.B) {
	page := strings.Repeat(`<div class="row"><p>Some   text with <a href="/link">a link</a>.</p><script>var x = 1 < 2;</script></div>`+"\n", 64)
	payload := []byte(page)

	for _, algo := range []string{"sha256", "blake2b-256", "xxh64"} {
		b.Run(algo, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				if _, err := Digest("page.html", payload, algo); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScanWithStats(b *testing.B) {
	for _, threads := range []int{1, 4} {
		b.Run(fmt.Sprintf("threads_%d", threads), func(b *testing.B) {
			dir := b.TempDir()
			files := map[string]string{}
			for i := 0; i < 64; i++ {
				files[fmt.Sprintf("p%02d.html", i)] = strings.Repeat("<p>hello <b>world</b></p>\n", 200)
			}
			writeTree(b, dir, files)
			cfg := Config{Root: dir, Threads: threads, NoCache: true}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ScanWithStats(nil, cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
