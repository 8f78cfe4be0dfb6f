package runutil

import (
	"testing"

	"seqwin/internal/config"
)

func TestChunkSize(t *testing.T) {
	cfg := config.Default()
	if got := ChunkSize(0, cfg); got != cfg.ChunkSize {
		t.Fatalf("0 → %d, want config %d", got, cfg.ChunkSize)
	}
	if got := ChunkSize(4096, cfg); got != 4096 {
		t.Fatalf("flag ignored: %d", got)
	}
}

func TestWrap(t *testing.T) {
	cfg := config.Default()
	cases := []struct{ flag, want int }{
		{-1, cfg.Wrap},
		{0, 0},
		{10, 10},
	}
	for _, c := range cases {
		if got := Wrap(c.flag, cfg); got != c.want {
			t.Fatalf("Wrap(%d) = %d, want %d", c.flag, got, c.want)
		}
	}
}

func TestIndexPath(t *testing.T) {
	cfg := config.Default()
	if got := IndexPath("", "a.fa", cfg); got != "a.fa"+cfg.IndexSuffix {
		t.Fatalf("default path = %q", got)
	}
	if got := IndexPath("x.json", "a.fa", cfg); got != "x.json" {
		t.Fatalf("explicit path = %q", got)
	}
}
