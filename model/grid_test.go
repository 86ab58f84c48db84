package model

import (
	"errors"
	"testing"

	"github.com/hzach/Cellery/utils"
)

func matricesEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestFromMatrixRejectsRaggedInput(t *testing.T) {
	_, err := FromMatrix([][]int{
		{0, 1, 0},
		{1, 0},
	})
	if !errors.Is(err, ErrRaggedMatrix) {
		t.Fatalf("err = %v, want ErrRaggedMatrix", err)
	}
}

func TestFromMatrixRejectsEmptyInput(t *testing.T) {
	for _, matrix := range [][][]int{nil, {}, {{}}} {
		if _, err := FromMatrix(matrix); !errors.Is(err, ErrRaggedMatrix) {
			t.Fatalf("FromMatrix(%v) err = %v, want ErrRaggedMatrix", matrix, err)
		}
	}
}

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrRaggedMatrix) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrRaggedMatrix", dims[0], dims[1], err)
		}
	}
}

func TestKillAndReviveAreIdempotent(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0},
		{0, 1},
	})

	for n := 0; n < 2; n++ {
		if err := g.Kill(0, 0); err != nil {
			t.Fatalf("Kill: %v", err)
		}
		c, err := g.Get(0, 0)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if c.Bit() != 0 {
			t.Fatalf("bit after Kill = %d, want 0", c.Bit())
		}
	}

	for n := 0; n < 2; n++ {
		if err := g.Revive(0, 1); err != nil {
			t.Fatalf("Revive: %v", err)
		}
		c, err := g.Get(0, 1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if c.Bit() != 1 {
			t.Fatalf("bit after Revive = %d, want 1", c.Bit())
		}
	}
}

func TestAccessorsRejectOutOfRangeIndices(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}, {1, 1}})

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Get(%d, %d) err = %v, want ErrIndexOutOfRange", c[0], c[1], err)
		}
		if err := g.Kill(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Kill(%d, %d) err = %v, want ErrIndexOutOfRange", c[0], c[1], err)
		}
		if err := g.Revive(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Revive(%d, %d) err = %v, want ErrIndexOutOfRange", c[0], c[1], err)
		}
	}

	// Failed mutations leave the grid untouched.
	if got := g.LivingCount(); got != 4 {
		t.Fatalf("LivingCount after failed mutations = %d, want 4", got)
	}
}

func TestLivingCountMatchesBinaryMatrix(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	})

	sum := 0
	for _, row := range g.ToBinaryMatrix() {
		for _, v := range row {
			sum += v
		}
	}
	if got := g.LivingCount(); got != sum {
		t.Fatalf("LivingCount = %d, want %d (sum of binary matrix)", got, sum)
	}

	if err := g.Kill(0, 0); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if got := g.LivingCount(); got != sum-1 {
		t.Fatalf("LivingCount after Kill = %d, want %d", got, sum-1)
	}
}

func TestBinaryMatrixRoundTrip(t *testing.T) {
	original := [][]int{
		{0, 1, 0, 0},
		{1, 1, 0, 1},
		{0, 0, 1, 0},
	}
	g := mustGrid(t, original)

	rebuilt, err := FromMatrix(g.ToBinaryMatrix())
	if err != nil {
		t.Fatalf("FromMatrix(ToBinaryMatrix()): %v", err)
	}
	if !matricesEqual(rebuilt.ToBinaryMatrix(), g.ToBinaryMatrix()) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", rebuilt.ToBinaryMatrix(), g.ToBinaryMatrix())
	}
}

func TestRenderFormat(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1},
		{1, 0},
	})
	if got, want := g.Render(), "[[0, 1], [1, 0]]"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestFingerprintTracksState(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	before := g.Fingerprint()

	if err := g.Revive(1, 1); err != nil {
		t.Fatalf("Revive: %v", err)
	}
	if g.Fingerprint() == before {
		t.Fatal("fingerprint unchanged after mutation")
	}

	if err := g.Kill(1, 1); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if g.Fingerprint() != before {
		t.Fatal("fingerprint differs for identical states")
	}
}

func TestStagnationDetection(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1},
		{1, 1},
	})

	if g.IsStagnant() {
		t.Fatal("stagnant with no history")
	}
	for n := 0; n < 3; n++ {
		g.UpdateHistory()
	}
	if !g.IsStagnant() {
		t.Fatal("static grid not detected as stagnant")
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 1}, {1, 1, 1}})

	g.Randomize(0)
	if got := g.LivingCount(); got != 0 {
		t.Fatalf("LivingCount after Randomize(0) = %d, want 0", got)
	}

	g.Randomize(1)
	if got := g.LivingCount(); got != 6 {
		t.Fatalf("LivingCount after Randomize(1) = %d, want 6", got)
	}
}

func TestInjectRandomLife(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	g.InjectRandomLife(3)
	if g.LivingCount() == 0 {
		t.Fatal("no living cells after injection")
	}
}

func TestSeedPatternsPopulatesGrid(t *testing.T) {
	g, err := NewGrid(20, 30)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	cfg := utils.DefaultConfig()
	cfg.RandomDensity = 0
	g.SeedPatterns(cfg)

	// With zero random density only the stamped patterns remain: two
	// gliders (5 cells each) and two blinkers (3 cells each).
	if got := g.LivingCount(); got != 16 {
		t.Fatalf("LivingCount after SeedPatterns = %d, want 16", got)
	}
}
