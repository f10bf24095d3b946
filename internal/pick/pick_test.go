package pick

import "testing"

func TestOneWithSequence(t *testing.T) {
	items := []string{"a", "b", "c"}
	src := Sequence(2, 0, 4)

	want := []string{"c", "a", "b", "c"}
	for i, w := range want {
		if got := One(src, items); got != w {
			t.Fatalf("draw %d = %q, want %q", i, got, w)
		}
	}
}

func TestSeededIsReproducible(t *testing.T) {
	a, b := Seeded("salt"), Seeded("salt")
	for i := 0; i < 50; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
		if x < 0 || x >= 1000 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}

func TestCryptoInRange(t *testing.T) {
	src := Crypto()
	for i := 0; i < 200; i++ {
		if v := src.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d", v)
		}
	}
	if v := src.Intn(1); v != 0 {
		t.Fatalf("Intn(1) = %d, want 0", v)
	}
}
