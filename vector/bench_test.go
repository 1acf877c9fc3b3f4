package vector

import (
	"testing"

	"github.com/wippyai/rawvec"
)

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := range 1000 {
			if err := v.PushBack(j); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPushBack_Reserved(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		if err := v.Reserve(1000); err != nil {
			b.Fatal(err)
		}
		for j := range 1000 {
			if err := v.PushBack(j); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInsert_Front(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := range 256 {
			if err := v.Insert(0, j); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInsert_Middle(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := range 256 {
			if err := v.Insert(v.Len()/2, j); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkErase_Front(b *testing.B) {
	src := make([]int, 256)
	for i := range src {
		src[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := Of(src...)
		b.StartTimer()
		for !v.Empty() {
			if _, err := v.Erase(0); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPushBack_CopyRelocation measures growth with copy-based
// relocation, the path a non-move-safe lifecycle takes.
func BenchmarkPushBack_CopyRelocation(b *testing.B) {
	life := rawvec.Lifecycle[int]{
		Copy: func(v int) (int, error) { return v, nil },
		Move: func(p *int) (int, error) { v := *p; *p = 0; return v, nil },
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := NewWith(life)
		for j := range 1000 {
			if err := v.PushBack(j); err != nil {
				b.Fatal(err)
			}
		}
	}
}
