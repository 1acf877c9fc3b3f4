package vector

import (
	"slices"
	"testing"
)

// FuzzOps interprets the input as a stream of mutating operations and
// mirrors every one of them onto a plain slice, checking after each
// step that the vector's live elements match and that length never
// exceeds capacity.
func FuzzOps(f *testing.F) {
	// Push-heavy stream crossing several growth boundaries.
	f.Add([]byte{0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0, 9})
	// Interleaved inserts and erases.
	f.Add([]byte{0, 1, 1, 0, 2, 1, 1, 3, 2, 0, 2, 1})
	// Pops and clears on a small vector.
	f.Add([]byte{0, 1, 0, 2, 3, 4, 0, 5, 5})
	// Reserve, shrink and resize mixed in.
	f.Add([]byte{6, 16, 0, 1, 0, 2, 7, 8, 4, 0, 3})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		v := New[int]()
		var oracle []int

		for pos := 0; pos < len(data); pos++ {
			op := data[pos]
			arg := 0
			if pos+1 < len(data) {
				pos++
				arg = int(data[pos])
			}

			switch op % 8 {
			case 0: // PushBack
				if err := v.PushBack(arg); err != nil {
					t.Fatalf("PushBack(%d): %v", arg, err)
				}
				oracle = append(oracle, arg)
			case 1: // Insert at clamped position
				i := 0
				if len(oracle) > 0 {
					i = arg % (len(oracle) + 1)
				}
				if err := v.Insert(i, arg); err != nil {
					t.Fatalf("Insert(%d, %d): %v", i, arg, err)
				}
				oracle = slices.Insert(oracle, i, arg)
			case 2: // Erase at clamped position
				if len(oracle) == 0 {
					continue
				}
				i := arg % len(oracle)
				if _, err := v.Erase(i); err != nil {
					t.Fatalf("Erase(%d): %v", i, err)
				}
				oracle = slices.Delete(oracle, i, i+1)
			case 3: // PopBack
				if len(oracle) == 0 {
					continue
				}
				v.PopBack()
				oracle = oracle[:len(oracle)-1]
			case 4: // Resize
				n := arg % 64
				if err := v.Resize(n); err != nil {
					t.Fatalf("Resize(%d): %v", n, err)
				}
				for len(oracle) < n {
					oracle = append(oracle, 0)
				}
				oracle = oracle[:n]
			case 5: // Clear
				v.Clear()
				oracle = oracle[:0]
			case 6: // Reserve
				if err := v.Reserve(arg % 256); err != nil {
					t.Fatalf("Reserve(%d): %v", arg, err)
				}
			case 7: // ShrinkToFit
				if err := v.ShrinkToFit(); err != nil {
					t.Fatalf("ShrinkToFit: %v", err)
				}
			}

			if !slices.Equal(v.Slice(), oracle) {
				t.Fatalf("after op %d: vector %v, oracle %v", op%8, v.Slice(), oracle)
			}
			if v.Len() > v.Cap() {
				t.Fatalf("length %d exceeds capacity %d", v.Len(), v.Cap())
			}
		}
	})
}
