// Package rawvec provides a growable, contiguous sequence container
// built on an explicitly managed raw storage block.
//
// # Architecture Overview
//
// The library is organized into a small set of packages with distinct
// responsibilities:
//
//	rawvec/              Root package with the element Lifecycle contract
//	├── rawstore/        Exclusive ownership of fixed-capacity raw blocks
//	├── vector/          The dynamic array built on rawstore
//	│   └── internal/reloc/  Move-vs-copy relocation between blocks
//	├── errors/          Structured error types
//	└── cmd/vecview/     Interactive workbench for exercising the container
//
// The split mirrors the invariant the whole library is built around: a
// storage block knows nothing about which of its slots hold live
// elements, and the vector is the single owner that tracks liveness and
// drives construction and destruction.
//
// # Quick Start
//
//	v := vector.New[int]()
//	for i := range 10 {
//	    if err := v.PushBack(i); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	v.Insert(1, 99)
//	v.Erase(0)
//	fmt.Println(v.Len(), v.Cap(), v.At(0))
//
// # Element Lifecycles
//
// Operations that construct or duplicate elements can fail when the
// element type's lifecycle says so. The Lifecycle strategy carries the
// construct, copy, move and drop operations for a type; the zero value
// of every field selects the trivial behavior, so plain value types
// cost nothing. Types that hold resources can implement Dropper or
// install a custom Drop.
//
// Failure guarantees follow the container tradition: operations that
// can fail either complete fully or leave the container observably
// unchanged, except for a documented gap in the shift phase of a
// middle insert (see vector.Insert).
//
// # Concurrency
//
// Containers are not synchronized. A Vector must be confined to one
// goroutine or guarded externally.
package rawvec
