// Package reloc implements element relocation between storage blocks
// and in-place shifting within a block.
//
// Relocation transfers element values from one block's raw slots into
// another's, choosing between move and copy semantics: moving is used
// whenever it cannot fail (or the type cannot be copied at all), and
// copying otherwise, so that a failure mid-relocation under copy
// semantics destroys only the partially built destination and leaves
// the source block fully intact.
package reloc
