// Package cell implements a lazy, flat key-addressed storage engine for a
// contract-style runtime.
//
// The underlying store is a flat map from 256-bit [Key]s to opaque byte
// strings, exposed through the [Host] interface. Everything above that line
// is about avoiding unnecessary reads and writes against that store:
//
//   - [Packed] types encode/decode themselves into a single cell's
//     bytes (see [Encoder] / [Decoder]).
//   - [Spread] types occupy one or more contiguous cells, walked with
//     a [KeyPtr] cursor.
//   - [LazyCell], [LazyArray] and [LazyIndexMap] wrap an [Entry] cache so a
//     cell is read from the host at most once (on first access) and written
//     back at most once (on flush), and only if it was actually touched.
//   - [Vec] composes a length [LazyCell] with a [LazyIndexMap] to give a
//     growable, push/pop/swap-capable sequence.
//
// A value attaches to the key space by being pulled from or pushed to a
// [KeyPtr]; until then it is a plain, disconnected Go value.
package cell
