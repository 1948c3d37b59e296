// Package partgroup models the part-head group G = ⟨part_head⟩ used to
// identify chunks up to course-head rotation (spec.md §3). Rather than
// giving Row itself group structure, G is a small lookup table mapping a
// Rotation (an index 0..|G|-1) to the Row it represents, with
// multiplication and inversion done by index arithmetic — spec.md's
// Design Notes call this out explicitly in preference to inheritance.
package partgroup
