// Package bells is a thin adapter over change-ringing row algebra: rows as
// permutations of bells, place notation, and the methods/plain-courses built
// from them.
//
// Monument's own concern is the composition search graph (see package
// graph), not row algebra itself — a production build of this engine would
// depend on a dedicated, fully-featured row-algebra crate (parsing every
// historical place-notation shorthand, symmetric/asymmetric method
// classification, and so on). That library is explicitly out of scope here
// (spec: "the bell/row/place-notation algebra library ... consumed via thin
// adapters"), so this package implements only what graph construction
// actually needs: row multiplication/inversion, a single well-defined
// place-notation-to-row conversion, and plain-course generation from a
// method's lead.
//
// Place notation here is always the fully expanded per-row token sequence
// for one lead (e.g. "x.14.x.14.x.18.x.18.x.14.x.14.x.12"), not the
// mnemonic-compressed, symmetric "block,block" shorthand a full library
// would accept. Callers that need the shorthand expand it before reaching
// this package.
package bells
