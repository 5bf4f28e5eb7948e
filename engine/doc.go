// Package engine defines the boundary between the typed oneloop
// surface and the numerical backend that actually evaluates the
// scalar integrals, and ships Native, a pure-Go double-precision
// backend.
//
// The contract is deliberately low-level: every EvalXX call fills a
// caller-owned Buffer with the three Laurent coefficients, ordered
// finite part first. The caller (normally the parent package) owns
// serialization; an Engine may assume it is never called
// concurrently.
//
// Diagnostics never travel through return values. An engine reports
// numerical trouble and unsupported kinematic configurations through
// its diagnostic units (see Unit and SetUnit) and still fills the
// buffer, with zeros when it cannot do better. This mirrors how
// established one-loop libraries behave and keeps the evaluation
// call signature total.
package engine
