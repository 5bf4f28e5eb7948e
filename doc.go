// Package oneloop evaluates the scalar one-loop Feynman integrals
// A0 (tadpole), B0 (bubble), C0 (triangle) and D0 (box), returning
// their Laurent expansion in the dimensional-regularization parameter
// ε = (4−d)/2.
//
// 🚀 What is oneloop?
//
//	A typed access layer over a pluggable numerical engine for
//	one-loop scalar integrals, as they appear in next-to-leading-order
//	perturbative quantum field theory:
//		• OnePoint / TwoPoint / ThreePoint / FourPoint evaluation calls
//		• laurent.Result: the (ε⁰, ε⁻¹, ε⁻²) coefficient triple
//		• process-wide engine configuration: renormalization scale μ,
//		  on-shell threshold, diagnostic units
//		• ToFeynman: conversion to the textbook Feynman normalization
//
// ✨ Why choose oneloop?
//
//   - Pure Go – no cgo, no Fortran toolchain to carry around
//   - Engine-agnostic – the engine.Engine interface admits alternative
//     or higher-precision backends behind the same typed surface
//   - Rock-solid guarantees – one global lock serializes configuration
//     changes against evaluation calls; results are bit-reproducible
//     for identical inputs under a fixed configuration
//
// Under the hood, everything is organized under two subpackages plus
// this facade:
//
//	laurent/ — the Laurent-expansion result value type
//	engine/  — the numerical-engine boundary and the native engine
//
// Quick usage:
//
//	_ = oneloop.SetRenormalizationScale(91.1876) // μ = m_Z
//	r := oneloop.TwoPoint(1.0, complex(0.5, 0), complex(0.2, 0))
//	fmt.Println(r.Epsilon0() * oneloop.ToFeynman)
//
// Conventions: squared momenta are real invariants in the (+,−,−,−)
// metric; squared masses are complex with non-positive imaginary part
// (a positive imaginary part is flipped before evaluation); results
// carry the normalization in which the overall Γ-function factor of
// dimensional regularization has been stripped.
//
//	go get github.com/katalvlaran/oneloop
package oneloop
