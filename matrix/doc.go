// SPDX-License-Identifier: MIT

// Package matrix holds the storage, validation and error vocabulary shared by
// every spatial-weights package of this module.
//
// The matrix package provides:
//
//   - Dense: row-major N×M storage for distance matrices, with safe At/Set
//     and a finite-only numeric policy.
//   - Sparse: immutable CSR storage for weights matrices. Zero entries are
//     never stored, so each row lists exactly the neighbours of a unit.
//   - Validators (square, symmetric, non-negative, zero diagonal) returning
//     sentinel errors grouped into four categories: ErrInvalidInputShape,
//     ErrDegenerateGeometry, ErrNumericDomain and ErrConvergenceFailure.
//   - ParallelRows: errgroup-based fan-out for row-independent kernels.
//   - ToGonum/FromGonum: conversion to gonum's mat.Dense for estimators.
//
// Every constructor returns a freshly allocated matrix; Sparse has no
// mutators at all.
package matrix
