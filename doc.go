// SPDX-License-Identifier: MIT

// Package mstprim computes a Minimum Spanning Tree of an undirected, weighted
// graph read from a plain-text edge list, using Prim's algorithm.
//
// Input format:
//
//	N E              vertex count, edge count
//	src dest weight  E lines, 0 <= src,dest < N, weight > 0
//
// Bad edge lines are reported in the output file and skipped; a bad header is
// fatal.
//
// Under the hood the module is organized into small packages:
//
//	core/        — immutable adjacency-list Graph (NewGraph, WriteAdjacencyList)
//	prim/        — Prim's algorithm with a lazy-deletion min-heap (Prim, Tree)
//	edgelist/    — input parser with per-line diagnostics
//	report/      — output renderer (banner, adjacency, results, totals)
//	config/      — YAML + environment configuration, logrus setup
//	cmd/mstprim/ — the command: flags, interactive prompts, exit codes
//
// Quick example:
//
//	g, _ := core.NewGraph([]core.Edge{
//		{Src: 0, Dest: 1, Weight: 4},
//		{Src: 1, Dest: 2, Weight: 2},
//		{Src: 0, Dest: 2, Weight: 5},
//	}, 3)
//	tree, _ := prim.Prim(g)
//	fmt.Println(tree.TotalWeight()) // 6
//
// Complexity: O(E log V) time and O(V + E) memory for the MST.
package mstprim
