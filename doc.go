// Package grille generates rotational grilles: square bit patterns whose marks
// are placed by rotating the cells of one quadrant, scored for balance,
// compactness and connectivity, and chosen by searching a seed space.
//
// 🚀 What is a grille?
//
//	A 2N×2N card with N² holes. Every cell of the top-left N×N quadrant is
//	punched at exactly one of its four rotations about the card centre, so
//	turning the card a quarter at a time exposes every position once.
//
// Under the hood, everything is organized under these subpackages:
//
//	stream/    seeded 48-bit LCG and an MSB-first bit view over its bytes
//	grid/      the Grid value type and the border flood (pocket detection)
//	synth/     (order, seed) → Grid by 2-bit rotational placement
//	score/     adjacency, quadrant balance, parity and connectivity terms
//	search/    best-of-N seed search with early exit on a perfect score
//	settings/  output/search settings, YAML loading and key=value overrides
//	cmd/grille  command-line front end
//
// Quick ASCII example (order 2, seed 0):
//
//	. . . #
//	# # . .
//	. . . .
//	. . # .
//
// Typical use:
//
//	res, err := search.Search(6, 10000)
//	if err != nil { /* ErrNoAttempts, synth.ErrOrderRange, ... */ }
//	fmt.Println(res.Seed, res.Score)
//	fmt.Println(res.Grid)
package grille
