// Package mockdata generates deterministic back-office datasets for demos,
// benchmarks and tests.
//
// Every generator is seeded: the same seed always yields the same records,
// which keeps table snapshots and benchmarks reproducible. Participants get
// valid RUTs (check digit computed with package rut), Chilean names and an
// estado distribution weighted towards "activo".
//
// # Usage
//
//	g := mockdata.New(mockdata.WithSeed(7))
//	participants := g.Participants(150)
//	courses := g.Courses(12)
//	catalog := g.Catalog(150, 12)
//
// Word lists live in words.go and can be replaced per generator with
// WithWords.
package mockdata
