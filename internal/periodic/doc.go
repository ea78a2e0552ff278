// Package periodic holds the reference tables of the chemical elements:
// symbols, names, groups, periods and valencies, the IUPAC standard atomic
// weights in abridged and unabridged precision, and per-element isotope data.
//
// Every measured number is an uncertain.Quantity. A value that has not been
// measured is reported with ok == false rather than a sentinel number.
//
// All tables are package-level values built once and never mutated, so the
// package is safe for concurrent use.
package periodic
