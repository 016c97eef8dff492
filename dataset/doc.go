// Package dataset reads problem instances: one city per line, "x,y".
//
// Instances live in a directory as example<id>.txt, id a positive integer.
// Empty lines and lines starting with '#' are skipped; extra columns after y
// are ignored.
package dataset
