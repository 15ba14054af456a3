// Package fixer drives an identity correction from start to finish: it
// collects the identities recorded in history, walks the operator through
// choosing the wrong identity and its replacement, asks for confirmation,
// and rewrites every branch and tag.
package fixer
