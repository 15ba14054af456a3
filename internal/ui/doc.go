// Package ui provides helpers for formatting human-readable console output.
//
// ConsoleCommandEventLogger turns git invocation events into short sentences
// ("Summarizing commit authors in /repo") for operators who run with the
// console log format, while structured logs keep the raw command details.
package ui
