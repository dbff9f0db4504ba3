// Package git runs the git command line tool in a fixed working directory,
// and translates its failures into a single error type.
//
// It requires the git command in $PATH. Arguments are handed to git as is,
// without any shell in between.
package git
