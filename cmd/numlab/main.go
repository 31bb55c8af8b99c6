// SPDX-License-Identifier: MIT

// Command numlab solves numerical-methods exercises from the command line.
//
// Usage:
//
//	numlab [-session file.yaml] [-plain] [-width n] <command> [flags]
//
// Commands:
//
//	linear     Jacobi solve of an augmented matrix [A|b]
//	bisect     bisection root of f(x) = 0 on [a,b]
//	secant     secant root of f(x) = 0 from two starting points
//	iterate    fixed point x = φ(x) on [a,b]
//	newton     Newton solve of a two-equation system in x and y
//	integrate  definite integral with a composite rule and Runge control
//	plot       graph of f(x) with [a,b] highlighted (PNG/SVG)
//	genmatrix  random (optionally diagonally dominant) augmented matrix
//	session    show | set | clear a saved parameter session
//
// Parameters not given as flags are taken from the session file.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetPrefix("numlab: ")
	log.SetFlags(0)

	if err := run(os.Args[1:], os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}
