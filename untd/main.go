package main

import "os"

// Created: Sun Mar 16 09:48:15 2025

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	os.Exit(prog.run(ps.Remainder()))
}
