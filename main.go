// Package main is the entry point for the regmut CLI.
package main

import "regmut.dev/pkg/regmut/cmd"

func main() {
	cmd.Execute()
}
