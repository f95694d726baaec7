package regmut_test

import (
	"fmt"

	"regmut.dev/pkg/regmut/pkg/regmut"
)

func ExampleMutate() {
	mutants, err := regmut.Mutate("^a")
	if err != nil {
		panic(err)
	}

	for _, mutant := range mutants {
		fmt.Printf("%s\t%s\n", mutant.Pattern, mutant.Name)
	}
	// Output:
	// a	Beginning of line character `^` removal
	// \Aa	Beginning of line character `^` to beginning of input `\A`
}

func ExampleWithMutationLevels() {
	mutants, err := regmut.Mutate(`\d+`, regmut.WithMutationLevels(1))
	if err != nil {
		panic(err)
	}

	for _, mutant := range mutants {
		fmt.Println(mutant.Pattern)
	}
	// Output:
	// \d
	// \D+
}
