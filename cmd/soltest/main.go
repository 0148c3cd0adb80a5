package main

import "github.com/LeJamon/goSolTestUtils/internal/cli"

func main() {
	cli.Execute()
}
