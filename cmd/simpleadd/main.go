// Command simpleadd adds two fixed operands and prints the sum.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yag13s/srcstat/operation"
)

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	sc := operation.NewAddition(5, 12)
	fmt.Fprintln(w, sc.Sum())
}
