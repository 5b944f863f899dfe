package listfiles_test

import (
	"fmt"

	"github.com/listfiles/listfiles"
)

func ExampleEcho() {
	s, err := listfiles.Echo("Hello, world!\n").String()
	if err != nil {
		panic(err)
	}
	fmt.Print(s)
	// Output:
	// Hello, world!
}

func ExampleFile() {
	s, err := listfiles.File("testdata/hello.txt").String()
	if err != nil {
		panic(err)
	}
	fmt.Print(s)
	// Output:
	// hello world
}

func ExampleRegularFiles() {
	names, err := listfiles.RegularFiles("testdata/one_file").Slice()
	if err != nil {
		panic(err)
	}
	fmt.Println(names)
	// Output:
	// [only.txt]
}

func ExamplePipe_CountLines() {
	n, err := listfiles.Echo("a.txt\nb.wav\n").CountLines()
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output:
	// 2
}
