package batch_test

import (
	"context"
	"fmt"
	"os"

	"github.com/sowinskl/go-batch"
)

func ExampleNew() {
	b := batch.New("echo", true, "retry", 3)
	defer b.Close()

	fmt.Println(b.Get("retry"))
	fmt.Println(b.Echo())
	// Output:
	// 3
	// true
}

func ExampleObject_Execute() {
	b := batch.New("fatal", false)
	defer b.Close()

	if b.Execute(context.Background(), "echo", "building") != batch.OK {
		fmt.Println("build step failed, continuing")
	}
	fmt.Println("done")
	// Output: done
}

func ExampleRun_Sink() {
	b := batch.New("fatal", false)
	defer b.Close()

	var lines []string
	b.Cmd().Sink(&lines).Execute(context.Background(), "echo", "hello world")
	fmt.Println(lines[0])
	// Output: hello world
}

func ExampleObject_DeletePath() {
	b := batch.New("fatal", false)
	defer b.Close()

	fmt.Println(b.DeletePath("/no/such/path") == batch.OK)
	// Output: true
}

func ExampleObject_WriteHeader() {
	b := batch.New("prefix", "nightly-build")
	defer b.Close()

	// the second line carries the current local time
	b.WriteHeader(os.Stdout)
}
