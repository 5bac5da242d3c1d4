//go:build ignore

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var binaries = []string{"swapdemo", "staticloop"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	task := os.Args[1]
	args := os.Args[2:]

	switch task {
	case "build":
		for _, bin := range binaries {
			run("go", "build", "-o", filepath.Join("bin", bin), "./cmd/"+bin)
		}
	case "test":
		run("go", "test", "-v", "./...")
	case "test-coverage":
		run("go", "test", "-coverprofile=coverage.out", "./...")
		run("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
	case "install":
		for _, bin := range binaries {
			run("go", "install", "./cmd/"+bin)
		}
	case "fmt":
		run("go", "fmt", "./...")
	case "lint":
		run("golangci-lint", "run")
	case "clean":
		clean()
	case "demo":
		// args go to both programs, so only the shared flags (--config,
		// -o, -v, --log-json) are accepted here. Both print without a
		// trailing newline.
		for _, bin := range binaries {
			fmt.Printf("%s: ", bin)
			run("go", append([]string{"run", "./cmd/" + bin}, args...)...)
			fmt.Println()
		}
	case "run":
		if len(args) == 0 {
			fmt.Println("Error: run needs a program name (swapdemo or staticloop)")
			os.Exit(1)
		}
		cmd := exec.Command("go", append([]string{"run", "./cmd/" + args[0]}, args[1:]...)...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		if err := cmd.Run(); err != nil {
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown task: %s\n\n", task)
		printUsage()
		os.Exit(1)
	}
}

func run(command string, args ...string) {
	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("Error: Command failed: %s %v\n", command, args)
		os.Exit(1)
	}
}

func clean() {
	dirs := []string{"bin", "coverage.out", "coverage.html"}
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			fmt.Printf("Warning: Failed to remove %s: %v\n", dir, err)
		}
	}
	fmt.Println("Cleaned build artifacts")
}

func printUsage() {
	exe := filepath.Base(os.Args[0])
	fmt.Printf("Usage: go run %s <task> [args...]\n\n", exe)
	fmt.Println("Available tasks:")
	fmt.Println("  build              - Build swapdemo and staticloop into bin/")
	fmt.Println("  test               - Run all tests")
	fmt.Println("  test-coverage      - Run tests with coverage report")
	fmt.Println("  install            - Install both binaries to $GOPATH/bin")
	fmt.Println("  fmt                - Format code")
	fmt.Println("  lint               - Run linter (requires golangci-lint)")
	fmt.Println("  clean              - Remove build artifacts")
	fmt.Println("  demo [flags...]    - Run both programs; only --config, -o, -v, --log-json apply to both")
	fmt.Println("  run <prog> [args]  - Run one program locally")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  go run %s build\n", exe)
	fmt.Printf("  go run %s demo -o json\n", exe)
	fmt.Printf("  go run %s run staticloop --start 5 -o markdown\n", exe)
}
