package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/internal/argtree"
	"github.com/spf13/afero"
)

func main() {
	// Build an in-memory filesystem with a few option files
	fs := afero.NewMemMapFs()

	files := map[string]string{
		"base.txt":  "--verbose\n--name='John Smith'\n@extra.txt\n",
		"extra.txt": "--retries 3\n",
		"cycle.txt": "@cycle.txt\n",
	}

	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			fmt.Println("Error writing file:", err)
			os.Exit(1)
		}
	}

	expander := optfile.New(optfile.NewFsProvider(fs))

	fmt.Println("=== Basic Expansion ===")

	args := []string{"mytool", "@base.txt", "positional"}

	expanded, err := expander.ExpandArguments(args)
	if err != nil {
		fmt.Println("Error expanding arguments:", err)
		os.Exit(1)
	}

	fmt.Println("before:", args)
	fmt.Println("after: ", expanded)

	fmt.Println("\n=== Failure Handling ===")

	// Expansion stops at the first problem and returns no partial result
	if _, err := expander.ExpandArguments([]string{"@missing.txt"}); err != nil {
		fmt.Println("missing file:", err)
		fmt.Println("is ErrReadOptionFile:", errors.Is(err, optfile.ErrReadOptionFile))
	}

	if _, err := expander.ExpandArguments([]string{"@cycle.txt"}); err != nil {
		fmt.Println("cycle:", err)
	}

	fmt.Println("\n=== Custom Tokenizer ===")

	// Whitespace-only splitting, so quotes pass through untouched
	fieldsOnly := func(line string) ([]string, error) {
		return strings.Fields(line), nil
	}

	plain := optfile.New(optfile.NewFsProvider(fs), optfile.WithTokenizer(fieldsOnly))

	expanded, err = plain.ExpandArguments([]string{"@base.txt"})
	if err != nil {
		fmt.Println("Error expanding arguments:", err)
		os.Exit(1)
	}

	fmt.Println(expanded)

	fmt.Println("\n=== Expansion Tree ===")

	builder := argtree.NewBuilder(optfile.NewFsProvider(fs))
	root := builder.Build("example", []string{"mytool", "@base.txt", "@missing.txt"})

	if err := argtree.WriteText(os.Stdout, root, nil); err != nil {
		fmt.Println("Error writing tree:", err)
		os.Exit(1)
	}
}
