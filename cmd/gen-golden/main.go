package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdh"
)

// Regenerates the golden HTML fragments under testdata. Run from the
// repository root after an intentional output change, then review the
// diff before committing.
func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		goldenPath := strings.TrimSuffix(path, ".md") + ".golden"
		html := mdh.Convert(string(src))
		if err := os.WriteFile(goldenPath, []byte(html), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
