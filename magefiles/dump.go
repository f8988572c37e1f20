//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

// Dump prints the text of every PDF under docs/ to stdout.
func Dump() error {
	bin := binPath()
	pdfs, err := filepath.Glob(filepath.Join(docsDir, "*.pdf"))
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		fmt.Printf("[dump] No PDFs in %s/.\n", docsDir)
		return nil
	}
	return sh.RunV(bin, append([]string{"dump"}, pdfs...)...)
}

// Inspect prints the page count of every PDF under docs/.
func Inspect() error {
	bin := binPath()
	pdfs, err := filepath.Glob(filepath.Join(docsDir, "*.pdf"))
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		fmt.Printf("[inspect] No PDFs in %s/.\n", docsDir)
		return nil
	}
	return sh.RunV(bin, append([]string{"inspect"}, pdfs...)...)
}
