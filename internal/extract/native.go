// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Native extracts text in-process with github.com/ledongthuc/pdf.
type Native struct {
	// Password supplies the user password for encrypted documents. Nil or
	// an empty result opens the file without a password.
	Password PasswordFunc
}

// Pages opens the PDF, reads every page in order, and closes the file
// before returning. An error on any page fails the whole document.
func (n *Native) Pages(path string) ([]string, error) {
	return guard(func() ([]string, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, err
		}

		reader, err := n.newReader(f, info.Size(), path)
		if err != nil {
			return nil, err
		}

		numPages := reader.NumPage()
		pages := make([]string, 0, numPages)
		for i := 1; i <= numPages; i++ {
			page := reader.Page(i)
			if page.V.IsNull() {
				pages = append(pages, "")
				continue
			}
			text, err := page.GetPlainText(nil)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i, err)
			}
			pages = append(pages, text)
		}
		return pages, nil
	})
}

func (n *Native) newReader(f io.ReaderAt, size int64, path string) (*pdflib.Reader, error) {
	var password string
	if n.Password != nil {
		password = n.Password(path)
	}
	if password == "" {
		return pdflib.NewReader(f, size)
	}

	// The reader calls pw until it returns "" or the password matches.
	tried := false
	return pdflib.NewReaderEncrypted(f, size, func() string {
		if tried {
			return ""
		}
		tried = true
		return password
	})
}
