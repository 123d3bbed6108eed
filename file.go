package jdom

import "os"

// LoadFile reads a file in full and parses its contents into the
// document, returning a View of the root value.
//
// A missing file surfaces the underlying os error, which satisfies
// errors.Is(err, fs.ErrNotExist).
func (d *Document) LoadFile(path string) (View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return View{}, err
	}
	return d.Parse(string(data))
}
