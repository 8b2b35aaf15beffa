package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// PageRange selects the pages to extract, 1-based and inclusive.
// The zero value means every page.
type PageRange struct {
	Start int
	End   int
}

var AllPages = PageRange{}

// Extract opens the PDF at path and returns the plain text of the
// selected pages.
func Extract(path string, pages PageRange) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return PlainText(r, pages)
}

// PlainText walks the selected pages and concatenates their text.
func PlainText(r *pdf.Reader, pages PageRange) (string, error) {
	if pages == AllPages {
		pages.Start = 1
		pages.End = r.NumPage()
	}
	if pages.Start < 1 || pages.End > r.NumPage() || pages.Start > pages.End {
		return "", fmt.Errorf("page range %d-%d outside document (1-%d)", pages.Start, pages.End, r.NumPage())
	}

	var buf bytes.Buffer
	fonts := make(map[string]*pdf.Font)
	for i := pages.Start; i <= pages.End; i++ {
		p := r.Page(i)
		for _, name := range p.Fonts() { // cache fonts so we don't continually parse charmap
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				logrus.Debugf("font: %s %s", name, f.BaseFont())
				fonts[name] = &f
			}
		}

		text, err := pageText(p, fonts)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

// pageText interprets a page's content stream and collects the text
// shown by the Tj/TJ/'/" operators. The interpreter panics on malformed
// streams, so recover and surface the panic as an error.
func pageText(p pdf.Page, fonts map[string]*pdf.Font) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = errors.New(fmt.Sprint(r))
		}
	}()

	var enc pdf.TextEncoding = &nopEncoder{}

	var text bytes.Buffer
	showText := func(s string) {
		for _, ch := range enc.Decode(s) {
			text.WriteRune(ch)
		}
	}

	pdf.Interpret(p.V.Key("Contents"), func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		default:
			return
		case "T*": // move to start of next line
			showText("\n")
		case "Tf": // set text font and size
			if len(args) != 2 {
				panic("bad Tf")
			}
			if font, ok := fonts[args[0].Name()]; ok {
				enc = font.Encoder()
			} else {
				enc = &nopEncoder{}
			}
		case "\"": // set spacing, move to next line, and show text
			if len(args) != 3 {
				logrus.Warnf("bad \" operator")
				return
			}
			showText("\n")
			showText(args[2].RawString())
		case "'": // move to next line and show text
			if len(args) != 1 {
				logrus.Warnf("bad ' operator")
				return
			}
			showText("\n")
			showText(args[0].RawString())
		case "Tj": // show text
			if len(args) != 1 {
				logrus.Warnf("bad Tj operator")
				return
			}
			showText(args[0].RawString())
		case "TJ": // show text, allowing individual glyph positioning
			v := args[0]
			for i := 0; i < v.Len(); i++ {
				x := v.Index(i)
				if x.Kind() == pdf.String {
					showText(x.RawString())
				}
			}
		}
	})
	return text.String(), nil
}

type nopEncoder struct{}

func (e *nopEncoder) Decode(raw string) string { return raw }

// PageCount reports how many pages the PDF at path has without
// extracting any text.
func PageCount(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()
	if fi, err := os.Stat(path); err == nil {
		logrus.Debugf("%s: %d bytes, %d pages", path, fi.Size(), r.NumPage())
	}
	return r.NumPage(), nil
}
