package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"wordslurp/internal/pdf"
	"wordslurp/internal/wordbag"
)

var (
	app  = kingpin.New("topwords", "consume a pdf file and report its most frequent meaningful words")
	args = struct {
		input      *string
		num        *int
		minLen     *int
		mode       *string
		keepDigits *bool
		start      *int
		end        *int
		verbose    *bool
	}{
		input:      app.Flag("in", "input file to process").Short('i').Required().String(),
		num:        app.Flag("num", "number of words to report (1-1000)").Short('n').Default("100").Int(),
		minLen:     app.Flag("min-len", "minimum word length after cleaning").Default("2").Int(),
		mode:       app.Flag("mode", "word reduction: lemma, stem, or raw").Short('m').Default("lemma").Enum("lemma", "stem", "raw"),
		keepDigits: app.Flag("keep-digits", "keep digit runs as words").Bool(),
		start:      app.Flag("start", "first page to read (0 = from the beginning)").Int(),
		end:        app.Flag("end", "last page to read (0 = to the end)").Int(),
		verbose:    app.Flag("verbose", "enable debug logging").Short('v').Bool(),
	}
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *args.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Infof("input: %s", *args.input)

	if *args.num < 1 || *args.num > 1000 {
		logrus.Fatalf("num must be between 1 and 1000, got %d", *args.num)
	}

	pages := pdf.PageRange{Start: *args.start, End: *args.end}
	if pages.End > 0 && pages.Start == 0 {
		pages.Start = 1
	}
	if pages.Start > 0 && pages.End == 0 {
		last, err := pdf.PageCount(*args.input)
		if err != nil {
			logrus.Fatal(err)
		}
		pages.End = last
	}

	raw, err := pdf.Extract(*args.input, pages)
	if err != nil {
		logrus.Fatal(err)
	}

	bag, err := wordbag.New(wordbag.Options{
		TopN:       *args.num,
		MinLen:     *args.minLen,
		KeepDigits: *args.keepDigits,
		Mode:       wordbag.Mode(*args.mode),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	words, err := bag.Process(raw)
	if err != nil {
		logrus.Fatal(err)
	}
	if len(words) == 0 {
		fmt.Println("no meaningful words found")
		return
	}
	fmt.Println(render(words))
}

func render(words []wordbag.WordCount) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Word", "Count"})
	for i, w := range words {
		tw.AppendRow(table.Row{i + 1, w.Word, w.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
