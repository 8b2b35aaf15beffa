package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"wordslurp/internal/pdf"
	"wordslurp/internal/summary"
)

var (
	app  = kingpin.New("summarize", "consume a pdf file and create a summary")
	args = struct {
		input  *string
		sumLen *int
	}{
		input:  app.Flag("in", "input file to process").Short('i').Required().String(),
		sumLen: app.Flag("sumlen", "number of summary sentences to return").Short('n').Default("5").Int(),
	}
	lexRank  = app.Command("lexrank", "use LexRank to summarize")
	textRank = app.Command("textrank", "use TextRank to summarize")
	textArgs = struct {
		method *string
	}{
		method: textRank.Flag("method", "`qty` for quantity or `rel` for relationship").Short('m').Default("qty").Enum("qty", "rel"),
	}
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	logrus.Infof("input: %s", *args.input)

	var method summary.Method
	switch cmd {
	case lexRank.FullCommand():
		method = summary.LexRank
	case textRank.FullCommand():
		method = summary.Method(*textArgs.method)
	}

	raw, err := pdf.Extract(*args.input, pdf.AllPages)
	if err != nil {
		logrus.Fatal(err)
	}

	sum, err := summary.Summarize(raw, method, *args.sumLen)
	if err != nil {
		logrus.Fatal(err)
	}
	for i, s := range sum {
		fmt.Printf("[%d] %s\n", i+1, s)
	}
}
