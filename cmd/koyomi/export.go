package main

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/koyomi"
)

// csvHeader is the header row of the Cabinet Office holiday CSV.
var csvHeader = []string{"国民の祝日・休日月日", "国民の祝日・休日名称"}

func cliExport(_ context.Context, out string, sjis bool, from, until string, args []string) error {
	cal, err := buildCalendar(from, until, args)
	if err != nil {
		return err
	}
	holidays := koyomi.HolidaysIn(cal)

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer f.Close()

	if err := writeCSV(f, holidays, sjis); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", out)
	}

	log.Printf("wrote %d holidays from %s to %s to %s", len(holidays), cal.From(), cal.Until(), out)
	return nil
}

// writeCSV writes holidays in the Cabinet Office layout: "2024/1/1,元日"
// rows with CRLF line endings, optionally encoded as Shift_JIS.
func writeCSV(w io.Writer, holidays []koyomi.Holiday, sjis bool) error {
	var enc io.WriteCloser
	if sjis {
		enc = transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		w = enc
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, h := range holidays {
		if err := cw.Write([]string{h.Date.Format("2006/1/2"), h.Name}); err != nil {
			return errors.Wrapf(err, "writing %s", h.Date.Format("2006-01-02"))
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "flushing CSV")
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "encoding Shift_JIS")
		}
	}
	return nil
}
