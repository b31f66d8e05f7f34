package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/rabitt1ove/koyomi"
)

func cliCal(_ context.Context, from, until string, args []string) error {
	cal, err := buildCalendar(from, until, args)
	if err != nil {
		return err
	}
	return writeDays(os.Stdout, cal, false)
}

func cliHolidays(_ context.Context, from, until string, args []string) error {
	cal, err := buildCalendar(from, until, args)
	if err != nil {
		return err
	}
	return writeDays(os.Stdout, cal, true)
}

// buildCalendar resolves either a single positional token or the -from and
// -until flags.
func buildCalendar(from, until string, args []string) (*koyomi.Calendar, error) {
	spec := koyomi.Build().From(from).Until(until)
	switch len(args) {
	case 0:
	case 1:
		spec = spec.Single(args[0])
	default:
		return nil, errors.New("usage: koyomi CMD [-from TOK -until TOK] [TOK]")
	}
	cal, err := spec.Finalize()
	if err != nil {
		return nil, errors.Wrap(err, "building calendar")
	}
	return cal, nil
}

func writeDays(w io.Writer, cal *koyomi.Calendar, holidaysOnly bool) error {
	for d := range cal.All() {
		name, ok := d.Holiday()
		if holidaysOnly && !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, formatDay(d, name)); err != nil {
			return errors.Wrap(err, "writing calendar")
		}
	}
	return nil
}

// formatDay renders a day as "2019-04-30 (火) 平成31年 国民の休日".
func formatDay(d koyomi.Date, holiday string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", d, d.JapaneseWeekday())
	if era, ok := d.Era(); ok {
		b.WriteString(" " + era.Format())
	}
	if holiday != "" {
		b.WriteString(" " + holiday)
	}
	return b.String()
}
