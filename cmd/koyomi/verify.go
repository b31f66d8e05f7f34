package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rabitt1ove/koyomi"
)

// verifyFromYear is the first year the rules agree with the official list.
// Substitute holidays began on 1973-04-12, but the rules apply them to all
// of 1973, so 1973-02-12 is a known mismatch.
const verifyFromYear = 1974

func cliVerify(ctx context.Context, csvPath string, fromYear, untilYear int, _ []string) error {
	client := &http.Client{Timeout: httpTimeout}

	official, err := loadOfficial(ctx, client, csvPath)
	if err != nil {
		return err
	}

	if fromYear < verifyFromYear {
		log.Printf("years before %d include known mismatches", verifyFromYear)
	}

	mismatches, err := compare(official, fromYear, untilYear)
	if err != nil {
		return err
	}
	if err := reportMismatches(os.Stdout, mismatches); err != nil {
		return err
	}

	log.Printf("checked %d-%d against %d official holidays", fromYear, untilYear, len(official))
	if len(mismatches) > 0 {
		return errors.Errorf("%d mismatches", len(mismatches))
	}
	return nil
}

// mismatch is a day the official list and the rules disagree on.
// Either name may be empty.
type mismatch struct {
	date     koyomi.Date
	official string
	computed string
}

func (m mismatch) String() string {
	return fmt.Sprintf("%s official=%q computed=%q", m.date, m.official, m.computed)
}

// compare walks every day of the years [fromYear, untilYear] and reports the
// days whose holiday status differs. Names are not compared: the official
// list calls both 振替休日 and 国民の休日 "休日".
func compare(official []officialHoliday, fromYear, untilYear int) ([]mismatch, error) {
	cal, err := koyomi.Build().From(strconv.Itoa(fromYear)).Until(strconv.Itoa(untilYear)).Finalize()
	if err != nil {
		return nil, errors.Wrap(err, "building calendar")
	}

	want := make(map[koyomi.Date]string, len(official))
	for _, h := range official {
		want[h.date] = h.name
	}

	var result []mismatch
	for d := range cal.All() {
		name, ok := koyomi.HolidayOf(d)
		officialName, officialOK := want[d]
		if ok != officialOK {
			result = append(result, mismatch{date: d, official: officialName, computed: name})
		}
	}
	return result, nil
}

func reportMismatches(w io.Writer, mismatches []mismatch) error {
	for _, m := range mismatches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}
