// Command koyomi prints Japanese calendars and holidays, exports them in the
// Cabinet Office CSV layout, and checks the holiday rules against the
// official list.
//
// Usage:
//
//	koyomi cal 2019-04
//	koyomi holidays -from 2018 -until 2019
//	koyomi export -out syukujitsu.csv -sjis 2018
//	koyomi verify -from 1974 -until 2019
package main

import (
	"context"
	"log"
	"os"

	"github.com/bobg/subcmd/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("koyomi: ")

	err := subcmd.Run(context.Background(), maincmd{}, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

type maincmd struct{}

func (maincmd) Subcmds() subcmd.Map {
	return subcmd.Commands(
		"cal", cliCal, "print every day of a calendar", subcmd.Params(
			"-from", subcmd.String, "", "first year or year-month",
			"-until", subcmd.String, "", "last year or year-month",
		),
		"holidays", cliHolidays, "print the holidays of a calendar", subcmd.Params(
			"-from", subcmd.String, "", "first year or year-month",
			"-until", subcmd.String, "", "last year or year-month",
		),
		"export", cliExport, "write holidays as CSV", subcmd.Params(
			"-out", subcmd.String, "syukujitsu.csv", "output file",
			"-sjis", subcmd.Bool, false, "encode as Shift_JIS",
			"-from", subcmd.String, "", "first year or year-month",
			"-until", subcmd.String, "", "last year or year-month",
		),
		"verify", cliVerify, "compare the holiday rules with the official list", subcmd.Params(
			"-csv", subcmd.String, "", "official CSV file (downloaded when empty)",
			"-from", subcmd.Int, verifyFromYear, "first year",
			"-until", subcmd.Int, 2019, "last year",
		),
	)
}
