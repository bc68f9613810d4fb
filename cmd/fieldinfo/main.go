package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"

	"github.com/jlavallee/chrono"
	"github.com/jlavallee/chrono/internal/encode"
)

func main() {
	timeArg := flag.String("time", "", "Instant to inspect, as RFC 3339 or epoch milliseconds (default: now)")
	localeArg := flag.String("locale", "", "BCP 47 locale for field text, e.g. de or fr-FR (default: English)")
	packArg := flag.String("pack", "", "Also write the packed 9-byte stamp of the instant to this file")

	flag.Parse()

	instant, err := parseInstant(*timeArg)
	if err != nil {
		log.Fatal(err)
	}

	locale := language.Und
	if len(*localeArg) > 0 {
		locale, err = language.Parse(*localeArg)
		if err != nil {
			log.Fatalf("invalid locale '%s': %v", *localeArg, err)
		}
	}

	fmt.Printf("instant %d (%s)\n", instant.Millis(), instant.Time().Format(time.RFC3339Nano))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value", "Text", "Short", "Min", "Max", "Leap", "Remainder"})

	for _, fieldType := range chrono.FieldTypes() {
		prop, err := instant.Property(fieldType)
		if err != nil {
			log.Fatal(err)
		}

		t.AppendRow(table.Row{
			prop.Name(),
			prop.Value(),
			prop.Text(locale),
			prop.ShortText(locale),
			prop.MinimumValue(),
			prop.MaximumValue(),
			prop.IsLeap(),
			remainderLabel(prop),
		})
	}

	t.Render()

	if len(*packArg) > 0 {
		if err := writeStamp(*packArg, instant.Millis()); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("wrote packed stamp to %s\n", *packArg)
	}
}

func parseInstant(arg string) (chrono.Instant, error) {
	if len(arg) == 0 {
		return chrono.FromTime(time.Now()), nil
	}

	if millis, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return chrono.NewInstant(millis), nil
	}

	parsed, err := time.Parse(time.RFC3339, arg)
	if err != nil {
		return chrono.Instant{}, fmt.Errorf("could not parse time '%s': %w", arg, err)
	}

	return chrono.FromTime(parsed), nil
}

func remainderLabel(prop chrono.Property) string {
	unit := prop.DurationUnit()
	if !unit.IsSupported() {
		return "-"
	}

	return fmt.Sprintf("%dms of %s", prop.Remainder(), unit.Name())
}

func writeStamp(path string, millis int64) error {
	stamp, err := encode.AsStamp(millis)
	if err != nil {
		return fmt.Errorf("could not build stamp: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("could not open output file: %w", err)
	}
	defer f.Close()

	if _, err := stamp.WriteTo(f); err != nil {
		return fmt.Errorf("could not write stamp: %w", err)
	}

	return nil
}
