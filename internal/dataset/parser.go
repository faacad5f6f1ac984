package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// oddsColumns maps each market target to the CSV columns that may carry its
// price, in preference order. Bet365 closing prices come first, market
// averages as fallback, matching the column layout football-data.co.uk has
// used across seasons.
var oddsColumns = map[string][]string{
	"H":         {"B365H", "AvgH", "BbAvH"},
	"D":         {"B365D", "AvgD", "BbAvD"},
	"A":         {"B365A", "AvgA", "BbAvA"},
	"over_2.5":  {"B365>2.5", "Avg>2.5", "BbAv>2.5"},
	"under_2.5": {"B365<2.5", "Avg<2.5", "BbAv<2.5"},
}

var dateLayouts = []string{"02/01/2006", "02/01/06"}

// ParseSeason reads one season CSV into matches. Rows with an unparsable
// score are skipped rather than failing the whole file, since the source
// files occasionally carry trailing junk rows.
func ParseSeason(r io.Reader, season string) ([]Match, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Div", "Date", "HomeTeam", "AwayTeam", "FTHG", "FTAG"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("season %s: missing column %q", season, required)
		}
	}

	var matches []Match
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		match, ok := parseRow(record, index, season)
		if !ok {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func parseRow(record []string, index map[string]int, season string) (Match, bool) {
	homeGoals, err1 := strconv.Atoi(field(record, index, "FTHG"))
	awayGoals, err2 := strconv.Atoi(field(record, index, "FTAG"))
	if err1 != nil || err2 != nil {
		return Match{}, false
	}

	date, ok := parseDate(field(record, index, "Date"))
	if !ok {
		return Match{}, false
	}

	match := Match{
		Division:  field(record, index, "Div"),
		Season:    season,
		Date:      date,
		HomeTeam:  field(record, index, "HomeTeam"),
		AwayTeam:  field(record, index, "AwayTeam"),
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Odds:      make(map[string]decimal.Decimal),
	}
	if match.HomeTeam == "" || match.AwayTeam == "" {
		return Match{}, false
	}

	for target, columns := range oddsColumns {
		for _, column := range columns {
			raw := field(record, index, column)
			if raw == "" {
				continue
			}
			price, err := decimal.NewFromString(raw)
			if err != nil || price.LessThanOrEqual(decimal.NewFromInt(1)) {
				continue
			}
			match.Odds[target] = price
			break
		}
	}
	return match, true
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
