package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// DefaultCode is the fallback for any unsupported number or time code.
const DefaultCode = "en-US"

//go:embed data/number/*.json data/time/*.json
var tableFS embed.FS

// NumberLocale is a d3-format locale definition.
type NumberLocale struct {
	Decimal   string   `json:"decimal" yaml:"decimal"`
	Thousands string   `json:"thousands" yaml:"thousands"`
	Grouping  []int    `json:"grouping" yaml:"grouping"`
	Currency  []string `json:"currency" yaml:"currency"`
	Percent   string   `json:"percent,omitempty" yaml:"percent,omitempty"`
}

// CurrencyAffixes returns the currency prefix and suffix.
func (n NumberLocale) CurrencyAffixes() (prefix, suffix string) {
	if len(n.Currency) > 0 {
		prefix = n.Currency[0]
	}

	if len(n.Currency) > 1 {
		suffix = n.Currency[1]
	}

	return prefix, suffix
}

// TimeLocale is a d3-time-format locale definition.
type TimeLocale struct {
	DateTime    string   `json:"dateTime" yaml:"dateTime"`
	Date        string   `json:"date" yaml:"date"`
	Time        string   `json:"time" yaml:"time"`
	Periods     []string `json:"periods" yaml:"periods"`
	Days        []string `json:"days" yaml:"days"`
	ShortDays   []string `json:"shortDays" yaml:"shortDays"`
	Months      []string `json:"months" yaml:"months"`
	ShortMonths []string `json:"shortMonths" yaml:"shortMonths"`
}

// Locale is a resolved pair of number and time definitions.
type Locale struct {
	Number NumberLocale `json:"number"`
	Time   TimeLocale   `json:"time"`
}

type tables struct {
	number map[string]NumberLocale
	time   map[string]TimeLocale
}

var loadTables = sync.OnceValue(func() tables {
	t := tables{
		number: map[string]NumberLocale{},
		time:   map[string]TimeLocale{},
	}

	mustLoad(tableFS, "data/number", t.number)
	mustLoad(tableFS, "data/time", t.time)

	return t
})

// mustLoad panics on malformed embedded data, which can only be a build defect.
func mustLoad[T any](fsys fs.FS, dir string, into map[string]T) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("locale: read %s: %v", dir, err))
	}

	for _, e := range entries {
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			panic(fmt.Sprintf("locale: read %s: %v", e.Name(), err))
		}

		var def T
		if err := json.Unmarshal(raw, &def); err != nil {
			panic(fmt.Sprintf("locale: parse %s: %v", e.Name(), err))
		}

		into[strings.TrimSuffix(e.Name(), ".json")] = def
	}
}

// Number returns the number table for code and whether the code is supported.
func Number(code string) (NumberLocale, bool) {
	n, ok := loadTables().number[code]
	return n, ok
}

// Time returns the time table for code and whether the code is supported.
func Time(code string) (TimeLocale, bool) {
	t, ok := loadTables().time[code]
	return t, ok
}

// NumberCodes lists the supported number codes in sorted order.
func NumberCodes() []string {
	return sortedKeys(loadTables().number)
}

// TimeCodes lists the supported time codes in sorted order.
func TimeCodes() []string {
	return sortedKeys(loadTables().time)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Get resolves s into concrete number and time definitions. It never fails:
// each unsupported slot falls back to en-US independently.
func Get(s Spec) Locale {
	if s.Code != "" {
		return Locale{
			Number: numberOrDefault(s.Code),
			Time:   timeOrDefault(s.Code),
		}
	}

	var loc Locale

	switch {
	case s.Number == nil:
		loc.Number = numberOrDefault(DefaultCode)
	case s.Number.Definition != nil:
		loc.Number = *s.Number.Definition
	default:
		loc.Number = numberOrDefault(s.Number.Code)
	}

	switch {
	case s.Time == nil:
		loc.Time = timeOrDefault(DefaultCode)
	case s.Time.Definition != nil:
		loc.Time = *s.Time.Definition
	default:
		loc.Time = timeOrDefault(s.Time.Code)
	}

	return loc
}

// Fallbacks lists the slots of s ("number", "time") that resolve to en-US
// because their code is unsupported.
func Fallbacks(s Spec) []string {
	numberCode, timeCode := s.Code, s.Code
	if s.Code == "" {
		if s.Number != nil && s.Number.Definition == nil {
			numberCode = s.Number.Code
		}

		if s.Time != nil && s.Time.Definition == nil {
			timeCode = s.Time.Code
		}
	}

	var out []string

	if _, ok := Number(numberCode); numberCode != "" && !ok {
		out = append(out, "number")
	}

	if _, ok := Time(timeCode); timeCode != "" && !ok {
		out = append(out, "time")
	}

	return out
}

func numberOrDefault(code string) NumberLocale {
	if n, ok := Number(code); ok {
		return n
	}

	n, _ := Number(DefaultCode)

	return n
}

func timeOrDefault(code string) TimeLocale {
	if t, ok := Time(code); ok {
		return t
	}

	t, _ := Time(DefaultCode)

	return t
}
