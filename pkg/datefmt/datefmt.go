package datefmt

import (
	"fmt"
	"strings"
	"time"

	"nordweb/pkg/tz"
)

var danishMonths = [...]string{
	"januar", "februar", "marts", "april", "maj", "juni",
	"juli", "august", "september", "oktober", "november", "december",
}

// FormatDate renders t as a long date in Copenhagen time. lang is a BCP 47
// tag: "da" and its regional variants give "2. januar 2025", anything else
// gives "January 2, 2025".
func FormatDate(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(tz.Copenhagen)
	if isDanish(lang) {
		return fmt.Sprintf("%d. %s %d", t.Day(), danishMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}

func isDanish(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	return lang == "da" || strings.HasPrefix(lang, "da-") || strings.HasPrefix(lang, "da_")
}
