package schedule

import (
	"fmt"
	"time"
)

// Slovak display names used in notification messages, matching sk-SK locale
// output.
var skWeekdays = [...]string{
	"nedeľa", "pondelok", "utorok", "streda", "štvrtok", "piatok", "sobota",
}

var skMonthsGenitive = [...]string{
	"januára", "februára", "marca", "apríla", "mája", "júna",
	"júla", "augusta", "septembra", "októbra", "novembra", "decembra",
}

func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDate renders a long Slovak date, e.g. "pondelok 7. septembra 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d. %s %d",
		skWeekdays[t.Weekday()],
		t.Day(),
		skMonthsGenitive[t.Month()-1],
		t.Year(),
	)
}
