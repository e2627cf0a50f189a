package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/peoplereg/people/internal/people"
	"golang.org/x/text/width"
)

type align int

const (
	alignLeft align = iota
	alignRight
	alignCenter
)

type column struct {
	width int
	align align
}

// Index, surname, name, zodiac, birthday.
var columns = []column{
	{4, alignRight},
	{30, alignLeft},
	{30, alignLeft},
	{20, alignLeft},
	{20, alignRight},
}

// Table writes records as a bordered table, or the localized placeholder when
// there are none.
func Table(w io.Writer, records []people.Person, lang string) error {
	p := newPrinter(lang)

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, p.Sprintf(msgEmpty))
		return err
	}

	line := borderLine()
	headers := []string{
		p.Sprintf(msgIndex),
		p.Sprintf(msgSurname),
		p.Sprintf(msgName),
		p.Sprintf(msgZodiac),
		p.Sprintf(msgBirthday),
	}
	for i, c := range columns {
		headers[i] = pad(headers[i], c.width, alignCenter)
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString(row(headers))
	b.WriteString(line)
	for i, rec := range records {
		cells := []string{
			strconv.Itoa(i + 1),
			rec.Surname,
			rec.Name,
			rec.ZodiacSign(),
			rec.Birthday.String(),
		}
		for j, c := range columns {
			cells[j] = pad(cells[j], c.width, c.align)
		}
		b.WriteString(row(cells))
	}
	b.WriteString(line)

	_, err := io.WriteString(w, b.String())
	return err
}

func borderLine() string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strings.Repeat("-", c.width)
	}
	return "+-" + strings.Join(parts, "-+-") + "-+\n"
}

func row(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

// pad fills s with spaces up to n terminal columns. Longer values are left
// intact. Centered text puts the odd space on the right.
func pad(s string, n int, a align) string {
	gap := n - displayWidth(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case alignRight:
		return strings.Repeat(" ", gap) + s
	case alignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// displayWidth counts terminal columns: wide and fullwidth runes take two,
// combining marks take none.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
		case isWide(r):
			n += 2
		default:
			n++
		}
	}
	return n
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
