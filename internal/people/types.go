package people

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// birthdayLayout is D.M.YYYY; day and month may or may not be zero-padded.
const birthdayLayout = "2.1.2006"

// ErrInvalidBirthday is wrapped by every birthday parsing failure.
var ErrInvalidBirthday = errors.New("invalid birthday")

// Birthday is a day, month, year triple kept as the decimal text it was
// entered with.
type Birthday []string

// ParseBirthday splits "D.M.YYYY" into its three components and checks that
// they form a real calendar date.
func ParseBirthday(s string) (Birthday, error) {
	b := Birthday(strings.Split(strings.TrimSpace(s), "."))
	if _, err := b.Time(); err != nil {
		return nil, err
	}
	return b, nil
}

// String joins the components with ".".
func (b Birthday) String() string {
	return strings.Join(b, ".")
}

// Time parses the birthday as a calendar date.
func (b Birthday) Time() (time.Time, error) {
	if len(b) != 3 {
		return time.Time{}, fmt.Errorf("%w %q: expected day.month.year", ErrInvalidBirthday, b.String())
	}
	t, err := time.Parse(birthdayLayout, b.String())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected D.M.YYYY", ErrInvalidBirthday, b.String())
	}
	return t, nil
}

// Person is one registry record. A nil Zodiac means the field is absent from
// the file; Extra holds any other properties so they survive a rewrite.
type Person struct {
	Surname  string                     `json:"surname" yaml:"surname"`
	Name     string                     `json:"name" yaml:"name"`
	Zodiac   *string                    `json:"zodiac,omitempty" yaml:"zodiac,omitempty"`
	Birthday Birthday                   `json:"birthday" yaml:"birthday"`
	Extra    map[string]json.RawMessage `json:"-" yaml:"-"`
}

// ZodiacSign returns the zodiac text, or "" when the field is absent.
func (p Person) ZodiacSign() string {
	if p.Zodiac == nil {
		return ""
	}
	return *p.Zodiac
}

// NewPerson builds a record from command-line text, rejecting an empty
// surname or name and a malformed birthday.
func NewPerson(surname, name, zodiac, birthday string) (Person, error) {
	if strings.TrimSpace(surname) == "" {
		return Person{}, errors.New("surname must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return Person{}, errors.New("name must not be empty")
	}
	b, err := ParseBirthday(birthday)
	if err != nil {
		return Person{}, err
	}
	return Person{
		Surname:  surname,
		Name:     name,
		Zodiac:   &zodiac,
		Birthday: b,
	}, nil
}

// BirthdayError reports a stored record whose birthday cannot be parsed.
type BirthdayError struct {
	Index  int // zero-based position in the registry
	Person Person
	Err    error
}

func (e *BirthdayError) Error() string {
	return fmt.Sprintf("record %d (%s %s): %v", e.Index+1, e.Person.Surname, e.Person.Name, e.Err)
}

func (e *BirthdayError) Unwrap() error { return e.Err }
