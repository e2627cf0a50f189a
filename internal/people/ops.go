package people

import (
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
)

// SortByBirthday stably sorts records by birthdate, oldest first. It fails
// without reordering anything if any birthday does not parse.
func SortByBirthday(records []Person) error {
	type keyed struct {
		at     time.Time
		person Person
	}

	keys := make([]keyed, len(records))
	for i, p := range records {
		at, err := p.Birthday.Time()
		if err != nil {
			return &BirthdayError{Index: i, Person: p, Err: err}
		}
		keys[i] = keyed{at: at, person: p}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		return a.at.Compare(b.at)
	})
	for i, k := range keys {
		records[i] = k.person
	}
	return nil
}

// Add appends p and re-sorts the registry by birthdate.
func Add(records []Person, p Person) ([]Person, error) {
	records = append(records, p)
	if err := SortByBirthday(records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddToFile loads the registry at path (empty if absent), adds p, and writes
// the whole registry back. The file is not touched if any step before the
// write fails.
func AddToFile(path string, p Person) ([]Person, error) {
	records, err := LoadOrEmpty(path)
	if err != nil {
		return nil, err
	}

	records, err = Add(records, p)
	if err != nil {
		return nil, err
	}

	if err := Save(path, records); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"path": path, "surname": p.Surname}).Debug("added record")
	return records, nil
}

// SelectBySurname returns the records whose surname equals surname exactly,
// in registry order. The result is never nil.
func SelectBySurname(records []Person, surname string) []Person {
	result := []Person{}
	for _, p := range records {
		if p.Surname == surname {
			result = append(result, p)
		}
	}
	return result
}
