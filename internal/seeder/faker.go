package seeder

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// maxUniqueRetries is how many duplicate draws UniqueInt tolerates before
// reporting the pool as exhausted.
const maxUniqueRetries = 1000

// ErrEmptyIDList is returned when a foreign key has to be drawn from a parent
// list that holds no identifiers.
var ErrEmptyIDList = errors.New("parent id list is empty")

type intRange struct{ min, max int }

// DataGenerator is the fake-data source used by every table step.
type DataGenerator struct {
	fake   *gofakeit.Faker
	unique map[intRange]map[int]struct{}
	now    time.Time
}

// NewDataGenerator returns a generator seeded with seed, or with a random
// seed when seed is 0.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		fake:   gofakeit.New(seed),
		unique: make(map[intRange]map[int]struct{}),
		now:    time.Now().UTC(),
	}
}

// UniqueInt draws an integer in [min, max] that no earlier UniqueInt call
// with the same range has returned.
func (g *DataGenerator) UniqueInt(min, max int) (int, error) {
	r := intRange{min, max}
	used, ok := g.unique[r]
	if !ok {
		used = make(map[int]struct{})
		g.unique[r] = used
	}
	for i := 0; i < maxUniqueRetries; i++ {
		n := g.fake.Number(min, max)
		if _, taken := used[n]; taken {
			continue
		}
		used[n] = struct{}{}
		return n, nil
	}
	return 0, fmt.Errorf("%w: range [%d, %d] after %d retries", ErrUniquenessExhausted, min, max, maxUniqueRetries)
}

// Pick returns a uniformly chosen element of ids.
func (g *DataGenerator) Pick(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDList
	}
	return ids[g.fake.Number(0, len(ids)-1)], nil
}

func (g *DataGenerator) Choice(options ...string) string {
	return g.fake.RandomString(options)
}

func (g *DataGenerator) IntBetween(min, max int) int {
	return g.fake.Number(min, max)
}

// Money returns an amount in [min, max] rounded to cents.
func (g *DataGenerator) Money(min, max float64) float64 {
	return decimal.NewFromFloat(g.fake.Float64Range(min, max)).Round(2).InexactFloat64()
}

func (g *DataGenerator) Bool() bool { return g.fake.Bool() }

func (g *DataGenerator) BuildingNumber() string { return g.fake.StreetNumber() }
func (g *DataGenerator) StreetName() string     { return g.fake.StreetName() }
func (g *DataGenerator) City() string           { return g.fake.City() }
func (g *DataGenerator) Postcode() string       { return g.fake.Zip() }
func (g *DataGenerator) Country() string        { return g.fake.Country() }
func (g *DataGenerator) Email() string          { return g.fake.Email() }
func (g *DataGenerator) FirstName() string      { return g.fake.FirstName() }
func (g *DataGenerator) LastName() string       { return g.fake.LastName() }
func (g *DataGenerator) Company() string        { return g.fake.Company() }
func (g *DataGenerator) Word() string           { return g.fake.Noun() }
func (g *DataGenerator) CarMaker() string       { return g.fake.CarMaker() }
func (g *DataGenerator) CarModel() string       { return g.fake.CarModel() }
func (g *DataGenerator) CarType() string        { return g.fake.CarType() }

// Phone fits the 15 character phone columns.
func (g *DataGenerator) Phone() string {
	return Truncate(g.fake.PhoneFormatted(), 15)
}

// Job fits the 20 character position column.
func (g *DataGenerator) Job() string {
	return Truncate(g.fake.JobTitle(), 20)
}

func (g *DataGenerator) Address() string {
	return g.fake.Address().Address
}

func (g *DataGenerator) Gender() string {
	return g.Choice("M", "F", "Other")
}

func (g *DataGenerator) Year() int {
	return g.fake.Number(1990, g.now.Year())
}

// TimeOfDay returns a wall clock time formatted as HH:MM:SS.
func (g *DataGenerator) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d:%02d", g.fake.Number(0, 23), g.fake.Number(0, 59), g.fake.Number(0, 59))
}

// DateOfBirth returns a birth date for someone between 18 and 80 years old.
func (g *DataGenerator) DateOfBirth() time.Time {
	return g.dateBetween(g.now.AddDate(-80, 0, 0), g.now.AddDate(-18, 0, 0))
}

// DateThisDecade returns a date between the start of the current decade and
// today.
func (g *DataGenerator) DateThisDecade() time.Time {
	year := g.now.Year() - g.now.Year()%10
	return g.dateBetween(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), g.now)
}

// DateLastTwoYears returns a date between two years ago and today.
func (g *DataGenerator) DateLastTwoYears() time.Time {
	return g.dateBetween(g.now.AddDate(-2, 0, 0), g.now)
}

func (g *DataGenerator) dateBetween(start, end time.Time) time.Time {
	return civilDate(g.fake.DateRange(start, end))
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
