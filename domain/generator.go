package domain

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// IDSpace is the number of distinct employee ids (five digits: 0..99999).
	IDSpace = 100000

	// maxIDDraws bounds the attempts to find an unused id for one record.
	maxIDDraws = 1000

	MinAge          = 18
	MaxAge          = 65
	HireWindowYears = 10

	minSalary = 30000
	maxSalary = 150000
)

// Generator creates batches of synthetic employees.
type Generator struct {
	provider Provider
	rnd      *rand.Rand
	now      func() time.Time
	log      *logrus.Entry
	newIDs   func(rnd *rand.Rand) *idSource
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for every non-provider value.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

// WithClock sets the function that defines "today" for date fields.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(log *logrus.Entry) Option {
	return func(g *Generator) { g.log = log }
}

// NewGenerator creates a Generator that takes names and addresses from provider.
func NewGenerator(provider Provider, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      time.Now,
		log:      nopLogger(),
		newIDs:   func(rnd *rand.Rand) *idSource { return newIDSource(rnd, IDSpace) },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns count employees with pairwise distinct ids.
// A zero count yields an empty batch.
func (g *Generator) Generate(count int) ([]Employee, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	if count > IDSpace {
		return nil, &GenerationError{Requested: count, Err: ErrIDSpaceExhausted}
	}

	today := dateOf(g.now())
	ids := g.newIDs(g.rnd)
	employees := make([]Employee, 0, count)

	g.log.WithFields(logrus.Fields{
		"count": count,
		"today": today.Format(time.DateOnly),
	}).Debug("generating employees")

	for i := range count {
		id, err := ids.next()
		if err != nil {
			return nil, &GenerationError{Generated: i, Requested: count, Err: err}
		}
		employees = append(employees, g.employee(id, today))
	}

	return employees, nil
}

func (g *Generator) employee(id int, today time.Time) Employee {
	gender := Genders[g.rnd.IntN(len(Genders))]
	firstName := g.firstName(gender)
	lastName := g.provider.LastName()
	addr := g.provider.Address()

	return Employee{
		ID:                    id,
		FirstName:             firstName,
		LastName:              lastName,
		DateOfBirth:           g.dateBetween(birthRange(today)),
		Gender:                gender,
		Email:                 email(firstName, lastName, g.provider.DomainName()),
		Phone:                 g.provider.PhoneNumber(),
		Address:               addr.Street,
		City:                  addr.City,
		State:                 addr.State,
		ZipCode:               addr.ZipCode,
		NationalID:            g.provider.NationalID(),
		BankAccount:           g.provider.BankAccount(),
		RoutingCode:           g.provider.RoutingCode(),
		DateOfHire:            g.dateBetween(yearsBefore(today, HireWindowYears), today),
		JobTitle:              g.provider.JobTitle(),
		Department:            Departments[g.rnd.IntN(len(Departments))],
		Salary:                g.salary(),
		EmergencyContactName:  g.provider.FullName(),
		EmergencyContactPhone: g.provider.PhoneNumber(),
	}
}

func (g *Generator) firstName(gender Gender) string {
	switch gender {
	case GenderMale:
		return g.provider.FirstNameMale()
	case GenderFemale:
		return g.provider.FirstNameFemale()
	default:
		return g.provider.FirstNameNeutral()
	}
}

func (g *Generator) salary() decimal.Decimal {
	v := minSalary + g.rnd.Float64()*(maxSalary-minSalary)
	return decimal.NewFromFloat(v).Round(2)
}

// dateBetween returns a uniformly chosen day in [from, to].
func (g *Generator) dateBetween(from, to time.Time) time.Time {
	days := int(to.Sub(from) / (24 * time.Hour))
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.rnd.IntN(days+1))
}

func email(firstName, lastName, domain string) string {
	return strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@" + domain
}

// birthRange returns the earliest and latest birth dates whose age on today
// falls within [MinAge, MaxAge].
func birthRange(today time.Time) (time.Time, time.Time) {
	earliest := yearsBefore(today, MaxAge+1).AddDate(0, 0, 1)
	latest := yearsBefore(today, MinAge)
	return earliest, latest
}

// AgeOn returns the age in whole years of someone born on birth, on day.
func AgeOn(birth, day time.Time) int {
	age := day.Year() - birth.Year()
	if day.Month() < birth.Month() || (day.Month() == birth.Month() && day.Day() < birth.Day()) {
		age--
	}
	return age
}

// yearsBefore moves t back n calendar years, turning Feb 29 into Feb 28
// when the target year has no leap day.
func yearsBefore(t time.Time, n int) time.Time {
	year, month, day := t.Year()-n, t.Month(), t.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// dateOf strips the clock from t, keeping its calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// idSource hands out ids from [0, space) that were not handed out before.
type idSource struct {
	rnd   *rand.Rand
	space int
	seen  map[int]struct{}
}

func newIDSource(rnd *rand.Rand, space int) *idSource {
	return &idSource{rnd: rnd, space: space, seen: make(map[int]struct{})}
}

func (s *idSource) next() (int, error) {
	for range maxIDDraws {
		id := s.rnd.IntN(s.space)
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		return id, nil
	}
	return 0, ErrIDSpaceExhausted
}

func nopLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
