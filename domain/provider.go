package domain

import (
	"math/rand/v2"
	"strings"

	"github.com/go-faker/faker/v4"
)

// Provider supplies realistic-looking values for generated employees.
// Implementations decide the locale the values are formatted for.
type Provider interface {
	FirstNameMale() string
	FirstNameFemale() string
	FirstNameNeutral() string
	LastName() string
	FullName() string
	DomainName() string
	PhoneNumber() string
	Address() PostalAddress
	NationalID() string
	BankAccount() string
	RoutingCode() string
	JobTitle() string
}

var jobTitles = []string{
	"Software Engineer",
	"Backend Developer",
	"Frontend Developer",
	"DevOps Engineer",
	"QA Engineer",
	"Project Manager",
	"HR Specialist",
	"Accountant",
	"Financial Analyst",
	"Marketing Coordinator",
	"Sales Executive",
	"Operations Manager",
	"Data Analyst",
	"System Administrator",
	"Team Lead",
}

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumeric = upperLetters + "0123456789"
)

// FakerProvider draws names, domains and addresses from faker and formats
// phone numbers and bank identifiers the way they look in India.
type FakerProvider struct {
	rnd *rand.Rand
}

// NewFakerProvider creates a FakerProvider using rnd for locally formatted values.
func NewFakerProvider(rnd *rand.Rand) *FakerProvider {
	return &FakerProvider{rnd: rnd}
}

func (p *FakerProvider) FirstNameMale() string { return faker.FirstNameMale() }
func (p *FakerProvider) FirstNameFemale() string { return faker.FirstNameFemale() }
func (p *FakerProvider) LastName() string { return faker.LastName() }
func (p *FakerProvider) DomainName() string { return faker.DomainName() }

// FirstNameNeutral draws from faker's combined male and female pool;
// faker has no dedicated gender-neutral list.
func (p *FakerProvider) FirstNameNeutral() string {
	return faker.FirstName()
}

func (p *FakerProvider) FullName() string {
	return faker.FirstName() + " " + faker.LastName()
}

// PhoneNumber returns a mobile number such as "+91 9876543210".
func (p *FakerProvider) PhoneNumber() string {
	return "+91 " + p.digits(1, "6789") + p.digits(9, "")
}

func (p *FakerProvider) Address() PostalAddress {
	a := faker.GetRealAddress()
	return PostalAddress{
		Street:  a.Address,
		City:    a.City,
		State:   a.State,
		ZipCode: a.PostalCode,
	}
}

// NationalID returns a 12 digit id grouped as "2345 6789 0123".
func (p *FakerProvider) NationalID() string {
	return p.digits(1, "23456789") + p.digits(3, "") + " " + p.digits(4, "") + " " + p.digits(4, "")
}

// BankAccount returns an account number of 11 to 16 digits.
func (p *FakerProvider) BankAccount() string {
	return p.digits(1, "123456789") + p.digits(10+p.rnd.IntN(6), "")
}

// RoutingCode returns an IFSC-shaped code: four letters, a zero, six characters.
func (p *FakerProvider) RoutingCode() string {
	return p.pick(4, upperLetters) + "0" + p.pick(6, alphanumeric)
}

func (p *FakerProvider) JobTitle() string {
	return jobTitles[p.rnd.IntN(len(jobTitles))]
}

// digits returns n random digits drawn from set, or from 0-9 when set is empty.
func (p *FakerProvider) digits(n int, set string) string {
	if set == "" {
		set = "0123456789"
	}
	return p.pick(n, set)
}

func (p *FakerProvider) pick(n int, set string) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(set[p.rnd.IntN(len(set))])
	}
	return b.String()
}
