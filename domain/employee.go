package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender is the self-reported gender of a generated employee.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every Gender value; generation picks from it uniformly.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Departments is the fixed set of departments an employee can belong to.
var Departments = []string{"HR", "Engineering", "Marketing", "Sales", "Finance", "Operations"}

// Employee represents a single synthetic employee record.
// DateOfBirth and DateOfHire carry a date only (midnight UTC).
type Employee struct {
	ID                    int
	FirstName             string
	LastName              string
	DateOfBirth           time.Time
	Gender                Gender
	Email                 string
	Phone                 string
	Address               string
	City                  string
	State                 string
	ZipCode               string
	NationalID            string
	BankAccount           string
	RoutingCode           string
	DateOfHire            time.Time
	JobTitle              string
	Department            string
	Salary                decimal.Decimal
	EmergencyContactName  string
	EmergencyContactPhone string
}

// PostalAddress is one mailing address as produced by a Provider.
type PostalAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
}
