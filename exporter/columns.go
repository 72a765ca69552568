package exporter

import (
	"strconv"
	"time"

	"github.com/orayew2002/dummy-employees/domain"
)

// column describes one exported employee field: header, value extractor and
// workbook width.
type column struct {
	header string
	width  float64
	value  func(e domain.Employee) string
}

// columns defines the exported fields in order. CSV and workbook share it.
var columns = []column{
	{header: "Employee ID", width: 12, value: func(e domain.Employee) string { return strconv.Itoa(e.ID) }},
	{header: "First Name", width: 16, value: func(e domain.Employee) string { return e.FirstName }},
	{header: "Last Name", width: 16, value: func(e domain.Employee) string { return e.LastName }},
	{header: "Date of Birth", width: 14, value: func(e domain.Employee) string { return formatDate(e.DateOfBirth) }},
	{header: "Gender", width: 10, value: func(e domain.Employee) string { return string(e.Gender) }},
	{header: "Email", width: 34, value: func(e domain.Employee) string { return e.Email }},
	{header: "Phone Number", width: 18, value: func(e domain.Employee) string { return e.Phone }},
	{header: "Address", width: 40, value: func(e domain.Employee) string { return e.Address }},
	{header: "City", width: 16, value: func(e domain.Employee) string { return e.City }},
	{header: "State", width: 16, value: func(e domain.Employee) string { return e.State }},
	{header: "Zip Code", width: 10, value: func(e domain.Employee) string { return e.ZipCode }},
	{header: "SSN/National ID", width: 18, value: func(e domain.Employee) string { return e.NationalID }},
	{header: "Bank Account Number", width: 22, value: func(e domain.Employee) string { return e.BankAccount }},
	{header: "IFSC Code", width: 14, value: func(e domain.Employee) string { return e.RoutingCode }},
	{header: "Date of Hire", width: 14, value: func(e domain.Employee) string { return formatDate(e.DateOfHire) }},
	{header: "Job Title", width: 24, value: func(e domain.Employee) string { return e.JobTitle }},
	{header: "Department", width: 14, value: func(e domain.Employee) string { return e.Department }},
	{header: "Salary", width: 12, value: func(e domain.Employee) string { return e.Salary.StringFixed(2) }},
	{header: "Emergency Contact Name", width: 24, value: func(e domain.Employee) string { return e.EmergencyContactName }},
	{header: "Emergency Contact Phone", width: 24, value: func(e domain.Employee) string { return e.EmergencyContactPhone }},
}

// Headers returns the exported field names in column order.
func Headers() []string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}
	return headers
}

// Row returns the exported values of emp in column order.
func Row(emp domain.Employee) []string {
	values := make([]string, len(columns))
	for i, c := range columns {
		values[i] = c.value(emp)
	}
	return values
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
