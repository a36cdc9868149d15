package staff

import "time"

type Staff struct {
	StaffID         int64     `json:"staffId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	HireDate        time.Time `json:"hireDate"`
	EmploymentID    string    `json:"employmentId"`
	EmploymentTitle string    `json:"employmentTitle"`
	Salary          *float64  `json:"salary,omitempty"`
	CommissionPct   *float64  `json:"commissionPct,omitempty"`
	ManagerID       *int64    `json:"managerId,omitempty"`
	ManagerName     string    `json:"managerName,omitempty"`
	SectionID       *int64    `json:"sectionId,omitempty"`
	SectionName     string    `json:"sectionName,omitempty"`
}

type SalaryStats struct {
	SectionID   int64   `json:"sectionId"`
	SectionName string  `json:"sectionName"`
	MaxSalary   float64 `json:"maxSalary"`
	MinSalary   float64 `json:"minSalary"`
	AvgSalary   float64 `json:"avgSalary"`
}
