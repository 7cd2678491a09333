package domain

import "strings"

type Employee struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Title     string `json:"title"`
}

func NewEmployee(id int, firstName, lastName, email, title string) *Employee {
	return &Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Title:     title,
	}
}

// ApplyDetails overwrites everything except the id.
func (e *Employee) ApplyDetails(src *Employee) {
	e.FirstName = src.FirstName
	e.LastName = src.LastName
	e.Email = src.Email
	e.Title = src.Title
}

// EmployeeInput is the inbound form of an Employee. ID is a pointer so a
// request that omits it can be told apart from id 0.
type EmployeeInput struct {
	ID        *int   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Title     string `json:"title"`
}

func (in EmployeeInput) HasID() bool {
	return in.ID != nil
}

// Complete reports whether the id is present and no text field is blank.
func (in EmployeeInput) Complete() bool {
	if in.ID == nil {
		return false
	}
	for _, field := range []string{in.FirstName, in.LastName, in.Email, in.Title} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// ToEmployee converts the input; a missing id becomes 0.
func (in EmployeeInput) ToEmployee() *Employee {
	var id int
	if in.ID != nil {
		id = *in.ID
	}
	return NewEmployee(id, in.FirstName, in.LastName, in.Email, in.Title)
}

func InputFrom(e *Employee) EmployeeInput {
	id := e.ID
	return EmployeeInput{
		ID:        &id,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Title:     e.Title,
	}
}
