package domain

import "encoding/json"

// Employees is the ordered record collection backing the store.
type Employees struct {
	employeeList []*Employee
}

func NewEmployees(list ...*Employee) *Employees {
	return &Employees{employeeList: list}
}

// List returns the live slice, not a copy.
func (e *Employees) List() []*Employee {
	return e.employeeList
}

func (e *Employees) Set(list []*Employee) {
	e.employeeList = list
}

func (e *Employees) Len() int {
	return len(e.employeeList)
}

type employeesJSON struct {
	EmployeeList []*Employee `json:"employeeList"`
}

func (e *Employees) MarshalJSON() ([]byte, error) {
	list := e.employeeList
	if list == nil {
		list = []*Employee{}
	}
	return json.Marshal(employeesJSON{EmployeeList: list})
}

func (e *Employees) UnmarshalJSON(data []byte) error {
	var raw employeesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.employeeList = raw.EmployeeList
	return nil
}
