package models

type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	Department    string `json:"department,omitempty"`
	SubDepartment string `json:"sub_department,omitempty"`
}

type Department struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SubDepartments []string `json:"sub_departments,omitempty"`
}
