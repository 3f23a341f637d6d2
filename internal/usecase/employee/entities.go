package employee

type EmployeeDTO struct {
	StaffID          int64  `json:"staff_id"`
	StaffFName       string `json:"staff_fname"`
	StaffLName       string `json:"staff_lname"`
	Dept             string `json:"dept"`
	Position         string `json:"position"`
	Country          string `json:"country"`
	Email            string `json:"email"`
	ReportingManager *int64 `json:"reporting_manager"`
	Role             int    `json:"role"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}
