package payslip

// Record is the full payslip render input. It is client-held only; the
// service computes and renders it but never persists it.
type Record struct {
	Month             string `json:"month"`
	Year              string `json:"year"`
	EmployeeName      string `json:"employee_name" validate:"required"`
	EmployeeNumber    string `json:"employee_number" validate:"required"`
	DateJoined        string `json:"date_joined"`
	Department        string `json:"department"`
	SubDepartment     string `json:"sub_department"`
	Designation       string `json:"designation"`
	SecondaryJobTitle string `json:"secondary_job_title"`
	PaymentMode       string `json:"payment_mode"`
	BankName          string `json:"bank_name"`
	BankIFSC          string `json:"bank_ifsc"`
	BankAccount       string `json:"bank_account"`
	PayableDays       string `json:"payable_days"`
	TotalWorkingDays  string `json:"total_working_days"`
	LossOfPayDays     string `json:"loss_of_pay_days"`
	DaysPayable       string `json:"days_payable"`

	Earnings   Earnings   `json:"earnings"`
	Deductions Deductions `json:"deductions"`
}

// Earnings values arrive as display strings and may carry thousands
// separators; parsing tolerates both.
type Earnings struct {
	Basic string `json:"basic"`
	HRA   string `json:"hra"`
	DA    string `json:"da"`
	TA    string `json:"ta"`
}

type Deductions struct {
	LWF             string `json:"lwf"`
	ProfessionalTax string `json:"professional_tax"`
}

// Summary is the computed output returned alongside the rendered slip.
type Summary struct {
	TotalEarnings   float64 `json:"total_earnings"`
	WelfareSubtotal float64 `json:"welfare_subtotal"`
	TaxSubtotal     float64 `json:"tax_subtotal"`
	NetPay          float64 `json:"net_pay"`
	NetPayWords     string  `json:"net_pay_words"`
}
