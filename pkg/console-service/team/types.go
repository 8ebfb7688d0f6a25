package team

type MemberRequest struct {
	Name        string `json:"name" validate:"required"`
	EmployeeId  string `json:"employee_id" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	LoginEmail  string `json:"login_email" validate:"required,email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	Experience  string `json:"experience"`
	Skills      string `json:"skills"` // comma-joined
	JoiningDate string `json:"joining_date"`

	BankName      string `json:"bank_name"`
	BankIFSC      string `json:"bank_ifsc"`
	BankAccount   string `json:"bank_account"`
	LinkedinUrl   string `json:"linkedin_url"`
	GithubUrl     string `json:"github_url"`
	PortfolioUrl  string `json:"portfolio_url"`
	InitialPasswd string `json:"password"`
}
