package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateEmployeeMailData struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type WorkPlanDecisionMailData struct {
	Name        string `json:"name"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	Status      string `json:"status"`
}

type LeaveDecisionMailData struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}
