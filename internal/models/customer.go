package models

type Customer struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	City          string  `json:"city"`
	TotalSpent    float64 `json:"totalSpent"`
	Orders        int     `json:"orders"`
	Status        string  `json:"status"`
	JoinDate      string  `json:"joinDate"`
	LastOrderDate string  `json:"lastOrderDate,omitempty"`
}
