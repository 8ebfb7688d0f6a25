package helper

import "time"

type UserToken struct {
	UserId    string `json:"user_id" bson:"user_id"`
	UserName  string `json:"user_name" bson:"user_name"`
	UserRole  string `json:"user_role" bson:"user_role"`
	UserEmail string `json:"user_email" bson:"user_email"`
}

type Condition struct {
	Column   string `json:"column" bson:"column"`
	Operator string `json:"operator" bson:"operator"`
	Type     string `json:"type" bson:"type"`
	Value    string `json:"value" bson:"value"`
}

type Filter struct {
	Clause     string      `json:"clause" bson:"clause"`
	Conditions []Condition `json:"conditions" bson:"conditions"`
}

type ReportRequest struct {
	EmpId      string    `json:"emp_id" bson:"emp_id"`
	EmpIds     []string  `json:"emp_ids" bson:"emp_ids"`
	DateColumn string    `json:"date_column" bson:"date_column"`
	StartDate  time.Time `json:"start_date" bson:"start_date"`
	EndDate    time.Time `json:"end_date" bson:"end_date"`
	Status     string    `json:"status" bson:"status"`
}
