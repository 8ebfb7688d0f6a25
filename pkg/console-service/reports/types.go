package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
)

type Report struct {
	Id           string    `json:"_id" bson:"_id"`
	EmployeeName string    `json:"employee_name" bson:"employee_name"`
	EmployeeId   string    `json:"employee_id" bson:"employee_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	CreatedOn    time.Time `json:"created_on" bson:"created_on"`
}

type ReportRequest struct {
	EmployeeName string `json:"employee_name" validate:"required"`
	EmployeeId   string `json:"employee_id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
}

func fromDoc(doc bson.M) Report {
	return Report{
		Id:           helper.ToString(doc["_id"]),
		EmployeeName: helper.DocString(doc, "employee_name"),
		EmployeeId:   helper.DocString(doc, "employee_id"),
		Title:        helper.DocString(doc, "title"),
		Description:  helper.DocString(doc, "description"),
		CreatedOn:    helper.DocTime(doc, "created_on"),
	}
}
