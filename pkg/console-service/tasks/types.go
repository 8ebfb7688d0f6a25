package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
)

// Assignment types
const (
	AssignIndividual = "Individual"
	AssignTeam       = "Team"
)

type Task struct {
	Id             string    `json:"_id" bson:"_id"`
	Title          string    `json:"title" bson:"title"`
	Description    string    `json:"description" bson:"description"`
	AssignedToName string    `json:"assigned_to_name" bson:"assigned_to_name"`
	AssignedToId   string    `json:"assigned_to_id" bson:"assigned_to_id"`
	DueDate        string    `json:"due_date" bson:"due_date"`
	Priority       string    `json:"priority" bson:"priority"`
	AssignmentType string    `json:"assignment_type" bson:"assignment_type"`
	CreatedOn      time.Time `json:"created_on" bson:"created_on"`
}

type TaskRequest struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	AssignedToName string `json:"assigned_to_name"`
	AssignedToId   string `json:"assigned_to_id"`
	DueDate        string `json:"due_date" validate:"required"`
	Priority       string `json:"priority" validate:"required,oneof=Low Medium High"`
	AssignmentType string `json:"assignment_type" validate:"required,oneof=Individual Team"`
}

func fromDoc(doc bson.M) Task {
	return Task{
		Id:             helper.ToString(doc["_id"]),
		Title:          helper.DocString(doc, "title"),
		Description:    helper.DocString(doc, "description"),
		AssignedToName: helper.DocString(doc, "assigned_to_name"),
		AssignedToId:   helper.DocString(doc, "assigned_to_id"),
		DueDate:        helper.DocString(doc, "due_date"),
		Priority:       helper.DocString(doc, "priority"),
		AssignmentType: helper.DocString(doc, "assignment_type"),
		CreatedOn:      helper.DocTime(doc, "created_on"),
	}
}
