package projects

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
)

// Project statuses
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type Project struct {
	Id          string    `json:"_id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Status      string    `json:"status" bson:"status"`
	Priority    string    `json:"priority" bson:"priority"`
	Progress    int       `json:"progress" bson:"progress"`
	OwnerId     string    `json:"owner_id" bson:"owner_id"`
	CreatedOn   time.Time `json:"created_on" bson:"created_on"`
	UpdatedOn   time.Time `json:"updated_on" bson:"updated_on"`
}

type ProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"required,oneof='To Do' 'In Progress' 'Completed'"`
	Priority    string `json:"priority" validate:"required,oneof=Low Medium High"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
}

type DashboardResponse struct {
	Total    int       `json:"total"`
	ToDo     int       `json:"todo"`
	Progress int       `json:"progress"`
	Done     int       `json:"done"`
	Projects []Project `json:"projects"`
}

func fromDoc(doc bson.M) Project {
	progress := 0
	switch v := doc["progress"].(type) {
	case int32:
		progress = int(v)
	case int64:
		progress = int(v)
	case float64:
		progress = int(v)
	}
	return Project{
		Id:          helper.ToString(doc["_id"]),
		Title:       helper.DocString(doc, "title"),
		Description: helper.DocString(doc, "description"),
		Status:      helper.DocString(doc, "status"),
		Priority:    helper.DocString(doc, "priority"),
		Progress:    progress,
		OwnerId:     helper.DocString(doc, "owner_id"),
		CreatedOn:   helper.DocTime(doc, "created_on"),
		UpdatedOn:   helper.DocTime(doc, "updated_on"),
	}
}
