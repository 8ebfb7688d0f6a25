package tasks

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/console-service/viewstate"
	"innomatrics.com/go-api/pkg/shared/helper"
)

const collectionName = "tasks"

var taskFields = viewstate.Fields[Task]{
	Title:       func(t Task) string { return t.Title },
	Description: func(t Task) string { return t.Description },
	Name:        func(t Task) string { return t.AssignedToName },
	CreatedAt:   func(t Task) time.Time { return t.CreatedOn },
}

// getTasksHandler - task board listing with search and assignee filter
func getTasksHandler(c *fiber.Ctx) error {
	docs, err := helper.GetQueryResult(collectionName, bson.M{}, helper.Page(c.Params("page")), helper.Limit(c.Params("limit")), bson.M{"created_on": -1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	list := make([]Task, 0, len(docs))
	for _, d := range docs {
		list = append(list, fromDoc(d))
	}
	crit := viewstate.Criteria{
		Search: c.Query("search"),
		Sort:   c.Query("sort", viewstate.SortLatest),
		Name:   c.Query("assignee"),
	}
	return helper.SuccessResponse(c, viewstate.Apply(list, crit, taskFields, time.Now()))
}

func createTaskHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	req := new(TaskRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	if req.AssignmentType == AssignIndividual && req.AssignedToId == "" {
		return helper.ValidationFailed("assigned_to_id required for individual assignment")
	}
	doc := bson.M{
		"_id":              helper.NewDocId(),
		"title":            req.Title,
		"description":      req.Description,
		"assigned_to_name": req.AssignedToName,
		"assigned_to_id":   req.AssignedToId,
		"due_date":         req.DueDate,
		"priority":         req.Priority,
		"assignment_type":  req.AssignmentType,
		"created_on":       time.Now(),
		"created_by":       token.UserId,
	}
	res, err := helper.InsertData(c, collectionName, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

func deleteTaskHandler(c *fiber.Ctx) error {
	filter := helper.DocIdFilter(c.Params("id"))
	response, err := helper.DeleteData(collectionName, filter)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Task not found")
	}
	return helper.SuccessResponse(c, response)
}
