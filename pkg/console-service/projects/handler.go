package projects

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/console-service/viewstate"
	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
)

const collectionName = "projects"

var projectFields = viewstate.Fields[Project]{
	Status:      func(p Project) string { return p.Status },
	Title:       func(p Project) string { return p.Title },
	Description: func(p Project) string { return p.Description },
	CreatedAt:   func(p Project) time.Time { return p.CreatedOn },
}

type handlers struct {
	state *realtime.Container
}

// snapshotProjects - live list from the last realtime snapshot, falling
// back to a direct fetch before the first snapshot lands
func (h *handlers) snapshotProjects() ([]Project, error) {
	var docs []bson.M
	if snap, ok := h.state.Latest(collectionName); ok {
		docs = snap.Docs
	} else {
		var err error
		docs, err = helper.GetQueryResult(collectionName, bson.M{}, 1, 500, bson.M{"created_on": -1})
		if err != nil {
			return nil, err
		}
	}
	list := make([]Project, 0, len(docs))
	for _, d := range docs {
		list = append(list, fromDoc(d))
	}
	return list, nil
}

// dashboardHandler - per-status counters plus filtered/sorted listing
func (h *handlers) dashboardHandler(c *fiber.Ctx) error {
	list, err := h.snapshotProjects()
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	crit := viewstate.Criteria{
		Status: c.Query("status", viewstate.StatusAll),
		Search: c.Query("search"),
		Sort:   c.Query("sort", viewstate.SortLatest),
	}
	filtered := viewstate.Apply(list, crit, projectFields, time.Now())

	resp := DashboardResponse{
		Total:    len(list),
		Projects: filtered,
	}
	for _, p := range list {
		switch p.Status {
		case StatusToDo:
			resp.ToDo++
		case StatusInProgress:
			resp.Progress++
		case StatusCompleted:
			resp.Done++
		}
	}
	return helper.SuccessResponse(c, resp)
}

func (h *handlers) getProjectHandler(c *fiber.Ctx) error {
	filter := helper.DocIdFilter(c.Params("id"))
	response, err := helper.GetQueryResult(collectionName, filter, int64(0), int64(1), nil)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if len(response) == 0 {
		return helper.EntityNotFound("Project not found")
	}
	return helper.SuccessResponse(c, fromDoc(response[0]))
}

func (h *handlers) createProjectHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	req := new(ProjectRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	if req.Status == StatusCompleted {
		// completed projects show 100% progress
		req.Progress = 100
	}
	doc := bson.M{
		"_id":         helper.NewDocId(),
		"title":       req.Title,
		"description": req.Description,
		"status":      req.Status,
		"priority":    req.Priority,
		"progress":    req.Progress,
		"owner_id":    token.UserId,
		"created_on":  time.Now(),
		"created_by":  token.UserId,
	}
	res, err := helper.InsertData(c, collectionName, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

func (h *handlers) updateProjectHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	filter := helper.DocIdFilter(c.Params("id"))
	var inputData map[string]interface{}
	if err := c.BodyParser(&inputData); err != nil {
		return helper.BadRequest(err.Error())
	}
	//delete the _id field
	delete(inputData, "_id")
	helper.UpdateDateObject(inputData)
	if status, ok := inputData["status"].(string); ok && status == StatusCompleted {
		inputData["progress"] = 100
	}
	inputData["updated_on"] = time.Now()
	inputData["updated_by"] = token.UserId
	response, err := helper.UpdateData(collectionName, filter, inputData)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, response)
}

func (h *handlers) deleteProjectHandler(c *fiber.Ctx) error {
	filter := helper.DocIdFilter(c.Params("id"))
	response, err := helper.DeleteData(collectionName, filter)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Project not found")
	}
	return helper.SuccessResponse(c, response)
}
