package reports

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/console-service/viewstate"
	"innomatrics.com/go-api/pkg/shared/helper"
)

const collectionName = "dailyReports"

var reportFields = viewstate.Fields[Report]{
	Title:       func(r Report) string { return r.Title },
	Description: func(r Report) string { return r.Description },
	EmployeeID:  func(r Report) string { return r.EmployeeId },
	Name:        func(r Report) string { return r.EmployeeName },
	CreatedAt:   func(r Report) time.Time { return r.CreatedOn },
}

func loadReports(c *fiber.Ctx) ([]Report, error) {
	docs, err := helper.GetQueryResult(collectionName, bson.M{}, helper.Page(c.Params("page")), helper.Limit(c.Params("limit")), bson.M{"created_on": -1})
	if err != nil {
		return nil, helper.BadRequest(err.Error())
	}
	list := make([]Report, 0, len(docs))
	for _, d := range docs {
		list = append(list, fromDoc(d))
	}
	return list, nil
}

// getReportsHandler - end of day reports with date, search and employee filters
func getReportsHandler(c *fiber.Ctx) error {
	list, err := loadReports(c)
	if err != nil {
		return err
	}
	crit := viewstate.Criteria{
		Search: c.Query("search"),
		Sort:   c.Query("sort", viewstate.SortLatest),
		Date:   c.Query("date"),
		Name:   c.Query("employee"),
	}
	return helper.SuccessResponse(c, viewstate.Apply(list, crit, reportFields, time.Now()))
}

// getGroupedReportsHandler buckets reports per employee. Passing
// employee=ALL (or nothing) returns every bucket.
func getGroupedReportsHandler(c *fiber.Ctx) error {
	list, err := loadReports(c)
	if err != nil {
		return err
	}
	crit := viewstate.Criteria{
		Search: c.Query("search"),
		Sort:   c.Query("sort", viewstate.SortLatest),
		Date:   c.Query("date"),
	}
	filtered := viewstate.Apply(list, crit, reportFields, time.Now())
	groups := viewstate.GroupByName(filtered, c.Query("employee", viewstate.NameAll), reportFields.Name)
	return helper.SuccessResponse(c, groups)
}

// queryReportsHandler - employee/date-range query straight against the store
func queryReportsHandler(c *fiber.Ctx) error {
	req := new(helper.ReportRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	req.DateColumn = "created_on"
	docs, err := helper.GetReportQueryResult(collectionName, *req)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, docs)
}

func createReportHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	req := new(ReportRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	doc := bson.M{
		"_id":           helper.NewDocId(),
		"employee_name": req.EmployeeName,
		"employee_id":   req.EmployeeId,
		"title":         req.Title,
		"description":   req.Description,
		"created_on":    time.Now(),
		"created_by":    token.UserId,
	}
	res, err := helper.InsertData(c, collectionName, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

func deleteReportHandler(c *fiber.Ctx) error {
	response, err := helper.DeleteData(collectionName, helper.DocIdFilter(c.Params("id")))
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Report not found")
	}
	return helper.SuccessResponse(c, response)
}
