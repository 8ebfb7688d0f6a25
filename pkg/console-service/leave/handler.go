package leave

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
)

const (
	leaveCollection   = "leaveRequests"
	holidayCollection = "holidays"
	breakCollection   = "scheduledBreaks"
)

// getLeavesHandler - leave requests, newest first, optional status filter
func getLeavesHandler(c *fiber.Ctx) error {
	query := bson.M{}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}
	if empId := c.Query("employee_id"); empId != "" {
		query["employee_id"] = empId
	}
	docs, err := helper.GetQueryResult(leaveCollection, query, helper.Page(c.Params("page")), helper.Limit(c.Params("limit")), bson.M{"created_on": -1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, docs)
}

func createLeaveHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	req := new(LeaveRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	doc := bson.M{
		"_id":             helper.NewDocId(),
		"employee_id":     req.EmployeeId,
		"employee_name":   req.EmployeeName,
		"from_date":       req.FromDate,
		"to_date":         req.ToDate,
		"reason":          req.Reason,
		"status":          StatusPending,
		"manager_comment": "",
		"created_on":      time.Now(),
		"created_by":      token.UserId,
	}
	res, err := helper.InsertData(c, leaveCollection, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

// reviewLeaveHandler records the reviewer decision and comment.
func reviewLeaveHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	if token.UserRole != "Admin" && token.UserRole != "Manager" {
		return helper.Unauthorized("Only a manager can review leave requests")
	}
	req := new(ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	updated, err := helper.ExecuteFindAndModifyQuery(leaveCollection, helper.DocIdFilter(c.Params("id")), bson.M{
		"$set": bson.M{
			"status":          req.Status,
			"manager_comment": req.ManagerComment,
			"reviewed_by":     token.UserName,
			"reviewed_on":     time.Now(),
		},
	})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, updated)
}

func deleteLeaveHandler(c *fiber.Ctx) error {
	response, err := helper.DeleteData(leaveCollection, helper.DocIdFilter(c.Params("id")))
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Leave request not found")
	}
	return helper.SuccessResponse(c, response)
}

func getHolidaysHandler(c *fiber.Ctx) error {
	docs, err := helper.GetQueryResult(holidayCollection, bson.M{}, 1, 500, bson.M{"date": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, docs)
}

func createHolidayHandler(c *fiber.Ctx) error {
	req := new(HolidayRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	doc := bson.M{
		"_id":        helper.NewDocId(),
		"title":      req.Title,
		"date":       req.Date,
		"created_on": time.Now(),
	}
	res, err := helper.InsertData(c, holidayCollection, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

func deleteHolidayHandler(c *fiber.Ctx) error {
	response, err := helper.DeleteData(holidayCollection, helper.DocIdFilter(c.Params("id")))
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Holiday not found")
	}
	return helper.SuccessResponse(c, response)
}

func createBreakHandler(c *fiber.Ctx) error {
	req := new(BreakRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	doc := bson.M{
		"_id":        helper.NewDocId(),
		"title":      req.Title,
		"date":       req.Date,
		"start_time": req.StartTime,
		"end_time":   req.EndTime,
		"created_on": time.Now(),
	}
	res, err := helper.InsertData(c, breakCollection, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

func deleteBreakHandler(c *fiber.Ctx) error {
	response, err := helper.DeleteData(breakCollection, helper.DocIdFilter(c.Params("id")))
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Break not found")
	}
	return helper.SuccessResponse(c, response)
}

// calendarHandler merges holidays, scheduled breaks and approved leaves
// into one date-ordered feed.
func calendarHandler(c *fiber.Ctx) error {
	var events []CalendarEvent

	holidays, err := helper.GetQueryResult(holidayCollection, bson.M{}, 1, 500, bson.M{"date": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	for _, d := range holidays {
		events = append(events, CalendarEvent{
			Id:    helper.ToString(d["_id"]),
			Kind:  "holiday",
			Title: helper.DocString(d, "title"),
			Date:  helper.DocString(d, "date"),
		})
	}

	breaks, err := helper.GetQueryResult(breakCollection, bson.M{}, 1, 500, bson.M{"date": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	for _, d := range breaks {
		events = append(events, CalendarEvent{
			Id:    helper.ToString(d["_id"]),
			Kind:  "break",
			Title: helper.DocString(d, "title"),
			Date:  helper.DocString(d, "date"),
			Start: helper.DocString(d, "start_time"),
			End:   helper.DocString(d, "end_time"),
		})
	}

	leaves, err := helper.GetQueryResult(leaveCollection, bson.M{"status": StatusApproved}, 1, 500, bson.M{"from_date": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	for _, d := range leaves {
		events = append(events, CalendarEvent{
			Id:       helper.ToString(d["_id"]),
			Kind:     "leave",
			Title:    helper.DocString(d, "reason"),
			Date:     helper.DocString(d, "from_date"),
			EndDate:  helper.DocString(d, "to_date"),
			Employee: helper.DocString(d, "employee_name"),
			Status:   helper.DocString(d, "status"),
		})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return helper.SuccessResponse(c, events)
}
