package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/console-service/metrics"
	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
)

const collectionName = "workSessions"

type handlers struct {
	state *realtime.Container
}

// snapshotSessions - live list from the last realtime snapshot, falling
// back to a direct fetch before the first snapshot lands
func (h *handlers) snapshotSessions() ([]metrics.Session, error) {
	var docs []bson.M
	if snap, ok := h.state.Latest(collectionName); ok {
		docs = snap.Docs
	} else {
		var err error
		docs, err = helper.GetQueryResult(collectionName, bson.M{}, 1, 500, bson.M{"day": -1})
		if err != nil {
			return nil, err
		}
	}
	sessions := make([]metrics.Session, 0, len(docs))
	for _, d := range docs {
		sessions = append(sessions, toSession(d))
	}
	return sessions, nil
}

// punchHandler upserts the employee's session for today. One document per
// employee per day; a second login punch on the same day is ignored so the
// first login time survives.
func punchHandler(c *fiber.Ctx) error {
	req := new(PunchRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	now := time.Now()
	day := dayKey(now)
	filter := bson.M{"employee_id": req.EmployeeId, "day": day}

	set := bson.M{
		"employee_id":   req.EmployeeId,
		"employee_name": req.EmployeeName,
		"day":           day,
	}
	var setOnInsert bson.M
	switch req.Action {
	case PunchLogin:
		set["status"] = StatusWorking
		setOnInsert = bson.M{"_id": helper.NewDocId(), "login_time": now}
	case PunchLogout:
		set["status"] = StatusCompleted
		set["logout_time"] = now
	case PunchBreakStart:
		set["status"] = StatusBreak
		set["break_start"] = now
	case PunchBreakEnd:
		set["status"] = StatusWorking
		set["break_end"] = now
	case PunchLunchStart:
		set["status"] = StatusLunch
		set["lunch_start"] = now
	case PunchLunchEnd:
		set["status"] = StatusWorking
		set["lunch_end"] = now
	}
	update := bson.M{"$set": set}
	if setOnInsert != nil {
		update["$setOnInsert"] = setOnInsert
	} else {
		update["$setOnInsert"] = bson.M{"_id": helper.NewDocId()}
	}
	result, err := helper.ExecuteFindAndModifyQuery(collectionName, filter, update)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if req.Action == PunchLogout {
		result = closeSession(result, now)
	}
	return helper.SuccessResponse(c, result)
}

// closeSession stores total worked hours once both endpoints exist.
func closeSession(doc bson.M, logout time.Time) bson.M {
	login := helper.DocTime(doc, "login_time")
	if login.IsZero() {
		return doc
	}
	total := metrics.FormatMinutes(logout.Sub(login).Minutes())
	updated, err := helper.ExecuteFindAndModifyQuery(collectionName,
		helper.DocIdFilter(helper.ToString(doc["_id"])),
		bson.M{"$set": bson.M{"total_hours": total}})
	if err != nil {
		return doc
	}
	return updated
}

// getSessionsHandler - sessions for a day, optionally one employee
func getSessionsHandler(c *fiber.Ctx) error {
	day := c.Query("date", dayKey(time.Now()))
	query := bson.M{"day": day}
	if empId := c.Query("employee_id"); empId != "" {
		query["employee_id"] = empId
	}
	docs, err := helper.GetQueryResult(collectionName, query, helper.Page(c.Params("page")), helper.Limit(c.Params("limit")), bson.M{"employee_name": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, docs)
}

// analyticsHandler - dashboard counters for a day plus the 7 day rate series
func (h *handlers) analyticsHandler(c *fiber.Ctx) error {
	all, err := h.snapshotSessions()
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	now := time.Now()
	day := c.Query("date", dayKey(now))

	totalEmployees, err := teamHeadcount()
	if err != nil {
		return helper.BadRequest(err.Error())
	}

	today := metrics.OnDay(all, day)
	present := metrics.Present(today)
	rate := metrics.Rate(present, totalEmployees)

	anchor, parseErr := time.Parse("2006-01-02", day)
	if parseErr != nil {
		anchor = now
	}
	yesterday := metrics.OnDay(all, dayKey(anchor.AddDate(0, 0, -1)))
	yesterdayRate := metrics.Rate(metrics.Present(yesterday), totalEmployees)

	weekly := make([]DayRate, 0, 7)
	for i := 6; i >= 0; i-- {
		d := dayKey(anchor.AddDate(0, 0, -i))
		weekly = append(weekly, DayRate{
			Day:  d,
			Rate: metrics.Rate(metrics.Present(metrics.OnDay(all, d)), totalEmployees),
		})
	}

	resp := Analytics{
		Day:             day,
		TotalEmployees:  totalEmployees,
		Present:         present,
		StatusCounts:    metrics.CountByStatus(today),
		AverageHours:    metrics.FormatMinutes(metrics.AverageMinutes(today)),
		Productivity:    metrics.Rate(metrics.WithStatus(today, StatusWorking), present),
		AttendanceRate:  rate,
		AttendanceTrend: metrics.Trend(rate, yesterdayRate),
		WeeklyRates:     weekly,
	}
	return helper.SuccessResponse(c, resp)
}

func teamHeadcount() (int, error) {
	docs, err := helper.GetAggregateQueryResult("team", bson.A{bson.M{"$count": "total"}})
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	return int(helper.Toint64(helper.ToString(docs[0]["total"]))), nil
}
