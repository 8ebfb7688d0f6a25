package attendance

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
)

var exportColumns = []string{"Employee Id", "Employee Name", "Day", "Status", "Login", "Logout", "Total Hours"}

// exportHandler streams the day's sessions as an Excel sheet.
func exportHandler(c *fiber.Ctx) error {
	day := c.Query("date", dayKey(time.Now()))
	query := bson.M{"day": day}
	if empId := c.Query("employee_id"); empId != "" {
		query["employee_id"] = empId
	}
	docs, err := helper.GetQueryResult(collectionName, query, 1, 500, bson.M{"employee_name": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}
	for row, doc := range docs {
		values := []interface{}{
			helper.DocString(doc, "employee_id"),
			helper.DocString(doc, "employee_name"),
			helper.DocString(doc, "day"),
			helper.DocString(doc, "status"),
			exportTime(doc, "login_time"),
			exportTime(doc, "logout_time"),
			helper.DocString(doc, "total_hours"),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Unexpected(err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance_%s.xlsx"`, day))
	return c.Send(buf.Bytes())
}

func exportTime(doc bson.M, key string) string {
	t := helper.DocTime(doc, key)
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}
