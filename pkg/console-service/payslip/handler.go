package payslip

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

// computeHandler - totals and amount-in-words for a slip, no rendering
func computeHandler(c *fiber.Ctx) error {
	rec := new(Record)
	if err := c.BodyParser(rec); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(rec); err != nil {
		return err
	}
	return helper.SuccessResponse(c, Summarize(*rec))
}

// renderHandler - build the PDF and upload it
func renderHandler(c *fiber.Ctx) error {
	rec := new(Record)
	if err := c.BodyParser(rec); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(rec); err != nil {
		return err
	}
	fileDetails, err := GeneratePayslipPDF(*rec)
	if err != nil {
		if e, ok := err.(*helper.Error); ok {
			return e
		}
		return helper.Unexpected(err.Error())
	}
	return helper.SuccessResponse(c, fileDetails)
}

// downloadHandler - short-lived signed link for a stored slip
func downloadHandler(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return helper.ValidationFailed("file name required")
	}
	url := helper.GetDownloadUrl(bucketName(), storagePath(name))
	if url == "" {
		return helper.EntityNotFound("Payslip file not found")
	}
	return helper.SuccessResponse(c, fiber.Map{"url": url})
}

func removeHandler(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return helper.ValidationFailed("file name required")
	}
	if !helper.DeleteFile(bucketName(), storagePath(name)) {
		return helper.EntityNotFound("Payslip file not found")
	}
	return helper.SuccessResponse(c, "Deleted")
}
