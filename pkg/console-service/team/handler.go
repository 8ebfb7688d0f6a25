package team

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
)

const collectionName = "team"

// getMembersHandler - directory listing, ordered by name
func getMembersHandler(c *fiber.Ctx) error {
	filter := bson.M{}
	if dept := c.Query("department"); dept != "" {
		filter["department"] = dept
	}
	order := helper.SortOrdering(c.Query("order"))
	response, err := helper.GetQueryResult(collectionName, filter, helper.Page(c.Params("page")), helper.Limit(c.Params("limit")), bson.M{"name": order})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	// credentials never leave the service
	for _, doc := range response {
		delete(doc, "pwd")
	}
	return helper.SuccessResponse(c, response)
}

// searchMembersHandler - filter-tree search over the directory
func searchMembersHandler(c *fiber.Ctx) error {
	var filters []helper.Filter
	if err := c.BodyParser(&filters); err != nil {
		return helper.BadRequest(err.Error())
	}
	response, err := helper.GetSearchQueryResult(collectionName, filters)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	for _, doc := range response {
		delete(doc, "pwd")
	}
	return helper.SuccessResponse(c, response)
}

func getMemberHandler(c *fiber.Ctx) error {
	filter := helper.DocIdFilter(c.Params("id"))
	response, err := helper.GetQueryResult(collectionName, filter, int64(0), int64(1), nil)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if len(response) == 0 {
		return helper.EntityNotFound("Team member not found")
	}
	delete(response[0], "pwd")
	return helper.SuccessResponse(c, response[0])
}

func createMemberHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	req := new(MemberRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	doc := bson.M{
		"_id":           helper.NewDocId(),
		"name":          req.Name,
		"employee_id":   req.EmployeeId,
		"email":         req.Email,
		"login_email":   req.LoginEmail,
		"phone":         req.Phone,
		"role":          req.Role,
		"department":    req.Department,
		"experience":    req.Experience,
		"skills":        req.Skills,
		"joining_date":  req.JoiningDate,
		"bank_name":     req.BankName,
		"bank_ifsc":     req.BankIFSC,
		"bank_account":  req.BankAccount,
		"linkedin_url":  req.LinkedinUrl,
		"github_url":    req.GithubUrl,
		"portfolio_url": req.PortfolioUrl,
		"created_on":    time.Now(),
		"created_by":    token.UserId,
	}
	if req.InitialPasswd != "" {
		hash, err := helper.GeneratePasswordHash(req.InitialPasswd)
		if err != nil {
			return helper.Unexpected(err.Error())
		}
		doc["pwd"] = hash
	}
	res, err := helper.InsertData(c, collectionName, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

func updateMemberHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	filter := helper.DocIdFilter(c.Params("id"))
	var inputData map[string]interface{}
	if err := c.BodyParser(&inputData); err != nil {
		return helper.BadRequest(err.Error())
	}
	delete(inputData, "_id")
	// password changes only go through the auth routes
	delete(inputData, "pwd")
	delete(inputData, "password")
	helper.UpdateDateObject(inputData)
	inputData["updated_on"] = time.Now()
	inputData["updated_by"] = token.UserId
	response, err := helper.UpdateData(collectionName, filter, inputData)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, response)
}

// deleteMemberHandler - delete by explicit document id only
func deleteMemberHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	if token.UserRole != "Admin" {
		return helper.Unauthorized("Only an admin can remove directory members")
	}
	filter := helper.DocIdFilter(c.Params("id"))
	response, err := helper.DeleteData(collectionName, filter)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	if response.DeletedCount == 0 {
		return helper.EntityNotFound("Team member not found")
	}
	return helper.SuccessResponse(c, response)
}
