package authentication

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"innomatrics.com/go-api/pkg/shared/database"
	"innomatrics.com/go-api/pkg/shared/helper"
)

var ctx = context.Background()

// LoginHandler - sign in by directory login email, issue a JWT
func LoginHandler(c *fiber.Ctx) error {
	loginRequest := new(LoginRequest)
	if err := c.BodyParser(loginRequest); err != nil {
		return helper.BadRequest("Invalid params")
	}
	if err := helper.ValidateStruct(loginRequest); err != nil {
		return err
	}

	// loginEmail correlates the session to a directory record
	result := database.Collection("team").FindOne(ctx, bson.M{
		"login_email": loginRequest.LoginEmail,
	})
	var member bson.M
	err := result.Decode(&member)
	if err == mongo.ErrNoDocuments {
		return helper.BadRequest("Invalid Email / Password")
	}
	if err != nil {
		return helper.Unexpected("Internal server Error")
	}
	pwd, _ := member["pwd"].(string)
	if !helper.CheckPasswordHash(loginRequest.Password, pwd) {
		return helper.BadRequest("Invalid Email / Password")
	}

	role, _ := member["role"].(string)
	name, _ := member["name"].(string)
	empId, _ := member["employee_id"].(string)

	claims := helper.GetNewJWTClaim()
	claims["id"] = member["_id"]
	claims["name"] = name
	claims["role"] = role
	claims["email"] = loginRequest.LoginEmail

	expiryDays := helper.GetenvInt("JWT_EXPIRY_DAYS")
	if expiryDays == 0 {
		expiryDays = 30
	}
	token := helper.GenerateJWTToken(claims, time.Duration(expiryDays))
	response := &LoginResponse{
		Id:         helper.ToString(member["_id"]),
		Name:       name,
		EmployeeId: empId,
		UserRole:   role,
		Token:      token,
	}
	return c.JSON(response)
}

// RegisterHandler - create a directory record with login credentials
func RegisterHandler(c *fiber.Ctx) error {
	req := new(RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	count, err := database.Collection("team").CountDocuments(ctx, bson.M{"login_email": req.LoginEmail})
	if err != nil {
		return helper.Unexpected(err.Error())
	}
	if count > 0 {
		return helper.BadRequest("Login email already registered")
	}

	hash, err := helper.GeneratePasswordHash(req.Password)
	if err != nil {
		return helper.Unexpected(err.Error())
	}
	doc := bson.M{
		"_id":         helper.NewDocId(),
		"name":        req.Name,
		"employee_id": req.EmployeeId,
		"login_email": req.LoginEmail,
		"role":        req.Role,
		"department":  req.Department,
		"pwd":         hash,
		"created_on":  time.Now(),
	}
	res, err := helper.InsertData(c, "team", doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

// MeHandler - current authenticated principal
func MeHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	return helper.SuccessResponse(c, token)
}

func ChangePasswordHandler(c *fiber.Ctx) error {
	userToken := helper.GetUserTokenValue(c)
	req := new(ChangePasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	result := database.Collection("team").FindOne(ctx, bson.M{"_id": userToken.UserId})
	var member bson.M
	err := result.Decode(&member)
	if err == mongo.ErrNoDocuments {
		return helper.BadRequest("User not available")
	}
	if err != nil {
		return helper.Unexpected("Internal server Error")
	}
	pwd, _ := member["pwd"].(string)
	//Check given old password is right or not?
	if !helper.CheckPasswordHash(req.OldPwd, pwd) {
		return helper.BadRequest("Your Old password is Wrong!")
	}
	hash, err := helper.GeneratePasswordHash(req.NewPwd)
	if err != nil {
		return helper.Unexpected(err.Error())
	}
	_, err = database.Collection("team").UpdateByID(ctx,
		userToken.UserId,
		bson.M{"$set": bson.M{"pwd": hash}},
	)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return c.JSON("Password Updated")
}
