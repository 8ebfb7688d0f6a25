package helper

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"innomatrics.com/go-api/pkg/shared/database"
)

var updateOpts = options.Update().SetUpsert(true)
var findUpdateOpts = options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
var ctx = context.Background()

func InsertData(c *fiber.Ctx, collectionName string, data interface{}) (error, error) {
	response, err := database.Collection(collectionName).InsertOne(ctx, data)
	if err != nil {
		return BadRequest(err.Error()), err
	}
	return SuccessResponse(c, response), nil
}

func UpdateData(collectionName string, filter interface{}, set interface{}) (*mongo.UpdateResult, error) {
	return database.Collection(collectionName).UpdateOne(ctx, filter, bson.M{"$set": set}, updateOpts)
}

func DeleteData(collectionName string, filter interface{}) (*mongo.DeleteResult, error) {
	return database.Collection(collectionName).DeleteOne(ctx, filter)
}

func GetAggregateQueryResult(collectionName string, query interface{}) ([]bson.M, error) {
	response, err := ExecuteAggregateQuery(collectionName, query)
	if err != nil {
		return nil, err
	}
	var result []bson.M
	if err = response.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func ExecuteAggregateQuery(collectionName string, query interface{}) (*mongo.Cursor, error) {
	cur, err := database.Collection(collectionName).Aggregate(ctx, query)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func GetQueryResult(collectionName string, query interface{}, page int64, limit int64, sort interface{}) ([]bson.M, error) {
	response, err := ExecuteQuery(collectionName, query, page, limit, sort)
	if err != nil {
		return nil, err
	}
	var result []bson.M
	if err = response.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func ExecuteQuery(collectionName string, query interface{}, page int64, limit int64, sort interface{}) (*mongo.Cursor, error) {
	pageOptions := options.Find()
	skip := int64(0)
	if page > 0 {
		skip = (page - int64(1)) * limit
	}
	pageOptions.SetSkip(skip)   //0-i
	pageOptions.SetLimit(limit) // number of records to return
	if sort != nil {
		pageOptions.Sort = sort
	}
	response, err := database.Collection(collectionName).Find(ctx, query, pageOptions)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func ExecuteFindAndModifyQuery(collectionName string, filter interface{}, data interface{}) (bson.M, error) {
	var result bson.M
	err := database.Collection(collectionName).FindOneAndUpdate(ctx, filter, data, findUpdateOpts).Decode(&result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetReportQueryResult(collectionName string, req ReportRequest) ([]bson.M, error) {
	//build filter query
	query := make(map[string]interface{})
	//Check emp id
	if req.EmpId != "" {
		query["employee_id"] = req.EmpId
	}
	if len(req.EmpIds) > 0 {
		query["employee_id"] = bson.M{"$in": req.EmpIds}
	}
	//if date filter presented or not
	if req.DateColumn != "" {
		if !req.StartDate.IsZero() && !req.EndDate.IsZero() {
			query[req.DateColumn] = bson.M{"$gte": req.StartDate, "$lte": req.EndDate}
		} else if !req.StartDate.IsZero() && req.EndDate.IsZero() {
			query[req.DateColumn] = bson.M{"$gte": req.StartDate}
		} else if req.StartDate.IsZero() && !req.EndDate.IsZero() {
			query[req.DateColumn] = bson.M{"$lte": req.EndDate}
		}
	}
	if req.Status != "" {
		query["status"] = req.Status
	}
	return GetQueryResult(collectionName, query, int64(1), int64(200), nil)
}

func generateSearchQuery(filters []Filter) interface{} {
	if len(filters) == 0 {
		return nil
	}
	//build query
	var finalQuery interface{}
	var queryArray [](map[string][]bson.M)
	for _, filter := range filters {
		filterQuery := make(map[string][]bson.M)
		var con []bson.M
		conditions := filter.Conditions
		for _, condition := range conditions {
			var f bson.M
			if condition.Type == "date" {
				date, _ := time.Parse(time.RFC3339, condition.Value)
				f = bson.M{condition.Column: bson.M{condition.Operator: date}}
			} else {
				f = bson.M{condition.Column: bson.M{condition.Operator: condition.Value}}
			}
			con = append(con, f)
		}
		filterQuery[filter.Clause] = con
		queryArray = append(queryArray, filterQuery)
	}
	if len(filters) == 1 {
		finalQuery = queryArray[0]
	} else {
		finalQuery = bson.M{"$and": queryArray}
	}
	return finalQuery
}

func GetSearchQueryResult(collectionName string, filters []Filter) ([]bson.M, error) {
	query := generateSearchQuery(filters)
	return GetQueryResult(collectionName, query, int64(1), int64(200), nil)
}
