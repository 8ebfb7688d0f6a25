package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is the console database handle, shared by every feature module.
var DB *mongo.Database

func Init() {
	DB = CreateDBConnection(
		getenvStr("MONGO_DB_HOST"),
		getenvInt("MONGO_DB_PORT"),
		getenvStr("MONGO_DB_NAME"),
		getenvStr("MONGO_DB_USER"),
		getenvStr("MONGO_DB_PASSWORD"),
	)
}

func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

func CreateDBConnection(host string, port int, dbName string, userid string, pwd string) *mongo.Database {
	dbUrl := fmt.Sprintf("mongodb://%s:%s@%s:%d/%s?retryWrites=true&authSource=admin&w=majority&authMechanism=SCRAM-SHA-256", userid, pwd, host, port, dbName)
	client, err := mongo.Connect(
		context.Background(),
		options.Client().ApplyURI(dbUrl),
	)
	if err != nil {
		log.Fatal(err)
		return nil
	}
	// Check the connection
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Printf("DB Ping Error")
		log.Fatal(err)
		return nil
	}
	return client.Database(dbName)
}

func getenvStr(key string) string {
	return os.Getenv(key)
}

func getenvInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}
