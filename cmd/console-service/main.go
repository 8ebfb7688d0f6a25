package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"innomatrics.com/go-api/pkg/console-service/attendance"
	"innomatrics.com/go-api/pkg/console-service/authentication"
	"innomatrics.com/go-api/pkg/console-service/chat"
	"innomatrics.com/go-api/pkg/console-service/leave"
	"innomatrics.com/go-api/pkg/console-service/payslip"
	"innomatrics.com/go-api/pkg/console-service/projects"
	"innomatrics.com/go-api/pkg/console-service/reports"
	"innomatrics.com/go-api/pkg/console-service/tasks"
	"innomatrics.com/go-api/pkg/console-service/team"
	"innomatrics.com/go-api/pkg/shared/database"
	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
	"innomatrics.com/go-api/server"
)

// liveCollections carry a dashboard that re-renders on every store change.
var liveCollections = []struct {
	name    string
	orderBy string
	desc    bool
}{
	{"projects", "created_on", true},
	{"workSessions", "day", true},
	{"chatMessages", "timestamp", false},
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	// Server initialization
	app := server.Create()
	database.Init()
	helper.InitS3Client()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	state := realtime.NewContainer()
	// change streams need a replica set; handlers fall back to direct
	// queries when disabled
	if helper.GetenvBool("REALTIME_ENABLED") {
		for _, lc := range liveCollections {
			sub := realtime.Subscribe(ctx, database.Collection(lc.name), lc.orderBy, lc.desc)
			defer sub.Close()
			go state.Consume(sub)
		}
	}

	authentication.SetupRoutes(app)
	projects.SetupRoutes(app, state)
	tasks.SetupRoutes(app)
	team.SetupRoutes(app)
	reports.SetupRoutes(app)
	attendance.SetupRoutes(app, state)
	leave.SetupRoutes(app)
	chat.SetupRoutes(app, state)
	payslip.SetupRoutes(app)

	if err := server.Listen(app); err != nil {
		log.Panic(err)
	}
}
