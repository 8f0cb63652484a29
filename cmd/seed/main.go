// seed - 데모/개발용 초기 데이터 적재 도구
//
// 기존 config/log/deployment/incident를 비우고 다시 채운다.
// 운영 DB에 돌리면 sync로 쌓인 기록도 날아가니 주의.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/ops-console/backend/internal/config"
	"github.com/ops-console/backend/internal/db"
	"github.com/ops-console/backend/internal/model"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}
	defer pool.Close()
	store := db.NewPostgres(pool)

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("[Seed] Failed to ensure schema: %v", err)
	}

	log.Printf("[Seed] Seeding database...")

	for _, wipe := range []func(context.Context) error{
		store.DeleteAllLogs,
		store.DeleteAllDeployments,
		store.DeleteAllIncidents,
		store.DeleteAllConfig,
	} {
		if err := wipe(ctx); err != nil {
			log.Fatalf("[Seed] Failed to clear table: %v", err)
		}
	}

	// 1. System Config (Status Page 표시 데이터)
	configs := map[string]string{
		"learningToday":       "Kubernetes Network Policies",
		"yearGoal":            "CKA Certification",
		"currentRole_title":   "Cloud / DevOps Engineer (Aspirant)",
		"currentRole_company": "Open to Opportunities",
		"currentRole_url":     "https://linkedin.com/in/rushiraj",
		"currentRole_status":  "Actively Looking",
		"region":              "ap-south-1",
	}
	for key, value := range configs {
		if err := store.UpsertConfig(ctx, key, value); err != nil {
			log.Fatalf("[Seed] Failed to upsert config %s: %v", key, err)
		}
	}

	// 2. Deployment
	deployDetails, _ := json.Marshal(model.DeploymentDetails{
		Description: "Personal DevOps portfolio built as a production console interface",
		GitHub:      "https://github.com/rushiraj/portfolio-console",
		Strategy:    "Blue-Green Deployment",
		Pipeline: []model.PipelineStage{
			{Stage: "Build", Status: "complete"},
			{Stage: "Test", Status: "complete"},
			{Stage: "Deploy", Status: "complete"},
			{Stage: "Verify", Status: "complete"},
		},
		Decisions: []string{
			"Chose Vite over CRA for faster builds",
			"Implemented health checks before traffic switch",
			"Used immutable infrastructure pattern",
		},
	})
	if err := store.InsertDeployment(ctx, model.DeploymentEntry{
		Project:   "portfolio-console",
		Status:    "success",
		Timestamp: time.Now().Add(-2 * time.Hour),
		Details:   deployDetails,
	}); err != nil {
		log.Fatalf("[Seed] Failed to insert deployment: %v", err)
	}

	// 3. Incident
	timeline, _ := json.Marshal([]model.TimelineStep{
		{Time: "14:32", Action: "Detection", Detail: "Alert triggered: API latency > 3s"},
		{Time: "14:35", Action: "Diagnosis", Detail: "Pool at 100% capacity"},
		{Time: "14:55", Action: "Fix Deployed", Detail: "Patched connection handling"},
		{Time: "15:10", Action: "Recovery", Detail: "System nominal"},
	})
	if err := store.CreateIncident(ctx, model.Incident{
		ID:        "INC-" + uuid.NewString(),
		Title:     "Database Connection Pool Exhaustion",
		Date:      time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		Impact:    "API response times degraded to 5s+ for 23 minutes",
		RootCause: "Connection leak in background job processor",
		Status:    "resolved",
		Learning:  "Added connection pool monitoring and leak detection",
		Timeline:  timeline,
	}); err != nil {
		log.Fatalf("[Seed] Failed to insert incident: %v", err)
	}

	// 4. Logs
	learningDetails, _ := json.Marshal(map[string]string{"source": "Official Docs", "topic": "NetPol"})
	deployLogDetails, _ := json.Marshal(map[string]string{"version": "v1.0.1", "env": "prod"})
	seedLogs := []model.LogEntry{
		{
			Level:     model.LogLevelInfo,
			Category:  model.LogCategoryLearning,
			Message:   "Started Kubernetes Network Policies module",
			Details:   learningDetails,
			Timestamp: time.Now().Add(-4 * time.Hour),
		},
		{
			Level:     model.LogLevelInfo,
			Category:  model.LogCategoryDeployment,
			Message:   "portfolio-console deployed successfully",
			Details:   deployLogDetails,
			Timestamp: time.Now().Add(-2 * time.Hour),
		},
		{
			Level:     model.LogLevelWarn,
			Category:  model.LogCategorySystem,
			Message:   "High CPU usage on worker-02",
			Timestamp: time.Now().Add(-24 * time.Hour),
		},
	}
	for _, entry := range seedLogs {
		if err := store.InsertLog(ctx, entry); err != nil {
			log.Fatalf("[Seed] Failed to insert log: %v", err)
		}
	}

	log.Printf("[Seed] Seeding complete.")
}
