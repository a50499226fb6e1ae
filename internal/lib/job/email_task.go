package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. Asynq routes on them.
const (
	TaskWelcome     = "email:welcome"
	TaskApplication = "email:application"
)

type WelcomeEmailPayload struct {
	To        string `json:"to"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

type ApplicationEmailPayload struct {
	To          string `json:"to"`
	FirstName   string `json:"first_name"`
	JobID       int    `json:"job_id"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
}

// NewWelcomeEmailTask builds the task sent after a user registers.
func NewWelcomeEmailTask(p WelcomeEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewApplicationEmailTask builds the confirmation sent after a user applies
// to a job. Confirmations are low priority.
func NewApplicationEmailTask(p ApplicationEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskApplication,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
