package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Mailer is the part of the email client the task handlers use.
type Mailer interface {
	SendWelcomeEmail(to, username, firstName string) error
	SendApplicationEmail(to, firstName, jobTitle, companyName string) error
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.Username, p.FirstName); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) handleApplicationEmailTask(ctx context.Context, t *asynq.Task) error {
	var p ApplicationEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal application email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "application").
		Str("to", p.To).
		Int("job_id", p.JobID).
		Msg("Processing application email task")

	if err := j.mailer.SendApplicationEmail(p.To, p.FirstName, p.JobTitle, p.CompanyName); err != nil {
		j.logger.Error().
			Str("type", "application").
			Str("to", p.To).
			Int("job_id", p.JobID).
			Err(err).
			Msg("Failed to send application email")
		return err
	}

	j.logger.Info().
		Str("type", "application").
		Str("to", p.To).
		Int("job_id", p.JobID).
		Msg("Successfully sent application email")

	return nil
}
