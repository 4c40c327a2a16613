package surveys

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uteam-club/uteam/internal/telemetry/tracing"
	"github.com/uteam-club/uteam/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrResponseNotFound = errors.New("survey response not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ResponsesForTraining returns all RPE responses linked to one
// training, completed or not.
func (r *Repo) ResponsesForTraining(ctx context.Context, trainingID string) (_ []Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.responsesForTraining")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training_id", trainingID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				r.id, r.player_id, r.training_id, r.rpe_score, r.duration_minutes,
				r.created_at, r.completed_at, COALESCE(t.date, '')
			FROM rpe_survey_response r
			LEFT JOIN training t ON t.id = r.training_id
			WHERE r.training_id = $1
			ORDER BY r.created_at;`,
		trainingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2responses(rows)
}

// ResponsesForTeam returns the RPE response history of a whole team
// over a created-at range. The linked training date rides along so
// the load analyzer can bucket by event day instead of submission
// time.
func (r *Repo) ResponsesForTeam(ctx context.Context, teamID string, from, to time.Time) (_ []Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.responsesForTeam")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("team_id", teamID))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				r.id, r.player_id, r.training_id, r.rpe_score, r.duration_minutes,
				r.created_at, r.completed_at, COALESCE(t.date, '')
			FROM rpe_survey_response r
			JOIN player p ON p.id = r.player_id
			LEFT JOIN training t ON t.id = r.training_id
			WHERE p.team_id = $1
				AND r.created_at >= $2
				AND r.created_at <= $3
			ORDER BY r.created_at;`,
		teamID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2responses(rows)
}

// CreateForTraining inserts empty response rows for the given players,
// skipping those who already have one for this training. Returns the
// ids of the players a row was created for.
func (r *Repo) CreateForTraining(ctx context.Context, trainingID string, playerIDs []string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.createForTraining")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training_id", trainingID))
	span.SetAttributes(attribute.Int("players", len(playerIDs)))

	var created []string
	for _, playerID := range playerIDs {
		tag, err := r.db.Exec(
			ctx,
			`
				INSERT INTO rpe_survey_response (id, player_id, training_id, rpe_score, created_at)
				SELECT gen_random_uuid(), $1, $2, 0, NOW()
				WHERE NOT EXISTS (
					SELECT 1 FROM rpe_survey_response
					WHERE player_id = $1 AND training_id = $2
				);`,
			playerID, trainingID,
		)
		if err != nil {
			// two dispatches racing on the same training land here,
			// the row exists so the player is simply not re-created
			if pkg.IsUniqueViolationError(err) {
				continue
			}
			return nil, fmt.Errorf("insert response for player %s: %w", playerID, err)
		}
		if tag.RowsAffected() > 0 {
			created = append(created, playerID)
		}
	}

	if created == nil {
		created = make([]string, 0)
	}
	return created, nil
}

// SetDuration bulk-sets duration_minutes on the responses of a
// training. With an empty playerIDs slice all of them are updated.
// Returns ErrResponseNotFound when nothing matched.
func (r *Repo) SetDuration(ctx context.Context, trainingID string, playerIDs []string, minutes int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.setDuration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training_id", trainingID))
	span.SetAttributes(attribute.Int("minutes", minutes))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE rpe_survey_response
			SET duration_minutes = $1
			WHERE training_id = $2
				AND (cardinality($3::text[]) = 0 OR player_id = ANY($3));`,
		minutes, trainingID, playerIDs,
	)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrResponseNotFound
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) Schedules(ctx context.Context, teamID string) (_ []Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.schedules")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("team_id", teamID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, team_id, send_time, survey_type, enabled, created_at
			FROM survey_schedule
			WHERE ($1::text = '' OR team_id = $1)
			ORDER BY team_id;`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var schedules []Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(&s.ID, &s.TeamID, &s.SendTime, &s.SurveyType, &s.Enabled, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		schedules = append(schedules, s)
	}

	if schedules == nil {
		schedules = make([]Schedule, 0)
	}
	return schedules, nil
}

// UpsertSchedule creates or updates the dispatch schedule of a team
// for one survey type.
func (r *Repo) UpsertSchedule(ctx context.Context, schedule Schedule) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.upsertSchedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("team_id", schedule.TeamID))
	span.SetAttributes(attribute.String("survey_type", schedule.SurveyType))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO survey_schedule (id, team_id, send_time, survey_type, enabled, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW())
			ON CONFLICT (team_id, survey_type) DO UPDATE
			SET send_time = EXCLUDED.send_time, enabled = EXCLUDED.enabled;`,
		schedule.TeamID, schedule.SendTime, schedule.SurveyType, schedule.Enabled,
	)
	return err
}

func rows2responses(rows pgx.Rows) ([]Response, error) {
	var responses []Response
	for rows.Next() {
		var resp Response
		if err := rows.Scan(
			&resp.ID, &resp.PlayerID, &resp.TrainingID, &resp.RPEScore, &resp.DurationMinutes,
			&resp.CreatedAt, &resp.CompletedAt, &resp.TrainingDate,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		responses = append(responses, resp)
	}

	if responses == nil {
		responses = make([]Response, 0)
	}
	return responses, nil
}
