package trainings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uteam-club/uteam/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTrainingNotFound = errors.New("training not found")

type ListParams struct {
	TeamID   string
	FromDate string // YYYY-MM-DD, inclusive
	ToDate   string // YYYY-MM-DD, inclusive
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, team_id, title, type, date, time, created_at FROM training WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var trainings []Training
	for rows.Next() {
		var t Training
		if err := rows.Scan(&t.ID, &t.TeamID, &t.Title, &t.Type, &t.Date, &t.Time, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		trainings = append(trainings, t)
	}

	if len(trainings) != 1 {
		return nil, ErrTrainingNotFound
	}
	return &trainings[0], nil
}

// ListWithResponses returns the trainings of a team in a date range,
// each carrying the count of completed RPE responses linked to it.
// The selectors on the analysis page only offer trainings that have
// at least one response, but filtering is left to the caller so the
// same query also feeds the plain calendar list.
func (r *Repo) ListWithResponses(ctx context.Context, params ListParams) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.listWithResponses")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("team_id", params.TeamID))
	span.SetAttributes(attribute.String("from", params.FromDate))
	span.SetAttributes(attribute.String("to", params.ToDate))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				t.id, t.team_id, t.title, t.type, t.date, t.time, t.created_at,
				COUNT(r.id) FILTER (WHERE r.completed_at IS NOT NULL) AS responses
			FROM training t
			LEFT JOIN rpe_survey_response r ON r.training_id = t.id
			WHERE t.team_id = $1
				AND ($2::text = '' OR t.date >= $2)
				AND ($3::text = '' OR t.date <= $3)
			GROUP BY t.id
			ORDER BY t.date DESC, t.time DESC;`,
		params.TeamID, params.FromDate, params.ToDate,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var trainings []Training
	for rows.Next() {
		var t Training
		var createdAt time.Time
		if err := rows.Scan(
			&t.ID, &t.TeamID, &t.Title, &t.Type, &t.Date, &t.Time, &createdAt, &t.ResponsesCount,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		t.CreatedAt = createdAt
		trainings = append(trainings, t)
	}

	if trainings == nil {
		trainings = make([]Training, 0)
	}
	return trainings, nil
}
