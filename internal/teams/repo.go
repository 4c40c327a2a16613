package teams

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uteam-club/uteam/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTeamNotFound = errors.New("team not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, clubID string) (_ []Team, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.teams.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("club_id", clubID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, club_id, timezone, created_at
			FROM team
			WHERE ($1::text = '' OR club_id = $1)
			ORDER BY name;`,
		clubID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2teams(rows)
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Team, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.teams.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, club_id, timezone, created_at FROM team WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	teams, err := rows2teams(rows)
	if err != nil {
		return nil, err
	}
	if len(teams) != 1 {
		return nil, ErrTeamNotFound
	}
	return &teams[0], nil
}

// Players returns the roster of a team, ordered the way the club UI
// shows it (last name first).
func (r *Repo) Players(ctx context.Context, teamID string) (_ []Player, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.teams.players")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("team_id", teamID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, team_id, first_name, last_name, telegram_id, created_at
			FROM player
			WHERE team_id = $1
			ORDER BY last_name, first_name;`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.TeamID, &p.FirstName, &p.LastName, &p.TelegramID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		players = append(players, p)
	}

	if players == nil {
		players = make([]Player, 0)
	}
	return players, nil
}

func rows2teams(rows pgx.Rows) ([]Team, error) {
	var teams []Team
	for rows.Next() {
		var id, name, clubID, timezone string
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &clubID, &timezone, &createdAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		teams = append(teams, Team{
			ID:        id,
			Name:      name,
			ClubID:    clubID,
			Timezone:  timezone,
			CreatedAt: createdAt,
		})
	}

	if teams == nil {
		teams = make([]Team, 0)
	}
	return teams, nil
}
