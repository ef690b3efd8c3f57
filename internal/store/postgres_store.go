package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is an alternative backend for deployments that already run
// postgres. Save replaces the table contents so the semantics stay identical
// to the file store: what is saved is exactly the current booking set.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, records []Record) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings`); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := tx.Exec(ctx, `INSERT INTO bookings (id, passenger_name, flight_number, travel_date)
			VALUES ($1, $2, $3, $4)`, r.ID, r.PassengerName, r.FlightNumber, r.Date); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) Load(ctx context.Context) ([]Record, error) {
	rows, err := s.db.Query(ctx, `SELECT id, passenger_name, flight_number, travel_date FROM bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.PassengerName, &r.FlightNumber, &r.Date); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

var _ Store = (*PostgresStore)(nil)
