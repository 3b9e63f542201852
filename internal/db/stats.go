package db

import (
	"database/sql"

	"parkmap/internal/service"
)

// RefreshZoneStats (re)creates the zone_stats table from the current
// per-zone feature counts. Called after every dataset load.
func RefreshZoneStats(conn *sql.DB, stats []service.ZoneStat) error {
	if _, err := conn.Exec(
		`CREATE OR REPLACE TABLE zone_stats (zone VARCHAR, segments INTEGER, points INTEGER)`,
	); err != nil {
		return err
	}
	for _, st := range stats {
		if _, err := conn.Exec(
			`INSERT INTO zone_stats VALUES (?, ?, ?)`,
			st.Zone, st.Segments, st.Points,
		); err != nil {
			return err
		}
	}
	return nil
}

// QueryZoneStats reads the zone_stats table back, sorted by zone.
func QueryZoneStats(conn *sql.DB) ([]service.ZoneStat, error) {
	rows, err := conn.Query(`SELECT zone, segments, points FROM zone_stats ORDER BY zone`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []service.ZoneStat
	for rows.Next() {
		var st service.ZoneStat
		if err := rows.Scan(&st.Zone, &st.Segments, &st.Points); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
