/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package qtty_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/qtty"
	"dirpx.dev/qtty/units"
)

func TestScanWithMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO trips").
		WithArgs(42.5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT distance FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{"distance"}).
			AddRow(42.5).
			AddRow(int64(7)).
			AddRow("12.25").
			AddRow([]byte("3")).
			AddRow(nil))

	_, err = db.Exec("INSERT INTO trips(distance) VALUES (?)", qtty.New[units.Kilometer](42.5).Value())
	require.NoError(t, err)

	rows, err := db.Query("SELECT distance FROM trips")
	require.NoError(t, err)
	defer rows.Close()

	var got []float64
	var scanErr error
	for rows.Next() {
		var d units.Kilometers
		if err := rows.Scan(&d); err != nil {
			scanErr = err
			continue
		}
		got = append(got, d.Value())
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []float64{42.5, 7, 12.25, 3}, got)
	assert.ErrorIs(t, scanErr, qtty.ErrScanNull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanRejectsText(t *testing.T) {
	var d units.Meters
	assert.Error(t, d.Scan("ten"))
	assert.Error(t, d.Scan(true))
	require.NoError(t, d.Scan(float32(0.5)))
	assert.Equal(t, 0.5, d.Value())
}

func TestSQLiteRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE orbits (body TEXT, semi_major REAL)`)
	require.NoError(t, err)

	earth := qtty.To[units.Kilometer](qtty.New[units.AstronomicalUnit](1))
	_, err = db.Exec(`INSERT INTO orbits VALUES (?, ?)`, "earth", earth.Value())
	require.NoError(t, err)

	var back units.Kilometers
	require.NoError(t, db.QueryRow(`SELECT semi_major FROM orbits WHERE body = ?`, "earth").Scan(&back))
	assert.Equal(t, earth, back)
	assert.InDelta(t, 149597870.7, back.Value(), 1e-6)
}
