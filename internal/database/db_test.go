package database

import (
	"testing"

	"github.com/avolair/flight-roster/internal/config"
)

func TestMySQLDSN(t *testing.T) {
	cfg := config.Config{DBUser: "roster", DBPass: "s3cret", DBHost: "db", DBPort: "3306", DBName: "flights"}
	want := "roster:s3cret@tcp(db:3306)/flights?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := mysqlDSN(cfg); got != want {
		t.Errorf("mysqlDSN = %q, want %q", got, want)
	}
}

func TestMySQLDSNNoPassword(t *testing.T) {
	cfg := config.Config{DBUser: "roster", DBHost: "localhost", DBPort: "3306", DBName: "flights"}
	want := "roster@tcp(localhost:3306)/flights?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := mysqlDSN(cfg); got != want {
		t.Errorf("mysqlDSN = %q, want %q", got, want)
	}
}
