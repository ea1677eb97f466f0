package db

import (
	"testing"

	"catalog/internal/config"
)

func testConfig(driver string) config.Config {
	return config.Config{
		DBDriver:   driver,
		DBHost:     "127.0.0.1",
		DBUser:     "root",
		DBPassword: "pw",
		DBName:     "catalog",
		DBPort:     "3306",
	}
}

func TestDSNMySQL(t *testing.T) {
	got := DSN(testConfig("mysql"))
	want := "root:pw@tcp(127.0.0.1:3306)/catalog?charset=utf8mb4&parseTime=True&loc=Local"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDSNPostgres(t *testing.T) {
	cfg := testConfig("postgres")
	cfg.DBPort = "5432"
	got := DSN(cfg)
	want := "host=127.0.0.1 user=root password=pw dbname=catalog port=5432 sslmode=disable"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDSNSQLite(t *testing.T) {
	cfg := testConfig("sqlite")
	cfg.DBName = ":memory:"
	if got := DSN(cfg); got != ":memory:" {
		t.Errorf("got %q", got)
	}
}

func TestDSNUnknownDriver(t *testing.T) {
	if got := DSN(testConfig("oracle")); got != "" {
		t.Errorf("expected empty DSN for unknown driver, got %q", got)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(testConfig("oracle")); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenSQLite(t *testing.T) {
	cfg := testConfig("sqlite")
	cfg.DBName = t.TempDir() + "/test.db"

	gdb, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		t.Errorf("ping: %v", err)
	}
	if max := sqlDB.Stats().MaxOpenConnections; max != 10 {
		t.Errorf("pool bound: expected 10, got %d", max)
	}
}
