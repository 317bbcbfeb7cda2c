package db

import (
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Artem310/TaskManagerProject/internal/config"
)

const (
	defaultParams   = "parseTime=true&multiStatements=true"
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// BuildDSN formats the MySQL DSN from config. Timestamps are always scanned
// as time.Time in UTC whatever MYSQL_PARAMS says.
func BuildDSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}

	dsn, err := mysql.ParseDSN(fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		net.JoinHostPort(conf.DbHost, conf.DbPort),
		conf.DbName,
		params,
	))
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	dsn.ParseTime = true
	dsn.Loc = time.UTC

	return dsn.FormatDSN(), nil
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := BuildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}
