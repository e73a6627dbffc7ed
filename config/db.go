package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-premium-backend/models"
)

// resolveAuditDSN builds the audit-trail DSN. AUDIT_DB_URL (a mysql:// URL)
// wins; otherwise the AUDIT_DB_* parts are assembled when a host is set. An
// empty result disables persistence.
func resolveAuditDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("AUDIT_DB_URL"))
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	host := strings.TrimSpace(os.Getenv("AUDIT_DB_HOST"))
	if host == "" {
		return "", nil
	}

	cfg := sqldriver.NewConfig()
	cfg.User = envOrDefault("AUDIT_DB_USER", "root")
	cfg.Passwd = envOrDefault("AUDIT_DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + envOrDefault("AUDIT_DB_PORT", "3306")
	cfg.DBName = envOrDefault("AUDIT_DB_NAME", "hotel_audit")
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// ConnectAuditDatabase opens the audit database and migrates the event
// table. A nil db with a nil error means no DSN was configured.
func ConnectAuditDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, nil
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.AuditEvent{}); err != nil {
		return nil, err
	}
	return db, nil
}
