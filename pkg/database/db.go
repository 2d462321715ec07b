package database

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jcabalquinto/ward-roster-api/internal/logger"
	"github.com/jcabalquinto/ward-roster-api/pkg/models"
)

// EmployeeRecord represents the employees table
type EmployeeRecord struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName        string    `gorm:"not null" json:"first_name"`
	LastName         string    `gorm:"not null" json:"last_name"`
	MobileNumber     string    `json:"mobile_number,omitempty"`
	Position         string    `gorm:"not null" json:"position"`
	RequestedDaysOff []string  `gorm:"serializer:json" json:"requested_days_off"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Model converts the record to the domain employee
func (r *EmployeeRecord) Model() models.Employee {
	return models.Employee{
		ID:               r.ID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		MobileNumber:     r.MobileNumber,
		Position:         models.Position(r.Position),
		RequestedDaysOff: r.RequestedDaysOff,
	}
}

// ScheduleRecord represents the schedules table. Shift assignments and
// day-off requests are stored as JSON documents, mirroring the document
// shape the schedule is exchanged in.
type ScheduleRecord struct {
	ID             string                   `gorm:"primaryKey;size:36" json:"id"`
	Name           string                   `gorm:"not null" json:"name"`
	StartDate      string                   `gorm:"not null" json:"start_date"`
	EndDate        string                   `gorm:"not null" json:"end_date"`
	ShiftType      string                   `gorm:"not null" json:"shift_type"`
	Shifts         []models.ShiftAssignment `gorm:"serializer:json" json:"shifts"`
	DayOffRequests map[string][]string      `gorm:"serializer:json" json:"day_off_requests"`
	CreatedAt      time.Time                `json:"created_at"`
}

// Model converts the record to the domain schedule
func (r *ScheduleRecord) Model() models.Schedule {
	return models.Schedule{
		ID:             r.ID,
		Name:           r.Name,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		ShiftType:      models.ShiftPattern(r.ShiftType),
		Shifts:         r.Shifts,
		DayOffRequests: r.DayOffRequests,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"-"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table, one row per key per day
type APIUsage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	KeyID          uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date           string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount   int    `gorm:"default:0" json:"request_count"`
	TotalSchedules int    `gorm:"default:0" json:"total_schedules"`
	TotalEmployees int    `gorm:"default:0" json:"total_employees"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema.
// DATABASE_URL selects postgres; otherwise a sqlite file at DATA_PATH.
func InitDB() *gorm.DB {
	log := logger.New()

	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "ward_roster.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&EmployeeRecord{},
		&ScheduleRecord{},
		&APIKey{},
		&APIUsage{},
		&MasterUser{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
