package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UserSchema represents the database schema for the users table.
// Required columns are pointers so that an absent value reaches the
// store as NULL and is rejected there.
type UserSchema struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      *string    `gorm:"size:100;not null"`
	Email     *string    `gorm:"size:150;not null;unique"`
	Age       *int       `gorm:"type:integer"`
	Phone     *string    `gorm:"size:15"`
	Address   *string    `gorm:"type:text"`
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// TodoSchema represents the database schema for the todos table.
// Deleting the owning user deletes its todos (ON DELETE CASCADE).
type TodoSchema struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	UserID      *int64
	Title       *string    `gorm:"size:255;not null"`
	Description *string    `gorm:"type:text"`
	IsCompleted bool       `gorm:"default:false"`
	DueDate     *time.Time `gorm:"type:date"`
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// TableName specifies the table name for the TodoSchema model.
func (TodoSchema) TableName() string {
	return "todos"
}

// Table DDL per dialect. Timestamp defaults cover rows written by other
// clients; rows inserted through gorm get their timestamps from gorm.
var (
	postgresSchema = []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(150) UNIQUE NOT NULL,
			age INT,
			phone VARCHAR(15),
			address TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS todos (
			id SERIAL PRIMARY KEY,
			user_id INT REFERENCES users(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			is_completed BOOLEAN DEFAULT FALSE,
			due_date DATE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	sqliteSchema = []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(150) UNIQUE NOT NULL,
			age INTEGER,
			phone VARCHAR(15),
			address TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			is_completed BOOLEAN DEFAULT FALSE,
			due_date DATE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
)

// EnsureSchema creates the users and todos tables when they are missing.
// Tables that already exist are left untouched, so it is safe on every start
// and when several instances start at once.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	ddl := postgresSchema
	if db.Dialector.Name() == "sqlite" {
		ddl = sqliteSchema
	}

	// users first: todos references it
	for _, stmt := range ddl {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}
