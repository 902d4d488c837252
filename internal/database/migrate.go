package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are idempotent CREATE statements run at startup, in order.
// The schema is small enough that a migration framework would be overhead;
// altering columns still means writing a new statement here.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		number VARCHAR(16) NOT NULL,
		type VARCHAR(64) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'available',
		rate DOUBLE NOT NULL DEFAULT 0,
		capacity INT NOT NULL DEFAULT 1,
		UNIQUE KEY uq_rooms_number (number)
	)`,
	`CREATE TABLE IF NOT EXISTS guests (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS stays (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		guest_id BIGINT UNSIGNED NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		nights INT NOT NULL DEFAULT 0,
		total_spent DOUBLE NOT NULL DEFAULT 0,
		KEY idx_stays_guest (guest_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		guest_id BIGINT UNSIGNED NOT NULL,
		room_id BIGINT UNSIGNED NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		total_amount DOUBLE NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT 'confirmed',
		guests_count INT NOT NULL DEFAULT 1,
		children_count INT NOT NULL DEFAULT 0,
		early_check_in TINYINT(1) NOT NULL DEFAULT 0,
		late_check_out TINYINT(1) NOT NULL DEFAULT 0,
		extra_bed TINYINT(1) NOT NULL DEFAULT 0,
		down_payment_amount DOUBLE NOT NULL DEFAULT 0,
		down_payment_method VARCHAR(32) NOT NULL DEFAULT '',
		booking_source VARCHAR(64) NOT NULL DEFAULT '',
		guest_name VARCHAR(255) NOT NULL DEFAULT '',
		room_type VARCHAR(64) NOT NULL DEFAULT '',
		room_number VARCHAR(16) NOT NULL DEFAULT '',
		KEY idx_reservations_guest (guest_id),
		KEY idx_reservations_room (room_id),
		KEY idx_reservations_dates (check_in, check_out)
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		reservation_id BIGINT UNSIGNED NOT NULL,
		guest_name VARCHAR(255) NOT NULL DEFAULT '',
		room_number VARCHAR(16) NOT NULL DEFAULT '',
		check_in_date DATE NOT NULL,
		check_out_date DATE NOT NULL,
		room_charge DOUBLE NOT NULL DEFAULT 0,
		additional_charges DOUBLE NOT NULL DEFAULT 0,
		total_amount DOUBLE NOT NULL DEFAULT 0,
		payment_method VARCHAR(32) NOT NULL DEFAULT 'cash',
		status VARCHAR(32) NOT NULL DEFAULT 'unpaid',
		KEY idx_invoices_reservation (reservation_id)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INT NOT NULL PRIMARY KEY,
		doc JSON NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'RECEPTIONIST',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_refresh_hash (token_hash),
		KEY idx_refresh_user (user_id)
	)`,
}

// Migrate applies the schema statements in order. Statements are
// idempotent, so running at every startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
