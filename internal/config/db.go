package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
	"clinic_agenda/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(60) NOT NULL,
		surname VARCHAR(60) NOT NULL DEFAULT '',
		second_surname VARCHAR(60) NOT NULL DEFAULT '',
		phone VARCHAR(20) NOT NULL DEFAULT '',
		movil VARCHAR(20) NOT NULL DEFAULT '',
		email VARCHAR(120) UNIQUE NOT NULL,
		color VARCHAR(20) NOT NULL DEFAULT '#000000',
		admin BOOLEAN NOT NULL DEFAULT FALSE,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS customers (
		id SERIAL PRIMARY KEY,
		name VARCHAR(30) NOT NULL,
		surname VARCHAR(50) NOT NULL,
		second_surname VARCHAR(50) NOT NULL DEFAULT '',
		phone VARCHAR(10) NOT NULL,
		email VARCHAR(60) UNIQUE NOT NULL,
		dni VARCHAR(20) UNIQUE NOT NULL,
		obs VARCHAR(150) NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS tipologias (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(150) NOT NULL,
		descripcion VARCHAR(500) NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS formas_pago (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(150) NOT NULL,
		descripcion VARCHAR(500) NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS appointments (
		id SERIAL PRIMARY KEY,
		doctora_id INTEGER NOT NULL,
		paciente_id INTEGER,
		paciente_nombre VARCHAR(120) NOT NULL,
		paciente_telefono VARCHAR(20) NOT NULL DEFAULT '',
		paciente_email VARCHAR(120) NOT NULL DEFAULT '',
		tipologia_id INTEGER NOT NULL,
		forma_pago_id INTEGER NOT NULL,
		estado VARCHAR(20) NOT NULL DEFAULT 'pendiente'
			CHECK (estado IN ('pendiente', 'realizada', 'no_realizada')),
		notas_clinicas TEXT NOT NULL DEFAULT '',
		costo NUMERIC(10,2) NOT NULL DEFAULT 0,
		importe NUMERIC(10,2) NOT NULL DEFAULT 0,
		moneda VARCHAR(10) NOT NULL DEFAULT '',
		fecha DATE NOT NULL,
		hora_inicio TIME NOT NULL,
		hora_fin TIME NOT NULL
	);

	-- Indexes for the agenda filters
	CREATE INDEX IF NOT EXISTS idx_appointments_fecha ON appointments(fecha);
	CREATE INDEX IF NOT EXISTS idx_appointments_doctora_id ON appointments(doctora_id);
	CREATE INDEX IF NOT EXISTS idx_appointments_estado ON appointments(estado);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}

// SeedAdmin inserts the initial staff account when the users table is empty,
// so a fresh install always has a login. Credentials come from ADMIN_USERNAME
// and ADMIN_PASSWORD, defaulting to admin / admin123.
func SeedAdmin(userRepo repository.UserRepository) error {
	count, err := userRepo.Count(context.Background())
	if err != nil {
		return fmt.Errorf("unable to check users table: %w", err)
	}
	if count > 0 {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@clinic.local"
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("unable to hash admin password: %w", err)
	}

	admin := &model.User{
		Name:         username,
		Email:        email,
		Color:        "#3788d8",
		Admin:        true,
		PasswordHash: hash,
	}
	if err := userRepo.Create(context.Background(), admin); err != nil {
		return fmt.Errorf("unable to seed admin user: %w", err)
	}

	log.Printf("Seeded initial admin user %q", username)
	return nil
}
