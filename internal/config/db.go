package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

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
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('BUYER', 'REALTOR', 'ADMIN')) DEFAULT 'BUYER',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS homes (
		id SERIAL PRIMARY KEY,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		land_size DOUBLE PRECISION NOT NULL,
		property_type VARCHAR(50) NOT NULL CHECK (property_type IN ('RESIDENTIAL', 'CONDO')),
		number_of_bedrooms INT NOT NULL,
		number_of_bathrooms INT NOT NULL,
		listed_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		realtor_id INT NOT NULL,
		FOREIGN KEY (realtor_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS images (
		id SERIAL PRIMARY KEY,
		url TEXT NOT NULL,
		home_id INT NOT NULL,
		FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS messages (
		id SERIAL PRIMARY KEY,
		message TEXT NOT NULL,
		realtor_id INT NOT NULL,
		buyer_id INT NOT NULL,
		home_id INT NOT NULL,
		FOREIGN KEY (realtor_id) REFERENCES users(id),
		FOREIGN KEY (buyer_id) REFERENCES users(id),
		FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_homes_city ON homes(city);
	CREATE INDEX IF NOT EXISTS idx_homes_price ON homes(price);
	CREATE INDEX IF NOT EXISTS idx_homes_property_type ON homes(property_type);
	CREATE INDEX IF NOT EXISTS idx_homes_realtor_id ON homes(realtor_id);
	CREATE INDEX IF NOT EXISTS idx_images_home_id ON images(home_id);
	CREATE INDEX IF NOT EXISTS idx_messages_home_id ON messages(home_id);

    -- Function to update updated_at column
    CREATE OR REPLACE FUNCTION update_updated_at_column()
    RETURNS TRIGGER AS $$
    BEGIN
       NEW.updated_at = NOW();
       RETURN NEW;
    END;
    $$ language 'plpgsql';

    -- Trigger for homes table
    DO $$
    BEGIN
        IF NOT EXISTS (
            SELECT 1
            FROM pg_trigger
            WHERE tgname = 'set_homes_updated_at' AND tgrelid = 'homes'::regclass
        ) THEN
            CREATE TRIGGER set_homes_updated_at
            BEFORE UPDATE ON homes
            FOR EACH ROW
            EXECUTE FUNCTION update_updated_at_column();
        END IF;
    END
    $$;
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}
