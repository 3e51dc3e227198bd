package repository

import (
	"fmt"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
	"github.com/fekuna/omnipos-catalog-sync/internal/pkg/database"
)

// statements holds the DDL and upsert for one dialect and sync mode.
//
// On conflict only price, stock and either rating (base mode) or
// inventory_value (value mode) are overwritten. title and category keep the
// values from the first insert.
type statements struct {
	schema string
	upsert string
}

const mysqlSchemaBase = `
    CREATE TABLE IF NOT EXISTS product_inventory (
        id INT PRIMARY KEY,
        title VARCHAR(255),
        category VARCHAR(100),
        price DECIMAL(10, 2),
        stock INT,
        rating DECIMAL(3, 2),
        last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )
`

const mysqlSchemaValue = `
    CREATE TABLE IF NOT EXISTS product_inventory (
        id INT PRIMARY KEY,
        title VARCHAR(255),
        category VARCHAR(100),
        price DECIMAL(10, 2),
        stock INT,
        rating DECIMAL(3, 2),
        inventory_value DECIMAL(15, 2),
        last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )
`

const mysqlUpsertBase = `
    INSERT INTO product_inventory (id, title, category, price, stock, rating)
    VALUES (:id, :title, :category, :price, :stock, :rating)
    ON DUPLICATE KEY UPDATE
        price = VALUES(price),
        stock = VALUES(stock),
        rating = VALUES(rating)
`

const mysqlUpsertValue = `
    INSERT INTO product_inventory (id, title, category, price, stock, rating, inventory_value)
    VALUES (:id, :title, :category, :price, :stock, :rating, :inventory_value)
    ON DUPLICATE KEY UPDATE
        price = VALUES(price),
        stock = VALUES(stock),
        inventory_value = VALUES(inventory_value)
`

// PostgreSQL has no ON UPDATE clause for columns, so the upsert bumps
// last_updated itself.
const postgresSchemaBase = `
    CREATE TABLE IF NOT EXISTS product_inventory (
        id INTEGER PRIMARY KEY,
        title VARCHAR(255),
        category VARCHAR(100),
        price NUMERIC(10, 2),
        stock INTEGER,
        rating NUMERIC(3, 2),
        last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    )
`

const postgresSchemaValue = `
    CREATE TABLE IF NOT EXISTS product_inventory (
        id INTEGER PRIMARY KEY,
        title VARCHAR(255),
        category VARCHAR(100),
        price NUMERIC(10, 2),
        stock INTEGER,
        rating NUMERIC(3, 2),
        inventory_value NUMERIC(15, 2),
        last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    )
`

const postgresUpsertBase = `
    INSERT INTO product_inventory (id, title, category, price, stock, rating)
    VALUES (:id, :title, :category, :price, :stock, :rating)
    ON CONFLICT (id)
    DO UPDATE SET
        price = EXCLUDED.price,
        stock = EXCLUDED.stock,
        rating = EXCLUDED.rating,
        last_updated = CURRENT_TIMESTAMP
`

const postgresUpsertValue = `
    INSERT INTO product_inventory (id, title, category, price, stock, rating, inventory_value)
    VALUES (:id, :title, :category, :price, :stock, :rating, :inventory_value)
    ON CONFLICT (id)
    DO UPDATE SET
        price = EXCLUDED.price,
        stock = EXCLUDED.stock,
        inventory_value = EXCLUDED.inventory_value,
        last_updated = CURRENT_TIMESTAMP
`

func statementsFor(driver string, mode model.SyncMode) (statements, error) {
	switch {
	case driver == database.DriverMySQL && mode == model.SyncModeBase:
		return statements{schema: mysqlSchemaBase, upsert: mysqlUpsertBase}, nil
	case driver == database.DriverMySQL && mode == model.SyncModeValue:
		return statements{schema: mysqlSchemaValue, upsert: mysqlUpsertValue}, nil
	case driver == database.DriverPostgres && mode == model.SyncModeBase:
		return statements{schema: postgresSchemaBase, upsert: postgresUpsertBase}, nil
	case driver == database.DriverPostgres && mode == model.SyncModeValue:
		return statements{schema: postgresSchemaValue, upsert: postgresUpsertValue}, nil
	default:
		return statements{}, fmt.Errorf("no statements for driver %q in mode %q", driver, mode)
	}
}
